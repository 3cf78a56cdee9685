/*
Package sqldataset provides an implementation of dataset.Dataset
that reads samples from a table of an SQL database.

Every field of a sample is read from the column with the same name.
NULL values are undefined values.
*/
package sqldataset

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pbanos/pmmltree/dataset"
)

/*
Adapter is an interface to a specific SQL database
backend.

Its DB method returns the connection pool to the database.

Its QuoteIdentifier method returns the given table or
column name quoted for the backend or an error if it
is not valid for it.

Its Close method releases the connection pool.
*/
type Adapter interface {
	DB() *sql.DB
	QuoteIdentifier(string) (string, error)
	Close() error
}

type sqlDataset struct {
	db      Adapter
	fields  []string
	columns string
	table   string
	count   *int
}

/*
Open takes a context, an Adapter to a db backend, the name of the table
holding the samples and the names of the fields to read and returns a
dataset.Dataset backed by the table or an error if the names are not
valid for the backend or the table cannot be queried.
*/
func Open(ctx context.Context, dbAdapter Adapter, table string, fields []string) (dataset.Dataset, error) {
	qTable, err := dbAdapter.QuoteIdentifier(table)
	if err != nil {
		return nil, err
	}
	columns := make([]string, 0, len(fields))
	for _, f := range fields {
		c, err := dbAdapter.QuoteIdentifier(f)
		if err != nil {
			return nil, err
		}
		columns = append(columns, c)
	}
	ds := &sqlDataset{db: dbAdapter, fields: fields, columns: strings.Join(columns, ", "), table: qTable}
	_, err = ds.Count(ctx)
	if err != nil {
		return nil, err
	}
	return ds, nil
}

func (ds *sqlDataset) Count(ctx context.Context) (int, error) {
	if ds.count != nil {
		return *ds.count, nil
	}
	var count int
	err := ds.db.DB().QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", ds.table)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting samples in %s: %v", ds.table, err)
	}
	ds.count = &count
	return count, nil
}

func (ds *sqlDataset) Samples(ctx context.Context) ([]dataset.Sample, error) {
	rows, err := ds.db.DB().QueryContext(ctx, fmt.Sprintf("SELECT %s FROM %s", ds.columns, ds.table))
	if err != nil {
		return nil, fmt.Errorf("querying samples in %s: %v", ds.table, err)
	}
	defer rows.Close()
	var samples []dataset.Sample
	for rows.Next() {
		values := make([]interface{}, len(ds.fields))
		dest := make([]interface{}, len(ds.fields))
		for i := range values {
			dest[i] = &values[i]
		}
		err = rows.Scan(dest...)
		if err != nil {
			return nil, fmt.Errorf("scanning sample in %s: %v", ds.table, err)
		}
		fieldValues := make(map[string]interface{}, len(ds.fields))
		for i, f := range ds.fields {
			switch v := values[i].(type) {
			case nil:
			case []byte:
				fieldValues[f] = string(v)
			default:
				fieldValues[f] = v
			}
		}
		samples = append(samples, dataset.NewSample(fieldValues))
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("reading samples in %s: %v", ds.table, err)
	}
	return samples, nil
}

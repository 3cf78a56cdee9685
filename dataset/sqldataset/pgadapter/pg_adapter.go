/*
Package pgadapter provides an implementation of the
Adapter interface in the sqldataset package that works
over a PostgreSQL database.
*/
package pgadapter

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/pbanos/pmmltree/dataset/sqldataset"
)

type adapter struct {
	db *sql.DB
}

/*
New takes a PostgreSQL database connection URL and returns
an Adapter that works on the database or an error if it fails to connect to it.
*/
func New(url string) (sqldataset.Adapter, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	err = db.Ping()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to PostgreSQL: %v", err)
	}
	return &adapter{db}, nil
}

func (a *adapter) DB() *sql.DB {
	return a.db
}

func (a *adapter) QuoteIdentifier(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty names cannot be used as identifiers")
	}
	return pq.QuoteIdentifier(name), nil
}

func (a *adapter) Close() error {
	return a.db.Close()
}

/*
Package sqlite3adapter provides an implementation of the
Adapter interface in the sqldataset package that works
over an SQLite3 database file.
*/
package sqlite3adapter

import (
	"database/sql"
	"fmt"
	"strings"

	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
	"github.com/pbanos/pmmltree/dataset/sqldataset"
)

type adapter struct {
	db *sql.DB
}

/*
New takes a path to an SQLite3 database file and returns an Adapter that works
on the file's database or an error if it fails to open as an sqlite3 database.
*/
func New(path string) (sqldataset.Adapter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
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
	if strings.ContainsAny(name, `"`) {
		return "", fmt.Errorf(`name '%s' contains invalid character '"'`, name)
	}
	return fmt.Sprintf(`"%s"`, name), nil
}

func (a *adapter) Close() error {
	return a.db.Close()
}

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pbanos/pmmltree"
	"github.com/pbanos/pmmltree/dataset"
	"github.com/pbanos/pmmltree/dataset/csv"
	"github.com/pbanos/pmmltree/dataset/mongodataset"
	"github.com/pbanos/pmmltree/dataset/sqldataset"
	"github.com/pbanos/pmmltree/dataset/sqldataset/pgadapter"
	"github.com/pbanos/pmmltree/dataset/sqldataset/sqlite3adapter"
	mgo "gopkg.in/mgo.v2"
)

type inputConfig struct {
	dataInput string
	table     string
}

const inputFlagUsage = "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with the samples (defaults to STDIN, interpreted as CSV)"

func inputFields(c *pmmltree.Classifier) []string {
	var fields []string
	if t := c.Mapping.Target(); t != nil {
		fields = append(fields, t.Name)
	}
	for _, f := range c.Mapping.Fields() {
		fields = append(fields, f.Name)
	}
	return fields
}

func (ic *inputConfig) openDataset(ctx context.Context, fields []string) (dataset.Dataset, error) {
	switch {
	case ic.dataInput == "":
		log.Debug("Reading samples from STDIN...")
		return csv.ReadSet(os.Stdin, fields)
	case strings.HasPrefix(ic.dataInput, "postgresql://"), strings.HasPrefix(ic.dataInput, "postgres://"):
		log.Debugf("Creating PostgreSQL adapter for url %s to read samples...", ic.dataInput)
		adapter, err := pgadapter.New(ic.dataInput)
		if err != nil {
			return nil, err
		}
		return sqldataset.Open(ctx, adapter, ic.table, fields)
	case strings.HasPrefix(ic.dataInput, "mongodb://"):
		log.Debugf("Connecting to MongoDB at %s to read samples...", ic.dataInput)
		session, err := mgo.Dial(ic.dataInput)
		if err != nil {
			return nil, fmt.Errorf("connecting to MongoDB: %v", err)
		}
		return mongodataset.Open(ctx, session, ic.table, fields)
	case strings.HasSuffix(ic.dataInput, ".db"):
		log.Debugf("Creating SQLite3 adapter for file %s to read samples...", ic.dataInput)
		adapter, err := sqlite3adapter.New(ic.dataInput)
		if err != nil {
			return nil, err
		}
		return sqldataset.Open(ctx, adapter, ic.table, fields)
	}
	log.Debugf("Opening %s to read samples...", ic.dataInput)
	return csv.ReadSetFromFilePath(ic.dataInput, fields)
}

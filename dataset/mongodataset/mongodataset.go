/*
Package mongodataset provides a implementation of dataset.Dataset
that uses a MongoDB database as backend.

Every document of the samples collection is a sample, its fields being
the document keys.
*/
package mongodataset

import (
	"context"
	"fmt"
	"strings"

	"github.com/pbanos/pmmltree/dataset"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

/*
Dataset is a dataset.Dataset to which samples can be added
and from which samples can be sequentially read
*/
type Dataset interface {
	dataset.Dataset
	Write(context.Context, []dataset.Sample) (int, error)
	Read(context.Context) (<-chan dataset.Sample, <-chan error)
}

type mongodataset struct {
	session    *mgo.Session
	collection string
	fields     []string
}

// DefaultCollection is the name of the collection samples are read from
// when none is given.
const DefaultCollection = "samples"

/*
Open takes a MongoDB database session, the name of the collection in the
session default database holding the samples ("" for DefaultCollection)
and the names of the fields of the samples and returns a Dataset on the
collection or an error if a field name cannot be used as a document key.
*/
func Open(ctx context.Context, session *mgo.Session, collection string, fields []string) (Dataset, error) {
	if collection == "" {
		collection = DefaultCollection
	}
	for _, f := range fields {
		if f == "_id" {
			return nil, fmt.Errorf("invalid field name %q: reserved collection field", "_id")
		}
		if strings.ContainsAny(f, ".$") {
			return nil, fmt.Errorf("invalid field name %q: contains reserved characters %q or %q", f, ".", "$")
		}
	}
	return &mongodataset{session, collection, fields}, nil
}

func (mds *mongodataset) Samples(ctx context.Context) ([]dataset.Sample, error) {
	var samples []dataset.Sample
	count, err := mds.Count(ctx)
	if err == nil {
		samples = make([]dataset.Sample, 0, count)
	}
	sampleChan, errs := mds.Read(ctx)
	for sample := range sampleChan {
		samples = append(samples, sample)
	}
	err = <-errs
	return samples, err
}

func (mds *mongodataset) Count(context.Context) (int, error) {
	return mds.samplesCollection().Find(nil).Count()
}

func (mds *mongodataset) Write(ctx context.Context, samples []dataset.Sample) (int, error) {
	docs := make([]interface{}, 0, len(samples))
	for _, s := range samples {
		doc := make(bson.M)
		for _, f := range mds.fields {
			value, err := s.ValueFor(ctx, f)
			if err != nil {
				return 0, err
			}
			if value != nil {
				doc[f] = value
			}
		}
		docs = append(docs, doc)
	}
	if len(docs) == 0 {
		return 0, nil
	}
	err := mds.samplesCollection().Insert(docs...)
	if err != nil {
		return 0, err
	}
	return len(samples), nil
}

func (mds *mongodataset) Read(ctx context.Context) (<-chan dataset.Sample, <-chan error) {
	samples := make(chan dataset.Sample)
	errs := make(chan error, 1)
	go func() {
		defer close(errs)
		defer close(samples)
		iter := mds.samplesCollection().Find(nil).Iter()
		defer iter.Close()
		for {
			var doc bson.M
			if !iter.Next(&doc) {
				break
			}
			values := make(map[string]interface{}, len(mds.fields))
			for _, f := range mds.fields {
				if v, ok := doc[f]; ok && v != nil {
					values[f] = v
				}
			}
			select {
			case <-ctx.Done():
				errs <- ctx.Err()
				return
			case samples <- dataset.NewSample(values):
			}
		}
		if err := iter.Err(); err != nil {
			errs <- err
		}
	}()
	return samples, errs
}

func (mds *mongodataset) samplesCollection() *mgo.Collection {
	return mds.session.DB("").C(mds.collection)
}

/*
Package dataset defines samples and collections of them to classify or
test classifiers against, as well as an in-memory implementation.
*/
package dataset

import "context"

/*
Dataset represents a collection of samples.

Its Samples method returns the samples it contains and its Count method
the number of them.
*/
type Dataset interface {
	Samples(context.Context) ([]Sample, error)
	Count(context.Context) (int, error)
}

type memoryDataset struct {
	samples []Sample
}

/*
New takes a slice of samples and returns a dataset built with them.
*/
func New(samples []Sample) Dataset {
	return &memoryDataset{samples}
}

func (s *memoryDataset) Samples(ctx context.Context) ([]Sample, error) {
	return s.samples, nil
}

func (s *memoryDataset) Count(ctx context.Context) (int, error) {
	return len(s.samples), nil
}

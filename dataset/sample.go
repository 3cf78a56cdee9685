package dataset

import (
	"context"
	"fmt"

	"github.com/pbanos/pmmltree/feature"
)

/*
Sample represents an item to classify or against which to test a classifier.

Its ValueFor method returns the raw value of the sample for the field with
the given name, or nil if the sample does not define it.
*/
type Sample interface {
	feature.Sample
}

type sample struct {
	fieldValues map[string]interface{}
}

/*
NewSample takes a map of field string names to raw values and returns a
sample.
*/
func NewSample(fieldValues map[string]interface{}) Sample {
	return &sample{fieldValues}
}

func (s *sample) ValueFor(_ context.Context, field string) (interface{}, error) {
	return s.fieldValues[field], nil
}

func (s *sample) String() string {
	return fmt.Sprintf("[%v]", s.fieldValues)
}

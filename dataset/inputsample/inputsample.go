/*
Package inputsample provides an implementation of dataset.Sample that is read
from an io.Reader.
*/
package inputsample

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/pbanos/pmmltree/dataset"
	"github.com/pbanos/pmmltree/feature"
)

/*
ReadSample represents a sample whose field values
are retrieved from a reader. A field value will be
requested using a FieldValueRequester before reading it.
*/
type readSample struct {
	obtainedValues      map[string]interface{}
	undefinedValue      string
	scanner             *bufio.Scanner
	fieldValueRequester FieldValueRequester
	fields              map[string]*feature.Field
}

/*
FieldValueRequester represents a way to ask
for field values and reject the given values.
*/
type FieldValueRequester interface {
	RequestValueFor(*feature.Field) error
	RejectValueFor(*feature.Field, interface{}, error) error
}

/*
New takes an io.Reader, a slice of fields, a
FieldValueRequester and an undefinedValue coding string
and returns a Sample.

The returned Sample ValueFor method reads field values first
requesting them with the given FieldValueRequester and
then parsing the values from the reader.

The parsing expects each value to be presented ending with the
'\n' character, that is in new lines. Also, the undefinedValue
string followed by the '\n' character will be interpreted as an
undefined value.

Lines will be read from the reader until one the decoder of the
field accepts is found. Non accepted values will be rejected with
the FieldValueRequester's RejectValueFor method.

Attempting to obtain a value for a field not in the given
fields slice will return an error.
*/
func New(r io.Reader, fields []*feature.Field, fieldValueRequester FieldValueRequester, undefinedValue string) dataset.Sample {
	fieldsByName := make(map[string]*feature.Field, len(fields))
	for _, f := range fields {
		fieldsByName[f.Name] = f
	}
	return &readSample{make(map[string]interface{}), undefinedValue, bufio.NewScanner(r), fieldValueRequester, fieldsByName}
}

func (rs *readSample) ValueFor(_ context.Context, name string) (interface{}, error) {
	value, ok := rs.obtainedValues[name]
	if ok {
		return value, nil
	}
	f, ok := rs.fields[name]
	if !ok {
		return nil, fmt.Errorf("have no information about field %s, do not know how to read its value", name)
	}
	err := rs.fieldValueRequester.RequestValueFor(f)
	if err != nil {
		return nil, err
	}
	for rs.scanner.Scan() {
		line := rs.scanner.Text()
		if line == rs.undefinedValue {
			rs.obtainedValues[name] = nil
			return nil, nil
		}
		_, err = f.Decoder.Decode(line)
		if err == nil {
			rs.obtainedValues[name] = line
			return line, nil
		}
		err = rs.fieldValueRequester.RejectValueFor(f, line, err)
		if err != nil {
			return nil, err
		}
	}
	err = rs.scanner.Err()
	if err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("EOF when requesting value")
}

/*
Package csv provides methods to read datasets from CSV streams.
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/pbanos/pmmltree/dataset"
)

// UndefinedValue is the CSV value that marks a value as undefined.
const UndefinedValue = "?"

/*
ReadSet takes an io.Reader for a CSV stream and a slice of field names
and returns a dataset.Dataset with the samples parsed from the reader or
an error.

The header or first row of the CSV content is expected to consist of names
in the given slice. The rest of the rows hold the raw values for those fields
and/or the '?' string or an empty string to indicate an undefined value.
*/
func ReadSet(reader io.Reader, fields []string) (dataset.Dataset, error) {
	samples := []dataset.Sample{}
	err := ReadSetBySample(reader, fields, func(_ int, s dataset.Sample) (bool, error) {
		samples = append(samples, s)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return dataset.New(samples), nil
}

/*
ReadSetBySample takes an io.Reader for a CSV stream, a slice of field names
and a lambda function on an integer and a dataset.Sample that returns a
boolean value. It parses the samples from the reader and for each it calls
the lambda function with the sample and its index as parameters. If the
lambda function returns true, it will continue processing the next sample,
otherwise it will stop. An error is returned if something goes wrong when
reading the stream or the lambda function returns one.
*/
func ReadSetBySample(reader io.Reader, fields []string, lambda func(int, dataset.Sample) (bool, error)) error {
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("reading header: %v", err)
	}
	err = checkHeader(header, fields)
	if err != nil {
		return err
	}
	for l := 2; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading body: %v", err)
		}
		values := make(map[string]interface{}, len(header))
		for i, name := range header {
			if row[i] != UndefinedValue && row[i] != "" {
				values[name] = row[i]
			}
		}
		ok, err := lambda(l-2, dataset.NewSample(values))
		if err != nil {
			return fmt.Errorf("processing line %d: %v", l, err)
		}
		if !ok {
			break
		}
	}
	return nil
}

/*
ReadSetFromFilePath takes a filepath string and a slice of field names,
opens the file to which the filepath points to (os.Stdin if it is "") and
uses ReadSet to return a dataset.Dataset or an error read from it.
*/
func ReadSetFromFilePath(filepath string, fields []string) (dataset.Dataset, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("reading dataset: %v", err)
		}
		defer f.Close()
	}
	set, err := ReadSet(f, fields)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %v", filepath, err)
	}
	return set, err
}

func checkHeader(header []string, fields []string) error {
	known := make(map[string]bool, len(fields))
	for _, f := range fields {
		known[f] = true
	}
	seen := make(map[string]bool, len(header))
	for _, name := range header {
		if !known[name] {
			return fmt.Errorf("unknown field %q in CSV header", name)
		}
		if seen[name] {
			return fmt.Errorf("field %q appears twice in CSV header", name)
		}
		seen[name] = true
	}
	return nil
}

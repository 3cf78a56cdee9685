/*
Package yaml provides methods to read and write field declarations, also
known as metadata, as YAML documents.
*/
package yaml

import (
	"fmt"
	"io"
	"io/ioutil"

	"github.com/pbanos/pmmltree/feature"
	yaml "gopkg.in/yaml.v2"
)

type declaration struct {
	OpType   string   `yaml:"optype"`
	DataType string   `yaml:"dataType"`
	Values   []string `yaml:"values,omitempty"`
}

/*
ReadFeatures takes a slice of bytes with a field specification in YML and
returns a slice of declarations parsed from it or an error.
The YML is expected to be an object containing a features property. The value for this
should be an object with a property for each field with its name and either:
  - a string value of 'continuous' for continuous double fields,
  - a list of valid values for categorical string fields, or
  - an object with optype, dataType and values properties.
Declarations are returned in document order.
*/
func ReadFeatures(md []byte) ([]feature.Declaration, error) {
	metadata := struct {
		Features yaml.MapSlice
	}{}
	err := yaml.Unmarshal(md, &metadata)
	if err != nil {
		return nil, fmt.Errorf("parsing yml features: %v", err)
	}
	if metadata.Features == nil {
		return nil, fmt.Errorf("metadata file has no feature information")
	}
	declarations := make([]feature.Declaration, 0, len(metadata.Features))
	for _, item := range metadata.Features {
		fn := fmt.Sprintf("%v", item.Key)
		switch values := item.Value.(type) {
		case string:
			if values != string(feature.OpContinuous) {
				return nil, fmt.Errorf("invalid feature declaration %q for %s", values, fn)
			}
			declarations = append(declarations, feature.Declaration{Name: fn, OpType: feature.OpContinuous, DataType: feature.TypeDouble})
		case []interface{}:
			declarations = append(declarations, feature.Declaration{Name: fn, OpType: feature.OpCategorical, DataType: feature.TypeString, Values: stringValues(values)})
		case yaml.MapSlice:
			d, err := readDeclaration(fn, values)
			if err != nil {
				return nil, err
			}
			declarations = append(declarations, d)
		default:
			return nil, fmt.Errorf("invalid feature declaration of type %T", item.Value)
		}
	}
	return declarations, nil
}

/*
ReadFeaturesFromFile takes a filepath string, reads its contents and uses
ReadFeatures to parse it and return a slice of parsed declarations or an error.
If the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadFeaturesFromFile(filepath string) ([]feature.Declaration, error) {
	md, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading features yml file %s: %v", filepath, err)
	}
	declarations, err := ReadFeatures(md)
	if err != nil {
		err = fmt.Errorf("parsing features yml file %s: %v", filepath, err)
	}
	return declarations, err
}

/*
WriteFeatures takes an io.Writer and a slice of declarations and writes
them onto the writer as a YML features object that ReadFeatures can parse,
every declaration in its object form.
*/
func WriteFeatures(w io.Writer, declarations []feature.Declaration) error {
	features := make(yaml.MapSlice, 0, len(declarations))
	for _, d := range declarations {
		features = append(features, yaml.MapItem{
			Key: d.Name,
			Value: &declaration{
				OpType:   string(d.OpType),
				DataType: string(d.DataType),
				Values:   d.Values,
			},
		})
	}
	out, err := yaml.Marshal(struct {
		Features yaml.MapSlice `yaml:"features"`
	}{features})
	if err != nil {
		return fmt.Errorf("serializing features as yml: %v", err)
	}
	_, err = w.Write(out)
	return err
}

func readDeclaration(name string, ms yaml.MapSlice) (feature.Declaration, error) {
	out, err := yaml.Marshal(ms)
	if err != nil {
		return feature.Declaration{}, fmt.Errorf("reading declaration for %s: %v", name, err)
	}
	d := &declaration{}
	err = yaml.Unmarshal(out, d)
	if err != nil {
		return feature.Declaration{}, fmt.Errorf("reading declaration for %s: %v", name, err)
	}
	return feature.Declaration{
		Name:     name,
		OpType:   feature.OpType(d.OpType),
		DataType: feature.DataType(d.DataType),
		Values:   d.Values,
	}, nil
}

func stringValues(values []interface{}) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		result = append(result, fmt.Sprintf("%v", v))
	}
	return result
}

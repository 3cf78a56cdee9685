package pmml

import (
	"io"
	"os"
	"strconv"

	"github.com/beevik/etree"
	"github.com/pbanos/pmmltree/feature"
	"github.com/pkg/errors"
)

/*
Document is a parsed PMML document.
*/
type Document struct {
	Root *Element
}

/*
Read takes an io.Reader and parses a PMML document from it. It returns an
error if the content is not well-formed XML.
*/
func Read(r io.Reader) (*Document, error) {
	doc := etree.NewDocument()
	_, err := doc.ReadFrom(r)
	if err != nil {
		return nil, errors.Wrap(err, "decoding PMML document")
	}
	root := doc.Root()
	if root == nil {
		return nil, errors.New("decoding PMML document: no root element")
	}
	return &Document{Root: wrap(root)}, nil
}

/*
ReadFile takes a filepath string, opens it and uses Read to parse the
PMML document it contains.
*/
func ReadFile(filepath string) (*Document, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading PMML from %s", filepath)
	}
	defer f.Close()
	d, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing PMML from %s", filepath)
	}
	return d, nil
}

// TreeModel returns the first TreeModel element of the document or nil.
func (d *Document) TreeModel() *Element {
	return d.Root.Find("TreeModel")
}

/*
DataFields returns the declarations of the DataField elements in the
DataDictionary, in document order.
*/
func (d *Document) DataFields() ([]feature.Declaration, error) {
	var result []feature.Declaration
	for _, df := range d.Root.Find("DataDictionary").FindAll("DataField") {
		decl, err := declaration(df)
		if err != nil {
			return nil, err
		}
		result = append(result, decl)
	}
	return result, nil
}

/*
DerivedFields returns the derivations declared by the DerivedField
elements in the TransformationDictionary and, when model is not nil, in
its LocalTransformations. Only derived fields that reference another field
through a FieldRef are supported.
*/
func (d *Document) DerivedFields(model *Element) ([]feature.Derivation, error) {
	fields := d.Root.Find("TransformationDictionary").FindAll("DerivedField")
	fields = append(fields, model.Find("LocalTransformations").FindAll("DerivedField")...)
	var result []feature.Derivation
	for _, df := range fields {
		ref := df.Find("FieldRef")
		if ref == nil {
			name, _ := df.Attr("name")
			return nil, errors.Errorf("derived field %q: only FieldRef derivations are supported", name)
		}
		decl, err := declaration(df)
		if err != nil {
			return nil, err
		}
		field, _ := ref.Attr("field")
		result = append(result, feature.Derivation{Declaration: decl, Ref: field})
	}
	return result, nil
}

/*
Target returns the name of the field the model predicts: the MiningField
with usageType target or predicted in the model's MiningSchema, or the
first DataField of the document when the schema names none.
*/
func (d *Document) Target(model *Element) string {
	for _, mf := range model.Find("MiningSchema").FindAll("MiningField") {
		usage, _ := mf.Attr("usageType")
		if usage == "target" || usage == "predicted" {
			name, _ := mf.Attr("name")
			return name
		}
	}
	if df := d.Root.Find("DataDictionary").Find("DataField"); df != nil {
		name, _ := df.Attr("name")
		return name
	}
	return ""
}

func declaration(e *Element) (feature.Declaration, error) {
	name, _ := e.Attr("name")
	optype, _ := e.Attr("optype")
	dataType, _ := e.Attr("dataType")
	decl := feature.Declaration{
		Name:     name,
		OpType:   feature.OpType(optype),
		DataType: feature.DataType(dataType),
	}
	for _, v := range e.FindAll("Value") {
		if property, ok := v.Attr("property"); ok && property != "valid" {
			continue
		}
		value, _ := v.Attr("value")
		decl.Values = append(decl.Values, value)
	}
	for _, i := range e.FindAll("Interval") {
		interval, err := interval(i)
		if err != nil {
			return decl, errors.Wrapf(err, "field %q", name)
		}
		decl.Intervals = append(decl.Intervals, interval)
	}
	return decl, nil
}

func interval(e *Element) (feature.Interval, error) {
	closure, _ := e.Attr("closure")
	left, err := margin(e, "leftMargin")
	if err != nil {
		return feature.Interval{}, err
	}
	right, err := margin(e, "rightMargin")
	if err != nil {
		return feature.Interval{}, err
	}
	return feature.NewInterval(feature.Closure(closure), left, right)
}

func margin(e *Element, name string) (*float64, error) {
	s, ok := e.Attr(name)
	if !ok {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, errors.Wrapf(feature.ErrInvalidInterval, "%s %q", name, s)
	}
	return &v, nil
}

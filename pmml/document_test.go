package pmml

import (
	"os"
	"strings"
	"testing"

	"github.com/pbanos/pmmltree/feature"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const document = `<?xml version="1.0" encoding="UTF-8"?>
<PMML xmlns="http://www.dmg.org/PMML-4_3" version="4.3">
  <DataDictionary>
    <DataField name="color" optype="categorical" dataType="string">
      <Value value="red"/>
      <Value value="green"/>
      <Value value="N/A" property="missing"/>
    </DataField>
    <DataField name="length" optype="continuous" dataType="double">
      <Interval closure="closedOpen" leftMargin="0" rightMargin="10"/>
    </DataField>
    <DataField name="class" optype="categorical" dataType="string">
      <Value value="a"/>
      <Value value="b"/>
    </DataField>
  </DataDictionary>
  <TransformationDictionary>
    <DerivedField name="integer(length)" optype="continuous" dataType="integer">
      <FieldRef field="length"/>
    </DerivedField>
  </TransformationDictionary>
  <TreeModel functionName="classification" splitCharacteristic="binarySplit">
    <MiningSchema>
      <MiningField name="color"/>
      <MiningField name="length"/>
      <MiningField name="class" usageType="target"/>
    </MiningSchema>
    <LocalTransformations>
      <DerivedField name="double(length)" optype="continuous" dataType="double">
        <FieldRef field="length"/>
      </DerivedField>
    </LocalTransformations>
    <Node id="1">
      <True/>
      <Node id="2" score="a">
        <SimpleSetPredicate field="color" booleanOperator="isIn">
          <Array type="string">"red"</Array>
        </SimpleSetPredicate>
      </Node>
      <Node id="3" score="b"><True/></Node>
    </Node>
  </TreeModel>
</PMML>
`

func readDocument(t *testing.T) *Document {
	doc, err := Read(strings.NewReader(document))
	require.NoError(t, err)
	return doc
}

func TestRead(t *testing.T) {
	doc := readDocument(t)
	assert.Equal(t, "PMML", doc.Root.Tag())
	model := doc.TreeModel()
	require.NotNil(t, model)
	sc, ok := model.Attr("splitCharacteristic")
	assert.True(t, ok)
	assert.Equal(t, "binarySplit", sc)

	root := model.Find("Node")
	require.NotNil(t, root)
	assert.Equal(t, "1", root.ID())
	children := root.FindAll("Node")
	require.Len(t, children, 2)
	array := children[0].Find("SimpleSetPredicate").Find("Array")
	assert.Equal(t, `"red"`, array.Content())

	_, err := Read(strings.NewReader("no markup"))
	assert.Error(t, err)
	_, err = Read(strings.NewReader(`<PMML version=>`))
	assert.Error(t, err)
}

func TestReadFile(t *testing.T) {
	_, err := ReadFile("testdata/missing.pmml")
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
	assert.Contains(t, err.Error(), "reading PMML from testdata/missing.pmml")
}

func TestNamespacedElements(t *testing.T) {
	doc, err := Read(strings.NewReader(`<p:PMML xmlns:p="http://www.dmg.org/PMML-4_3">
<p:DataDictionary><p:DataField name="x" optype="continuous" dataType="double"/></p:DataDictionary>
</p:PMML>`))
	require.NoError(t, err)
	assert.Equal(t, "PMML", doc.Root.Tag())
	fields, err := doc.DataFields()
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "x", fields[0].Name)
}

func TestNilElements(t *testing.T) {
	var e *Element
	assert.Equal(t, "", e.Tag())
	assert.Nil(t, e.Find("Node"))
	assert.Nil(t, e.FindAll("Node"))
	assert.Equal(t, "", e.Content())
	assert.Equal(t, "", e.ID())
	_, ok := e.Attr("id")
	assert.False(t, ok)
}

func TestDataFields(t *testing.T) {
	doc := readDocument(t)
	fields, err := doc.DataFields()
	require.NoError(t, err)
	require.Len(t, fields, 3)

	assert.Equal(t, feature.Declaration{Name: "color", OpType: feature.OpCategorical, DataType: feature.TypeString, Values: []string{"red", "green"}}, fields[0])
	assert.Equal(t, "length", fields[1].Name)
	require.Len(t, fields[1].Intervals, 1)
	assert.Equal(t, feature.ClosedOpen, fields[1].Intervals[0].Closure)
	assert.Equal(t, 0.0, *fields[1].Intervals[0].LeftMargin)
	assert.Equal(t, 10.0, *fields[1].Intervals[0].RightMargin)
	assert.Equal(t, []string{"a", "b"}, fields[2].Values)
}

func TestDerivedFields(t *testing.T) {
	doc := readDocument(t)
	derived, err := doc.DerivedFields(doc.TreeModel())
	require.NoError(t, err)
	require.Len(t, derived, 2)
	assert.Equal(t, "integer(length)", derived[0].Name)
	assert.Equal(t, feature.TypeInteger, derived[0].DataType)
	assert.Equal(t, "length", derived[0].Ref)
	assert.Equal(t, "double(length)", derived[1].Name)
}

func TestDerivedFieldsWithoutFieldRef(t *testing.T) {
	doc, err := Read(strings.NewReader(`<PMML><TransformationDictionary>
<DerivedField name="x" optype="continuous" dataType="double"><Constant>1</Constant></DerivedField>
</TransformationDictionary></PMML>`))
	require.NoError(t, err)
	_, err = doc.DerivedFields(nil)
	assert.Error(t, err)
}

func TestTarget(t *testing.T) {
	doc := readDocument(t)
	assert.Equal(t, "class", doc.Target(doc.TreeModel()))

	doc, err := Read(strings.NewReader(`<PMML><DataDictionary>
<DataField name="y" optype="categorical" dataType="string"/>
<DataField name="x" optype="continuous" dataType="double"/>
</DataDictionary><TreeModel/></PMML>`))
	require.NoError(t, err)
	assert.Equal(t, "y", doc.Target(doc.TreeModel()))
}

func TestInvalidInterval(t *testing.T) {
	doc, err := Read(strings.NewReader(`<PMML><DataDictionary>
<DataField name="x" optype="continuous" dataType="double"><Interval closure="openOpen"/></DataField>
</DataDictionary></PMML>`))
	require.NoError(t, err)
	_, err = doc.DataFields()
	assert.True(t, errors.Is(err, feature.ErrInvalidInterval))
}

package feature

/*
OpType is the operation type of a field: how its values may be
compared.
*/
type OpType string

/*
DataType is the declared type of a field's values.
*/
type DataType string

// Operation types.
const (
	OpContinuous  OpType = "continuous"
	OpCategorical OpType = "categorical"
	OpOrdinal     OpType = "ordinal"
)

// Data types.
const (
	TypeInteger DataType = "integer"
	TypeFloat   DataType = "float"
	TypeDouble  DataType = "double"
	TypeBoolean DataType = "boolean"
	TypeString  DataType = "string"
)

/*
Declaration describes a field: its name, operation and data types and
optionally the list of admissible values (for categorical and ordinal
fields) or the intervals its values must fall into.
*/
type Declaration struct {
	Name      string
	OpType    OpType
	DataType  DataType
	Values    []string
	Intervals []Interval
}

/*
Derivation describes a field that takes its raw value from the field
named by Ref, decoding it according to its own declaration instead of
the referenced field's one. It is used for type casts.
*/
type Derivation struct {
	Declaration
	Ref string
}

// Numeric returns whether the data type holds numbers or booleans.
func (dt DataType) Numeric() bool {
	switch dt {
	case TypeInteger, TypeFloat, TypeDouble, TypeBoolean:
		return true
	}
	return false
}

func (dt DataType) valid() bool {
	return dt.Numeric() || dt == TypeString
}

func (ot OpType) valid() bool {
	switch ot {
	case OpContinuous, OpCategorical, OpOrdinal:
		return true
	}
	return false
}

package feature

/*
Error is the type of the errors the package returns when field
declarations or values cannot be resolved. Returned errors may wrap
one of the constants below with additional context; use errors.Is
to compare them.
*/
type Error string

const (
	// ErrUnsupportedDataType is returned for data types other than
	// integer, float, double, boolean and string, or for non-numeric
	// data types where a numeric value is required.
	ErrUnsupportedDataType = Error("unsupported data type")
	// ErrUnsupportedOpType is returned for operation types other than
	// continuous, categorical and ordinal.
	ErrUnsupportedOpType = Error("unsupported operation type")
	// ErrInvalidCategoricalValue is returned when decoding a value that is
	// not among the categories of a categorical field.
	ErrInvalidCategoricalValue = Error("invalid categorical value")
	// ErrInvalidOrdinalValue is returned when decoding a value that is
	// not among the declared values of an ordinal field.
	ErrInvalidOrdinalValue = Error("invalid ordinal value")
	// ErrIntervalMembership is returned when no interval of a field
	// contains the decoded value.
	ErrIntervalMembership = Error("value is not contained in any interval")
	// ErrInvalidInterval is returned when building an interval without
	// margins or with an unknown closure.
	ErrInvalidInterval = Error("invalid interval")
	// ErrInvalidNumericValue is returned when a raw value cannot be read
	// as a number.
	ErrInvalidNumericValue = Error("invalid numeric value")
	// ErrUnknownField is returned when looking up a field that is not
	// declared.
	ErrUnknownField = Error("unknown field")
	// ErrDuplicateField is returned when two fields are declared with the
	// same name.
	ErrDuplicateField = Error("duplicate field")
)

func (e Error) Error() string {
	return string(e)
}

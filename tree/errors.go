package tree

/*
Error is the type of the errors the package returns when a tree cannot
be built or evaluated. Returned errors may wrap one of the constants
below with additional context; use errors.Is to compare them.
*/
type Error string

const (
	// ErrNonBinarySplit is returned when an internal node does not have
	// exactly two children.
	ErrNonBinarySplit = Error("non-binary split")
	// ErrUnsupportedPredicate is returned when the predicate that
	// determines a split is unknown or cannot be encoded.
	ErrUnsupportedPredicate = Error("unsupported predicate")
	// ErrIncompleteLeafSpecification is returned when a leaf has no
	// information to build its class distribution from.
	ErrIncompleteLeafSpecification = Error("incomplete leaf specification")
	// ErrCategorySetOverflow is returned when a set predicate tests a
	// field with more categories than fit in a split mask.
	ErrCategorySetOverflow = Error("category set overflow")
	// ErrFeatureIndexOutOfRange is returned when a node tests a feature
	// the evaluated vector does not have.
	ErrFeatureIndexOutOfRange = Error("feature index out of range")
	// ErrMalformedTree is returned when following the node table does
	// not lead to a leaf.
	ErrMalformedTree = Error("malformed tree")
)

func (e Error) Error() string {
	return string(e)
}

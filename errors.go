package pmmltree

/*
Error is the type of the errors of documents that cannot be turned into a
classifier.
*/
type Error string

const (
	// ErrMissingTreeModel is returned for documents without a TreeModel
	// element or whose TreeModel has no root Node.
	ErrMissingTreeModel = Error("document does not contain a tree model")
	// ErrUnsupportedSplitCharacteristic is returned for tree models whose
	// splitCharacteristic is not binarySplit.
	ErrUnsupportedSplitCharacteristic = Error("only binary tree models are supported")
)

func (e Error) Error() string {
	return string(e)
}

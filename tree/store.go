package tree

import "context"

/*
Store is an interface to persist flattened trees
so that they can be loaded for evaluation without
the document they were built from.

All it methods take a context that may allow
cancelling the operation (thus forcing the return
of an error) if the implementation allows it.
*/
type Store interface {
	// Save takes a tree and stores it, replacing
	// any tree previously stored. It returns an
	// error if the tree cannot be stored.
	Save(ctx context.Context, t *Tree) error
	// Load returns the stored tree or an error
	// if there is none or it cannot be retrieved.
	Load(ctx context.Context) (*Tree, error)
	// Close closes the store, implementations should
	// free any resources in use before returning
	// (unless the context expires). It returns an error
	// if the Close cannot be completed.
	Close(ctx context.Context) error
}

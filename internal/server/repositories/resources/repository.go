package resources

import "context"

// Repository is the teaching-materials store. The dashboard only needs
// the total count today.
type Repository interface {
	Count(ctx context.Context) (int, error)
}

package authevents

import "context"

// Repository records login/logout audit rows. Writes are best-effort from
// the caller's point of view: authentication flows log failures and move on.
type Repository interface {
	Record(ctx context.Context, userID, event string) error
}

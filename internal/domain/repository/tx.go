package repository

import "context"

// Transactor runs a function inside a single database transaction. The
// transaction handle travels in the context, so any repository call made with
// the derived context joins the same atomic unit. Returning an error from fn
// rolls everything back, including bill counter increments.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

package catalog

import "context"

// FilterQuery narrows the catalog by category and inclusive price bounds.
// Type must be TypeAll or a valid category; a nil price bound leaves that
// side unbounded.
type FilterQuery struct {
	Type     CarType
	MinPrice *int
	MaxPrice *int
}

func (q FilterQuery) matches(c Car) bool {
	if q.Type != TypeAll && c.Type != q.Type {
		return false
	}
	if q.MinPrice != nil && c.Price < *q.MinPrice {
		return false
	}
	if q.MaxPrice != nil && c.Price > *q.MaxPrice {
		return false
	}
	return true
}

// Store is the read-only catalog. Every listing operation returns cars in
// ascending id order; a miss on Get is reported via the bool, not an error.
type Store interface {
	Ping(ctx context.Context) error
	List(ctx context.Context) ([]Car, error)
	Get(ctx context.Context, id int) (Car, bool, error)
	Featured(ctx context.Context) ([]Car, error)
	Filter(ctx context.Context, q FilterQuery) ([]Car, error)
}

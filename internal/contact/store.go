package contact

import "context"

// Store is an append-only record of inquiries. Nothing exposes a read-back;
// Count exists for readiness of the intake path and for tests.
type Store interface {
	Ping(ctx context.Context) error
	Add(ctx context.Context, s Submission) error
	Count(ctx context.Context) (int, error)
}

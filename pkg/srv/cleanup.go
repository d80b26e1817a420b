package srv

import "context"

// cleanupService implements Service for resources that only need a
// teardown hook, like the sqlite handle.
type cleanupService struct {
	cleanup func() error
}

func (c *cleanupService) Start(ctx context.Context) error {
	// Nothing to run; the resource is already live when registered
	return nil
}

func (c *cleanupService) Shutdown(ctx context.Context) error {
	if c.cleanup != nil {
		return c.cleanup()
	}
	return nil
}

// NewCleanup wraps fn so it runs with the other services' shutdowns.
func NewCleanup(fn func() error) Service {
	return &cleanupService{cleanup: fn}
}

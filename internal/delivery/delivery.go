// Package delivery holds the transport servers started by the binaries.
package delivery

import "context"

// Delivery is a long-running server started by fx.Invoke.
type Delivery interface {
	Serve(ctx context.Context) error
}

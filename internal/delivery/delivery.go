// Package delivery contains the transports that expose the usecases.
package delivery

import "context"

// Delivery is a long running server started by a cmd entry point.
type Delivery interface {
	Serve(ctx context.Context) error
}

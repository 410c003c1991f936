package gateway

import (
	"context"

	"github.com/comfort-hq/digital-catalogue/internal/model"
)

// Caller issues write actions against the remote endpoint.
type Caller interface {
	// Call sends {action, ...payload} and returns the decoded response body.
	// Failures are reported as *RemoteCallError.
	Call(ctx context.Context, action string, payload map[string]any) (Envelope, error)
}

// Reader fetches the full product list. It never fails; errors degrade to an
// empty list.
type Reader interface {
	FetchAll(ctx context.Context) []model.Product
}

// Gateway is the full remote surface used by the app.
type Gateway interface {
	Caller
	Reader
}

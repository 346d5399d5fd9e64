package domain

import "context"

// APIClient talks to the order-management API. Implementations decode a
// JSON success body into out (when out is non-nil and the response carries
// JSON) and report every failure as *APIError.
type APIClient interface {
	Get(ctx context.Context, path string, params *Params, out any) error
	Post(ctx context.Context, path string, body, out any) error
}

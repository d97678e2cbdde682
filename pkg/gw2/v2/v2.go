// Package v2 declares the resource schemas and typed operations for the
// /v2 endpoint families. Each family is a compiled-in descriptor consumed
// by the request pipeline in pkg/gw2; the operations accept any executor,
// asynchronous or blocking.
package v2

import (
	"context"

	"github.com/tyria-io/gw2go/pkg/gw2"
)

// fetch builds the request for a descriptor and id parameter and runs it to
// completion on the given executor.
func fetch[T any](ctx context.Context, c gw2.Executor, d gw2.Descriptor, param *gw2.IDParam) (T, error) {
	req, err := d.Request(param)
	if err != nil {
		var zero T

		return zero, err
	}

	return gw2.Fetch[T](ctx, c, req)
}

package v2

import (
	"context"

	"github.com/tyria-io/gw2go/pkg/gw2"
)

// Quaggan is a quaggan image resource.
type Quaggan struct {
	ID  string `json:"id"  yaml:"id"`
	URL string `json:"url" yaml:"url"`
}

var quaggansDescriptor = gw2.Descriptor{Path: "/v2/quaggans"}

// GetQuaggan returns the quaggan with the given id.
func GetQuaggan(ctx context.Context, c gw2.Executor, id string) (Quaggan, error) {
	return fetch[Quaggan](ctx, c, quaggansDescriptor, gw2.One(id))
}

// GetQuaggans returns the quaggans with the given ids, in the given order.
func GetQuaggans(ctx context.Context, c gw2.Executor, ids ...string) ([]Quaggan, error) {
	return fetch[[]Quaggan](ctx, c, quaggansDescriptor, gw2.Many(ids...))
}

// AllQuaggans returns every quaggan.
func AllQuaggans(ctx context.Context, c gw2.Executor) ([]Quaggan, error) {
	return fetch[[]Quaggan](ctx, c, quaggansDescriptor, gw2.All())
}

// QuagganIDs returns the ids of all quaggans.
func QuagganIDs(ctx context.Context, c gw2.Executor) ([]string, error) {
	return fetch[[]string](ctx, c, quaggansDescriptor, nil)
}

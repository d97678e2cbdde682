package v2

import (
	"context"

	"github.com/tyria-io/gw2go/pkg/gw2"
)

// File is a commonly requested in-game asset.
type File struct {
	ID   string `json:"id"   yaml:"id"`
	Icon string `json:"icon" yaml:"icon"`
}

var filesDescriptor = gw2.Descriptor{Path: "/v2/files"}

// GetFile returns the asset with the given id.
func GetFile(ctx context.Context, c gw2.Executor, id string) (File, error) {
	return fetch[File](ctx, c, filesDescriptor, gw2.One(id))
}

// GetFiles returns the assets with the given ids, in the given order.
func GetFiles(ctx context.Context, c gw2.Executor, ids ...string) ([]File, error) {
	return fetch[[]File](ctx, c, filesDescriptor, gw2.Many(ids...))
}

// AllFiles returns every asset.
func AllFiles(ctx context.Context, c gw2.Executor) ([]File, error) {
	return fetch[[]File](ctx, c, filesDescriptor, gw2.All())
}

// FileIDs returns the ids of all assets.
func FileIDs(ctx context.Context, c gw2.Executor) ([]string, error) {
	return fetch[[]string](ctx, c, filesDescriptor, nil)
}

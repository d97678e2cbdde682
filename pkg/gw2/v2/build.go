package v2

import (
	"context"

	"github.com/tyria-io/gw2go/pkg/gw2"
)

// Build is the current build id of the game.
type Build struct {
	ID uint64 `json:"id" yaml:"id"`
}

var buildDescriptor = gw2.Descriptor{Path: "/v2/build"}

// GetBuild returns the current game build.
func GetBuild(ctx context.Context, c gw2.Executor) (Build, error) {
	return fetch[Build](ctx, c, buildDescriptor, nil)
}

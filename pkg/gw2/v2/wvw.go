package v2

import (
	"context"

	"github.com/tyria-io/gw2go/pkg/gw2"
)

// WvwRank is a World versus World rank title threshold.
type WvwRank struct {
	ID      uint64 `json:"id"       yaml:"id"`
	Title   string `json:"title"    yaml:"title"`
	MinRank int    `json:"min_rank" yaml:"min_rank"`
}

var wvwRanksDescriptor = gw2.Descriptor{Path: "/v2/wvw/ranks", Localized: true}

// GetWvwRank returns the WvW rank with the given id.
func GetWvwRank(ctx context.Context, c gw2.Executor, id uint64) (WvwRank, error) {
	return fetch[WvwRank](ctx, c, wvwRanksDescriptor, gw2.One(id))
}

// GetWvwRanks returns the WvW ranks with the given ids, in the given order.
func GetWvwRanks(ctx context.Context, c gw2.Executor, ids ...uint64) ([]WvwRank, error) {
	return fetch[[]WvwRank](ctx, c, wvwRanksDescriptor, gw2.Many(ids...))
}

// AllWvwRanks returns every WvW rank.
func AllWvwRanks(ctx context.Context, c gw2.Executor) ([]WvwRank, error) {
	return fetch[[]WvwRank](ctx, c, wvwRanksDescriptor, gw2.All())
}

// WvwRankIDs returns the ids of all WvW ranks.
func WvwRankIDs(ctx context.Context, c gw2.Executor) ([]uint64, error) {
	return fetch[[]uint64](ctx, c, wvwRanksDescriptor, nil)
}

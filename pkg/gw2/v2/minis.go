package v2

import (
	"context"

	"github.com/tyria-io/gw2go/pkg/gw2"
)

// Mini is a miniature pet.
type Mini struct {
	ID     uint64  `json:"id"               yaml:"id"`
	Name   string  `json:"name"             yaml:"name"`
	Icon   string  `json:"icon"             yaml:"icon"`
	Order  int     `json:"order"            yaml:"order"`
	ItemID uint64  `json:"item_id"          yaml:"item_id"`
	Unlock *string `json:"unlock,omitempty" yaml:"unlock,omitempty"`
}

var minisDescriptor = gw2.Descriptor{Path: "/v2/minis", Localized: true}

// GetMini returns the mini with the given id.
func GetMini(ctx context.Context, c gw2.Executor, id uint64) (Mini, error) {
	return fetch[Mini](ctx, c, minisDescriptor, gw2.One(id))
}

// GetMinis returns the minis with the given ids, in the given order.
func GetMinis(ctx context.Context, c gw2.Executor, ids ...uint64) ([]Mini, error) {
	return fetch[[]Mini](ctx, c, minisDescriptor, gw2.Many(ids...))
}

// AllMinis returns every mini.
func AllMinis(ctx context.Context, c gw2.Executor) ([]Mini, error) {
	return fetch[[]Mini](ctx, c, minisDescriptor, gw2.All())
}

// MiniIDs returns the ids of all minis.
func MiniIDs(ctx context.Context, c gw2.Executor) ([]uint64, error) {
	return fetch[[]uint64](ctx, c, minisDescriptor, nil)
}

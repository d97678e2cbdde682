package v2

import (
	"context"

	"github.com/tyria-io/gw2go/pkg/gw2"
)

// Novelty is an unlockable novelty item such as a chair or tonic.
type Novelty struct {
	ID          uint64   `json:"id"          yaml:"id"`
	Name        string   `json:"name"        yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Icon        string   `json:"icon"        yaml:"icon"`
	Slot        string   `json:"slot"        yaml:"slot"`
	UnlockItem  []uint64 `json:"unlock_item" yaml:"unlock_item"`
}

var noveltiesDescriptor = gw2.Descriptor{Path: "/v2/novelties", Localized: true}

// GetNovelty returns the novelty with the given id.
func GetNovelty(ctx context.Context, c gw2.Executor, id uint64) (Novelty, error) {
	return fetch[Novelty](ctx, c, noveltiesDescriptor, gw2.One(id))
}

// GetNovelties returns the novelties with the given ids, in the given order.
func GetNovelties(ctx context.Context, c gw2.Executor, ids ...uint64) ([]Novelty, error) {
	return fetch[[]Novelty](ctx, c, noveltiesDescriptor, gw2.Many(ids...))
}

// AllNovelties returns every novelty.
func AllNovelties(ctx context.Context, c gw2.Executor) ([]Novelty, error) {
	return fetch[[]Novelty](ctx, c, noveltiesDescriptor, gw2.All())
}

// NoveltyIDs returns the ids of all novelties.
func NoveltyIDs(ctx context.Context, c gw2.Executor) ([]uint64, error) {
	return fetch[[]uint64](ctx, c, noveltiesDescriptor, nil)
}

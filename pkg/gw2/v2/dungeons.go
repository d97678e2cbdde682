package v2

import (
	"context"

	"github.com/tyria-io/gw2go/pkg/gw2"
)

// Dungeon is a dungeon and its purchasable paths.
type Dungeon struct {
	ID    string        `json:"id"    yaml:"id"`
	Paths []DungeonPath `json:"paths" yaml:"paths"`
}

// DungeonPath is one explorable or story path of a Dungeon.
type DungeonPath struct {
	ID   string `json:"id"   yaml:"id"`
	Type string `json:"type" yaml:"type"`
}

var dungeonsDescriptor = gw2.Descriptor{Path: "/v2/dungeons"}

// GetDungeon returns the dungeon with the given id.
func GetDungeon(ctx context.Context, c gw2.Executor, id string) (Dungeon, error) {
	return fetch[Dungeon](ctx, c, dungeonsDescriptor, gw2.One(id))
}

// GetDungeons returns the dungeons with the given ids, in the given order.
func GetDungeons(ctx context.Context, c gw2.Executor, ids ...string) ([]Dungeon, error) {
	return fetch[[]Dungeon](ctx, c, dungeonsDescriptor, gw2.Many(ids...))
}

// AllDungeons returns every dungeon.
func AllDungeons(ctx context.Context, c gw2.Executor) ([]Dungeon, error) {
	return fetch[[]Dungeon](ctx, c, dungeonsDescriptor, gw2.All())
}

// DungeonIDs returns the ids of all dungeons.
func DungeonIDs(ctx context.Context, c gw2.Executor) ([]string, error) {
	return fetch[[]string](ctx, c, dungeonsDescriptor, nil)
}

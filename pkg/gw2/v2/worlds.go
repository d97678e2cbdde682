package v2

import (
	"context"

	"github.com/tyria-io/gw2go/pkg/gw2"
)

// World is a game world.
type World struct {
	ID         uint64     `json:"id"         yaml:"id"`
	Name       string     `json:"name"       yaml:"name"`
	Population Population `json:"population" yaml:"population"`
}

// Population is the population bracket of a World.
type Population string

// All population brackets, most crowded first.
const (
	PopulationFull     Population = "Full"
	PopulationVeryHigh Population = "VeryHigh"
	PopulationHigh     Population = "High"
	PopulationMedium   Population = "Medium"
)

// Rank orders population brackets; a higher rank means a fuller world.
func (p Population) Rank() int {
	switch p {
	case PopulationFull:
		return 3
	case PopulationVeryHigh:
		return 2
	case PopulationHigh:
		return 1
	default:
		return 0
	}
}

var worldsDescriptor = gw2.Descriptor{Path: "/v2/worlds", Localized: true}

// GetWorld returns the world with the given id.
func GetWorld(ctx context.Context, c gw2.Executor, id uint64) (World, error) {
	return fetch[World](ctx, c, worldsDescriptor, gw2.One(id))
}

// GetWorlds returns the worlds with the given ids, in the given order.
func GetWorlds(ctx context.Context, c gw2.Executor, ids ...uint64) ([]World, error) {
	return fetch[[]World](ctx, c, worldsDescriptor, gw2.Many(ids...))
}

// AllWorlds returns every world.
func AllWorlds(ctx context.Context, c gw2.Executor) ([]World, error) {
	return fetch[[]World](ctx, c, worldsDescriptor, gw2.All())
}

// WorldIDs returns the ids of all worlds.
func WorldIDs(ctx context.Context, c gw2.Executor) ([]uint64, error) {
	return fetch[[]uint64](ctx, c, worldsDescriptor, nil)
}

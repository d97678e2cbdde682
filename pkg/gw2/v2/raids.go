package v2

import (
	"context"

	"github.com/tyria-io/gw2go/pkg/gw2"
)

// Raid is a raid and its wings.
type Raid struct {
	ID    string     `json:"id"    yaml:"id"`
	Wings []RaidWing `json:"wings" yaml:"wings"`
}

// RaidWing is one wing of a Raid.
type RaidWing struct {
	ID     string      `json:"id"     yaml:"id"`
	Events []RaidEvent `json:"events" yaml:"events"`
}

// RaidEvent is a boss or checkpoint event within a RaidWing.
type RaidEvent struct {
	ID   string `json:"id"   yaml:"id"`
	Type string `json:"type" yaml:"type"`
}

var raidsDescriptor = gw2.Descriptor{Path: "/v2/raids"}

// GetRaid returns the raid with the given id.
func GetRaid(ctx context.Context, c gw2.Executor, id string) (Raid, error) {
	return fetch[Raid](ctx, c, raidsDescriptor, gw2.One(id))
}

// GetRaids returns the raids with the given ids, in the given order.
func GetRaids(ctx context.Context, c gw2.Executor, ids ...string) ([]Raid, error) {
	return fetch[[]Raid](ctx, c, raidsDescriptor, gw2.Many(ids...))
}

// AllRaids returns every raid.
func AllRaids(ctx context.Context, c gw2.Executor) ([]Raid, error) {
	return fetch[[]Raid](ctx, c, raidsDescriptor, gw2.All())
}

// RaidIDs returns the ids of all raids.
func RaidIDs(ctx context.Context, c gw2.Executor) ([]string, error) {
	return fetch[[]string](ctx, c, raidsDescriptor, nil)
}

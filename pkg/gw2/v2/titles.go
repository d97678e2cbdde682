package v2

import (
	"context"

	"github.com/tyria-io/gw2go/pkg/gw2"
)

// Title is an account title.
type Title struct {
	ID           uint64   `json:"id"                    yaml:"id"`
	Name         string   `json:"name"                  yaml:"name"`
	Achievements []uint64 `json:"achievements,omitempty" yaml:"achievements,omitempty"`
	APRequired   *uint64  `json:"ap_required,omitempty" yaml:"ap_required,omitempty"`
}

var titlesDescriptor = gw2.Descriptor{Path: "/v2/titles", Localized: true}

// GetTitle returns the title with the given id.
func GetTitle(ctx context.Context, c gw2.Executor, id uint64) (Title, error) {
	return fetch[Title](ctx, c, titlesDescriptor, gw2.One(id))
}

// GetTitles returns the titles with the given ids, in the given order.
func GetTitles(ctx context.Context, c gw2.Executor, ids ...uint64) ([]Title, error) {
	return fetch[[]Title](ctx, c, titlesDescriptor, gw2.Many(ids...))
}

// AllTitles returns every title.
func AllTitles(ctx context.Context, c gw2.Executor) ([]Title, error) {
	return fetch[[]Title](ctx, c, titlesDescriptor, gw2.All())
}

// TitleIDs returns the ids of all titles.
func TitleIDs(ctx context.Context, c gw2.Executor) ([]uint64, error) {
	return fetch[[]uint64](ctx, c, titlesDescriptor, nil)
}

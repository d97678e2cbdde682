package v2

import (
	"context"

	"github.com/tyria-io/gw2go/pkg/gw2"
)

// Color is a dye color.
type Color struct {
	ID         uint64         `json:"id"            yaml:"id"`
	Name       string         `json:"name"          yaml:"name"`
	BaseRGB    [3]int         `json:"base_rgb"      yaml:"base_rgb"`
	Cloth      ColorMaterial  `json:"cloth"         yaml:"cloth"`
	Leather    ColorMaterial  `json:"leather"       yaml:"leather"`
	Metal      ColorMaterial  `json:"metal"         yaml:"metal"`
	Fur        *ColorMaterial `json:"fur,omitempty" yaml:"fur,omitempty"`
	Item       *uint64        `json:"item,omitempty" yaml:"item,omitempty"`
	Categories []string       `json:"categories"    yaml:"categories"`
}

// ColorMaterial describes how a color appears on one armor material.
type ColorMaterial struct {
	Brightness int     `json:"brightness" yaml:"brightness"`
	Contrast   float64 `json:"contrast"   yaml:"contrast"`
	Hue        int     `json:"hue"        yaml:"hue"`
	Saturation float64 `json:"saturation" yaml:"saturation"`
	Lightness  float64 `json:"lightness"  yaml:"lightness"`
	RGB        [3]int  `json:"rgb"        yaml:"rgb"`
}

var colorsDescriptor = gw2.Descriptor{Path: "/v2/colors", Localized: true}

// GetColor returns the dye color with the given id.
func GetColor(ctx context.Context, c gw2.Executor, id uint64) (Color, error) {
	return fetch[Color](ctx, c, colorsDescriptor, gw2.One(id))
}

// GetColors returns the dye colors with the given ids, in the given order.
func GetColors(ctx context.Context, c gw2.Executor, ids ...uint64) ([]Color, error) {
	return fetch[[]Color](ctx, c, colorsDescriptor, gw2.Many(ids...))
}

// AllColors returns every dye color.
func AllColors(ctx context.Context, c gw2.Executor) ([]Color, error) {
	return fetch[[]Color](ctx, c, colorsDescriptor, gw2.All())
}

// ColorIDs returns the ids of all dye colors.
func ColorIDs(ctx context.Context, c gw2.Executor) ([]uint64, error) {
	return fetch[[]uint64](ctx, c, colorsDescriptor, nil)
}

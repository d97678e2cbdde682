package v2

import (
	"context"
	"fmt"
	"net/url"

	"github.com/tyria-io/gw2go/pkg/gw2"
)

// Guild is the public core of a guild. The optional fields are only
// populated when the access token belongs to a guild leader.
type Guild struct {
	ID             string       `json:"id"                        yaml:"id"`
	Name           string       `json:"name"                      yaml:"name"`
	Tag            string       `json:"tag"                       yaml:"tag"`
	Emblem         *GuildEmblem `json:"emblem,omitempty"          yaml:"emblem,omitempty"`
	Level          *int         `json:"level,omitempty"           yaml:"level,omitempty"`
	MOTD           *string      `json:"motd,omitempty"            yaml:"motd,omitempty"`
	Influence      *uint64      `json:"influence,omitempty"       yaml:"influence,omitempty"`
	Aetherium      *uint64      `json:"aetherium,omitempty"       yaml:"aetherium,omitempty"`
	Favor          *uint64      `json:"favor,omitempty"           yaml:"favor,omitempty"`
	MemberCount    *int         `json:"member_count,omitempty"    yaml:"member_count,omitempty"`
	MemberCapacity *int         `json:"member_capacity,omitempty" yaml:"member_capacity,omitempty"`
}

// GuildEmblem is a guild's emblem composition.
type GuildEmblem struct {
	Background GuildEmblemLayer `json:"background" yaml:"background"`
	Foreground GuildEmblemLayer `json:"foreground" yaml:"foreground"`
	Flags      []string         `json:"flags"      yaml:"flags"`
}

// GuildEmblemLayer is one layer of a GuildEmblem.
type GuildEmblemLayer struct {
	ID     uint64   `json:"id"     yaml:"id"`
	Colors []uint64 `json:"colors" yaml:"colors"`
}

// GuildMember is one member of a guild roster.
type GuildMember struct {
	Name   string  `json:"name"             yaml:"name"`
	Rank   string  `json:"rank"             yaml:"rank"`
	Joined *string `json:"joined,omitempty" yaml:"joined,omitempty"`
}

// GuildRank is one rank of a guild's rank ladder.
type GuildRank struct {
	ID          string   `json:"id"          yaml:"id"`
	Order       int      `json:"order"       yaml:"order"`
	Permissions []string `json:"permissions" yaml:"permissions"`
	Icon        string   `json:"icon"        yaml:"icon"`
}

// GetGuild returns the guild with the given id. A leader token unlocks the
// private fields.
func GetGuild(ctx context.Context, c gw2.Executor, id string) (Guild, error) {
	req := gw2.NewRequest(fmt.Sprintf("/v2/guild/%s", url.PathEscape(id)), gw2.AuthOptional, false)

	return gw2.Fetch[Guild](ctx, c, req)
}

// SearchGuilds returns the ids of guilds matching the given full name.
func SearchGuilds(ctx context.Context, c gw2.Executor, name string) ([]string, error) {
	req := gw2.NewRequest(fmt.Sprintf("/v2/guild/search?name=%s", url.QueryEscape(name)), gw2.AuthNone, false)

	return gw2.Fetch[[]string](ctx, c, req)
}

// GetGuildMembers returns the roster of the guild with the given id. The
// access token must belong to a member with the roster permission.
func GetGuildMembers(ctx context.Context, c gw2.Executor, id string) ([]GuildMember, error) {
	req := gw2.NewRequest(fmt.Sprintf("/v2/guild/%s/members", url.PathEscape(id)), gw2.AuthRequired, false)

	return gw2.Fetch[[]GuildMember](ctx, c, req)
}

// GetGuildRanks returns the rank ladder of the guild with the given id.
func GetGuildRanks(ctx context.Context, c gw2.Executor, id string) ([]GuildRank, error) {
	req := gw2.NewRequest(fmt.Sprintf("/v2/guild/%s/ranks", url.PathEscape(id)), gw2.AuthRequired, false)

	return gw2.Fetch[[]GuildRank](ctx, c, req)
}

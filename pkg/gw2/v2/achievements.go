package v2

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tyria-io/gw2go/pkg/gw2"
)

// Achievement is an achievement definition.
type Achievement struct {
	ID            uint64              `json:"id"                      yaml:"id"`
	Icon          string              `json:"icon,omitempty"          yaml:"icon,omitempty"`
	Name          string              `json:"name"                    yaml:"name"`
	Description   string              `json:"description"             yaml:"description"`
	Requirement   string              `json:"requirement"             yaml:"requirement"`
	LockedText    string              `json:"locked_text"             yaml:"locked_text"`
	Type          string              `json:"type"                    yaml:"type"`
	Flags         []string            `json:"flags"                   yaml:"flags"`
	Tiers         []AchievementTier   `json:"tiers"                   yaml:"tiers"`
	Prerequisites []uint64            `json:"prerequisites,omitempty" yaml:"prerequisites,omitempty"`
	Rewards       []AchievementReward `json:"rewards,omitempty"       yaml:"rewards,omitempty"`
	Bits          []AchievementBit    `json:"bits,omitempty"          yaml:"bits,omitempty"`
	PointCap      *int                `json:"point_cap,omitempty"     yaml:"point_cap,omitempty"`
}

// AchievementTier is one completion tier of an Achievement.
type AchievementTier struct {
	Count  int `json:"count"  yaml:"count"`
	Points int `json:"points" yaml:"points"`
}

// Reward and bit variants carried in the Type field of AchievementReward
// and AchievementBit.
const (
	RewardCoins   = "Coins"
	RewardItem    = "Item"
	RewardMastery = "Mastery"
	RewardTitle   = "Title"

	BitText    = "Text"
	BitItem    = "Item"
	BitMinipet = "Minipet"
	BitSkin    = "Skin"
)

// AchievementReward is a tagged union over the reward variants. Which
// fields are meaningful depends on Type: Coins carries Count, Item carries
// ID and Count, Mastery carries ID and Region, Title carries ID.
type AchievementReward struct {
	Type   string `json:"type"             yaml:"type"`
	ID     uint64 `json:"id,omitempty"     yaml:"id,omitempty"`
	Count  int    `json:"count,omitempty"  yaml:"count,omitempty"`
	Region string `json:"region,omitempty" yaml:"region,omitempty"`
}

// UnmarshalJSON decodes a reward and rejects unknown type tags.
func (r *AchievementReward) UnmarshalJSON(data []byte) error {
	type plain AchievementReward

	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch v.Type {
	case RewardCoins, RewardItem, RewardMastery, RewardTitle:
	default:
		return fmt.Errorf("unknown achievement reward type %q", v.Type)
	}

	*r = AchievementReward(v)

	return nil
}

// AchievementBit is a tagged union over the progress bit variants. Text
// carries Text; Item, Minipet and Skin carry ID.
type AchievementBit struct {
	Type string `json:"type"           yaml:"type"`
	ID   uint64 `json:"id,omitempty"   yaml:"id,omitempty"`
	Text string `json:"text,omitempty" yaml:"text,omitempty"`
}

// UnmarshalJSON decodes a bit and rejects unknown type tags.
func (b *AchievementBit) UnmarshalJSON(data []byte) error {
	type plain AchievementBit

	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch v.Type {
	case BitText, BitItem, BitMinipet, BitSkin:
	default:
		return fmt.Errorf("unknown achievement bit type %q", v.Type)
	}

	*b = AchievementBit(v)

	return nil
}

// The achievements family rejects ids=all upstream, so there is no All
// operation here.
var achievementsDescriptor = gw2.Descriptor{Path: "/v2/achievements", Localized: true}

// GetAchievement returns the achievement with the given id.
func GetAchievement(ctx context.Context, c gw2.Executor, id uint64) (Achievement, error) {
	return fetch[Achievement](ctx, c, achievementsDescriptor, gw2.One(id))
}

// GetAchievements returns the achievements with the given ids, in the given
// order.
func GetAchievements(ctx context.Context, c gw2.Executor, ids ...uint64) ([]Achievement, error) {
	return fetch[[]Achievement](ctx, c, achievementsDescriptor, gw2.Many(ids...))
}

// AchievementIDs returns the ids of all achievements.
func AchievementIDs(ctx context.Context, c gw2.Executor) ([]uint64, error) {
	return fetch[[]uint64](ctx, c, achievementsDescriptor, nil)
}

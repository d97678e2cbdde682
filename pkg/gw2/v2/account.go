package v2

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/tyria-io/gw2go/pkg/gw2"
)

// Account is the account behind the configured access token.
type Account struct {
	ID                string        `json:"id"                            yaml:"id"`
	Age               uint64        `json:"age"                           yaml:"age"`
	Name              string        `json:"name"                          yaml:"name"`
	World             uint64        `json:"world"                         yaml:"world"`
	Guilds            []string      `json:"guilds"                        yaml:"guilds"`
	GuildLeader       []string      `json:"guild_leader,omitempty"        yaml:"guild_leader,omitempty"`
	Created           time.Time     `json:"created"                       yaml:"created"`
	Access            AccountAccess `json:"access"                        yaml:"access"`
	Commander         bool          `json:"commander"                     yaml:"commander"`
	FractalLevel      *int          `json:"fractal_level,omitempty"       yaml:"fractal_level,omitempty"`
	DailyAP           *int          `json:"daily_ap,omitempty"            yaml:"daily_ap,omitempty"`
	MonthlyAP         *int          `json:"monthly_ap,omitempty"          yaml:"monthly_ap,omitempty"`
	WvWRank           *int          `json:"wvw_rank,omitempty"            yaml:"wvw_rank,omitempty"`
	LastModified      time.Time     `json:"last_modified"                 yaml:"last_modified"`
	BuildStorageSlots *int          `json:"build_storage_slots,omitempty" yaml:"build_storage_slots,omitempty"`
}

// AccountAccess is the set of game content an account owns. It is encoded
// on the wire as an array of access names.
type AccountAccess uint

// Access flags, one bit per purchasable content block.
const (
	AccessPlayForFree AccountAccess = 1 << iota
	AccessGuildWars2
	AccessHeartOfThorns
	AccessPathOfFire
	AccessEndOfDragons
)

// accessNames orders the wire names for deterministic marshaling.
var accessNames = []struct {
	flag AccountAccess
	name string
}{
	{AccessPlayForFree, "PlayForFree"},
	{AccessGuildWars2, "GuildWars2"},
	{AccessHeartOfThorns, "HeartOfThorns"},
	{AccessPathOfFire, "PathOfFire"},
	{AccessEndOfDragons, "EndOfDragons"},
}

// Has reports whether every bit of flag is set.
func (a AccountAccess) Has(flag AccountAccess) bool {
	return a&flag == flag
}

// String returns the set access names joined by commas, or "None".
func (a AccountAccess) String() string {
	names := make([]string, 0, len(accessNames))
	for _, entry := range accessNames {
		if a.Has(entry.flag) {
			names = append(names, entry.name)
		}
	}

	if len(names) == 0 {
		return "None"
	}

	return strings.Join(names, ", ")
}

// MarshalJSON encodes the set bits as an array of access names.
func (a AccountAccess) MarshalJSON() ([]byte, error) {
	names := make([]string, 0, len(accessNames))
	for _, entry := range accessNames {
		if a.Has(entry.flag) {
			names = append(names, entry.name)
		}
	}

	return json.Marshal(names)
}

// UnmarshalJSON decodes an array of access names. Unknown names are a hard
// decode error; "None" is accepted and contributes no bits.
func (a *AccountAccess) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}

	var acc AccountAccess

	for _, name := range names {
		if name == "None" {
			continue
		}

		matched := false

		for _, entry := range accessNames {
			if entry.name == name {
				acc |= entry.flag
				matched = true

				break
			}
		}

		if !matched {
			return fmt.Errorf("unknown account access %q", name)
		}
	}

	*a = acc

	return nil
}

// AccountAchievement is the account's progress on one achievement.
type AccountAchievement struct {
	ID       uint64 `json:"id"                 yaml:"id"`
	Bits     []int  `json:"bits,omitempty"     yaml:"bits,omitempty"`
	Current  *int   `json:"current,omitempty"  yaml:"current,omitempty"`
	Max      *int   `json:"max,omitempty"      yaml:"max,omitempty"`
	Done     bool   `json:"done"               yaml:"done"`
	Repeated *int   `json:"repeated,omitempty" yaml:"repeated,omitempty"`
	Unlocked *bool  `json:"unlocked,omitempty" yaml:"unlocked,omitempty"`
}

// InventorySlot is one occupied slot of the account bank or shared
// inventory. Empty slots arrive as JSON null, so containers hold pointers.
type InventorySlot struct {
	ID        uint64   `json:"id"                  yaml:"id"`
	Count     int      `json:"count"               yaml:"count"`
	Charges   *int     `json:"charges,omitempty"   yaml:"charges,omitempty"`
	Skin      *uint64  `json:"skin,omitempty"      yaml:"skin,omitempty"`
	Upgrades  []uint64 `json:"upgrades,omitempty"  yaml:"upgrades,omitempty"`
	Infusions []uint64 `json:"infusions,omitempty" yaml:"infusions,omitempty"`
	Binding   *string  `json:"binding,omitempty"   yaml:"binding,omitempty"`
	BoundTo   *string  `json:"bound_to,omitempty"  yaml:"bound_to,omitempty"`
}

// AccountFinisher is an unlocked finisher. Permanent defaults to true when
// the upstream omits it.
type AccountFinisher struct {
	ID        uint64 `json:"id"                 yaml:"id"`
	Permanent bool   `json:"permanent"          yaml:"permanent"`
	Quantity  *int   `json:"quantity,omitempty" yaml:"quantity,omitempty"`
}

// UnmarshalJSON decodes a finisher, defaulting Permanent to true.
func (f *AccountFinisher) UnmarshalJSON(data []byte) error {
	type plain AccountFinisher

	v := plain{Permanent: true}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*f = AccountFinisher(v)

	return nil
}

// AccountLuck is the account's total luck. The upstream encodes it as an
// array holding at most one {id, value} element.
type AccountLuck uint64

// UnmarshalJSON decodes the array-of-one luck encoding. An empty array
// yields zero luck.
func (l *AccountLuck) UnmarshalJSON(data []byte) error {
	var entries []struct {
		ID    string `json:"id"`
		Value uint64 `json:"value"`
	}

	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}

	*l = 0

	for _, entry := range entries {
		if entry.ID == "luck" {
			*l = AccountLuck(entry.Value)
		}
	}

	return nil
}

// MarshalJSON encodes the luck total back into the upstream's array form.
func (l AccountLuck) MarshalJSON() ([]byte, error) {
	if l == 0 {
		return []byte("[]"), nil
	}

	return json.Marshal([]map[string]interface{}{
		{"id": "luck", "value": uint64(l)},
	})
}

var (
	accountDescriptor              = gw2.Descriptor{Path: "/v2/account", Auth: gw2.AuthRequired}
	accountAchievementsDescriptor  = gw2.Descriptor{Path: "/v2/account/achievements", Auth: gw2.AuthRequired}
	accountBankDescriptor          = gw2.Descriptor{Path: "/v2/account/bank", Auth: gw2.AuthRequired}
	accountDailyCraftingDescriptor = gw2.Descriptor{Path: "/v2/account/dailycrafting", Auth: gw2.AuthRequired}
	accountDungeonsDescriptor      = gw2.Descriptor{Path: "/v2/account/dungeons", Auth: gw2.AuthRequired}
	accountDyesDescriptor          = gw2.Descriptor{Path: "/v2/account/dyes", Auth: gw2.AuthRequired}
	accountFinishersDescriptor     = gw2.Descriptor{Path: "/v2/account/finishers", Auth: gw2.AuthRequired}
	accountGlidersDescriptor       = gw2.Descriptor{Path: "/v2/account/gliders", Auth: gw2.AuthRequired}
	accountHomeCatsDescriptor      = gw2.Descriptor{Path: "/v2/account/home/cats", Auth: gw2.AuthRequired}
	accountHomeNodesDescriptor     = gw2.Descriptor{Path: "/v2/account/home/nodes", Auth: gw2.AuthRequired}
	accountInventoryDescriptor     = gw2.Descriptor{Path: "/v2/account/inventory", Auth: gw2.AuthRequired}
	accountLuckDescriptor          = gw2.Descriptor{Path: "/v2/account/luck", Auth: gw2.AuthRequired}
	accountMinisDescriptor         = gw2.Descriptor{Path: "/v2/account/minis", Auth: gw2.AuthRequired}
)

// GetAccount returns the account behind the access token.
func GetAccount(ctx context.Context, c gw2.Executor) (Account, error) {
	return fetch[Account](ctx, c, accountDescriptor, nil)
}

// GetAccountAchievements returns the account's achievement progress.
func GetAccountAchievements(ctx context.Context, c gw2.Executor) ([]AccountAchievement, error) {
	return fetch[[]AccountAchievement](ctx, c, accountAchievementsDescriptor, nil)
}

// GetAccountBank returns the account bank. Empty slots are nil.
func GetAccountBank(ctx context.Context, c gw2.Executor) ([]*InventorySlot, error) {
	return fetch[[]*InventorySlot](ctx, c, accountBankDescriptor, nil)
}

// GetAccountDailyCrafting returns the time-gated recipes crafted since the
// last daily reset.
func GetAccountDailyCrafting(ctx context.Context, c gw2.Executor) ([]string, error) {
	return fetch[[]string](ctx, c, accountDailyCraftingDescriptor, nil)
}

// GetAccountDungeons returns the dungeon paths completed since the last
// daily reset.
func GetAccountDungeons(ctx context.Context, c gw2.Executor) ([]string, error) {
	return fetch[[]string](ctx, c, accountDungeonsDescriptor, nil)
}

// GetAccountDyes returns the ids of the account's unlocked dye colors.
func GetAccountDyes(ctx context.Context, c gw2.Executor) ([]uint64, error) {
	return fetch[[]uint64](ctx, c, accountDyesDescriptor, nil)
}

// GetAccountFinishers returns the account's unlocked finishers.
func GetAccountFinishers(ctx context.Context, c gw2.Executor) ([]AccountFinisher, error) {
	return fetch[[]AccountFinisher](ctx, c, accountFinishersDescriptor, nil)
}

// GetAccountGliders returns the ids of the account's unlocked gliders.
func GetAccountGliders(ctx context.Context, c gw2.Executor) ([]uint64, error) {
	return fetch[[]uint64](ctx, c, accountGlidersDescriptor, nil)
}

// GetAccountHomeCats returns the ids of the cats in the home instance.
func GetAccountHomeCats(ctx context.Context, c gw2.Executor) ([]uint64, error) {
	return fetch[[]uint64](ctx, c, accountHomeCatsDescriptor, nil)
}

// GetAccountHomeNodes returns the unlocked home instance nodes.
func GetAccountHomeNodes(ctx context.Context, c gw2.Executor) ([]string, error) {
	return fetch[[]string](ctx, c, accountHomeNodesDescriptor, nil)
}

// GetAccountInventory returns the shared inventory. Empty slots are nil.
func GetAccountInventory(ctx context.Context, c gw2.Executor) ([]*InventorySlot, error) {
	return fetch[[]*InventorySlot](ctx, c, accountInventoryDescriptor, nil)
}

// GetAccountMinis returns the ids of the account's unlocked minis.
func GetAccountMinis(ctx context.Context, c gw2.Executor) ([]uint64, error) {
	return fetch[[]uint64](ctx, c, accountMinisDescriptor, nil)
}

// GetAccountLuck returns the account's total luck.
func GetAccountLuck(ctx context.Context, c gw2.Executor) (AccountLuck, error) {
	return fetch[AccountLuck](ctx, c, accountLuckDescriptor, nil)
}

package v2_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tyria-io/gw2go/pkg/gw2"
	v2 "github.com/tyria-io/gw2go/pkg/gw2/v2"
)

func TestAccountAccessCodec(t *testing.T) {
	t.Parallel()

	t.Run("decodes known names into bits", func(t *testing.T) {
		t.Parallel()

		var access v2.AccountAccess
		require.NoError(t, json.Unmarshal([]byte(`["GuildWars2", "HeartOfThorns", "PathOfFire"]`), &access))

		assert.True(t, access.Has(v2.AccessGuildWars2))
		assert.True(t, access.Has(v2.AccessHeartOfThorns))
		assert.True(t, access.Has(v2.AccessPathOfFire))
		assert.False(t, access.Has(v2.AccessPlayForFree))
		assert.False(t, access.Has(v2.AccessEndOfDragons))
	})

	t.Run("none contributes no bits", func(t *testing.T) {
		t.Parallel()

		var access v2.AccountAccess
		require.NoError(t, json.Unmarshal([]byte(`["None"]`), &access))
		assert.Zero(t, access)
	})

	t.Run("unknown name is a hard decode error", func(t *testing.T) {
		t.Parallel()

		var access v2.AccountAccess
		err := json.Unmarshal([]byte(`["GuildWars2", "SecretExpansion"]`), &access)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SecretExpansion")
	})

	t.Run("marshals back to ordered names", func(t *testing.T) {
		t.Parallel()

		access := v2.AccessEndOfDragons | v2.AccessGuildWars2

		data, err := json.Marshal(access)
		require.NoError(t, err)
		assert.JSONEq(t, `["GuildWars2", "EndOfDragons"]`, string(data))
	})
}

func TestAccountLuckCodec(t *testing.T) {
	t.Parallel()

	t.Run("array of one", func(t *testing.T) {
		t.Parallel()

		var luck v2.AccountLuck
		require.NoError(t, json.Unmarshal([]byte(`[{"id": "luck", "value": 4295432}]`), &luck))
		assert.Equal(t, v2.AccountLuck(4295432), luck)
	})

	t.Run("empty array means zero luck", func(t *testing.T) {
		t.Parallel()

		var luck v2.AccountLuck
		require.NoError(t, json.Unmarshal([]byte(`[]`), &luck))
		assert.Zero(t, luck)
	})

	t.Run("marshals to the array form", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(v2.AccountLuck(500))
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id": "luck", "value": 500}]`, string(data))

		data, err = json.Marshal(v2.AccountLuck(0))
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(data))
	})
}

func TestAccountFinisherDefaults(t *testing.T) {
	t.Parallel()

	var finishers []v2.AccountFinisher
	require.NoError(t, json.Unmarshal([]byte(`[
		{"id": 1},
		{"id": 2, "permanent": false, "quantity": 12}
	]`), &finishers))
	require.Len(t, finishers, 2)

	assert.True(t, finishers[0].Permanent)
	assert.Nil(t, finishers[0].Quantity)

	assert.False(t, finishers[1].Permanent)
	require.NotNil(t, finishers[1].Quantity)
	assert.Equal(t, 12, *finishers[1].Quantity)
}

func TestGetAccount(t *testing.T) {
	t.Parallel()

	server := newAuthServer(t, "/v2/account", `{
		"id": "C19467C6-F5AD-E811-81A8-CDE2AC1EED30",
		"age": 22911780,
		"name": "Player.1234",
		"world": 2003,
		"guilds": ["116E0C0E-0035-44A9-BB22-4AE3E23127E5"],
		"created": "2015-09-21T13:49:00Z",
		"access": ["GuildWars2", "HeartOfThorns"],
		"commander": true,
		"fractal_level": 100,
		"last_modified": "2024-05-01T17:25:00Z"
	}`)

	client := gw2.NewBuilder().
		BaseURL(server).
		AccessToken("token").
		Build()

	account, err := v2.GetAccount(context.Background(), client)
	require.NoError(t, err)

	assert.Equal(t, "Player.1234", account.Name)
	assert.Equal(t, uint64(2003), account.World)
	assert.True(t, account.Access.Has(v2.AccessHeartOfThorns))
	assert.True(t, account.Commander)
	require.NotNil(t, account.FractalLevel)
	assert.Equal(t, 100, *account.FractalLevel)
	assert.Equal(t, 2015, account.Created.Year())
}

func TestGetAccountWithoutToken(t *testing.T) {
	t.Parallel()

	client := gw2.NewBuilder().Build()

	_, err := v2.GetAccount(context.Background(), client)
	require.Error(t, err)
	assert.True(t, gw2.IsNoAccessToken(err))
}

func TestGetAccountBankNullSlots(t *testing.T) {
	t.Parallel()

	server := newAuthServer(t, "/v2/account/bank", `[
		{"id": 12134, "count": 1, "binding": "Account"},
		null,
		{"id": 24876, "count": 250}
	]`)

	client := gw2.NewBuilder().
		BaseURL(server).
		AccessToken("token").
		Build()

	bank, err := v2.GetAccountBank(context.Background(), client)
	require.NoError(t, err)
	require.Len(t, bank, 3)

	assert.NotNil(t, bank[0])
	assert.Nil(t, bank[1])
	require.NotNil(t, bank[2])
	assert.Equal(t, 250, bank[2].Count)
}

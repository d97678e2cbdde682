//go:build integration

package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tyria-io/gw2go/pkg/gw2"
	v2 "github.com/tyria-io/gw2go/pkg/gw2/v2"
)

func TestLivePublicEndpoints(t *testing.T) {
	SkipUnlessLive(t)

	config := LoadTestConfig()
	client := config.NewClient()
	ctx := context.Background()

	t.Run("build", func(t *testing.T) {
		build, err := v2.GetBuild(ctx, client)
		require.NoError(t, err)
		assert.Positive(t, build.ID)
	})

	t.Run("worlds", func(t *testing.T) {
		worlds, err := v2.AllWorlds(ctx, client)
		require.NoError(t, err)
		assert.NotEmpty(t, worlds)

		for _, world := range worlds {
			assert.NotEmpty(t, world.Name)
		}
	})

	t.Run("unknown id surfaces an api error", func(t *testing.T) {
		_, err := v2.GetWorld(ctx, client, 1)
		require.Error(t, err)
		assert.True(t, gw2.IsAPI(err))
	})

	t.Run("exchange", func(t *testing.T) {
		rate, err := v2.ExchangeGems(ctx, client, 400)
		require.NoError(t, err)
		assert.Positive(t, rate.CoinsPerGem)
	})
}

func TestLiveAuthenticatedEndpoints(t *testing.T) {
	SkipUnlessLive(t)

	config := LoadTestConfig()
	config.SkipWithoutToken(t)

	client := config.NewClient()
	ctx := context.Background()

	t.Run("tokeninfo", func(t *testing.T) {
		info, err := v2.GetTokenInfo(ctx, client)
		require.NoError(t, err)
		assert.Contains(t, info.Permissions, "account")
	})

	t.Run("account", func(t *testing.T) {
		account, err := v2.GetAccount(ctx, client)
		require.NoError(t, err)
		assert.NotEmpty(t, account.Name)
		assert.Positive(t, account.World)
	})
}

func TestLiveBlockingClient(t *testing.T) {
	SkipUnlessLive(t)

	config := LoadTestConfig()
	client := config.NewClient().Blocking()

	build, err := v2.GetBuild(context.Background(), client)
	require.NoError(t, err)
	assert.Positive(t, build.ID)
}

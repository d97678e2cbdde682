package v2_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tyria-io/gw2go/pkg/gw2"
	v2 "github.com/tyria-io/gw2go/pkg/gw2/v2"
)

func TestGetGuild(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/guild/116E0C0E-0035-44A9-BB22-4AE3E23127E5", r.URL.Path)

		_, _ = w.Write([]byte(`{
			"id": "116E0C0E-0035-44A9-BB22-4AE3E23127E5",
			"name": "Edit Conflict",
			"tag": "wiki",
			"emblem": {
				"background": {"id": 2, "colors": [473]},
				"foreground": {"id": 58, "colors": [70, 473]},
				"flags": ["FlipBackgroundHorizontal"]
			}
		}`))
	})

	guild, err := v2.GetGuild(context.Background(), client, "116E0C0E-0035-44A9-BB22-4AE3E23127E5")
	require.NoError(t, err)

	assert.Equal(t, "Edit Conflict", guild.Name)
	assert.Equal(t, "wiki", guild.Tag)
	require.NotNil(t, guild.Emblem)
	assert.Equal(t, []uint64{70, 473}, guild.Emblem.Foreground.Colors)
	assert.Nil(t, guild.MemberCount)
}

func TestSearchGuilds(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/guild/search", r.URL.Path)
		assert.Equal(t, "Edit Conflict", r.URL.Query().Get("name"))

		_, _ = w.Write([]byte(`["116E0C0E-0035-44A9-BB22-4AE3E23127E5"]`))
	})

	ids, err := v2.SearchGuilds(context.Background(), client, "Edit Conflict")
	require.NoError(t, err)
	assert.Equal(t, []string{"116E0C0E-0035-44A9-BB22-4AE3E23127E5"}, ids)
}

func TestGetGuildMembers(t *testing.T) {
	t.Parallel()

	server := newAuthServer(t, "/v2/guild/116E0C0E/members", `[
		{"name": "Player.1234", "rank": "Leader", "joined": "2015-07-22T06:18:35.000Z"},
		{"name": "Other.5678", "rank": "Member", "joined": null}
	]`)

	client := gw2.NewBuilder().
		BaseURL(server).
		AccessToken("token").
		Build()

	members, err := v2.GetGuildMembers(context.Background(), client, "116E0C0E")
	require.NoError(t, err)
	require.Len(t, members, 2)

	assert.Equal(t, "Leader", members[0].Rank)
	assert.Nil(t, members[1].Joined)
}

func TestGetGuildRanksRequiresToken(t *testing.T) {
	t.Parallel()

	client := gw2.NewBuilder().Build()

	_, err := v2.GetGuildRanks(context.Background(), client, "116E0C0E")
	require.Error(t, err)
	assert.True(t, gw2.IsNoAccessToken(err))
}

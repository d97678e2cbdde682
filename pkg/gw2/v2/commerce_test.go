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

func TestExchangeCoins(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/commerce/exchange/coins", r.URL.Path)
		assert.Equal(t, "quantity=100000", r.URL.RawQuery)

		_, _ = w.Write([]byte(`{"coins_per_gem": 2941, "quantity": 34}`))
	})

	rate, err := v2.ExchangeCoins(context.Background(), client, 100000)
	require.NoError(t, err)
	assert.Equal(t, uint64(2941), rate.CoinsPerGem)
	assert.Equal(t, uint64(34), rate.Quantity)
}

func TestExchangeGems(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/commerce/exchange/gems", r.URL.Path)
		assert.Equal(t, "quantity=400", r.URL.RawQuery)

		_, _ = w.Write([]byte(`{"coins_per_gem": 1841, "quantity": 736400}`))
	})

	rate, err := v2.ExchangeGems(context.Background(), client, 400)
	require.NoError(t, err)
	assert.Equal(t, uint64(736400), rate.Quantity)
}

func TestGetPrices(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/commerce/prices", r.URL.Path)
		assert.Equal(t, "ids=19684,19709", r.URL.RawQuery)

		_, _ = w.Write([]byte(`[
			{"id": 19684, "whitelisted": true,
			 "buys": {"quantity": 286879, "unit_price": 166},
			 "sells": {"quantity": 65094, "unit_price": 179}},
			{"id": 19709, "whitelisted": false,
			 "buys": {"quantity": 52848, "unit_price": 439},
			 "sells": {"quantity": 94142, "unit_price": 478}}
		]`))
	})

	prices, err := v2.GetPrices(context.Background(), client, 19684, 19709)
	require.NoError(t, err)
	require.Len(t, prices, 2)

	assert.True(t, prices[0].Whitelisted)
	assert.Equal(t, uint64(166), prices[0].Buys.UnitPrice)
	assert.Equal(t, uint64(478), prices[1].Sells.UnitPrice)
}

func TestGetItemListings(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/commerce/listings", r.URL.Path)
		assert.Equal(t, "id=19684", r.URL.RawQuery)

		_, _ = w.Write([]byte(`{
			"id": 19684,
			"buys": [{"listings": 12, "unit_price": 165, "quantity": 2907}],
			"sells": [{"listings": 1, "unit_price": 179, "quantity": 28}]
		}`))
	})

	listings, err := v2.GetItemListings(context.Background(), client, 19684)
	require.NoError(t, err)

	require.Len(t, listings.Buys, 1)
	assert.Equal(t, 2907, listings.Buys[0].Quantity)
	require.Len(t, listings.Sells, 1)
	assert.Equal(t, uint64(179), listings.Sells[0].UnitPrice)
}

func TestCurrentBuysRequiresToken(t *testing.T) {
	t.Parallel()

	client := gw2.NewBuilder().Build()

	_, err := v2.CurrentBuys(context.Background(), client)
	require.Error(t, err)
	assert.True(t, gw2.IsNoAccessToken(err))
}

func TestHistorySells(t *testing.T) {
	t.Parallel()

	server := newAuthServer(t, "/v2/commerce/transactions/history/sells", `[
		{"id": 300, "item_id": 19684, "price": 17900, "quantity": 100,
		 "created": "2024-04-30T10:00:00Z", "purchased": "2024-04-30T11:30:00Z"}
	]`)

	client := gw2.NewBuilder().
		BaseURL(server).
		AccessToken("token").
		Build()

	sells, err := v2.HistorySells(context.Background(), client)
	require.NoError(t, err)
	require.Len(t, sells, 1)

	assert.Equal(t, uint64(19684), sells[0].ItemID)
	require.NotNil(t, sells[0].Purchased)
	assert.Equal(t, 11, sells[0].Purchased.Hour())
}

func TestGetCommerceDelivery(t *testing.T) {
	t.Parallel()

	server := newAuthServer(t, "/v2/commerce/delivery", `{
		"coins": 17000,
		"items": [{"id": 19684, "count": 250}]
	}`)

	client := gw2.NewBuilder().
		BaseURL(server).
		AccessToken("token").
		Build()

	delivery, err := v2.GetCommerceDelivery(context.Background(), client)
	require.NoError(t, err)

	assert.Equal(t, uint64(17000), delivery.Coins)
	require.Len(t, delivery.Items, 1)
	assert.Equal(t, 250, delivery.Items[0].Count)
}

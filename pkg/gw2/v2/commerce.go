package v2

import (
	"context"
	"fmt"
	"time"

	"github.com/tyria-io/gw2go/pkg/gw2"
)

// Delivery is the trading post delivery box: coins and items waiting to be
// picked up.
type Delivery struct {
	Coins uint64         `json:"coins" yaml:"coins"`
	Items []DeliveryItem `json:"items" yaml:"items"`
}

// DeliveryItem is one item stack in the delivery box.
type DeliveryItem struct {
	ID    uint64 `json:"id"    yaml:"id"`
	Count int    `json:"count" yaml:"count"`
}

// ExchangeRate is the gem/coin conversion offered for a given quantity.
type ExchangeRate struct {
	CoinsPerGem uint64 `json:"coins_per_gem" yaml:"coins_per_gem"`
	Quantity    uint64 `json:"quantity"      yaml:"quantity"`
}

// ItemListings are the individual buy and sell listings for one item.
type ItemListings struct {
	ID    uint64    `json:"id"    yaml:"id"`
	Buys  []Listing `json:"buys"  yaml:"buys"`
	Sells []Listing `json:"sells" yaml:"sells"`
}

// Listing is one price level of an order book side.
type Listing struct {
	Listings  int    `json:"listings"   yaml:"listings"`
	UnitPrice uint64 `json:"unit_price" yaml:"unit_price"`
	Quantity  int    `json:"quantity"   yaml:"quantity"`
}

// Price is the aggregated best buy and sell offer for one item.
type Price struct {
	ID          uint64    `json:"id"          yaml:"id"`
	Whitelisted bool      `json:"whitelisted" yaml:"whitelisted"`
	Buys        PriceInfo `json:"buys"        yaml:"buys"`
	Sells       PriceInfo `json:"sells"       yaml:"sells"`
}

// PriceInfo is one side of an aggregated Price.
type PriceInfo struct {
	Quantity  int    `json:"quantity"   yaml:"quantity"`
	UnitPrice uint64 `json:"unit_price" yaml:"unit_price"`
}

// Transaction is one trading post order or completed trade.
type Transaction struct {
	ID        uint64     `json:"id"                  yaml:"id"`
	ItemID    uint64     `json:"item_id"             yaml:"item_id"`
	Price     uint64     `json:"price"               yaml:"price"`
	Quantity  int        `json:"quantity"            yaml:"quantity"`
	Created   time.Time  `json:"created"             yaml:"created"`
	Purchased *time.Time `json:"purchased,omitempty" yaml:"purchased,omitempty"`
}

var (
	deliveryDescriptor = gw2.Descriptor{Path: "/v2/commerce/delivery", Auth: gw2.AuthRequired}
	listingsDescriptor = gw2.Descriptor{Path: "/v2/commerce/listings"}
	pricesDescriptor   = gw2.Descriptor{Path: "/v2/commerce/prices"}

	transactionsCurrentBuys  = gw2.Descriptor{Path: "/v2/commerce/transactions/current/buys", Auth: gw2.AuthRequired}
	transactionsCurrentSells = gw2.Descriptor{Path: "/v2/commerce/transactions/current/sells", Auth: gw2.AuthRequired}
	transactionsHistoryBuys  = gw2.Descriptor{Path: "/v2/commerce/transactions/history/buys", Auth: gw2.AuthRequired}
	transactionsHistorySells = gw2.Descriptor{Path: "/v2/commerce/transactions/history/sells", Auth: gw2.AuthRequired}
)

// GetCommerceDelivery returns the delivery box for the account behind the
// access token.
func GetCommerceDelivery(ctx context.Context, c gw2.Executor) (Delivery, error) {
	return fetch[Delivery](ctx, c, deliveryDescriptor, nil)
}

// ExchangeCoins quotes converting the given number of coins to gems.
func ExchangeCoins(ctx context.Context, c gw2.Executor, quantity uint64) (ExchangeRate, error) {
	req := gw2.NewRequest(fmt.Sprintf("/v2/commerce/exchange/coins?quantity=%d", quantity), gw2.AuthNone, false)

	return gw2.Fetch[ExchangeRate](ctx, c, req)
}

// ExchangeGems quotes converting the given number of gems to coins.
func ExchangeGems(ctx context.Context, c gw2.Executor, quantity uint64) (ExchangeRate, error) {
	req := gw2.NewRequest(fmt.Sprintf("/v2/commerce/exchange/gems?quantity=%d", quantity), gw2.AuthNone, false)

	return gw2.Fetch[ExchangeRate](ctx, c, req)
}

// GetItemListings returns the order book for the item with the given id.
func GetItemListings(ctx context.Context, c gw2.Executor, id uint64) (ItemListings, error) {
	return fetch[ItemListings](ctx, c, listingsDescriptor, gw2.One(id))
}

// GetManyItemListings returns the order books for the items with the given
// ids, in the given order.
func GetManyItemListings(ctx context.Context, c gw2.Executor, ids ...uint64) ([]ItemListings, error) {
	return fetch[[]ItemListings](ctx, c, listingsDescriptor, gw2.Many(ids...))
}

// GetPrice returns the aggregated prices for the item with the given id.
func GetPrice(ctx context.Context, c gw2.Executor, id uint64) (Price, error) {
	return fetch[Price](ctx, c, pricesDescriptor, gw2.One(id))
}

// GetPrices returns the aggregated prices for the items with the given ids,
// in the given order.
func GetPrices(ctx context.Context, c gw2.Executor, ids ...uint64) ([]Price, error) {
	return fetch[[]Price](ctx, c, pricesDescriptor, gw2.Many(ids...))
}

// CurrentBuys returns the account's outstanding buy orders.
func CurrentBuys(ctx context.Context, c gw2.Executor) ([]Transaction, error) {
	return fetch[[]Transaction](ctx, c, transactionsCurrentBuys, nil)
}

// CurrentSells returns the account's outstanding sell orders.
func CurrentSells(ctx context.Context, c gw2.Executor) ([]Transaction, error) {
	return fetch[[]Transaction](ctx, c, transactionsCurrentSells, nil)
}

// HistoryBuys returns the account's fulfilled buy orders from the last 90
// days.
func HistoryBuys(ctx context.Context, c gw2.Executor) ([]Transaction, error) {
	return fetch[[]Transaction](ctx, c, transactionsHistoryBuys, nil)
}

// HistorySells returns the account's fulfilled sell orders from the last 90
// days.
func HistorySells(ctx context.Context, c gw2.Executor) ([]Transaction, error) {
	return fetch[[]Transaction](ctx, c, transactionsHistorySells, nil)
}

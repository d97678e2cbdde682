package v2

import (
	"context"

	"github.com/tyria-io/gw2go/pkg/gw2"
)

// Currency is a wallet currency.
type Currency struct {
	ID          uint64 `json:"id"          yaml:"id"`
	Name        string `json:"name"        yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon"        yaml:"icon"`
	Order       int    `json:"order"       yaml:"order"`
}

var currenciesDescriptor = gw2.Descriptor{Path: "/v2/currencies", Localized: true}

// GetCurrency returns the currency with the given id.
func GetCurrency(ctx context.Context, c gw2.Executor, id uint64) (Currency, error) {
	return fetch[Currency](ctx, c, currenciesDescriptor, gw2.One(id))
}

// GetCurrencies returns the currencies with the given ids, in the given order.
func GetCurrencies(ctx context.Context, c gw2.Executor, ids ...uint64) ([]Currency, error) {
	return fetch[[]Currency](ctx, c, currenciesDescriptor, gw2.Many(ids...))
}

// AllCurrencies returns every currency.
func AllCurrencies(ctx context.Context, c gw2.Executor) ([]Currency, error) {
	return fetch[[]Currency](ctx, c, currenciesDescriptor, gw2.All())
}

// CurrencyIDs returns the ids of all currencies.
func CurrencyIDs(ctx context.Context, c gw2.Executor) ([]uint64, error) {
	return fetch[[]uint64](ctx, c, currenciesDescriptor, nil)
}

package v2

import (
	"context"

	"github.com/tyria-io/gw2go/pkg/gw2"
)

// TokenInfo describes the access token used for the request.
type TokenInfo struct {
	ID          string   `json:"id"          yaml:"id"`
	Name        string   `json:"name"        yaml:"name"`
	Permissions []string `json:"permissions" yaml:"permissions"`
}

var tokenInfoDescriptor = gw2.Descriptor{Path: "/v2/tokeninfo", Auth: gw2.AuthRequired}

// GetTokenInfo returns the name and permission grants of the configured
// access token.
func GetTokenInfo(ctx context.Context, c gw2.Executor) (TokenInfo, error) {
	return fetch[TokenInfo](ctx, c, tokenInfoDescriptor, nil)
}

// Package gw2 implements the request-execution pipeline of a typed client
// for the Guild Wars 2 /v2 API.
//
// Endpoints are declared as resource descriptors (see the v2 subpackage)
// and dispatched through one of two executors sharing a single code path: a
// Client whose responses are lazily-polled state machines, and a
// BlockingClient that drives the same machine to completion inline.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/tyria-io/gw2go/pkg/gw2"
//	  "github.com/tyria-io/gw2go/pkg/gw2/v2"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Anonymous client for public endpoints.
//	  client := gw2.New()
//	  build, err := v2.GetBuild(ctx, client)
//	  if err != nil { log.Fatal(err) }
//	  _ = build
//
//	  // Authenticated client with a preferred language.
//	  client = gw2.NewBuilder().
//	    AccessToken("...").
//	    Language(gw2.LanguageDe).
//	    Build()
//	  account, err := v2.GetAccount(ctx, client)
//	  if err != nil { log.Fatal(err) }
//	  _ = account
//	}
//
// Errors carry a closed classification (transport, decode, upstream, or
// missing token); see Error and its predicates. Nothing is retried
// automatically, and the optional rate limiter (Builder.RateLimit) bounds
// requests per rolling 60-second window before dispatch.
package gw2

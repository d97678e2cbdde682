package gw2

import (
	"fmt"
	"strconv"
	"strings"
)

// AuthKind describes an endpoint's authentication requirement.
type AuthKind int

const (
	// AuthNone means the endpoint never uses credentials.
	AuthNone AuthKind = iota

	// AuthOptional means the endpoint accepts credentials when configured
	// but does not require them.
	AuthOptional

	// AuthRequired means the endpoint cannot be called without a token.
	AuthRequired
)

// Descriptor statically declares one API endpoint family: its path, its
// authentication requirement, and whether responses are localized. One
// compiled-in Descriptor exists per distinct endpoint family; the pipeline
// treats them purely as configuration data.
type Descriptor struct {
	Path      string
	Auth      AuthKind
	Localized bool
}

// Request builds a pending request from the descriptor and an optional id
// parameter. A nil param yields the bare path, which for list-style
// endpoints returns the list of ids.
func (d Descriptor) Request(param *IDParam) (Request, error) {
	if param == nil {
		return Request{URI: d.Path, Auth: d.Auth, Localized: d.Localized}, nil
	}

	query, err := param.encode()
	if err != nil {
		return Request{}, err
	}

	return Request{URI: d.Path + "?" + query, Auth: d.Auth, Localized: d.Localized}, nil
}

// Request is one fully-specified, not-yet-dispatched request. It is created
// per call and consumed exactly once by an executor.
type Request struct {
	URI       string
	Auth      AuthKind
	Localized bool
}

// NewRequest builds a request for an interpolated URI, used by endpoints
// whose paths embed parameters (guild lookups, commerce exchange).
func NewRequest(uri string, auth AuthKind, localized bool) Request {
	return Request{URI: uri, Auth: auth, Localized: localized}
}

// localizedURI returns the URI with the lang parameter appended when the
// request is localized. Building the same request with the same language
// always yields a byte-identical string.
func (r Request) localizedURI(lang Language) string {
	if !r.Localized {
		return r.URI
	}

	sep := "?"
	if strings.Contains(r.URI, "?") {
		sep = "&"
	}

	return r.URI + sep + "lang=" + lang.String()
}

// IDType constrains the identifier types used by list-style endpoints.
type IDType interface {
	~uint64 | ~string
}

type idParamKind int

const (
	idParamAll idParamKind = iota
	idParamOne
	idParamMany
)

// IDParam selects which items of a list-style endpoint to fetch: a single
// id, an explicit list of ids, or all items.
type IDParam struct {
	kind idParamKind
	one  string
	many []string
}

// All selects every item of a list-style endpoint.
func All() *IDParam {
	return &IDParam{kind: idParamAll}
}

// One selects a single item by id.
func One[T IDType](id T) *IDParam {
	return &IDParam{kind: idParamOne, one: formatID(id)}
}

// Many selects an explicit list of items. Order is preserved exactly as
// given: no deduplication, no sorting. The list must not be empty.
func Many[T IDType](ids ...T) *IDParam {
	many := make([]string, len(ids))
	for i, id := range ids {
		many[i] = formatID(id)
	}

	return &IDParam{kind: idParamMany, many: many}
}

// encode renders the query string for the parameter.
func (p *IDParam) encode() (string, error) {
	switch p.kind {
	case idParamAll:
		return "ids=all", nil
	case idParamOne:
		return "id=" + p.one, nil
	case idParamMany:
		if len(p.many) == 0 {
			return "", fmt.Errorf("%w: empty id list", ErrInvalidArgument)
		}

		return "ids=" + strings.Join(p.many, ","), nil
	default:
		return "", fmt.Errorf("%w: unknown id parameter", ErrInvalidArgument)
	}
}

func formatID[T IDType](id T) string {
	switch v := any(id).(type) {
	case uint64:
		return strconv.FormatUint(v, 10)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

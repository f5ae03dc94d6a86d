package tmdb

import (
	"net/url"
	"slices"
	"strings"
)

// Param is a single query parameter
type Param struct {
	Key   string
	Value string
}

// Params is an ordered list of query parameters. Unlike url.Values it keeps
// insertion order when encoded.
type Params []Param

// Has reports whether key is present
func (p Params) Has(key string) bool {
	return slices.ContainsFunc(p, func(param Param) bool {
		return param.Key == key
	})
}

// Get returns the first value for key
func (p Params) Get(key string) string {
	for _, param := range p {
		if param.Key == key {
			return param.Value
		}
	}
	return ""
}

// Encode encodes the parameters in order as a URL query string
func (p Params) Encode() string {
	var sb strings.Builder
	for i, param := range p {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(param.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(param.Value))
	}
	return sb.String()
}

// mergeParams appends the call-site parameters to the defaults. Defaults come
// first and win: an extra key that is already a default key is dropped and
// reported back. Extra keys are appended in sorted order.
func mergeParams(defaults Params, extra url.Values) (merged Params, dropped []string) {
	merged = make(Params, 0, len(defaults)+len(extra))
	merged = append(merged, defaults...)

	keys := make([]string, 0, len(extra))
	for key := range extra {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		if defaults.Has(key) {
			dropped = append(dropped, key)
			continue
		}
		for _, value := range extra[key] {
			merged = append(merged, Param{Key: key, Value: value})
		}
	}

	return merged, dropped
}

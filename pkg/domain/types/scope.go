package types

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

// ScopeKey identifies a procedure. It is the slug used in URLs and as the
// partition key for stored queries (e.g. "sepe", "renovacion-dni").
type ScopeKey string

var scopeKeyPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Validate checks if the ScopeKey is valid
func (s ScopeKey) Validate() error {
	if s == "" {
		return goerr.New("scope key cannot be empty")
	}
	if !scopeKeyPattern.MatchString(string(s)) {
		return goerr.New("scope key must be lowercase alphanumeric with hyphens", goerr.V("scope_key", s))
	}
	return nil
}

// String returns the string representation of ScopeKey
func (s ScopeKey) String() string {
	return string(s)
}

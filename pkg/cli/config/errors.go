package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrCatalogNotFound   = goerr.New("catalog file not found")
	ErrInvalidCatalog    = goerr.New("invalid catalog")
	ErrEmptyCatalog      = goerr.New("catalog has no procedures")
	ErrDuplicateScopeKey = goerr.New("duplicate scope key")
)

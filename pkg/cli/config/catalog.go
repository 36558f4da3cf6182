package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/alexxmihai24/alex-web-administrats/pkg/domain/model"
	"github.com/alexxmihai24/alex-web-administrats/pkg/domain/types"
)

// Catalog is the TOML procedure catalog used by the seed command. Each entry
// becomes one Procedure record keyed by its scope key.
type Catalog struct {
	Procedures []CatalogProcedure `toml:"procedure"`
}

// CatalogProcedure is one procedure entry in the catalog file
type CatalogProcedure struct {
	ScopeKey         string   `toml:"scope_key"`
	Name             string   `toml:"name"`
	Description      string   `toml:"description"`
	Category         string   `toml:"category"`
	CommonOperations []string `toml:"common_operations"`
}

// Validate checks if the CatalogProcedure is valid
func (p *CatalogProcedure) Validate() error {
	key := types.ScopeKey(p.ScopeKey)
	if err := key.Validate(); err != nil {
		return goerr.Wrap(err, "invalid scope key")
	}
	if p.Name == "" {
		return goerr.New("procedure name is required", goerr.V("scope_key", p.ScopeKey))
	}
	return nil
}

// ToDomain converts the catalog entry into a domain Procedure
func (p *CatalogProcedure) ToDomain() *model.Procedure {
	return &model.Procedure{
		ScopeKey:         types.ScopeKey(p.ScopeKey),
		Name:             p.Name,
		Description:      p.Description,
		Category:         p.Category,
		CommonOperations: p.CommonOperations,
	}
}

// Validate checks if the Catalog is valid
func (c *Catalog) Validate() error {
	if len(c.Procedures) == 0 {
		return goerr.Wrap(ErrEmptyCatalog, "catalog has no procedures")
	}

	seen := make(map[string]bool)
	for _, p := range c.Procedures {
		if err := p.Validate(); err != nil {
			return goerr.Wrap(ErrInvalidCatalog, "invalid procedure entry", goerr.V("scope_key", p.ScopeKey), goerr.V("cause", err.Error()))
		}
		if seen[p.ScopeKey] {
			return goerr.Wrap(ErrDuplicateScopeKey, "duplicate scope key", goerr.V("scope_key", p.ScopeKey))
		}
		seen[p.ScopeKey] = true
	}

	return nil
}

// LoadCatalog reads and validates a TOML procedure catalog
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(ErrCatalogNotFound, "failed to read catalog file", goerr.V("path", path))
	}

	var catalog Catalog
	if err := toml.Unmarshal(data, &catalog); err != nil {
		return nil, goerr.Wrap(err, "failed to parse catalog file", goerr.V("path", path))
	}

	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	return &catalog, nil
}

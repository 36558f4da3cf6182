package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/alexxmihai24/alex-web-administrats/pkg/cli/config"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0644)).Required()
	return path
}

func TestLoadCatalog(t *testing.T) {
	t.Run("valid catalog", func(t *testing.T) {
		path := writeCatalog(t, `
[[procedure]]
scope_key = "sepe"
name = "SEPE"
description = "Empleo"
category = "empleo"
common_operations = ["Renovar la demanda de empleo", "Solicitar cita previa"]

[[procedure]]
scope_key = "renovacion-dni"
name = "Renovación del DNI"
`)
		catalog, err := config.LoadCatalog(path)
		gt.NoError(t, err).Required()
		gt.Array(t, catalog.Procedures).Length(2).Required()

		p := catalog.Procedures[0].ToDomain()
		gt.Value(t, p.ScopeKey.String()).Equal("sepe")
		gt.Value(t, p.Name).Equal("SEPE")
		gt.Array(t, p.CommonOperations).Length(2)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadCatalog(filepath.Join(t.TempDir(), "nope.toml"))
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, config.ErrCatalogNotFound)).True()
	})

	t.Run("empty catalog", func(t *testing.T) {
		path := writeCatalog(t, "")
		_, err := config.LoadCatalog(path)
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, config.ErrEmptyCatalog)).True()
	})

	t.Run("invalid scope key", func(t *testing.T) {
		path := writeCatalog(t, `
[[procedure]]
scope_key = "SEPE"
name = "SEPE"
`)
		_, err := config.LoadCatalog(path)
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, config.ErrInvalidCatalog)).True()
	})

	t.Run("missing name", func(t *testing.T) {
		path := writeCatalog(t, `
[[procedure]]
scope_key = "sepe"
`)
		_, err := config.LoadCatalog(path)
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, config.ErrInvalidCatalog)).True()
	})

	t.Run("duplicate scope key", func(t *testing.T) {
		path := writeCatalog(t, `
[[procedure]]
scope_key = "sepe"
name = "SEPE"

[[procedure]]
scope_key = "sepe"
name = "SEPE otra vez"
`)
		_, err := config.LoadCatalog(path)
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, config.ErrDuplicateScopeKey)).True()
	})
}

package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/alexxmihai24/alex-web-administrats/pkg/cli/config"
)

func TestLoggerConfigure(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		logger := config.NewTestLogger("info", "json", "stderr")
		closer, err := logger.Configure()
		gt.NoError(t, err).Required()
		closer()
	})

	t.Run("invalid level", func(t *testing.T) {
		logger := config.NewTestLogger("verbose", "console", "stdout")
		_, err := logger.Configure()
		gt.Error(t, err)
	})

	t.Run("invalid format", func(t *testing.T) {
		logger := config.NewTestLogger("info", "xml", "stdout")
		_, err := logger.Configure()
		gt.Error(t, err)
	})
}

func TestRepositoryConfigure(t *testing.T) {
	t.Run("memory backend", func(t *testing.T) {
		repo, err := config.NewTestRepository("memory").Configure(context.Background())
		gt.NoError(t, err).Required()
		gt.NoError(t, repo.Close())
	})

	t.Run("firestore backend requires project id", func(t *testing.T) {
		_, err := config.NewTestRepository("firestore").Configure(context.Background())
		gt.Error(t, err)
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := config.NewTestRepository("postgres").Configure(context.Background())
		gt.Error(t, err)
	})
}

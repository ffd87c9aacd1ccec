package config_test

import (
	"path/filepath"
	"testing"

	"github.com/lampo-network/lampod/internal/config"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	datadir := filepath.Join(t.TempDir(), "lampod")
	t.Setenv("LAMPOD_DATADIR", datadir)

	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		require.NotNil(t, cfg)

		require.Equal(t, datadir, cfg.Datadir)
		require.Equal(t, filepath.Join(datadir, "db"), cfg.DbDir)
		require.DirExists(t, datadir)
		require.Equal(t, 4, cfg.LogLevel)
		require.Equal(t, "badger", cfg.DbType)
		require.Equal(t, "gocron", cfg.SchedulerType)
		require.Equal(t, "gochannel", cfg.EventSinkType)
		require.Equal(t, 64, cfg.EventBufferSize)
		require.Equal(t, uint32(6), cfg.FundingConfTarget)
	})

	t.Run("from env", func(t *testing.T) {
		t.Setenv("LAMPOD_ESPLORA_URL", "http://localhost:3000")
		t.Setenv("LAMPOD_EVENT_SINK_TYPE", "none")
		t.Setenv("LAMPOD_FUNDING_CONF_TARGET", "3")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		require.Equal(t, "http://localhost:3000", cfg.EsploraURL)
		require.Equal(t, "none", cfg.EventSinkType)
		require.Equal(t, uint32(3), cfg.FundingConfTarget)
	})

	t.Run("invalid", func(t *testing.T) {
		t.Setenv("LAMPOD_EVENT_BUFFER_SIZE", "-1")

		cfg, err := config.LoadConfig()
		require.EqualError(t, err, "event buffer size must not be negative")
		require.Nil(t, cfg)
	})
}

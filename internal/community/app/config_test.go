package app

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, DriverSQLite, cfg.DatabaseDriver)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, "ssar", cfg.AdminUsername)
	require.Equal(t, 24*time.Hour, cfg.SessionTTL)
	require.Equal(t, "log", cfg.MailDriver)
	require.False(t, cfg.AtomicViewCount)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ADMIN_USERNAME", "root")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("BOARD_ATOMIC_VIEW_COUNT", "true")
	t.Setenv("DATABASE_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/community")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, "root", cfg.AdminUsername)
	require.Equal(t, 2*time.Hour, cfg.SessionTTL)
	require.True(t, cfg.AtomicViewCount)
	require.Equal(t, DriverPostgres, cfg.DatabaseDriver)
}

func TestLoadConfigRejects(t *testing.T) {
	t.Run("postgres without url", func(t *testing.T) {
		t.Setenv("DATABASE_DRIVER", "postgres")
		_, err := LoadConfig()
		require.Error(t, err)
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("DATABASE_DRIVER", "mysql")
		_, err := LoadConfig()
		require.Error(t, err)
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("SESSION_TTL", "forever")
		_, err := LoadConfig()
		require.Error(t, err)
	})
}

func TestSessionKeyFileIsReused(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	path := filepath.Join(t.TempDir(), "keys", "session.pem")
	cfg := Config{SessionKeyFile: path}

	first, keys, err := InitSessionKeys(cfg, logger)
	require.NoError(t, err)
	require.True(t, keys.IsReady())

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	second, _, err := InitSessionKeys(cfg, logger)
	require.NoError(t, err)
	require.Equal(t, first.Public(), second.Public())

	ephemeral, _, err := InitSessionKeys(Config{}, logger)
	require.NoError(t, err)
	require.NotEqual(t, first.Public(), ephemeral.Public())
}

func TestNewServesHealth(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DATABASE_FILE", filepath.Join(dir, "community.db"))
	t.Setenv("PEPPER_FILE", filepath.Join(dir, "pepper"))
	t.Setenv("LOG_FORMAT", "text")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	app, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.db.Close() })

	for _, path := range []string{"/livez", "/readyz"} {
		rec := httptest.NewRecorder()
		app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
	}
}

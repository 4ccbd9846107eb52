package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no stray .env

	cfg, err := Load()
	require.NoError(t, err)

	driver, dsn := cfg.DB.Resolve()
	assert.Equal(t, DriverSQLite, driver)
	assert.Equal(t, "./menu_data.db", dsn)
	assert.Equal(t, "0.0.0.0:8000", cfg.Server.Addr())
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout())
	assert.Equal(t, 100, cfg.Query.DefaultPageSize)
	assert.Equal(t, 500, cfg.Query.MaxPageSize)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Telegram.Token)
	assert.False(t, cfg.DB.AutoMigrate)
}

func TestLoad_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_USER", "menu")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "menus")
	t.Setenv("PORT", "9090")
	t.Setenv("AUTO_MIGRATE", "1")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "5")
	t.Setenv("MAX_PAGE_SIZE", "50")
	t.Setenv("DEFAULT_PAGE_SIZE", "10")
	t.Setenv("TELEGRAM_API_ENDPOINT", "http://localhost:8081/bot%s/%s")

	cfg, err := Load()
	require.NoError(t, err)

	driver, dsn := cfg.DB.Resolve()
	assert.Equal(t, DriverPostgres, driver)
	assert.Equal(t, "postgres://menu:secret@db:6543/menus", dsn)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout())
	assert.Equal(t, 10, cfg.Query.DefaultPageSize)
	assert.Equal(t, 50, cfg.Query.MaxPageSize)
	assert.Equal(t, "http://localhost:8081/bot%s/%s", cfg.Telegram.APIEndpoint)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown driver", map[string]string{"DB_DRIVER": "mysql"}},
		{"bad port", map[string]string{"PORT": "eighty"}},
		{"page sizes", map[string]string{"DEFAULT_PAGE_SIZE": "600"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestDBConfig_ResolveURL(t *testing.T) {
	tests := []struct {
		url        string
		wantDriver string
		wantDSN    string
	}{
		{"sqlite:///./menu_data.db", DriverSQLite, "./menu_data.db"},
		{"sqlite:///tmp/menu.db", DriverSQLite, "tmp/menu.db"},
		{"sqlite://menu.db", DriverSQLite, "menu.db"},
		{"postgres://u:p@h:5432/d", DriverPostgres, "postgres://u:p@h:5432/d"},
		{"postgresql://u@h/d", DriverPostgres, "postgresql://u@h/d"},
	}
	for _, tt := range tests {
		driver, dsn := DBConfig{Driver: DriverSQLite, URL: tt.url}.Resolve()
		assert.Equal(t, tt.wantDriver, driver, tt.url)
		assert.Equal(t, tt.wantDSN, dsn, tt.url)
	}
}

package cli

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menu-explainer/db"
	"menu-explainer/store/sqlstore"
)

const testMenu = `{
  "Luigi's": {
    "sections": [
      {"name": "Pizza", "items": [
        {"name": "Margherita", "description": "tomato, mozzarella", "price": 12.99},
        {"name": "Special"}
      ]}
    ]
  },
  "Taqueria": {
    "sections": [
      {"name": "Tacos", "items": [{"name": "Al Pastor", "price": "4.00"}]}
    ]
  }
}`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

// sqliteEnv points the config at a fresh sqlite file in a temp working dir.
func sqliteEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "menu.db")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", path)
	t.Cleanup(db.Close)
	return path
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "menu-explainer dev (none)\n", out)
}

func TestBuildCmd(t *testing.T) {
	dbPath := sqliteEnv(t)
	doc := writeFile(t, "menu.json", testMenu)

	out, err := run(t, "build", doc)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 restaurants, 2 sections, 3 items (1 without price).")
	assert.Contains(t, out, "Database build complete!")

	sqlDB, err := db.OpenSQLite(dbPath)
	require.NoError(t, err)
	st := sqlstore.NewSQLite(sqlDB)
	defer st.Close()

	rs, err := st.ListRestaurants(context.Background())
	require.NoError(t, err)
	require.Len(t, rs, 2)
	assert.Equal(t, "Luigi's", rs[0].Name)
	assert.Equal(t, "Taqueria", rs[1].Name)
}

func TestBuildCmd_Append(t *testing.T) {
	dbPath := sqliteEnv(t)

	_, err := run(t, "build", writeFile(t, "menu.json", testMenu))
	require.NoError(t, err)

	update := writeFile(t, "update.yaml", "Taqueria:\n  sections:\n    - name: Drinks\n      items:\n        - {name: Horchata, price: 3}\n")
	out, err := run(t, "build", "--append", update)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 restaurants, 1 sections, 1 items (0 without price).")

	sqlDB, err := db.OpenSQLite(dbPath)
	require.NoError(t, err)
	st := sqlstore.NewSQLite(sqlDB)
	defer st.Close()

	r, err := st.GetRestaurant(context.Background(), "Taqueria")
	require.NoError(t, err)
	require.Len(t, r.Sections, 1)
	assert.Equal(t, "Drinks", r.Sections[0].Name)

	_, err = st.GetRestaurant(context.Background(), "Luigi's")
	assert.NoError(t, err)
}

func TestBuildCmd_FormatFlag(t *testing.T) {
	sqliteEnv(t)
	doc := writeFile(t, "menu.txt", "Diner:\n  sections:\n    - name: Mains\n      items:\n        - name: Burger\n")

	out, err := run(t, "build", "--format", "yaml", doc)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 restaurants")
}

func TestBuildCmd_Errors(t *testing.T) {
	sqliteEnv(t)

	tests := []struct {
		name string
		args []string
	}{
		{"no file", []string{"build"}},
		{"missing file", []string{"build", filepath.Join(t.TempDir(), "nope.json")}},
		{"invalid document", []string{"build", writeFile(t, "bad.json", `{"Luigi's": {"sections": {"name": "Pizza"}}}`)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestMigrateCmd(t *testing.T) {
	sqliteEnv(t)

	out, err := run(t, "migrate")
	require.NoError(t, err)
	assert.Equal(t, "Migrations applied (sqlite).\n", out)

	// idempotent
	_, err = run(t, "migrate")
	require.NoError(t, err)
}

func TestMigrateCmd_BadConfig(t *testing.T) {
	sqliteEnv(t)
	t.Setenv("DB_DRIVER", "mysql")

	_, err := run(t, "migrate")
	assert.ErrorContains(t, err, "config")
}

func TestServeCmd_BotFailureStartsNothing(t *testing.T) {
	t.Chdir(t.TempDir())

	telegram := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":false,"error_code":401,"description":"Unauthorized"}`))
	}))
	defer telegram.Close()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	_, port, err := net.SplitHostPort(addr)
	require.NoError(t, err)

	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", port)
	t.Setenv("TOKEN", "bad-token")
	t.Setenv("TELEGRAM_API_ENDPOINT", telegram.URL+"/bot%s/%s")

	_, err = run(t, "serve", "--data", writeFile(t, "menu.json", testMenu))
	require.ErrorContains(t, err, "bot:")

	// the HTTP listener was never started
	l, err = net.Listen("tcp", addr)
	require.NoError(t, err)
	require.NoError(t, l.Close())
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv はテスト中に設定へ影響する環境変数を空にします。
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PROJECTS_CONFIG",
		"PROJECTS_DB_DRIVER",
		"PROJECTS_DB_HOST",
		"PROJECTS_DB_PORT",
		"PROJECTS_DB_NAME",
		"PROJECTS_DB_USER",
		"PROJECTS_DB_PASSWORD",
		"PROJECTS_SQLITE_PATH",
		"PROJECTS_SCHEMA_FILE",
		"PROJECTS_LOG_FILE",
		"PROJECTS_HISTORY_FILE",
	} {
		t.Setenv(key, "")
	}
	// .env を読み込まないよう空のディレクトリで実行
	chdir(t, t.TempDir())
}

func TestNewConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := NewConfig("")
	require.NoError(t, err)

	assert.Equal(t, DriverMySQL, cfg.Driver)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 3306, cfg.Port)
	assert.Equal(t, "projects", cfg.Schema)
	assert.Equal(t, "projects", cfg.User)
	assert.Equal(t, filepath.Join("data", "projects.db"), cfg.SQLitePath)
	assert.Equal(t, filepath.Join("data", "projects.log"), cfg.LogFile)
	assert.Empty(t, cfg.SchemaFile)
}

func TestNewConfig_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("PROJECTS_DB_DRIVER", "sqlite3")
	t.Setenv("PROJECTS_SQLITE_PATH", "/var/lib/projects.db")
	t.Setenv("PROJECTS_DB_PORT", "3310")
	t.Setenv("PROJECTS_SCHEMA_FILE", "schema.sql")

	cfg, err := NewConfig("")
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Driver)
	assert.Equal(t, "/var/lib/projects.db", cfg.SQLitePath)
	assert.Equal(t, 3310, cfg.Port)
	assert.Equal(t, "schema.sql", cfg.SchemaFile)
}

func TestNewConfig_InvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("PROJECTS_DB_PORT", "abc")

	_, err := NewConfig("")
	assert.Error(t, err)
}

func TestNewConfig_InvalidDriver(t *testing.T) {
	clearEnv(t)
	t.Setenv("PROJECTS_DB_DRIVER", "postgres")

	_, err := NewConfig("")
	assert.ErrorContains(t, err, "unsupported driver")
}

func TestNewConfig_OptionsOverrideBeforeValidation(t *testing.T) {
	clearEnv(t)
	t.Setenv("PROJECTS_DB_DRIVER", "postgres")

	cfg, err := NewConfig("", WithDriver(DriverSQLite), WithSQLitePath("/tmp/override.db"))
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.Driver)
	assert.Equal(t, "/tmp/override.db", cfg.SQLitePath)
}

func TestNewConfig_YAMLFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "projects.yaml")
	require.NoError(t, os.WriteFile(path, []byte("host: db.example.com\nport: 3307\nuser: alice\n"), 0o644))

	cfg, err := NewConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "db.example.com", cfg.Host)
	assert.Equal(t, 3307, cfg.Port)
	assert.Equal(t, "alice", cfg.User)
	// 未指定の項目は既定値のまま
	assert.Equal(t, "projects", cfg.Schema)
}

func TestNewConfig_JWCCFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "projects.jsonc")
	content := `{
  // local development
  "driver": "sqlite3",
  "sqlite_path": "dev.db",
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := NewConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.Driver)
	assert.Equal(t, "dev.db", cfg.SQLitePath)
}

func TestNewConfig_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "projects.yml")
	require.NoError(t, os.WriteFile(path, []byte("host: from-file\n"), 0o644))
	t.Setenv("PROJECTS_DB_HOST", "from-env")

	cfg, err := NewConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Host)
}

func TestNewConfig_ConfigFromEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "projects.yaml")
	require.NoError(t, os.WriteFile(path, []byte("schema: other\n"), 0o644))
	t.Setenv("PROJECTS_CONFIG", path)

	cfg, err := NewConfig("")
	require.NoError(t, err)
	assert.Equal(t, "other", cfg.Schema)
}

func TestNewConfig_DotEnv(t *testing.T) {
	clearEnv(t)
	// 空文字でも設定済みの環境変数は .env で上書きされないため削除しておく
	require.NoError(t, os.Unsetenv("PROJECTS_DB_NAME"))
	// clearEnv で移動した一時ディレクトリに .env を置く
	require.NoError(t, os.WriteFile(".env", []byte("PROJECTS_DB_NAME=from_dotenv\n"), 0o644))

	cfg, err := NewConfig("")
	require.NoError(t, err)
	assert.Equal(t, "from_dotenv", cfg.Schema)
}

func TestNewConfig_FileErrors(t *testing.T) {
	clearEnv(t)

	_, err := NewConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "projects.toml")
	require.NoError(t, os.WriteFile(path, []byte("host = 'x'"), 0o644))
	_, err = NewConfig(path)
	assert.ErrorContains(t, err, "unsupported config file format")
}

func TestNewLogger(t *testing.T) {
	cfg := Default()
	cfg.LogFile = filepath.Join(t.TempDir(), "logs", "projects.log")

	logger, closer := NewLogger(cfg, false, nil)
	logger.Info("hello", "key", "value")
	logger.Debug("hidden")
	require.NoError(t, closer.Close())

	content, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "msg=hello key=value")
	assert.NotContains(t, string(content), "hidden")
}

func TestNewLogger_NoFile(t *testing.T) {
	cfg := Default()
	cfg.LogFile = ""

	logger, closer := NewLogger(cfg, false, nil)
	logger.Info("dropped")
	assert.NoError(t, closer.Close())
}

// chdir は t.Chdir（Go 1.24 以降）と同等に作業ディレクトリを変更し、テスト終了時に元へ戻します。
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}

// Package config はアプリケーション設定を管理します。
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

// 対応しているデータベースドライバ
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite3"
)

// Config はアプリケーション全体の設定を保持します。
type Config struct {
	// データベースドライバ（mysql または sqlite3）
	Driver string `yaml:"driver" json:"driver"`

	// MySQLの接続先
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Schema   string `yaml:"schema" json:"schema"`
	User     string `yaml:"user" json:"user"`
	Password string `yaml:"password" json:"password"`

	// SQLiteのデータベースファイルのパス
	SQLitePath string `yaml:"sqlite_path" json:"sqlite_path"`

	// スキーマスクリプトのパス（空の場合は埋め込みの既定スキーマ）
	SchemaFile string `yaml:"schema_file" json:"schema_file"`

	// ログファイルのパス（空の場合はログを出力しない）
	LogFile string `yaml:"log_file" json:"log_file"`

	// 対話シェルの入力履歴ファイルのパス
	HistoryFile string `yaml:"history_file" json:"history_file"`
}

// Default は既定値で初期化されたConfigを返します。
func Default() *Config {
	dataDir := filepath.Join(".", "data")

	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".projects_history")
	}

	return &Config{
		Driver:      DriverMySQL,
		Host:        "localhost",
		Port:        3306,
		Schema:      "projects",
		User:        "projects",
		Password:    "projects",
		SQLitePath:  filepath.Join(dataDir, "projects.db"),
		LogFile:     filepath.Join(dataDir, "projects.log"),
		HistoryFile: historyFile,
	}
}

// Option は読み込み後、検証前に設定を上書きします。
type Option func(*Config)

// WithDriver はドライバを上書きします。
func WithDriver(driver string) Option {
	return func(c *Config) { c.Driver = driver }
}

// WithSQLitePath はSQLiteのファイルパスを上書きします。
func WithSQLitePath(path string) Option {
	return func(c *Config) { c.SQLitePath = path }
}

// NewConfig は設定を読み込み、Configインスタンスを生成します。
//
// 優先順位（低い順）: 既定値、設定ファイル、.env、環境変数、opts。
// file が空の場合は PROJECTS_CONFIG 環境変数のパスを使います。
func NewConfig(file string, opts ...Option) (*Config, error) {
	cfg := Default()

	if file == "" {
		file = os.Getenv("PROJECTS_CONFIG")
	}
	if file != "" {
		if err := cfg.loadFile(file); err != nil {
			return nil, err
		}
	}

	// .envファイルの読み込み（存在しない場合は無視、既存の環境変数は上書きしない）
	_ = godotenv.Load()

	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile は設定ファイルの内容でConfigを上書きします。
// YAML と JSON（コメント・末尾カンマ付きのJWCCを含む）に対応します。
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case ".json", ".jsonc", ".hujson":
		standardized, err := hujson.Standardize(data)
		if err != nil {
			return fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		if err := json.Unmarshal(standardized, c); err != nil {
			return fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported config file format: %s", path)
	}
	return nil
}

// loadEnv は環境変数の値でConfigを上書きします。
func (c *Config) loadEnv() error {
	setString(&c.Driver, "PROJECTS_DB_DRIVER")
	setString(&c.Host, "PROJECTS_DB_HOST")
	setString(&c.Schema, "PROJECTS_DB_NAME")
	setString(&c.User, "PROJECTS_DB_USER")
	setString(&c.Password, "PROJECTS_DB_PASSWORD")
	setString(&c.SQLitePath, "PROJECTS_SQLITE_PATH")
	setString(&c.SchemaFile, "PROJECTS_SCHEMA_FILE")
	setString(&c.LogFile, "PROJECTS_LOG_FILE")
	setString(&c.HistoryFile, "PROJECTS_HISTORY_FILE")

	if port := os.Getenv("PROJECTS_DB_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid PROJECTS_DB_PORT %q: %w", port, err)
		}
		c.Port = p
	}
	return nil
}

// Validate は設定値の整合性を検証します。
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverMySQL:
		if c.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if c.Port <= 0 || c.Port > 65535 {
			return fmt.Errorf("invalid database port: %d", c.Port)
		}
		if c.Schema == "" {
			return fmt.Errorf("database schema is required")
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("sqlite path is required")
		}
	default:
		return fmt.Errorf("unsupported driver %q: must be %q or %q", c.Driver, DriverMySQL, DriverSQLite)
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

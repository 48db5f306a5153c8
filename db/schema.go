package db

import (
	"embed"

	"github.com/pkg/errors"
	"github.com/stsysd/projects/config"
)

//go:generate go run github.com/sqlc-dev/sqlc/cmd/sqlc@v1.29.0 generate -f ../sqlc.yaml

//go:embed schema/*.sql
var embedSchema embed.FS

// 埋め込まれた既定スキーマのパス
const (
	DefaultSchemaFile       = "schema/project_schema.sql"
	DefaultSQLiteSchemaFile = "schema/project_schema_sqlite.sql"
)

// DefaultSchema はドライバに対応する埋め込みの既定スキーマを返します。
// すべてのテーブルを削除して作り直し、カテゴリの初期データを投入します。
func DefaultSchema(driver string) (string, error) {
	var name string
	switch driver {
	case config.DriverMySQL:
		name = DefaultSchemaFile
	case config.DriverSQLite:
		name = DefaultSQLiteSchemaFile
	default:
		return "", errors.Errorf("no default schema for driver %q", driver)
	}

	content, err := embedSchema.ReadFile(name)
	if err != nil {
		return "", errors.Wrap(err, "failed to read embedded schema")
	}
	return string(content), nil
}

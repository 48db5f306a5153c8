// Package db はデータベースへの接続、スキーマスクリプトの解析、
// sqlcで生成した型付きクエリを提供します。
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stsysd/projects/config"
	"github.com/stsysd/projects/model"
)

// Provider は操作ごとにDB接続を払い出します。
//
// 接続はプールせず、Acquireのたびに新しく確立し、Closeで切断します。
// 複数クライアントから同時に使う場合は、ここを上限付きのプールに置き換えること。
type Provider struct {
	driver string
	target string // ログ出力用の接続先（パスワードを含まない）
	db     *sql.DB
	logger *slog.Logger
}

// NewProvider は設定から新しいProviderを作成します。
// この時点ではまだ接続しません。
func NewProvider(cfg *config.Config, logger *slog.Logger) (*Provider, error) {
	dsn, target, err := DataSourceName(cfg)
	if err != nil {
		return nil, err
	}

	// SQLiteの場合はデータディレクトリを作成（存在しない場合）
	if cfg.Driver == config.DriverSQLite {
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0755); err != nil {
			return nil, model.ConnectionError("open database", fmt.Errorf("failed to create data directory: %w", err))
		}
	}

	conn, err := sql.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, model.ConnectionError("open database", err)
	}
	// アイドル接続を保持しない（= 返却された接続はその場で切断される）
	conn.SetMaxIdleConns(0)

	return &Provider{
		driver: cfg.Driver,
		target: target,
		db:     conn,
		logger: logger,
	}, nil
}

// DataSourceName はドライバに渡すDSNと、ログ用の接続先を返します。
func DataSourceName(cfg *config.Config) (dsn string, target string, err error) {
	switch cfg.Driver {
	case config.DriverMySQL:
		mc := mysql.NewConfig()
		mc.User = cfg.User
		mc.Passwd = cfg.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
		mc.DBName = cfg.Schema
		// 値が変わらないUPDATEでも一致した行を1件として数える
		mc.ClientFoundRows = true
		return mc.FormatDSN(), fmt.Sprintf("mysql://%s@%s/%s", cfg.User, mc.Addr, cfg.Schema), nil
	case config.DriverSQLite:
		return "file:" + cfg.SQLitePath + "?_foreign_keys=on", "sqlite3://" + cfg.SQLitePath, nil
	default:
		return "", "", model.ConnectionError("open database", fmt.Errorf("unsupported driver %q", cfg.Driver))
	}
}

// Acquire は新しい接続を確立して返します。
// 呼び出し側は必ず Close すること。
func (p *Provider) Acquire(ctx context.Context) (*sql.Conn, error) {
	p.logger.Debug("connecting", "driver", p.driver, "target", p.target)

	conn, err := p.db.Conn(ctx)
	if err != nil {
		p.logger.Error("unable to get connection", "driver", p.driver, "target", p.target, "error", err)
		return nil, model.ConnectionError("acquire connection", err)
	}

	p.logger.Debug("connection obtained", "driver", p.driver)
	return conn, nil
}

// Close はProviderを閉じます。
func (p *Provider) Close() error {
	return p.db.Close()
}

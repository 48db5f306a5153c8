package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stsysd/projects/db"
	"github.com/stsysd/projects/model"
)

// errRollback は結果を返さずにトランザクションをロールバックさせるための内部エラーです。
var errRollback = errors.New("rollback requested")

// withTx は新しい接続とトランザクションの中でfnを実行します。
//
// fnがエラーを返した場合はロールバックし、DBErrorとして返します。
// ロールバック自体の失敗はログに記録するだけで、元のエラーを優先します。
// 接続はどの経路でも必ず閉じられます。
func (s *SQLStore) withTx(ctx context.Context, op string, fn func(tx *sql.Tx, q *db.Queries) error) error {
	conn, err := s.conns.Acquire(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := conn.Close(); err != nil {
			s.logger.Warn("failed to close connection", "op", op, "error", err)
		}
	}()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("failed to begin transaction", "op", op, "error", err)
		return model.DBError(op, err)
	}
	s.logger.Debug("transaction started", "op", op)

	// コミット済みの場合は sql.ErrTxDone になるため無視
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			s.logger.Warn("rollback failed", "op", op, "error", err)
		}
	}()

	if err := fn(tx, db.New(conn).WithTx(tx)); err != nil {
		if errors.Is(err, errRollback) {
			s.logger.Debug("transaction rolled back", "op", op)
			return err
		}
		s.logger.Error("operation failed, rolling back", "op", op, "error", err)
		return model.DBError(op, err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit transaction", "op", op, "error", err)
		return model.DBError(op, err)
	}
	s.logger.Debug("transaction committed", "op", op)
	return nil
}

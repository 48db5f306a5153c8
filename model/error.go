// Package model は、アプリケーションのデータモデル定義を提供します。
package model

import (
	"errors"
	"fmt"
)

// エラー種別を表すセンチネルエラー
var (
	ErrConnection = errors.New("database connection failed")
	ErrDB         = errors.New("database error")
	ErrNotFound   = errors.New("project not found")
	ErrIO         = errors.New("i/o error")
)

// OpError は失敗した操作名と原因となったエラーを保持します。
// errors.Is でエラー種別と原因の両方を判定できます。
type OpError struct {
	Kind error  // ErrConnection, ErrDB, ErrNotFound, ErrIO のいずれか
	Op   string // 失敗した操作
	Err  error  // ドライバ等が返した元のエラー
}

func (e *OpError) Error() string {
	msg := e.Kind.Error()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap はエラー種別と元のエラーを返します。
func (e *OpError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// ConnectionError はDB接続の失敗を表すエラーを生成します。
func ConnectionError(op string, err error) error {
	return &OpError{Kind: ErrConnection, Op: op, Err: err}
}

// DBError はSQLの実行・結果取得の失敗を表すエラーを生成します。
func DBError(op string, err error) error {
	return &OpError{Kind: ErrDB, Op: op, Err: err}
}

// IOError はスキーマファイルの読み込み失敗を表すエラーを生成します。
func IOError(op string, err error) error {
	return &OpError{Kind: ErrIO, Op: op, Err: err}
}

// NotFoundError は指定IDのプロジェクトが存在しないことを表すエラーを生成します。
func NotFoundError(id int64) error {
	return &OpError{
		Kind: ErrNotFound,
		Op:   "get project",
		Err:  fmt.Errorf("project with ID = %d does not exist", id),
	}
}

// InputError はユーザー入力の解析エラーを表す型
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

// NewInputError はInputErrorを生成するヘルパー関数
func NewInputError(msg string) error {
	return &InputError{Message: msg}
}

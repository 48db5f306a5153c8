// Package main はアプリケーションのエントリーポイントを提供します。
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/stsysd/projects/cli"
)

func main() {
	// シグナルを受けたら実行中の操作をキャンセルする
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// エラーメッセージはcobraが標準エラー出力に表示する
	if err := cli.Execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		stop()
		os.Exit(1)
	}
}

package main

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/xshoji/go-img-stack/console"
	"github.com/xshoji/go-img-stack/imageutil"
)

// ビルド時に ldflags で埋め込まれる
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// exitCode はプロセスの終了コード
type exitCode int

const (
	exitSuccess       exitCode = 0
	exitNoImages      exitCode = 1
	exitDecodeFailure exitCode = 2
	exitWriteFailure  exitCode = 3
	exitConfigError   exitCode = 4
)

// cliError は終了コードを持つエラー
type cliError struct {
	code exitCode
	err  error
}

func (e *cliError) Error() string { return e.err.Error() }

func (e *cliError) Unwrap() error { return e.err }

func withExitCode(code exitCode, err error) error {
	return &cliError{code: code, err: err}
}

// main エントリポイント
func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run はコマンドを実行し、終了コードを返す
func run(args []string, stdout, stderr io.Writer) int {
	opts := &rootOptions{}
	cmd := newRootCommand(opts, stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return int(exitSuccess)
	}

	console.NewPrinter(stdout, stderr, opts.noColor).Error(err)
	return int(exitCodeOf(err))
}

// exitCodeOf はエラーの種類から終了コードを決める
func exitCodeOf(err error) exitCode {
	var (
		cliErr    *cliError
		decodeErr *imageutil.DecodeError
		writeErr  *imageutil.WriteError
	)
	switch {
	case errors.Is(err, imageutil.ErrNoImages):
		return exitNoImages
	case errors.As(err, &decodeErr):
		return exitDecodeFailure
	case errors.As(err, &writeErr):
		return exitWriteFailure
	case errors.As(err, &cliErr):
		return cliErr.code
	default:
		// フラグの解析エラーなど
		return exitConfigError
	}
}

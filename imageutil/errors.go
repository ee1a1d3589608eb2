package imageutil

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNoImages は結合対象の画像が1枚も読み込めなかった場合に返される
	ErrNoImages = errors.New("No images found!")

	// ErrUnsupportedFormat はデコーダが存在しない形式の場合に返される
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// DecodeError は存在するファイルの読み込みまたはデコードに失敗したことを表す
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// WriteError は出力ファイルの書き込みに失敗したことを表す
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

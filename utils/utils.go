package utils

import (
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

// Max は2つの整数のうち大きい方を返す
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// ExpandPath は先頭の "~" をホームディレクトリに展開する
func ExpandPath(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to expand path %q", path)
	}
	return expanded, nil
}

// ResolvePath はベースディレクトリとファイル名を結合する
// ファイル名が絶対パスの場合はそのまま返す
func ResolvePath(baseDir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(baseDir, name)
}

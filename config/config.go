package config

import (
	"image/png"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/xshoji/go-img-stack/utils"
)

// ErrInvalidConfig は設定値が不正な場合に返されるエラー
var ErrInvalidConfig = errors.New("invalid config")

// Compression はPNG出力時の圧縮レベル
type Compression string

const (
	CompressionDefault Compression = "default"
	CompressionNone    Compression = "none"
	CompressionFast    Compression = "fast"
	CompressionBest    Compression = "best"
)

// PNGLevel は image/png の圧縮レベルに変換する
func (c Compression) PNGLevel() (png.CompressionLevel, error) {
	switch Compression(strings.ToLower(string(c))) {
	case CompressionDefault, "":
		return png.DefaultCompression, nil
	case CompressionNone:
		return png.NoCompression, nil
	case CompressionFast:
		return png.BestSpeed, nil
	case CompressionBest:
		return png.BestCompression, nil
	default:
		return png.DefaultCompression, errors.Wrapf(ErrInvalidConfig,
			"unknown compression %q (expected default, none, fast, or best)", string(c))
	}
}

// AppConfig は画像の縦結合のための設定を保持する構造体
type AppConfig struct {
	// 入力の設定
	BaseDir string   // 入力画像を探すディレクトリ
	Files   []string // 結合する画像ファイル名（上から順に並ぶ）

	// 出力の設定
	OutputPath  string      // 出力PNGファイルのパス
	Compression Compression // PNGの圧縮レベル

	// 表示の設定
	LogLevel string // zapのログレベル
	NoColor  bool   // 色付き表示を無効にするか
}

// DefaultFiles は結合対象の既定のファイル一覧
var DefaultFiles = []string{
	"walkthrough_page_1_1763699372411.png",
	"walkthrough_page_2_1763699386101.png",
	"walkthrough_page_3_1763699399561.png",
	"walkthrough_page_4_1763699412679.png",
	"walkthrough_page_5_1763699426706.png",
}

// NewDefaultConfig はデフォルト設定を持つ新しいAppConfigを返す
func NewDefaultConfig() *AppConfig {
	files := make([]string, len(DefaultFiles))
	copy(files, DefaultFiles)

	return &AppConfig{
		BaseDir:     ".",
		Files:       files,
		OutputPath:  "walkthrough_complete.png",
		Compression: CompressionDefault,
		LogLevel:    "warn",
		NoColor:     false,
	}
}

// ApplyManifest はマニフェストで指定された項目だけを上書きする
func (c *AppConfig) ApplyManifest(m *Manifest) {
	if m == nil {
		return
	}
	if m.BaseDir != "" {
		c.BaseDir = m.BaseDir
	}
	if len(m.Files) > 0 {
		c.Files = append([]string(nil), m.Files...)
	}
	if m.Output != "" {
		c.OutputPath = m.Output
	}
	if m.Compression != "" {
		c.Compression = Compression(m.Compression)
	}
}

// Normalize はパス中の "~" を展開する
func (c *AppConfig) Normalize() error {
	baseDir, err := utils.ExpandPath(c.BaseDir)
	if err != nil {
		return err
	}
	output, err := utils.ExpandPath(c.OutputPath)
	if err != nil {
		return err
	}
	c.BaseDir = baseDir
	c.OutputPath = output
	return nil
}

// Validate は設定値の整合性をチェックする
func (c *AppConfig) Validate() error {
	if len(c.Files) == 0 {
		return errors.Wrap(ErrInvalidConfig, "file list is empty")
	}
	for i, f := range c.Files {
		if strings.TrimSpace(f) == "" {
			return errors.Wrapf(ErrInvalidConfig, "file #%d has an empty name", i+1)
		}
	}
	if c.OutputPath == "" {
		return errors.Wrap(ErrInvalidConfig, "output path is empty")
	}
	if ext := strings.ToLower(filepath.Ext(c.OutputPath)); ext != ".png" {
		return errors.Wrapf(ErrInvalidConfig, "unsupported output format: %q (only .png is supported)", ext)
	}
	if _, err := c.Compression.PNGLevel(); err != nil {
		return err
	}
	return nil
}

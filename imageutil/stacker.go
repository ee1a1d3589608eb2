package imageutil

import (
	"image"
	"os"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/xshoji/go-img-stack/config"
	"github.com/xshoji/go-img-stack/utils"
)

// Reporter は処理の進捗をユーザーに伝える
type Reporter interface {
	Loaded(name string, size image.Point)
	Missing(name string)
	Dimensions(size image.Point)
	Saved(path string, size image.Point)
}

type nopReporter struct{}

func (nopReporter) Loaded(string, image.Point) {}
func (nopReporter) Missing(string)             {}
func (nopReporter) Dimensions(image.Point)     {}
func (nopReporter) Saved(string, image.Point)  {}

// Stacker 画像の読み込み・縦結合・保存を行う構造体
type Stacker struct {
	cfg      *config.AppConfig
	logger   *zap.Logger
	reporter Reporter
}

// NewStacker 設定をもとに新しいStackerインスタンスを作成
func NewStacker(cfg *config.AppConfig, logger *zap.Logger, reporter Reporter) *Stacker {
	if logger == nil {
		logger = zap.NewNop()
	}
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &Stacker{
		cfg:      cfg,
		logger:   logger,
		reporter: reporter,
	}
}

// Load は設定されたファイルを順に読み込む
// 存在しないファイルはスキップして報告し、処理は中断しない
// 存在するファイルのデコードに失敗した場合はその時点でエラーを返す
func (s *Stacker) Load() ([]image.Image, error) {
	startTime := time.Now()
	images := make([]image.Image, 0, len(s.cfg.Files))

	for _, name := range s.cfg.Files {
		path := utils.ResolvePath(s.cfg.BaseDir, name)

		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			s.logger.Debug("skipping missing file", zap.String("path", path), zap.Error(err))
			s.reporter.Missing(name)
			continue
		}

		img, kind, err := LoadImage(path)
		if err != nil {
			return nil, err
		}

		size := img.Bounds().Size()
		s.logger.Debug("decoded image",
			zap.String("path", path),
			zap.String("type", describe(kind)),
			zap.Int("width", size.X),
			zap.Int("height", size.Y))
		s.reporter.Loaded(name, size)
		images = append(images, img)
	}

	s.logger.Debug("loading finished",
		zap.Int("loaded", len(images)),
		zap.Int("missing", len(s.cfg.Files)-len(images)),
		zap.Duration("elapsed", time.Since(startTime)))
	return images, nil
}

// Compose は読み込んだ画像を1枚のキャンバスに縦結合する
func (s *Stacker) Compose(images []image.Image) (*image.RGBA, error) {
	startTime := time.Now()

	canvas, err := Compose(images)
	if err != nil {
		return nil, err
	}

	size := canvas.Bounds().Size()
	s.reporter.Dimensions(size)
	s.logger.Debug("composed canvas",
		zap.Int("width", size.X),
		zap.Int("height", size.Y),
		zap.Duration("elapsed", time.Since(startTime)))
	return canvas, nil
}

// Save はキャンバスを設定された出力パスにPNGで保存する
func (s *Stacker) Save(canvas image.Image) error {
	startTime := time.Now()

	level, err := s.cfg.Compression.PNGLevel()
	if err != nil {
		return err
	}
	if err := SaveImage(canvas, s.cfg.OutputPath, level); err != nil {
		return err
	}

	size := canvas.Bounds().Size()
	s.reporter.Saved(s.cfg.OutputPath, size)
	s.logger.Debug("saved image",
		zap.String("path", s.cfg.OutputPath),
		zap.String("compression", string(s.cfg.Compression)),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}

// Run は読み込み・結合・保存を順に実行し、出力画像のサイズを返す
// 1枚も読み込めなかった場合は出力ファイルを作成せずに ErrNoImages を返す
func (s *Stacker) Run() (image.Point, error) {
	images, err := s.Load()
	if err != nil {
		return image.Point{}, err
	}
	if len(images) == 0 {
		return image.Point{}, errors.WithStack(ErrNoImages)
	}

	canvas, err := s.Compose(images)
	if err != nil {
		return image.Point{}, err
	}

	if err := s.Save(canvas); err != nil {
		return image.Point{}, err
	}
	return canvas.Bounds().Size(), nil
}

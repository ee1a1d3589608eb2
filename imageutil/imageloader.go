package imageutil

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"github.com/ulikunitz/xz"
	filetype "gopkg.in/h2non/filetype.v1"
	"gopkg.in/h2non/filetype.v1/matchers"
	"gopkg.in/h2non/filetype.v1/types"

	// 読み込み可能な形式のデコーダを登録
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// 種別判定に使うヘッダのバイト数
const headerSize = 261

// LoadImage 指定されたパスから画像を読み込む
// 形式は拡張子ではなくファイル先頭のマジックバイトで判定し、
// xz / gzip / bzip2 で圧縮されたファイルは展開してからデコードする
func LoadImage(filePath string) (img image.Image, kind types.Type, err error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, types.Unknown, &DecodeError{Path: filePath, Err: errors.Wrap(err, "failed to open file")}
	}
	defer file.Close()

	header := make([]byte, headerSize)
	n, err := io.ReadFull(file, header)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, types.Unknown, &DecodeError{Path: filePath, Err: errors.Wrap(err, "failed to read file header")}
	}
	header = header[:n]

	// 空のバッファはUnknownとして扱い、デコード側でエラーにする
	kind, _ = filetype.Match(header)

	r, err := decompress(io.MultiReader(bytes.NewReader(header), file), kind)
	if err != nil {
		return nil, kind, &DecodeError{Path: filePath, Err: err}
	}

	img, _, err = image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			err = errors.Wrapf(ErrUnsupportedFormat, "detected type %q", describe(kind))
		}
		return nil, kind, &DecodeError{Path: filePath, Err: err}
	}

	return img, kind, nil
}

// decompress は圧縮形式に応じて展開用のリーダを返す
func decompress(r io.Reader, kind types.Type) (io.Reader, error) {
	switch kind {
	case matchers.TypeXz:
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open xz stream")
		}
		return xr, nil
	case matchers.TypeGz:
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open gzip stream")
		}
		return gr, nil
	case matchers.TypeBz2:
		return bzip2.NewReader(r), nil
	default:
		return r, nil
	}
}

// describe はログ表示用に種別名を返す
func describe(kind types.Type) string {
	if kind == types.Unknown || kind.MIME.Value == "" {
		return "unknown"
	}
	return kind.MIME.Value
}

// SaveImage 画像をPNG形式でファイルに保存する
// 既存のファイルは確認なしで上書きする
func SaveImage(img image.Image, outputPath string, level png.CompressionLevel) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return &WriteError{Path: outputPath, Err: errors.Wrap(err, "failed to create output file")}
	}

	if err := imaging.Encode(file, img, imaging.PNG, imaging.PNGCompressionLevel(level)); err != nil {
		file.Close()
		return &WriteError{Path: outputPath, Err: errors.Wrap(err, "failed to encode PNG")}
	}

	if err := file.Close(); err != nil {
		return &WriteError{Path: outputPath, Err: errors.Wrap(err, "failed to close output file")}
	}
	return nil
}

package imageutil

import (
	"image"
	"image/color"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	red   = color.RGBA{255, 0, 0, 255}
	green = color.RGBA{0, 255, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
)

// 単色の画像を作成するヘルパー関数
func solidImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// 指定範囲が全て同じ色か確認するヘルパー関数
func assertRegionColor(t *testing.T, img image.Image, rect image.Rectangle, want color.RGBA) {
	t.Helper()
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			got := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			if got != want {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestCanvasSize(t *testing.T) {
	tests := []struct {
		name   string
		images []image.Image
		want   image.Point
	}{
		{"空", nil, image.Point{}},
		{"1枚", []image.Image{solidImage(30, 20, red)}, image.Pt(30, 20)},
		{"同じサイズ", []image.Image{solidImage(10, 10, red), solidImage(10, 10, blue)}, image.Pt(10, 20)},
		{
			"異なるサイズ",
			[]image.Image{solidImage(100, 50, red), solidImage(200, 80, blue), solidImage(150, 5, green)},
			image.Pt(200, 135),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanvasSize(tt.images))
		})
	}
}

func TestCompose(t *testing.T) {
	t.Run("異なる幅の画像を左寄せで縦に並べる", func(t *testing.T) {
		a := solidImage(100, 50, red)
		b := solidImage(200, 80, blue)

		canvas, err := Compose([]image.Image{a, b})
		require.NoError(t, err)

		assert.Equal(t, image.Rect(0, 0, 200, 130), canvas.Bounds())
		assertRegionColor(t, canvas, image.Rect(0, 0, 100, 50), red)
		assertRegionColor(t, canvas, image.Rect(100, 0, 200, 50), white)
		assertRegionColor(t, canvas, image.Rect(0, 50, 200, 130), blue)
	})

	t.Run("入力順が上からの順序になる", func(t *testing.T) {
		images := []image.Image{
			solidImage(10, 3, green),
			solidImage(10, 4, red),
			solidImage(10, 5, blue),
		}

		canvas, err := Compose(images)
		require.NoError(t, err)

		assertRegionColor(t, canvas, image.Rect(0, 0, 10, 3), green)
		assertRegionColor(t, canvas, image.Rect(0, 3, 10, 7), red)
		assertRegionColor(t, canvas, image.Rect(0, 7, 10, 12), blue)
	})

	t.Run("透過部分はアルファを捨ててRGBを残す", func(t *testing.T) {
		src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
		src.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 0})
		src.SetNRGBA(1, 0, color.NRGBA{0, 0, 255, 128})

		canvas, err := Compose([]image.Image{src, solidImage(4, 1, green)})
		require.NoError(t, err)

		assert.Equal(t, red, canvas.RGBAAt(0, 0))
		assert.Equal(t, blue, canvas.RGBAAt(1, 0))
		assertRegionColor(t, canvas, image.Rect(2, 0, 4, 1), white)
		assertRegionColor(t, canvas, image.Rect(0, 1, 4, 2), green)
	})

	t.Run("パレット画像も貼り付ける", func(t *testing.T) {
		palette := color.Palette{red, blue}
		src := image.NewPaletted(image.Rect(0, 0, 2, 2), palette)
		src.SetColorIndex(1, 0, 1)
		src.SetColorIndex(0, 1, 1)

		canvas, err := Compose([]image.Image{src})
		require.NoError(t, err)

		assert.Equal(t, red, canvas.RGBAAt(0, 0))
		assert.Equal(t, blue, canvas.RGBAAt(1, 0))
		assert.Equal(t, blue, canvas.RGBAAt(0, 1))
		assert.Equal(t, red, canvas.RGBAAt(1, 1))
	})

	t.Run("原点がずれた画像も正しく貼り付ける", func(t *testing.T) {
		src := solidImage(40, 40, white)
		inner := solidImage(10, 10, green)
		for y := 0; y < 10; y++ {
			for x := 0; x < 10; x++ {
				src.Set(20+x, 20+y, inner.At(x, y))
			}
		}
		sub := src.SubImage(image.Rect(20, 20, 30, 30))

		canvas, err := Compose([]image.Image{sub})
		require.NoError(t, err)

		assert.Equal(t, image.Rect(0, 0, 10, 10), canvas.Bounds())
		assertRegionColor(t, canvas, canvas.Bounds(), green)
	})

	t.Run("異常系: 画像が空", func(t *testing.T) {
		canvas, err := Compose(nil)
		assert.Nil(t, canvas)
		assert.True(t, errors.Is(err, ErrNoImages))
	})
}

package imageutil

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/xshoji/go-img-stack/utils"
)

// CanvasSize は縦に並べたときのキャンバスサイズを返す
// 幅は最大幅、高さは全画像の高さの合計
func CanvasSize(images []image.Image) image.Point {
	var size image.Point
	for _, img := range images {
		b := img.Bounds()
		size.X = utils.Max(size.X, b.Dx())
		size.Y += b.Dy()
	}
	return size
}

// Compose は画像を入力順に上から下へ左寄せで貼り付けた新しいキャンバスを返す
// 幅が足りない部分は白のまま残る
func Compose(images []image.Image) (*image.RGBA, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}

	size := CanvasSize(images)
	canvas := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)

	offsetY := 0
	for _, img := range images {
		paste(canvas, img, offsetY)
		offsetY += img.Bounds().Dy()
	}

	return canvas, nil
}

// paste は画像を (0, offsetY) に貼り付ける
// アルファは捨ててRGBだけを写すので、透過ピクセルも元の色のまま不透明になる
func paste(canvas *image.RGBA, img image.Image, offsetY int) {
	b := img.Bounds()
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		draw.Draw(canvas, image.Rect(0, offsetY, b.Dx(), offsetY+b.Dy()), img, b.Min, draw.Src)
		return
	}

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			canvas.SetRGBA(x, offsetY+y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}
}

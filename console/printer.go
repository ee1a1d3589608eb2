// console パッケージは進捗・診断メッセージを人間向けに表示します
package console

import (
	"fmt"
	"image"
	"io"

	"github.com/fatih/color"
)

// Printer は標準出力とエラー出力へ色付きのメッセージを書き出す
type Printer struct {
	out io.Writer
	err io.Writer

	ok   *color.Color
	warn *color.Color
	fail *color.Color
	bold *color.Color
}

// NewPrinter は新しいPrinterを作成する
func NewPrinter(out, errOut io.Writer, noColor bool) *Printer {
	p := &Printer{
		out:  out,
		err:  errOut,
		ok:   color.New(color.FgGreen),
		warn: color.New(color.FgYellow),
		fail: color.New(color.FgRed, color.Bold),
		bold: color.New(color.Bold),
	}
	if noColor {
		for _, c := range []*color.Color{p.ok, p.warn, p.fail, p.bold} {
			c.DisableColor()
		}
	}
	return p
}

// Loaded は読み込みに成功したファイルを表示する
func (p *Printer) Loaded(name string, size image.Point) {
	p.ok.Fprintf(p.out, "Loaded: %s", name)
	fmt.Fprintf(p.out, " (%dx%d)\n", size.X, size.Y)
}

// Missing は見つからなかったファイルを表示する
func (p *Printer) Missing(name string) {
	p.warn.Fprintf(p.out, "Not found: %s\n", name)
}

// Dimensions はキャンバスの寸法を表示する
func (p *Printer) Dimensions(size image.Point) {
	fmt.Fprintf(p.out, "Total height: %dpx\n", size.Y)
	fmt.Fprintf(p.out, "Max width: %dpx\n", size.X)
}

// Saved は保存結果のサマリを表示する
func (p *Printer) Saved(path string, size image.Point) {
	fmt.Fprintln(p.out)
	p.bold.Fprintf(p.out, "Combined image saved to: %s\n", path)
	fmt.Fprintf(p.out, "Final size: %dx%dpx\n", size.X, size.Y)
}

// Error はエラーメッセージをエラー出力に表示する
func (p *Printer) Error(err error) {
	p.fail.Fprintf(p.err, "[ERROR] %v\n", err)
}

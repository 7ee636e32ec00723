package render_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/andrew-torda/repeatfinder/pkg/motif"
	. "github.com/andrew-torda/repeatfinder/pkg/render"
)

// hasColour says if any pixel in img is exactly c.
func hasColour(img image.Image, c color.RGBA) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if color.RGBAModel.Convert(img.At(x, y)).(color.RGBA) == c {
				return true
			}
		}
	}
	return false
}

func TestPlot(t *testing.T) {
	rows := []PlotRow{
		{Name: "first", Cells: []motif.Cell{{Pos: 0, Rank: 1}, {Pos: 4, Rank: 1}}},
		{Name: "second", Cells: []motif.Cell{{Pos: 2, Rank: 1}, {Pos: 7, Rank: 2}, {Pos: 9, Rank: 2}}},
	}
	var buf bytes.Buffer
	if err := Plot(&buf, rows); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal("reading back png", err)
	}
	b := img.Bounds()
	if b.Dx() < 3*20 || b.Dy() < 2*20 {
		t.Error("picture too small", b)
	}
	maroon := color.RGBA{128, 0, 0, 255} // xterm colour 1
	green := color.RGBA{0, 128, 0, 255}  // xterm colour 2
	for _, c := range []color.RGBA{maroon, green} {
		if !hasColour(img, c) {
			t.Error("no pixel with colour", c)
		}
	}
}

func TestPlotEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Plot(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Fatal(err)
	}
}

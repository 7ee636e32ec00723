// 12 Oct 2026

package render

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"strconv"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/andrew-torda/repeatfinder/pkg/motif"
)

// PlotRow is one band in the picture, one per sequence.
type PlotRow struct {
	Name  string
	Cells []motif.Cell
}

// Sizes are in pixels, except the font which is in points.
const (
	plotDPI   = 72
	fontSize  = 11
	cellW     = 26
	cellH     = 20
	rowGap    = 6
	margin    = 8
	maxName   = 40 // longer names are cut
	nameSpace = 12 // between the name and the first cell
)

// Plot draws the bands as a PNG, so the picture the terminal shows
// can be kept. Each row has the sequence name on the left and then a
// cell per position, painted with the colour the terminal would use.
func Plot(w io.Writer, rows []PlotRow) error {
	ttf, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return fmt.Errorf("plot font: %w", err)
	}
	face := truetype.NewFace(ttf, &truetype.Options{Size: fontSize, DPI: plotDPI})
	defer face.Close()

	labelW, maxCells := 0, 0
	for _, r := range rows {
		if n := font.MeasureString(face, trimName(r.Name)).Ceil(); n > labelW {
			labelW = n
		}
		if len(r.Cells) > maxCells {
			maxCells = len(r.Cells)
		}
	}
	width := 2*margin + labelW + nameSpace + maxCells*cellW
	height := 2*margin + len(rows)*(cellH+rowGap)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	c := freetype.NewContext()
	c.SetDPI(plotDPI)
	c.SetFont(ttf)
	c.SetFontSize(fontSize)
	c.SetClip(img.Bounds())
	c.SetDst(img)
	c.SetHinting(font.HintingFull)

	ascent := face.Metrics().Ascent.Ceil()
	baseline := func(y0 int) int { return y0 + (cellH+ascent)/2 - 1 }
	for i, r := range rows {
		y0 := margin + i*(cellH+rowGap)
		c.SetSrc(image.Black)
		if _, err := c.DrawString(trimName(r.Name), freetype.Pt(margin, baseline(y0))); err != nil {
			return err
		}
		x0 := margin + labelW + nameSpace
		for j, cell := range r.Cells {
			bg := rankColour(cell.Rank)
			rect := image.Rect(x0+j*cellW, y0, x0+(j+1)*cellW, y0+cellH)
			draw.Draw(img, rect, &image.Uniform{C: bg}, image.Point{}, draw.Src)
			s := strconv.Itoa(cell.Rank)
			tw := font.MeasureString(face, s).Round()
			c.SetSrc(&image.Uniform{C: inkFor(bg)})
			pt := freetype.Pt(rect.Min.X+(cellW-tw)/2, baseline(y0))
			if _, err := c.DrawString(s, pt); err != nil {
				return err
			}
		}
	}
	return png.Encode(w, img)
}

func trimName(s string) string {
	if len(s) > maxName {
		return s[:maxName]
	}
	return s
}


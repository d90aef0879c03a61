package mask

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"

	"github.com/cellseg/monuseg/annot"
)

// Mask is a binary label image. Pix holds one value per pixel in
// row-major order, drawn from {0, 1}.
type Mask struct {
	H, W int
	Pix  []uint8
}

// Centroid is the integer (row, col) center of one region's pixel set.
type Centroid struct {
	Row, Col int
}

func New(h, w int) *Mask {
	return &Mask{H: h, W: w, Pix: make([]uint8, h*w)}
}

func (m *Mask) At(row, col int) uint8 {
	return m.Pix[row*m.W+col]
}

// FromRegions rasterizes each region's polygon interior onto a canvas of
// the given shape and accumulates them into a single mask via pixel-wise
// maximum. Centroids are returned in the same order as the input regions,
// computed as the truncated mean row/column of each region's pixel set.
func FromRegions(regions []annot.Region, h, w int) (*Mask, []Centroid) {
	out := New(h, w)
	centroids := make([]Centroid, 0, len(regions))

	for _, reg := range regions {
		cell := rasterize(reg, h, w)

		var sumRow, sumCol, n int
		for i, v := range cell.Pix {
			if v > out.Pix[i] {
				out.Pix[i] = v
			}
			if v == 1 {
				sumRow += i / w
				sumCol += i % w
				n++
			}
		}

		if n == 0 {
			// Polygon too thin to cover any pixel center.
			centroids = append(centroids, Centroid{})
			continue
		}
		centroids = append(centroids, Centroid{Row: sumRow / n, Col: sumCol / n})
	}

	return out, centroids
}

// rasterize fills one polygon interior on its own canvas.
func rasterize(reg annot.Region, h, w int) *Mask {
	dc := gg.NewContext(w, h)
	dc.MoveTo(reg.Vertices[0].Col, reg.Vertices[0].Row)
	for _, v := range reg.Vertices[1:] {
		dc.LineTo(v.Col, v.Row)
	}
	dc.ClosePath()
	dc.SetRGB(1, 1, 1)
	dc.Fill()

	m := New(h, w)
	img := dc.Image()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			// Threshold the anti-aliased coverage at half intensity.
			if r, _, _, _ := img.At(col, row).RGBA(); r >= 0x8000 {
				m.Pix[row*m.W+col] = 1
			}
		}
	}

	return m
}

// Validate reports any pixel outside {0, 1}. A non-binary mask means the
// accumulation went wrong and the pipeline must stop rather than persist it.
func (m *Mask) Validate() error {
	for i, v := range m.Pix {
		if v > 1 {
			return fmt.Errorf("mask pixel (%d, %d) has value %d, expected 0 or 1", i/m.W, i%m.W, v)
		}
	}
	return nil
}

// Gray scales the binary mask to a 0/255 grayscale image for storage.
func (m *Mask) Gray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.W, m.H))
	for i, v := range m.Pix {
		img.Pix[i] = v * 255
	}
	return img
}

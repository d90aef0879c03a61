package tile

import (
	"image"

	"github.com/disintegration/imaging"
)

// Offset is the top-left (row, col) corner of one tile.
type Offset struct {
	Row, Col int
}

// Tile is one fixed-size patch of an image/mask pair.
type Tile struct {
	Image *image.NRGBA
	Mask  *image.NRGBA
	Row   int
	Col   int
}

// Grid enumerates tile offsets in row-major order for an h x w canvas and
// a tile edge length of imsize. Any trailing partial row or column beyond
// the last full imsize-aligned tile is dropped entirely, so exactly
// (h/imsize)*(w/imsize) offsets are produced.
func Grid(h, w, imsize int) []Offset {
	var offsets []Offset
	for hChunk := 0; hChunk < h/imsize; hChunk++ {
		for wChunk := 0; wChunk < w/imsize; wChunk++ {
			offsets = append(offsets, Offset{Row: hChunk * imsize, Col: wChunk * imsize})
		}
	}
	return offsets
}

// Cut slices an image and its same-size mask into imsize x imsize tiles
// following the Grid enumeration.
func Cut(img, mask image.Image, imsize int) []Tile {
	b := img.Bounds()
	h, w := b.Dy(), b.Dx()

	tiles := make([]Tile, 0, (h/imsize)*(w/imsize))
	for _, off := range Grid(h, w, imsize) {
		rowEnd := off.Row + imsize
		if rowEnd > h {
			rowEnd = h
		}
		colEnd := off.Col + imsize
		if colEnd > w {
			colEnd = w
		}
		rect := image.Rect(off.Col, off.Row, colEnd, rowEnd)

		tiles = append(tiles, Tile{
			Image: imaging.Crop(img, rect),
			Mask:  imaging.Crop(mask, rect),
			Row:   off.Row,
			Col:   off.Col,
		})
	}

	return tiles
}

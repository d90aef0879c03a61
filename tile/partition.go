package tile

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// Class is the partition assignment of one tile in an intra-image split.
type Class int

const (
	// Evidence tiles keep their annotations visible to training.
	Evidence Class = iota
	// HeldOut tiles are reserved for evaluation.
	HeldOut
)

// Target returns the number of evidence tiles for a given percentage of
// the total tile count, rounded up.
func Target(total, percent int) int {
	return int(math.Ceil(float64(percent) * float64(total) / 100.0))
}

// Partition assigns classes to total tiles walked in raster order: the
// first Target(total, percent) tiles are Evidence, the rest HeldOut.
// The assignment is deterministic; re-running with the same inputs
// produces the same result.
func Partition(total, percent int) []Class {
	target := Target(total, percent)
	classes := make([]Class, total)
	for i := range classes {
		if i >= target {
			classes[i] = HeldOut
		}
	}
	return classes
}

// Zero returns an all-black canvas of the same shape as img.
func Zero(img image.Image) *image.NRGBA {
	b := img.Bounds()
	return imaging.New(b.Dx(), b.Dy(), color.NRGBA{0, 0, 0, 255})
}

// EffectiveCanvas assembles full-size image/mask canvases containing
// exactly the pixels of the held-out tiles, zero elsewhere. It supports
// whole-image inspection of what the evaluator can see.
func EffectiveCanvas(h, w int, tiles []Tile, classes []Class) (img, mask *image.NRGBA) {
	img = imaging.New(w, h, color.NRGBA{0, 0, 0, 255})
	mask = imaging.New(w, h, color.NRGBA{0, 0, 0, 255})

	for i, t := range tiles {
		if classes[i] != HeldOut {
			continue
		}
		img = imaging.Paste(img, t.Image, image.Pt(t.Col, t.Row))
		mask = imaging.Paste(mask, t.Mask, image.Pt(t.Col, t.Row))
	}

	return img, mask
}

package detect

import "image"

// Point is a detected nucleus center in (row, col) image coordinates.
type Point struct {
	Row, Col float64
}

// Eval scores detected centers against a ground-truth mask. A detection
// is a true positive when its pixel lies on the mask; points outside the
// mask bounds are ignored, and multiple detections on the same pixel
// count once. totalPos is the number of annotated nuclei; recall is
// TP / totalPos.
func Eval(points []Point, mask *image.Gray, totalPos int) (recall float64, tp, fn int) {
	b := mask.Bounds()
	h, w := b.Dy(), b.Dx()

	hit := make(map[[2]int]bool)
	for _, p := range points {
		row, col := int(p.Row), int(p.Col)
		if row < 0 || row >= h || col < 0 || col >= w {
			continue
		}
		if hit[[2]int{row, col}] {
			continue
		}
		hit[[2]int{row, col}] = true

		if mask.GrayAt(b.Min.X+col, b.Min.Y+row).Y > 0 {
			tp++
		}
	}

	fn = totalPos - tp
	if totalPos > 0 {
		recall = float64(tp) / float64(totalPos)
	}
	return recall, tp, fn
}

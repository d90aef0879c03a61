package detect

import (
	"image"
	"image/color"
	"testing"
)

func evalMask() *image.Gray {
	m := image.NewGray(image.Rect(0, 0, 10, 10))
	// Nuclei occupy rows 0-4.
	for row := 0; row < 5; row++ {
		for col := 0; col < 10; col++ {
			m.SetGray(col, row, color.Gray{Y: 255})
		}
	}
	return m
}

func TestEval(t *testing.T) {
	mask := evalMask()

	points := []Point{
		{Row: 1, Col: 1},     // hit
		{Row: 4, Col: 9},     // hit
		{Row: 8, Col: 8},     // miss, background
		{Row: -3, Col: 2},    // out of bounds, ignored
		{Row: 2, Col: 200},   // out of bounds, ignored
		{Row: 1.7, Col: 1.2}, // truncates to (1, 1), already counted
	}

	recall, tp, fn := Eval(points, mask, 4)
	if tp != 2 {
		t.Errorf("got TP %d, want 2", tp)
	}
	if fn != 2 {
		t.Errorf("got FN %d, want 2", fn)
	}
	if recall != 0.5 {
		t.Errorf("got recall %v, want 0.5", recall)
	}
}

func TestEvalNoPositives(t *testing.T) {
	recall, tp, fn := Eval(nil, evalMask(), 0)
	if recall != 0 || tp != 0 || fn != 0 {
		t.Errorf("got recall %v, tp %d, fn %d; want zeros", recall, tp, fn)
	}
}

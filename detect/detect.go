package detect

import (
	"image/color"

	"gocv.io/x/gocv"
)

// Border width padded around the image before detection. White padding
// keeps the detector from clipping blobs against the image edge.
const pad = 5

// params returns blob detector parameters tuned for H&E-stained nuclei.
func params() gocv.SimpleBlobDetectorParams {
	p := gocv.NewSimpleBlobDetectorParams()
	p.SetMinThreshold(5)
	p.SetMaxThreshold(220)
	p.SetMinArea(150)
	p.SetMaxArea(10000)
	p.SetMinConvexity(0.8)
	p.SetMinDistBetweenBlobs(1)
	return p
}

// Nuclei runs the blob detector over a BGR image and returns detected
// nucleus centers in (row, col) coordinates of the unpadded image.
func Nuclei(img gocv.Mat) []Point {
	points, overlay := detect(img, false)
	overlay.Close()
	return points
}

// NucleiWithOverlay additionally returns the padded grayscale image with
// detected blobs drawn as rich keypoints. The caller owns the Mat.
func NucleiWithOverlay(img gocv.Mat) ([]Point, gocv.Mat) {
	return detect(img, true)
}

func detect(img gocv.Mat, overlay bool) ([]Point, gocv.Mat) {
	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(img, &gray, gocv.ColorBGRToGray)

	padded := gocv.NewMat()
	defer padded.Close()
	gocv.CopyMakeBorder(gray, &padded, pad, pad, pad, pad, gocv.BorderConstant,
		color.RGBA{R: 255, G: 255, B: 255, A: 255})

	detector := gocv.NewSimpleBlobDetectorWithParams(params())
	defer detector.Close()

	keypoints := detector.Detect(padded)

	points := make([]Point, 0, len(keypoints))
	for _, kp := range keypoints {
		// Keypoints live in padded coordinates; map back to the source.
		points = append(points, Point{Row: kp.Y - pad, Col: kp.X - pad})
	}

	out := gocv.NewMat()
	if overlay {
		gocv.DrawKeyPoints(padded, keypoints, &out,
			color.RGBA{R: 255, A: 255}, gocv.DrawRichKeyPoints)
	}
	return points, out
}

package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gocv.io/x/gocv"

	"github.com/cellseg/monuseg/annot"
	"github.com/cellseg/monuseg/detect"
	"github.com/cellseg/monuseg/imgio"
)

// runDetect runs the classical blob-detector baseline over the test
// images, writes keypoint overlays and reports detection recall against
// the annotated nuclei.
func runDetect() {
	m := loadManifest()

	imageDir := filepath.Join(DataPath, "MoNuSegTestData", "images")
	maskDir := filepath.Join(DataPath, "MoNuSegTestData", "masks")
	annotDir := filepath.Join(DataPath, "MoNuSegTestData")

	outDir := filepath.Join(TargetPath, "detect")
	if err := os.MkdirAll(outDir, 0755); err != nil {
		log.Fatal(err)
	}

	for _, ct := range m.CancerTypes() {
		if CancerType != "" && ct != CancerType {
			continue
		}

		for _, id := range m[ct].Test {
			imgPath := filepath.Join(imageDir, id+".png")
			img := gocv.IMRead(imgPath, gocv.IMReadColor)
			if img.Empty() {
				log.Printf("Image file %v not found.", imgPath)
				continue
			}

			points, overlay := detect.NucleiWithOverlay(img)
			img.Close()
			fmt.Printf("%v: detected %d nuclei\n", id, len(points))

			outPath := filepath.Join(outDir, id+"_overlay.png")
			if ok := gocv.IMWrite(outPath, overlay); !ok {
				log.Printf("writing overlay %v failed", outPath)
			}
			overlay.Close()

			gtMask, err := imgio.ReadGray(filepath.Join(maskDir, id+".png"))
			if err != nil {
				log.Printf("Mask file for %v not found: %v", id, err)
				continue
			}

			// Ground-truth nuclei count comes from the annotation file.
			regions, _, err := annot.Load(filepath.Join(annotDir, id+".xml"))
			if err != nil {
				log.Printf("Annotation file for %v not found: %v", id, err)
				continue
			}

			recall, tp, fn := detect.Eval(points, gtMask, len(regions))
			fmt.Printf("%v: recall %.2f (TP %d, FN %d of %d nuclei)\n", id, recall, tp, fn, len(regions))
		}
	}
}

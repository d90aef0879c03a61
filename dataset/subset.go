package dataset

import (
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/cellseg/monuseg/imgio"
	"github.com/cellseg/monuseg/tile"
)

// Config names the preprocessed image/mask trees the subset operations
// read from and how many images may be processed concurrently.
type Config struct {
	TrainImageDir string
	TrainMaskDir  string
	TestImageDir  string
	TestMaskDir   string
	Workers       int
}

// sources returns the image and mask directories feeding the named split.
func (cfg Config) sources(split string) (imageDir, maskDir string) {
	if split == "train" {
		return cfg.TrainImageDir, cfg.TrainMaskDir
	}
	return cfg.TestImageDir, cfg.TestMaskDir
}

var splitNames = []string{"train", "test"}

// Subset copies each manifest id's image/mask pair into a directory tree
// keyed by cancer type and split:
//
//	<target>/<cancer_type>/<split>/{images,masks}/<id>.png
//
// Ids whose image or mask file is missing are logged and skipped with no
// partial output.
func Subset(cfg Config, m Manifest, target string) error {
	for _, ct := range m.CancerTypes() {
		for _, split := range splitNames {
			imageDir, maskDir := cfg.sources(split)
			for _, id := range m[ct].List(split) {
				imgFrom := filepath.Join(imageDir, id+".png")
				maskFrom := filepath.Join(maskDir, id+".png")
				if _, err := os.Stat(imgFrom); os.IsNotExist(err) {
					log.Printf("Image file %v not found.", imgFrom)
					continue
				}
				if _, err := os.Stat(maskFrom); os.IsNotExist(err) {
					log.Printf("Mask file %v not found.", maskFrom)
					continue
				}

				imgTo := filepath.Join(target, ct, split, "images", id+".png")
				maskTo := filepath.Join(target, ct, split, "masks", id+".png")
				if err := copyFile(imgFrom, imgTo); err != nil {
					return fmt.Errorf("copy %v: %v", imgFrom, err)
				}
				if err := copyFile(maskFrom, maskTo); err != nil {
					return fmt.Errorf("copy %v: %v", maskFrom, err)
				}
			}
		}
	}
	return nil
}

// Patchify tiles each manifest id's image/mask pair into imsize x imsize
// patches and writes them under:
//
//	<target>/<cancer_type>/<split>/{images,masks}/<id>_H<row>W<col>.png
//
// A reduction factor above 1 downscales the pair before tiling.
func Patchify(cfg Config, m Manifest, target string, imsize, reduction int) error {
	for _, ct := range m.CancerTypes() {
		for _, split := range splitNames {
			imageDir, maskDir := cfg.sources(split)
			outDir := filepath.Join(target, ct, split)

			forEach(m[ct].List(split), cfg.Workers, func(_ int, id string) {
				if err := patchifyItem(imageDir, maskDir, outDir, id, imsize, reduction); err != nil {
					log.Printf("patchify %v: %v", id, err)
				}
			})
		}
	}
	return nil
}

func patchifyItem(imageDir, maskDir, outDir, id string, imsize, reduction int) error {
	img, mask, ok, err := readPair(imageDir, maskDir, id)
	if err != nil || !ok {
		return err
	}
	if reduction > 1 {
		img = imgio.Reduce(img, reduction)
		mask = imgio.Reduce(mask, reduction)
	}

	for _, t := range tile.Cut(img, mask, imsize) {
		name := fmt.Sprintf("%s_H%dW%d.png", id, t.Row, t.Col)
		if err := imgio.WritePNG(filepath.Join(outDir, "images", name), t.Image); err != nil {
			return err
		}
		if err := imgio.WritePNG(filepath.Join(outDir, "masks", name), t.Mask); err != nil {
			return err
		}
	}
	return nil
}

// IntraImage carves each test image of the manifest into tiles and
// splits them into an evidence partition and a held-out partition at the
// given percentage. Evidence tiles are written twice: real content into
// the img<N>_train tree and all-zero twins into the img<N>_test tree.
// Held-out tiles are written once as real content, and an "effective"
// full-size image/mask pair showing only the held-out pixels is written
// per source image.
func IntraImage(cfg Config, m Manifest, target string, imsize, percent int) error {
	for _, ct := range m.CancerTypes() {
		ids := m[ct].Test
		typeDir := filepath.Join(target, ct)

		forEach(ids, cfg.Workers, func(idx int, id string) {
			if err := intraImageItem(cfg.TestImageDir, cfg.TestMaskDir, typeDir, id, idx, imsize, percent); err != nil {
				log.Printf("intraimage %v: %v", id, err)
			}
		})
	}
	return nil
}

func intraImageItem(imageDir, maskDir, typeDir, id string, idx, imsize, percent int) error {
	img, mask, ok, err := readPair(imageDir, maskDir, id)
	if err != nil || !ok {
		return err
	}

	tiles := tile.Cut(img, mask, imsize)
	classes := tile.Partition(len(tiles), percent)

	evidenceDir := filepath.Join(typeDir, fmt.Sprintf("img%d_train", idx))
	heldOutDir := filepath.Join(typeDir, fmt.Sprintf("img%d_test", idx))

	for i, t := range tiles {
		name := fmt.Sprintf("%s_H%dW%d.png", id, t.Row, t.Col)

		if classes[i] == tile.Evidence {
			// Real content goes to the evidence tree, a blanked twin to
			// the held-out tree so the evaluation view withholds it.
			if err := writePair(evidenceDir, name, t.Image, t.Mask); err != nil {
				return err
			}
			if err := writePair(heldOutDir, name, tile.Zero(t.Image), tile.Zero(t.Mask)); err != nil {
				return err
			}
			continue
		}

		if err := writePair(heldOutDir, name, t.Image, t.Mask); err != nil {
			return err
		}
	}

	b := img.Bounds()
	effImg, effMask := tile.EffectiveCanvas(b.Dy(), b.Dx(), tiles, classes)
	if err := imgio.WritePNG(filepath.Join(heldOutDir, id+"_effective_image.png"), effImg); err != nil {
		return err
	}
	return imgio.WritePNG(filepath.Join(heldOutDir, id+"_effective_mask.png"), effMask)
}

// readPair loads the image/mask pair for id. A missing image file is
// logged and reported as ok=false without an error.
func readPair(imageDir, maskDir, id string) (img, mask image.Image, ok bool, err error) {
	imgPath := filepath.Join(imageDir, id+".png")
	if _, serr := os.Stat(imgPath); os.IsNotExist(serr) {
		log.Printf("Image file %v not found.", imgPath)
		return nil, nil, false, nil
	}

	img, err = imgio.ReadImage(imgPath)
	if err != nil {
		return nil, nil, false, err
	}
	mask, err = imgio.ReadImage(filepath.Join(maskDir, id+".png"))
	if err != nil {
		return nil, nil, false, err
	}
	return img, mask, true, nil
}

func writePair(dir, name string, img, mask image.Image) error {
	if err := imgio.WritePNG(filepath.Join(dir, "images", name), img); err != nil {
		return err
	}
	return imgio.WritePNG(filepath.Join(dir, "masks", name), mask)
}

// copyFile copies a single file, creating destination directories.
func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer dstFile.Close()

	_, err = io.Copy(dstFile, srcFile)
	return err
}

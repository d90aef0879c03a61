package loader

import (
	"fmt"
	"reflect"

	ts "github.com/sugarme/gotch/tensor"
	"github.com/sugarme/gotch/vision"
)

// ImageMask pairs one tile image tensor with its mask tensor. Both are
// scaled to [0, 1]; the mask is single-channel.
type ImageMask struct {
	Image ts.Tensor
	Mask  ts.Tensor
}

// TileDataset implements dutil.Dataset over tile file names stored in
// parallel images/masks directories.
type TileDataset struct {
	imageDir string
	maskDir  string
	fnames   []string
}

func NewTileDataset(imageDir, maskDir string, fnames []string) *TileDataset {
	return &TileDataset{imageDir: imageDir, maskDir: maskDir, fnames: fnames}
}

func (ds *TileDataset) Len() int {
	return len(ds.fnames)
}

// NumImageChannel reports the channel count of the image tensors.
func (ds *TileDataset) NumImageChannel() int64 {
	return 3
}

// Item implements the Dataset interface.
func (ds *TileDataset) Item(idx int) (interface{}, error) {
	fname := ds.fnames[idx]

	imgTs, err := vision.Load(fmt.Sprintf("%v/%v", ds.imageDir, fname))
	if err != nil {
		return nil, err
	}
	img := imgTs.MustDivScalar(ts.FloatScalar(255.0), true)

	maskTs, err := vision.Load(fmt.Sprintf("%v/%v", ds.maskDir, fname))
	if err != nil {
		return nil, err
	}
	maskGray, err := rgb2GrayScale(maskTs)
	if err != nil {
		return nil, err
	}
	maskTs.MustDrop()
	mask := maskGray.MustDivScalar(ts.FloatScalar(255.0), true)

	return ImageMask{
		Image: *img,
		Mask:  *mask,
	}, nil
}

func (ds *TileDataset) DType() reflect.Type {
	return reflect.TypeOf(ds.fnames)
}

// rgb2GrayScale converts a RGB (3xHxW) tensor to grayscale (HxW) with
// luminosity weights (0.2989 * r + 0.587 * g + 0.114 * b).
func rgb2GrayScale(x *ts.Tensor) (*ts.Tensor, error) {
	size := x.MustSize()
	if len(size) < 3 {
		err := fmt.Errorf("Expect at least 3D tensor. Got %v dimensions.\n", len(size))
		return nil, err
	}

	chanSize := size[len(size)-3]
	if chanSize != 3 {
		err := fmt.Errorf("Expect image of 3 channels for RGB. Got %v .\n", chanSize)
		return nil, err
	}

	channels := x.MustUnbind(-3, false)
	r := channels[0].MustMulScalar(ts.FloatScalar(0.2989), true)
	g := channels[1].MustMulScalar(ts.FloatScalar(0.587), true)
	b := channels[2].MustMulScalar(ts.FloatScalar(0.114), true)

	rg := r.MustAdd(g, true)
	g.MustDrop()
	gray := rg.MustAdd(b, true)
	b.MustDrop()

	return gray, nil
}

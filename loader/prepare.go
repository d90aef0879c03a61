package loader

import (
	"fmt"
	"io/ioutil"

	"github.com/sugarme/gotch/dutil"
)

// Config wires a tile directory pair into batched loaders.
type Config struct {
	ImageDir string
	MaskDir  string
	// Train:val:test ratios, normalized to sum to 1.
	Ratios [3]float64
	Seed   int64
	// Batch size for the training loader. Validation and test loaders
	// consume their whole set in a single batch.
	BatchSize int
	// Minimum number of training batches per epoch; the training set is
	// extended by repetition to reach it.
	MinBatchPerEpoch int
}

// Loaders holds the three batched loaders over disjoint subsets.
type Loaders struct {
	Train           *dutil.DataLoader
	Val             *dutil.DataLoader
	Test            *dutil.DataLoader
	NumImageChannel int64
}

// Prepare lists the tile files, splits them by ratio into three disjoint
// subsets, and wraps each in a DataLoader. The training subset is
// shuffled and extended to MinBatchPerEpoch batches; val and test are
// served unshuffled as one full batch each.
func Prepare(cfg Config) (*Loaders, error) {
	files, err := ioutil.ReadDir(cfg.ImageDir)
	if err != nil {
		return nil, err
	}
	var fnames []string
	for _, f := range files {
		fnames = append(fnames, f.Name())
	}
	if len(fnames) == 0 {
		return nil, fmt.Errorf("no tile images found in %v", cfg.ImageDir)
	}

	trainIdx, valIdx, testIdx := SplitIndices(len(fnames), cfg.Ratios, cfg.Seed)

	desired := cfg.BatchSize * cfg.MinBatchPerEpoch
	trainIdx = Extend(trainIdx, desired)

	trainDS := NewTileDataset(cfg.ImageDir, cfg.MaskDir, pick(fnames, trainIdx))
	valDS := NewTileDataset(cfg.ImageDir, cfg.MaskDir, pick(fnames, valIdx))
	testDS := NewTileDataset(cfg.ImageDir, cfg.MaskDir, pick(fnames, testIdx))

	train, err := newLoader(trainDS, cfg.BatchSize, true)
	if err != nil {
		return nil, err
	}
	val, err := newLoader(valDS, valDS.Len(), false)
	if err != nil {
		return nil, err
	}
	test, err := newLoader(testDS, testDS.Len(), false)
	if err != nil {
		return nil, err
	}

	return &Loaders{
		Train:           train,
		Val:             val,
		Test:            test,
		NumImageChannel: trainDS.NumImageChannel(),
	}, nil
}

func newLoader(ds *TileDataset, batchSize int, shuffle bool) (*dutil.DataLoader, error) {
	s, err := dutil.NewBatchSampler(ds.Len(), batchSize, true, shuffle)
	if err != nil {
		return nil, err
	}
	return dutil.NewDataLoader(ds, s)
}

func pick(fnames []string, indices []int) []string {
	out := make([]string, len(indices))
	for i, idx := range indices {
		out[i] = fnames[idx]
	}
	return out
}

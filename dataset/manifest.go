package dataset

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-gota/gota/dataframe"
)

// Split holds the train/test file-id lists for one cancer type.
type Split struct {
	Train []string
	Test  []string
}

// List returns the ids of the named split.
func (s Split) List(split string) []string {
	if split == "train" {
		return s.Train
	}
	return s.Test
}

// Manifest maps a cancer type to its train/test file-id lists. It
// replaces hardcoded per-type filename sets with a data file loaded at
// startup.
type Manifest map[string]Split

// LoadManifest reads a CSV manifest with cancer_type, split and file_id
// columns.
func LoadManifest(path string) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	df := dataframe.ReadCSV(f, dataframe.HasHeader(true))
	if df.Err != nil {
		return nil, df.Err
	}

	types := df.Col("cancer_type").Records()
	splits := df.Col("split").Records()
	ids := df.Col("file_id").Records()

	m := make(Manifest)
	for i := range types {
		s := m[types[i]]
		switch splits[i] {
		case "train":
			s.Train = append(s.Train, ids[i])
		case "test":
			s.Test = append(s.Test, ids[i])
		default:
			return nil, fmt.Errorf("unknown split %q in %v", splits[i], path)
		}
		m[types[i]] = s
	}

	return m, nil
}

// CancerTypes returns the manifest keys in sorted order so that every
// walk over the manifest is deterministic.
func (m Manifest) CancerTypes() []string {
	types := make([]string, 0, len(m))
	for ct := range m {
		types = append(types, ct)
	}
	sort.Strings(types)
	return types
}

package loader

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// ParseRatios parses a "train:val:test" ratio string such as "8:1:1"
// and normalizes the parts to sum to 1.
func ParseRatios(s string) ([3]float64, error) {
	var ratios [3]float64

	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return ratios, fmt.Errorf("ratio %q: expected three colon-separated parts", s)
	}

	var sum float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return ratios, fmt.Errorf("ratio %q: %v", s, err)
		}
		if v < 0 {
			return ratios, fmt.Errorf("ratio %q: negative part %v", s, v)
		}
		ratios[i] = v
		sum += v
	}
	if sum == 0 {
		return ratios, fmt.Errorf("ratio %q: parts sum to zero", s)
	}

	for i := range ratios {
		ratios[i] /= sum
	}
	return ratios, nil
}

// SplitIndices shuffles the indices 0..n-1 with the given seed and
// splits them by ratio into three disjoint sets covering all of them.
func SplitIndices(n int, ratios [3]float64, seed int64) (train, val, test []int) {
	perm := rand.New(rand.NewSource(seed)).Perm(n)

	nTrain := int(float64(n) * ratios[0])
	nVal := int(float64(n) * ratios[1])

	train = perm[:nTrain]
	val = perm[nTrain : nTrain+nVal]
	test = perm[nTrain+nVal:]
	return train, val, test
}

// Extend repeats indices cyclically until desiredLen, guaranteeing a
// minimum number of batches per epoch for short training sets.
func Extend(indices []int, desiredLen int) []int {
	if len(indices) == 0 || desiredLen <= len(indices) {
		return indices
	}
	out := make([]int, desiredLen)
	for i := range out {
		out[i] = indices[i%len(indices)]
	}
	return out
}

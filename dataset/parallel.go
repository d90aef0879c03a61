package dataset

import "sync"

// forEach runs fn for every id, at most workers at a time. Each id's
// outputs are independent files, so results do not depend on schedule.
func forEach(ids []string, workers int, fn func(idx int, id string)) {
	if workers <= 1 {
		for i, id := range ids {
			fn(i, id)
		}
		return
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			fn(i, id)
		}(i, id)
	}
	wg.Wait()
}

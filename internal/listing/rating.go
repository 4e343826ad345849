package listing

// OptimisticAverage recomputes a company's displayed rating aggregate after a
// review with the given rating was accepted upstream. This is a display-only
// approximation; the authoritative aggregate is recomputed server-side and
// shown on the next full fetch.
func OptimisticAverage(avg float64, count, rating int) (float64, int) {
	newCount := count + 1
	newAvg := (avg*float64(count) + float64(rating)) / float64(newCount)
	return newAvg, newCount
}

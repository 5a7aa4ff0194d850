package imagecheck

// maxEditDistance bounds the near-match correction for unknown keys.
const maxEditDistance = 2

// NearestKey returns the known key closest to key within the fixed edit
// distance bound. The match is only used for diagnostics, never applied
// to data.
func NearestKey(key string, known []string) (string, bool) {
	best := ""
	bestDistance := maxEditDistance + 1

	for _, candidate := range known {
		distance := editDistance(key, candidate, maxEditDistance)
		if distance < bestDistance {
			best = candidate
			bestDistance = distance
		}
	}

	return best, bestDistance <= maxEditDistance
}

// editDistance computes the Levenshtein distance between a and b, giving up
// early once the distance is guaranteed to exceed bound.
func editDistance(a, b string, bound int) int {
	ra, rb := []rune(a), []rune(b)
	if diff := len(ra) - len(rb); diff > bound || diff < -bound {
		return bound + 1
	}

	previous := make([]int, len(rb)+1)
	current := make([]int, len(rb)+1)
	for j := range previous {
		previous[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		current[0] = i
		rowMin := current[0]

		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			current[j] = min(
				previous[j]+1,
				min(current[j-1]+1, previous[j-1]+cost),
			)
			if current[j] < rowMin {
				rowMin = current[j]
			}
		}

		if rowMin > bound {
			return bound + 1
		}
		previous, current = current, previous
	}

	return previous[len(rb)]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

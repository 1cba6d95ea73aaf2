package exercise

// similarity scores two answer strings in [0, 1] using Jaro-Winkler.
// Jaro tolerates the transpositions and near-misses typical of learner
// typos ("haev" for "have"), and the Winkler prefix bonus rewards
// getting the start of the word right.
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}

	j := jaro(a, b)
	if j == 0 {
		return 0
	}

	// Common-prefix bonus, capped at 4 runes.
	prefix := 0
	for i := 0; i < len(a) && i < len(b) && i < 4; i++ {
		if a[i] != b[i] {
			break
		}
		prefix++
	}
	return j + float64(prefix)*0.1*(1-j)
}

func jaro(a, b string) float64 {
	la, lb := len(a), len(b)

	window := max(la, lb)/2 - 1
	if window < 0 {
		window = 0
	}

	matchA := make([]bool, la)
	matchB := make([]bool, lb)

	matches := 0
	for i := 0; i < la; i++ {
		lo := max(0, i-window)
		hi := min(lb, i+window+1)
		for j := lo; j < hi; j++ {
			if matchB[j] || a[i] != b[j] {
				continue
			}
			matchA[i] = true
			matchB[j] = true
			matches++
			break
		}
	}
	if matches == 0 {
		return 0
	}

	// Half-transposition count over matched characters in order.
	transpositions := 0
	j := 0
	for i := 0; i < la; i++ {
		if !matchA[i] {
			continue
		}
		for !matchB[j] {
			j++
		}
		if a[i] != b[j] {
			transpositions++
		}
		j++
	}

	m := float64(matches)
	t := float64(transpositions) / 2
	return (m/float64(la) + m/float64(lb) + (m-t)/m) / 3
}

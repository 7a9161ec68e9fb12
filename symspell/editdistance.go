package symspell

// EditDistance computes Damerau-Levenshtein optimal string alignment (OSA)
// distance over graphemes rather than runes, so it agrees with GraphemeCursor
// and the delete-index about what a "character" is. The row-buffer and
// banding strategy below is a faithful port of the classic SymSpell
// distance comparer, generalized from []rune to []string grapheme slices.
type EditDistance struct {
	char1Costs     []int
	prevChar1Costs []int
}

// NewEditDistance returns a comparer with empty, lazily-grown scratch
// buffers, reused across calls to avoid per-lookup allocation.
func NewEditDistance() *EditDistance {
	return &EditDistance{}
}

// ExceededDistance is the sentinel returned by DistanceBounded when the true
// distance is greater than the requested bound.
const ExceededDistance = -1

func splitGraphemes(s string) []string {
	if s == "" {
		return nil
	}
	n := graphemeLen(s)
	out := make([]string, 0, n)
	gc := NewGraphemeCursor(s)
	for i := 0; i < n; i++ {
		out = append(out, gc.At(i))
	}
	return out
}

// Distance returns the full, unbounded OSA distance between a and b.
func (d *EditDistance) Distance(a, b string) int {
	dist, _ := d.distance(a, b, -1)
	return dist
}

// DistanceBounded returns the OSA distance between a and b if it is no
// greater than maxDistance, and reports whether the bound was exceeded.
func (d *EditDistance) DistanceBounded(a, b string, maxDistance int) (dist int, exceeded bool) {
	if maxDistance < 0 {
		return d.distance(a, b, -1)
	}
	return d.distance(a, b, maxDistance)
}

// distance implements both entry points. maxDistance < 0 means unbounded.
func (d *EditDistance) distance(a, b string, maxDistance int) (int, bool) {
	if a == "" || b == "" {
		return nullDistanceResult(a, b, maxDistance)
	}
	if maxDistance == 0 {
		if a == b {
			return 0, false
		}
		return ExceededDistance, true
	}

	g1 := splitGraphemes(a)
	g2 := splitGraphemes(b)
	if len(g1) > len(g2) {
		g1, g2 = g2, g1
	}
	if maxDistance >= 0 && len(g2)-len(g1) > maxDistance {
		return ExceededDistance, true
	}

	len1, len2, start := graphemePrefixSuffixPrep(g1, g2)
	if len1 == 0 {
		if maxDistance < 0 || len2 <= maxDistance {
			return len2, false
		}
		return ExceededDistance, true
	}

	if len2 > len(d.char1Costs) {
		d.char1Costs = make([]int, len2)
		d.prevChar1Costs = make([]int, len2)
	}

	if maxDistance >= 0 && maxDistance < len2 {
		cost := graphemeDistanceWithMax(g1, g2, len1, len2, start, maxDistance, d.char1Costs, d.prevChar1Costs)
		if cost < 0 {
			return ExceededDistance, true
		}
		return cost, false
	}
	cost := graphemeDist(g1, g2, len1, len2, start, d.char1Costs, d.prevChar1Costs)
	if maxDistance >= 0 && cost > maxDistance {
		return ExceededDistance, true
	}
	return cost, false
}

func graphemeDist(g1, g2 []string, len1, len2, start int, char1Costs, prevChar1Costs []int) int {
	for j := 0; j < len2; j++ {
		char1Costs[j] = j + 1
	}
	var char1, prevChar1 string
	var currentCost int
	for i := 0; i < len1; i++ {
		prevChar1 = char1
		char1 = g1[start+i]
		var char2, prevChar2 string
		leftCharCost := i
		aboveCharCost := i
		nextTransCost := 0
		for j := 0; j < len2; j++ {
			thisTransCost := nextTransCost
			nextTransCost = prevChar1Costs[j]
			prevChar1Costs[j] = currentCost
			currentCost = leftCharCost
			leftCharCost = char1Costs[j]
			prevChar2 = char2
			char2 = g2[start+j]
			if char1 != char2 {
				if aboveCharCost < currentCost {
					currentCost = aboveCharCost
				}
				if leftCharCost < currentCost {
					currentCost = leftCharCost
				}
				currentCost++
				if i != 0 && j != 0 && char1 == prevChar2 && prevChar1 == char2 && thisTransCost+1 < currentCost {
					currentCost = thisTransCost + 1
				}
			}
			char1Costs[j] = currentCost
			aboveCharCost = currentCost
		}
	}
	return currentCost
}

func graphemeDistanceWithMax(g1, g2 []string, len1, len2, start, maxDistance int, char1Costs, prevChar1Costs []int) int {
	for j := 0; j < maxDistance; j++ {
		char1Costs[j] = j + 1
	}
	for j := maxDistance; j < len2; j++ {
		char1Costs[j] = maxDistance + 1
	}
	lenDiff := len2 - len1
	jStartOffset := maxDistance - lenDiff
	jStart := 0
	jEnd := maxDistance
	var char1, prevChar1 string
	var currentCost int
	for i := 0; i < len1; i++ {
		prevChar1 = char1
		char1 = g1[start+i]
		var char2, prevChar2 string
		leftCharCost := i
		aboveCharCost := i
		nextTransCost := 0
		if i > jStartOffset {
			jStart++
		}
		if jEnd < len2 {
			jEnd++
		}
		for j := jStart; j < jEnd; j++ {
			thisTransCost := nextTransCost
			nextTransCost = prevChar1Costs[j]
			prevChar1Costs[j] = currentCost
			currentCost = leftCharCost
			leftCharCost = char1Costs[j]
			prevChar2 = char2
			char2 = g2[start+j]
			if char1 != char2 {
				if aboveCharCost < currentCost {
					currentCost = aboveCharCost
				}
				if leftCharCost < currentCost {
					currentCost = leftCharCost
				}
				currentCost++
				if i != 0 && j != 0 && char1 == prevChar2 && prevChar1 == char2 && thisTransCost+1 < currentCost {
					currentCost = thisTransCost + 1
				}
			}
			char1Costs[j] = currentCost
			aboveCharCost = currentCost
		}
		if char1Costs[i+lenDiff] > maxDistance {
			return -1
		}
	}
	if currentCost <= maxDistance {
		return currentCost
	}
	return -1
}

func nullDistanceResult(a, b string, maxDistance int) (int, bool) {
	if a == b {
		return 0, false
	}
	dist := max(graphemeLen(a), graphemeLen(b))
	if maxDistance >= 0 && dist > maxDistance {
		return ExceededDistance, true
	}
	return dist, false
}

func graphemePrefixSuffixPrep(g1, g2 []string) (len1, len2, start int) {
	len1 = len(g1)
	len2 = len(g2)
	start = 0
	for start < len1 && start < len2 && g1[start] == g2[start] {
		start++
	}
	len1 -= start
	len2 -= start
	for len1 > 0 && len2 > 0 && g1[start+len1-1] == g2[start+len2-1] {
		len1--
		len2--
	}
	return len1, len2, start
}

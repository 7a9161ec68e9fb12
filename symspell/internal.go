package symspell

func addToSet(set map[string]struct{}, key string) bool {
	if _, found := set[key]; found {
		return false
	}
	set[key] = struct{}{}
	return true
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// maxInt64 returns the maximum of two int64 numbers.
func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// minInt64 returns the minimum of two int64 numbers.
func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

const maxInt64Value = int64(1<<63 - 1)

// saturatingAddInt64 adds b to a, clamping at maxInt64Value instead of
// wrapping, per the engine's counting invariant.
func saturatingAddInt64(a, b int64) int64 {
	if b > 0 && a > maxInt64Value-b {
		return maxInt64Value
	}
	return a + b
}

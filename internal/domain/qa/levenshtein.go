package qa

// Levenshtein returns the minimum number of single-rune insertions, deletions,
// or substitutions transforming a into b. Symmetric; the operands are swapped
// internally so the two DP rows track the shorter string.
func Levenshtein(a, b string) int {
	ar := []rune(a)
	br := []rune(b)
	if len(br) > len(ar) {
		ar, br = br, ar
	}
	if len(br) == 0 {
		return len(ar)
	}

	prev := make([]int, len(br)+1)
	curr := make([]int, len(br)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ar); i++ {
		curr[0] = i
		for j := 1; j <= len(br); j++ {
			cost := 1
			if ar[i-1] == br[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(br)]
}

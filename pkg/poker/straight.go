package poker

// IsStraight returns true if the ranks form a five card straight: no duplicates and a span of four.
// An ace only ever counts high, so A-2-3-4-5 is not a straight
func IsStraight(ranks []int) bool {
	if len(ranks) == 0 {
		return false
	}

	seen := make(map[int]bool, len(ranks))
	high, low := ranks[0], ranks[0]
	for _, rank := range ranks {
		if seen[rank] {
			return false
		}
		seen[rank] = true

		if rank > high {
			high = rank
		}
		if rank < low {
			low = rank
		}
	}

	return high-low == 4
}

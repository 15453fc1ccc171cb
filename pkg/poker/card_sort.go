package poker

import (
	"sort"

	"pokerrank/pkg/deck"
)

// CardRanks returns the ranks of the hand, sorted with the highest first.
// Duplicate ranks are kept since they form the pairs, trips, and quads
func CardRanks(h deck.Hand) []int {
	ranks := make([]int, len(h))
	for i, card := range h {
		ranks[i] = card.Rank
	}

	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))
	return ranks
}

func reversed(ranks []int) []int {
	r := make([]int, len(ranks))
	for i, rank := range ranks {
		r[len(ranks)-1-i] = rank
	}

	return r
}

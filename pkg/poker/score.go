package poker

import (
	"fmt"
	"strconv"
	"strings"
)

// Score is a comparable hand value: the category first, then the tie-break ranks for that category
//
//	StraightFlush, Straight:  high card
//	FourOfAKind:              quads, kicker
//	FullHouse:                trips, pair
//	Flush, HighCard:          all ranks, highest first
//	ThreeOfAKind, OnePair:    trips or pair, then all ranks
//	TwoPair:                  high pair, low pair, then all ranks
type Score struct {
	Category Category `json:"category"`
	TieBreak []int    `json:"tieBreak"`
}

// Compare returns -1, 0, or 1 if s is weaker than, equal to, or stronger than other
func (s Score) Compare(other Score) int {
	if s.Category != other.Category {
		if s.Category < other.Category {
			return -1
		}

		return 1
	}

	for i := 0; i < len(s.TieBreak) && i < len(other.TieBreak); i++ {
		if s.TieBreak[i] < other.TieBreak[i] {
			return -1
		} else if s.TieBreak[i] > other.TieBreak[i] {
			return 1
		}
	}

	switch {
	case len(s.TieBreak) < len(other.TieBreak):
		return -1
	case len(s.TieBreak) > len(other.TieBreak):
		return 1
	}

	return 0
}

// Ints returns the score flattened into a single tuple, i.e., [7 9 7] for four nines with a seven
func (s Score) Ints() []int {
	return append([]int{int(s.Category)}, s.TieBreak...)
}

func (s Score) String() string {
	values := make([]string, len(s.TieBreak))
	for i, v := range s.TieBreak {
		values[i] = strconv.Itoa(v)
	}

	return fmt.Sprintf("%s (%s)", s.Category, strings.Join(values, ", "))
}

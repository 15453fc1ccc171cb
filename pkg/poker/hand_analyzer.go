package poker

import (
	"pokerrank/pkg/deck"
)

// IsFlush returns true if all the cards share one suit
func IsFlush(h deck.Hand) bool {
	for _, card := range h[1:] {
		if card.Suit != h[0].Suit {
			return false
		}
	}

	return true
}

// Kind returns the first rank that appears exactly n times.
// The ranks are scanned in the order given, so with descending ranks the highest match wins
func Kind(n int, ranks []int) (int, bool) {
	counts := make(map[int]int, len(ranks))
	for _, rank := range ranks {
		counts[rank]++
	}

	for _, rank := range ranks {
		if counts[rank] == n {
			return rank, true
		}
	}

	return 0, false
}

// TwoPairOf returns the high and low pair of a two pair hand
func TwoPairOf(ranks []int) (int, int, bool) {
	high, ok := Kind(2, ranks)
	if !ok {
		return 0, 0, false
	}

	low, _ := Kind(2, reversed(ranks))
	if low == high {
		return 0, 0, false
	}

	return high, low, true
}

// HandAnalyzer can analyze a hand
type HandAnalyzer struct {
	hand  deck.Hand
	ranks []int
	score Score
}

// NewHandAnalyzer will return a new HandAnalyzer instance
func NewHandAnalyzer(h deck.Hand) *HandAnalyzer {
	a := &HandAnalyzer{
		hand:  h,
		ranks: CardRanks(h),
	}

	a.calculateScore()

	return a
}

// GetHand returns the analyzed hand
func (a *HandAnalyzer) GetHand() deck.Hand {
	return a.hand
}

// GetRanks returns a copy of the ranks, highest first
func (a *HandAnalyzer) GetRanks() []int {
	return append([]int(nil), a.ranks...)
}

// GetCategory returns the category the hand falls into
func (a *HandAnalyzer) GetCategory() Category {
	return a.score.Category
}

// GetScore returns the comparable score of the hand
func (a *HandAnalyzer) GetScore() Score {
	return a.score
}

// GetStraightFlush will return the high card of a straight flush, if possible
func (a *HandAnalyzer) GetStraightFlush() (int, bool) {
	if IsFlush(a.hand) {
		return a.GetStraight()
	}

	return 0, false
}

// GetFourOfAKind will return the rank of the quads, if possible
func (a *HandAnalyzer) GetFourOfAKind() (int, bool) {
	return Kind(4, a.ranks)
}

// GetFullHouse will return the trips and pair of a full house, if possible
func (a *HandAnalyzer) GetFullHouse() ([]int, bool) {
	trips, ok := Kind(3, a.ranks)
	if !ok {
		return nil, false
	}

	pair, ok := Kind(2, a.ranks)
	if !ok {
		return nil, false
	}

	return []int{trips, pair}, true
}

// GetFlush will return the ranks of a flush, if possible
func (a *HandAnalyzer) GetFlush() ([]int, bool) {
	if IsFlush(a.hand) {
		return a.GetRanks(), true
	}

	return nil, false
}

// GetStraight will return the high card of a straight, if possible
func (a *HandAnalyzer) GetStraight() (int, bool) {
	if IsStraight(a.ranks) {
		return a.ranks[0], true
	}

	return 0, false
}

// GetThreeOfAKind will return the rank of the trips, if possible
func (a *HandAnalyzer) GetThreeOfAKind() (int, bool) {
	return Kind(3, a.ranks)
}

// GetTwoPair will return the high and low pairs, if possible
func (a *HandAnalyzer) GetTwoPair() ([]int, bool) {
	if high, low, ok := TwoPairOf(a.ranks); ok {
		return []int{high, low}, true
	}

	return nil, false
}

// GetPair will return the rank of the best pair, if possible
func (a *HandAnalyzer) GetPair() (int, bool) {
	return Kind(2, a.ranks)
}

// GetHighCard will return the high card
func (a *HandAnalyzer) GetHighCard() (int, bool) {
	return a.ranks[0], true
}

// calculateScore checks the categories from strongest to weakest and keeps the first match
func (a *HandAnalyzer) calculateScore() {
	ranks := a.GetRanks()

	if high, ok := a.GetStraightFlush(); ok {
		a.setScore(StraightFlush, high)
	} else if quads, ok := a.GetFourOfAKind(); ok {
		kicker, _ := Kind(1, a.ranks)
		a.setScore(FourOfAKind, quads, kicker)
	} else if fh, ok := a.GetFullHouse(); ok {
		a.setScore(FullHouse, fh...)
	} else if flush, ok := a.GetFlush(); ok {
		a.setScore(Flush, flush...)
	} else if high, ok := a.GetStraight(); ok {
		a.setScore(Straight, high)
	} else if trips, ok := a.GetThreeOfAKind(); ok {
		a.setScore(ThreeOfAKind, append([]int{trips}, ranks...)...)
	} else if pairs, ok := a.GetTwoPair(); ok {
		a.setScore(TwoPair, append(pairs, ranks...)...)
	} else if pair, ok := a.GetPair(); ok {
		a.setScore(OnePair, append([]int{pair}, ranks...)...)
	} else {
		a.setScore(HighCard, ranks...)
	}
}

func (a *HandAnalyzer) setScore(category Category, tieBreak ...int) {
	a.score = Score{
		Category: category,
		TieBreak: tieBreak,
	}
}

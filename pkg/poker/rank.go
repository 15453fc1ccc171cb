package poker

import (
	"sort"

	"pokerrank/pkg/deck"
)

// ErrNoHands is returned when there are no hands to choose from
var ErrNoHands = &deck.InputError{Reason: "at least one hand is required"}

// Rank returns the score of the hand
func Rank(h deck.Hand) Score {
	return NewHandAnalyzer(h).GetScore()
}

// Compare returns -1, 0, or 1 if hand a is weaker than, tied with, or stronger than hand b
func Compare(a, b deck.Hand) int {
	return Rank(a).Compare(Rank(b))
}

// Best returns the strongest hand. If hands tie, the first one is returned
func Best(hands []deck.Hand) (deck.Hand, error) {
	winners, err := Winners(hands)
	if err != nil {
		return deck.Hand{}, err
	}

	return hands[winners[0]], nil
}

// Winners returns the index of every hand tied for the best score, in their original order
func Winners(hands []deck.Hand) ([]int, error) {
	if len(hands) == 0 {
		return nil, ErrNoHands
	}

	best := Rank(hands[0])
	winners := []int{0}
	for i := 1; i < len(hands); i++ {
		score := Rank(hands[i])
		switch score.Compare(best) {
		case 1:
			best = score
			winners = []int{i}
		case 0:
			winners = append(winners, i)
		}
	}

	return winners, nil
}

// Sort orders the hands from strongest to weakest, keeping tied hands in their original order
func Sort(hands []deck.Hand) {
	scores := make(map[deck.Hand]Score, len(hands))
	for _, h := range hands {
		if _, ok := scores[h]; !ok {
			scores[h] = Rank(h)
		}
	}

	sort.SliceStable(hands, func(i, j int) bool {
		return scores[hands[i]].Compare(scores[hands[j]]) > 0
	})
}

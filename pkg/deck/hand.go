package deck

import (
	"fmt"
	"strings"
)

// HandSize is the number of cards in a hand
const HandSize = 5

// Hand represents five cards. It is a value type and cannot change size
type Hand [HandSize]Card

// NewHand returns a hand built from exactly five cards
func NewHand(cards ...Card) (Hand, error) {
	var h Hand
	if len(cards) != HandSize {
		return h, &InputError{Reason: fmt.Sprintf("a hand must have %d cards, got %d", HandSize, len(cards))}
	}

	copy(h[:], cards)
	return h, nil
}

// ParseHand parses five card tokens into a hand
func ParseHand(tokens []string) (Hand, error) {
	if len(tokens) != HandSize {
		return Hand{}, &InputError{Reason: fmt.Sprintf("a hand must have %d cards, got %d", HandSize, len(tokens))}
	}

	var h Hand
	for i, token := range tokens {
		card, err := ParseCard(token)
		if err != nil {
			return Hand{}, err
		}

		h[i] = card
	}

	return h, nil
}

// HandFromString parses a space-delimited hand, i.e., "6C 7C 8C 9C TC"
func HandFromString(s string) (Hand, error) {
	return ParseHand(strings.Fields(s))
}

// MustHandFromString is like HandFromString but panics on error
// This should only be used by tests and for constant hands
func MustHandFromString(s string) Hand {
	h, err := HandFromString(s)
	if err != nil {
		panic(err)
	}

	return h
}

// Cards returns the cards as a slice
func (h Hand) Cards() []Card {
	cards := make([]Card, HandSize)
	copy(cards, h[:])
	return cards
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c == card {
			return true
		}
	}

	return false
}

// Symbols returns the hand in its human friendly form, i.e., "6♣ 7♣ 8♣ 9♣ 10♣"
func (h Hand) Symbols() string {
	c := make([]string, HandSize)
	for i, card := range h {
		c[i] = card.Symbol()
	}

	return strings.Join(c, " ")
}

func (h Hand) String() string {
	return CardsToString(h[:])
}

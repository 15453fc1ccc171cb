package deck

import (
	"fmt"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit byte

// suit constants
const (
	Clubs    Suit = 'C'
	Diamonds Suit = 'D'
	Hearts   Suit = 'H'
	Spades   Suit = 'S'
)

// String returns the single letter used in card notation
func (s Suit) String() string {
	return string(s)
}

// Card is an individual playing card
type Card struct {
	Rank int
	Suit Suit
}

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

// rankChars maps a rank character to its numeric rank by index
const rankChars = "--23456789TJQKA"

// String returns the card in its two character notation, i.e., "TD"
func (c Card) String() string {
	if c.Rank < 2 || c.Rank >= len(rankChars) {
		return "?" + c.Suit.String()
	}

	return string([]byte{rankChars[c.Rank], byte(c.Suit)})
}

// Symbol returns a human friendly representation, i.e., "10♢"
func (c Card) Symbol() string {
	var rank string
	switch c.Rank {
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace:
		rank = "A"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		suit = c.Suit.String()
	}

	return fmt.Sprintf("%s%s", rank, suit)
}

// ParseCard returns a Card from the token.
// The token must be in the format of <rank><suit> where rank is one of 23456789TJQKA
// and suit is a single uppercase letter
func ParseCard(token string) (Card, error) {
	if len(token) != 2 {
		return Card{}, &ParseError{Token: token, Reason: "expected <rank><suit>"}
	}

	rank := strings.IndexByte(rankChars, token[0])
	if rank < 2 {
		return Card{}, &ParseError{Token: token, Reason: fmt.Sprintf("unknown rank %q", token[0])}
	}

	suit := token[1]
	if suit < 'A' || suit > 'Z' {
		return Card{}, &ParseError{Token: token, Reason: fmt.Sprintf("unknown suit %q", suit)}
	}

	return Card{Rank: rank, Suit: Suit(suit)}, nil
}

// CardsFromString returns a slice of cards from a space separated list of tokens
func CardsFromString(s string) ([]Card, error) {
	tokens := strings.Fields(s)
	cards := make([]Card, len(tokens))
	for i, token := range tokens {
		card, err := ParseCard(token)
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// CardsToString converts cards into the format of "6C 7C 8C"
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = card.String()
	}

	return strings.Join(c, " ")
}

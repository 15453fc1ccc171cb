package deck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
	assert.Equal(t, 14, Ace)
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		token string
		card  Card
	}{
		{"2C", Card{Rank: 2, Suit: Clubs}},
		{"9H", Card{Rank: 9, Suit: Hearts}},
		{"TD", Card{Rank: 10, Suit: Diamonds}},
		{"JS", Card{Rank: Jack, Suit: Spades}},
		{"QC", Card{Rank: Queen, Suit: Clubs}},
		{"KH", Card{Rank: King, Suit: Hearts}},
		{"AS", Card{Rank: Ace, Suit: Spades}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			card, err := ParseCard(tt.token)
			assert.NoError(t, err)
			assert.Equal(t, tt.card, card)
			assert.Equal(t, tt.token, card.String())
		})
	}
}

func TestParseCard_errors(t *testing.T) {
	for _, token := range []string{"", "1C", "0C", "XC", "10C", "A", "ASS", "Ac", "A1", "tD"} {
		t.Run(token, func(t *testing.T) {
			_, err := ParseCard(token)
			var parseErr *ParseError
			if assert.True(t, errors.As(err, &parseErr)) {
				assert.Equal(t, token, parseErr.Token)
			}
		})
	}

	_, err := ParseCard("XC")
	assert.EqualError(t, err, `could not parse card "XC": unknown rank 'X'`)
}

func TestCard_Symbol(t *testing.T) {
	assert.Equal(t, "2♡", Card{Rank: 2, Suit: Hearts}.Symbol())
	assert.Equal(t, "J♣", Card{Rank: 11, Suit: Clubs}.Symbol())
	assert.Equal(t, "Q♢", Card{Rank: 12, Suit: Diamonds}.Symbol())
	assert.Equal(t, "K♠", Card{Rank: 13, Suit: Spades}.Symbol())
	assert.Equal(t, "A♠", Card{Rank: 14, Suit: Spades}.Symbol())
	assert.Equal(t, "10X", Card{Rank: 10, Suit: 'X'}.Symbol())
}

func TestCardsFromString(t *testing.T) {
	cards, err := CardsFromString("6C  7C\t8C")
	assert.NoError(t, err)
	assert.Equal(t, []Card{{6, Clubs}, {7, Clubs}, {8, Clubs}}, cards)
	assert.Equal(t, "6C 7C 8C", CardsToString(cards))

	cards, err = CardsFromString("")
	assert.NoError(t, err)
	assert.Empty(t, cards)

	cards, err = CardsFromString("6C ZZ")
	assert.Error(t, err)
	assert.Nil(t, cards)
}

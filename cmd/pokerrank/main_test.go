package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pokerrank/pkg/deck"
)

func Test_readLines(t *testing.T) {
	lines, err := readLines(strings.NewReader("6C 7C 8C 9C TC\n\n  9D 9H 9S 9C 7D  \n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"6C 7C 8C 9C TC", "9D 9H 9S 9C 7D"}, lines)

	lines, err = readLines(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func Test_parseHands(t *testing.T) {
	hands, err := parseHands([]string{"6C 7C 8C 9C TC", "9D 9H 9S 9C 7D"})
	require.NoError(t, err)
	assert.Equal(t, []deck.Hand{
		deck.MustHandFromString("6C 7C 8C 9C TC"),
		deck.MustHandFromString("9D 9H 9S 9C 7D"),
	}, hands)

	_, err = parseHands([]string{"6C 7C 8C 9C TC", "9D 9H 9S 9C XD"})
	assert.EqualError(t, err, `hand 2: could not parse card "XD": unknown rank 'X'`)
	var parseErr *deck.ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func Test_printScores(t *testing.T) {
	hands := []deck.Hand{
		deck.MustHandFromString("TD TC TH 7C 7D"),
		deck.MustHandFromString("6C 7C 8C 9C TC"),
	}

	var buf bytes.Buffer
	printScores(&buf, hands)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "6C 7C 8C 9C TC"))
	assert.True(t, strings.HasSuffix(lines[0], "Straight flush (10)"))
	assert.True(t, strings.HasSuffix(lines[1], "Full house (10, 7)"))

	// the caller's order is untouched
	assert.Equal(t, "TD TC TH 7C 7D", hands[0].String())
}

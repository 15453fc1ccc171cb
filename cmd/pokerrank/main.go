package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"pokerrank/internal/config"
	"pokerrank/pkg/deck"
	"pokerrank/pkg/poker"
)

var verbose = flag.Bool("v", false, "print the score of every hand, strongest first")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-v] [\"HAND\" ...]\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "each hand is five space separated cards, i.e., \"6C 7C 8C 9C TC\"")
		fmt.Fprintln(flag.CommandLine.Output(), "with no arguments, hands are read from stdin, one per line")
		flag.PrintDefaults()
	}
	flag.Parse()
	setupLogger()

	lines := flag.Args()
	if len(lines) == 0 {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			flag.Usage()
			os.Exit(2)
		}

		var err error
		lines, err = readLines(os.Stdin)
		if err != nil {
			logrus.WithError(err).Fatal("could not read hands")
		}
	}

	hands, err := parseHands(lines)
	if err != nil {
		logrus.WithError(err).Fatal("could not parse hands")
	}

	best, err := poker.Best(hands)
	if err != nil {
		logrus.WithError(err).Fatal("could not pick the best hand")
	}

	if *verbose {
		printScores(os.Stdout, hands)
	}

	fmt.Printf("%s  %s\n", best, poker.Rank(best))
}

func readLines(r io.Reader) ([]string, error) {
	lines := make([]string, 0)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}

	return lines, scanner.Err()
}

func parseHands(lines []string) ([]deck.Hand, error) {
	hands := make([]deck.Hand, len(lines))
	for i, line := range lines {
		h, err := deck.HandFromString(line)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}

		hands[i] = h
	}

	return hands, nil
}

func printScores(w io.Writer, hands []deck.Hand) {
	sorted := make([]deck.Hand, len(hands))
	copy(sorted, hands)
	poker.Sort(sorted)

	for _, h := range sorted {
		_, _ = fmt.Fprintf(w, "%s  %-22s %s\n", h, h.Symbols(), poker.Rank(h))
	}
	_, _ = fmt.Fprintln(w)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(config.Instance().Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

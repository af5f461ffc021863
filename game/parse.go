package game

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseDecks reads two blocks, each a "Player N:" header followed by one rank
// per line from top to bottom, separated by a blank line.
func ParseDecks(r io.Reader) (Deck, Deck, error) {
	var decks []Deck
	var current Deck
	inBlock := false

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			if inBlock {
				decks = append(decks, current)
				current, inBlock = nil, false
			}
		case !inBlock:
			if len(decks) == 2 {
				return nil, nil, fmt.Errorf("%w: line %d: unexpected content after second deck", ErrParse, lineNo)
			}
			want := fmt.Sprintf("Player %d:", len(decks)+1)
			if line != want {
				return nil, nil, fmt.Errorf("%w: line %d: expected header %q, got %q", ErrParse, lineNo, want, line)
			}
			inBlock = true
		default:
			card, err := strconv.Atoi(line)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: line %d: rank %q is not an integer", ErrParse, lineNo, line)
			}
			current = append(current, card)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading decks: %w", err)
	}
	if inBlock {
		decks = append(decks, current)
	}

	if len(decks) != 2 {
		return nil, nil, fmt.Errorf("%w: expected 2 decks, found %d", ErrParse, len(decks))
	}
	for i, deck := range decks {
		if len(deck) == 0 {
			return nil, nil, fmt.Errorf("%w: deck of %s is empty", ErrParse, Player(i+1))
		}
	}
	if err := Validate(decks[0], decks[1]); err != nil {
		return nil, nil, err
	}
	return decks[0], decks[1], nil
}

// Validate checks every rank is positive and appears at most once across both decks.
func Validate(a, b Deck) error {
	seen := make(map[int]Player, len(a)+len(b))
	for i, deck := range []Deck{a, b} {
		owner := Player(i + 1)
		for _, card := range deck {
			if card <= 0 {
				return fmt.Errorf("%w: %s holds non-positive rank %d", ErrInvalidDeck, owner, card)
			}
			if prev, ok := seen[card]; ok {
				return fmt.Errorf("%w: rank %d held by %s and %s", ErrInvalidDeck, card, prev, owner)
			}
			seen[card] = owner
		}
	}
	return nil
}

// FormatDecks writes both decks in the format read by ParseDecks.
func FormatDecks(w io.Writer, a, b Deck) error {
	bw := bufio.NewWriter(w)
	for i, deck := range []Deck{a, b} {
		if i > 0 {
			bw.WriteString("\n")
		}
		fmt.Fprintf(bw, "Player %d:\n", i+1)
		for _, card := range deck {
			bw.WriteString(strconv.Itoa(card))
			bw.WriteString("\n")
		}
	}
	return bw.Flush()
}

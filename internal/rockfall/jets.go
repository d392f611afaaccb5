package rockfall

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/rockpile/aoc"
)

var (
	ErrInvalidJet = errors.New("invalid jet")
	ErrNoJets     = errors.New("empty jet pattern")
)

// Jet is one push of gas, to the left or the right.
type Jet uint8

const (
	Left Jet = iota
	Right
)

func (j Jet) String() string {
	if j == Left {
		return "<"
	}
	return ">"
}

// JetPattern is the finite push sequence read from the puzzle input.
// Rocks see it repeated forever.
type JetPattern []Jet

// ParseJets parses a pattern of '<' and '>' characters. Surrounding
// whitespace is ignored; any other character is an error.
func ParseJets(input []byte) (JetPattern, error) {
	input = bytes.TrimSpace(input)
	if len(input) == 0 {
		return nil, ErrNoJets
	}
	jets := make(JetPattern, len(input))
	for i, c := range input {
		switch c {
		case '<':
			jets[i] = Left
		case '>':
			jets[i] = Right
		default:
			return nil, fmt.Errorf("%w %q at offset %d", ErrInvalidJet, c, i)
		}
	}
	return jets, nil
}

// MustParseJets is like ParseJets but panics on error.
func MustParseJets(s string) JetPattern {
	return aoc.MustGet(ParseJets([]byte(s)))
}

func (p JetPattern) String() string {
	var sb strings.Builder
	for _, j := range p {
		sb.WriteString(j.String())
	}
	return sb.String()
}

// jetCursor walks a JetPattern cyclically.
type jetCursor struct {
	pattern JetPattern
	next    int
	last    int // index of the jet most recently returned
}

func (c *jetCursor) Next() Jet {
	j := c.pattern[c.next]
	c.last = c.next
	c.next = aoc.Wrap(c.next, len(c.pattern))
	return j
}

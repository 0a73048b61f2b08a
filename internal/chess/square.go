package chess

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Square addresses one board square by zero-based file (a=0) and rank (1=0).
type Square struct {
	File int
	Rank int
}

// Sq is shorthand for Square{File: file, Rank: rank}.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Offset returns the square df files and dr ranks away. The result may be off-board.
func (s Square) Offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}

// Index returns rank*8+file, so a1 is 0 and h8 is 63.
func (s Square) Index() int {
	return s.Rank*BoardSize + s.File
}

// SquareFromIndex is the inverse of Square.Index.
func SquareFromIndex(i int) Square {
	return Square{File: i % BoardSize, Rank: i / BoardSize}
}

// String returns the coordinate name of the square, e.g. "e2".
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.File, s.Rank)
	}
	return string([]byte{byte(FileBase + s.File), byte(RankBase + s.Rank)})
}

// ParseSquare converts coordinate text such as "e2" into a Square.
// Letters are case-insensitive.
func ParseSquare(text string) (Square, error) {
	t := strings.ToLower(strings.TrimSpace(text))
	if len(t) != 2 || t[0] < 'a' || t[0] > 'h' || t[1] < '1' || t[1] > '8' {
		return Square{}, &errors.ParseError{Err: errors.ErrInvalidSquare, Input: text, Expected: "a square a1..h8"}
	}
	return Square{File: int(t[0] - FileBase), Rank: int(t[1] - RankBase)}, nil
}

// ParseCoordinateMove parses "<file><rank>-<file><rank>" move text such as
// "e2-e4". The hyphen is optional.
func ParseCoordinateMove(text string) (from, to Square, err error) {
	t := strings.ToLower(strings.TrimSpace(text))
	var a, b string
	switch {
	case len(t) == 5 && t[2] == '-':
		a, b = t[:2], t[3:]
	case len(t) == 4:
		a, b = t[:2], t[2:]
	default:
		return Square{}, Square{}, &errors.ParseError{Err: errors.ErrParseFailure, Input: text, Expected: "<file><rank>-<file><rank>"}
	}
	if from, err = ParseSquare(a); err != nil {
		return Square{}, Square{}, &errors.ParseError{Err: errors.ErrParseFailure, Input: text, Expected: "<file><rank>-<file><rank>"}
	}
	if to, err = ParseSquare(b); err != nil {
		return Square{}, Square{}, &errors.ParseError{Err: errors.ErrParseFailure, Input: text, Expected: "<file><rank>-<file><rank>"}
	}
	return from, to, nil
}

// SquareSet is a set of squares stored as a 64-bit mask indexed by Square.Index.
type SquareSet uint64

// Add returns the set with s included. Off-board squares are ignored.
func (ss SquareSet) Add(s Square) SquareSet {
	if !s.Valid() {
		return ss
	}
	return ss | 1<<uint(s.Index())
}

// Has reports whether s is in the set.
func (ss SquareSet) Has(s Square) bool {
	return s.Valid() && ss&(1<<uint(s.Index())) != 0
}

// Union returns the squares in either set.
func (ss SquareSet) Union(other SquareSet) SquareSet {
	return ss | other
}

// Len returns the number of squares in the set.
func (ss SquareSet) Len() int {
	return bits.OnesCount64(uint64(ss))
}

// Squares returns the members in ascending index order (a1, b1, ... h8).
func (ss SquareSet) Squares() []Square {
	out := make([]Square, 0, ss.Len())
	for m := uint64(ss); m != 0; m &= m - 1 {
		out = append(out, SquareFromIndex(bits.TrailingZeros64(m)))
	}
	return out
}

// String lists the squares, e.g. "[e3 e4]".
func (ss SquareSet) String() string {
	names := make([]string, 0, ss.Len())
	for _, s := range ss.Squares() {
		names = append(names, s.String())
	}
	return "[" + strings.Join(names, " ") + "]"
}

package chess

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		text    string
		want    Square
		wantErr bool
	}{
		{"a1", Sq(0, 0), false},
		{"h8", Sq(7, 7), false},
		{"e2", Sq(4, 1), false},
		{"E4", Sq(4, 3), false},
		{" d5 ", Sq(3, 4), false},
		{"i1", Square{}, true},
		{"a9", Square{}, true},
		{"a0", Square{}, true},
		{"e", Square{}, true},
		{"e22", Square{}, true},
		{"", Square{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseSquare(tt.text)
			if tt.wantErr {
				if !errors.Is(err, chesserrors.ErrInvalidSquare) {
					t.Errorf("ParseSquare(%q) error = %v, want ErrInvalidSquare", tt.text, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSquare(%q) unexpected error: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSquareStringRoundTrip(t *testing.T) {
	for i := 0; i < BoardSize*BoardSize; i++ {
		s := SquareFromIndex(i)
		if s.Index() != i {
			t.Fatalf("SquareFromIndex(%d).Index() = %d", i, s.Index())
		}
		parsed, err := ParseSquare(s.String())
		if err != nil {
			t.Fatalf("ParseSquare(%q) error: %v", s.String(), err)
		}
		if parsed != s {
			t.Errorf("ParseSquare(%q) = %v, want %v", s.String(), parsed, s)
		}
	}
}

func TestParseCoordinateMove(t *testing.T) {
	tests := []struct {
		text     string
		from, to Square
		wantErr  bool
	}{
		{"e2-e4", Sq(4, 1), Sq(4, 3), false},
		{"E7-E5", Sq(4, 6), Sq(4, 4), false},
		{"g1f3", Sq(6, 0), Sq(5, 2), false},
		{"  a7-a8 ", Sq(0, 6), Sq(0, 7), false},
		{"e2_e4", Square{}, Square{}, true},
		{"e2-e9", Square{}, Square{}, true},
		{"Nf3", Square{}, Square{}, true},
		{"", Square{}, Square{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			from, to, err := ParseCoordinateMove(tt.text)
			if tt.wantErr {
				if !errors.Is(err, chesserrors.ErrParseFailure) {
					t.Errorf("ParseCoordinateMove(%q) error = %v, want ErrParseFailure", tt.text, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCoordinateMove(%q) unexpected error: %v", tt.text, err)
			}
			if from != tt.from || to != tt.to {
				t.Errorf("ParseCoordinateMove(%q) = %v, %v, want %v, %v", tt.text, from, to, tt.from, tt.to)
			}
		})
	}
}

func TestSquareSet(t *testing.T) {
	var ss SquareSet
	ss = ss.Add(Sq(4, 3)).Add(Sq(0, 0)).Add(Sq(7, 7)).Add(Sq(4, 3)).Add(Sq(8, 0))

	if got := ss.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
	if !ss.Has(Sq(0, 0)) || !ss.Has(Sq(4, 3)) || !ss.Has(Sq(7, 7)) {
		t.Errorf("Has() missing a member of %v", ss)
	}
	if ss.Has(Sq(1, 1)) || ss.Has(Sq(-1, 0)) {
		t.Errorf("Has() reports a non-member of %v", ss)
	}

	want := []Square{Sq(0, 0), Sq(4, 3), Sq(7, 7)}
	if diff := cmp.Diff(want, ss.Squares()); diff != "" {
		t.Errorf("Squares() mismatch (-want +got):\n%s", diff)
	}
	if got := ss.String(); got != "[a1 e4 h8]" {
		t.Errorf("String() = %q, want %q", got, "[a1 e4 h8]")
	}

	other := SquareSet(0).Add(Sq(1, 1))
	if got := ss.Union(other).Len(); got != 4 {
		t.Errorf("Union().Len() = %d, want 4", got)
	}
}

func TestMoveString(t *testing.T) {
	m := Move{From: Sq(4, 1), To: Sq(4, 3), Piece: W(Pawn), Class: PawnMove}
	if got := m.String(); got != "e2-e4" {
		t.Errorf("String() = %q, want %q", got, "e2-e4")
	}
	if m.IsCapture() || m.IsCastle() {
		t.Errorf("e2-e4 reported as capture=%v castle=%v", m.IsCapture(), m.IsCastle())
	}

	castle := Move{From: Sq(4, 0), To: Sq(6, 0), Piece: W(King), Class: KingsideCastle}
	if !castle.IsCastle() {
		t.Error("IsCastle() = false for a kingside castle")
	}
}

package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestFENRoundTrip checks ParseFEN(ToFEN(p)) == p for a handful of
// reachable positions, including a duck sub-turn and a placed duck. Compared via the same posSnapshot/cmp.Diff machinery
// make_unmake_test.go uses, since a full round-trip must reproduce
// every field a fresh ParseFEN populates, not just a handful of them.
func TestFENRoundTrip(t *testing.T) {
	cases := []string{
		StartFEN,
		"r3k3/1P6/8/8/8/8/8/4K3 w - - 0 1",
		"1k6/8/8/5pp1/4pPP1/1PpP4/P1P1P3/1K6 w - - 0 1",
		"r1bqkb1r/ppp1pppp/2n2n2/3pP3/8/5N2/PPPP1PPP/RNBQKB1R w KQkq d6 0 1",
		"rnbqkbnr/pppppppp/8/3P4/8/8/PPP1PPPP/RNBQKBNR b@ KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/4P3/2@5/PPPP1PPP/RNBQKBNR b KQkq - 0 1",
	}

	for _, fen := range cases {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if err := pos.CheckInvariants(); err != nil {
			t.Fatalf("ParseFEN(%q) violates an invariant: %v", fen, err)
		}

		roundTrip, err := ParseFEN(pos.ToFEN())
		if err != nil {
			t.Fatalf("re-parsing ToFEN() of %q: %v", fen, err)
		}

		if diff := cmp.Diff(snapshot(pos), snapshot(roundTrip)); diff != "" {
			t.Errorf("%q: round-trip mismatch (-original +round-trip):\n%s", fen, diff)
		}
	}
}

// TestFENInvalidInputs ensures malformed extended FEN is rejected
// rather than silently accepted.
func TestFENInvalidInputs(t *testing.T) {
	cases := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
	}
	for _, fen := range cases {
		if _, err := ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q) did not return an error", fen)
		}
	}
}

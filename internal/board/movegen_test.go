package board

import (
	"sort"
	"testing"
)

// TestGenerateMovesStartingPosition: from the starting position,
// WHITE has 20 pseudo-legal moves (8 single pushes, 8 double
// pushes, 2+2 knight moves) — the duck doesn't exist yet, so it never
// acts as a blocker.
func TestGenerateMovesStartingPosition(t *testing.T) {
	pos := NewPosition()
	moves := pos.GeneratePseudoLegalMoves()
	if moves.Len() != 20 {
		t.Fatalf("got %d moves, want 20", moves.Len())
	}
}

// TestGenerateMovesPawnEndgame pins down the exact pawn move set, and
// per-move kinds, in a locked pawn-chain position.
func TestGenerateMovesPawnEndgame(t *testing.T) {
	pos, err := ParseFEN("1k6/8/8/5pp1/4pPP1/1PpP4/P1P1P3/1K6 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	moves := pos.GeneratePseudoLegalMoves()
	got := map[string]MoveKind{}
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if m.Piece == King {
			continue
		}
		got[m.String()] = m.Kind
	}

	want := map[string]MoveKind{
		"a2a3": QUIET,
		"a2a4": DOUBLE_PAWN,
		"b3b4": QUIET,
		"d3e4": CAPTURE,
		"d3d4": QUIET,
		"e2e3": QUIET,
		"f4g5": CAPTURE,
		"g4f5": CAPTURE,
	}

	if len(got) != len(want) {
		t.Fatalf("got %d non-king moves %v, want %d %v", len(got), sortedKeys(got), len(want), sortedKeys(want))
	}
	for s, kind := range want {
		gotKind, ok := got[s]
		if !ok {
			t.Errorf("missing expected move %s", s)
			continue
		}
		if gotKind != kind {
			t.Errorf("move %s: got kind %v, want %v", s, gotKind, kind)
		}
	}
}

// TestGenerateMovesPromotions: a pawn one step from
// promotion, with a capture available, enumerates exactly the four
// promotion pieces for both the push and the capture.
func TestGenerateMovesPromotions(t *testing.T) {
	pos, err := ParseFEN("r3k3/1P6/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	moves := pos.GeneratePseudoLegalMoves()
	var nonKing []Move
	for i := 0; i < moves.Len(); i++ {
		if m := moves.Get(i); m.Piece != King {
			nonKing = append(nonKing, m)
		}
	}
	if len(nonKing) != 8 {
		t.Fatalf("got %d non-king moves, want 8: %v", len(nonKing), nonKing)
	}

	var pushPromos, capturePromos int
	promoSet := map[PieceType]bool{}
	capturePromoSet := map[PieceType]bool{}
	for _, m := range nonKing {
		switch m.Kind {
		case PROMOTION:
			pushPromos++
			if m.To != B8 {
				t.Errorf("push promotion lands on %s, want b8", m.To)
			}
			promoSet[m.Promotion] = true
		case CAPTURE_PROMOTION:
			capturePromos++
			if m.To != A8 {
				t.Errorf("capture promotion lands on %s, want a8", m.To)
			}
			capturePromoSet[m.Promotion] = true
		default:
			t.Errorf("unexpected move kind %v for %s", m.Kind, m)
		}
	}
	if pushPromos != 4 || capturePromos != 4 {
		t.Fatalf("got %d push promotions and %d capture promotions, want 4 and 4", pushPromos, capturePromos)
	}
	for _, pt := range []PieceType{Knight, Bishop, Rook, Queen} {
		if !promoSet[pt] {
			t.Errorf("push promotions missing %v", pt)
		}
		if !capturePromoSet[pt] {
			t.Errorf("capture promotions missing %v", pt)
		}
	}
}

// TestPromotionNeverEnumeratesKingOrPawn: promotion choices are
// exactly {N, B, R, Q}.
func TestPromotionNeverEnumeratesKingOrPawn(t *testing.T) {
	pos, err := ParseFEN("4k3/1P6/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	moves := pos.GeneratePseudoLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if !m.Kind.IsPromotion() {
			continue
		}
		if m.Promotion == King || m.Promotion == Pawn {
			t.Fatalf("promotion enumerated illegal piece %v in %s", m.Promotion, m)
		}
	}
}

// TestDuckMovesCoverEveryEmptySquare exercises the duck sub-turn
// generator's one-DUCK-move-per-empty-square rule.
func TestDuckMovesCoverEveryEmptySquare(t *testing.T) {
	pos := NewPosition()
	pos.MakeMove(NewMove(DOUBLE_PAWN, Pawn, E2, E4))

	moves := pos.GeneratePseudoLegalMoves()
	wantEmpty := 64 - pos.Occupied.PopCount()
	if moves.Len() != wantEmpty {
		t.Fatalf("got %d duck moves, want %d (one per empty square)", moves.Len(), wantEmpty)
	}
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if m.Kind != DUCK || m.From != NoSquare {
			t.Fatalf("unexpected first-placement move %s", m)
		}
		if pos.Occupied.IsSet(m.To) {
			t.Fatalf("duck move %s targets an occupied square", m)
		}
	}
}

func sortedKeys(m map[string]MoveKind) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

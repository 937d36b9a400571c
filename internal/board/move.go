package board

import "fmt"

// MoveKind classifies a Move. Encoded as bit flags so "is this a
// capture" / "is this a promotion" reduce to a mask test: the capture
// bit combines with the promotion and en-passant bits rather than each
// kind being an independent enumerant.
type MoveKind uint8

const (
	flagCapture   MoveKind = 1 << 0
	flagPromotion MoveKind = 1 << 1
	flagEnPassant MoveKind = 1 << 2
	flagCastleK   MoveKind = 1 << 3
	flagCastleQ   MoveKind = 1 << 4
	flagDuck      MoveKind = 1 << 5
	flagManual    MoveKind = 1 << 6
	flagDouble    MoveKind = 1 << 7
)

const (
	QUIET             MoveKind = 0
	DOUBLE_PAWN       MoveKind = flagDouble
	CAPTURE           MoveKind = flagCapture
	PROMOTION         MoveKind = flagPromotion
	EN_PASSANT        MoveKind = flagCapture | flagEnPassant
	CAPTURE_PROMOTION MoveKind = flagCapture | flagPromotion
	CASTLE_KINGSIDE   MoveKind = flagCastleK
	CASTLE_QUEENSIDE  MoveKind = flagCastleQ
	DUCK              MoveKind = flagDuck
	MANUAL            MoveKind = flagManual
)

// IsCapture reports whether k removes an enemy piece from the board.
func (k MoveKind) IsCapture() bool {
	return k&flagCapture != 0
}

// IsPromotion reports whether k places a promoted piece.
func (k MoveKind) IsPromotion() bool {
	return k&flagPromotion != 0
}

// IsCastle reports whether k is one of the two castling kinds.
func (k MoveKind) IsCastle() bool {
	return k&(flagCastleK|flagCastleQ) != 0
}

// String names the move kind.
func (k MoveKind) String() string {
	switch k {
	case QUIET:
		return "QUIET"
	case DOUBLE_PAWN:
		return "DOUBLE_PAWN"
	case CAPTURE:
		return "CAPTURE"
	case PROMOTION:
		return "PROMOTION"
	case EN_PASSANT:
		return "EN_PASSANT"
	case CAPTURE_PROMOTION:
		return "CAPTURE_PROMOTION"
	case CASTLE_KINGSIDE:
		return "CASTLE_KINGSIDE"
	case CASTLE_QUEENSIDE:
		return "CASTLE_QUEENSIDE"
	case DUCK:
		return "DUCK"
	case MANUAL:
		return "MANUAL"
	default:
		return "UNKNOWN"
	}
}

// Move is a flat, no-allocation move value: origin, target, moved
// piece type, move kind, and optional promotion type. From is NoSquare
// for the very first duck placement (no prior duck square to name);
// Promotion is NoPieceType except on the two promotion kinds.
type Move struct {
	Kind      MoveKind
	Piece     PieceType
	From      Square
	To        Square
	Promotion PieceType
}

// NoMove is the invalid "no move" marker. It is not the Go zero value
// Move{}, which reads as a quiet pawn move from a1 to a1.
var NoMove = Move{Kind: QUIET, Piece: NoPieceType, From: NoSquare, To: NoSquare, Promotion: NoPieceType}

// NewMove builds a non-promotion, non-duck, non-castle move.
func NewMove(kind MoveKind, piece PieceType, from, to Square) Move {
	return Move{Kind: kind, Piece: piece, From: from, To: to, Promotion: NoPieceType}
}

// NewPromotion builds a promotion or capture-promotion move.
func NewPromotion(kind MoveKind, from, to Square, promo PieceType) Move {
	return Move{Kind: kind, Piece: Pawn, From: from, To: to, Promotion: promo}
}

// NewDuckMove builds a duck placement/relocation move. from is NoSquare
// when the duck has not yet been placed.
func NewDuckMove(from, to Square) Move {
	return Move{Kind: DUCK, Piece: Duck, From: from, To: to, Promotion: NoPieceType}
}

// NewCastle builds a castling move; from/to name the king's squares.
func NewCastle(kind MoveKind, from, to Square) Move {
	return Move{Kind: kind, Piece: King, From: from, To: to, Promotion: NoPieceType}
}

// String renders the move in the same textual forms ParseMove reads:
// "e2e4", "e2e4=Q", "O-O", "O-O-O", "@a3" (placement), "@a3a6"
// (relocation).
func (m Move) String() string {
	switch m.Kind {
	case CASTLE_KINGSIDE:
		return "O-O"
	case CASTLE_QUEENSIDE:
		return "O-O-O"
	case DUCK:
		if m.From == NoSquare {
			return "@" + m.To.String()
		}
		return "@" + m.From.String() + m.To.String()
	}

	s := m.From.String() + m.To.String()
	if m.Kind.IsPromotion() {
		promoChars := map[PieceType]byte{Knight: 'N', Bishop: 'B', Rook: 'R', Queen: 'Q'}
		s += "=" + string(promoChars[m.Promotion])
	}
	return s
}

// ParseMove parses a textual move request: "<sq><sq>", "<sq><sq>=<P>",
// "O-O", "O-O-O", "@<sq>", "@<sq><sq>". The concrete MoveKind
// (QUIET/CAPTURE/EN_PASSANT/...) is only known once resolved against
// the legal move list for the current Position; castling requests are
// unambiguous from syntax alone, but a plain "<sq><sq>" stays MANUAL
// until Position.ResolveManualMove looks it up against the generated
// moves.
func ParseMove(s string) (Move, error) {
	switch s {
	case "O-O":
		return Move{Kind: CASTLE_KINGSIDE, Piece: King, From: NoSquare, To: NoSquare, Promotion: NoPieceType}, nil
	case "O-O-O":
		return Move{Kind: CASTLE_QUEENSIDE, Piece: King, From: NoSquare, To: NoSquare, Promotion: NoPieceType}, nil
	}

	if len(s) > 0 && s[0] == '@' {
		rest := s[1:]
		switch len(rest) {
		case 2:
			to, err := ParseSquare(rest)
			if err != nil {
				return NoMove, err
			}
			return Move{Kind: DUCK, Piece: Duck, From: NoSquare, To: to, Promotion: NoPieceType}, nil
		case 4:
			from, err := ParseSquare(rest[0:2])
			if err != nil {
				return NoMove, err
			}
			to, err := ParseSquare(rest[2:4])
			if err != nil {
				return NoMove, err
			}
			return Move{Kind: DUCK, Piece: Duck, From: from, To: to, Promotion: NoPieceType}, nil
		default:
			return NoMove, fmt.Errorf("invalid duck move: %s", s)
		}
	}

	if len(s) != 4 && len(s) != 6 {
		return NoMove, fmt.Errorf("invalid move string: %s", s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}

	promo := NoPieceType
	if len(s) == 6 {
		if s[4] != '=' {
			return NoMove, fmt.Errorf("invalid move string: %s", s)
		}
		switch s[5] {
		case 'N':
			promo = Knight
		case 'B':
			promo = Bishop
		case 'R':
			promo = Rook
		case 'Q':
			promo = Queen
		default:
			return NoMove, fmt.Errorf("invalid promotion piece: %c", s[5])
		}
	}

	return Move{Kind: MANUAL, Piece: NoPieceType, From: from, To: to, Promotion: promo}, nil
}

// MoveList is a fixed-size list of moves to avoid allocations.
type MoveList struct {
	moves [256]Move
	count int
}

// NewMoveList creates an empty move list.
func NewMoveList() *MoveList {
	return &MoveList{}
}

// Add adds a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Set sets the move at index i.
func (ml *MoveList) Set(i int, m Move) {
	ml.moves[i] = m
}

// Swap swaps two moves in the list.
func (ml *MoveList) Swap(i, j int) {
	ml.moves[i], ml.moves[j] = ml.moves[j], ml.moves[i]
}

// Clear clears the list.
func (ml *MoveList) Clear() {
	ml.count = 0
}

// Contains returns true if the list contains the move.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}

// Slice returns the moves as a slice.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}

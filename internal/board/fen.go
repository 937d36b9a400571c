package board

import (
	"strconv"
	"strings"
)

// StartFEN is the extended FEN for the Duck Chess starting position:
// standard chess layout, no duck placed yet, full castle rights.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses an extended FEN string: six space-separated fields,
// pieces/turn/castling/ep/halfmove/fullmove, with '@' marking the duck
// in the piece field and a 'w@'/'b@' turn suffix marking a duck
// sub-turn.
func ParseFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return nil, &ParseError{Input: fen, Reason: "need 6 fields"}
	}

	pos := &Position{}
	for sq := A1; sq <= H8; sq++ {
		pos.Mailbox[sq] = NoPiece
	}

	if err := parsePiecePlacement(pos, parts[0], fen); err != nil {
		return nil, err
	}

	turn, err := parseTurn(parts[1], fen)
	if err != nil {
		return nil, err
	}
	pos.Turn = turn

	if err := parseCastleRights(pos, parts[2], fen); err != nil {
		return nil, err
	}

	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil || (sq.Rank() != 2 && sq.Rank() != 5) {
			return nil, &ParseError{Input: fen, Reason: "en passant square not on a legal rank"}
		}
		pos.EnPassant = SquareBB(sq)
	}

	hmc, err := strconv.Atoi(parts[4])
	if err != nil || hmc < 0 {
		return nil, &ParseError{Input: fen, Reason: "invalid half-move clock"}
	}
	pos.HalfmoveClock = uint32(hmc)

	fmc, err := strconv.Atoi(parts[5])
	if err != nil || fmc < 0 {
		return nil, &ParseError{Input: fen, Reason: "invalid full-move number"}
	}
	pos.FullmoveCount = uint32(fmc)

	pos.recomputeOccupied()
	pos.Zbr = pos.ComputeHash()
	pos.History = []UndoRecord{{
		GameState:     Ongoing,
		Turn:          pos.Turn,
		Duck:          pos.Duck,
		CastleRights:  pos.CastleRights,
		EnPassant:     pos.EnPassant,
		HalfmoveClock: pos.HalfmoveClock,
		FullmoveCount: pos.FullmoveCount,
		CapturedPiece: NoPiece,
		Move:          NoMove,
		Zbr:           pos.Zbr,
	}}
	pos.UpdateGameState()

	return pos, nil
}

func parsePiecePlacement(pos *Position, placement, fen string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return &ParseError{Input: fen, Reason: "need 8 ranks"}
	}

	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0

		for _, c := range rankStr {
			if file > 7 {
				return &ParseError{Input: fen, Reason: "too many squares in a rank"}
			}

			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}

			piece := PieceFromChar(byte(c))
			if piece == NoPiece {
				return &ParseError{Input: fen, Reason: "illegal piece letter"}
			}
			pos.setPiece(piece, NewSquare(file, rank))
			file++
		}

		if file != 8 {
			return &ParseError{Input: fen, Reason: "rank does not sum to 8 squares"}
		}
	}

	return nil
}

func parseTurn(s, fen string) (Side, error) {
	switch s {
	case "w":
		return WHITE, nil
	case "w@":
		return WHITE_DUCK, nil
	case "b":
		return BLACK, nil
	case "b@":
		return BLACK_DUCK, nil
	default:
		return WHITE, &ParseError{Input: fen, Reason: "invalid turn field"}
	}
}

func parseCastleRights(pos *Position, castling, fen string) error {
	if castling == "-" {
		pos.CastleRights = Empty
		return nil
	}
	for _, c := range castling {
		switch c {
		case 'K':
			pos.CastleRights |= SquareBB(H1)
		case 'Q':
			pos.CastleRights |= SquareBB(A1)
		case 'k':
			pos.CastleRights |= SquareBB(H8)
		case 'q':
			pos.CastleRights |= SquareBB(A8)
		default:
			return &ParseError{Input: fen, Reason: "invalid castling character"}
		}
	}
	return nil
}

// ToFEN serialises the position back to extended FEN. ParseFEN(ToFEN())
// reproduces the position on any well-formed input.
func (p *Position) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := NewSquare(file, rank)
			piece := p.Mailbox[sq]
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	switch p.Turn {
	case WHITE:
		sb.WriteString("w")
	case WHITE_DUCK:
		sb.WriteString("w@")
	case BLACK:
		sb.WriteString("b")
	case BLACK_DUCK:
		sb.WriteString("b@")
	}

	sb.WriteByte(' ')
	sb.WriteString(p.CastleRightsString())

	sb.WriteByte(' ')
	sb.WriteString(p.EnPassantSquare().String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(int(p.HalfmoveClock)))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(int(p.FullmoveCount)))

	return sb.String()
}

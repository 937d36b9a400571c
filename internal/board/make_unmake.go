package board

// skipKind marks the sentinel Move recorded by SkipMove: it matches
// none of the ten public move kinds, so UnmakeMove's piece-level
// dispatch naturally falls through to a no-op for it.
const skipKind MoveKind = 0xFF

var skipMoveSentinel = Move{Kind: skipKind, Piece: NoPieceType, From: NoSquare, To: NoSquare, Promotion: NoPieceType}

// MakeMove applies m to the position: snapshots an UndoRecord,
// dispatches the piece-level mutation by move kind, updates castle
// rights/clocks/turn, maintains the Zobrist key incrementally, and
// re-evaluates game state. It is the only mutator besides SkipMove.
func (p *Position) MakeMove(m Move) {
	oldTurn := p.Turn
	oldCastle := p.CastleRights
	oldEP := p.EnPassant
	color := oldTurn.Color()

	undo := UndoRecord{
		GameState:     p.GameState,
		Turn:          oldTurn,
		Duck:          p.Duck,
		CastleRights:  oldCastle,
		EnPassant:     oldEP,
		HalfmoveClock: p.HalfmoveClock,
		FullmoveCount: p.FullmoveCount,
		CapturedPiece: NoPiece,
		Move:          m,
		Zbr:           p.Zbr,
	}

	p.Zbr ^= zobristTurn[oldTurn]
	p.Zbr ^= zobristCastling[castleRightsIndex(oldCastle)]
	p.Zbr ^= ZobristEnPassant(oldEP)

	clearEP := true

	switch m.Kind {
	case QUIET, DOUBLE_PAWN:
		p.applyQuietMove(color, m)
		if m.Kind == DOUBLE_PAWN {
			pushDir := 8
			if color == Black {
				pushDir = -8
			}
			epSq := Square(int(m.To) - pushDir)
			p.EnPassant = SquareBB(epSq)
			clearEP = false
		}

	case CAPTURE:
		them := color.Other()
		captured := p.Mailbox[m.To]
		undo.CapturedPiece = captured
		p.Pieces[them][captured.Type()] &^= SquareBB(m.To)
		if them == White {
			p.White &^= SquareBB(m.To)
		} else {
			p.Black &^= SquareBB(m.To)
		}
		p.Mailbox[m.To] = NoPiece
		p.Zbr ^= zobristPiece[them][captured.Type()][m.To]
		p.applyQuietMove(color, m)

	case EN_PASSANT:
		them := color.Other()
		pushDir := 8
		if color == Black {
			pushDir = -8
		}
		capturedSq := Square(int(m.To) - pushDir)
		undo.CapturedPiece = p.removePiece(capturedSq)
		p.Zbr ^= zobristPiece[them][Pawn][capturedSq]
		p.applyQuietMove(color, m)

	case PROMOTION:
		p.applyPromotion(color, m)

	case CAPTURE_PROMOTION:
		them := color.Other()
		captured := p.Mailbox[m.To]
		undo.CapturedPiece = captured
		p.Pieces[them][captured.Type()] &^= SquareBB(m.To)
		if them == White {
			p.White &^= SquareBB(m.To)
		} else {
			p.Black &^= SquareBB(m.To)
		}
		p.Zbr ^= zobristPiece[them][captured.Type()][m.To]
		p.applyPromotion(color, m)

	case CASTLE_KINGSIDE, CASTLE_QUEENSIDE:
		p.applyCastle(color, m)

	case DUCK:
		oldDuck := p.Duck
		if oldDuck != Empty {
			p.Zbr ^= zobristDuck[oldDuck.LSB()]
			p.Mailbox[oldDuck.LSB()] = NoPiece
		}
		p.Duck = SquareBB(m.To)
		p.Mailbox[m.To] = DuckPiece
		p.Zbr ^= zobristDuck[m.To]
		clearEP = false
	}

	if clearEP {
		p.EnPassant = Empty
	}

	// Castle-rights update: a king/rook move off a home square, or a
	// capture landing on one, clears that bit. Duck moves
	// can only land on empty squares, and a castle-rights bit is only
	// set while the relevant rook still sits on that square, so this is
	// a no-op for duck placement/relocation.
	if m.From != NoSquare {
		p.CastleRights &^= SquareBB(m.From)
	}
	if m.To != NoSquare {
		p.CastleRights &^= SquareBB(m.To)
	}
	if m.Piece == King {
		if color == White {
			p.CastleRights &^= SquareBB(A1) | SquareBB(H1)
		} else {
			p.CastleRights &^= SquareBB(A8) | SquareBB(H8)
		}
	}

	if m.Piece == Pawn || m.Kind.IsCapture() {
		p.HalfmoveClock = 0
	} else {
		p.HalfmoveClock++
	}

	if oldTurn == BLACK_DUCK {
		p.FullmoveCount++
	}

	p.recomputeOccupied()

	newTurn := oldTurn.NextTurn()
	p.Turn = newTurn
	p.Zbr ^= zobristTurn[newTurn]
	p.Zbr ^= zobristCastling[castleRightsIndex(p.CastleRights)]
	p.Zbr ^= ZobristEnPassant(p.EnPassant)

	p.History = append(p.History, undo)
	p.UpdateGameState()
}

// applyQuietMove relocates a non-promotion piece and XORs its
// from/to Zobrist keys.
func (p *Position) applyQuietMove(color Color, m Move) {
	moveBB := SquareBB(m.From) | SquareBB(m.To)
	p.Pieces[color][m.Piece] ^= moveBB
	if color == White {
		p.White ^= moveBB
	} else {
		p.Black ^= moveBB
	}
	p.Mailbox[m.From] = NoPiece
	p.Mailbox[m.To] = NewPiece(m.Piece, color)
	p.Zbr ^= zobristPiece[color][m.Piece][m.From]
	p.Zbr ^= zobristPiece[color][m.Piece][m.To]
}

// applyPromotion removes the pawn at From and places the promoted
// piece at To. The hash update is pawn-at-from XOR promo-at-to: the
// pawn never lands on To, so no substitution pair is needed there.
func (p *Position) applyPromotion(color Color, m Move) {
	moveBB := SquareBB(m.From) | SquareBB(m.To)
	p.Pieces[color][Pawn] &^= SquareBB(m.From)
	p.Pieces[color][m.Promotion] |= SquareBB(m.To)
	if color == White {
		p.White ^= moveBB
	} else {
		p.Black ^= moveBB
	}
	p.Mailbox[m.From] = NoPiece
	p.Mailbox[m.To] = NewPiece(m.Promotion, color)
	p.Zbr ^= zobristPiece[color][Pawn][m.From]
	p.Zbr ^= zobristPiece[color][m.Promotion][m.To]
}

// applyCastle moves the king and its rook to their castled squares.
func (p *Position) applyCastle(color Color, m Move) {
	p.applyQuietMove(color, m)

	var rookFrom, rookTo Square
	rank := m.From.Rank()
	if m.Kind == CASTLE_KINGSIDE {
		rookFrom = NewSquare(7, rank)
		rookTo = NewSquare(5, rank)
	} else {
		rookFrom = NewSquare(0, rank)
		rookTo = NewSquare(3, rank)
	}

	rookMoveBB := SquareBB(rookFrom) | SquareBB(rookTo)
	p.Pieces[color][Rook] ^= rookMoveBB
	if color == White {
		p.White ^= rookMoveBB
	} else {
		p.Black ^= rookMoveBB
	}
	p.Mailbox[rookFrom] = NoPiece
	p.Mailbox[rookTo] = NewPiece(Rook, color)
	p.Zbr ^= zobristPiece[color][Rook][rookFrom]
	p.Zbr ^= zobristPiece[color][Rook][rookTo]
}

// UnmakeMove reverses the most recently applied MakeMove or SkipMove.
// A no-op if only the initial history snapshot remains.
func (p *Position) UnmakeMove() {
	if len(p.History) <= 1 {
		return
	}

	last := len(p.History) - 1
	undo := p.History[last]
	p.History = p.History[:last]
	m := undo.Move

	p.GameState = undo.GameState
	p.Turn = undo.Turn
	p.CastleRights = undo.CastleRights
	p.EnPassant = undo.EnPassant
	p.HalfmoveClock = undo.HalfmoveClock
	p.FullmoveCount = undo.FullmoveCount
	p.Zbr = undo.Zbr

	switch m.Kind {
	case QUIET, DOUBLE_PAWN:
		p.movePiece(m.To, m.From)

	case CAPTURE:
		p.movePiece(m.To, m.From)
		if undo.CapturedPiece != NoPiece {
			p.setPiece(undo.CapturedPiece, m.To)
		}

	case EN_PASSANT:
		color := p.Mailbox[m.To].Color()
		p.movePiece(m.To, m.From)
		pushDir := 8
		if color == Black {
			pushDir = -8
		}
		capturedSq := Square(int(m.To) - pushDir)
		p.setPiece(undo.CapturedPiece, capturedSq)

	case PROMOTION:
		p.unapplyPromotion(m)

	case CAPTURE_PROMOTION:
		p.unapplyPromotion(m)
		if undo.CapturedPiece != NoPiece {
			p.setPiece(undo.CapturedPiece, m.To)
		}

	case CASTLE_KINGSIDE, CASTLE_QUEENSIDE:
		p.movePiece(m.To, m.From)

		var rookFrom, rookTo Square
		rank := m.From.Rank()
		if m.Kind == CASTLE_KINGSIDE {
			rookFrom = NewSquare(7, rank)
			rookTo = NewSquare(5, rank)
		} else {
			rookFrom = NewSquare(0, rank)
			rookTo = NewSquare(3, rank)
		}
		p.movePiece(rookTo, rookFrom)

	case DUCK:
		if p.Duck != Empty {
			p.Mailbox[p.Duck.LSB()] = NoPiece
		}
		p.Duck = undo.Duck
		if p.Duck != Empty {
			p.Mailbox[p.Duck.LSB()] = DuckPiece
		}

	case skipKind:
		// Turn-only: fields already restored above.
	}

	p.recomputeOccupied()
}

// unapplyPromotion removes the promoted piece at To and restores the
// pawn at From, reading the promoted piece's color off the mailbox
// before clearing it.
func (p *Position) unapplyPromotion(m Move) {
	color := p.Mailbox[m.To].Color()
	moveBB := SquareBB(m.From) | SquareBB(m.To)
	p.Pieces[color][m.Promotion] &^= SquareBB(m.To)
	p.Pieces[color][Pawn] |= SquareBB(m.From)
	if color == White {
		p.White ^= moveBB
	} else {
		p.Black ^= moveBB
	}
	p.Mailbox[m.To] = NoPiece
	p.Mailbox[m.From] = NewPiece(Pawn, color)
}

// SkipMove advances Turn by one step without moving any pieces, used
// by search to suppress the duck-placement sub-turn during recursion.
// Reversed by the same UnmakeMove as any other move.
func (p *Position) SkipMove() {
	undo := UndoRecord{
		GameState:     p.GameState,
		Turn:          p.Turn,
		Duck:          p.Duck,
		CastleRights:  p.CastleRights,
		EnPassant:     p.EnPassant,
		HalfmoveClock: p.HalfmoveClock,
		FullmoveCount: p.FullmoveCount,
		CapturedPiece: NoPiece,
		Move:          skipMoveSentinel,
		Zbr:           p.Zbr,
	}

	p.Zbr ^= zobristTurn[p.Turn]
	p.Turn = p.Turn.NextTurn()
	p.Zbr ^= zobristTurn[p.Turn]

	p.History = append(p.History, undo)
}

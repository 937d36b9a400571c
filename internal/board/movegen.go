package board

// GeneratePseudoLegalMoves generates the move list for the side to
// move: one DUCK move per empty square on a duck sub-turn, or the full
// piece-move set (pawns, knights, sliders, king, castling) with the
// duck counted as a blocker on a piece sub-turn. Duck Chess has no
// check or pin rules (the king is simply captured), so this
// pseudo-legal generator already is the legal generator.
func (p *Position) GeneratePseudoLegalMoves() *MoveList {
	ml := NewMoveList()

	if p.Turn.IsDuckTurn() {
		p.generateDuckMoves(ml)
		return ml
	}

	color := p.Turn.Color()
	var allies, enemies Bitboard
	if color == White {
		allies, enemies = p.White, p.Black
	} else {
		allies, enemies = p.Black, p.White
	}
	blockers := allies | p.Duck
	occupied := p.Occupied

	p.generatePawnMoves(ml, color, enemies, occupied)

	knights := p.Pieces[color][Knight]
	for knights != 0 {
		from := knights.PopLSB()
		targets := KnightAttacks(from) &^ blockers
		addTargets(ml, Knight, from, targets, enemies)
	}

	bishops := p.Pieces[color][Bishop]
	for bishops != 0 {
		from := bishops.PopLSB()
		targets := BishopAttacks(from, occupied) &^ blockers
		addTargets(ml, Bishop, from, targets, enemies)
	}

	rooks := p.Pieces[color][Rook]
	for rooks != 0 {
		from := rooks.PopLSB()
		targets := RookAttacks(from, occupied) &^ blockers
		addTargets(ml, Rook, from, targets, enemies)
	}

	queens := p.Pieces[color][Queen]
	for queens != 0 {
		from := queens.PopLSB()
		targets := QueenAttacks(from, occupied) &^ blockers
		addTargets(ml, Queen, from, targets, enemies)
	}

	if kingBB := p.Pieces[color][King]; kingBB != Empty {
		from := kingBB.LSB()
		targets := KingAttacks(from) &^ blockers
		addTargets(ml, King, from, targets, enemies)
	}

	p.generateCastlingMoves(ml, color)

	return ml
}

// GenerateLegalMoves is GeneratePseudoLegalMoves under another name:
// a separate entry point for callers that want the full legal move set
// (the search root, manual-move resolution), which coincides with the
// pseudo-legal set in a game without check.
func (p *Position) GenerateLegalMoves() *MoveList {
	return p.GeneratePseudoLegalMoves()
}

// addTargets emits a QUIET or CAPTURE move to every set bit of targets,
// classified by whether the destination holds an enemy piece.
func addTargets(ml *MoveList, pt PieceType, from Square, targets, enemies Bitboard) {
	for targets != 0 {
		to := targets.PopLSB()
		kind := QUIET
		if enemies.IsSet(to) {
			kind = CAPTURE
		}
		ml.Add(NewMove(kind, pt, from, to))
	}
}

// generateDuckMoves yields one DUCK move per empty square. From is
// NoSquare until the duck has been placed for the first time, after
// which it names the duck's current square.
func (p *Position) generateDuckMoves(ml *MoveList) {
	from := NoSquare
	if p.Duck != Empty {
		from = p.Duck.LSB()
	}
	empties := ^p.Occupied
	for empties != 0 {
		to := empties.PopLSB()
		ml.Add(NewDuckMove(from, to))
	}
}

// generatePawnMoves emits pushes, double pushes, diagonal captures,
// en-passant captures, and promotions for the given color's pawns.
func (p *Position) generatePawnMoves(ml *MoveList, color Color, enemies, occupied Bitboard) {
	pawns := p.Pieces[color][Pawn]
	empty := ^occupied

	var push1, push2, attackL, attackR Bitboard
	var promotionRank Bitboard
	var pushDir int

	if color == White {
		push1 = pawns.North() & empty
		push2 = (push1 & Rank3).North() & empty
		attackL = pawns.NorthWest() & enemies
		attackR = pawns.NorthEast() & enemies
		promotionRank = Rank8
		pushDir = 8
	} else {
		push1 = pawns.South() & empty
		push2 = (push1 & Rank6).South() & empty
		attackL = pawns.SouthWest() & enemies
		attackR = pawns.SouthEast() & enemies
		promotionRank = Rank1
		pushDir = -8
	}

	nonPromo := push1 & ^promotionRank
	for nonPromo != 0 {
		to := nonPromo.PopLSB()
		from := Square(int(to) - pushDir)
		ml.Add(NewMove(QUIET, Pawn, from, to))
	}

	for push2 != 0 {
		to := push2.PopLSB()
		from := Square(int(to) - 2*pushDir)
		ml.Add(NewMove(DOUBLE_PAWN, Pawn, from, to))
	}

	nonPromoL := attackL & ^promotionRank
	for nonPromoL != 0 {
		to := nonPromoL.PopLSB()
		from := Square(int(to) - pushDir + 1)
		ml.Add(NewMove(CAPTURE, Pawn, from, to))
	}

	nonPromoR := attackR & ^promotionRank
	for nonPromoR != 0 {
		to := nonPromoR.PopLSB()
		from := Square(int(to) - pushDir - 1)
		ml.Add(NewMove(CAPTURE, Pawn, from, to))
	}

	promoPush := push1 & promotionRank
	for promoPush != 0 {
		to := promoPush.PopLSB()
		from := Square(int(to) - pushDir)
		addPromotions(ml, from, to, false)
	}

	promoL := attackL & promotionRank
	for promoL != 0 {
		to := promoL.PopLSB()
		from := Square(int(to) - pushDir + 1)
		addPromotions(ml, from, to, true)
	}

	promoR := attackR & promotionRank
	for promoR != 0 {
		to := promoR.PopLSB()
		from := Square(int(to) - pushDir - 1)
		addPromotions(ml, from, to, true)
	}

	if p.EnPassant != Empty {
		epSq := p.EnPassant.LSB()
		epBB := p.EnPassant
		var epAttackers Bitboard
		if color == White {
			epAttackers = (epBB.SouthWest() | epBB.SouthEast()) & pawns
		} else {
			epAttackers = (epBB.NorthWest() | epBB.NorthEast()) & pawns
		}
		for epAttackers != 0 {
			from := epAttackers.PopLSB()
			ml.Add(NewMove(EN_PASSANT, Pawn, from, epSq))
		}
	}
}

// addPromotions emits the four promotion variants in the fixed order
// {N, B, R, Q}.
func addPromotions(ml *MoveList, from, to Square, capture bool) {
	kind := PROMOTION
	if capture {
		kind = CAPTURE_PROMOTION
	}
	ml.Add(NewPromotion(kind, from, to, Knight))
	ml.Add(NewPromotion(kind, from, to, Bishop))
	ml.Add(NewPromotion(kind, from, to, Rook))
	ml.Add(NewPromotion(kind, from, to, Queen))
}

// generateCastlingMoves consults CastleRights directly; there is no
// check-legality filter in Duck Chess, so only the squares between
// king and rook being clear (duck included as a blocker) gates each
// castle.
func (p *Position) generateCastlingMoves(ml *MoveList, color Color) {
	if color == White {
		if p.CastleRights.IsSet(H1) && p.Occupied&(SquareBB(F1)|SquareBB(G1)) == Empty {
			ml.Add(NewCastle(CASTLE_KINGSIDE, E1, G1))
		}
		if p.CastleRights.IsSet(A1) && p.Occupied&(SquareBB(B1)|SquareBB(C1)|SquareBB(D1)) == Empty {
			ml.Add(NewCastle(CASTLE_QUEENSIDE, E1, C1))
		}
		return
	}
	if p.CastleRights.IsSet(H8) && p.Occupied&(SquareBB(F8)|SquareBB(G8)) == Empty {
		ml.Add(NewCastle(CASTLE_KINGSIDE, E8, G8))
	}
	if p.CastleRights.IsSet(A8) && p.Occupied&(SquareBB(B8)|SquareBB(C8)|SquareBB(D8)) == Empty {
		ml.Add(NewCastle(CASTLE_QUEENSIDE, E8, C8))
	}
}

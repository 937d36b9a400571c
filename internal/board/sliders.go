package board

// Sliding attack generation via Hyperbola Quintessence: a branchless
// formula using subtraction and bit-reversal along a masked ray,
// computed fresh per call against the current occupancy (which always
// includes the duck as a blocker) rather than looked up from a
// magic-bitboard table.
var (
	fileMaskSq     [64]Bitboard
	rankMaskSq     [64]Bitboard
	diagMaskSq     [64]Bitboard // parallel to a1-h8
	antiDiagMaskSq [64]Bitboard // parallel to a8-h1
)

func init() {
	for sq := A1; sq <= H8; sq++ {
		f, r := sq.File(), sq.Rank()
		fileMaskSq[sq] = FileMask[f]
		rankMaskSq[sq] = RankMask[r]

		var diag, anti Bitboard
		for s := A1; s <= H8; s++ {
			sf, sr := s.File(), s.Rank()
			if sr-sf == r-f {
				diag |= SquareBB(s)
			}
			if sr+sf == r+f {
				anti |= SquareBB(s)
			}
		}
		diagMaskSq[sq] = diag
		antiDiagMaskSq[sq] = anti
	}
}

// slider computes attacks along one ray using the Hyperbola Quintessence
// formula: fwd = occ & mask; rev = bitreverse(fwd); subtract twice the
// piece bit from each; XOR the reversed results back in; mask the ray.
func slider(occ, mask, piece Bitboard) Bitboard {
	fwd := uint64(occ) & uint64(mask)
	rev := bitreverse64(fwd)
	p := uint64(piece)

	fwd -= 2 * p
	rev -= 2 * bitreverse64(p)

	return Bitboard((fwd ^ bitreverse64(rev)) & uint64(mask))
}

// getRookAttacks returns the rook (file | rank) slider attacks for sq
// given the full board occupancy.
func getRookAttacks(sq Square, occ Bitboard) Bitboard {
	piece := SquareBB(sq)
	return slider(occ, fileMaskSq[sq], piece) | slider(occ, rankMaskSq[sq], piece)
}

// getBishopAttacks returns the bishop (diagonal | antidiagonal) slider
// attacks for sq given the full board occupancy.
func getBishopAttacks(sq Square, occ Bitboard) Bitboard {
	piece := SquareBB(sq)
	return slider(occ, diagMaskSq[sq], piece) | slider(occ, antiDiagMaskSq[sq], piece)
}

// Package hashing detects scripts that end in the same position.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/rst-chess-go/internal/chess"
)

// numArchetypes covers NoArchetype through Pawn.
const numArchetypes = int(chess.Pawn) + 1

var (
	pieceKeys    [2][numArchetypes][chess.BoardSize][chess.BoardSize]uint64
	capturedKeys [2][numArchetypes][chess.PiecesPerGame]uint64
	turnKey      uint64
)

func init() {
	// Fixed seed: hashes must be stable across runs.
	r := rand.New(rand.NewSource(0x5ee_c0de))
	for team := range pieceKeys {
		for a := range pieceKeys[team] {
			for f := range pieceKeys[team][a] {
				for rk := range pieceKeys[team][a][f] {
					pieceKeys[team][a][f][rk] = r.Uint64()
				}
			}
			for n := range capturedKeys[team][a] {
				capturedKeys[team][a][n] = r.Uint64()
			}
		}
	}
	turnKey = r.Uint64()
}

// PositionHash returns a Zobrist hash of the pieces on the board, the
// captured pools and the side to move.
func PositionHash(v chess.BoardView, turn chess.Team) uint64 {
	var h uint64
	for f := 0; f < chess.BoardSize; f++ {
		for rk := 0; rk < chess.BoardSize; rk++ {
			sq := v.Squares[f][rk]
			if sq.Occupied {
				h ^= pieceKeys[sq.Team][sq.Archetype][f][rk]
			}
		}
	}
	for _, team := range []chess.Team{chess.White, chess.Black} {
		var seen [numArchetypes]int
		for _, a := range v.Captured[team] {
			if seen[a] < chess.PiecesPerGame {
				h ^= capturedKeys[team][a][seen[a]]
			}
			seen[a]++
		}
	}
	if turn == chess.Black {
		h ^= turnKey
	}
	return h
}

// WeakHash is a cheap positional checksum used to confirm a Zobrist match.
func WeakHash(v chess.BoardView) uint32 {
	var h uint32
	for f := 0; f < chess.BoardSize; f++ {
		for rk := 0; rk < chess.BoardSize; rk++ {
			sq := v.Squares[f][rk]
			if !sq.Occupied {
				continue
			}
			code := uint32(sq.Archetype)<<1 | uint32(sq.Team)
			h += code * uint32(f*chess.BoardSize+rk+1)
		}
	}
	return h
}

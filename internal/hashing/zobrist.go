package hashing

import (
	"math/rand"

	"github.com/lgbarn/greedy-chess-go/internal/chess"
)

// zobristSeed is fixed so hashes are stable across runs.
const zobristSeed = 0x5eed

var (
	pieceKeys [2][chess.King + 1][chess.BoardSize * chess.BoardSize]uint64
	sideKey   uint64
)

func init() {
	rng := rand.New(rand.NewSource(zobristSeed))
	for side := range pieceKeys {
		for kind := chess.Pawn; kind <= chess.King; kind++ {
			for sq := range pieceKeys[side][kind] {
				pieceKeys[side][kind][sq] = rng.Uint64()
			}
		}
	}
	sideKey = rng.Uint64()
}

// GenerateZobristHash returns the Zobrist hash of the placement on board
// with toMove to play.
func GenerateZobristHash(board *chess.Board, toMove chess.Side) uint64 {
	var hash uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := board.Squares[row][col]
			if p.IsEmpty() || p.Kind > chess.King || (p.Side != chess.White && p.Side != chess.Black) {
				continue
			}
			hash ^= pieceKeys[p.Side][p.Kind][row*chess.BoardSize+col]
		}
	}
	if toMove == chess.White {
		hash ^= sideKey
	}
	return hash
}

// WeakHash is a cheap placement checksum used to confirm a Zobrist match.
func WeakHash(board *chess.Board) uint32 {
	var hash uint32
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := board.Squares[row][col]
			if p.IsEmpty() {
				continue
			}
			hash = hash*31 + uint32(row*chess.BoardSize+col+1)*uint32(p.Kind)*uint32(p.Side+1)
		}
	}
	return hash
}

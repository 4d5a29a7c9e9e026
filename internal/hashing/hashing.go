// Package hashing provides position fingerprints for repetition detection.
package hashing

import (
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// positionFields is the number of leading FEN fields that identify a
// position for repetition: placement, side to move, castling and en passant.
const positionFields = 4

// PositionKey returns the part of the FEN that identifies a position for
// repetition purposes. The clocks are left out.
func PositionKey(board *chess.Board) string {
	fen := engine.BoardToFEN(board)
	fields := strings.SplitN(fen, " ", positionFields+1)
	return strings.Join(fields[:positionFields], " ")
}

// Fingerprint returns a 64-bit hash of the position key.
func Fingerprint(board *chess.Board) uint64 {
	return xxhash.Sum64String(PositionKey(board))
}

// PositionCounter tracks how often each position has occurred.
type PositionCounter struct {
	// counts maps fingerprints to occurrences; zero counts are removed
	counts map[uint64]int
}

// NewPositionCounter creates an empty counter.
func NewPositionCounter() *PositionCounter {
	return &PositionCounter{counts: make(map[uint64]int)}
}

// Add records one more occurrence of the board's position and returns the
// new count.
func (c *PositionCounter) Add(board *chess.Board) int {
	fp := Fingerprint(board)
	c.counts[fp]++
	return c.counts[fp]
}

// Remove drops one occurrence of the board's position. Counts never go
// below zero.
func (c *PositionCounter) Remove(board *chess.Board) int {
	fp := Fingerprint(board)
	n, ok := c.counts[fp]
	if !ok {
		return 0
	}
	if n <= 1 {
		delete(c.counts, fp)
		return 0
	}
	c.counts[fp] = n - 1
	return n - 1
}

// Count returns how often the board's position has occurred.
func (c *PositionCounter) Count(board *chess.Board) int {
	return c.counts[Fingerprint(board)]
}

// Unique returns the number of distinct positions seen.
func (c *PositionCounter) Unique() int {
	return len(c.counts)
}

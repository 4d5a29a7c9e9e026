package engine

import (
	"context"
	"sort"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Each promotion counts once per promotion piece.
func Perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	var nodes uint64
	for _, move := range expandPromotions(board, LegalMoves(board)) {
		if depth == 1 {
			nodes++
			continue
		}
		applyMove(board, move)
		nodes += Perft(board, depth-1)
		undoMove(board)
	}
	return nodes
}

// DivideResult is the node count below one root move.
type DivideResult struct {
	Move  string
	Nodes uint64
}

// Divide runs perft below each root move, spreading root moves across
// workers on private copies of the board. Results are sorted by move text.
func Divide(board *chess.Board, depth, workers int) []DivideResult {
	results, _ := DivideContext(context.Background(), board, depth, workers)
	return results
}

// DivideContext is Divide with cancellation. Root moves not yet started
// when ctx is done are skipped and the context error is returned.
func DivideContext(ctx context.Context, board *chess.Board, depth, workers int) ([]DivideResult, error) {
	if depth < 1 {
		return nil, nil
	}
	roots := expandPromotions(board, LegalMoves(board))

	children := make([]*chess.Board, len(roots))
	for i, move := range roots {
		children[i] = board.Copy()
		applyMove(children[i], move)
	}

	nodes, err := worker.Map(ctx, children, func(child *chess.Board) uint64 {
		return Perft(child, depth-1)
	}, worker.WithWorkers(workers))
	if err != nil {
		return nil, err
	}

	results := make([]DivideResult, len(roots))
	for i, move := range roots {
		results[i] = DivideResult{Move: FormatMove(board, move), Nodes: nodes[i]}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Move < results[j].Move })
	return results, nil
}

// DivideTotal sums the node counts of a Divide result.
func DivideTotal(results []DivideResult) uint64 {
	var total uint64
	for _, r := range results {
		total += r.Nodes
	}
	return total
}

// expandPromotions replaces each promotion move with one move per
// promotion piece.
func expandPromotions(board *chess.Board, moves []chess.Move) []chess.Move {
	expanded := make([]chess.Move, 0, len(moves))
	for _, move := range moves {
		if !isPromotion(board, move) {
			expanded = append(expanded, move)
			continue
		}
		for _, p := range promotionPieces {
			move.Promotion = p
			expanded = append(expanded, move)
		}
	}
	return expanded
}

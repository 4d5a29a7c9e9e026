package output

import (
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// Report describes the outcome of a run.
type Report struct {
	FEN           string       `json:"fen"`
	ToMove        string       `json:"toMove"`
	Status        string       `json:"status"`
	Winner        string       `json:"winner,omitempty"`
	InCheck       bool         `json:"inCheck"`
	Repetitions   int          `json:"repetitions"`
	Positions     int          `json:"positions"` // distinct positions in the game
	HalfmoveClock uint         `json:"halfmoveClock"`
	Chess960      *int         `json:"chess960,omitempty"` // array number, nil for FEN setups
	History       []string     `json:"history,omitempty"`
	LegalMoves    []string     `json:"legalMoves,omitempty"`
	Perft         *PerftReport `json:"perft,omitempty"`
	Hints         []Hint       `json:"hints,omitempty"`
}

// PerftReport holds a perft node count and, with divide, the count below
// each root move.
type PerftReport struct {
	Depth  int           `json:"depth"`
	Nodes  uint64        `json:"nodes"`
	Divide []DivideEntry `json:"divide,omitempty"`
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  string `json:"move"`
	Nodes uint64 `json:"nodes"`
}

// Hint is one candidate move suggested by an external engine.
type Hint struct {
	Move  string `json:"move"`
	Score string `json:"score"`
	Depth int    `json:"depth"`
}

// NewReport captures the current position of g.
func NewReport(g *game.Game, cfg *config.Config) *Report {
	r := &Report{
		FEN:           g.FEN(),
		ToMove:        g.ToMove().String(),
		Status:        g.Status().String(),
		InCheck:       g.InCheck(),
		Repetitions:   g.Repetitions(),
		Positions:     g.DistinctPositions(),
		HalfmoveClock: g.HalfmoveClock(),
	}
	if winner, ok := g.Winner(); ok {
		r.Winner = winner.String()
	}
	if n := g.Chess960Index(); n >= 0 && g.Board().Chess960 {
		r.Chess960 = &n
	}
	if cfg.ListHistory {
		r.History = g.History()
	}
	if cfg.ListMoves {
		r.LegalMoves = g.LegalMoves()
	}
	return r
}

// NewPerftReport converts divide results into a report.
func NewPerftReport(depth int, results []engine.DivideResult) *PerftReport {
	pr := &PerftReport{
		Depth:  depth,
		Nodes:  engine.DivideTotal(results),
		Divide: make([]DivideEntry, len(results)),
	}
	for i, r := range results {
		pr.Divide[i] = DivideEntry{Move: r.Move, Nodes: r.Nodes}
	}
	return pr
}

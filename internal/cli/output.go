package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Game:
		o.printGame(v)
	case MoveResult:
		o.printMoveResult(v)
	case MoveList:
		o.printMoveList(v)
	case GameList:
		o.printGameList(v)
	case SelfPlayResult:
		o.printSelfPlayResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Placement response type (matches API)
type Placement struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Letter string `json:"letter"`
}

// Move response type
type Move struct {
	Placements []Placement `json:"placements,omitempty"`
	Word       string      `json:"word,omitempty"`
	Score      int         `json:"score"`
	Pass       bool        `json:"pass,omitempty"`
}

// Game response type
type Game struct {
	ID          string            `json:"id"`
	Board       []string          `json:"board"`
	Scores      map[string]int    `json:"scores"`
	Racks       map[string]string `json:"racks"`
	CurrentSeat int               `json:"current_seat"`
	PoolCount   int               `json:"pool_count"`
	Passes      int               `json:"passes_in_a_row"`
	Terminal    bool              `json:"terminal"`
	Winner      *int              `json:"winner,omitempty"`
	Strategies  map[string]string `json:"strategies,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// MoveResult response type
type MoveResult struct {
	Move Move `json:"move"`
	Game Game `json:"game"`
}

// MoveList response type
type MoveList struct {
	Moves []Move `json:"moves"`
}

// GameList response type
type GameList struct {
	GameIDs []string `json:"game_ids"`
}

// SelfPlayResult response type
type SelfPlayResult struct {
	MovesPlayed int  `json:"moves_played"`
	Game        Game `json:"game"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printGame(g Game) {
	fmt.Printf("Game: %s\n", g.ID)
	fmt.Println()
	for _, row := range g.Board {
		fmt.Printf("  %s\n", strings.Join(strings.Split(row, ""), " "))
	}
	fmt.Println()

	seats := make([]string, 0, len(g.Scores))
	for seat := range g.Scores {
		seats = append(seats, seat)
	}
	sort.Strings(seats)
	for _, seat := range seats {
		marker := " "
		if fmt.Sprint(g.CurrentSeat) == seat {
			marker = "*"
		}
		line := fmt.Sprintf("%s Seat %s: %d points, rack %s", marker, seat, g.Scores[seat], g.Racks[seat])
		if strategy, ok := g.Strategies[seat]; ok {
			line += fmt.Sprintf(" [bot: %s]", strategy)
		}
		fmt.Println(line)
	}

	fmt.Printf("Pool: %d tiles, passes in a row: %d\n", g.PoolCount, g.Passes)
	if g.Terminal {
		if g.Winner != nil {
			fmt.Printf("Game over: seat %d wins\n", *g.Winner)
		} else {
			fmt.Println("Game over: draw")
		}
	}
}

func (o *Output) printMove(m Move) {
	if m.Pass {
		fmt.Println("Move: pass")
		return
	}
	fmt.Printf("Move: %s for %d points\n", m.Word, m.Score)
	for _, p := range m.Placements {
		fmt.Printf("  %s at (%d, %d)\n", p.Letter, p.Row, p.Col)
	}
}

func (o *Output) printMoveResult(r MoveResult) {
	o.printMove(r.Move)
	fmt.Println()
	o.printGame(r.Game)
}

func (o *Output) printMoveList(l MoveList) {
	fmt.Printf("%d legal moves:\n", len(l.Moves))
	for _, m := range l.Moves {
		if m.Pass {
			fmt.Println("  pass")
			continue
		}
		first := m.Placements[0]
		fmt.Printf("  %s at (%d, %d) for %d points\n", m.Word, first.Row, first.Col, m.Score)
	}
}

func (o *Output) printGameList(l GameList) {
	if len(l.GameIDs) == 0 {
		fmt.Println("No games")
		return
	}
	for _, id := range l.GameIDs {
		fmt.Println(id)
	}
}

func (o *Output) printSelfPlayResult(r SelfPlayResult) {
	fmt.Printf("Self-play complete after %d moves\n", r.MovesPlayed)
	fmt.Println()
	o.printGame(r.Game)
}

func (o *Output) printHealthResult(r HealthResult) {
	fmt.Printf("Server status: %s\n", r.Status)
}

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameNewCmd())
	cmd.AddCommand(newGameListCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameDeleteCmd())
	cmd.AddCommand(newGameMovesCmd())
	cmd.AddCommand(newGameMoveCmd())
	cmd.AddCommand(newGamePassCmd())
	cmd.AddCommand(newGameBotMoveCmd())
	cmd.AddCommand(newGameSelfPlayCmd())

	return cmd
}

func newGameNewCmd() *cobra.Command {
	var seat1Strategy, seat2Strategy string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new game",
		RunE: func(cmd *cobra.Command, args []string) error {
			strategies := map[string]string{}
			if seat1Strategy != "" {
				strategies["1"] = seat1Strategy
			}
			if seat2Strategy != "" {
				strategies["2"] = seat2Strategy
			}

			body := map[string]any{"strategies": strategies}

			var result Game
			if err := client.Post("/api/v1/games", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&seat1Strategy, "seat1", "", "Bot strategy for seat 1 (minimax, montecarlo, greedy, random)")
	cmd.Flags().StringVar(&seat2Strategy, "seat2", "", "Bot strategy for seat 2")

	return cmd
}

func newGameListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List game IDs",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameList
			if err := client.Get("/api/v1/games", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get game state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game
			if err := client.Get(fmt.Sprintf("/api/v1/games/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return client.Delete(fmt.Sprintf("/api/v1/games/%s", args[0]))
		},
	}
}

func newGameMovesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "moves <id>",
		Short: "List legal moves for the current seat",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result MoveList
			if err := client.Get(fmt.Sprintf("/api/v1/games/%s/moves", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
		Args: cobra.ExactArgs(1),
	}
}

func newGameMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <id> <seat> <placement>...",
		Short: "Submit a move",
		Long: `Submit a move as a list of placements, each in row,col=letter form.

Example:
  scrabbleduel game move ABC123 1 7,6=C 7,7=A 7,8=T`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			seat, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("seat must be 1 or 2")
			}

			placements := make([]Placement, 0, len(args)-2)
			for _, arg := range args[2:] {
				p, err := parsePlacement(arg)
				if err != nil {
					return err
				}
				placements = append(placements, p)
			}

			body := map[string]any{"seat": seat, "placements": placements}

			var result MoveResult
			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/moves", args[0]), body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGamePassCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pass <id> <seat>",
		Short: "Pass the turn",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			seat, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("seat must be 1 or 2")
			}

			body := map[string]any{"seat": seat, "pass": true}

			var result MoveResult
			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/moves", args[0]), body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameBotMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bot <id>",
		Short: "Play one bot move for the current seat",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result MoveResult
			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/bot-move", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameSelfPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selfplay <id>",
		Short: "Play bot moves until the game ends or a non-bot seat is up",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SelfPlayResult
			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/self-play", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

// parsePlacement parses "row,col=letter"
func parsePlacement(s string) (Placement, error) {
	coords, letter, ok := strings.Cut(s, "=")
	if !ok || len(letter) != 1 {
		return Placement{}, fmt.Errorf("placement %q must be row,col=letter", s)
	}

	rowStr, colStr, ok := strings.Cut(coords, ",")
	if !ok {
		return Placement{}, fmt.Errorf("placement %q must be row,col=letter", s)
	}

	row, err := strconv.Atoi(rowStr)
	if err != nil {
		return Placement{}, fmt.Errorf("placement %q has a bad row", s)
	}
	col, err := strconv.Atoi(colStr)
	if err != nil {
		return Placement{}, fmt.Errorf("placement %q has a bad column", s)
	}

	return Placement{Row: row, Col: col, Letter: strings.ToUpper(letter)}, nil
}

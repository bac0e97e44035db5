// FILE: internal/client/commands/game.go
package commands

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"checkora/internal/client/api"
	"checkora/internal/client/display"
)

func (r *Registry) registerGameCommands() {
	r.Register(&Command{
		Name:        "new",
		ShortName:   "n",
		Description: "Create a new game",
		Usage:       "new",
		Handler:     newGameHandler,
	})

	r.Register(&Command{
		Name:        "join",
		ShortName:   "j",
		Description: "Join/set current game ID",
		Usage:       "join <gameId>",
		Handler:     joinGameHandler,
	})

	r.Register(&Command{
		Name:        "move",
		ShortName:   "m",
		Description: "Make a move",
		Usage:       "move <from><to> (e.g. move e2e4)",
		Handler:     moveHandler,
	})

	r.Register(&Command{
		Name:        "valid",
		ShortName:   "v",
		Description: "List legal moves for a square",
		Usage:       "valid <square> (e.g. valid e2)",
		Handler:     validMovesHandler,
	})

	r.Register(&Command{
		Name:        "undo",
		ShortName:   "u",
		Description: "Undo moves",
		Usage:       "undo [count]",
		Handler:     undoHandler,
	})

	r.Register(&Command{
		Name:        "show",
		ShortName:   "h",
		Description: "Show board and game state",
		Usage:       "show",
		Handler:     showBoardHandler,
	})

	r.Register(&Command{
		Name:        "state",
		ShortName:   "s",
		Description: "Show raw game JSON",
		Usage:       "state",
		Handler:     gameStateHandler,
	})

	r.Register(&Command{
		Name:        "delete",
		ShortName:   "d",
		Description: "Delete a game",
		Usage:       "delete [gameId]",
		Handler:     deleteGameHandler,
	})
}

// parseSquare converts algebraic notation ("e2") to board coordinates.
// Row 0 is rank 8, so rank n maps to row 8-n.
func parseSquare(sq string) (row, col int, err error) {
	if len(sq) != 2 {
		return 0, 0, fmt.Errorf("invalid square: %s", sq)
	}
	file := sq[0]
	rank := sq[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return 0, 0, fmt.Errorf("invalid square: %s", sq)
	}
	return 8 - int(rank-'0'), int(file - 'a'), nil
}

// squareName converts board coordinates back to algebraic notation
func squareName(row, col int) string {
	return fmt.Sprintf("%c%d", 'a'+col, 8-row)
}

func newGameHandler(s Session, args []string) error {
	scanner := bufio.NewScanner(os.Stdin)
	c := s.GetClient().(*api.Client)

	fmt.Println("\n" + display.Cyan + "Creating new game..." + display.Reset)

	// Starting position
	fmt.Print(display.Yellow + "Starting position (64-char board) [default]: " + display.Reset)
	scanner.Scan()
	boardStr := strings.TrimSpace(scanner.Text())

	req := &api.CreateGameRequest{
		Board: boardStr,
	}

	resp, err := c.CreateGame(req)
	if err != nil {
		return err
	}

	s.SetCurrentGame(resp.GameID)
	s.SetLastMoveCount(len(resp.MoveHistory))
	s.SetGameState(resp)

	fmt.Printf("%sGame created: %s%s\n", display.Green, resp.GameID, display.Reset)
	fmt.Printf("%sCurrent game set to: %s%s\n", display.Cyan, resp.GameID, display.Reset)

	return nil
}

func joinGameHandler(s Session, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: join <gameId>")
	}

	gameID := args[0]
	c := s.GetClient().(*api.Client)

	// Verify game exists
	resp, err := c.GetGame(gameID)
	if err != nil {
		return err
	}

	s.SetCurrentGame(gameID)
	s.SetLastMoveCount(len(resp.MoveHistory))
	s.SetGameState(resp)

	fmt.Printf("%sJoined game: %s%s\n", display.Green, gameID, display.Reset)
	fmt.Printf("Turn: %s | State: %s | Moves: %d\n", resp.Turn, resp.State, len(resp.MoveHistory))

	return nil
}

func moveHandler(s Session, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: move <from><to> (e.g. move e2e4)")
	}

	gameID := s.GetCurrentGame()
	if gameID == "" {
		return fmt.Errorf("no current game, use 'new' or 'join <gameId>'")
	}

	// Accept "e2e4" or "e2 e4"
	move := strings.Join(args, "")
	if len(move) != 4 {
		return fmt.Errorf("invalid move: %s", strings.Join(args, " "))
	}

	fromRow, fromCol, err := parseSquare(move[:2])
	if err != nil {
		return err
	}
	toRow, toCol, err := parseSquare(move[2:])
	if err != nil {
		return err
	}

	c := s.GetClient().(*api.Client)

	resp, err := c.MakeMove(gameID, fromRow, fromCol, toRow, toCol)
	if err != nil {
		return err
	}

	s.SetLastMoveCount(len(resp.MoveHistory))
	s.SetGameState(resp)
	fmt.Printf("%sMove accepted%s\n", display.Green, display.Reset)

	if resp.LastMove != nil && resp.LastMove.Captured != "" {
		fmt.Printf("%sCaptured: %s%s\n", display.Magenta, resp.LastMove.Captured, display.Reset)
	}
	if resp.State != "ongoing" {
		fmt.Printf("%sGame state: %s%s\n", display.Yellow, resp.State, display.Reset)
	}

	return nil
}

func validMovesHandler(s Session, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: valid <square> (e.g. valid e2)")
	}

	gameID := s.GetCurrentGame()
	if gameID == "" {
		return fmt.Errorf("no current game, use 'new' or 'join <gameId>'")
	}

	row, col, err := parseSquare(args[0])
	if err != nil {
		return err
	}

	c := s.GetClient().(*api.Client)
	resp, err := c.ValidMoves(gameID, row, col)
	if err != nil {
		return err
	}

	if len(resp.ValidMoves) == 0 {
		fmt.Printf("%sNo legal moves from %s%s\n", display.Yellow, args[0], display.Reset)
		return nil
	}

	fmt.Printf("%sLegal moves from %s:%s ", display.Cyan, args[0], display.Reset)
	for i, m := range resp.ValidMoves {
		if i > 0 {
			fmt.Print(" ")
		}
		name := squareName(m.Row, m.Col)
		if m.IsCapture {
			fmt.Printf("%s%sx%s", display.Red, name, display.Reset)
		} else {
			fmt.Print(name)
		}
	}
	fmt.Println()

	return nil
}

func undoHandler(s Session, args []string) error {
	gameID := s.GetCurrentGame()
	if gameID == "" {
		return fmt.Errorf("no current game, use 'new' or 'join <gameId>'")
	}

	count := 1
	if len(args) > 0 {
		var err error
		count, err = strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid count: %s", args[0])
		}
	}

	c := s.GetClient().(*api.Client)
	resp, err := c.UndoMoves(gameID, count)
	if err != nil {
		return err
	}

	s.SetLastMoveCount(len(resp.MoveHistory))
	s.SetGameState(resp)
	fmt.Printf("%sUndid %d move(s)%s\n", display.Green, count, display.Reset)
	return nil
}

func showBoardHandler(s Session, args []string) error {
	gameID := s.GetCurrentGame()
	if gameID == "" {
		return fmt.Errorf("no current game, use 'new' or 'join <gameId>'")
	}

	c := s.GetClient().(*api.Client)

	// Get full game state
	game, err := c.GetGame(gameID)
	if err != nil {
		return err
	}

	// Get ASCII board
	board, err := c.GetBoard(gameID)
	if err != nil {
		return err
	}

	s.SetLastMoveCount(len(game.MoveHistory))
	s.SetGameState(game)

	// Display board with colors
	fmt.Println()
	display.RenderBoard(board.ASCII)

	// Display game info
	fmt.Printf("\nBoard: %s\n", game.Board)
	fmt.Printf("Turn: %s | State: %s | Moves: %d\n",
		display.ColorForTurn(game.Turn), game.State, len(game.MoveHistory))
	fmt.Printf("Clocks: %sWhite %ds%s | %sBlack %ds%s\n",
		display.Blue, game.WhiteTime, display.Reset,
		display.Red, game.BlackTime, display.Reset)

	// Display captured pieces
	for _, color := range []string{"white", "black"} {
		if pieces := game.Captured[color]; len(pieces) > 0 {
			fmt.Printf("Captured by %s: %s\n", color, strings.Join(pieces, " "))
		}
	}

	// Display move history
	if len(game.MoveHistory) > 0 {
		fmt.Printf("\nHistory: ")
		for i, move := range game.MoveHistory {
			if i > 0 {
				fmt.Print(" | ")
			}
			if i%2 == 0 {
				fmt.Printf("%d. %s", (i/2)+1, move.Notation)
			} else {
				fmt.Printf("%s", move.Notation)
			}
		}
		fmt.Println()
	}

	// Display last move info
	if game.LastMove != nil {
		fmt.Printf("Last move: %s by %s", game.LastMove.Notation, game.LastMove.Color)
		if game.LastMove.Captured != "" {
			fmt.Printf(" (captured %s)", game.LastMove.Captured)
		}
		fmt.Println()
	}

	return nil
}

func gameStateHandler(s Session, args []string) error {
	gameID := s.GetCurrentGame()
	if gameID == "" {
		return fmt.Errorf("no current game, use 'new' or 'join <gameId>'")
	}

	c := s.GetClient().(*api.Client)
	resp, err := c.GetGame(gameID)
	if err != nil {
		return err
	}

	s.SetLastMoveCount(len(resp.MoveHistory))

	// Pretty print JSON
	fmt.Printf("%sGame State:%s\n", display.Cyan, display.Reset)
	display.PrettyPrintJSON(resp)

	return nil
}

func deleteGameHandler(s Session, args []string) error {
	gameID := s.GetCurrentGame()
	if len(args) > 0 {
		gameID = args[0]
	}

	if gameID == "" {
		return fmt.Errorf("specify game ID or set current game")
	}

	c := s.GetClient().(*api.Client)
	err := c.DeleteGame(gameID)
	if err != nil {
		return err
	}

	if gameID == s.GetCurrentGame() {
		s.SetCurrentGame("")
		s.SetLastMoveCount(0)
	}

	fmt.Printf("%sGame deleted: %s%s\n", display.Green, gameID, display.Reset)
	return nil
}

// FILE: internal/server/game/game.go
package game

import (
	"fmt"
	"sync"
	"time"

	"checkora/internal/board"
	"checkora/internal/core"
)

// InitialClockSeconds is each side's starting clock allotment.
const InitialClockSeconds = 10 * 60

const files = "abcdefgh"

// Snapshot is one position in a game's history. The first snapshot is the
// initial position; each applied move appends one more.
type Snapshot struct {
	Encoding string             `json:"encoding"`
	Turn     core.Color         `json:"turn"` // side to move in this position
	LastMove *core.HistoryEntry `json:"lastMove,omitempty"`
}

// Game holds the bookkeeping for one hosted game: the snapshot stack
// (enabling undo), captured pieces, chess clocks, and the on-demand
// legal-move cache. The legality rules themselves live in the oracle;
// Game never judges a move. All methods are safe for concurrent use.
type Game struct {
	mu         sync.RWMutex
	snapshots  []Snapshot
	captured   map[core.Color][]byte // pieces taken by that color
	state      core.State
	ownerID    string
	whiteTime  int // seconds remaining
	blackTime  int
	lastTick   time.Time
	paused     bool
	movesCache map[core.Square][]core.MoveOption
}

// New starts a game from the given position with game clocks full.
func New(initial string, turn core.Color, ownerID string) *Game {
	return &Game{
		snapshots: []Snapshot{
			{Encoding: initial, Turn: turn},
		},
		captured: map[core.Color][]byte{
			core.ColorWhite: {},
			core.ColorBlack: {},
		},
		state:      core.StateOngoing,
		ownerID:    ownerID,
		whiteTime:  InitialClockSeconds,
		blackTime:  InitialClockSeconds,
		lastTick:   time.Now(),
		movesCache: make(map[core.Square][]core.MoveOption),
	}
}

func (g *Game) currentSnapshot() Snapshot {
	return g.snapshots[len(g.snapshots)-1]
}

// CurrentEncoding returns the 64-character encoding of the latest position.
func (g *Game) CurrentEncoding() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.currentSnapshot().Encoding
}

// Turn returns the side to move.
func (g *Game) Turn() core.Color {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.currentSnapshot().Turn
}

func (g *Game) State() core.State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

func (g *Game) SetState(s core.State) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = s
}

func (g *Game) OwnerID() string {
	return g.ownerID
}

// ApplyMove records a move that the oracle already judged legal: it
// updates the position, the capture lists, the clocks, and the move
// history, invalidates the legal-move cache, and hands the turn to the
// opponent. Flag fall ends the game in the opponent's favor.
func (g *Game) ApplyMove(from, to core.Square) (core.HistoryEntry, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != core.StateOngoing {
		return core.HistoryEntry{}, fmt.Errorf("game is over: %s", g.state)
	}

	current := g.currentSnapshot()
	b, err := board.Load(current.Encoding)
	if err != nil {
		return core.HistoryEntry{}, fmt.Errorf("corrupt game position: %w", err)
	}

	mover := current.Turn
	piece := b.At(from)
	target := b.At(to)

	entry := core.HistoryEntry{
		Notation: notation(from, to),
		Piece:    string(piece),
		From:     [2]int{from.Row, from.Col},
		To:       [2]int{to.Row, to.Col},
		Color:    mover.String(),
	}
	if !core.IsEmptySquare(target) {
		entry.Captured = string(target)
		g.captured[mover] = append(g.captured[mover], target)
	}

	g.tickClock(mover)

	next := core.OppositeColor(mover)
	g.snapshots = append(g.snapshots, Snapshot{
		Encoding: b.Apply(from, to).Encode(),
		Turn:     next,
		LastMove: &entry,
	})

	// Position changed, every cached enumeration is stale
	g.movesCache = make(map[core.Square][]core.MoveOption)

	if g.whiteTime == 0 {
		g.state = core.StateBlackWins
	} else if g.blackTime == 0 {
		g.state = core.StateWhiteWins
	}

	return entry, nil
}

// UndoMoves discards the last count snapshots.
func (g *Game) UndoMoves(count int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if count < 1 {
		return fmt.Errorf("invalid undo count: %d", count)
	}

	available := len(g.snapshots) - 1
	if available < count {
		return fmt.Errorf("cannot undo %d moves: only %d moves available", count, available)
	}

	g.snapshots = g.snapshots[:len(g.snapshots)-count]
	g.state = core.StateOngoing
	g.movesCache = make(map[core.Square][]core.MoveOption)
	g.rebuildCaptures()
	return nil
}

// rebuildCaptures recomputes the capture lists from the surviving history.
func (g *Game) rebuildCaptures() {
	captured := map[core.Color][]byte{
		core.ColorWhite: {},
		core.ColorBlack: {},
	}
	for _, snap := range g.snapshots[1:] {
		m := snap.LastMove
		if m == nil || m.Captured == "" {
			continue
		}
		color := core.ParseColor(m.Color)
		captured[color] = append(captured[color], m.Captured[0])
	}
	g.captured = captured
}

// History lists every applied move in order.
func (g *Game) History() []core.HistoryEntry {
	g.mu.RLock()
	defer g.mu.RUnlock()

	history := []core.HistoryEntry{}
	for _, snap := range g.snapshots[1:] {
		if snap.LastMove != nil {
			history = append(history, *snap.LastMove)
		}
	}
	return history
}

// LastMove returns the most recently applied move, if any.
func (g *Game) LastMove() *core.HistoryEntry {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.currentSnapshot().LastMove
}

// MoveCount returns the number of applied moves.
func (g *Game) MoveCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.snapshots) - 1
}

// InitialEncoding returns the position the game started from.
func (g *Game) InitialEncoding() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.snapshots[0].Encoding
}

// Captured returns the capture lists keyed by color name.
func (g *Game) Captured() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string][]string, 2)
	for color, pieces := range g.captured {
		list := []string{}
		for _, p := range pieces {
			list = append(list, string(p))
		}
		out[color.String()] = list
	}
	return out
}

// CachedMoves returns the cached legal destinations for an origin square.
func (g *Game) CachedMoves(sq core.Square) ([]core.MoveOption, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	moves, ok := g.movesCache[sq]
	return moves, ok
}

// StoreMoves caches an oracle enumeration until the next applied move.
func (g *Game) StoreMoves(sq core.Square, moves []core.MoveOption) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.movesCache[sq] = moves
}

// Times returns the remaining clock seconds for white and black.
func (g *Game) Times() (white, black int) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.whiteTime, g.blackTime
}

// tickClock charges the elapsed thinking time to the side that moved.
func (g *Game) tickClock(mover core.Color) {
	now := time.Now()
	if g.paused {
		g.lastTick = now
		return
	}

	elapsed := int(now.Sub(g.lastTick).Seconds())
	if elapsed > 0 {
		if mover == core.ColorWhite {
			g.whiteTime = max(0, g.whiteTime-elapsed)
		} else {
			g.blackTime = max(0, g.blackTime-elapsed)
		}
	}
	g.lastTick = now
}

// SetPaused stops or resumes clock accounting.
func (g *Game) SetPaused(paused bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.paused = paused
	g.lastTick = time.Now()
}

// notation renders a move in the "e2 -> e4" form; row 0 is rank 8.
func notation(from, to core.Square) string {
	return fmt.Sprintf("%c%d -> %c%d",
		files[from.Col], 8-from.Row,
		files[to.Col], 8-to.Row)
}

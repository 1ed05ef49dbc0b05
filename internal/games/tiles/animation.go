package tiles

import (
	"fmt"

	"github.com/vovakirdan/tui-tiles/internal/match3"
)

// animation tracks the resolution step currently on screen.
// A turn is shown one step at a time; the board already holds the state
// after that step, the step itself tells the renderer what to highlight.
type animation struct {
	res      *match3.Resolution
	step     match3.Step
	ticks    int
	duration int
}

// active reports whether a turn is being shown.
func (a animation) active() bool {
	return a.res != nil
}

// startTurn plays a swap and shows its first step.
func (g *Game) startTurn(s match3.Swap) {
	g.anim = animation{res: g.turn.Play(s)}
	g.nextStep()
}

// nextStep pulls one step from the resolution and puts it on screen.
// The settle step is not shown; it ends the animation immediately.
func (g *Game) nextStep() {
	res := g.anim.res
	step, ok := res.Next()
	if !ok {
		g.anim = animation{}
		return
	}

	if step.Kind == match3.StepSettled {
		g.anim = animation{}
		g.settle(res)
		return
	}

	g.anim.step = step
	g.anim.ticks = 0
	g.anim.duration = g.stepDuration(step.Kind)

	switch step.Kind {
	case match3.StepRejected:
		g.notice = "No match there"
	case match3.StepMatched:
		if step.Combo > 1 {
			g.notice = fmt.Sprintf("+%d  combo x%d", step.Points, step.Combo)
		} else {
			g.notice = fmt.Sprintf("+%d", step.Points)
		}
	case match3.StepReshuffled:
		g.notice = "No swaps left, shuffling"
	}
}

// stepDuration returns how many ticks a step stays on screen.
func (g *Game) stepDuration(kind match3.StepKind) int {
	anim := g.opts.Config.Animation
	switch kind {
	case match3.StepSwapped:
		return anim.SwapTicks
	case match3.StepRejected:
		return anim.InvalidTicks
	default:
		return anim.StepTicks
	}
}

// updateAnimation advances the current step and moves on when it has been
// shown long enough.
func (g *Game) updateAnimation() {
	g.anim.ticks++
	if g.anim.ticks >= g.anim.duration {
		g.nextStep()
	}
}

// markKind says how a highlighted cell is drawn.
type markKind uint8

const (
	markMoved    markKind = iota + 1 // Swapped or fallen piece
	markRejected                     // Half of an illegal swap
	markPopped                       // Removed piece, drawn where it was
	markNew                          // Created by a top-up
)

type cellPos struct{ col, row int }

// marks returns the cells the current step highlights.
func (a animation) marks() map[cellPos]markKind {
	if !a.active() {
		return nil
	}

	m := make(map[cellPos]markKind)
	put := func(p *match3.Piece, k markKind) {
		if p != nil {
			m[cellPos{p.Column, p.Row}] = k
		}
	}

	s := a.step
	switch s.Kind {
	case match3.StepSwapped:
		put(s.Swap.A, markMoved)
		put(s.Swap.B, markMoved)
	case match3.StepRejected:
		put(s.Swap.A, markRejected)
		put(s.Swap.B, markRejected)
	case match3.StepMatched:
		for _, c := range s.Chains {
			for _, p := range c.Pieces {
				put(p, markPopped)
			}
		}
	case match3.StepFilled:
		for _, col := range s.Columns {
			for _, p := range col {
				put(p, markMoved)
			}
		}
	case match3.StepToppedUp:
		for _, col := range s.Columns {
			for _, p := range col {
				put(p, markNew)
			}
		}
	}
	return m
}

// poppedTypes returns the types of the pieces removed by the current step,
// so the renderer can still draw them after they left the board.
func (a animation) poppedTypes() map[cellPos]match3.PieceType {
	if !a.active() || a.step.Kind != match3.StepMatched {
		return nil
	}
	types := make(map[cellPos]match3.PieceType)
	for _, c := range a.step.Chains {
		for _, p := range c.Pieces {
			types[cellPos{p.Column, p.Row}] = p.Type
		}
	}
	return types
}

package match3

import "iter"

// Status is the terminal state of a level.
type Status uint8

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "playing"
	}
}

// StepKind identifies one phase of a turn's resolution.
type StepKind uint8

const (
	StepRejected   StepKind = iota // Swap was not legal; nothing changed
	StepSwapped                    // Swap applied
	StepMatched                    // Chains scored and removed
	StepFilled                     // Pieces fell into holes
	StepToppedUp                   // New pieces entered from the top
	StepReshuffled                 // No legal swap was left; board re-dealt
	StepSettled                    // Turn finalized, always the last step
)

// String returns the step name.
func (k StepKind) String() string {
	switch k {
	case StepRejected:
		return "rejected"
	case StepSwapped:
		return "swapped"
	case StepMatched:
		return "matched"
	case StepFilled:
		return "filled"
	case StepToppedUp:
		return "topped-up"
	case StepReshuffled:
		return "reshuffled"
	case StepSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Step is one unit of turn resolution, handed to the presentation layer.
type Step struct {
	Kind    StepKind
	Swap    Swap       // StepRejected, StepSwapped
	Chains  []*Chain   // StepMatched, scores already multiplied by Combo
	Columns [][]*Piece // StepFilled, StepToppedUp
	Pieces  []*Piece   // StepReshuffled
	Points  int        // StepMatched: points added by this step
	Combo   int        // StepMatched: multiplier applied to this step
	Status  Status     // StepSettled: level status after the turn
}

// Turn drives a board through player moves and keeps score.
type Turn struct {
	board     *Board
	score     int
	movesLeft int
	combo     int
	status    Status
	active    *Resolution
}

// NewTurn creates a controller for b with the level's full move budget.
func NewTurn(b *Board) *Turn {
	return &Turn{
		board:     b,
		movesLeft: b.MaximumMoves(),
		combo:     1,
	}
}

// Board returns the controlled board.
func (t *Turn) Board() *Board { return t.board }

// Score returns the points scored so far.
func (t *Turn) Score() int { return t.score }

// MovesLeft returns the remaining move budget.
func (t *Turn) MovesLeft() int { return t.movesLeft }

// Combo returns the multiplier the next chain batch will be scored with.
func (t *Turn) Combo() int { return t.combo }

// Status returns the level status.
func (t *Turn) Status() Status { return t.status }

// Busy reports whether a resolution is still in progress.
func (t *Turn) Busy() bool { return t.active != nil }

// Shuffle deals the board and returns the new pieces.
func (t *Turn) Shuffle() ([]*Piece, error) {
	return t.board.Shuffle()
}

// Play starts resolving a player swap. The returned resolution must be
// drained before Play is called again.
// Panics if a resolution is still running or the level is over.
func (t *Turn) Play(s Swap) *Resolution {
	if t.active != nil {
		panic("match3: Play called while a turn is still resolving")
	}
	if t.status != StatusPlaying {
		panic("match3: Play called after the level ended")
	}
	r := &Resolution{turn: t, swap: s}
	t.active = r
	return r
}

// scoreChains multiplies the chain scores by the current combo, adds them to
// the total and raises the combo for the next cascade.
func (t *Turn) scoreChains(chains []*Chain) (points, combo int) {
	combo = t.combo
	for _, c := range chains {
		c.Score *= combo
		points += c.Score
	}
	t.score += points
	t.combo++
	return points, combo
}

// finish applies the end-of-turn bookkeeping. A board left without pieces
// by a failed re-deal loses the level unless the target was reached.
func (t *Turn) finish(stuck bool) {
	t.combo = 1
	t.movesLeft--
	switch {
	case t.score >= t.board.TargetScore():
		t.status = StatusWon
	case t.movesLeft <= 0, stuck:
		t.status = StatusLost
	}
	t.active = nil
}

type phase uint8

const (
	phaseSwap phase = iota
	phaseMatch
	phaseFill
	phaseTopUp
	phaseSettle
	phaseDone
)

// Resolution is the lazy sequence of steps produced by one player swap:
// swap, then {match, fill, top-up} until a match pass finds nothing, then
// settle. Each call to Next performs exactly one phase on the board.
type Resolution struct {
	turn   *Turn
	swap   Swap
	phase  phase
	points int
	err    error
}

// Next performs the next phase and returns its step.
// The second result is false once the sequence is exhausted.
func (r *Resolution) Next() (Step, bool) {
	b := r.turn.board

	switch r.phase {
	case phaseSwap:
		if !b.IsLegal(r.swap) {
			r.phase = phaseDone
			r.turn.active = nil
			return Step{Kind: StepRejected, Swap: r.swap}, true
		}
		b.PerformSwap(r.swap)
		r.phase = phaseMatch
		return Step{Kind: StepSwapped, Swap: r.swap}, true

	case phaseMatch:
		chains := b.RemoveMatches()
		if len(chains) == 0 {
			return r.settle()
		}
		points, combo := r.turn.scoreChains(chains)
		r.points += points
		r.phase = phaseFill
		return Step{Kind: StepMatched, Chains: chains, Points: points, Combo: combo}, true

	case phaseFill:
		r.phase = phaseTopUp
		return Step{Kind: StepFilled, Columns: b.FillHoles()}, true

	case phaseTopUp:
		r.phase = phaseMatch
		return Step{Kind: StepToppedUp, Columns: b.TopUp()}, true

	case phaseSettle:
		return r.finish(), true
	}

	return Step{}, false
}

// settle recomputes the legal swaps for the next move. When none exist the
// board is re-dealt first and reported as its own step.
func (r *Resolution) settle() (Step, bool) {
	b := r.turn.board
	if b.DetectPossibleSwaps() > 0 {
		return r.finish(), true
	}

	pieces, err := b.Shuffle()
	if err != nil {
		r.err = err
	}
	r.phase = phaseSettle
	return Step{Kind: StepReshuffled, Pieces: pieces}, true
}

func (r *Resolution) finish() Step {
	r.turn.finish(r.err != nil)
	r.phase = phaseDone
	return Step{Kind: StepSettled, Status: r.turn.status}
}

// All returns the remaining steps as an iterator.
func (r *Resolution) All() iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for {
			step, ok := r.Next()
			if !ok || !yield(step) {
				return
			}
		}
	}
}

// Run drains the resolution synchronously and returns every step.
func (r *Resolution) Run() []Step {
	var steps []Step
	for step := range r.All() {
		steps = append(steps, step)
	}
	return steps
}

// Done reports whether the sequence is exhausted.
func (r *Resolution) Done() bool {
	return r.phase == phaseDone
}

// Points returns the points scored by this resolution so far.
func (r *Resolution) Points() int {
	return r.points
}

// Err returns the error of a failed reshuffle, if any.
func (r *Resolution) Err() error {
	return r.err
}

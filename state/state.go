package state

// State is one screen of the game. The set of states is closed: only the
// types in this package implement it.
type State interface {
	Name() string
	// Draw renders the state; active is true for the top of the stack only
	Draw(ctx *Context, active bool)
	// Update consumes the state and tells the machine what to keep
	Update(ctx *Context) Transition

	isState()
}

type sealed struct{}

func (sealed) isState() {}

type transitionKind int

const (
	replace transitionKind = iota
	push
	pop
)

// Transition is the outcome of a state update
type Transition struct {
	kind      transitionKind
	suspended State
	next      State
}

// Replace puts next where the updated state was. next may be the updated
// state itself.
func Replace(next State) Transition {
	return Transition{kind: replace, next: next}
}

// Push keeps suspended on the stack and runs next on top of it
func Push(suspended, next State) Transition {
	return Transition{kind: push, suspended: suspended, next: next}
}

// Pop drops the updated state, returning control to the one beneath
func Pop() Transition {
	return Transition{kind: pop}
}

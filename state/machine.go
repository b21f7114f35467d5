package state

import (
	"fmt"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/tinysweep/game"
)

// Machine is a stack of states. Every state on the stack is drawn, and only
// the top one is updated.
type Machine struct {
	stack []State
}

func NewMachine() *Machine {
	return &Machine{stack: []State{NewInitial()}}
}

// Frame runs one console frame
func (m *Machine) Frame(ctx *Context) {
	ctx.Screen.Clear()

	m.Draw(ctx)
	m.Update(ctx)

	drawPointer(ctx)

	ctx.Mouse.Update()
	ctx.Ticker.Update()
	ctx.Frames.Update()
}

// Draw renders the stack bottom to top. Draw colours are restored after
// each state so none of them leaks into the next.
func (m *Machine) Draw(ctx *Context) {
	for i, s := range m.stack {
		drawColors := ctx.Screen.DrawColors()
		s.Draw(ctx, i == len(m.stack)-1)
		ctx.Screen.SetDrawColors(drawColors)
	}
}

// Update pops the top state, updates it and applies its transition. It
// panics when the stack is empty.
func (m *Machine) Update(ctx *Context) {
	if len(m.stack) == 0 {
		panic("state machine stack is empty")
	}

	top := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]

	transition := top.Update(ctx)

	switch transition.kind {
	case replace:
		m.stack = append(m.stack, transition.next)
		if transition.next.Name() != top.Name() {
			ctx.Log.WithFields(logrus.Fields{
				"from": top.Name(),
				"to":   transition.next.Name(),
			}).Debug("Replacing state")
		}
	case push:
		m.stack = append(m.stack, transition.suspended, transition.next)
		ctx.Log.WithField("state", transition.next.Name()).Debug("Pushing state")
	case pop:
		if len(m.stack) == 0 {
			panic(fmt.Sprintf("popped %s, the last state on the stack", top.Name()))
		}
		ctx.Log.WithFields(logrus.Fields{
			"state": top.Name(),
			"top":   m.Top().Name(),
		}).Debug("Popping state")
	}
}

// Top returns the state that will be updated next, or nil
func (m *Machine) Top() State {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

func (m *Machine) Len() int {
	return len(m.stack)
}

// Names lists the stacked states, bottom first
func (m *Machine) Names() []string {
	names := make([]string, len(m.stack))
	for i, s := range m.stack {
		names[i] = s.Name()
	}
	return names
}

// View exposes the board of the game being played, if any
func (m *Machine) View() (game.View, bool) {
	switch s := m.Top().(type) {
	case *PreGame:
		return game.NewView(s.field, nil), true
	case *InGame:
		return game.NewView(s.field, s.mines), true
	default:
		return game.View{}, false
	}
}

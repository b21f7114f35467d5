package state

// Initial sits at the bottom of the stack and opens the main menu
type Initial struct {
	sealed
}

func NewInitial() *Initial {
	return &Initial{}
}

func (s *Initial) Name() string {
	return "Initial"
}

func (s *Initial) Draw(ctx *Context, active bool) {}

func (s *Initial) Update(ctx *Context) Transition {
	return Push(s, NewMainMenu(ctx))
}

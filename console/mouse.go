package console

const (
	MouseLeft uint8 = 1 << iota
	MouseRight
	MouseMiddle
)

// Mouse is the pointer collaborator. The host writes the current state with
// Poll before each frame; Update must run once per frame after every
// consumer has queried it, so that clicks are seen for exactly one frame.
//
// A click is a release: the button was down last frame and is up now.
type Mouse struct {
	x, y     int16
	buttons  uint8
	previous uint8
}

func (m *Mouse) Poll(x, y int16, buttons uint8) {
	m.x, m.y = x, y
	m.buttons = buttons
}

// Update snapshots the current buttons as the previous frame's
func (m *Mouse) Update() {
	m.previous = m.buttons
}

func (m *Mouse) Coordinates() (int16, int16) {
	return m.x, m.y
}

func (m *Mouse) Buttons() uint8 {
	return m.buttons
}

func (m *Mouse) LeftPressed() bool {
	return m.buttons&MouseLeft != 0
}

func (m *Mouse) RightPressed() bool {
	return m.buttons&MouseRight != 0
}

func (m *Mouse) MiddlePressed() bool {
	return m.buttons&MouseMiddle != 0
}

func (m *Mouse) LeftClicked() bool {
	return m.clicked(MouseLeft)
}

func (m *Mouse) RightClicked() bool {
	return m.clicked(MouseRight)
}

func (m *Mouse) MiddleClicked() bool {
	return m.clicked(MouseMiddle)
}

func (m *Mouse) clicked(button uint8) bool {
	return m.previous&button != 0 && m.buttons&button == 0
}

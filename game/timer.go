package game

// Ticker counts frames within the current second
type Ticker struct {
	frame int
}

func (t *Ticker) Update() {
	t.frame = (t.frame + 1) % FrameRate
}

// Frame is the index of the current frame within its second, 0 to FrameRate-1
func (t *Ticker) Frame() int {
	return t.frame
}

// FrameCounter counts every frame since start-up
type FrameCounter struct {
	frames uint64
}

func (c *FrameCounter) Update() {
	c.frames++
}

func (c *FrameCounter) Frames() uint64 {
	return c.frames
}

// Timer measures a game's duration in whole seconds
type Timer struct {
	seconds int
}

// Update counts one second each time the ticker wraps to frame 0
func (t *Timer) Update(ticker *Ticker) {
	if ticker.Frame() == 0 {
		t.seconds++
	}
}

func (t Timer) Seconds() int {
	return t.seconds
}

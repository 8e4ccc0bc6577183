package demo

// box is the demo's entire simulation state: a position and a
// direction, bounced off the edges of whatever area it is given.
type box struct {
	x, y   int
	dx, dy int
}

func newBox() box {
	return box{x: 1, y: 1, dx: 1, dy: 1}
}

// step advances the box by one simulation tick inside a w×h area.
// Degenerate areas (anything smaller than 1×1) leave the box alone.
func (b *box) step(w, h int) {
	if w < 1 || h < 1 {
		return
	}

	b.x += b.dx
	b.y += b.dy

	if b.x <= 0 {
		b.x = 0
		b.dx = 1
	} else if b.x >= w-1 {
		b.x = w - 1
		b.dx = -1
	}
	if b.y <= 0 {
		b.y = 0
		b.dy = 1
	} else if b.y >= h-1 {
		b.y = h - 1
		b.dy = -1
	}
}

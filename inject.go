package orbital

// InjectOrbit queues a right-button drag of (dx, dy) pixels spread evenly
// over frames frames. Injected input replaces real input while the queue is
// non-empty.
func (s *Scene) InjectOrbit(dx, dy float32, frames int) {
	s.injectDrag(dx, dy, frames, false)
}

// InjectPan queues a middle-button drag of (dx, dy) pixels spread evenly
// over frames frames.
func (s *Scene) InjectPan(dx, dy float32, frames int) {
	s.injectDrag(dx, dy, frames, true)
}

func (s *Scene) injectDrag(dx, dy float32, frames int, pan bool) {
	if frames < 1 {
		frames = 1
	}
	stepX := dx / float32(frames)
	stepY := dy / float32(frames)
	for range frames {
		s.injectQueue = append(s.injectQueue, frameInput{
			dx: stepX, dy: stepY,
			orbit: !pan,
			pan:   pan,
		})
	}
}

// InjectZoom queues one frame of wheel input. Positive notches zoom in.
func (s *Scene) InjectZoom(notches float32) {
	s.injectQueue = append(s.injectQueue, frameInput{wheel: notches})
}

// InjectView queues an axis view shortcut: "x", "y" or "z". Other names
// are ignored.
func (s *Scene) InjectView(axis string) {
	var in frameInput
	switch axis {
	case "x":
		in.viewX = true
	case "y":
		in.viewY = true
	case "z":
		in.viewZ = true
	default:
		return
	}
	s.injectQueue = append(s.injectQueue, in)
}

// InjectRestart queues the restart shortcut.
func (s *Scene) InjectRestart() {
	s.injectQueue = append(s.injectQueue, frameInput{restart: true})
}

// injecting reports whether injected input is pending.
func (s *Scene) injecting() bool {
	return len(s.injectQueue) > 0
}

// processInjectedInput pops one frame of injected input and applies it.
// Returns true if a frame was consumed.
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	in := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]
	s.applyInput(in)
	return true
}

package tui

// history is a bounded command log with cursor-based navigation for the
// Up/Down keys.
type history struct {
	entries []string
	max     int
	cursor  int // -1 = not navigating
}

func newHistory(max int) *history {
	return &history{max: max, cursor: -1}
}

// push records a command, skipping consecutive duplicates and trimming
// the oldest entry past the cap.
func (h *history) push(cmd string) {
	if n := len(h.entries); n > 0 && h.entries[n-1] == cmd {
		return
	}
	h.entries = append(h.entries, cmd)
	if len(h.entries) > h.max {
		h.entries = h.entries[1:]
	}
}

// prev steps to the older entry, entering navigation from the end.
func (h *history) prev() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	switch {
	case h.cursor == -1:
		h.cursor = len(h.entries) - 1
	case h.cursor > 0:
		h.cursor--
	}
	return h.entries[h.cursor], true
}

// next steps to the newer entry; stepping past the newest leaves
// navigation and returns false.
func (h *history) next() (string, bool) {
	if h.cursor == -1 {
		return "", false
	}
	h.cursor++
	if h.cursor >= len(h.entries) {
		h.cursor = -1
		return "", false
	}
	return h.entries[h.cursor], true
}

func (h *history) reset() {
	h.cursor = -1
}

package ui

// history holds submitted lines for recall. The cursor sits one past the
// newest entry when not browsing.
type history struct {
	entries []string
	cursor  int
	limit   int
}

func newHistory(limit int) *history {
	return &history{limit: limit}
}

// add records line and resets the cursor. Consecutive duplicates are kept
// once.
func (h *history) add(line string) {
	if n := len(h.entries); n == 0 || h.entries[n-1] != line {
		h.entries = append(h.entries, line)
		if h.limit > 0 && len(h.entries) > h.limit {
			h.entries = h.entries[len(h.entries)-h.limit:]
		}
	}
	h.cursor = len(h.entries)
}

// prev moves toward older entries. It reports false when there is none.
func (h *history) prev() (string, bool) {
	if h.cursor == 0 {
		return "", false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// next moves toward newer entries. Past the newest it returns "" so the
// editor is emptied.
func (h *history) next() (string, bool) {
	if h.cursor >= len(h.entries) {
		return "", false
	}
	h.cursor++
	if h.cursor == len(h.entries) {
		return "", true
	}
	return h.entries[h.cursor], true
}

func (h *history) size() int {
	return len(h.entries)
}

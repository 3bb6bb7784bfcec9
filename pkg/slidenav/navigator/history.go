package navigator

// History is the ordered list of visited hashes with a cursor pointing at
// the current entry. Entries after the cursor are the forward history.
type History struct {
	entries []string
	cursor  int
}

// NewHistory creates a new empty history.
func NewHistory() *History {
	return &History{
		entries: make([]string, 0),
		cursor:  -1,
	}
}

func restoreHistory(entries []string, cursor int) *History {
	h := &History{
		entries: append([]string(nil), entries...),
		cursor:  cursor,
	}
	if h.cursor >= len(h.entries) || h.cursor < 0 {
		h.cursor = len(h.entries) - 1
	}
	return h
}

// Push drops any forward history and appends hash as the current entry.
func (h *History) Push(hash string) {
	h.entries = append(h.entries[:h.cursor+1], hash)
	h.cursor = len(h.entries) - 1
}

// Back moves the cursor one entry back.
// Returns the entry left, the new current entry and whether the move happened.
func (h *History) Back() (from, to string, ok bool) {
	if h.cursor <= 0 {
		return "", "", false
	}
	from = h.entries[h.cursor]
	h.cursor--
	return from, h.entries[h.cursor], true
}

// Forward moves the cursor one entry forward.
func (h *History) Forward() (from, to string, ok bool) {
	if h.cursor < 0 || h.cursor >= len(h.entries)-1 {
		return "", "", false
	}
	from = h.entries[h.cursor]
	h.cursor++
	return from, h.entries[h.cursor], true
}

// Current returns the hash under the cursor.
func (h *History) Current() (string, bool) {
	if h.cursor < 0 {
		return "", false
	}
	return h.entries[h.cursor], true
}

// IsEmpty returns true if the history has no entries.
func (h *History) IsEmpty() bool {
	return len(h.entries) == 0
}

// Len returns the number of entries, forward history included.
func (h *History) Len() int {
	return len(h.entries)
}

// Cursor returns the index of the current entry, -1 when empty.
func (h *History) Cursor() int {
	return h.cursor
}

// Entries returns a copy of all entries.
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}

// Clear removes all entries.
func (h *History) Clear() {
	h.entries = h.entries[:0]
	h.cursor = -1
}

package exercise

import "sync"

// MaxRecent bounds the anti-repetition window of recently served
// exercise identifiers and prompts.
const MaxRecent = 8

// History is a learner's recent-exercise memory. The selector reads it
// to avoid repeating the last kind or a recently served item, and
// records every served spec. All methods are safe for concurrent use;
// Record is atomic with respect to the window, so a racing pair of
// selections cannot corrupt it.
type History struct {
	mu            sync.Mutex
	lastKind      Kind
	recentIDs     []string
	recentPrompts []string
}

// LastKind returns the kind of the most recently served exercise, or ""
// before the first selection.
func (h *History) LastKind() Kind {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.lastKind
}

// RecentIDs returns a copy of the recently served item identifiers,
// oldest first.
func (h *History) RecentIDs() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.recentIDs))
	copy(out, h.recentIDs)
	return out
}

// RecentPrompts returns a copy of the recently served prompts, oldest
// first. Used for generation-side deduplication.
func (h *History) RecentPrompts() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.recentPrompts))
	copy(out, h.recentPrompts)
	return out
}

// Record notes a served spec: the kind becomes the new last kind and the
// id/prompt enter the bounded window, evicting the oldest entries.
func (h *History) Record(spec *Spec) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastKind = spec.Kind

	h.recentIDs = append(h.recentIDs, spec.ID)
	if len(h.recentIDs) > MaxRecent {
		h.recentIDs = h.recentIDs[len(h.recentIDs)-MaxRecent:]
	}

	h.recentPrompts = append(h.recentPrompts, spec.Prompt)
	if len(h.recentPrompts) > MaxRecent {
		h.recentPrompts = h.recentPrompts[len(h.recentPrompts)-MaxRecent:]
	}
}

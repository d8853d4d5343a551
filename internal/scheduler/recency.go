package scheduler

const (
	// DefaultRecencyWindow is how many recently presented cards a session
	// avoids repeating.
	DefaultRecencyWindow = 5
	// MaxSkipAttempts bounds how often a session skips a recent card before
	// presenting it anyway. Small collections inevitably repeat.
	MaxSkipAttempts = 10
)

// RecencyWindow is a bounded FIFO of recently presented card keys.
type RecencyWindow struct {
	keys []string
	size int
}

// NewRecencyWindow returns a window holding at most size keys. A size below
// one falls back to the default.
func NewRecencyWindow(size int) *RecencyWindow {
	if size < 1 {
		size = DefaultRecencyWindow
	}
	return &RecencyWindow{size: size}
}

// Push records a presented key, evicting the oldest entry when full.
func (w *RecencyWindow) Push(key string) {
	w.keys = append(w.keys, key)
	if len(w.keys) > w.size {
		w.keys = w.keys[1:]
	}
}

// Contains reports whether the key was presented recently.
func (w *RecencyWindow) Contains(key string) bool {
	for _, k := range w.keys {
		if k == key {
			return true
		}
	}
	return false
}

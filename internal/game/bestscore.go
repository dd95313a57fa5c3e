package game

import "sync"

// BestScore is the best score across all runs within one process. It is
// shared by reference between session restarts (and, on the SSH server,
// between concurrent connections), guarded by a mutex, and monotonically
// non-decreasing. It is never persisted; the value lives only as long as
// the process.
type BestScore struct {
	mu    sync.Mutex
	score int
}

// NewBestScore creates an empty best-score store.
func NewBestScore() *BestScore {
	return &BestScore{}
}

// Best returns the current best score.
func (b *BestScore) Best() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.score
}

// Record stores the given score if it beats the current best.
// It reports whether the best score was updated.
func (b *BestScore) Record(score int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if score > b.score {
		b.score = score
		return true
	}
	return false
}

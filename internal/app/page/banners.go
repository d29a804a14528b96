package page

import (
	"sync"
	"time"
)

// SuccessTimeout is how long a success banner stays visible.
const SuccessTimeout = 5 * time.Second

// Banners holds the page-level success and error messages. A success message
// clears itself after a timeout; a new success replaces the pending timer.
// An error stays until the next success or an explicit dismissal.
type Banners struct {
	mu      sync.Mutex
	timeout time.Duration
	success string
	err     string
	timer   *time.Timer
	gen     uint64
}

func NewBanners(timeout time.Duration) *Banners {
	if timeout <= 0 {
		timeout = SuccessTimeout
	}
	return &Banners{timeout: timeout}
}

func (b *Banners) Success(msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.timer != nil {
		b.timer.Stop()
	}
	b.gen++
	gen := b.gen
	b.success = msg
	b.err = ""
	b.timer = time.AfterFunc(b.timeout, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.gen == gen {
			b.success = ""
			b.timer = nil
		}
	})
}

func (b *Banners) Error(msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.err = msg
}

func (b *Banners) DismissError() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.err = ""
}

// Stop cancels the pending dismissal timer and clears the success message.
func (b *Banners) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.gen++
	b.success = ""
}

// Messages returns the current success and error text.
func (b *Banners) Messages() (success, err string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.success, b.err
}

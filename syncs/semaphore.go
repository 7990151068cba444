package syncs

import "context"

// Semaphore bounds the number of concurrent holders.
type Semaphore chan struct{}

func NewSemaphore(n int) Semaphore {
	return make(Semaphore, max(1, n))
}

func (s Semaphore) Acquire(ctx context.Context) error {
	select {
	case s <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s Semaphore) Release() {
	<-s
}

package transport

import "sync"

// StaticCall is a Call whose outcome is set by hand. Useful for transports
// that answer synchronously and for tests.
type StaticCall struct {
	done chan struct{}
	once sync.Once

	mu      sync.RWMutex
	outcome Outcome
	status  int
	body    string
	err     error
}

func NewPendingCall() *StaticCall {
	return &StaticCall{done: make(chan struct{}), outcome: InProgress}
}

func NewCompletedCall(outcome Outcome, status int, body string, err error) *StaticCall {
	c := NewPendingCall()
	c.Complete(outcome, status, body, err)
	return c
}

// Complete records the outcome. Only the first call has an effect.
func (c *StaticCall) Complete(outcome Outcome, status int, body string, err error) {
	c.once.Do(func() {
		c.mu.Lock()
		c.outcome = outcome
		c.status = status
		c.body = body
		c.err = err
		c.mu.Unlock()
		close(c.done)
	})
}

func (c *StaticCall) IsDone() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

func (c *StaticCall) Done() <-chan struct{} { return c.done }

func (c *StaticCall) Outcome() Outcome {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.outcome
}

func (c *StaticCall) StatusCode() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

func (c *StaticCall) Body() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.body
}

func (c *StaticCall) Err() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}

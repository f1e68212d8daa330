package translate

import (
	"sync"
	"time"
)

// DefaultCooldown is the pause enforced between successive successful
// translation requests.
const DefaultCooldown = 5 * time.Second

// Gate is the cooldown rate limiter shared by all translation calls in a
// session. It is a simple timer, not a token bucket: a successful
// translation arms it, and it cools down on its own once the window has
// passed. Failed or rejected attempts never arm it. The state lives in
// memory only, so a process restart clears any active cooldown.
type Gate struct {
	mu       sync.Mutex
	cooldown time.Duration
	until    time.Time
	now      func() time.Time
}

// NewGate creates a cooled-down gate with the given window.
func NewGate(cooldown time.Duration) *Gate {
	return &Gate{cooldown: cooldown, now: time.Now}
}

// TryAcquire reports whether a translation may be attempted now.
func (g *Gate) TryAcquire() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return !g.now().Before(g.until)
}

// Arm starts the cooldown window. Call it only after a successful
// translation.
func (g *Gate) Arm() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.until = g.now().Add(g.cooldown)
}

// Remaining returns how long until the gate cools down, zero when it
// already has.
func (g *Gate) Remaining() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	if d := g.until.Sub(g.now()); d > 0 {
		return d
	}
	return 0
}

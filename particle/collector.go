package particle

import (
	"sync"

	"github.com/lixenwraith/particlekit/vmath"
)

// Spawn records one SpawnParticle call as seen by a Collector.
type Spawn struct {
	Type   Type
	Pos    vmath.Vec3
	Count  int
	Offset vmath.Vec3
	Speed  float64
	Data   any
}

// Collector is a World that records every spawn call instead of rendering.
// Tests assert against the recorded calls, and offline tools use it to
// capture a shape's point set without a host. Safe for concurrent use.
type Collector struct {
	mu     sync.Mutex
	spawns []Spawn
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// SpawnParticle implements World.
func (c *Collector) SpawnParticle(t Type, pos vmath.Vec3, count int, offset vmath.Vec3, speed float64, data any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.spawns = append(c.spawns, Spawn{
		Type:   t,
		Pos:    pos,
		Count:  count,
		Offset: offset,
		Speed:  speed,
		Data:   data,
	})
}

// Spawns returns a copy of all recorded calls in order.
func (c *Collector) Spawns() []Spawn {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Spawn, len(c.spawns))
	copy(out, c.spawns)
	return out
}

// Positions returns just the spawn positions in order.
func (c *Collector) Positions() []vmath.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]vmath.Vec3, len(c.spawns))
	for i, s := range c.spawns {
		out[i] = s.Pos
	}
	return out
}

// Len returns the number of recorded calls.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.spawns)
}

// Reset discards all recorded calls.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.spawns = c.spawns[:0]
}

package engine

import (
	"github.com/lixenwraith/vector-duel/parameter"
	"github.com/lixenwraith/vector-duel/vmath"
)

// SlotID is a stable handle into the shot pool
type SlotID int

// Shot is one in-flight projectile
// Alive counts frames to expiry; 0 marks a free slot
type Shot struct {
	Alive    uint16
	Position vmath.Vec2
	Velocity vmath.Vec2
	Owner    PlayerID
}

// Live reports whether the slot is occupied
func (s *Shot) Live() bool {
	return s.Alive > 0
}

// Advance integrates position and counts down one frame
func (s *Shot) Advance() {
	s.Position = s.Position.Add(s.Velocity)
	s.Alive--
}

// ShotPool is a fixed arena of shot slots
// A slot is handed out only while free, so no two holders alias a slot
type ShotPool struct {
	slots [parameter.ShotCapacity]Shot
}

// Allocate returns the first free slot; false when every slot is live
func (p *ShotPool) Allocate() (SlotID, bool) {
	for i := range p.slots {
		if p.slots[i].Live() {
			continue
		}
		return SlotID(i), true
	}
	return -1, false
}

// Fire allocates and initialises a shot; dropped silently when the pool is full
func (p *ShotPool) Fire(owner PlayerID, pos, vel vmath.Vec2) (SlotID, bool) {
	id, ok := p.Allocate()
	if !ok {
		return id, false
	}
	p.slots[id] = Shot{
		Alive:    parameter.ShotLifetime,
		Position: pos,
		Velocity: vel,
		Owner:    owner,
	}
	return id, true
}

// Get returns the slot behind id
func (p *ShotPool) Get(id SlotID) *Shot {
	return &p.slots[id]
}

// Release frees a slot before its countdown expires
func (p *ShotPool) Release(id SlotID) {
	p.slots[id].Alive = 0
}

// Reset frees every slot
func (p *ShotPool) Reset() {
	for i := range p.slots {
		p.slots[i].Alive = 0
	}
}

// Live returns the number of occupied slots
func (p *ShotPool) Live() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].Live() {
			n++
		}
	}
	return n
}

// Cap returns the fixed capacity
func (p *ShotPool) Cap() int {
	return len(p.slots)
}

// Each calls fn for every live slot in index order
func (p *ShotPool) Each(fn func(SlotID, *Shot)) {
	for i := range p.slots {
		if p.slots[i].Live() {
			fn(SlotID(i), &p.slots[i])
		}
	}
}

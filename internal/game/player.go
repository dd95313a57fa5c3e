// Package game implements the flappy game core: the player physics,
// obstacle geometry, background obstacle generation, the session state
// machine, and the process-wide best score. It contains pure logic with no
// terminal dependencies; the platform layer drives it once per frame.
package game

import (
	"errors"

	"github.com/apetrov-dev/flappy-tui/internal/config"
)

// Player errors. All of them are expected and recovered locally;
// none is ever fatal.
var (
	// ErrAlreadyDead is returned by Flap on a dead player.
	ErrAlreadyDead = errors.New("player is already dead")
	// ErrFallingTooFast is returned by Flap above the recovery threshold.
	ErrFallingTooFast = errors.New("falling too fast to flap")
	// ErrMovementBlocked is returned by Advance when no movement is
	// possible: the player is dead, or this tick hit the top boundary.
	ErrMovementBlocked = errors.New("movement blocked")
)

// Player is the controllable entity. X is the total horizontal distance
// traveled in world coordinates; Y grows downward.
type Player struct {
	x        int
	y        int
	velocity float64
	alive    bool
	phys     config.PhysicsConfig
}

// NewPlayer creates a live player at the given world position with zero
// velocity.
func NewPlayer(x, y int, phys config.PhysicsConfig) *Player {
	return &Player{
		x:     x,
		y:     y,
		alive: true,
		phys:  phys,
	}
}

// Advance performs one physics tick: gravity accumulates until the cap,
// the player moves one column forward and falls by the truncated integer
// value of its velocity. Hitting the top boundary clamps y to zero, kills
// the player, and returns ErrMovementBlocked. A dead player does not move
// and also reports ErrMovementBlocked.
func (p *Player) Advance() error {
	if !p.alive {
		return ErrMovementBlocked
	}

	// The cap only stops accumulation; a flap can still set velocity
	// below it and let gravity build up again.
	if p.velocity < p.phys.GravityCap {
		p.velocity += p.phys.Gravity
	}

	p.x++
	p.y += int(p.velocity) // truncation toward zero

	if p.y < 0 {
		p.y = 0
		p.alive = false
		return ErrMovementBlocked
	}
	return nil
}

// Flap applies an upward impulse: velocity is assigned outright, not
// accumulated. It fails with ErrAlreadyDead on a dead player and with
// ErrFallingTooFast once velocity exceeds the recovery threshold.
func (p *Player) Flap() error {
	if !p.alive {
		return ErrAlreadyDead
	}
	if p.velocity > p.phys.MaxFlapVelocity {
		return ErrFallingTooFast
	}

	p.velocity = p.phys.FlapVelocity
	return nil
}

// Position returns the player's world coordinates.
func (p *Player) Position() (x, y int) {
	return p.x, p.y
}

// Velocity returns the current vertical velocity (positive = falling).
func (p *Player) Velocity() float64 {
	return p.velocity
}

// IsAlive reports whether the player is still alive.
func (p *Player) IsAlive() bool {
	return p.alive
}

// Kill marks the player dead.
func (p *Player) Kill() {
	p.alive = false
}

// Reset reinitializes the player at the given position, alive with zero
// velocity.
func (p *Player) Reset(x, y int) {
	p.x = x
	p.y = y
	p.velocity = 0
	p.alive = true
}

package components

import (
	"pillarrun/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Sleep thresholds
const (
	SleepVelocityThreshold = 0.3 // units/sec - below this, object might sleep
	SleepAngularThreshold  = 1.0 // deg/sec - below this, object might sleep
	SleepTimeThreshold     = 0.3 // seconds of low velocity before sleeping
)

type Rigidbody struct {
	engine.BaseComponent
	Velocity        rl.Vector3
	AngularVelocity rl.Vector3 // degrees per second on each axis
	Mass            float32
	UseGravity      bool
	IsKinematic     bool // moved by game code, ignored by the integrator

	// Sleep state - sleeping objects skip physics simulation
	IsSleeping bool
	sleepTimer float32 // time spent below velocity threshold
	CanSleep   bool    // whether this object can sleep (default true)
}

func NewRigidbody() *Rigidbody {
	return &Rigidbody{
		Mass:       1.0,
		UseGravity: true,
		CanSleep:   true,
	}
}

// NewKinematicRigidbody is the starting state for pooled entities.
func NewKinematicRigidbody() *Rigidbody {
	rb := NewRigidbody()
	rb.IsKinematic = true
	return rb
}

// SetKinematic switches between game-driven and simulated motion. Switching
// to kinematic drops any velocity the simulation left behind.
func (r *Rigidbody) SetKinematic(kinematic bool) {
	r.IsKinematic = kinematic
	if kinematic {
		r.Velocity = rl.Vector3{}
		r.AngularVelocity = rl.Vector3{}
	}
	r.Wake()
}

// Reset returns the body to the state a freshly pooled entity has.
func (r *Rigidbody) Reset() {
	r.SetKinematic(true)
}

// Wake forces the rigidbody out of sleep state
func (r *Rigidbody) Wake() {
	r.IsSleeping = false
	r.sleepTimer = 0
}

// Sleep puts the body to rest immediately.
func (r *Rigidbody) Sleep() {
	r.IsSleeping = true
	r.sleepTimer = 0
	r.Velocity = rl.Vector3{}
	r.AngularVelocity = rl.Vector3{}
}

// TrySleep checks if the rigidbody should go to sleep based on velocity
func (r *Rigidbody) TrySleep(deltaTime float32) {
	if !r.CanSleep || r.IsSleeping {
		return
	}

	speed := rl.Vector3Length(r.Velocity)
	angSpeed := rl.Vector3Length(r.AngularVelocity)

	if speed < SleepVelocityThreshold && angSpeed < SleepAngularThreshold {
		r.sleepTimer += deltaTime
		if r.sleepTimer >= SleepTimeThreshold {
			r.Sleep()
		}
	} else {
		r.sleepTimer = 0
	}
}

// Simulated reports whether the physics world should move this body.
func (r *Rigidbody) Simulated() bool {
	return !r.IsKinematic && !r.IsSleeping
}

// Package motion drives the active-tab indicator with a damped spring.
package motion

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	settlePosition = 0.05
	settleVelocity = 0.1
)

// Layout is the geometry the indicator moves across, in cells.
type Layout struct {
	BarWidth       int
	IndicatorWidth int
}

// Offsets returns the column at which the indicator starts under each tab.
// Each tab owns half of the bar and the indicator is centred in it.
func (l Layout) Offsets() [2]float64 {
	half := l.BarWidth / 2
	width := l.indicatorWidth()
	left := max((half-width)/2, 0)
	right := half + max((l.BarWidth-half-width)/2, 0)
	return [2]float64{float64(left), float64(right)}
}

func (l Layout) indicatorWidth() int {
	return min(max(l.IndicatorWidth, 0), l.BarWidth/2)
}

// Spring configures the motion. Frequency plays the role of tension and
// Damping of friction; a damping ratio below 1 overshoots slightly.
type Spring struct {
	FPS       int
	Frequency float64
	Damping   float64
}

// DefaultSpring returns the spring used when nothing is configured.
func DefaultSpring() Spring {
	return Spring{FPS: 60, Frequency: 7.0, Damping: 0.6}
}

// FrameInterval returns the time between two animation frames.
func (s Spring) FrameInterval() time.Duration {
	fps := s.FPS
	if fps <= 0 {
		fps = DefaultSpring().FPS
	}
	return time.Second / time.Duration(fps)
}

func (s Spring) normalized() Spring {
	def := DefaultSpring()
	if s.FPS <= 0 {
		s.FPS = def.FPS
	}
	if s.Frequency <= 0 {
		s.Frequency = def.Frequency
	}
	if s.Damping <= 0 {
		s.Damping = def.Damping
	}
	return s
}

// Animator moves a continuous position towards the offset of a target tab.
// It is not safe for concurrent use; the shell drives it from its event
// loop.
type Animator struct {
	spring   harmonica.Spring
	config   Spring
	layout   Layout
	offsets  [2]float64
	target   int
	position float64
	velocity float64
	moving   bool
}

// NewAnimator creates an animator resting under the first tab.
func NewAnimator(layout Layout, spring Spring) *Animator {
	spring = spring.normalized()
	a := &Animator{
		spring: harmonica.NewSpring(harmonica.FPS(spring.FPS), spring.Frequency, spring.Damping),
		config: spring,
	}
	a.setLayout(layout)
	a.position = a.offsets[0]
	return a
}

// FrameInterval returns the time between two Step calls.
func (a *Animator) FrameInterval() time.Duration {
	return a.config.FrameInterval()
}

// TransitionTo sets the tab the indicator moves to. A retarget while the
// indicator is in flight continues from the current position and velocity.
// It reports true when the caller has to start stepping the animator, that
// is when motion begins from rest. Unknown indices are ignored.
func (a *Animator) TransitionTo(index int) bool {
	if index < 0 || index >= len(a.offsets) {
		return false
	}
	a.target = index
	if a.moving {
		return false
	}
	if a.atRest() {
		a.position = a.offsets[index]
		a.velocity = 0
		return false
	}
	a.moving = true
	return true
}

// Step advances the motion by one frame and reports whether it settled.
// A settled indicator sits exactly on its destination.
func (a *Animator) Step() bool {
	if !a.moving {
		return true
	}
	dest := a.offsets[a.target]
	a.position, a.velocity = a.spring.Update(a.position, a.velocity, dest)
	if a.atRest() {
		a.position = dest
		a.velocity = 0
		a.moving = false
		return true
	}
	return false
}

// Resize recomputes the destinations for a new layout. A resting indicator
// jumps to its new destination; a moving one keeps going towards it.
func (a *Animator) Resize(layout Layout) {
	a.setLayout(layout)
	if !a.moving {
		a.position = a.offsets[a.target]
		a.velocity = 0
	}
}

func (a *Animator) setLayout(layout Layout) {
	a.layout = layout
	a.offsets = layout.Offsets()
}

func (a *Animator) atRest() bool {
	return math.Abs(a.offsets[a.target]-a.position) < settlePosition &&
		math.Abs(a.velocity) < settleVelocity
}

// Moving reports whether a transition is in flight.
func (a *Animator) Moving() bool { return a.moving }

// Target returns the tab index the indicator is heading to.
func (a *Animator) Target() int { return a.target }

// Position returns the live position.
func (a *Animator) Position() float64 { return a.position }

// Destination returns the offset of the target tab.
func (a *Animator) Destination() float64 { return a.offsets[a.target] }

// Width returns the indicator width that fits the current layout.
func (a *Animator) Width() int { return a.layout.indicatorWidth() }

// Offset returns the live position rounded to a column that keeps the
// indicator inside the bar.
func (a *Animator) Offset() int {
	limit := max(a.layout.BarWidth-a.Width(), 0)
	return min(max(int(math.Round(a.position)), 0), limit)
}

package snake

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// PatternLength is the number of leading segments the S-shape inspects.
const PatternLength = 7

// PatternBonus awards a one-time bonus for the S-shape motif, then cools
// down before re-arming. available and claimed are never both true.
type PatternBonus struct {
	available bool
	claimed   bool
	claimedAt time.Time
	cooldown  time.Duration
}

// NewPatternBonus returns an armed detector.
func NewPatternBonus(cooldown time.Duration) *PatternBonus {
	return &PatternBonus{available: true, cooldown: cooldown}
}

// Available reports whether the bonus can be claimed.
func (p *PatternBonus) Available() bool { return p.available }

// Claimed reports whether the bonus is cooling down after a claim.
func (p *PatternBonus) Claimed() bool { return p.claimed }

// Refresh re-arms a claimed bonus once the cooldown has elapsed.
// Returns true if it re-armed on this call.
func (p *PatternBonus) Refresh(now time.Time) bool {
	if !p.claimed || now.Sub(p.claimedAt) < p.cooldown {
		return false
	}
	p.claimed = false
	p.available = true
	return true
}

// Check claims the bonus if it is available and the leading segments form
// the S-shape. Detection is skipped entirely while unavailable.
func (p *PatternBonus) Check(segments []Position, now time.Time) bool {
	if !p.available || len(segments) < PatternLength {
		return false
	}
	if !MatchesSShape(segments) {
		return false
	}
	p.available = false
	p.claimed = true
	p.claimedAt = now
	return true
}

// MatchesSShape applies the S-shape rule to segments[0..6] in the
// horizontal orientation and then with the axes swapped.
//
// Taken literally the rule needs segments 0 and 1 on the same cell, which a
// body of distinct unit steps never produces.
func MatchesSShape(segments []Position) bool {
	if len(segments) < PatternLength {
		return false
	}
	var xs, ys [PatternLength]int
	for i := range PatternLength {
		xs[i] = segments[i].X
		ys[i] = segments[i].Y
	}
	return sShape(xs, ys) || sShape(ys, xs)
}

// sShape checks the horizontal orientation; a is the x axis, b the y axis.
func sShape(a, b [PatternLength]int) bool {
	return a[0] == a[1] && a[1] == a[2] &&
		a[3] == a[4] &&
		a[5] == a[6] &&
		core.Abs(a[0]-a[3]) == 1 &&
		core.Abs(a[3]-a[5]) == 1 &&
		b[0] == b[1] &&
		b[1] != b[2] &&
		b[2] == b[3] && b[3] == b[4] &&
		b[4] != b[5] &&
		b[5] == b[6]
}

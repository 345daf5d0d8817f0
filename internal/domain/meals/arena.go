package meals

import (
	"errors"
	"math"
)

var (
	ErrCombatantListFull      = errors.New("Combatant list is full, cannot add more combatants.")
	ErrInsufficientCombatants = errors.New("Two combatants must be prepped for a battle.")
)

const maxCombatants = 2

// Arena is the in-memory staging area for one battle session. It holds at
// most two combatants in insertion order and is not safe for concurrent
// use; each session owns its own instance.
type Arena struct {
	combatants []Meal
}

func NewArena() *Arena {
	return &Arena{}
}

// Stage appends a combatant, preserving insertion order.
func (a *Arena) Stage(meal Meal) error {
	if len(a.combatants) >= maxCombatants {
		return ErrCombatantListFull
	}
	a.combatants = append(a.combatants, meal)
	return nil
}

// Clear empties the staging list. Clearing an empty arena is a no-op.
func (a *Arena) Clear() {
	a.combatants = a.combatants[:0]
}

// Combatants returns a snapshot of the staged meals.
func (a *Arena) Combatants() []Meal {
	out := make([]Meal, len(a.combatants))
	copy(out, a.combatants)
	return out
}

// Outcome is the result of a resolved battle. The winner remains staged in
// the arena, the loser has been evicted.
type Outcome struct {
	Winner      Meal
	Loser       Meal
	WinnerScore float64
	LoserScore  float64
	Delta       float64
	Draw        float64
}

// Resolve decides a battle between the two staged combatants. draw is
// invoked exactly once for a random value in [0,1). The normalized score
// gap delta = |sA-sB|/100 sets the higher scorer's win chance: when the
// draw lands below delta the higher scorer wins, otherwise the other
// combatant does. delta is not clamped, so a score gap of 100 or more
// makes the higher scorer win every draw.
func (a *Arena) Resolve(draw func() float64) (Outcome, error) {
	if len(a.combatants) < maxCombatants {
		return Outcome{}, ErrInsufficientCombatants
	}

	r := draw()
	first, second := a.combatants[0], a.combatants[1]
	scoreFirst := Score(first)
	scoreSecond := Score(second)
	delta := math.Abs(scoreFirst-scoreSecond) / 100

	higher, lower := second, first
	higherScore, lowerScore := scoreSecond, scoreFirst
	if scoreFirst > scoreSecond {
		higher, lower = first, second
		higherScore, lowerScore = scoreFirst, scoreSecond
	}

	out := Outcome{Delta: delta, Draw: r}
	if r < delta {
		out.Winner, out.Loser = higher, lower
		out.WinnerScore, out.LoserScore = higherScore, lowerScore
	} else {
		out.Winner, out.Loser = lower, higher
		out.WinnerScore, out.LoserScore = lowerScore, higherScore
	}

	a.combatants = a.combatants[:0]
	a.combatants = append(a.combatants, out.Winner)
	return out, nil
}

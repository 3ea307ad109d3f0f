package services

import (
	"time"

	"github.com/zachhersick/macro-muse-mvp/models"
)

// MacroTotals is a set of per-macro amounts: calories in kcal, the rest in
// grams. It doubles as a goal, a consumed total, and a remaining amount.
type MacroTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// ProgressPct is percentage-of-goal per macro, unclamped: values over 100
// mean the goal was exceeded. Callers decide whether to cap visually.
type ProgressPct struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// DefaultGoal is the fallback target used when a user has no active goal row.
func DefaultGoal() MacroTotals {
	return MacroTotals{Calories: 2000, Protein: 150, Carbs: 200, Fat: 65}
}

// ComputeConsumed sums the macro fields over a set of food logs.
// The sum is commutative, so row order does not matter; an empty or nil
// slice yields the zero total.
func ComputeConsumed(logs []models.FoodLog) MacroTotals {
	var total MacroTotals
	for _, l := range logs {
		total.Calories += l.Calories
		total.Protein += l.Protein
		total.Carbs += l.Carbs
		total.Fat += l.Fat
	}
	return total
}

// ComputeRemaining returns per-macro max(0, goal-consumed). Over-goal
// state is reported through ProgressPercent, never as a negative remainder.
func ComputeRemaining(goal, consumed MacroTotals) MacroTotals {
	return MacroTotals{
		Calories: clampZero(goal.Calories - consumed.Calories),
		Protein:  clampZero(goal.Protein - consumed.Protein),
		Carbs:    clampZero(goal.Carbs - consumed.Carbs),
		Fat:      clampZero(goal.Fat - consumed.Fat),
	}
}

// ProgressPercent computes consumed/goal*100 per macro. Goal fields are
// form-validated positive; a non-positive field yields 0 rather than Inf.
func ProgressPercent(consumed, goal MacroTotals) ProgressPct {
	return ProgressPct{
		Calories: pct(consumed.Calories, goal.Calories),
		Protein:  pct(consumed.Protein, goal.Protein),
		Carbs:    pct(consumed.Carbs, goal.Carbs),
		Fat:      pct(consumed.Fat, goal.Fat),
	}
}

func clampZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func pct(consumed, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return consumed / goal * 100
}

// DayWindow returns [start, end) covering the calendar day of t in the
// server's local time zone. All "today" filters go through this one helper
// so the day-boundary policy lives in a single place. The end bound is the
// next local midnight, not start+24h: DST-transition days are 23 or 25
// hours long.
func DayWindow(t time.Time) (time.Time, time.Time) {
	tt := t.In(time.Local)
	start := time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 0, 1)
}

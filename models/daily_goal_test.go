package models

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The one-active-goal-per-user invariant is enforced by a partial unique
// index declared on the model; this guards the declaration itself.
func TestDailyGoalDeclaresOneActiveIndex(t *testing.T) {
	field, ok := reflect.TypeOf(DailyGoal{}).FieldByName("UserID")
	require.True(t, ok)

	tag := field.Tag.Get("gorm")
	assert.Contains(t, tag, "idx_daily_goals_one_active")
	assert.Contains(t, tag, "unique")
	assert.Contains(t, tag, "where:is_active")
}

package converge_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/spherelab/converge"
)

// TestTracker_ReachesAfterStreak needs exactly DefaultStreak quiet steps.
func TestTracker_ReachesAfterStreak(t *testing.T) {
	tr := converge.New()
	for i := 1; i < converge.DefaultStreak; i++ {
		assert.False(t, tr.Observe(10, 10), "step %d", i)
		assert.Equal(t, i, tr.Streak())
	}
	assert.True(t, tr.Observe(10, 10))
	assert.True(t, tr.NearConverged())
	assert.True(t, tr.Observe(10, 10), "stays true while sustained")
}

// TestTracker_SingleNoisyStepResets drops the flag on the next evaluation.
func TestTracker_SingleNoisyStepResets(t *testing.T) {
	tr := converge.New(converge.WithStreak(3))
	for i := 0; i < 3; i++ {
		tr.Observe(1, 1)
	}
	assert.True(t, tr.NearConverged())

	assert.False(t, tr.Observe(1, 2))
	assert.Equal(t, 0, tr.Streak())
	assert.False(t, tr.NearConverged())
}

// TestTracker_ThresholdIsStrict: a change equal to the threshold is noisy.
func TestTracker_ThresholdIsStrict(t *testing.T) {
	tr := converge.New(converge.WithThreshold(0.5), converge.WithStreak(1))
	assert.False(t, tr.Observe(0, 0.5))
	assert.True(t, tr.Observe(0, 0.25))
}

// TestRelativeChange uses max(1,|prev|) as the denominator.
func TestRelativeChange(t *testing.T) {
	assert.Equal(t, 0.5, converge.RelativeChange(0.25, 0.75), "small |prev| divides by 1")
	assert.Equal(t, 0.01, converge.RelativeChange(-100, -99))
	assert.Equal(t, 0.0, converge.RelativeChange(3, 3))
}

// TestTracker_Reset clears state.
func TestTracker_Reset(t *testing.T) {
	tr := converge.New(converge.WithStreak(1))
	tr.Observe(1, 1)
	assert.True(t, tr.NearConverged())
	tr.Reset()
	assert.False(t, tr.NearConverged())
	assert.Equal(t, 0, tr.Streak())
	assert.Equal(t, converge.DefaultThreshold, tr.Threshold())
	assert.Equal(t, 1, tr.Need())
}

// TestOptionsPanic guards against nonsensical configuration.
func TestOptionsPanic(t *testing.T) {
	assert.Panics(t, func() { converge.WithThreshold(0) })
	assert.Panics(t, func() { converge.WithThreshold(math.NaN()) })
	assert.Panics(t, func() { converge.WithThreshold(math.Inf(1)) })
	assert.Panics(t, func() { converge.WithStreak(0) })
}

// TestTracker_NaNEnergyIsNoisy: a NaN relative change never counts as quiet.
func TestTracker_NaNEnergyIsNoisy(t *testing.T) {
	tr := converge.New(converge.WithStreak(1))
	assert.False(t, tr.Observe(math.NaN(), 1))
}

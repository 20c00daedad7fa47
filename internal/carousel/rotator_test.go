package carousel

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotator_advancesAndWraps(t *testing.T) {
	var advances atomic.Int32
	r := NewRotator(5*time.Millisecond, func(int) { advances.Add(1) })
	defer r.Stop()

	r.SetCount(3)

	require.Eventually(t, func() bool { return advances.Load() >= 4 }, time.Second, time.Millisecond)
	assert.Less(t, r.Index(), 3, "index wraps around the banner count")
}

func TestRotator_idleWithSingleBanner(t *testing.T) {
	var advances atomic.Int32
	r := NewRotator(time.Millisecond, func(int) { advances.Add(1) })
	defer r.Stop()

	r.SetCount(1)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(0), advances.Load())
}

func TestRotator_countChangeResetsIndex(t *testing.T) {
	r := NewRotator(time.Hour, nil)
	defer r.Stop()

	r.SetCount(5)
	r.SetCount(2)
	assert.Equal(t, 0, r.Index())
}

func TestRotator_stopHaltsAdvancing(t *testing.T) {
	var advances atomic.Int32
	r := NewRotator(2*time.Millisecond, func(int) { advances.Add(1) })

	r.SetCount(3)
	require.Eventually(t, func() bool { return advances.Load() >= 1 }, time.Second, time.Millisecond)

	r.Stop()
	time.Sleep(10 * time.Millisecond) // let a callback already past the stop check land
	settled := advances.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, settled, advances.Load())

	// SetCount after Stop must not resurrect the interval
	r.SetCount(4)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, settled, advances.Load())
}

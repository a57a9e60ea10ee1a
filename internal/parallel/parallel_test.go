package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForVisitsEveryIteration(t *testing.T) {
	var counter int64
	For(1000, DefaultConfig(), func(_ int) {
		atomic.AddInt64(&counter, 1)
	})
	assert.Equal(t, int64(1000), counter)
}

func TestForCoversFullRangeExactlyOnce(t *testing.T) {
	seen := make([]int32, 64)
	For(len(seen), Config{Enabled: true, Workers: 8, MinIters: 2}, func(i int) {
		atomic.AddInt32(&seen[i], 1)
	})
	for i, v := range seen {
		assert.Equal(t, int32(1), v, "iteration %d", i)
	}
}

func TestForDisabledRunsInline(t *testing.T) {
	var counter int64
	For(100, Config{Enabled: false}, func(_ int) {
		counter++ // no atomics needed on the sequential path
	})
	assert.Equal(t, int64(100), counter)
}

func TestForSmallRangeStaysSequential(t *testing.T) {
	var counter int64
	cfg := Config{Enabled: true, Workers: 4, MinIters: 10}
	For(5, cfg, func(_ int) {
		counter++
	})
	assert.Equal(t, int64(5), counter)
}

func TestForZeroIterations(t *testing.T) {
	called := false
	For(0, DefaultConfig(), func(_ int) { called = true })
	assert.False(t, called)
}

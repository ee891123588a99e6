package core

import (
	"sync"
	"time"

	"github.com/spaghettifunk/spatial/engine/containers"
)

const AVG_COUNT uint8 = 30

// MetricsState keeps a rolling window of culling pass timings together with the
// counters of the most recent pass.
type MetricsState struct {
	mutex sync.Mutex

	times   *containers.RingQueue[time.Duration]
	passes  uint64
	visible int
	culled  int
}

func NewMetrics(window int) *MetricsState {
	if window <= 0 {
		window = int(AVG_COUNT)
	}
	return &MetricsState{
		times: containers.NewRingQueue[time.Duration](window),
	}
}

// Record stores the timing and outcome of one culling pass.
func (ms *MetricsState) Record(elapsed time.Duration, visible, culled int) {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	ms.times.Push(elapsed)
	ms.passes++
	ms.visible = visible
	ms.culled = culled
}

// Average returns the mean pass duration over the window.
func (ms *MetricsState) Average() time.Duration {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	if ms.times.IsEmpty() {
		return 0
	}
	var total time.Duration
	ms.times.Each(func(d time.Duration) {
		total += d
	})
	return total / time.Duration(ms.times.Len())
}

func (ms *MetricsState) Passes() uint64 {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()
	return ms.passes
}

// Last returns the visible and culled counts of the most recent pass.
func (ms *MetricsState) Last() (int, int) {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()
	return ms.visible, ms.culled
}

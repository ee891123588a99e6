package systems

import (
	"fmt"
	"sync"

	"github.com/spaghettifunk/spatial/engine/core"
)

// JobTask is one unit of work. OnFailure runs when Run returns an error,
// OnComplete when it does not; OnCompletionCallback runs in both cases.
type JobTask struct {
	Run                  func() error
	OnComplete           func()
	OnFailure            func(err error)
	OnCompletionCallback func()
}

/**
 * @brief A fixed pool of workers draining a shared job queue. Jobs run in no
 * particular order; callers that need to wait use OnCompletionCallback.
 */
type JobSystem struct {
	numWorkers int
	jobQueue   chan JobTask
	wg         sync.WaitGroup
	shutdown   sync.Once
}

var ErrNoWorkers = fmt.Errorf("attempting to create worker pool with less than 1 worker: %w", core.ErrInvalidArgument)
var ErrNegativeChannelSize = fmt.Errorf("attempting to create worker pool with a negative channel size: %w", core.ErrInvalidArgument)

func NewJobSystem(numWorkers int, channelSize int) (*JobSystem, error) {
	if numWorkers <= 0 {
		return nil, ErrNoWorkers
	}
	if channelSize < 0 {
		return nil, ErrNegativeChannelSize
	}

	js := &JobSystem{
		numWorkers: numWorkers,
		jobQueue:   make(chan JobTask, channelSize),
	}
	js.start()

	core.LogDebug("job system started with %d workers", numWorkers)
	return js, nil
}

func (js *JobSystem) start() {
	for i := 0; i < js.numWorkers; i++ {
		js.wg.Add(1)
		go func() {
			defer js.wg.Done()
			for job := range js.jobQueue {
				js.run(job)
			}
		}()
	}
}

func (js *JobSystem) run(job JobTask) {
	if job.OnCompletionCallback != nil {
		defer job.OnCompletionCallback()
	}
	if err := job.Run(); err != nil {
		core.LogError("job failed: %s", err.Error())
		if job.OnFailure != nil {
			job.OnFailure(err)
		}
		return
	}
	if job.OnComplete != nil {
		job.OnComplete()
	}
}

func (js *JobSystem) Workers() int {
	return js.numWorkers
}

/**
 * @brief Shuts the job system down, waiting for queued jobs to finish. Safe to
 * call more than once; Submit must not be called afterwards.
 */
func (js *JobSystem) Shutdown() error {
	js.shutdown.Do(func() {
		close(js.jobQueue)
		js.wg.Wait()
	})
	return nil
}

/**
 * @brief Submits the provided job to be queued for execution. Blocks while the
 * queue is full.
 * @param jt The description of the job to be executed.
 */
func (js *JobSystem) Submit(jt JobTask) {
	js.jobQueue <- jt
}

package culling

import (
	"sync"

	"github.com/google/uuid"
	"github.com/spaghettifunk/spatial/engine/core"
	"github.com/spaghettifunk/spatial/engine/math"
	"github.com/spaghettifunk/spatial/engine/systems"
)

// parallelThreshold is the object count below which a pass stays on the
// calling goroutine even when workers are configured.
const parallelThreshold = 512

// Visibility is the outcome of testing one object against the frustum.
type Visibility struct {
	ID   uuid.UUID
	Name string
	// Containment is Contains or Intersects for visible objects. Objects with
	// an undefined volume report Intersects.
	Containment math.ContainmentType
	// Undefined is set when the volume had a NaN component and was kept
	// without being tested.
	Undefined bool
}

type Result struct {
	Visible []Visibility
	Culled  []uuid.UUID
}

/**
 * @brief Culls scene objects against a view frustum and records the timing of
 * every pass in a rolling window. Large passes are split across a job system
 * when more than one worker is configured.
 */
type Culler struct {
	margin  float64
	clock   *core.Clock
	metrics *core.MetricsState
	jobs    *systems.JobSystem
}

func NewCuller(cfg core.CullingConfig) *Culler {
	c := &Culler{
		margin:  cfg.Tolerance,
		clock:   core.NewClock(),
		metrics: core.NewMetrics(cfg.Window),
	}
	if cfg.Workers > 1 {
		jobs, err := systems.NewJobSystem(cfg.Workers, cfg.Workers)
		if err != nil {
			core.LogWarn("culling on the calling goroutine: %s", err.Error())
		} else {
			c.jobs = jobs
		}
	}
	return c
}

// Close stops the worker pool, if any. Later passes run on the calling
// goroutine. Close must not run concurrently with Cull.
func (c *Culler) Close() error {
	if c.jobs == nil {
		return nil
	}
	jobs := c.jobs
	c.jobs = nil
	return jobs.Shutdown()
}

func (c *Culler) Metrics() *core.MetricsState {
	return c.metrics
}

func (c *Culler) classify(frustum math.BoundingFrustum[float64], o Object) math.ContainmentType {
	if o.Kind == KindSphere {
		sphere := o.Sphere
		sphere.Radius += c.margin
		return frustum.ContainsSphere(sphere)
	}
	box := o.Box
	box.Min = box.Min.Sub(math.SplatVec3(c.margin))
	box.Max = box.Max.Add(math.SplatVec3(c.margin))
	return frustum.ContainsBox(box)
}

type outcome struct {
	containment math.ContainmentType
	undefined   bool
}

func (c *Culler) classifyRange(frustum math.BoundingFrustum[float64], objects []Object, outcomes []outcome) {
	for i, o := range objects {
		if o.HasNaN() {
			core.LogDebug("object %s (%s) has an undefined volume, not culled", o.ID, o.Name)
			outcomes[i] = outcome{containment: math.Intersects, undefined: true}
			continue
		}
		outcomes[i] = outcome{containment: c.classify(frustum, o)}
	}
}

// classifyAll fills one outcome per object, in chunks on the job system for
// large passes.
func (c *Culler) classifyAll(frustum math.BoundingFrustum[float64], objects []Object) []outcome {
	outcomes := make([]outcome, len(objects))
	if c.jobs == nil || len(objects) < parallelThreshold {
		c.classifyRange(frustum, objects, outcomes)
		return outcomes
	}

	workers := c.jobs.Workers()
	chunk := (len(objects) + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < len(objects); start += chunk {
		start, end := start, min(start+chunk, len(objects))
		wg.Add(1)
		c.jobs.Submit(systems.JobTask{
			Run: func() error {
				c.classifyRange(frustum, objects[start:end], outcomes[start:end])
				return nil
			},
			OnCompletionCallback: wg.Done,
		})
	}
	wg.Wait()
	return outcomes
}

/**
 * @brief Runs one culling pass.
 *
 * An object whose volume has a NaN component cannot be classified and is
 * never culled. A frustum plane with undefined components classifies every
 * volume as Intersecting, so the far plane of an infinite projection culls
 * nothing.
 */
func (c *Culler) Cull(frustum math.BoundingFrustum[float64], objects []Object) Result {
	c.clock.Start()

	var result Result
	for i, out := range c.classifyAll(frustum, objects) {
		o := objects[i]
		if out.containment == math.Disjoint {
			result.Culled = append(result.Culled, o.ID)
			continue
		}
		result.Visible = append(result.Visible, Visibility{ID: o.ID, Name: o.Name, Containment: out.containment, Undefined: out.undefined})
	}

	c.clock.Update()
	c.clock.Stop()
	c.metrics.Record(c.clock.Elapsed(), len(result.Visible), len(result.Culled))
	return result
}

// CullScene culls the scene's objects against its camera.
func (c *Culler) CullScene(scene *Scene) Result {
	result := c.Cull(scene.Camera.Frustum(), scene.Objects)
	core.LogInfo("culling pass: %d visible, %d culled, avg %s", len(result.Visible), len(result.Culled), c.metrics.Average())
	return result
}

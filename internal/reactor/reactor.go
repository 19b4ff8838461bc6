package reactor

import "fmt"

// CoreID is a dense, non-negative core index in [0, N), stable for the
// process lifetime.
type CoreID int

// queueSize is the per-core task buffer. A reactor never blocks a
// submitter while the buffer has room; when it is full, submit blocks,
// which is the reactor-level half of the backpressure story (the
// submission-group half is SubmissionGroup, below).
const queueSize = 4096

// Reactor is one goroutine owning a single core's task queue. Tasks
// submitted to a Reactor run one at a time, in the order they were
// submitted: operations dispatched in program order by a single
// submitter arrive at the destination core in that same order.
type Reactor struct {
	id    CoreID
	tasks chan func()
	done  chan struct{}
}

func newReactor(id CoreID) *Reactor {
	r := &Reactor{
		id:    id,
		tasks: make(chan func(), queueSize),
		done:  make(chan struct{}),
	}
	go r.run()
	return r
}

func (r *Reactor) run() {
	defer close(r.done)
	for fn := range r.tasks {
		fn()
	}
}

// submit enqueues fn to run on this reactor's goroutine. It blocks only
// if the reactor's queue is momentarily full.
func (r *Reactor) submit(fn func()) {
	r.tasks <- fn
}

func (r *Reactor) shutdown() {
	close(r.tasks)
	<-r.done
}

// ID returns the reactor's core id.
func (r *Reactor) ID() CoreID {
	return r.id
}

// Executor owns one Reactor per core and implements the cross-core
// primitives InvokeOn (package-level generic function, below) and
// SubmitTo.
type Executor struct {
	reactors []*Reactor
}

// NewExecutor starts numCores reactors, numbered 0..numCores-1.
func NewExecutor(numCores int) *Executor {
	if numCores <= 0 {
		panic("reactor: NewExecutor requires numCores > 0")
	}

	reactors := make([]*Reactor, numCores)
	for i := range reactors {
		reactors[i] = newReactor(CoreID(i))
	}

	return &Executor{reactors: reactors}
}

// NumCores returns the number of cores this executor manages.
func (ex *Executor) NumCores() int {
	return len(ex.reactors)
}

// SubmitTo is the fire-and-forget one-way notification primitive used by
// the two-stage offset commit to resolve the caller's dispatched signal
// from the destination core without waiting for a reply.
func (ex *Executor) SubmitTo(core CoreID, fn func()) {
	ex.reactor(core).submit(fn)
}

func (ex *Executor) reactor(core CoreID) *Reactor {
	if int(core) < 0 || int(core) >= len(ex.reactors) {
		panic(fmt.Sprintf("reactor: core %d out of range [0,%d)", core, len(ex.reactors)))
	}
	return ex.reactors[core]
}

// Shutdown drains and stops every reactor, waiting for in-flight tasks
// to finish. It does not cancel anything; in-flight work always runs to
// completion.
func (ex *Executor) Shutdown() {
	for _, r := range ex.reactors {
		r.shutdown()
	}
}

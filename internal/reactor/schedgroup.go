package reactor

import "runtime"

// SchedulingGroup is a named CPU-accounting and preemption-class handle.
// Routed work runs "inside" a scheduling group; here that means every
// InvokeOn call enters the group, which yields to the Go scheduler once
// before its task is enqueued, modeling entry into a scheduling group
// as a potential suspension point without pretending Go has Seastar's
// CPU-quota preemption. Entering a group is not recorded anywhere; Name
// is not used by this package's metrics or logs.
type SchedulingGroup struct {
	Name string
}

// NewSchedulingGroup returns a scheduling group identified by name. It
// confers no additional isolation beyond Go's own goroutine scheduler.
func NewSchedulingGroup(name string) *SchedulingGroup {
	return &SchedulingGroup{Name: name}
}

// Enter marks entry into the scheduling group, the suspension point
// before a cross-core task is enqueued. Go's runtime.Gosched offers the
// scheduler a chance to run other goroutines before the caller proceeds.
func (sg *SchedulingGroup) Enter() {
	if sg == nil {
		return
	}
	runtime.Gosched()
}

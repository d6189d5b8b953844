// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"container/heap"
	"runtime/debug"
	"strconv"
)

// Time is a simulation time in simulation ticks.
//
type Time uint64

type eventKind uint8

const (
	evGeneric eventKind = iota
	evVec4
	evVec8
	evReal
	evSync
)

var eventKindNames = [...]string{"generic", "vec4", "vec8", "real", "sync"}

type event struct {
	t    Time
	seq  uint64
	kind eventKind
	ptr  Ptr
	v4   Vector4
	v8   Vector8
	r    float64
	run  Runner
	fn   func(*Network)
}

// eventQueue orders events by time, then by scheduling order.
type eventQueue []*event

func (q eventQueue) Len() int { return len(q) }
func (q eventQueue) Less(i, j int) bool {
	if q[i].t != q[j].t {
		return q[i].t < q[j].t
	}
	return q[i].seq < q[j].seq
}
func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *eventQueue) Push(x interface{}) { *q = append(*q, x.(*event)) }

func (q *eventQueue) Pop() interface{} {
	old := *q
	e := old[len(old)-1]
	old[len(old)-1] = nil
	*q = old[:len(old)-1]
	return e
}

func (q eventQueue) peek() *event {
	if len(q) == 0 {
		return nil
	}
	return q[0]
}

type scheduler struct {
	now    Time
	seq    uint64
	active eventQueue
	sync   eventQueue
	stop   bool
	count  uint64
}

func (s *scheduler) push(q *eventQueue, e *event) {
	e.seq = s.seq
	s.seq++
	heap.Push(q, e)
}

// next pops the next event to run. Active events at a given time always run
// before read-only sync events of the same time.
//
func (s *scheduler) next() *event {
	a, y := s.active.peek(), s.sync.peek()
	switch {
	case a == nil && y == nil:
		return nil
	case y == nil || a != nil && a.t <= y.t:
		return heap.Pop(&s.active).(*event)
	}
	return heap.Pop(&s.sync).(*event)
}

func (s *scheduler) nextTime() (Time, bool) {
	a, y := s.active.peek(), s.sync.peek()
	switch {
	case a == nil && y == nil:
		return 0, false
	case y == nil || a != nil && a.t <= y.t:
		return a.t, true
	}
	return y.t, true
}

// Now returns the current simulation time.
//
func (n *Network) Now() Time { return n.sched.now }

// Pending returns the number of events waiting in the queue.
//
func (n *Network) Pending() int { return n.sched.active.Len() + n.sched.sync.Len() }

// Dispatched returns the number of events run since the network was created.
//
func (n *Network) Dispatched() uint64 { return n.sched.count }

// ScheduleGeneric schedules r to run after delay. Generic events at the same
// time run in the order they were scheduled. It is the caller's
// responsibility not to schedule the same runner more than once per time step.
//
func (n *Network) ScheduleGeneric(r Runner, delay Time) {
	n.sched.push(&n.sched.active, &event{t: n.sched.now + delay, kind: evGeneric, run: r})
}

// ScheduleVec4 schedules the delivery of v to port p after delay.
//
func (n *Network) ScheduleVec4(p Ptr, delay Time, v Vector4) {
	n.sched.push(&n.sched.active, &event{t: n.sched.now + delay, kind: evVec4, ptr: p, v4: v})
}

// ScheduleVec8 schedules the delivery of v to port p after delay.
//
func (n *Network) ScheduleVec8(p Ptr, delay Time, v Vector8) {
	n.sched.push(&n.sched.active, &event{t: n.sched.now + delay, kind: evVec8, ptr: p, v8: v})
}

// ScheduleReal schedules the delivery of v to port p after delay.
//
func (n *Network) ScheduleReal(p Ptr, delay Time, v float64) {
	n.sched.push(&n.sched.active, &event{t: n.sched.now + delay, kind: evReal, ptr: p, r: v})
}

// ScheduleSync schedules fn to run after delay, once all the other events of
// that time step have run. This is where monitors should sample nets.
//
// Events scheduled by fn with a zero delay run before the next sync callback.
//
func (n *Network) ScheduleSync(delay Time, fn func(*Network)) {
	n.sched.push(&n.sched.sync, &event{t: n.sched.now + delay, kind: evSync, fn: fn})
}

// Stop makes Run return after the current event. Pending events are kept.
//
func (n *Network) Stop() { n.sched.stop = true }

// Step runs the next event in the queue and advances the simulation time
// accordingly. It returns false if the queue is empty.
//
// If a functor violates a representation contract, the *ContractError is
// returned and the run should be considered aborted. Any other panic is
// raised again as a *FunctorPanic.
//
func (n *Network) Step() (ok bool, err error) {
	e := n.sched.next()
	if e == nil {
		return false, nil
	}
	defer func() {
		if r := recover(); r != nil {
			ce, isCE := r.(*ContractError)
			if !isCE {
				panic(&FunctorPanic{Value: r, Stack: debug.Stack()})
			}
			err = ce
		}
	}()
	n.sched.now = e.t
	n.sched.count++
	if n.trace {
		n.log.Printf("t=%d %s %s", e.t, eventKindNames[e.kind], e.describe())
	}
	switch e.kind {
	case evGeneric:
		e.run.Run(n)
	case evVec4:
		n.DeliverVec4(e.ptr, e.v4)
	case evVec8:
		n.DeliverVec8(e.ptr, e.v8)
	case evReal:
		n.DeliverReal(e.ptr, e.r)
	case evSync:
		e.fn(n)
	}
	return true, nil
}

// Run runs the simulation until the queue is empty, the next event is past
// the until time or Stop is called.
//
// When the run stops because of the time limit, the simulation time is
// advanced to until. Events past the limit are left in the queue and a later
// call to Run will resume from there.
//
func (n *Network) Run(until Time) error {
	n.sched.stop = false
	for !n.sched.stop {
		t, ok := n.sched.nextTime()
		if !ok {
			return nil
		}
		if t > until {
			if n.sched.now < until {
				n.sched.now = until
			}
			return nil
		}
		if _, err := n.Step(); err != nil {
			return err
		}
	}
	return nil
}

// RunAll runs the simulation until the queue is empty or Stop is called.
//
func (n *Network) RunAll() error {
	return n.Run(^Time(0))
}

func (e *event) describe() string {
	switch e.kind {
	case evVec4:
		return e.ptr.String() + " " + e.v4.String()
	case evVec8:
		return e.ptr.String() + " " + e.v8.String()
	case evReal:
		return e.ptr.String() + " " + formatReal(e.r)
	}
	return ""
}

func formatReal(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

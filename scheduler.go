package vlist

// Scheduler is a cooperative single-threaded task queue. Deferred tasks
// run on the next turn, in FIFO order. There is no parallelism: the host
// decides when a turn happens by calling Drain.
type Scheduler struct {
	tasks []func()
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Defer enqueues fn for the next turn.
func (s *Scheduler) Defer(fn func()) {
	s.tasks = append(s.tasks, fn)
}

// Pending returns the number of queued tasks.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Drain runs queued tasks until none remain. Tasks deferred while
// draining run in the same drain, after everything queued before them.
func (s *Scheduler) Drain() {
	for len(s.tasks) > 0 {
		fn := s.tasks[0]
		s.tasks = s.tasks[1:]
		fn()
	}
}

package game

import (
	"sync"
	"time"
)

// Runner ticks a Session on its own goroutine and publishes a Snapshot
// after every tick. Consumers that fall behind see only the latest frame.
type Runner struct {
	session   *Session
	snapshots chan Snapshot
	errs      chan error
	done      chan struct{}
	doneOnce  sync.Once
	control   chan bool
	wg        sync.WaitGroup
	mutex     sync.RWMutex
	running   bool
	interval  time.Duration
	onTick    func(Snapshot)
}

// NewRunner wraps s. An interval of zero ticks as fast as possible.
func NewRunner(s *Session, interval time.Duration) *Runner {
	return &Runner{
		session:   s,
		snapshots: make(chan Snapshot, 1),
		errs:      make(chan error, 1),
		done:      make(chan struct{}),
		control:   make(chan bool, 1),
		interval:  interval,
	}
}

// OnTick registers a callback invoked synchronously after each tick, before
// the snapshot is published. It must be set before Start.
func (r *Runner) OnTick(fn func(Snapshot)) {
	r.onTick = fn
}

// Start launches the tick loop. It does nothing once the session is done.
func (r *Runner) Start() {
	r.mutex.Lock()
	if r.running || r.session.Done() {
		r.mutex.Unlock()
		return
	}
	r.running = true
	r.mutex.Unlock()

	r.wg.Add(1)
	go r.loop()
}

// Stop halts the loop and waits for it to exit. It is safe to call after
// the session has finished on its own.
func (r *Runner) Stop() {
	r.mutex.Lock()
	running := r.running
	r.running = false
	r.mutex.Unlock()

	if running {
		select {
		case r.control <- true:
		default:
		}
	}
	r.wg.Wait()
}

// Snapshots delivers the most recent frame.
func (r *Runner) Snapshots() <-chan Snapshot {
	return r.snapshots
}

// Errors delivers stats persistence failures. The loop keeps running.
func (r *Runner) Errors() <-chan error {
	return r.errs
}

// Done is closed once every run of the session has finished.
func (r *Runner) Done() <-chan struct{} {
	return r.done
}

// Session returns the wrapped session. Callers must not tick it while the
// runner is active.
func (r *Runner) Session() *Session {
	return r.session
}

func (r *Runner) publish(snap Snapshot) {
	select {
	case r.snapshots <- snap:
	default:
		// Drop the stale frame and keep the newest one.
		select {
		case <-r.snapshots:
		default:
		}
		select {
		case r.snapshots <- snap:
		default:
		}
	}
}

func (r *Runner) loop() {
	defer r.wg.Done()

	var tick <-chan time.Time
	if r.interval > 0 {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		if tick != nil {
			select {
			case <-r.control:
				return
			case <-tick:
			}
		} else {
			select {
			case <-r.control:
				return
			default:
			}
		}

		r.mutex.Lock()
		event, err := r.session.Tick()
		snap := r.session.Snapshot(event)
		finished := r.session.Done()
		r.mutex.Unlock()

		if err != nil {
			select {
			case r.errs <- err:
			default:
			}
		}
		if r.onTick != nil {
			r.onTick(snap)
		}
		r.publish(snap)

		if finished {
			r.mutex.Lock()
			r.running = false
			r.mutex.Unlock()
			r.doneOnce.Do(func() { close(r.done) })
			return
		}
	}
}

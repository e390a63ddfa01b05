package backend

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/atomicstack/checklist/internal/checklist"
	"github.com/atomicstack/checklist/internal/rows"
)

// Event conveys freshly loaded rows or the error that prevented loading them.
type Event struct {
	Path string
	Rows []*checklist.Record
	Err  error
}

type stamp struct {
	modTime time.Time
	size    int64
	missing bool
}

func (s stamp) same(other stamp) bool {
	return s.missing == other.missing && s.size == other.size && s.modTime.Equal(other.modTime)
}

func stampOf(path string) stamp {
	info, err := os.Stat(path)
	if err != nil {
		return stamp{missing: true}
	}
	return stamp{modTime: info.ModTime(), size: info.Size()}
}

// Watcher polls a rows file at a fixed interval and publishes an event each
// time its modification time or size changes.
type Watcher struct {
	path     string
	interval time.Duration
	throttle *throttle

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts watching path. The file's current state is the baseline;
// only later changes produce events.
func NewWatcher(path string, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		interval: interval,
		throttle: newThrottle(250 * time.Millisecond),
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 4),
	}

	w.wg.Add(1)
	go w.poll(stampOf(path))

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of reload events. It is closed after Stop once the
// poller exits.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current load completes;
// use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller has exited and the events channel is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) poll(last stamp) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
		}
		current := stampOf(w.path)
		if current.same(last) {
			continue
		}
		last = current
		w.throttle.wait()
		loaded, err := rows.Load(w.path, nil)
		evt := Event{Path: w.path, Rows: loaded, Err: err}
		select {
		case <-w.ctx.Done():
			return
		case w.events <- evt:
		}
	}
}

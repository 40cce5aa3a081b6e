// Package scheduler drives per-frame rendering and reacts to host resizes.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Xordas/ScreenX/logging"
)

var logCtx = logging.PackageCtx("scheduler")

// DefaultFrameInterval approximates a 60 Hz display refresh.
const DefaultFrameInterval = time.Second / 60

// FrameFunc renders one frame for the time elapsed since the scheduler started.
type FrameFunc func(elapsed time.Duration)

// ResizeFunc is called when the host reports a size change.
type ResizeFunc func()

type Option func(*Scheduler)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) {
		s.now = now
	}
}

// Sources are the event streams Run listens to. A nil Resizes falls back to
// FallbackResizes; when both are nil the last computed size is kept.
type Sources struct {
	Frames          <-chan time.Time
	Resizes         <-chan struct{}
	FallbackResizes <-chan struct{}
}

// Scheduler calls the frame callback once per refresh and the resize callback on
// every resize notification. Tick and Resized must not be called concurrently; Run
// serialises both on one goroutine.
type Scheduler struct {
	onFrame  FrameFunc
	onResize ResizeFunc
	now      func() time.Time
	start    time.Time

	stopOnce sync.Once
	stop     chan struct{}

	mu       sync.Mutex
	releases []func()
	frames   int
}

func New(onFrame FrameFunc, onResize ResizeFunc, opts ...Option) *Scheduler {
	s := &Scheduler{
		onFrame:  onFrame,
		onResize: onResize,
		now:      time.Now,
		stop:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.start = s.now()

	return s
}

// Elapsed is the time since the scheduler was created, never negative.
func (s *Scheduler) Elapsed(now time.Time) time.Duration {
	return max(now.Sub(s.start), 0)
}

// Tick renders a frame for now. Ticks after Stop are ignored.
func (s *Scheduler) Tick(now time.Time) {
	if s.Stopped() || s.onFrame == nil {
		return
	}

	s.onFrame(s.Elapsed(now))

	s.mu.Lock()
	s.frames++
	s.mu.Unlock()
}

// Resized forwards a resize notification.
func (s *Scheduler) Resized() {
	if s.Stopped() || s.onResize == nil {
		return
	}

	s.onResize()
}

// Frames returns the number of frames rendered so far.
func (s *Scheduler) Frames() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.frames
}

// OnStop registers a release function, such as stopping a ticker or unsubscribing
// from resize events. It runs once when the scheduler stops, or right away if it
// already has.
func (s *Scheduler) OnStop(release func()) {
	s.mu.Lock()

	if !s.Stopped() {
		s.releases = append(s.releases, release)
		s.mu.Unlock()

		return
	}

	s.mu.Unlock()
	release()
}

// Stop ends the loop and runs the release functions. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		close(s.stop)
		releases := s.releases
		s.releases = nil
		s.mu.Unlock()

		for i := len(releases) - 1; i >= 0; i-- {
			releases[i]()
		}

		slog.DebugContext(logCtx, "Scheduler stopped", "frames", s.Frames())
	})
}

func (s *Scheduler) Stopped() bool {
	select {
	case <-s.stop:
		return true
	default:
		return false
	}
}

// Run handles frames and resizes until ctx is cancelled, Stop is called or the frame
// stream closes.
func (s *Scheduler) Run(ctx context.Context, src Sources) error {
	resizes := src.Resizes
	if resizes == nil {
		resizes = src.FallbackResizes
	}

	if resizes == nil {
		slog.DebugContext(logCtx, "No resize notifications available, keeping current size")
	}

	for {
		select {
		case <-ctx.Done():
			s.Stop()

			return ctx.Err()
		case <-s.stop:
			return nil
		case now, ok := <-src.Frames:
			if !ok {
				s.Stop()

				return nil
			}

			s.Tick(now)
		case <-resizes:
			s.Resized()
		}
	}
}

// NewTicker returns a frame stream and the function that stops it.
func NewTicker(interval time.Duration) (<-chan time.Time, func()) {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}

	ticker := time.NewTicker(interval)

	return ticker.C, ticker.Stop
}

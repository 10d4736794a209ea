package client

import (
	"context"
	"sync"
	"time"

	"github.com/openrescue/rescuemap-api/schema"
)

// DefaultPollInterval is how often the map view refreshes on its own.
const DefaultPollInterval = 30 * time.Second

// Lister is the read side of the API the syncer polls.
type Lister interface {
	List(ctx context.Context) ([]schema.HelpRequest, error)
}

// Syncer keeps a local working set of active help requests in step with
// the server by polling at a fixed interval. Each successful pull replaces
// the whole working set; there is no diffing and no merge of local state.
// A failed pull keeps the previous set and waits for the next tick, with
// no backoff. Every pull runs under a per-tick timeout, so a stalled
// request is cancelled before the next one starts instead of racing it.
type Syncer struct {
	lister   Lister
	interval time.Duration

	mu      sync.Mutex
	working []schema.HelpRequest
	paused  bool

	refreshC chan struct{}
	pauseC   chan bool

	// OnUpdate, if set before Start, is called after each successful pull
	// with the new working set.
	OnUpdate func([]schema.HelpRequest)
}

func NewSyncer(lister Lister, interval time.Duration) *Syncer {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	return &Syncer{
		lister:   lister,
		interval: interval,
		working:  []schema.HelpRequest{},
		refreshC: make(chan struct{}, 1),
		pauseC:   make(chan bool, 1),
	}
}

// Start runs the loop until ctx is cancelled. It pulls once immediately so
// the map is populated before the first tick.
func (s *Syncer) Start(ctx context.Context) {
	s.pull(ctx)

	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-timer.C:
			if !s.isPaused() {
				s.pull(ctx)
			}
			timer.Reset(s.interval)

		case <-s.refreshC:
			// A manual refresh restarts the interval clock so the next
			// scheduled tick does not fire right behind it.
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			if !s.isPaused() {
				s.pull(ctx)
			}
			timer.Reset(s.interval)

		case paused := <-s.pauseC:
			s.mu.Lock()
			s.paused = paused
			s.mu.Unlock()

			if !paused {
				// Resuming pulls immediately: the view may be arbitrarily
				// stale after a pause.
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				s.pull(ctx)
				timer.Reset(s.interval)
			}
		}
	}
}

// Refresh requests an immediate pull. Non-blocking; a refresh already
// pending is enough.
func (s *Syncer) Refresh() {
	select {
	case s.refreshC <- struct{}{}:
	default:
	}
}

// Pause stops the loop from pulling. The view goes stale while paused;
// this is the explicit background/hidden-page behavior.
func (s *Syncer) Pause() {
	s.pauseC <- true
}

// Resume restarts polling with an immediate pull.
func (s *Syncer) Resume() {
	s.pauseC <- false
}

// Working returns a copy of the current working set.
func (s *Syncer) Working() []schema.HelpRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	working := make([]schema.HelpRequest, len(s.working))
	copy(working, s.working)
	return working
}

func (s *Syncer) isPaused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

func (s *Syncer) pull(ctx context.Context) {
	tctx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	requests, err := s.lister.List(tctx)
	if err != nil {
		log.WithError(err).Error("refresh help requests")
		return
	}

	s.mu.Lock()
	s.working = requests
	s.mu.Unlock()

	if s.OnUpdate != nil {
		s.OnUpdate(requests)
	}
}

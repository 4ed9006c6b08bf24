// Package sync keeps page data fresh by polling the entity store on fixed
// cadences. Each registered binding owns one fetch function and one interval;
// the syncer retains the last good result across failures so a flaky backend
// degrades pages to stale data instead of blank ones.
package sync

import (
	"context"
	"fmt"
	stdsync "sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// FetchFunc loads one binding's data from the entity store.
type FetchFunc func(ctx context.Context) (interface{}, error)

// Binding describes one polled dataset.
type Binding struct {
	// Key identifies the binding for Get, Invalidate and Refresh.
	Key string
	// Interval is the poll cadence.
	Interval time.Duration
	// Fetch loads the current dataset.
	Fetch FetchFunc
}

// Result is one applied fetch outcome.
type Result struct {
	Value     interface{}
	FetchedAt time.Time
}

type bindingState struct {
	binding Binding

	// kick has capacity one so a burst of invalidations coalesces into a
	// single early poll.
	kick chan struct{}

	nextSeq atomic.Uint64

	// lastRead is the unix-nano time of the last Register, Get, Invalidate
	// or Refresh touching this binding. Workers evict bindings nobody has
	// read for the idle TTL.
	lastRead atomic.Int64

	mu        stdsync.Mutex
	seq       uint64
	result    Result
	populated bool
}

func (st *bindingState) touch() {
	st.lastRead.Store(time.Now().UnixNano())
}

func (st *bindingState) lastReadTime() time.Time {
	return time.Unix(0, st.lastRead.Load())
}

// Syncer runs one polling goroutine per registered binding. Results apply
// last-writer-wins: every fetch takes a sequence number when it starts, and a
// completion only lands if no later fetch has landed already, so a slow
// response from an earlier poll can never clobber fresher data.
type Syncer struct {
	mu      stdsync.Mutex
	states  map[string]*bindingState
	runCtx  context.Context
	cancel  context.CancelFunc
	wg      stdsync.WaitGroup
	started bool
	stopped atomic.Bool
	idleTTL time.Duration
	logger  zerolog.Logger
}

// NewSyncer creates an empty syncer. Bindings nobody reads for idleTTL are
// evicted and their workers stop; the next Register for the same key starts
// polling again. An idleTTL of zero disables eviction.
func NewSyncer(idleTTL time.Duration, logger zerolog.Logger) *Syncer {
	return &Syncer{
		states:  make(map[string]*bindingState),
		idleTTL: idleTTL,
		logger:  logger.With().Str("component", "sync").Logger(),
	}
}

// Register adds a binding. Pages whose data depends on an entity id register
// their binding lazily on first visit, so registering after Start launches
// the worker immediately. Registering an existing key only marks the binding
// as read, keeping it from idle eviction.
func (s *Syncer) Register(b Binding) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, exists := s.states[b.Key]; exists {
		st.touch()
		return
	}
	st := &bindingState{
		binding: b,
		kick:    make(chan struct{}, 1),
	}
	st.touch()
	s.states[b.Key] = st
	if s.started && !s.stopped.Load() {
		s.wg.Add(1)
		go s.run(s.runCtx, st)
	}
}

// Start launches one worker per binding. Each worker polls immediately, then
// on its interval, and early when kicked by Invalidate.
func (s *Syncer) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true

	ctx, s.cancel = context.WithCancel(ctx)
	s.runCtx = ctx
	for _, st := range s.states {
		s.wg.Add(1)
		go s.run(ctx, st)
	}
	s.logger.Info().Int("bindings", len(s.states)).Msg("Syncer started")
}

// Stop cancels all workers and waits for them to exit. Fetches still in
// flight are discarded; nothing lands after Stop returns.
func (s *Syncer) Stop() {
	s.mu.Lock()
	if !s.started || s.stopped.Load() {
		s.mu.Unlock()
		return
	}
	s.stopped.Store(true)
	cancel := s.cancel
	s.mu.Unlock()

	cancel()
	s.wg.Wait()
	s.logger.Info().Msg("Syncer stopped")
}

// Get returns the last good result for key. ok is false until the first
// successful fetch lands or when key is unknown.
func (s *Syncer) Get(key string) (Result, bool) {
	st := s.state(key)
	if st == nil {
		return Result{}, false
	}
	st.touch()
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.result, st.populated
}

// Invalidate schedules an early poll for key, typically right after a
// mutation so the page reflects the write without waiting out the interval.
func (s *Syncer) Invalidate(key string) {
	st := s.state(key)
	if st == nil {
		return
	}
	st.touch()
	select {
	case st.kick <- struct{}{}:
	default:
	}
}

// Refresh fetches key synchronously and returns the fresh value. The result
// lands under the same sequence guard as background polls, so a concurrent
// poll that started later still wins.
func (s *Syncer) Refresh(ctx context.Context, key string) (interface{}, error) {
	st := s.state(key)
	if st == nil {
		return nil, fmt.Errorf("no binding registered for key %q", key)
	}
	st.touch()
	seq := st.nextSeq.Add(1)
	value, err := st.binding.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	s.apply(st, seq, value)
	return value, nil
}

func (s *Syncer) state(key string) *bindingState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.states[key]
}

func (s *Syncer) run(ctx context.Context, st *bindingState) {
	defer s.wg.Done()

	ticker := time.NewTicker(st.binding.Interval)
	defer ticker.Stop()

	s.poll(ctx, st)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if s.evictIfIdle(st) {
				return
			}
			s.poll(ctx, st)
		case <-st.kick:
			s.poll(ctx, st)
			ticker.Reset(st.binding.Interval)
		}
	}
}

// evictIfIdle deregisters the binding when nothing has read it for the idle
// TTL, so a burst of visits to distinct event pages does not leave one
// polling goroutine per id running forever. A later Register restarts it.
func (s *Syncer) evictIfIdle(st *bindingState) bool {
	if s.idleTTL <= 0 || time.Since(st.lastReadTime()) < s.idleTTL {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// A read may have landed while we took the lock.
	if time.Since(st.lastReadTime()) < s.idleTTL {
		return false
	}
	if s.states[st.binding.Key] == st {
		delete(s.states, st.binding.Key)
	}
	s.logger.Debug().Str("binding", st.binding.Key).Msg("Binding idle, polling stopped")
	return true
}

// poll runs one fetch. Failures are logged and swallowed; the previous good
// result stays visible to Get.
func (s *Syncer) poll(ctx context.Context, st *bindingState) {
	seq := st.nextSeq.Add(1)
	value, err := st.binding.Fetch(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Warn().Err(err).Str("binding", st.binding.Key).Msg("Poll failed, keeping last result")
		}
		return
	}
	s.apply(st, seq, value)
}

func (s *Syncer) apply(st *bindingState, seq uint64, value interface{}) {
	if s.stopped.Load() {
		return
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.populated && seq <= st.seq {
		return
	}
	st.seq = seq
	st.result = Result{Value: value, FetchedAt: time.Now()}
	st.populated = true
}

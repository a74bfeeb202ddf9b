package message

import (
	"context"
	"errors"
	"sync"
	"time"

	"pockettcg/internal/logger"

	"go.uber.org/zap"
)

// ErrNotifierClosed is returned by Publish after Close.
var ErrNotifierClosed = errors.New("notifier is closed")

// Listener observes a Status after it has already been produced and
// delivered to the player who caused it. It exists purely for side
// channels — spectators, replay recorders, a lobby's "it's your turn"
// push — and must never feed back into game-state mutation.
type Listener func(ctx context.Context, gameID string, status Status) error

// Notifier is an in-memory worker-pool fan-out of engine Status messages,
// adapted from the teacher's event bus for exactly one purpose: notifying
// side channels. It is never consulted by internal/turn, internal/effect,
// or internal/trigger — those packages only ever write to
// GameState/PendingEffects directly.
type Notifier struct {
	mu        sync.RWMutex
	listeners []Listener

	jobs      chan notifyJob
	closed    chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

type notifyJob struct {
	ctx    context.Context
	gameID string
	status Status
}

// NewNotifier starts a notifier with the given worker count and queue
// depth.
func NewNotifier(workers, queueDepth int) *Notifier {
	if workers <= 0 {
		workers = 4
	}
	if queueDepth <= 0 {
		queueDepth = 256
	}
	n := &Notifier{
		jobs:   make(chan notifyJob, queueDepth),
		closed: make(chan struct{}),
	}
	for i := 0; i < workers; i++ {
		n.wg.Add(1)
		go n.worker()
	}
	return n
}

func (n *Notifier) worker() {
	defer n.wg.Done()
	for {
		select {
		case <-n.closed:
			return
		case job := <-n.jobs:
			n.deliver(job)
		}
	}
}

func (n *Notifier) deliver(job notifyJob) {
	n.mu.RLock()
	listeners := append([]Listener(nil), n.listeners...)
	n.mu.RUnlock()

	for _, l := range listeners {
		func() {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("notifier listener panicked", zap.Any("panic", r), zap.String("game_id", job.gameID))
				}
			}()
			ctx, cancel := context.WithTimeout(job.ctx, 5*time.Second)
			defer cancel()
			if err := l(ctx, job.gameID, job.status); err != nil {
				logger.Warn("notifier listener failed", zap.Error(err), zap.String("game_id", job.gameID))
			}
		}()
	}
}

// Subscribe registers a listener.
func (n *Notifier) Subscribe(l Listener) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners = append(n.listeners, l)
}

// Publish enqueues status for delivery to every subscriber. Never blocks
// the caller on a full queue: a full queue drops the notification and logs
// a warning, since this path is advisory, not authoritative.
func (n *Notifier) Publish(ctx context.Context, gameID string, status Status) error {
	select {
	case <-n.closed:
		return ErrNotifierClosed
	default:
	}

	select {
	case n.jobs <- notifyJob{ctx: ctx, gameID: gameID, status: status}:
		return nil
	default:
		logger.Warn("notifier queue full, dropping status", zap.String("game_id", gameID), zap.String("kind", string(status.Kind)))
		return nil
	}
}

// Close stops the worker pool, waiting up to 5 seconds for in-flight jobs.
func (n *Notifier) Close() error {
	var err error
	n.closeOnce.Do(func() {
		close(n.closed)
		done := make(chan struct{})
		go func() {
			n.wg.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			err = errors.New("notifier shutdown timeout")
		}
	})
	return err
}

// Package idempotency runs a keyed operation at most once, tracking its state in Redis.
package idempotency

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrAlreadyInProgress = errors.New("operation already in progress")
	ErrAlreadyCompleted  = errors.New("operation already completed")
	ErrInvalidState      = errors.New("invalid idempotency state")
	ErrEmptyKey          = errors.New("idempotency key is empty")
)

type State string

const (
	StateNone       State = "none"
	StateInProgress State = "in_progress"
	StateCompleted  State = "completed"
)

func (s State) String() string {
	return string(s)
}

// Idempotency guards an operation behind a caller supplied key.
type Idempotency interface {
	Exec(ctx context.Context, key string, fn func(context.Context) error, opts ...Option) error
}

// StateTracker implements Idempotency on a Redis key per operation.
type StateTracker struct {
	client *redis.Client
	prefix string
}

func New(client *redis.Client, prefix string) *StateTracker {
	if prefix == "" {
		prefix = "idempotency:"
	}
	return &StateTracker{client: client, prefix: prefix}
}

const (
	defaultLockDuration = time.Minute
	defaultStateTTL     = 24 * time.Hour
)

type Option func(*execOptions)

type execOptions struct {
	lockDuration time.Duration
	stateTTL     time.Duration
}

// WithLockDuration bounds how long a crashed caller can hold the key.
func WithLockDuration(d time.Duration) Option {
	return func(o *execOptions) { o.lockDuration = d }
}

// WithStateTTL sets how long a completed key is remembered.
func WithStateTTL(d time.Duration) Option {
	return func(o *execOptions) { o.stateTTL = d }
}

func (s *StateTracker) acquire(ctx context.Context, fk string, lock time.Duration) (State, error) {
	acquired, err := s.client.SetNX(ctx, fk, StateInProgress.String(), lock).Result()
	if err != nil {
		return StateNone, err
	}
	if acquired {
		return StateNone, nil
	}

	current, err := s.client.Get(ctx, fk).Result()
	if errors.Is(err, redis.Nil) {
		// expired between SETNX and GET
		return s.acquire(ctx, fk, lock)
	}
	if err != nil {
		return StateNone, err
	}

	switch State(current) {
	case StateInProgress, StateCompleted:
		return State(current), nil
	default:
		return StateNone, ErrInvalidState
	}
}

// Exec runs fn unless key is already in progress or completed. A failed fn
// releases the key so the caller may retry with the same key.
func (s *StateTracker) Exec(ctx context.Context, key string, fn func(context.Context) error, opts ...Option) error {
	if key == "" {
		return ErrEmptyKey
	}

	o := &execOptions{lockDuration: defaultLockDuration, stateTTL: defaultStateTTL}
	for _, opt := range opts {
		opt(o)
	}
	if o.lockDuration <= 0 {
		o.lockDuration = defaultLockDuration
	}
	if o.stateTTL <= 0 {
		o.stateTTL = defaultStateTTL
	}

	fk := s.prefix + key
	state, err := s.acquire(ctx, fk, o.lockDuration)
	if err != nil {
		return err
	}

	switch state {
	case StateInProgress:
		return ErrAlreadyInProgress
	case StateCompleted:
		return ErrAlreadyCompleted
	}

	if err := fn(ctx); err != nil {
		if delErr := s.client.Del(context.WithoutCancel(ctx), fk).Err(); delErr != nil {
			slog.WarnContext(ctx, "failed to release idempotency key", "key", key, "error", delErr)
		}
		return err
	}

	return s.client.Set(context.WithoutCancel(ctx), fk, StateCompleted.String(), o.stateTTL).Err()
}

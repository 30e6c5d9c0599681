package store

import (
	"context"
	"time"
)

// WriteObserver receives the outcome and latency of each namespace write.
type WriteObserver func(namespace string, success bool, duration time.Duration)

// Instrumented decorates a Store with write observation.
type Instrumented struct {
	inner   Store
	observe WriteObserver
}

// Instrument wraps the store; a nil observer returns the store unchanged.
func Instrument(s Store, observe WriteObserver) Store {
	if observe == nil {
		return s
	}
	return &Instrumented{inner: s, observe: observe}
}

// Load delegates to the wrapped store.
func (s *Instrumented) Load(ctx context.Context, namespace string) ([]byte, bool, error) {
	return s.inner.Load(ctx, namespace)
}

// Save delegates to the wrapped store and reports the write outcome.
func (s *Instrumented) Save(ctx context.Context, namespace string, payload []byte) error {
	start := time.Now()
	err := s.inner.Save(ctx, namespace, payload)
	s.observe(namespace, err == nil, time.Since(start))
	return err
}

package services

import (
	"sync"
	"time"
)

// attemptLimiter counts recent failures per key inside a sliding window.
type attemptLimiter struct {
	mu       sync.Mutex
	failures map[string][]time.Time
}

func newAttemptLimiter() *attemptLimiter {
	return &attemptLimiter{failures: make(map[string][]time.Time)}
}

// addFailure records a failure at now and returns how many fall inside window.
func (l *attemptLimiter) addFailure(key string, now time.Time, window time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	recent := l.pruneLocked(key, now, window)
	recent = append(recent, now)
	l.failures[key] = recent
	return len(recent)
}

func (l *attemptLimiter) reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.failures, key)
}

func (l *attemptLimiter) pruneLocked(key string, now time.Time, window time.Duration) []time.Time {
	threshold := now.Add(-window)
	kept := l.failures[key][:0]
	for _, at := range l.failures[key] {
		if at.After(threshold) {
			kept = append(kept, at)
		}
	}
	if len(kept) == 0 {
		delete(l.failures, key)
		return nil
	}
	l.failures[key] = kept
	return kept
}

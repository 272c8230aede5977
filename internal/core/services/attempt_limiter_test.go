package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAttemptLimiter(t *testing.T) {
	l := newAttemptLimiter()
	start := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, l.addFailure("u1", start, time.Minute))
	assert.Equal(t, 2, l.addFailure("u1", start.Add(10*time.Second), time.Minute))
	assert.Equal(t, 1, l.addFailure("u2", start, time.Minute))

	// The first failure has left the window.
	assert.Equal(t, 2, l.addFailure("u1", start.Add(65*time.Second), time.Minute))

	l.reset("u1")
	assert.Equal(t, 1, l.addFailure("u1", start.Add(70*time.Second), time.Minute))
}

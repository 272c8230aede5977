package notification

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

var (
	// ErrQueueFull is returned by Enqueue when the buffer has no room.
	ErrQueueFull = errors.New("mail queue is full")
	// ErrDispatcherClosed is returned by Enqueue after Close.
	ErrDispatcherClosed = errors.New("mail dispatcher is closed")
)

// DispatcherConfig tunes the worker pool and retry policy.
type DispatcherConfig struct {
	Workers      int
	QueueSize    int
	MaxRetries   int
	RetryBackoff time.Duration
	SendTimeout  time.Duration
}

func (c DispatcherConfig) withDefaults() DispatcherConfig {
	if c.Workers < 1 {
		c.Workers = 2
	}
	if c.QueueSize < 1 {
		c.QueueSize = 100
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.RetryBackoff <= 0 {
		c.RetryBackoff = 2 * time.Second
	}
	if c.SendTimeout <= 0 {
		c.SendTimeout = 30 * time.Second
	}
	return c
}

// Dispatcher delivers messages on a fixed pool of workers so request
// handlers never wait on SMTP.
type Dispatcher struct {
	mailer Mailer
	cfg    DispatcherConfig
	logger *slog.Logger

	queue chan Message
	wg    sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewDispatcher starts cfg.Workers goroutines. Call Close to stop them.
func NewDispatcher(mailer Mailer, cfg DispatcherConfig, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	cfg = cfg.withDefaults()
	d := &Dispatcher{
		mailer: mailer,
		cfg:    cfg,
		logger: logger,
		queue:  make(chan Message, cfg.QueueSize),
	}
	d.wg.Add(cfg.Workers)
	for i := 0; i < cfg.Workers; i++ {
		go d.work()
	}
	return d
}

// Enqueue hands msg to the workers without blocking.
func (d *Dispatcher) Enqueue(msg Message) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return ErrDispatcherClosed
	}
	select {
	case d.queue <- msg:
		return nil
	default:
		d.logger.Warn("Mail queue full, dropping message",
			slog.String("to", msg.To),
			slog.String("subject", msg.Subject),
		)
		return ErrQueueFull
	}
}

// Close stops accepting messages and waits until the queued ones are delivered or given up.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *Dispatcher) work() {
	defer d.wg.Done()
	for msg := range d.queue {
		d.deliver(msg)
	}
}

// deliver tries once plus MaxRetries, doubling the backoff after each failure.
func (d *Dispatcher) deliver(msg Message) {
	backoff := d.cfg.RetryBackoff
	for attempt := 0; ; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), d.cfg.SendTimeout)
		err := d.mailer.Send(ctx, msg)
		cancel()
		if err == nil {
			d.logger.Debug("Mail sent", slog.String("to", msg.To), slog.String("subject", msg.Subject))
			return
		}
		if attempt >= d.cfg.MaxRetries {
			d.logger.Error("Giving up on mail",
				slog.String("to", msg.To),
				slog.String("subject", msg.Subject),
				slog.Int("attempts", attempt+1),
				slog.String("error", err.Error()),
			)
			return
		}
		d.logger.Warn("Mail send failed, retrying",
			slog.String("to", msg.To),
			slog.Int("attempt", attempt+1),
			slog.Duration("backoff", backoff),
			slog.String("error", err.Error()),
		)
		time.Sleep(backoff)
		backoff *= 2
	}
}

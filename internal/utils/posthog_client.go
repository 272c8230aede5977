// posthog_client.go wraps the posthog client so callers never need to check whether analytics is enabled.
package utils

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// eventQueue is the part of posthog.Client the wrapper uses.
type eventQueue interface {
	Enqueue(posthog.Message) error
	Close() error
}

// PosthogClientWrapper is a nil-safe analytics sink. A zero wrapper drops every event.
type PosthogClientWrapper struct {
	client eventQueue
	logger *slog.Logger
}

func InitializePosthogClient(apiKey string, logger *slog.Logger) *PosthogClientWrapper {
	if apiKey == "" {
		logger.Warn("Posthog API key is empty, not initializing posthog client.")
		return &PosthogClientWrapper{logger: logger}
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: "https://eu.i.posthog.com"})
	if err != nil {
		logger.Error("Failed to initialize posthog client", slog.Any("error", err))
		return &PosthogClientWrapper{logger: logger}
	}
	logger.Info("Posthog client initialized")
	return &PosthogClientWrapper{client: client, logger: logger}
}

func (w *PosthogClientWrapper) IsInitialized() bool {
	return w != nil && w.client != nil
}

// Enqueue captures an event for distinctID. Failures are logged and otherwise ignored.
func (w *PosthogClientWrapper) Enqueue(distinctID string, event string, properties map[string]any) {
	if !w.IsInitialized() {
		return
	}
	err := w.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	})
	if err != nil && w.logger != nil {
		w.logger.Warn("Failed to enqueue analytics event", slog.String("event", event), slog.Any("error", err))
	}
}

func (w *PosthogClientWrapper) Close() {
	if !w.IsInitialized() {
		return
	}
	_ = w.client.Close()
}

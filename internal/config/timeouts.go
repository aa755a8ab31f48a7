package config

// Timeout constants below are tuned for a chat API where the caller is a
// web or mobile frontend waiting synchronously for the assistant's reply.
// The rule-based pipeline answers in milliseconds; the upper bounds exist
// for the generative fallback, which may touch slow upstream model APIs.

import "time"

// Chat timeouts
const (
	// ChatProcessing is the timeout for handling a single chat message.
	// Covers intent classification, retrieval, and the optional generative
	// fallback (provider retries included).
	ChatProcessing = 30 * time.Second

	// ChatHTTPRead is the HTTP server read timeout.
	// Chat payloads are small JSON bodies.
	ChatHTTPRead = 10 * time.Second

	// ChatHTTPWrite is the HTTP server write timeout.
	// Should accommodate ChatProcessing + response serialization.
	ChatHTTPWrite = 35 * time.Second

	// ChatHTTPIdle is the HTTP server idle timeout for keep-alive connections.
	ChatHTTPIdle = 120 * time.Second
)

// AI provider timeouts
const (
	// AIRequest is the timeout for a single upstream model API call.
	AIRequest = 15 * time.Second

	// AIMinInterval is the default minimum spacing between upstream model
	// calls across all sessions. Keeps the service inside free-tier quotas.
	AIMinInterval = 2 * time.Second
)

// Store timeouts
const (
	// StoreWrite is the timeout for an atomic document replace.
	// Local filesystem writes are fast; this guards against stuck NFS mounts.
	StoreWrite = 5 * time.Second
)

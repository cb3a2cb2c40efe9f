package ports

// Gateway is a connected chat-platform session delivering lifecycle events.
type Gateway interface {
	// OnReady registers fn to run once, on the first ready event.
	OnReady(fn func())
	// AcknowledgeInteractions registers a handler that only acknowledges incoming interactions.
	AcknowledgeInteractions()
	Open() error
	Close() error
}

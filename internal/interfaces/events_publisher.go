package interfaces

// EventPublisher fans ledger events out to interested consumers. Publishing
// is best-effort from the ledger's point of view; a failed publish never
// rolls back the write that triggered it.
type EventPublisher interface {
	Publish(topic string, event any) error
}

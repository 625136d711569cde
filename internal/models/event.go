package models

// ProductEvent is published to Kafka after a successful product mutation.
type ProductEvent struct {
	EventID   string `json:"event_id"`   // Unique event identifier
	Timestamp int64  `json:"timestamp"`  // Unix time of the mutation
	ProductID int64  `json:"product_id"` // Affected product
	Operation string `json:"operation"`  // "create", "update" or "delete"
}

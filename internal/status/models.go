package status

import "time"

// StatusCheck is a persisted connectivity probe left by a client. Records are
// write-once: created on POST and listed as-is afterwards.
type StatusCheck struct {
	ID         string    `json:"id" bson:"id"`
	ClientName string    `json:"client_name" bson:"client_name"`
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`
}

// StatusCheckCreate is the POST payload.
type StatusCheckCreate struct {
	ClientName string `json:"client_name" binding:"required"`
}

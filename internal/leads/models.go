package leads

import "time"

// Contact messages and appointment requests are the two lead-capture records
// behind the public forms. Both are write-once: created on POST, listed most
// recent first, never mutated or deleted.

type ContactMessageCreate struct {
	FullName string `json:"fullname" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Message  string `json:"message" binding:"required"`
	// Consent must be present in the payload; false is accepted as-is.
	Consent *bool `json:"consent" binding:"required"`
}

type ContactMessage struct {
	ID        string    `json:"id" bson:"id"`
	FullName  string    `json:"fullname" bson:"fullname"`
	Email     string    `json:"email" bson:"email"`
	Phone     string    `json:"phone" bson:"phone"`
	Message   string    `json:"message" bson:"message"`
	Consent   bool      `json:"consent" bson:"consent"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

type AppointmentRequestCreate struct {
	FullName      string   `json:"fullname" binding:"required"`
	Email         *string  `json:"email"`
	Phone         string   `json:"phone" binding:"required"`
	Reason        string   `json:"reason" binding:"required"`
	PreferredDays []string `json:"preferred_days"`
	PreferredTime *string  `json:"preferred_time"`
	Notes         *string  `json:"notes"`
	Consent       *bool    `json:"consent" binding:"required"`
}

type AppointmentRequest struct {
	ID            string    `json:"id" bson:"id"`
	FullName      string    `json:"fullname" bson:"fullname"`
	Email         *string   `json:"email" bson:"email"`
	Phone         string    `json:"phone" bson:"phone"`
	Reason        string    `json:"reason" bson:"reason"`
	PreferredDays []string  `json:"preferred_days" bson:"preferred_days"`
	PreferredTime *string   `json:"preferred_time" bson:"preferred_time"`
	Notes         *string   `json:"notes" bson:"notes"`
	Consent       bool      `json:"consent" bson:"consent"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

package models

import "time"

// AuditFields holds the timestamps maintained by the store.
type AuditFields struct {
	CreatedAt time.Time `bson:"createdAt" db:"created_at"`
	UpdatedAt time.Time `bson:"updatedAt" db:"updated_at"`
}

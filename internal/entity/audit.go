package entity

import (
	"time"
)

// AuditEvent is an append-only record of a mutating operation, written
// asynchronously by the worker pool.
type AuditEvent struct {
	ID        string `gorm:"primaryKey"`
	ActorID   string `gorm:"index"`
	Action    string `gorm:"not null"`
	TargetID  string `gorm:"index"`
	Detail    string
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

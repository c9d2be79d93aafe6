package datamodel

import "time"

// Audit holds the bookkeeping columns shared by every HR table. They are
// written by the repositories, never taken from request input.
type Audit struct {
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	CreatedBy string    `gorm:"column:created_by;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
	UpdatedBy string    `gorm:"column:updated_by;not null"`
}

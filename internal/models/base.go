package models

import "time"

// Base contains common columns for all tables. IDs are plain auto-increment
// integers because transaction IDs are shown to users (/listall, /delete).
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

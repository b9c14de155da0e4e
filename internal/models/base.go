package models

import "time"

// BaseModel is like gorm.Model without DeletedAt: every delete in this
// system is a hard delete enforced by foreign key constraints.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

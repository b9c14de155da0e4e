package models

import "gorm.io/datatypes"

type Interview struct {
	BaseModel

	ApplicationID    uint           `gorm:"not null;index" json:"application_id"`
	InterviewDate    datatypes.Date `gorm:"not null" json:"interview_date"`
	InterviewTime    string         `gorm:"not null" json:"interview_time"` // "HH:MM", 24h
	Type             string         `gorm:"not null;default:phone" json:"type"`      // "phone", "video", "in-person", "technical", "hr", "final"
	Location         string         `json:"location"`
	InterviewerName  string         `json:"interviewer_name"`
	InterviewerEmail string         `json:"interviewer_email"`
	Notes            string         `gorm:"type:text" json:"notes"`
	Status           string         `gorm:"not null;default:scheduled" json:"status"` // "scheduled", "completed", "cancelled", "rescheduled"
	Feedback         string         `gorm:"type:text" json:"feedback"`

	// Relationships
	Application Application `gorm:"foreignKey:ApplicationID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"application,omitzero"`
}

package models

import "gorm.io/datatypes"

type Application struct {
	BaseModel

	UserID            uint           `gorm:"not null;index" json:"user_id"`
	CompanyID         uint           `gorm:"not null;index" json:"company_id"`
	JobID             *uint          `gorm:"index" json:"job_id"`
	Status            string         `gorm:"not null;default:applied;index" json:"status"`
	AppliedDate       datatypes.Date `gorm:"not null" json:"applied_date"`
	Notes             string         `gorm:"type:text" json:"notes"`
	ResumeURL         string         `json:"resume_url"`
	CoverLetterURL    string         `json:"cover_letter_url"`
	SalaryExpectation *float64       `gorm:"type:decimal(10,2)" json:"salary_expectation"`
	Source            string         `json:"source"`

	// Relationships
	User             User              `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Company          Company           `gorm:"foreignKey:CompanyID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"company,omitzero"`
	Job              *Job              `gorm:"foreignKey:JobID;constraint:OnUpdate:Cascade,OnDelete:SET NULL" json:"job,omitempty"`
	Interviews       []Interview       `gorm:"foreignKey:ApplicationID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"interviews,omitempty"`
	ApplicationNotes []ApplicationNote `gorm:"foreignKey:ApplicationID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"application_notes,omitempty"`
}

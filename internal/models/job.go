package models

import "gorm.io/datatypes"

type Job struct {
	BaseModel

	CompanyID           uint            `gorm:"not null;index" json:"company_id"`
	Title               string          `gorm:"not null" json:"title"`
	Description         string          `gorm:"type:text" json:"description"`
	Location            string          `json:"location"`
	SalaryMin           *float64        `gorm:"type:decimal(10,2)" json:"salary_min"`
	SalaryMax           *float64        `gorm:"type:decimal(10,2)" json:"salary_max"`
	EmploymentType      string          `gorm:"not null;default:full-time" json:"employment_type"` // "full-time", "part-time", "contract", "internship", "freelance"
	ExperienceLevel     string          `gorm:"not null;default:mid" json:"experience_level"`      // "entry", "mid", "senior", "lead", "executive"
	RemoteOption        bool            `gorm:"not null;default:false" json:"remote_option"`
	JobURL              string          `json:"job_url"`
	PostedDate          *datatypes.Date `json:"posted_date"`
	ApplicationDeadline *datatypes.Date `json:"application_deadline"`

	// Relationships
	Company      Company       `gorm:"foreignKey:CompanyID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"company,omitempty"`
	Applications []Application `gorm:"foreignKey:JobID;constraint:OnUpdate:Cascade,OnDelete:SET NULL" json:"-"`
}

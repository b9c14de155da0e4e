package models

type Company struct {
	BaseModel

	Name        string `gorm:"not null;index" json:"name"`
	Website     string `json:"website"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `gorm:"type:text" json:"address"`
	Description string `gorm:"type:text" json:"description"`
	Industry    string `json:"industry"`
	Size        string `json:"size"`
	LogoURL     string `json:"logo_url"`

	// Relationships
	Jobs         []Job         `gorm:"foreignKey:CompanyID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"jobs,omitempty"`
	Applications []Application `gorm:"foreignKey:CompanyID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"applications,omitempty"`
}

package models

type ApplicationNote struct {
	BaseModel

	ApplicationID uint   `gorm:"not null;index" json:"application_id"`
	UserID        uint   `gorm:"not null;index" json:"user_id"`
	Note          string `gorm:"type:text;not null" json:"note"`
	IsPrivate     bool   `gorm:"not null;default:false" json:"is_private"`

	// Relationships
	Application Application `gorm:"foreignKey:ApplicationID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	User        User        `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"user,omitzero"`
}

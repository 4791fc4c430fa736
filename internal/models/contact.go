package models

// Contact is a CRM contact. Category scopes who may see it.
type Contact struct {
	Base
	OwnerID  string   `gorm:"size:64;not null;index" json:"owner_id"`
	Name     string   `gorm:"not null" json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Company  string   `json:"company"`
	Category string   `gorm:"not null;index" json:"category"`
	Notes    string   `json:"notes"`
	Tags     []string `gorm:"serializer:json" json:"tags"`
}

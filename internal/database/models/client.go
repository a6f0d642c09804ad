package models

// Client represents a contracting customer whose sites require guard coverage
type Client struct {
	BaseModel
	Name        string `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
	ContactName string `json:"contact_name" gorm:"size:100" validate:"max=100"`
	Email       string `json:"email" gorm:"size:100" validate:"omitempty,email"`
	Phone       string `json:"phone" gorm:"size:30" validate:"max=30"`
	Active      bool   `json:"active" gorm:"default:true"`

	// Relationships
	Installations []Installation `json:"installations,omitempty" gorm:"foreignKey:ClientID"`
}

// TableName returns the table name for Client
func (Client) TableName() string {
	return "clients"
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	Username string    `gorm:"uniqueIndex;size:150" json:"username"`
	Email    string    `gorm:"uniqueIndex;size:150" json:"email"`
	Password string    `gorm:"size:255" json:"-"` // bcrypt hash, never returned in JSON

	FirstName string  `gorm:"size:150" json:"first_name"`
	LastName  string  `gorm:"size:150" json:"last_name"`
	Phone     *string `gorm:"size:50" json:"phone,omitempty"`

	IsManager  bool `gorm:"default:false" json:"is_manager"`
	IsCustomer bool `gorm:"default:true" json:"is_customer"`
	IsOwner    bool `gorm:"default:false" json:"is_owner"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Profile *Profile `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return
}

type Profile struct {
	ID     uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:char(36);uniqueIndex" json:"user_id"`

	DOB      *time.Time `gorm:"column:dob;type:date" json:"dob,omitempty"`
	Picture  string     `gorm:"size:255" json:"picture,omitempty"`
	Address  string     `gorm:"size:255" json:"address,omitempty"`
	City     string     `gorm:"size:255" json:"city,omitempty"`
	State    string     `gorm:"size:255" json:"state,omitempty"`
	Country  string     `gorm:"size:255" json:"country,omitempty"`
	Document string     `gorm:"size:255" json:"document,omitempty"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}

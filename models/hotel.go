package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Hotel struct {
	UID   uuid.UUID `gorm:"type:char(36);primaryKey;column:uid" json:"uid"`
	Name  string    `gorm:"size:300;not null" json:"name"`
	Stars string    `gorm:"size:1;default:'1'" json:"stars"` // "1" to "5"

	Address    string `gorm:"size:255" json:"address"`
	PostalCode string `gorm:"size:15;column:postal_code" json:"postal_code"`
	City       string `gorm:"size:70" json:"city"`
	State      string `gorm:"size:70" json:"state"`
	Country    string `gorm:"size:50" json:"country"`

	OwnerID *uuid.UUID `gorm:"type:char(36);index;column:owner_id" json:"owner_id,omitempty"`
	Owner   *User      `gorm:"foreignKey:OwnerID;references:ID;constraint:OnDelete:SET NULL" json:"owner,omitempty"`

	Deleted   bool       `gorm:"default:false" json:"deleted"`
	DeletedAt *time.Time `gorm:"column:deleted_at" json:"deleted_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Images []HotelImage `gorm:"foreignKey:HotelUID;references:UID" json:"images,omitempty"`
	Rooms  []Room       `gorm:"foreignKey:HotelUID;references:UID" json:"rooms,omitempty"`
}

func (h *Hotel) BeforeCreate(tx *gorm.DB) (err error) {
	if h.UID == uuid.Nil {
		h.UID = uuid.New()
	}
	return
}

// BeforeSave keeps the deleted/deleted_at pair consistent: deleted_at is
// non-nil iff the hotel is marked deleted. An existing timestamp is kept so
// unrelated updates don't reset it.
func (h *Hotel) BeforeSave(tx *gorm.DB) (err error) {
	if !h.Deleted {
		h.DeletedAt = nil
	} else if h.DeletedAt == nil {
		now := time.Now().UTC()
		h.DeletedAt = &now
	}
	return
}

// MarkDeleted soft-deletes the hotel at the given time.
func (h *Hotel) MarkDeleted(at time.Time) {
	t := at.UTC()
	h.Deleted = true
	h.DeletedAt = &t
}

// Restore clears the soft-delete state.
func (h *Hotel) Restore() {
	h.Deleted = false
	h.DeletedAt = nil
}

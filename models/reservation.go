package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Reservation keeps an integer auto-increment key: the display number is
// derived from the sequence value assigned at insert time.
type Reservation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	// Assigned once at creation, blank never observable after commit.
	Number string `gorm:"size:6;uniqueIndex;default:null" json:"number"`

	RoomUID uuid.UUID `gorm:"type:char(36);index;column:room_uid;not null" json:"room_uid"`
	Room    Room      `gorm:"foreignKey:RoomUID;references:UID;constraint:OnDelete:CASCADE" json:"room,omitempty"`

	AuthorID uuid.UUID `gorm:"type:char(36);index;column:author_id;not null" json:"author_id"`
	Author   User      `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	StartDate time.Time  `gorm:"column:start_date;type:date;not null" json:"start_date"`
	EndDate   *time.Time `gorm:"column:end_date;type:date" json:"end_date,omitempty"`

	// Derived on every save, never taken from the caller.
	Duration int             `json:"duration"`
	Cost     decimal.Decimal `gorm:"type:decimal(10,2)" json:"cost"`
}

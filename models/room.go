package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BedType string

const (
	BedQueen  BedType = "queen"
	BedKing   BedType = "king"
	BedSingle BedType = "single"
)

func (b BedType) Valid() bool {
	switch b {
	case BedQueen, BedKing, BedSingle:
		return true
	}
	return false
}

type Room struct {
	UID  uuid.UUID `gorm:"type:char(36);primaryKey;column:uid" json:"uid"`
	Name string    `gorm:"size:150;not null" json:"name"` // room name or number

	HotelUID uuid.UUID `gorm:"type:char(36);index;column:hotel_uid;not null" json:"hotel_uid"`
	Hotel    Hotel     `gorm:"foreignKey:HotelUID;references:UID;constraint:OnDelete:CASCADE" json:"-"`

	Images []HotelImage `gorm:"many2many:room_images;foreignKey:UID;joinForeignKey:RoomUID;references:UID;joinReferences:ImageUID" json:"images,omitempty"`

	Beds    *int     `gorm:"column:beds" json:"beds,omitempty"`
	BedType *BedType `gorm:"size:10;column:bed_type" json:"bed_type,omitempty"`
	Sleeps  *int     `gorm:"column:sleeps" json:"sleeps,omitempty"`

	Price    decimal.Decimal  `gorm:"type:decimal(10,2);default:0" json:"price"`
	Discount *decimal.Decimal `gorm:"type:decimal(10,2)" json:"discount,omitempty"`

	Amenities datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`

	AuthorID *uuid.UUID `gorm:"type:char(36);index;column:author_id" json:"author_id,omitempty"`
	Author   *User      `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:SET NULL" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Room) BeforeCreate(tx *gorm.DB) (err error) {
	if r.UID == uuid.Nil {
		r.UID = uuid.New()
	}
	return
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HotelImage struct {
	UID      uuid.UUID `gorm:"type:char(36);primaryKey;column:uid" json:"uid"`
	Title    string    `gorm:"size:255" json:"title,omitempty"`
	FilePath string    `gorm:"size:255;column:file_path" json:"file_path"` // relative to the uploads root

	HotelUID uuid.UUID `gorm:"type:char(36);index;column:hotel_uid;not null" json:"hotel_uid"`
	Hotel    Hotel     `gorm:"foreignKey:HotelUID;references:UID;constraint:OnDelete:CASCADE" json:"-"`

	Uploaded time.Time `gorm:"autoUpdateTime" json:"uploaded"`

	AuthorID *uuid.UUID `gorm:"type:char(36);index;column:author_id" json:"author_id,omitempty"`
	Author   *User      `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:SET NULL" json:"-"`
}

func (i *HotelImage) BeforeCreate(tx *gorm.DB) (err error) {
	if i.UID == uuid.Nil {
		i.UID = uuid.New()
	}
	return
}

package model

import "hotel_manager/utils"

// Per-day availability rows. A missing row means the day is available;
// rows are created lazily the first time a day is reserved.

type ApartmentAvailability struct {
	DTO
	ApartmentId uint             `gorm:"not null;uniqueIndex:idx_apartment_date" json:"apartmentId"`
	Date        utils.CustomDate `gorm:"type:date;not null;uniqueIndex:idx_apartment_date" json:"date"`
	IsAvailable *bool            `gorm:"not null;default:true" json:"isAvailable"`

	Apartment Apartment `gorm:"foreignKey:ApartmentId" json:"-"`
}

type RoomAvailability struct {
	DTO
	RoomId      uint             `gorm:"not null;uniqueIndex:idx_room_date" json:"roomId"`
	Date        utils.CustomDate `gorm:"type:date;not null;uniqueIndex:idx_room_date" json:"date"`
	IsAvailable *bool            `gorm:"not null;default:true" json:"isAvailable"`

	Room Room `gorm:"foreignKey:RoomId" json:"-"`
}

// DayAvailability is the calendar view returned to clients.
type DayAvailability struct {
	Date        utils.CustomDate `json:"date"`
	IsAvailable bool             `json:"isAvailable"`
}

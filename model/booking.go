package model

import (
	"hotel_manager/constants"
	"hotel_manager/utils"
)

type Booking struct {
	DTO
	PublicCode string `gorm:"uniqueIndex;size:20" json:"publicCode"`
	UserId     uint   `gorm:"not null;index" json:"userId"`
	HotelId    uint   `gorm:"not null;index" json:"hotelId"`

	// Exactly one of ApartmentId / RoomId is set, matching BookingType.
	// The schema cannot express that; admission guarantees it.
	ApartmentId *uint `gorm:"index" json:"apartmentId"`
	RoomId      *uint `gorm:"index" json:"roomId"`

	CheckInDate    utils.CustomDate `gorm:"type:date;not null" json:"checkInDate"`
	CheckOutDate   utils.CustomDate `gorm:"type:date;not null" json:"checkOutDate"`
	NumberOfGuests int              `gorm:"not null" json:"numberOfGuests"`
	BookingType    string           `gorm:"not null" json:"bookingType"` // APARTMENT, ROOM
	Status         string           `gorm:"not null;default:PENDING" json:"status"`

	User      User       `gorm:"foreignKey:UserId" json:"user,omitempty"`
	Hotel     Hotel      `gorm:"foreignKey:HotelId" json:"hotel,omitempty"`
	Apartment *Apartment `gorm:"foreignKey:ApartmentId" json:"apartment,omitempty"`
	Room      *Room      `gorm:"foreignKey:RoomId" json:"room,omitempty"`
	Payment   *Payment   `gorm:"foreignKey:BookingId" json:"payment,omitempty"`
}

func (b *Booking) IsApartmentBooking() bool {
	return b.BookingType == constants.BookingTypeApartment && b.ApartmentId != nil
}

func (b *Booking) IsRoomBooking() bool {
	return b.BookingType == constants.BookingTypeRoom && b.RoomId != nil
}

// Nights spans the half-open stay: checkout day is not occupied.
func (b *Booking) Nights() int {
	return b.CheckInDate.DaysUntil(b.CheckOutDate)
}

type CreateBookingInput struct {
	HotelId        uint             `json:"hotelId" validate:"required,gt=0"`
	CheckInDate    utils.CustomDate `json:"checkInDate" validate:"required"`
	CheckOutDate   utils.CustomDate `json:"checkOutDate" validate:"required"`
	NumberOfGuests int              `json:"numberOfGuests" validate:"required,min=1,max=50"`
	BookingType    string           `json:"bookingType" validate:"required,oneof=APARTMENT ROOM"`
	ApartmentId    *uint            `json:"apartmentId" validate:"omitempty,gt=0"`
	RoomId         *uint            `json:"roomId" validate:"omitempty,gt=0"`
}

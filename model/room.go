package model

type Room struct {
	DTO
	HotelId       uint    `gorm:"not null;index" json:"hotelId"`
	ApartmentId   *uint   `gorm:"index" json:"apartmentId"` // nil means standalone room
	RoomNumber    string  `gorm:"not null" json:"roomNumber"`
	Description   string  `gorm:"type:text" json:"description"`
	ImageUrl      string  `json:"imageUrl"`
	PricePerNight float64 `gorm:"not null" json:"pricePerNight"`
	Capacity      int     `gorm:"not null" json:"capacity"`
	IsAvailable   *bool   `gorm:"default:true" json:"isAvailable"`

	// Whether this room can be booked on its own, outside a whole-apartment
	// booking.
	BookableIndividually *bool `gorm:"default:true" json:"bookableIndividually"`

	HasWifi            *bool `gorm:"default:true" json:"hasWifi"`
	HasAirConditioning *bool `gorm:"default:true" json:"hasAirConditioning"`
	HasTv              *bool `gorm:"default:true" json:"hasTv"`
	HasBalcony         *bool `gorm:"default:false" json:"hasBalcony"`
	HasPrivateBathroom *bool `gorm:"default:true" json:"hasPrivateBathroom"`

	RoomType string `gorm:"not null" json:"roomType"` // BEDROOM, MASTER_BEDROOM, STANDARD, DELUXE, SUITE, FAMILY_ROOM

	Hotel     Hotel      `gorm:"foreignKey:HotelId" json:"hotel,omitempty"`
	Apartment *Apartment `gorm:"foreignKey:ApartmentId" json:"apartment,omitempty"`
	Bookings  []Booking  `gorm:"foreignKey:RoomId" json:"bookings,omitempty"`
}

// IsPartOfApartment reports whether the room lives inside an apartment.
func (r *Room) IsPartOfApartment() bool {
	return r.ApartmentId != nil
}

// IsStandalone reports whether the room hangs directly off the hotel.
func (r *Room) IsStandalone() bool {
	return r.HotelId != 0 && r.ApartmentId == nil
}

type CreateRoomInput struct {
	HotelId       uint    `json:"hotelId" validate:"required,gt=0"`
	ApartmentId   *uint   `json:"apartmentId" validate:"omitempty,gt=0"`
	RoomNumber    string  `json:"roomNumber" validate:"required"`
	Description   string  `json:"description"`
	ImageUrl      string  `json:"imageUrl"`
	PricePerNight float64 `json:"pricePerNight" validate:"required,gt=0"`
	Capacity      int     `json:"capacity" validate:"required,gt=0"`
	IsAvailable   *bool   `json:"isAvailable"`

	BookableIndividually *bool `json:"bookableIndividually"`

	HasWifi            *bool `json:"hasWifi"`
	HasAirConditioning *bool `json:"hasAirConditioning"`
	HasTv              *bool `json:"hasTv"`
	HasBalcony         *bool `json:"hasBalcony"`
	HasPrivateBathroom *bool `json:"hasPrivateBathroom"`

	RoomType string `json:"roomType" validate:"required,oneof=BEDROOM MASTER_BEDROOM SINGLE_BEDROOM DOUBLE_BEDROOM STANDARD DELUXE SUITE PRESIDENTIAL_SUITE FAMILY_ROOM"`
}

type EditRoomInput struct {
	RoomNumber    *string  `json:"roomNumber"`
	Description   *string  `json:"description"`
	ImageUrl      *string  `json:"imageUrl"`
	PricePerNight *float64 `json:"pricePerNight" validate:"omitempty,gt=0"`
	Capacity      *int     `json:"capacity" validate:"omitempty,gt=0"`
	IsAvailable   *bool    `json:"isAvailable"`

	BookableIndividually *bool `json:"bookableIndividually"`

	HasWifi            *bool `json:"hasWifi"`
	HasAirConditioning *bool `json:"hasAirConditioning"`
	HasTv              *bool `json:"hasTv"`
	HasBalcony         *bool `json:"hasBalcony"`
	HasPrivateBathroom *bool `json:"hasPrivateBathroom"`

	RoomType *string `json:"roomType" validate:"omitempty,oneof=BEDROOM MASTER_BEDROOM SINGLE_BEDROOM DOUBLE_BEDROOM STANDARD DELUXE SUITE PRESIDENTIAL_SUITE FAMILY_ROOM"`
}

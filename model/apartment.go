package model

type Apartment struct {
	DTO
	HotelId         uint    `gorm:"not null;index" json:"hotelId"`
	ApartmentNumber string  `gorm:"not null" json:"apartmentNumber"`
	Name            string  `gorm:"not null" json:"name"`
	Description     string  `gorm:"type:text" json:"description"`
	ImageUrl        string  `json:"imageUrl"`
	PricePerNight   float64 `gorm:"not null" json:"pricePerNight"`
	TotalCapacity   int     `gorm:"not null" json:"totalCapacity"`
	NumberOfBedrooms  int     `gorm:"not null" json:"numberOfBedrooms"`
	NumberOfBathrooms int     `gorm:"not null" json:"numberOfBathrooms"`
	FloorNumber       *int    `json:"floorNumber"`
	AreaSqm           float64 `json:"areaSqm"`
	IsAvailable       *bool   `gorm:"default:true" json:"isAvailable"`

	// Whether the rooms inside can be booked on their own.
	RoomsBookableSeparately *bool `gorm:"default:false" json:"roomsBookableSeparately"`

	HasKitchen         *bool `gorm:"default:true" json:"hasKitchen"`
	HasLivingRoom      *bool `gorm:"default:true" json:"hasLivingRoom"`
	HasBalcony         *bool `gorm:"default:false" json:"hasBalcony"`
	HasWifi            *bool `gorm:"default:true" json:"hasWifi"`
	HasAirConditioning *bool `gorm:"default:true" json:"hasAirConditioning"`

	ApartmentType string `gorm:"not null" json:"apartmentType"` // STUDIO, ONE_BEDROOM, TWO_BEDROOM, PENTHOUSE, DUPLEX

	Hotel    Hotel     `gorm:"foreignKey:HotelId" json:"hotel,omitempty"`
	Rooms    []Room    `gorm:"foreignKey:ApartmentId" json:"rooms,omitempty"`
	Bookings []Booking `gorm:"foreignKey:ApartmentId" json:"bookings,omitempty"`
}

type CreateApartmentInput struct {
	HotelId           uint    `json:"hotelId" validate:"required,gt=0"`
	ApartmentNumber   string  `json:"apartmentNumber" validate:"required"`
	Name              string  `json:"name" validate:"required"`
	Description       string  `json:"description"`
	ImageUrl          string  `json:"imageUrl"`
	PricePerNight     float64 `json:"pricePerNight" validate:"required,gt=0"`
	TotalCapacity     int     `json:"totalCapacity" validate:"required,gt=0"`
	NumberOfBedrooms  int     `json:"numberOfBedrooms" validate:"required,gt=0"`
	NumberOfBathrooms int     `json:"numberOfBathrooms" validate:"required,gt=0"`
	FloorNumber       *int    `json:"floorNumber"`
	AreaSqm           float64 `json:"areaSqm"`
	IsAvailable       *bool   `json:"isAvailable"`

	RoomsBookableSeparately *bool `json:"roomsBookableSeparately"`

	HasKitchen         *bool `json:"hasKitchen"`
	HasLivingRoom      *bool `json:"hasLivingRoom"`
	HasBalcony         *bool `json:"hasBalcony"`
	HasWifi            *bool `json:"hasWifi"`
	HasAirConditioning *bool `json:"hasAirConditioning"`

	ApartmentType string `json:"apartmentType" validate:"required,oneof=STUDIO ONE_BEDROOM TWO_BEDROOM PENTHOUSE DUPLEX"`
}

type EditApartmentInput struct {
	ApartmentNumber   *string  `json:"apartmentNumber"`
	Name              *string  `json:"name"`
	Description       *string  `json:"description"`
	ImageUrl          *string  `json:"imageUrl"`
	PricePerNight     *float64 `json:"pricePerNight" validate:"omitempty,gt=0"`
	TotalCapacity     *int     `json:"totalCapacity" validate:"omitempty,gt=0"`
	NumberOfBedrooms  *int     `json:"numberOfBedrooms" validate:"omitempty,gt=0"`
	NumberOfBathrooms *int     `json:"numberOfBathrooms" validate:"omitempty,gt=0"`
	FloorNumber       *int     `json:"floorNumber"`
	AreaSqm           *float64 `json:"areaSqm"`
	IsAvailable       *bool    `json:"isAvailable"`

	RoomsBookableSeparately *bool `json:"roomsBookableSeparately"`

	HasKitchen         *bool `json:"hasKitchen"`
	HasLivingRoom      *bool `json:"hasLivingRoom"`
	HasBalcony         *bool `json:"hasBalcony"`
	HasWifi            *bool `json:"hasWifi"`
	HasAirConditioning *bool `json:"hasAirConditioning"`

	ApartmentType *string `json:"apartmentType" validate:"omitempty,oneof=STUDIO ONE_BEDROOM TWO_BEDROOM PENTHOUSE DUPLEX"`
}

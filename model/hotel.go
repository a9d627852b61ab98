package model

type Hotel struct {
	DTO
	Email       string  `gorm:"uniqueIndex;not null" json:"email"`
	Name        string  `gorm:"not null;index" json:"name"`
	Slug        string  `gorm:"uniqueIndex" json:"slug"`
	Description string  `gorm:"type:text" json:"description"`
	Address     string  `gorm:"not null" json:"address"`
	City        string  `gorm:"not null;index" json:"city"`
	Country     string  `gorm:"not null" json:"country"`
	PostalCode  string  `json:"postalCode"`
	PhoneNumber string  `json:"phoneNumber"`
	ImageUrl    string  `json:"imageUrl"`
	Rating      float64 `gorm:"default:1" json:"rating"`
	IsActive    *bool   `gorm:"default:true" json:"isActive"`

	Apartments []Apartment `gorm:"foreignKey:HotelId" json:"apartments,omitempty"`
	Rooms      []Room      `gorm:"foreignKey:HotelId" json:"rooms,omitempty"`
	Bookings   []Booking   `gorm:"foreignKey:HotelId" json:"bookings,omitempty"`
	Reviews    []Review    `gorm:"foreignKey:HotelId" json:"reviews,omitempty"`
}

type CreateHotelInput struct {
	Email       string `json:"email" validate:"required,email"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Address     string `json:"address" validate:"required"`
	City        string `json:"city" validate:"required"`
	Country     string `json:"country" validate:"required"`
	PostalCode  string `json:"postalCode"`
	PhoneNumber string `json:"phoneNumber"`
	ImageUrl    string `json:"imageUrl"`
	IsActive    *bool  `json:"isActive"`
}

type EditHotelInput struct {
	Email       *string `json:"email" validate:"omitempty,email"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	Country     *string `json:"country"`
	PostalCode  *string `json:"postalCode"`
	PhoneNumber *string `json:"phoneNumber"`
	ImageUrl    *string `json:"imageUrl"`
	IsActive    *bool   `json:"isActive"`
}

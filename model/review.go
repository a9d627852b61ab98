package model

type Review struct {
	DTO
	UserId    uint   `gorm:"not null;index" json:"userId"`
	HotelId   uint   `gorm:"not null;index" json:"hotelId"`
	BookingId *uint  `gorm:"index" json:"bookingId"`
	Rating    int    `gorm:"not null" json:"rating"`
	Comment   string `gorm:"type:text" json:"comment"`

	User  User  `gorm:"foreignKey:UserId" json:"user,omitempty"`
	Hotel Hotel `gorm:"foreignKey:HotelId" json:"hotel,omitempty"`
}

type CreateReviewInput struct {
	HotelId   uint   `json:"hotelId" validate:"required,gt=0"`
	BookingId *uint  `json:"bookingId" validate:"omitempty,gt=0"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

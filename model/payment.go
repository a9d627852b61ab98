package model

type Payment struct {
	DTO
	BookingId   uint    `gorm:"uniqueIndex;not null" json:"bookingId"`
	UserId      uint    `gorm:"not null;index" json:"userId"`
	PaymentCode string  `gorm:"uniqueIndex;size:20" json:"paymentCode"`
	Amount      float64 `gorm:"not null" json:"amount"`
	Notes       string  `gorm:"type:text" json:"notes"`
	Status      string  `gorm:"not null;default:PENDING" json:"status"` // PENDING, PAID, REFUNDED

	Booking Booking `gorm:"foreignKey:BookingId" json:"booking,omitempty"`
	User    User    `gorm:"foreignKey:UserId" json:"user,omitempty"`
}

type CreatePaymentInput struct {
	BookingId uint    `json:"bookingId" validate:"required,gt=0"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
}

type PayShortageInput struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

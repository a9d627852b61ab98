package helper

import (
	"errors"
	"fmt"

	"hotel_manager/constants"
	"hotel_manager/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExpectedAmount is the full charge for a booking: the nightly price of
// the booked apartment or room times the number of nights.
func ExpectedAmount(booking *model.Booking) (float64, error) {
	nights := booking.Nights()
	if nights <= 0 {
		return 0, NewValidationError("Booking %d has an invalid date range", booking.ID)
	}
	if booking.IsApartmentBooking() && booking.Apartment != nil {
		return booking.Apartment.PricePerNight * float64(nights), nil
	}
	if booking.IsRoomBooking() && booking.Room != nil {
		return booking.Room.PricePerNight * float64(nights), nil
	}
	return 0, fmt.Errorf("booking %d has no priced resource loaded", booking.ID)
}

// BookingCharge is the reconciliation view of a booking's money state.
// Every figure is recomputed from the booking and its payment on each
// read; nothing here is stored.
type BookingCharge struct {
	BookingId      uint    `json:"bookingId"`
	ExpectedAmount float64 `json:"expectedAmount"`
	AmountPaid     float64 `json:"amountPaid"`
	Shortage       float64 `json:"shortage"`
	ExtraAmount    float64 `json:"extraAmount"`
	HasShortage    bool    `json:"hasShortage"`
	PaymentStatus  string  `json:"paymentStatus"`
	BookingStatus  string  `json:"bookingStatus"`
}

func ChargeFor(booking *model.Booking) (*BookingCharge, error) {
	expected, err := ExpectedAmount(booking)
	if err != nil {
		return nil, err
	}
	charge := &BookingCharge{
		BookingId:      booking.ID,
		ExpectedAmount: expected,
		BookingStatus:  booking.Status,
	}
	if booking.Payment != nil {
		charge.AmountPaid = booking.Payment.Amount
		charge.PaymentStatus = booking.Payment.Status
		if shortage := expected - booking.Payment.Amount; shortage > 0 {
			charge.Shortage = shortage
		}
		if extra := booking.Payment.Amount - expected; extra > 0 {
			charge.ExtraAmount = extra
		}
	} else {
		charge.Shortage = expected
	}
	charge.HasShortage = charge.Shortage > 0
	return charge, nil
}

// fullPaymentNotes describes a settling payment; anything above the
// expected amount is noted as extra.
func fullPaymentNotes(expected, paid float64) string {
	notes := fmt.Sprintf("Payment received in full. Expected: %.2f, Paid: %.2f.", expected, paid)
	if extra := paid - expected; extra > 0 {
		notes += fmt.Sprintf(" Extra: %.2f.", extra)
	}
	return notes
}

// CreatePayment records a payment against a pending booking and settles
// it. Paying the expected amount or more completes the booking; paying
// less parks it in partial payment with the shortage noted, and the
// payment is flagged for refund review.
func CreatePayment(db *gorm.DB, actingUserId uint, input model.CreatePaymentInput) (*model.Payment, error) {
	var payment model.Payment
	err := db.Transaction(func(tx *gorm.DB) error {
		var booking model.Booking
		if err := lockForUpdate(tx).
			Preload("Apartment").Preload("Room").
			First(&booking, input.BookingId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewNotFoundError("Booking not found with id: %d", input.BookingId)
			}
			return err
		}

		if booking.UserId != actingUserId {
			return NewForbiddenError("You can only pay for your own bookings")
		}

		// Duplicate payment is reported before any status gate.
		var existing int64
		if err := tx.Model(&model.Payment{}).
			Where("booking_id = ?", booking.ID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return NewConflictError("Booking already has a payment")
		}

		if booking.Status == constants.BookingCancelled {
			return NewStateError("Cannot pay for a cancelled booking")
		}
		if booking.Status != constants.BookingPending {
			return NewStateError("Booking is not awaiting payment")
		}

		expected, err := ExpectedAmount(&booking)
		if err != nil {
			return err
		}

		payment = model.Payment{
			BookingId:   booking.ID,
			UserId:      actingUserId,
			PaymentCode: "PAY-" + uuid.New().String()[:8],
			Amount:      input.Amount,
		}

		var bookingStatus string
		if input.Amount < expected {
			shortage := expected - input.Amount
			payment.Status = constants.PaymentRefunded
			payment.Notes = fmt.Sprintf(
				"Partial payment received. Expected: %.2f, Paid: %.2f. Shortage: %.2f. Please pay the remaining amount to confirm booking.",
				expected, input.Amount, shortage)
			bookingStatus = constants.BookingPartialPayment
		} else {
			payment.Status = constants.PaymentPaid
			payment.Notes = fullPaymentNotes(expected, input.Amount)
			bookingStatus = constants.BookingCompleted
		}

		if err := tx.Create(&payment).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return NewConflictError("Booking already has a payment")
			}
			return err
		}
		return tx.Model(&booking).Update("status", bookingStatus).Error
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// PayShortage tops up a partial payment. The shortage is recomputed from
// the booking's expected amount; anything less than the full shortage is
// rejected, anything equal or more settles the booking.
func PayShortage(db *gorm.DB, actingUserId uint, bookingId uint, amount float64) (*model.Payment, error) {
	var payment model.Payment
	err := db.Transaction(func(tx *gorm.DB) error {
		var booking model.Booking
		if err := lockForUpdate(tx).
			Preload("Apartment").Preload("Room").Preload("Payment").
			First(&booking, bookingId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewNotFoundError("Booking not found with id: %d", bookingId)
			}
			return err
		}

		if booking.UserId != actingUserId {
			return NewForbiddenError("You can only pay for your own bookings")
		}
		if booking.Status != constants.BookingPartialPayment || booking.Payment == nil {
			return NewStateError("Booking has no outstanding shortage")
		}
		if booking.Payment.Status != constants.PaymentRefunded {
			return NewStateError("Payment is not awaiting a shortage top-up")
		}

		expected, err := ExpectedAmount(&booking)
		if err != nil {
			return err
		}
		shortage := expected - booking.Payment.Amount
		if amount < shortage {
			return NewValidationError(
				"Amount %.2f does not cover the shortage of %.2f", amount, shortage)
		}

		payment = *booking.Payment
		payment.Amount += amount
		payment.Status = constants.PaymentPaid
		payment.Notes = fullPaymentNotes(expected, payment.Amount)

		if err := tx.Model(&model.Payment{}).
			Where("id = ?", payment.ID).
			Updates(map[string]interface{}{
				"amount": payment.Amount,
				"status": payment.Status,
				"notes":  payment.Notes,
			}).Error; err != nil {
			return err
		}
		return tx.Model(&booking).Update("status", constants.BookingCompleted).Error
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

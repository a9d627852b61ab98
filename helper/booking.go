package helper

import (
	"errors"

	"hotel_manager/constants"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// bookedResource is the one unit a booking holds: a whole apartment or a
// single room, never both.
type bookedResource struct {
	apartment *model.Apartment
	room      *model.Room
}

// CreateBooking admits a stay for the acting user. Every check and the
// final reservation run in one transaction so a failed booking never holds
// calendar days.
func CreateBooking(db *gorm.DB, actingUserId uint, input model.CreateBookingInput) (*model.Booking, error) {
	if err := validateDates(input.CheckInDate, input.CheckOutDate); err != nil {
		return nil, err
	}

	var booking model.Booking
	err := db.Transaction(func(tx *gorm.DB) error {
		var hotel model.Hotel
		if err := tx.First(&hotel, input.HotelId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewNotFoundError("Hotel not found with id: %d", input.HotelId)
			}
			return err
		}
		if hotel.IsActive != nil && !*hotel.IsActive {
			return NewStateError("Hotel is not accepting bookings")
		}

		overlap, err := HasUserOverlap(tx, actingUserId, input.CheckInDate, input.CheckOutDate)
		if err != nil {
			return err
		}
		if overlap {
			return NewConflictError("You already have a booking that overlaps these dates")
		}

		resource, err := resolveResource(tx, &hotel, input)
		if err != nil {
			return err
		}

		if err := admitResource(tx, resource, input); err != nil {
			return err
		}

		booking = model.Booking{
			PublicCode:     "BKG-" + uuid.New().String()[:8],
			UserId:         actingUserId,
			HotelId:        hotel.ID,
			CheckInDate:    input.CheckInDate,
			CheckOutDate:   input.CheckOutDate,
			NumberOfGuests: input.NumberOfGuests,
			BookingType:    input.BookingType,
			Status:         constants.BookingPending,
		}
		if resource.apartment != nil {
			booking.ApartmentId = &resource.apartment.ID
		} else {
			booking.RoomId = &resource.room.ID
		}

		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		if resource.apartment != nil {
			return ReserveApartmentDates(tx, resource.apartment.ID, input.CheckInDate, input.CheckOutDate)
		}
		return ReserveRoomDates(tx, resource.room.ID, input.CheckInDate, input.CheckOutDate)
	})
	if err != nil {
		return nil, err
	}

	if err := db.Preload("Hotel").Preload("Apartment").Preload("Room").
		First(&booking, booking.ID).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func validateDates(checkIn, checkOut utils.CustomDate) error {
	if checkIn.IsZero() || checkOut.IsZero() {
		return NewValidationError("Check-in and check-out dates are required")
	}
	if !checkOut.After(checkIn) {
		return NewValidationError("Check-out date must be after check-in date")
	}
	if !checkIn.After(utils.Today()) {
		return NewValidationError("Check-in date must be in the future")
	}
	return nil
}

func resolveResource(tx *gorm.DB, hotel *model.Hotel, input model.CreateBookingInput) (bookedResource, error) {
	switch input.BookingType {
	case constants.BookingTypeApartment:
		if input.ApartmentId == nil {
			return bookedResource{}, NewValidationError("apartmentId is required for an apartment booking")
		}
		if input.RoomId != nil {
			return bookedResource{}, NewValidationError("An apartment booking cannot also name a room")
		}
		var apartment model.Apartment
		if err := tx.First(&apartment, *input.ApartmentId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return bookedResource{}, NewNotFoundError("Apartment not found with id: %d", *input.ApartmentId)
			}
			return bookedResource{}, err
		}
		if apartment.HotelId != hotel.ID {
			return bookedResource{}, NewNotFoundError("Apartment not found with id: %d", *input.ApartmentId)
		}
		return bookedResource{apartment: &apartment}, nil

	case constants.BookingTypeRoom:
		if input.RoomId == nil {
			return bookedResource{}, NewValidationError("roomId is required for a room booking")
		}
		if input.ApartmentId != nil {
			return bookedResource{}, NewValidationError("A room booking cannot also name an apartment")
		}
		var room model.Room
		if err := tx.First(&room, *input.RoomId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return bookedResource{}, NewNotFoundError("Room not found with id: %d", *input.RoomId)
			}
			return bookedResource{}, err
		}
		if room.HotelId != hotel.ID {
			return bookedResource{}, NewNotFoundError("Room not found with id: %d", *input.RoomId)
		}
		return bookedResource{room: &room}, nil

	default:
		return bookedResource{}, NewValidationError("Unknown booking type: %s", input.BookingType)
	}
}

func admitResource(tx *gorm.DB, resource bookedResource, input model.CreateBookingInput) error {
	if resource.apartment != nil {
		return admitApartment(tx, resource.apartment, input)
	}
	return admitRoom(tx, resource.room, input)
}

func admitApartment(tx *gorm.DB, apartment *model.Apartment, input model.CreateBookingInput) error {
	if apartment.IsAvailable != nil && !*apartment.IsAvailable {
		return NewStateError("Apartment is not available for booking")
	}
	if input.NumberOfGuests > apartment.TotalCapacity {
		return NewStateError("Number of guests (%d) exceeds apartment capacity (%d)",
			input.NumberOfGuests, apartment.TotalCapacity)
	}

	overlap, err := HasApartmentOverlap(tx, apartment.ID, input.CheckInDate, input.CheckOutDate)
	if err != nil {
		return err
	}
	free, err := IsApartmentRangeFree(tx, apartment.ID, input.CheckInDate, input.CheckOutDate)
	if err != nil {
		return err
	}
	if overlap || !free {
		return NewConflictError("Apartment is not available for the selected dates")
	}
	return nil
}

func admitRoom(tx *gorm.DB, room *model.Room, input model.CreateBookingInput) error {
	if room.IsAvailable != nil && !*room.IsAvailable {
		return NewStateError("Room is not available for booking")
	}
	if room.BookableIndividually != nil && !*room.BookableIndividually {
		return NewStateError("Room cannot be booked individually")
	}
	if room.IsPartOfApartment() {
		var apartment model.Apartment
		if err := tx.First(&apartment, *room.ApartmentId).Error; err != nil {
			return err
		}
		if apartment.RoomsBookableSeparately != nil && !*apartment.RoomsBookableSeparately {
			return NewStateError("Rooms in this apartment cannot be booked separately")
		}
	}
	if input.NumberOfGuests > room.Capacity {
		return NewStateError("Number of guests (%d) exceeds room capacity (%d)",
			input.NumberOfGuests, room.Capacity)
	}

	overlap, err := HasRoomOverlap(tx, room.ID, input.CheckInDate, input.CheckOutDate)
	if err != nil {
		return err
	}
	free, err := IsRoomRangeFree(tx, room.ID, input.CheckInDate, input.CheckOutDate)
	if err != nil {
		return err
	}
	if overlap || !free {
		return NewConflictError("Room is not available for the selected dates")
	}
	return nil
}

// CancelBooking cancels on behalf of the acting user. The checks run in a
// fixed order: existence, ownership, already-cancelled, terminal state,
// then the payment gate. Held calendar days are released on success.
func CancelBooking(db *gorm.DB, actingUserId uint, bookingId uint, privileged bool) (*model.Booking, error) {
	var booking model.Booking
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).Preload("Payment").First(&booking, bookingId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewNotFoundError("Booking not found with id: %d", bookingId)
			}
			return err
		}

		if !privileged && booking.UserId != actingUserId {
			return NewForbiddenError("You can only cancel your own bookings")
		}
		if booking.Status == constants.BookingCancelled {
			return NewStateError("Booking is already cancelled")
		}
		if booking.Status == constants.BookingCompleted {
			return NewStateError("Cannot cancel a completed booking")
		}
		if booking.Payment != nil && booking.Payment.Status != constants.PaymentPending {
			return NewStateError("Cannot cancel a booking with a processed payment")
		}

		if err := tx.Model(&booking).Update("status", constants.BookingCancelled).Error; err != nil {
			return err
		}
		booking.Status = constants.BookingCancelled

		if booking.ApartmentId != nil {
			return ReleaseApartmentDates(tx, *booking.ApartmentId, booking.CheckInDate, booking.CheckOutDate)
		}
		if booking.RoomId != nil {
			return ReleaseRoomDates(tx, *booking.RoomId, booking.CheckInDate, booking.CheckOutDate)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// ConfirmBooking is the privileged manual transition out of PENDING.
func ConfirmBooking(db *gorm.DB, bookingId uint) (*model.Booking, error) {
	var booking model.Booking
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&booking, bookingId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewNotFoundError("Booking not found with id: %d", bookingId)
			}
			return err
		}
		if booking.Status != constants.BookingPending {
			return NewStateError("Only a pending booking can be confirmed")
		}
		if err := tx.Model(&booking).Update("status", constants.BookingConfirmed).Error; err != nil {
			return err
		}
		booking.Status = constants.BookingConfirmed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

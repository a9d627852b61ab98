package helper

import (
	"hotel_manager/constants"
	"hotel_manager/model"
	"hotel_manager/utils"

	"gorm.io/gorm"
)

// Two stays collide when neither ends before the other begins. Stays are
// half-open, so back-to-back bookings (checkout day == next check-in day)
// never collide. Cancelled bookings hold nothing.

func HasUserOverlap(tx *gorm.DB, userId uint, checkIn, checkOut utils.CustomDate) (bool, error) {
	var count int64
	err := tx.Model(&model.Booking{}).
		Where("user_id = ? AND status <> ?", userId, constants.BookingCancelled).
		Where("check_out_date > ? AND check_in_date < ?", checkIn, checkOut).
		Count(&count).Error
	return count > 0, err
}

func HasApartmentOverlap(tx *gorm.DB, apartmentId uint, checkIn, checkOut utils.CustomDate) (bool, error) {
	var count int64
	err := tx.Model(&model.Booking{}).
		Where("apartment_id = ? AND status <> ?", apartmentId, constants.BookingCancelled).
		Where("check_out_date > ? AND check_in_date < ?", checkIn, checkOut).
		Count(&count).Error
	return count > 0, err
}

func HasRoomOverlap(tx *gorm.DB, roomId uint, checkIn, checkOut utils.CustomDate) (bool, error) {
	var count int64
	err := tx.Model(&model.Booking{}).
		Where("room_id = ? AND status <> ?", roomId, constants.BookingCancelled).
		Where("check_out_date > ? AND check_in_date < ?", checkIn, checkOut).
		Count(&count).Error
	return count > 0, err
}

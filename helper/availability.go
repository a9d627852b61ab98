package helper

import (
	"errors"

	"hotel_manager/model"
	"hotel_manager/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockForUpdate adds a row lock for the admission path. Sqlite has no
// FOR UPDATE; its writes are serialized anyway.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// IsApartmentRangeFree reports whether every day of [checkIn, checkOut)
// is open on the apartment's calendar. A day with no row is open.
func IsApartmentRangeFree(tx *gorm.DB, apartmentId uint, checkIn, checkOut utils.CustomDate) (bool, error) {
	var count int64
	err := tx.Model(&model.ApartmentAvailability{}).
		Where("apartment_id = ? AND date >= ? AND date < ? AND is_available = ?",
			apartmentId, checkIn, checkOut, false).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

func IsRoomRangeFree(tx *gorm.DB, roomId uint, checkIn, checkOut utils.CustomDate) (bool, error) {
	var count int64
	err := tx.Model(&model.RoomAvailability{}).
		Where("room_id = ? AND date >= ? AND date < ? AND is_available = ?",
			roomId, checkIn, checkOut, false).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// ReserveApartmentDates marks every day of [checkIn, checkOut) unavailable,
// creating rows lazily for days never seen before. A day already taken, or
// a lost insert race on the (apartment, date) unique index, surfaces as a
// conflict.
func ReserveApartmentDates(tx *gorm.DB, apartmentId uint, checkIn, checkOut utils.CustomDate) error {
	for _, day := range checkIn.DatesUntil(checkOut) {
		var row model.ApartmentAvailability
		err := lockForUpdate(tx).
			Where("apartment_id = ? AND date = ?", apartmentId, day).
			First(&row).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Pointer flag: a plain false would be dropped in favor of the
			// column default on insert.
			row = model.ApartmentAvailability{
				ApartmentId: apartmentId,
				Date:        day,
				IsAvailable: utils.Ptr(false),
			}
			if err := tx.Create(&row).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return NewConflictError("Apartment is not available on %s", day.String())
				}
				return err
			}
			continue
		}
		if err != nil {
			return err
		}

		if row.IsAvailable != nil && !*row.IsAvailable {
			return NewConflictError("Apartment is not available on %s", day.String())
		}
		if err := tx.Model(&row).Update("is_available", false).Error; err != nil {
			return err
		}
	}
	return nil
}

func ReserveRoomDates(tx *gorm.DB, roomId uint, checkIn, checkOut utils.CustomDate) error {
	for _, day := range checkIn.DatesUntil(checkOut) {
		var row model.RoomAvailability
		err := lockForUpdate(tx).
			Where("room_id = ? AND date = ?", roomId, day).
			First(&row).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			row = model.RoomAvailability{
				RoomId:      roomId,
				Date:        day,
				IsAvailable: utils.Ptr(false),
			}
			if err := tx.Create(&row).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return NewConflictError("Room is not available on %s", day.String())
				}
				return err
			}
			continue
		}
		if err != nil {
			return err
		}

		if row.IsAvailable != nil && !*row.IsAvailable {
			return NewConflictError("Room is not available on %s", day.String())
		}
		if err := tx.Model(&row).Update("is_available", false).Error; err != nil {
			return err
		}
	}
	return nil
}

// ReleaseApartmentDates reopens existing rows in [checkIn, checkOut).
// Days that never got a row are already open; none are fabricated.
func ReleaseApartmentDates(tx *gorm.DB, apartmentId uint, checkIn, checkOut utils.CustomDate) error {
	return tx.Model(&model.ApartmentAvailability{}).
		Where("apartment_id = ? AND date >= ? AND date < ?", apartmentId, checkIn, checkOut).
		Update("is_available", true).Error
}

func ReleaseRoomDates(tx *gorm.DB, roomId uint, checkIn, checkOut utils.CustomDate) error {
	return tx.Model(&model.RoomAvailability{}).
		Where("room_id = ? AND date >= ? AND date < ?", roomId, checkIn, checkOut).
		Update("is_available", true).Error
}

// ApartmentCalendar lists each day of [from, to) with its availability,
// filling days without a row as open.
func ApartmentCalendar(db *gorm.DB, apartmentId uint, from, to utils.CustomDate) ([]model.DayAvailability, error) {
	var rows []model.ApartmentAvailability
	err := db.Where("apartment_id = ? AND date >= ? AND date < ?", apartmentId, from, to).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	taken := make(map[string]bool, len(rows))
	for _, r := range rows {
		if r.IsAvailable != nil && !*r.IsAvailable {
			taken[r.Date.String()] = true
		}
	}

	days := make([]model.DayAvailability, 0)
	for _, day := range from.DatesUntil(to) {
		days = append(days, model.DayAvailability{
			Date:        day,
			IsAvailable: !taken[day.String()],
		})
	}
	return days, nil
}

func RoomCalendar(db *gorm.DB, roomId uint, from, to utils.CustomDate) ([]model.DayAvailability, error) {
	var rows []model.RoomAvailability
	err := db.Where("room_id = ? AND date >= ? AND date < ?", roomId, from, to).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	taken := make(map[string]bool, len(rows))
	for _, r := range rows {
		if r.IsAvailable != nil && !*r.IsAvailable {
			taken[r.Date.String()] = true
		}
	}

	days := make([]model.DayAvailability, 0)
	for _, day := range from.DatesUntil(to) {
		days = append(days, model.DayAvailability{
			Date:        day,
			IsAvailable: !taken[day.String()],
		})
	}
	return days, nil
}

package helper

import (
	"testing"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

type fixtures struct {
	user      model.User
	otherUser model.User
	hotel     model.Hotel
	apartment model.Apartment
	room      model.Room
}

// seedStay creates a hotel with one bookable apartment (150/night, cap 4)
// and one standalone room (100/night, cap 2).
func seedStay(t *testing.T, db *gorm.DB) fixtures {
	t.Helper()

	f := fixtures{
		user:  model.User{Email: "guest@example.com", Password: "x", Role: constants.ROLE_USER, Active: true},
		hotel: model.Hotel{Email: "hotel@example.com", Name: "Test Hotel", Slug: "test-hotel", Address: "1 Main St", City: "Hanoi", Country: "Vietnam", IsActive: utils.Ptr(true)},
	}
	f.otherUser = model.User{Email: "other@example.com", Password: "x", Role: constants.ROLE_USER, Active: true}

	if err := db.Create(&f.user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if err := db.Create(&f.otherUser).Error; err != nil {
		t.Fatalf("seed other user: %v", err)
	}
	if err := db.Create(&f.hotel).Error; err != nil {
		t.Fatalf("seed hotel: %v", err)
	}

	f.apartment = model.Apartment{
		HotelId:                 f.hotel.ID,
		ApartmentNumber:         "A-101",
		Name:                    "Garden Suite",
		PricePerNight:           150,
		TotalCapacity:           4,
		NumberOfBedrooms:        2,
		NumberOfBathrooms:       1,
		IsAvailable:             utils.Ptr(true),
		RoomsBookableSeparately: utils.Ptr(true),
		ApartmentType:           "TWO_BEDROOM",
	}
	if err := db.Create(&f.apartment).Error; err != nil {
		t.Fatalf("seed apartment: %v", err)
	}

	f.room = model.Room{
		HotelId:              f.hotel.ID,
		RoomNumber:           "101",
		PricePerNight:        100,
		Capacity:             2,
		IsAvailable:          utils.Ptr(true),
		BookableIndividually: utils.Ptr(true),
		RoomType:             "STANDARD",
	}
	if err := db.Create(&f.room).Error; err != nil {
		t.Fatalf("seed room: %v", err)
	}

	return f
}

func roomBookingInput(f fixtures, checkIn, checkOut utils.CustomDate) model.CreateBookingInput {
	return model.CreateBookingInput{
		HotelId:        f.hotel.ID,
		CheckInDate:    checkIn,
		CheckOutDate:   checkOut,
		NumberOfGuests: 2,
		BookingType:    constants.BookingTypeRoom,
		RoomId:         &f.room.ID,
	}
}

func apartmentBookingInput(f fixtures, checkIn, checkOut utils.CustomDate) model.CreateBookingInput {
	return model.CreateBookingInput{
		HotelId:        f.hotel.ID,
		CheckInDate:    checkIn,
		CheckOutDate:   checkOut,
		NumberOfGuests: 3,
		BookingType:    constants.BookingTypeApartment,
		ApartmentId:    &f.apartment.ID,
	}
}

func wantDomainKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", kind)
	}
	de := AsDomain(err)
	if de == nil {
		t.Fatalf("expected %s error, got %v", kind, err)
	}
	if de.Kind != kind {
		t.Fatalf("expected %s error, got %s: %s", kind, de.Kind, de.Message)
	}
}

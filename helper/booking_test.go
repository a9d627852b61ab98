package helper

import (
	"testing"

	"hotel_manager/constants"
	"hotel_manager/model"
	"hotel_manager/utils"
)

func TestCreateBookingRoomSuccess(t *testing.T) {
	db := setupTestDB(t)
	f := seedStay(t, db)

	checkIn := utils.Today().AddDays(7)
	checkOut := checkIn.AddDays(2)

	booking, err := CreateBooking(db, f.user.ID, roomBookingInput(f, checkIn, checkOut))
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	if booking.Status != constants.BookingPending {
		t.Fatalf("status = %s, want PENDING", booking.Status)
	}
	if booking.PublicCode == "" {
		t.Fatal("booking should get a public code")
	}
	if booking.RoomId == nil || *booking.RoomId != f.room.ID {
		t.Fatal("booking should reference the room")
	}
	if booking.ApartmentId != nil {
		t.Fatal("room booking must not reference an apartment")
	}
	if booking.Nights() != 2 {
		t.Fatalf("nights = %d, want 2", booking.Nights())
	}

	free, err := IsRoomRangeFree(db, f.room.ID, checkIn, checkOut)
	if err != nil {
		t.Fatalf("range check: %v", err)
	}
	if free {
		t.Fatal("booked range should be held on the calendar")
	}
}

func TestCreateBookingApartmentSuccess(t *testing.T) {
	db := setupTestDB(t)
	f := seedStay(t, db)

	checkIn := utils.Today().AddDays(7)
	booking, err := CreateBooking(db, f.user.ID, apartmentBookingInput(f, checkIn, checkIn.AddDays(3)))
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	if booking.ApartmentId == nil || *booking.ApartmentId != f.apartment.ID {
		t.Fatal("booking should reference the apartment")
	}
	if booking.RoomId != nil {
		t.Fatal("apartment booking must not reference a room")
	}
}

func TestCreateBookingDateValidation(t *testing.T) {
	db := setupTestDB(t)
	f := seedStay(t, db)

	future := utils.Today().AddDays(7)

	// checkout not after checkin
	_, err := CreateBooking(db, f.user.ID, roomBookingInput(f, future, future))
	wantDomainKind(t, err, KindValidation)

	// reversed range
	_, err = CreateBooking(db, f.user.ID, roomBookingInput(f, future.AddDays(2), future))
	wantDomainKind(t, err, KindValidation)

	// check-in today is too late to book
	_, err = CreateBooking(db, f.user.ID, roomBookingInput(f, utils.Today(), future))
	wantDomainKind(t, err, KindValidation)

	// check-in in the past
	_, err = CreateBooking(db, f.user.ID, roomBookingInput(f, utils.Today().AddDays(-3), future))
	wantDomainKind(t, err, KindValidation)
}

func TestCreateBookingUnknownHotelAndResource(t *testing.T) {
	db := setupTestDB(t)
	f := seedStay(t, db)

	checkIn := utils.Today().AddDays(7)
	checkOut := checkIn.AddDays(2)

	input := roomBookingInput(f, checkIn, checkOut)
	input.HotelId = 9999
	_, err := CreateBooking(db, f.user.ID, input)
	wantDomainKind(t, err, KindNotFound)

	input = roomBookingInput(f, checkIn, checkOut)
	input.RoomId = utils.Ptr(uint(9999))
	_, err = CreateBooking(db, f.user.ID, input)
	wantDomainKind(t, err, KindNotFound)

	// room from another hotel is treated as unknown
	otherHotel := model.Hotel{Email: "other-hotel@example.com", Name: "Other", Slug: "other", Address: "2 St", City: "Hue", Country: "Vietnam", IsActive: utils.Ptr(true)}
	if err := db.Create(&otherHotel).Error; err != nil {
		t.Fatalf("seed hotel: %v", err)
	}
	input = roomBookingInput(f, checkIn, checkOut)
	input.HotelId = otherHotel.ID
	_, err = CreateBooking(db, f.user.ID, input)
	wantDomainKind(t, err, KindNotFound)
}

func TestCreateBookingTypeResourceMismatch(t *testing.T) {
	db := setupTestDB(t)
	f := seedStay(t, db)

	checkIn := utils.Today().AddDays(7)
	checkOut := checkIn.AddDays(2)

	input := roomBookingInput(f, checkIn, checkOut)
	input.RoomId = nil
	_, err := CreateBooking(db, f.user.ID, input)
	wantDomainKind(t, err, KindValidation)

	input = roomBookingInput(f, checkIn, checkOut)
	input.ApartmentId = &f.apartment.ID
	_, err = CreateBooking(db, f.user.ID, input)
	wantDomainKind(t, err, KindValidation)

	input = apartmentBookingInput(f, checkIn, checkOut)
	input.ApartmentId = nil
	_, err = CreateBooking(db, f.user.ID, input)
	wantDomainKind(t, err, KindValidation)
}

func TestCreateBookingUserScheduleConflict(t *testing.T) {
	db := setupTestDB(t)
	f := seedStay(t, db)

	checkIn := utils.Today().AddDays(7)
	checkOut := checkIn.AddDays(3)

	if _, err := CreateBooking(db, f.user.ID, roomBookingInput(f, checkIn, checkOut)); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	// Same user, different resource, overlapping dates.
	_, err := CreateBooking(db, f.user.ID, apartmentBookingInput(f, checkIn.AddDays(1), checkOut.AddDays(1)))
	wantDomainKind(t, err, KindConflict)

	// Back-to-back is allowed.
	if _, err := CreateBooking(db, f.user.ID, apartmentBookingInput(f, checkOut, checkOut.AddDays(2))); err != nil {
		t.Fatalf("back-to-back booking: %v", err)
	}
}

func TestCreateBookingResourceDoubleBook(t *testing.T) {
	db := setupTestDB(t)
	f := seedStay(t, db)

	checkIn := utils.Today().AddDays(7)
	checkOut := checkIn.AddDays(3)

	if _, err := CreateBooking(db, f.user.ID, roomBookingInput(f, checkIn, checkOut)); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	// Another user, same room, overlapping dates.
	_, err := CreateBooking(db, f.otherUser.ID, roomBookingInput(f, checkIn.AddDays(1), checkOut.AddDays(2)))
	wantDomainKind(t, err, KindConflict)

	// Another user can take the room back-to-back.
	if _, err := CreateBooking(db, f.otherUser.ID, roomBookingInput(f, checkOut, checkOut.AddDays(2))); err != nil {
		t.Fatalf("back-to-back booking: %v", err)
	}
}

func TestCreateBookingResourceGates(t *testing.T) {
	db := setupTestDB(t)
	f := seedStay(t, db)

	checkIn := utils.Today().AddDays(7)
	checkOut := checkIn.AddDays(2)

	// Capacity exceeded.
	input := roomBookingInput(f, checkIn, checkOut)
	input.NumberOfGuests = 3
	_, err := CreateBooking(db, f.user.ID, input)
	wantDomainKind(t, err, KindState)

	// Availability flag off.
	if err := db.Model(&f.room).Update("is_available", false).Error; err != nil {
		t.Fatalf("update room: %v", err)
	}
	_, err = CreateBooking(db, f.user.ID, roomBookingInput(f, checkIn, checkOut))
	wantDomainKind(t, err, KindState)
	if err := db.Model(&f.room).Update("is_available", true).Error; err != nil {
		t.Fatalf("update room: %v", err)
	}

	// Not bookable individually.
	if err := db.Model(&f.room).Update("bookable_individually", false).Error; err != nil {
		t.Fatalf("update room: %v", err)
	}
	_, err = CreateBooking(db, f.user.ID, roomBookingInput(f, checkIn, checkOut))
	wantDomainKind(t, err, KindState)
}

func TestCreateBookingRoomInsideApartment(t *testing.T) {
	db := setupTestDB(t)
	f := seedStay(t, db)

	bedroom := model.Room{
		HotelId:              f.hotel.ID,
		ApartmentId:          &f.apartment.ID,
		RoomNumber:           "A-101-1",
		PricePerNight:        80,
		Capacity:             2,
		IsAvailable:          utils.Ptr(true),
		BookableIndividually: utils.Ptr(true),
		RoomType:             "BEDROOM",
	}
	if err := db.Create(&bedroom).Error; err != nil {
		t.Fatalf("seed bedroom: %v", err)
	}

	checkIn := utils.Today().AddDays(7)
	checkOut := checkIn.AddDays(2)

	input := roomBookingInput(f, checkIn, checkOut)
	input.RoomId = &bedroom.ID

	// Allowed while the apartment opts in.
	if _, err := CreateBooking(db, f.user.ID, input); err != nil {
		t.Fatalf("bedroom booking: %v", err)
	}

	// Blocked when the apartment opts out.
	if err := db.Model(&f.apartment).Update("rooms_bookable_separately", false).Error; err != nil {
		t.Fatalf("update apartment: %v", err)
	}
	input.CheckInDate = checkOut
	input.CheckOutDate = checkOut.AddDays(2)
	_, err := CreateBooking(db, f.user.ID, input)
	wantDomainKind(t, err, KindState)
}

func TestCancelBookingReleasesDates(t *testing.T) {
	db := setupTestDB(t)
	f := seedStay(t, db)

	checkIn := utils.Today().AddDays(7)
	checkOut := checkIn.AddDays(3)

	booking, err := CreateBooking(db, f.user.ID, roomBookingInput(f, checkIn, checkOut))
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	cancelled, err := CancelBooking(db, f.user.ID, booking.ID, false)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled.Status != constants.BookingCancelled {
		t.Fatalf("status = %s, want CANCELLED", cancelled.Status)
	}

	// The same range can be booked again.
	if _, err := CreateBooking(db, f.otherUser.ID, roomBookingInput(f, checkIn, checkOut)); err != nil {
		t.Fatalf("rebook after cancel: %v", err)
	}
}

func TestCancelBookingGateOrder(t *testing.T) {
	db := setupTestDB(t)
	f := seedStay(t, db)

	checkIn := utils.Today().AddDays(7)
	booking, err := CreateBooking(db, f.user.ID, roomBookingInput(f, checkIn, checkIn.AddDays(2)))
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	// Unknown booking.
	_, err = CancelBooking(db, f.user.ID, 9999, false)
	wantDomainKind(t, err, KindNotFound)

	// Someone else's booking.
	_, err = CancelBooking(db, f.otherUser.ID, booking.ID, false)
	wantDomainKind(t, err, KindForbidden)

	// Privileged callers skip the ownership gate.
	if _, err := CancelBooking(db, f.otherUser.ID, booking.ID, true); err != nil {
		t.Fatalf("privileged cancel: %v", err)
	}

	// Already cancelled.
	_, err = CancelBooking(db, f.user.ID, booking.ID, false)
	wantDomainKind(t, err, KindState)
}

func TestCancelBookingTerminalAndPaymentGates(t *testing.T) {
	db := setupTestDB(t)
	f := seedStay(t, db)

	checkIn := utils.Today().AddDays(7)
	booking, err := CreateBooking(db, f.user.ID, roomBookingInput(f, checkIn, checkIn.AddDays(2)))
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	// Completed bookings cannot be cancelled.
	if err := db.Model(booking).Update("status", constants.BookingCompleted).Error; err != nil {
		t.Fatalf("update status: %v", err)
	}
	_, err = CancelBooking(db, f.user.ID, booking.ID, false)
	wantDomainKind(t, err, KindState)

	// A processed (partial) payment also blocks cancellation.
	if err := db.Model(booking).Update("status", constants.BookingPartialPayment).Error; err != nil {
		t.Fatalf("update status: %v", err)
	}
	payment := model.Payment{
		BookingId:   booking.ID,
		UserId:      f.user.ID,
		PaymentCode: "PAY-TEST0001",
		Amount:      100,
		Status:      constants.PaymentRefunded,
	}
	if err := db.Create(&payment).Error; err != nil {
		t.Fatalf("seed payment: %v", err)
	}
	_, err = CancelBooking(db, f.user.ID, booking.ID, false)
	wantDomainKind(t, err, KindState)
}

func TestConfirmBooking(t *testing.T) {
	db := setupTestDB(t)
	f := seedStay(t, db)

	checkIn := utils.Today().AddDays(7)
	booking, err := CreateBooking(db, f.user.ID, roomBookingInput(f, checkIn, checkIn.AddDays(2)))
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	confirmed, err := ConfirmBooking(db, booking.ID)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if confirmed.Status != constants.BookingConfirmed {
		t.Fatalf("status = %s, want CONFIRMED", confirmed.Status)
	}

	// Only pending bookings can be confirmed.
	_, err = ConfirmBooking(db, booking.ID)
	wantDomainKind(t, err, KindState)
}

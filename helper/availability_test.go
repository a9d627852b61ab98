package helper

import (
	"testing"

	"hotel_manager/model"
	"hotel_manager/utils"
)

func TestReserveRoomDatesMarksHalfOpenRange(t *testing.T) {
	db := setupTestDB(t)
	f := seedStay(t, db)

	checkIn := utils.Today().AddDays(5)
	checkOut := checkIn.AddDays(3)

	if err := ReserveRoomDates(db, f.room.ID, checkIn, checkOut); err != nil {
		t.Fatalf("reserve: %v", err)
	}

	var rows []model.RoomAvailability
	if err := db.Where("room_id = ?", f.room.ID).Find(&rows).Error; err != nil {
		t.Fatalf("load rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 availability rows, got %d", len(rows))
	}
	for _, r := range rows {
		if r.IsAvailable == nil || *r.IsAvailable {
			t.Fatalf("day %s should be unavailable", r.Date)
		}
		if r.Date.Equal(checkOut) {
			t.Fatalf("checkout day %s must not be reserved", checkOut)
		}
	}

	// The false must survive the insert itself, not just the in-memory row.
	var reserved int64
	err := db.Model(&model.RoomAvailability{}).
		Where("room_id = ? AND is_available = ?", f.room.ID, false).
		Count(&reserved).Error
	if err != nil {
		t.Fatalf("count reserved: %v", err)
	}
	if reserved != 3 {
		t.Fatalf("expected 3 reserved rows in the store, got %d", reserved)
	}
}

func TestReserveRoomDatesConflictsOnTakenDay(t *testing.T) {
	db := setupTestDB(t)
	f := seedStay(t, db)

	checkIn := utils.Today().AddDays(5)
	if err := ReserveRoomDates(db, f.room.ID, checkIn, checkIn.AddDays(2)); err != nil {
		t.Fatalf("first reserve: %v", err)
	}

	err := ReserveRoomDates(db, f.room.ID, checkIn.AddDays(1), checkIn.AddDays(4))
	wantDomainKind(t, err, KindConflict)
}

func TestReleaseRoomDatesReopensWithoutFabricating(t *testing.T) {
	db := setupTestDB(t)
	f := seedStay(t, db)

	checkIn := utils.Today().AddDays(5)
	checkOut := checkIn.AddDays(2)
	if err := ReserveRoomDates(db, f.room.ID, checkIn, checkOut); err != nil {
		t.Fatalf("reserve: %v", err)
	}

	// Release a wider window than was reserved.
	if err := ReleaseRoomDates(db, f.room.ID, checkIn.AddDays(-2), checkOut.AddDays(2)); err != nil {
		t.Fatalf("release: %v", err)
	}

	var rows []model.RoomAvailability
	if err := db.Where("room_id = ?", f.room.ID).Find(&rows).Error; err != nil {
		t.Fatalf("load rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("release must not create rows, got %d", len(rows))
	}
	for _, r := range rows {
		if r.IsAvailable == nil || !*r.IsAvailable {
			t.Fatalf("day %s should be open after release", r.Date)
		}
	}
}

func TestIsRoomRangeFree(t *testing.T) {
	db := setupTestDB(t)
	f := seedStay(t, db)

	checkIn := utils.Today().AddDays(5)
	checkOut := checkIn.AddDays(2)

	free, err := IsRoomRangeFree(db, f.room.ID, checkIn, checkOut)
	if err != nil {
		t.Fatalf("range check: %v", err)
	}
	if !free {
		t.Fatal("range with no rows should be free")
	}

	if err := ReserveRoomDates(db, f.room.ID, checkIn, checkOut); err != nil {
		t.Fatalf("reserve: %v", err)
	}

	free, err = IsRoomRangeFree(db, f.room.ID, checkIn, checkOut)
	if err != nil {
		t.Fatalf("range check: %v", err)
	}
	if free {
		t.Fatal("reserved range should not be free")
	}

	// The day starting at checkout is untouched.
	free, err = IsRoomRangeFree(db, f.room.ID, checkOut, checkOut.AddDays(2))
	if err != nil {
		t.Fatalf("range check: %v", err)
	}
	if !free {
		t.Fatal("range after checkout should be free")
	}
}

func TestApartmentCalendarFillsMissingDays(t *testing.T) {
	db := setupTestDB(t)
	f := seedStay(t, db)

	from := utils.Today().AddDays(5)
	if err := ReserveApartmentDates(db, f.apartment.ID, from.AddDays(1), from.AddDays(2)); err != nil {
		t.Fatalf("reserve: %v", err)
	}

	days, err := ApartmentCalendar(db, f.apartment.ID, from, from.AddDays(4))
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}
	if len(days) != 4 {
		t.Fatalf("expected 4 days, got %d", len(days))
	}
	for i, day := range days {
		wantAvailable := i != 1
		if day.IsAvailable != wantAvailable {
			t.Fatalf("day %s: available = %v, want %v", day.Date, day.IsAvailable, wantAvailable)
		}
	}
}

func TestHasRoomOverlapHalfOpen(t *testing.T) {
	db := setupTestDB(t)
	f := seedStay(t, db)

	checkIn := utils.Today().AddDays(10)
	checkOut := checkIn.AddDays(3)

	if _, err := CreateBooking(db, f.user.ID, roomBookingInput(f, checkIn, checkOut)); err != nil {
		t.Fatalf("create booking: %v", err)
	}

	cases := []struct {
		name    string
		in, out utils.CustomDate
		want    bool
	}{
		{"identical", checkIn, checkOut, true},
		{"contained", checkIn.AddDays(1), checkOut.AddDays(-1), true},
		{"straddles start", checkIn.AddDays(-1), checkIn.AddDays(1), true},
		{"straddles end", checkOut.AddDays(-1), checkOut.AddDays(1), true},
		{"back to back after", checkOut, checkOut.AddDays(2), false},
		{"back to back before", checkIn.AddDays(-2), checkIn, false},
		{"disjoint", checkOut.AddDays(5), checkOut.AddDays(7), false},
	}
	for _, tc := range cases {
		got, err := HasRoomOverlap(db, f.room.ID, tc.in, tc.out)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: overlap = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestCancelledBookingDoesNotOverlap(t *testing.T) {
	db := setupTestDB(t)
	f := seedStay(t, db)

	checkIn := utils.Today().AddDays(10)
	checkOut := checkIn.AddDays(3)

	booking, err := CreateBooking(db, f.user.ID, roomBookingInput(f, checkIn, checkOut))
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	if _, err := CancelBooking(db, f.user.ID, booking.ID, false); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	got, err := HasRoomOverlap(db, f.room.ID, checkIn, checkOut)
	if err != nil {
		t.Fatalf("overlap: %v", err)
	}
	if got {
		t.Fatal("cancelled booking must not block the range")
	}
}

package helper

import (
	"strings"
	"testing"

	"hotel_manager/constants"
	"hotel_manager/model"
	"hotel_manager/utils"

	"gorm.io/gorm"
)

// bookRoomStay books the standalone room (100/night) for three nights,
// so the expected charge is 300.
func bookRoomStay(t *testing.T, db *gorm.DB, f fixtures) *model.Booking {
	t.Helper()
	checkIn := utils.Today().AddDays(7)
	booking, err := CreateBooking(db, f.user.ID, roomBookingInput(f, checkIn, checkIn.AddDays(3)))
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	return booking
}

func TestExpectedAmount(t *testing.T) {
	db := setupTestDB(t)
	f := seedStay(t, db)

	booking := bookRoomStay(t, db, f)

	expected, err := ExpectedAmount(booking)
	if err != nil {
		t.Fatalf("expected amount: %v", err)
	}
	if expected != 300 {
		t.Fatalf("expected amount = %.2f, want 300", expected)
	}
}

func TestExpectedAmountRejectsNonPositiveNights(t *testing.T) {
	db := setupTestDB(t)
	f := seedStay(t, db)

	day := utils.Today().AddDays(7)
	booking := &model.Booking{
		RoomId:       &f.room.ID,
		BookingType:  constants.BookingTypeRoom,
		CheckInDate:  day,
		CheckOutDate: day,
		Room:         &f.room,
	}
	_, err := ExpectedAmount(booking)
	wantDomainKind(t, err, KindValidation)
}

func TestCreatePaymentFullAmountCompletes(t *testing.T) {
	db := setupTestDB(t)
	f := seedStay(t, db)
	booking := bookRoomStay(t, db, f)

	payment, err := CreatePayment(db, f.user.ID, model.CreatePaymentInput{BookingId: booking.ID, Amount: 300})
	if err != nil {
		t.Fatalf("create payment: %v", err)
	}
	if payment.Status != constants.PaymentPaid {
		t.Fatalf("payment status = %s, want PAID", payment.Status)
	}

	var reloaded model.Booking
	if err := db.First(&reloaded, booking.ID).Error; err != nil {
		t.Fatalf("reload booking: %v", err)
	}
	if reloaded.Status != constants.BookingCompleted {
		t.Fatalf("booking status = %s, want COMPLETED", reloaded.Status)
	}
}

func TestCreatePaymentOverpaymentCompletes(t *testing.T) {
	db := setupTestDB(t)
	f := seedStay(t, db)
	booking := bookRoomStay(t, db, f)

	payment, err := CreatePayment(db, f.user.ID, model.CreatePaymentInput{BookingId: booking.ID, Amount: 350})
	if err != nil {
		t.Fatalf("create payment: %v", err)
	}
	if payment.Status != constants.PaymentPaid {
		t.Fatalf("payment status = %s, want PAID", payment.Status)
	}
	if !strings.Contains(payment.Notes, "Extra: 50.00") {
		t.Fatalf("notes should record the overpayment, got %q", payment.Notes)
	}

	var reloaded model.Booking
	if err := db.Preload("Apartment").Preload("Room").Preload("Payment").First(&reloaded, booking.ID).Error; err != nil {
		t.Fatalf("reload booking: %v", err)
	}
	charge, err := ChargeFor(&reloaded)
	if err != nil {
		t.Fatalf("charge: %v", err)
	}
	if charge.ExtraAmount != 50 {
		t.Fatalf("extra = %.2f, want 50", charge.ExtraAmount)
	}
	if charge.HasShortage {
		t.Fatal("overpaid booking must not report a shortage")
	}
}

func TestCreatePaymentPartialParksBooking(t *testing.T) {
	db := setupTestDB(t)
	f := seedStay(t, db)
	booking := bookRoomStay(t, db, f)

	payment, err := CreatePayment(db, f.user.ID, model.CreatePaymentInput{BookingId: booking.ID, Amount: 250})
	if err != nil {
		t.Fatalf("create payment: %v", err)
	}
	if payment.Status != constants.PaymentRefunded {
		t.Fatalf("payment status = %s, want REFUNDED", payment.Status)
	}
	if !strings.Contains(payment.Notes, "Shortage: 50.00") {
		t.Fatalf("notes should record the shortage, got %q", payment.Notes)
	}

	var reloaded model.Booking
	if err := db.First(&reloaded, booking.ID).Error; err != nil {
		t.Fatalf("reload booking: %v", err)
	}
	if reloaded.Status != constants.BookingPartialPayment {
		t.Fatalf("booking status = %s, want PARTIAL_PAYMENT", reloaded.Status)
	}

	if err := db.Preload("Apartment").Preload("Room").Preload("Payment").First(&reloaded, booking.ID).Error; err != nil {
		t.Fatalf("reload booking: %v", err)
	}
	charge, err := ChargeFor(&reloaded)
	if err != nil {
		t.Fatalf("charge: %v", err)
	}
	if charge.Shortage != 50 {
		t.Fatalf("shortage = %.2f, want 50", charge.Shortage)
	}
	if !charge.HasShortage {
		t.Fatal("partial payment must report a shortage")
	}
	if charge.ExtraAmount != 0 {
		t.Fatalf("extra = %.2f, want 0", charge.ExtraAmount)
	}
}

func TestPayShortageSettlesBooking(t *testing.T) {
	db := setupTestDB(t)
	f := seedStay(t, db)
	booking := bookRoomStay(t, db, f)

	if _, err := CreatePayment(db, f.user.ID, model.CreatePaymentInput{BookingId: booking.ID, Amount: 250}); err != nil {
		t.Fatalf("create payment: %v", err)
	}

	payment, err := PayShortage(db, f.user.ID, booking.ID, 50)
	if err != nil {
		t.Fatalf("pay shortage: %v", err)
	}
	if payment.Status != constants.PaymentPaid {
		t.Fatalf("payment status = %s, want PAID", payment.Status)
	}
	if payment.Amount != 300 {
		t.Fatalf("payment amount = %.2f, want 300", payment.Amount)
	}

	var reloaded model.Booking
	if err := db.First(&reloaded, booking.ID).Error; err != nil {
		t.Fatalf("reload booking: %v", err)
	}
	if reloaded.Status != constants.BookingCompleted {
		t.Fatalf("booking status = %s, want COMPLETED", reloaded.Status)
	}
}

func TestPayShortageRecordsExcessAsExtra(t *testing.T) {
	db := setupTestDB(t)
	f := seedStay(t, db)
	booking := bookRoomStay(t, db, f)

	if _, err := CreatePayment(db, f.user.ID, model.CreatePaymentInput{BookingId: booking.ID, Amount: 250}); err != nil {
		t.Fatalf("create payment: %v", err)
	}

	// 80 against a shortage of 50.
	payment, err := PayShortage(db, f.user.ID, booking.ID, 80)
	if err != nil {
		t.Fatalf("pay shortage: %v", err)
	}
	if payment.Amount != 330 {
		t.Fatalf("payment amount = %.2f, want 330", payment.Amount)
	}
	if !strings.Contains(payment.Notes, "Extra: 30.00") {
		t.Fatalf("notes should record the excess, got %q", payment.Notes)
	}
}

func TestPayShortageRejectsUnderpayment(t *testing.T) {
	db := setupTestDB(t)
	f := seedStay(t, db)
	booking := bookRoomStay(t, db, f)

	if _, err := CreatePayment(db, f.user.ID, model.CreatePaymentInput{BookingId: booking.ID, Amount: 250}); err != nil {
		t.Fatalf("create payment: %v", err)
	}

	_, err := PayShortage(db, f.user.ID, booking.ID, 40)
	wantDomainKind(t, err, KindValidation)

	// Nothing changed.
	var reloaded model.Booking
	if err := db.Preload("Payment").First(&reloaded, booking.ID).Error; err != nil {
		t.Fatalf("reload booking: %v", err)
	}
	if reloaded.Status != constants.BookingPartialPayment {
		t.Fatalf("booking status = %s, want PARTIAL_PAYMENT", reloaded.Status)
	}
	if reloaded.Payment.Amount != 250 {
		t.Fatalf("payment amount = %.2f, want 250", reloaded.Payment.Amount)
	}
}

func TestPayShortageWithoutPartialPayment(t *testing.T) {
	db := setupTestDB(t)
	f := seedStay(t, db)
	booking := bookRoomStay(t, db, f)

	_, err := PayShortage(db, f.user.ID, booking.ID, 300)
	wantDomainKind(t, err, KindState)
}

func TestCreatePaymentOwnershipAndStateGates(t *testing.T) {
	db := setupTestDB(t)
	f := seedStay(t, db)
	booking := bookRoomStay(t, db, f)

	// Not the booking owner.
	_, err := CreatePayment(db, f.otherUser.ID, model.CreatePaymentInput{BookingId: booking.ID, Amount: 300})
	wantDomainKind(t, err, KindForbidden)

	// Unknown booking.
	_, err = CreatePayment(db, f.user.ID, model.CreatePaymentInput{BookingId: 9999, Amount: 300})
	wantDomainKind(t, err, KindNotFound)

	// A second payment is a duplicate, even though the first one already
	// moved the booking out of PENDING.
	if _, err := CreatePayment(db, f.user.ID, model.CreatePaymentInput{BookingId: booking.ID, Amount: 300}); err != nil {
		t.Fatalf("create payment: %v", err)
	}
	_, err = CreatePayment(db, f.user.ID, model.CreatePaymentInput{BookingId: booking.ID, Amount: 300})
	wantDomainKind(t, err, KindConflict)
}

func TestCreatePaymentCancelledBooking(t *testing.T) {
	db := setupTestDB(t)
	f := seedStay(t, db)
	booking := bookRoomStay(t, db, f)

	if _, err := CancelBooking(db, f.user.ID, booking.ID, false); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	_, err := CreatePayment(db, f.user.ID, model.CreatePaymentInput{BookingId: booking.ID, Amount: 300})
	wantDomainKind(t, err, KindState)
}

package handler

import (
	"errors"
	"fmt"
	"log"
	"time"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func parseCalendarWindow(c *fiber.Ctx) (utils.CustomDate, utils.CustomDate, error) {
	from := utils.Today()
	to := from.AddDays(30)

	if s := c.Query("from"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return utils.CustomDate{}, utils.CustomDate{}, err
		}
		from = utils.CustomDate{Time: t}
	}
	if s := c.Query("to"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return utils.CustomDate{}, utils.CustomDate{}, err
		}
		to = utils.CustomDate{Time: t}
	}
	if !to.After(from) {
		return utils.CustomDate{}, utils.CustomDate{}, errors.New("'to' must be after 'from'")
	}
	return from, to, nil
}

func respondDomainError(c *fiber.Ctx, err error) error {
	if de := helper.AsDomain(err); de != nil {
		return utils.ErrorResponse(c, de.HTTPStatus(), de.Message, err)
	}
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
}

func CreateBooking(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateBookingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("locals missing"))
	}

	claim, _, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, errors.New("no user"))
	}

	booking, err := helper.CreateBooking(database.DB, claim.UserId, input)
	if err != nil {
		return respondDomainError(c, err)
	}

	sendConfirmation(claim.Email, booking)
	PublishAvailabilityUpdate(booking.HotelId)

	return utils.SuccessResponse(c, fiber.StatusCreated, booking)
}

func sendConfirmation(email string, booking *model.Booking) {
	if email == "" {
		return
	}

	expected, err := helper.ExpectedAmount(booking)
	if err != nil {
		log.Printf("confirmation email skipped for booking %d: %v", booking.ID, err)
		return
	}

	resourceName := ""
	if booking.Apartment != nil {
		resourceName = booking.Apartment.Name
	} else if booking.Room != nil {
		resourceName = "Room " + booking.Room.RoomNumber
	}

	qrPNG, err := utils.GenerateQRCode(booking.PublicCode, 256)
	if err != nil {
		log.Printf("QR generation failed for booking %d: %v", booking.ID, err)
		qrPNG = nil
	}

	utils.SendBookingConfirmationEmail(email, utils.BookingConfirmationData{
		BookingCode:  booking.PublicCode,
		HotelName:    booking.Hotel.Name,
		ResourceName: resourceName,
		CheckIn:      booking.CheckInDate.String(),
		CheckOut:     booking.CheckOutDate.String(),
		Nights:       booking.Nights(),
		Guests:       booking.NumberOfGuests,
		TotalAmount:  expected,
		DetailLink:   fmt.Sprintf("%s/bookings/%d", utils.FrontendURL(), booking.ID),
	}, qrPNG)
}

func GetMyBookings(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, errors.New("no user"))
	}

	filterInput := new(model.Pagination)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid query", err)
	}

	db := database.DB
	baseQuery := db.Model(&model.Booking{}).Where("user_id = ?", claim.UserId)

	var totalCount int64
	if err := baseQuery.Session(&gorm.Session{}).Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Count failed", err)
	}

	var bookings []model.Booking
	query := utils.ApplyPagination(baseQuery, filterInput.Limit, filterInput.Page)
	err := query.
		Preload("Hotel").
		Preload("Apartment").
		Preload("Room").
		Preload("Payment").
		Order("check_in_date DESC").
		Find(&bookings).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       bookings,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

// GetBookingByCode looks up by the public code printed in the QR, so
// reception can scan a guest in.
func GetBookingByCode(c *fiber.Ctx) error {
	code := c.Params("code")

	_, isAdmin, isManager := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	var booking model.Booking
	err := database.DB.
		Where("public_code = ?", code).
		Preload("User").
		Preload("Hotel").
		Preload("Apartment").
		Preload("Room").
		Preload("Payment").
		First(&booking).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Booking not found", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

func GetBookingsByApartment(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("locals missing"))
	}

	_, isAdmin, isManager := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	var bookings []model.Booking
	err := database.DB.
		Where("apartment_id = ?", id).
		Preload("User").
		Preload("Payment").
		Order("check_in_date ASC").
		Find(&bookings).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, bookings)
}

func GetBookingsByRoom(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("locals missing"))
	}

	_, isAdmin, isManager := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	var bookings []model.Booking
	err := database.DB.
		Where("room_id = ?", id).
		Preload("User").
		Preload("Payment").
		Order("check_in_date ASC").
		Find(&bookings).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, bookings)
}

func GetBookingById(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("locals missing"))
	}

	claim, isAdmin, isManager := helper.GetInfoUserFromToken(c)

	var booking model.Booking
	err := database.DB.
		Preload("Hotel").
		Preload("Apartment").
		Preload("Room").
		Preload("Payment").
		First(&booking, id).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Booking not found", err)
	}

	if booking.UserId != claim.UserId && !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "You can only view your own bookings", errors.New("not owner"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

// GetBookingCharge reports expected amount, amount paid and shortage.
func GetBookingCharge(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("locals missing"))
	}

	claim, isAdmin, isManager := helper.GetInfoUserFromToken(c)

	var booking model.Booking
	err := database.DB.
		Preload("Apartment").
		Preload("Room").
		Preload("Payment").
		First(&booking, id).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Booking not found", err)
	}

	if booking.UserId != claim.UserId && !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "You can only view your own bookings", errors.New("not owner"))
	}

	charge, err := helper.ChargeFor(&booking)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, charge)
}

func CancelBooking(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("locals missing"))
	}

	claim, isAdmin, isManager := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, errors.New("no user"))
	}

	booking, err := helper.CancelBooking(database.DB, claim.UserId, uint(id), isAdmin || isManager)
	if err != nil {
		return respondDomainError(c, err)
	}

	if claim.Email != "" {
		var hotel model.Hotel
		database.DB.First(&hotel, booking.HotelId)
		utils.SendBookingCancellationEmail(claim.Email, utils.BookingCancellationData{
			BookingCode: booking.PublicCode,
			HotelName:   hotel.Name,
			CheckIn:     booking.CheckInDate.String(),
			CheckOut:    booking.CheckOutDate.String(),
			CancelledAt: time.Now().Format("2006-01-02 15:04"),
		})
	}
	PublishAvailabilityUpdate(booking.HotelId)

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

// ConfirmBooking is for staff marking a pending booking as confirmed.
func ConfirmBooking(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("locals missing"))
	}

	_, isAdmin, isManager := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	booking, err := helper.ConfirmBooking(database.DB, uint(id))
	if err != nil {
		return respondDomainError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

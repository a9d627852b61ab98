package handler

import (
	"errors"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateReview(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateReviewInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("locals missing"))
	}

	claim, _, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, errors.New("no user"))
	}

	db := database.DB
	var hotel model.Hotel
	if err := db.First(&hotel, input.HotelId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Hotel not found", err)
	}

	if input.BookingId != nil {
		var booking model.Booking
		if err := db.First(&booking, *input.BookingId).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Booking not found", err)
		}
		if booking.UserId != claim.UserId {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "You can only review your own stays", errors.New("not owner"))
		}
		if booking.HotelId != input.HotelId {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Booking belongs to a different hotel", errors.New("hotel mismatch"))
		}
	}

	review := model.Review{
		UserId:    claim.UserId,
		HotelId:   input.HotelId,
		BookingId: input.BookingId,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}
	if err := db.Create(&review).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, review)
}

func GetHotelReviews(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("locals missing"))
	}

	var reviews []model.Review
	err := database.DB.
		Where("hotel_id = ?", id).
		Preload("User").
		Order("id DESC").
		Find(&reviews).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, reviews)
}

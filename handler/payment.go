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

func CreatePayment(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreatePaymentInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("locals missing"))
	}

	claim, _, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, errors.New("no user"))
	}

	payment, err := helper.CreatePayment(database.DB, claim.UserId, input)
	if err != nil {
		return respondDomainError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, payment)
}

// PayShortage settles the rest of a partial payment.
func PayShortage(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("locals missing"))
	}
	input, ok := c.Locals("input").(model.PayShortageInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("locals missing"))
	}

	claim, _, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, errors.New("no user"))
	}

	payment, err := helper.PayShortage(database.DB, claim.UserId, uint(id), input.Amount)
	if err != nil {
		return respondDomainError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, payment)
}

func GetPaymentById(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("locals missing"))
	}

	claim, isAdmin, isManager := helper.GetInfoUserFromToken(c)

	var payment model.Payment
	if err := database.DB.Preload("Booking").First(&payment, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Payment not found", err)
	}

	if payment.UserId != claim.UserId && !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "You can only view your own payments", errors.New("not owner"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, payment)
}

func GetPaymentByBookingId(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("locals missing"))
	}

	claim, isAdmin, isManager := helper.GetInfoUserFromToken(c)

	var payment model.Payment
	if err := database.DB.Where("booking_id = ?", id).First(&payment).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Payment not found", err)
	}

	if payment.UserId != claim.UserId && !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "You can only view your own payments", errors.New("not owner"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, payment)
}

func GetMyPayments(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, errors.New("no user"))
	}

	var payments []model.Payment
	err := database.DB.
		Where("user_id = ?", claim.UserId).
		Order("id DESC").
		Find(&payments).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, payments)
}

package handler

import (
	"errors"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetApartments(c *fiber.Ctx) error {
	filterInput := new(model.Pagination)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid query", err)
	}

	db := database.DB
	baseQuery := db.Model(&model.Apartment{})
	if hotelId := c.QueryInt("hotelId"); hotelId > 0 {
		baseQuery = baseQuery.Where("hotel_id = ?", hotelId)
	}

	var totalCount int64
	if err := baseQuery.Session(&gorm.Session{}).Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Count failed", err)
	}

	var apartments []model.Apartment
	query := utils.ApplyPagination(baseQuery, filterInput.Limit, filterInput.Page)
	if err := query.Order("id DESC").Preload("Rooms").Find(&apartments).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Query failed", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       apartments,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

func GetApartmentById(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("locals missing"))
	}

	var apartment model.Apartment
	err := database.DB.Preload("Hotel").Preload("Rooms").First(&apartment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Apartment not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, apartment)
}

func CreateApartment(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateApartmentInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("locals missing"))
	}

	db := database.DB
	var hotel model.Hotel
	if err := db.First(&hotel, input.HotelId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Hotel not found", err)
	}

	var apartment model.Apartment
	if err := copier.Copy(&apartment, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Create(&apartment).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, apartment)
}

func EditApartment(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("locals missing"))
	}
	input, ok := c.Locals("input").(model.EditApartmentInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("locals missing"))
	}

	db := database.DB
	var apartment model.Apartment
	if err := db.First(&apartment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Apartment not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := copier.CopyWithOption(&apartment, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Save(&apartment).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, apartment)
}

func DeleteApartment(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("locals missing"))
	}

	result := database.DB.Model(&model.Apartment{}).
		Where("id IN ?", input.IDs).
		Update("is_available", false)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, result.Error)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"disabled": result.RowsAffected})
}

// GetApartmentAvailability returns the day-by-day calendar for a window.
// Defaults to the next 30 days when from/to are absent.
func GetApartmentAvailability(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("locals missing"))
	}

	from, to, err := parseCalendarWindow(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid date window", err)
	}

	days, err := helper.ApartmentCalendar(database.DB, uint(id), from, to)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, days)
}

package handler

import (
	"errors"
	"strings"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type FilterHotel struct {
	model.Pagination
	SearchKey string `query:"searchKey"`
	City      string `query:"city"`
	Country   string `query:"country"`
}

func GetHotels(c *fiber.Ctx) error {
	filterInput := new(FilterHotel)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid query", err)
	}

	db := database.DB
	baseQuery := db.Model(&model.Hotel{}).Where("is_active = ?", true)

	if filterInput.SearchKey != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(filterInput.SearchKey)) + "%"
		baseQuery = baseQuery.Where(
			db.Where("LOWER(name) LIKE ?", search).
				Or("LOWER(city) LIKE ?", search).
				Or("LOWER(address) LIKE ?", search),
		)
	}
	if filterInput.City != "" {
		baseQuery = baseQuery.Where("LOWER(city) LIKE ?", "%"+strings.ToLower(filterInput.City)+"%")
	}
	if filterInput.Country != "" {
		baseQuery = baseQuery.Where("LOWER(country) LIKE ?", "%"+strings.ToLower(filterInput.Country)+"%")
	}

	var totalCount int64
	if err := baseQuery.Session(&gorm.Session{}).Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Count failed", err)
	}

	var hotels []model.Hotel
	query := utils.ApplyPagination(baseQuery, filterInput.Limit, filterInput.Page)
	if err := query.Order("id DESC").Find(&hotels).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Query failed", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       hotels,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

func GetHotelById(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("locals missing"))
	}

	var hotel model.Hotel
	err := database.DB.
		Preload("Apartments").
		Preload("Rooms").
		Preload("Reviews").
		First(&hotel, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Hotel not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, hotel)
}

func GetHotelBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var hotel model.Hotel
	err := database.DB.
		Preload("Apartments").
		Preload("Rooms").
		Preload("Reviews").
		Where("slug = ?", slug).
		First(&hotel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Hotel not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, hotel)
}

func CreateHotel(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateHotelInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("locals missing"))
	}

	db := database.DB

	var existing model.Hotel
	if err := db.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Hotel email already in use", errors.New("email taken"), "email")
	}

	var hotel model.Hotel
	if err := copier.Copy(&hotel, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	hotel.Slug = helper.GenerateUniqueHotelSlug(db, input.Name)

	if err := db.Create(&hotel).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, hotel)
}

func EditHotel(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("locals missing"))
	}
	input, ok := c.Locals("input").(model.EditHotelInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("locals missing"))
	}

	db := database.DB
	var hotel model.Hotel
	if err := db.First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Hotel not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.Name != nil && *input.Name != hotel.Name {
		hotel.Slug = helper.GenerateUniqueHotelSlug(db, *input.Name)
	}

	if err := copier.CopyWithOption(&hotel, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Save(&hotel).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, hotel)
}

func DeleteHotel(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("locals missing"))
	}

	// Deactivate instead of hard delete so bookings keep their hotel.
	result := database.DB.Model(&model.Hotel{}).
		Where("id IN ?", input.IDs).
		Update("is_active", false)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, result.Error)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deactivated": result.RowsAffected})
}

func GetHotelBookings(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("locals missing"))
	}

	var bookings []model.Booking
	err := database.DB.
		Where("hotel_id = ?", id).
		Preload("User").
		Preload("Apartment").
		Preload("Room").
		Preload("Payment").
		Order("check_in_date ASC").
		Find(&bookings).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, bookings)
}

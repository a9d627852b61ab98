package validate

import (
	"errors"
	"strconv"

	"hotel_manager/constants"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateHotel() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return parseAndValidate[model.CreateHotelInput](c, "input")
	}
}

func EditHotel(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}
		c.Locals("inputId", id)

		return parseAndValidate[model.EditHotelInput](c, "input")
	}
}

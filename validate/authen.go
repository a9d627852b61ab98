package validate

import (
	"hotel_manager/model"

	"github.com/gofiber/fiber/v2"
)

func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return parseAndValidate[model.RegisterUserInput](c, "input")
	}
}

func ChangePassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return parseAndValidate[model.ChangePasswordInput](c, "input")
	}
}

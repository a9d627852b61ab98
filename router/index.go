package router

import (
	"hotel_manager/handler"
	"hotel_manager/middleware"
	"hotel_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/register", validate.Register(), handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/forgot-password", handler.ForgotPassword)
	auth.Post("/reset-password", handler.ResetPassword)
	auth.Get("/me", middleware.Protected(), handler.Me)
	auth.Post("/change-password", middleware.Protected(), validate.ChangePassword(), handler.ChangePassword)

	hotel := v1.Group("/hotel", logger.New())
	hotel.Get("/", handler.GetHotels)
	hotel.Get("/slug/:slug", handler.GetHotelBySlug)
	hotel.Get("/:hotelId", validate.GetById("hotelId"), handler.GetHotelById)
	hotel.Get("/:hotelId/reviews", validate.GetById("hotelId"), handler.GetHotelReviews)
	hotel.Get("/:hotelId/bookings", middleware.Protected(), middleware.AdminOnly(), validate.GetById("hotelId"), handler.GetHotelBookings)
	hotel.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.CreateHotel(), handler.CreateHotel)
	hotel.Put("/:hotelId", middleware.Protected(), middleware.AdminOnly(), validate.EditHotel("hotelId"), handler.EditHotel)
	hotel.Delete("/", middleware.Protected(), middleware.AdminOnly(), validate.Delete(), handler.DeleteHotel)

	apartment := v1.Group("/apartment", logger.New())
	apartment.Get("/", handler.GetApartments)
	apartment.Get("/:apartmentId", validate.GetById("apartmentId"), handler.GetApartmentById)
	apartment.Get("/:apartmentId/availability", validate.GetById("apartmentId"), handler.GetApartmentAvailability)
	apartment.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.CreateApartment(), handler.CreateApartment)
	apartment.Put("/:apartmentId", middleware.Protected(), middleware.AdminOnly(), validate.EditApartment("apartmentId"), handler.EditApartment)
	apartment.Delete("/", middleware.Protected(), middleware.AdminOnly(), validate.Delete(), handler.DeleteApartment)

	room := v1.Group("/room", logger.New())
	room.Get("/", handler.GetRooms)
	room.Get("/:roomId", validate.GetById("roomId"), handler.GetRoomById)
	room.Get("/:roomId/availability", validate.GetById("roomId"), handler.GetRoomAvailability)
	room.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.CreateRoom(), handler.CreateRoom)
	room.Put("/:roomId", middleware.Protected(), middleware.AdminOnly(), validate.EditRoom("roomId"), handler.EditRoom)
	room.Delete("/", middleware.Protected(), middleware.AdminOnly(), validate.Delete(), handler.DeleteRoom)

	booking := v1.Group("/booking", logger.New())
	booking.Get("/", middleware.Protected(), handler.GetMyBookings)
	booking.Get("/code/:code", middleware.Protected(), handler.GetBookingByCode)
	booking.Get("/apartment/:apartmentId", middleware.Protected(), validate.GetById("apartmentId"), handler.GetBookingsByApartment)
	booking.Get("/room/:roomId", middleware.Protected(), validate.GetById("roomId"), handler.GetBookingsByRoom)
	booking.Get("/:bookingId", middleware.Protected(), validate.GetById("bookingId"), handler.GetBookingById)
	booking.Get("/:bookingId/charge", middleware.Protected(), validate.GetById("bookingId"), handler.GetBookingCharge)
	booking.Post("/", middleware.Protected(), validate.CreateBooking(), handler.CreateBooking)
	booking.Patch("/:bookingId/cancel", middleware.Protected(), validate.GetById("bookingId"), handler.CancelBooking)
	booking.Patch("/:bookingId/confirm", middleware.Protected(), validate.GetById("bookingId"), handler.ConfirmBooking)

	payment := v1.Group("/payment", logger.New())
	payment.Get("/", middleware.Protected(), handler.GetMyPayments)
	payment.Get("/booking/:bookingId", middleware.Protected(), validate.GetById("bookingId"), handler.GetPaymentByBookingId)
	payment.Get("/:paymentId", middleware.Protected(), validate.GetById("paymentId"), handler.GetPaymentById)
	payment.Post("/", middleware.Protected(), validate.CreatePayment(), handler.CreatePayment)
	payment.Post("/booking/:bookingId/shortage", middleware.Protected(), validate.PayShortage("bookingId"), handler.PayShortage)

	review := v1.Group("/review", logger.New())
	review.Post("/", middleware.Protected(), validate.CreateReview(), handler.CreateReview)

	v1.Post("/cloudinary-signature", middleware.Protected(), handler.GenerateSignature)
	v1.Post("/upload-image", middleware.Protected(), handler.UploadImage)

	ws := app.Group("/ws")
	ws.Use(func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	ws.Get("/hotel/:id/availability", websocket.New(handler.WebSocketConnection))
}

package database

import (
	"fmt"

	"hotel_manager/constants"
	"hotel_manager/model"
	"hotel_manager/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func hashSeedPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func SeedData(db *gorm.DB) {
	seedUsers(db)
	seedHotel(db)
}

func seedUsers(db *gorm.DB) {
	hash, err := hashSeedPassword("admin12345")
	if err != nil {
		fmt.Println("Seed admin failed: ", err)
		return
	}

	admin := model.User{
		Email:     "admin@hotelmanager.local",
		Password:  hash,
		FirstName: "System",
		LastName:  "Admin",
		Role:      constants.ROLE_ADMIN,
		Active:    true,
	}
	db.Where(model.User{Email: admin.Email}).FirstOrCreate(&admin)

	managerHash, err := hashSeedPassword("manager12345")
	if err != nil {
		fmt.Println("Seed manager failed: ", err)
		return
	}
	manager := model.User{
		Email:     "manager@hotelmanager.local",
		Password:  managerHash,
		FirstName: "Hotel",
		LastName:  "Manager",
		Role:      constants.ROLE_MANAGER,
		Active:    true,
	}
	db.Where(model.User{Email: manager.Email}).FirstOrCreate(&manager)
}

func seedHotel(db *gorm.DB) {
	hotel := model.Hotel{
		Email:       "contact@grandriverside.local",
		Name:        "Grand Riverside Hotel",
		Slug:        "grand-riverside-hotel",
		Description: "Riverside hotel with serviced apartments and standalone rooms.",
		Address:     "12 Riverside Avenue",
		City:        "Da Nang",
		Country:     "Vietnam",
		PostalCode:  "550000",
		PhoneNumber: "+84 236 000 0000",
		Rating:      4.5,
		IsActive:    utils.Ptr(true),
	}
	db.Where(model.Hotel{Email: hotel.Email}).FirstOrCreate(&hotel)
	if hotel.ID == 0 {
		return
	}

	apartment := model.Apartment{
		HotelId:                 hotel.ID,
		ApartmentNumber:         "A-501",
		Name:                    "Riverside Penthouse",
		PricePerNight:           250,
		TotalCapacity:           6,
		NumberOfBedrooms:        3,
		NumberOfBathrooms:       2,
		AreaSqm:                 120,
		IsAvailable:             utils.Ptr(true),
		RoomsBookableSeparately: utils.Ptr(true),
		ApartmentType:           "PENTHOUSE",
	}
	db.Where(model.Apartment{HotelId: hotel.ID, ApartmentNumber: apartment.ApartmentNumber}).FirstOrCreate(&apartment)

	if apartment.ID != 0 {
		bedroom := model.Room{
			HotelId:              hotel.ID,
			ApartmentId:          &apartment.ID,
			RoomNumber:           "A-501-1",
			PricePerNight:        90,
			Capacity:             2,
			IsAvailable:          utils.Ptr(true),
			BookableIndividually: utils.Ptr(true),
			RoomType:             "MASTER_BEDROOM",
		}
		db.Where(model.Room{HotelId: hotel.ID, RoomNumber: bedroom.RoomNumber}).FirstOrCreate(&bedroom)
	}

	standalone := model.Room{
		HotelId:              hotel.ID,
		RoomNumber:           "101",
		PricePerNight:        100,
		Capacity:             2,
		IsAvailable:          utils.Ptr(true),
		BookableIndividually: utils.Ptr(true),
		RoomType:             "DELUXE",
	}
	db.Where(model.Room{HotelId: hotel.ID, RoomNumber: standalone.RoomNumber}).FirstOrCreate(&standalone)
}

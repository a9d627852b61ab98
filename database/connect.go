package database

import (
	"fmt"
	"log"

	"hotel_manager/config"
	"hotel_manager/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		config.Config("DB_HOST"),
		config.Config("DB_USER"),
		config.Config("DB_PASSWORD"),
		config.Config("DB_NAME"),
		config.Config("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		// Driver errors become gorm sentinel errors (ErrDuplicatedKey etc.),
		// which the booking path relies on to detect lost insert races.
		TranslateError: true,
	})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	DB = db
	fmt.Println("Database connected")

	if err := Migrate(db); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}
	fmt.Println("Database migrated")

	SeedData(db)
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.PasswordResetToken{},
		&model.Hotel{},
		&model.Apartment{},
		&model.Room{},
		&model.Booking{},
		&model.Payment{},
		&model.ApartmentAvailability{},
		&model.RoomAvailability{},
		&model.Review{},
	)
}

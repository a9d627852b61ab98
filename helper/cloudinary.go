package helper

import (
	"log"

	"hotel_manager/config"

	"github.com/cloudinary/cloudinary-go/v2"
)

// InitCloudinary builds an upload client from the configured credentials.
// Image handling is optional; missing credentials fail loudly at startup
// rather than on the first upload.
func InitCloudinary() *cloudinary.Cloudinary {
	cld, err := cloudinary.NewFromParams(
		config.Config("CLOUDINARY_CLOUD_NAME"),
		config.Config("CLOUDINARY_API_KEY"),
		config.Config("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("cloudinary init failed: %v", err)
	}
	return cld
}

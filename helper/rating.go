package helper

import (
	"log"
	"time"

	"hotel_manager/database"
	"hotel_manager/model"

	"github.com/go-co-op/gocron/v2"
)

var ratingScheduler gocron.Scheduler

// RecomputeHotelRatings rolls review averages into each hotel's rating.
// Hotels without reviews keep their current rating.
func RecomputeHotelRatings() {
	log.Println("[CRON] RecomputeHotelRatings triggered")

	db := database.DB
	var hotels []model.Hotel
	if err := db.Find(&hotels).Error; err != nil {
		log.Printf("Rating scan failed: %v", err)
		return
	}

	for _, hotel := range hotels {
		var avg *float64
		err := db.Model(&model.Review{}).
			Where("hotel_id = ?", hotel.ID).
			Select("AVG(rating)").
			Scan(&avg).Error
		if err != nil {
			log.Printf("Rating query failed for hotel '%s': %v", hotel.Name, err)
			continue
		}
		if avg == nil {
			continue
		}

		if err := db.Model(&hotel).Update("rating", *avg).Error; err != nil {
			log.Printf("Rating update failed for hotel '%s': %v", hotel.Name, err)
		}
	}
}

func StartRatingScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		log.Fatal(err)
	}

	ratingScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 15, 0),
			),
		),
		gocron.NewTask(RecomputeHotelRatings),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Rating scheduler started (00:15 UTC)")
}

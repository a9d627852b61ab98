package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient = redis.NewClient(&redis.Options{Addr: redisAddr()})

	clients = make(map[uint]map[*websocket.Conn]bool)
	mu      sync.Mutex
)

func redisAddr() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

type availabilitySnapshot struct {
	HotelId    uint                             `json:"hotelId"`
	Apartments map[uint][]model.DayAvailability `json:"apartments"`
	Rooms      map[uint][]model.DayAvailability `json:"rooms"`
}

func fetchHotelAvailability(hotelId uint) (*availabilitySnapshot, error) {
	db := database.DB
	from := utils.Today()
	to := from.AddDays(30)

	snapshot := &availabilitySnapshot{
		HotelId:    hotelId,
		Apartments: make(map[uint][]model.DayAvailability),
		Rooms:      make(map[uint][]model.DayAvailability),
	}

	var apartments []model.Apartment
	if err := db.Where("hotel_id = ?", hotelId).Find(&apartments).Error; err != nil {
		return nil, err
	}
	for _, a := range apartments {
		days, err := helper.ApartmentCalendar(db, a.ID, from, to)
		if err != nil {
			return nil, err
		}
		snapshot.Apartments[a.ID] = days
	}

	var rooms []model.Room
	if err := db.Where("hotel_id = ?", hotelId).Find(&rooms).Error; err != nil {
		return nil, err
	}
	for _, r := range rooms {
		days, err := helper.RoomCalendar(db, r.ID, from, to)
		if err != nil {
			return nil, err
		}
		snapshot.Rooms[r.ID] = days
	}

	return snapshot, nil
}

// PublishAvailabilityUpdate fans the hotel's fresh calendar out to every
// websocket subscriber via redis, so all server instances see it.
func PublishAvailabilityUpdate(hotelId uint) {
	go func() {
		snapshot, err := fetchHotelAvailability(hotelId)
		if err != nil {
			log.Printf("availability snapshot failed for hotel %d: %v", hotelId, err)
			return
		}
		payload, err := json.Marshal(snapshot)
		if err != nil {
			log.Printf("availability marshal failed for hotel %d: %v", hotelId, err)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisClient.Publish(ctx, fmt.Sprintf("hotel:%d:availability", hotelId), payload).Err(); err != nil {
			log.Printf("availability publish failed for hotel %d: %v", hotelId, err)
		}
	}()
}

// WebSocketConnection streams a hotel's availability calendar. Clients get
// a full snapshot on connect, then every update published for the hotel.
func WebSocketConnection(c *websocket.Conn) {
	hotelIdStr := c.Params("id")
	id64, _ := strconv.ParseUint(hotelIdStr, 10, 64)
	hotelId := uint(id64)

	defer func() {
		mu.Lock()
		if clients[hotelId] != nil {
			delete(clients[hotelId], c)
		}
		mu.Unlock()
		c.Close()
	}()

	mu.Lock()
	if clients[hotelId] == nil {
		clients[hotelId] = make(map[*websocket.Conn]bool)
	}
	clients[hotelId][c] = true
	mu.Unlock()

	if snapshot, err := fetchHotelAvailability(hotelId); err == nil {
		c.WriteJSON(snapshot)
	}

	pubsub := redisClient.Subscribe(
		context.Background(),
		fmt.Sprintf("hotel:%d:availability", hotelId),
	)
	defer pubsub.Close()

	channel := pubsub.Channel()

	for msg := range channel {
		payload := []byte(msg.Payload)

		mu.Lock()
		for conn := range clients[hotelId] {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(clients[hotelId], conn)
			}
		}
		mu.Unlock()
	}
}

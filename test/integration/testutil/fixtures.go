package testutil

import (
	"fmt"

	"splendico/pkg/model"
)

// Rooms returns a catalogue spread over three categories and a wide price
// range; every fourth room is unavailable.
func Rooms(n int) []model.Room {
	categories := []string{"SUITE", "DELUXE", "STANDARD"}
	rooms := make([]model.Room, 0, n)
	for i := 0; i < n; i++ {
		available := "Available"
		if i%4 == 3 {
			available = "Unavailable"
		}
		rooms = append(rooms, model.Room{
			Title:     fmt.Sprintf("Room %02d", i),
			Category:  categories[i%len(categories)],
			Price:     float64(50 + i*25),
			Available: available,
		})
	}
	return rooms
}

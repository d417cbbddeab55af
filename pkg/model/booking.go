package model

import (
	"time"
)

type Booking struct {
	ID        string    `json:"_id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Email     string    `json:"email" bson:"email" validate:"required,email,max=254"`
	Name      string    `json:"name,omitempty" bson:"name,omitempty" validate:"omitempty,max=100"`
	RoomID    string    `json:"roomId" bson:"roomId" validate:"required,mongodb"`
	Date      string    `json:"date" bson:"date" validate:"required,datetime=2006-01-02"`
	Price     float64   `json:"price" bson:"price" validate:"gte=0"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

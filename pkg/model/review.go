package model

import (
	"time"
)

const MaxReviewCommentLength = 2000

type Review struct {
	ID      string    `json:"_id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	RoomID  string    `json:"roomId" bson:"roomId" validate:"required,mongodb"`
	Name    string    `json:"name,omitempty" bson:"name,omitempty" validate:"omitempty,max=100"`
	Email   string    `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Rating  int       `json:"rating" bson:"rating" validate:"required,min=1,max=5"`
	Comment string    `json:"comment" bson:"comment" validate:"required,max=2000"`
	Date    time.Time `json:"date" bson:"date"`
}

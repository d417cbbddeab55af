package model

// Room is read-mostly: rooms are seeded outside the API and only patched
// through RoomUpdate.
type Room struct {
	ID           string   `json:"_id,omitempty" bson:"_id,omitempty"`
	Title        string   `json:"title,omitempty" bson:"title,omitempty"`
	Category     string   `json:"category" bson:"category"`
	Price        float64  `json:"price" bson:"price"`
	Available    string   `json:"available" bson:"available"`
	Description  string   `json:"description,omitempty" bson:"description,omitempty"`
	Images       []string `json:"images,omitempty" bson:"images,omitempty"`
	RoomSize     string   `json:"roomSize,omitempty" bson:"roomSize,omitempty"`
	Capacity     int      `json:"capacity,omitempty" bson:"capacity,omitempty"`
	SpecialOffer string   `json:"specialOffer,omitempty" bson:"specialOffer,omitempty"`
}

// RoomUpdate is a partial update; nil fields are left untouched.
type RoomUpdate struct {
	Available    *string  `json:"available,omitempty" bson:"available,omitempty" validate:"omitempty,oneof=Available Unavailable"`
	Price        *float64 `json:"price,omitempty" bson:"price,omitempty" validate:"omitempty,gte=0"`
	SpecialOffer *string  `json:"specialOffer,omitempty" bson:"specialOffer,omitempty" validate:"omitempty,max=200"`
	Description  *string  `json:"description,omitempty" bson:"description,omitempty" validate:"omitempty,max=2000"`
}

func (u *RoomUpdate) IsEmpty() bool {
	return u.Available == nil && u.Price == nil && u.SpecialOffer == nil && u.Description == nil
}

package models

// Room is a static catalog entry.
type Room struct {
	ID          int      `bson:"id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Description string   `bson:"description" json:"description"`
	Price       int64    `bson:"price" json:"price"` // Per night, whole units
	Rating      float64  `bson:"rating" json:"rating"`
	Beds        int      `bson:"beds" json:"beds"`
	Baths       int      `bson:"baths" json:"baths"`
	Amenities   []string `bson:"amenities" json:"amenities"`
	Image       string   `bson:"image" json:"image"`
}

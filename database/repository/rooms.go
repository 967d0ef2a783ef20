package repository

import "palmcove/models"

// DefaultRooms returns the catalog every store is seeded with.
func DefaultRooms() []models.Room {
	return []models.Room{
		{
			ID:          1,
			Name:        "Deluxe Ocean View",
			Description: "Floor-to-ceiling windows over the bay with a private balcony.",
			Price:       4500,
			Rating:      4.8,
			Beds:        1,
			Baths:       1,
			Amenities:   []string{"Ocean view", "King bed", "Mini bar", "Free Wi-Fi", "Air conditioning"},
			Image:       "/images/rooms/deluxe-ocean.jpg",
		},
		{
			ID:          2,
			Name:        "Garden Villa",
			Description: "A standalone villa set in the tropical garden with an outdoor shower.",
			Price:       6500,
			Rating:      4.7,
			Beds:        2,
			Baths:       2,
			Amenities:   []string{"Private garden", "Outdoor shower", "Kitchenette", "Free Wi-Fi"},
			Image:       "/images/rooms/garden-villa.jpg",
		},
		{
			ID:          3,
			Name:        "Family Suite",
			Description: "Two connected bedrooms and a living area sized for families.",
			Price:       8500,
			Rating:      4.6,
			Beds:        3,
			Baths:       2,
			Amenities:   []string{"Living room", "Bunk beds", "Smart TV", "Free Wi-Fi", "Breakfast included"},
			Image:       "/images/rooms/family-suite.jpg",
		},
		{
			ID:          4,
			Name:        "Beachfront Pool Villa",
			Description: "Steps from the sand with a private plunge pool and sun deck.",
			Price:       12000,
			Rating:      4.9,
			Beds:        2,
			Baths:       2,
			Amenities:   []string{"Private pool", "Beach access", "Butler service", "Free Wi-Fi", "Breakfast included"},
			Image:       "/images/rooms/pool-villa.jpg",
		},
	}
}

package models

// Location is an event venue.
type Location struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	FullAddress string  `json:"full_address"`
	MaxCapacity int     `json:"max_capacity"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	IDLocation  int64   `json:"id_location,omitempty"`
}

// LocationInput is the payload for creating a venue.
type LocationInput struct {
	Name        string  `json:"name"`
	FullAddress string  `json:"full_address"`
	MaxCapacity int     `json:"max_capacity"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	IDLocation  int64   `json:"id_location"`
}

// Category classifies events.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

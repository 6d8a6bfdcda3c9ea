package services

import (
	"context"
	"time"
)

// Restaurant is a nearby dining suggestion.
type Restaurant struct {
	Name     string `json:"name"`
	Diet     string `json:"type"`
	Distance string `json:"distance"`
}

// RestaurantService finds eco-friendly dining near the current position. The
// search itself is simulated: it waits a fixed delay and returns a canned
// result set for the default area.
type RestaurantService struct {
	locator Locator

	// Delay is the simulated search latency.
	Delay time.Duration
}

// NewRestaurantService creates a new RestaurantService with the default
// simulated latency.
func NewRestaurantService(locator Locator) *RestaurantService {
	return &RestaurantService{
		locator: locator,
		Delay:   2500 * time.Millisecond,
	}
}

// FindNearby resolves the current position and returns the nearby
// restaurants. Location failures degrade to the default area.
func (s *RestaurantService) FindNearby(ctx context.Context) ([]Restaurant, error) {
	locate(ctx, s.locator)
	if err := sleep(ctx, s.Delay); err != nil {
		return nil, err
	}

	return []Restaurant{
		{Name: "Sree Annapoorna", Diet: "Non-Vegan", Distance: "0.9 km"},
		{Name: "Arogya Vegan Cafe", Diet: "Vegan", Distance: "4.1 km"},
		{Name: "Kovai Dindigul Thalappakatti", Diet: "Non-Vegan", Distance: "2.5 km"},
		{Name: "Healthy Roots Tiffin", Diet: "Vegan (South Indian)", Distance: "3.2 km"},
	}, nil
}

package domain

import "time"

type Creator struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	Followers int64     `json:"followers"`
	Platforms []string  `json:"platforms"`
	ImageKey  *string   `json:"imageKey"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreatorResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	City      string   `json:"city"`
	Country   string   `json:"country"`
	Followers string   `json:"followers"` // Formato abreviado (ex: 1.5K, 2.0M)
	Platforms []string `json:"platforms"`
	ImageURL  *string  `json:"imageUrl"`
}

type CreateCreatorRequest struct {
	Name      string   `json:"name"`
	City      string   `json:"city"`
	Country   string   `json:"country"`
	Followers *int64   `json:"followers"`
	Platforms []string `json:"platforms"`
	ImageKey  *string  `json:"imageKey"`
}

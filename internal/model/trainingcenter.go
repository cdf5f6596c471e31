package model

import "time"

// TrainingCenter is a gym or academy where athletes train. Names are unique.
type TrainingCenter struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Owner     string    `json:"owner"`
	CreatedAt time.Time `json:"created_at"`
}

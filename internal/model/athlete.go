package model

import "time"

// Athlete represents a person registered in a training center and competing
// in a weight category. This is a pure domain model with no database-specific
// dependencies or tags; Category and TrainingCenter carry the referenced
// names, not foreign keys.
type Athlete struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	CPF            string    `json:"cpf"`
	Age            int       `json:"age"`
	Weight         float64   `json:"weight"`
	Height         float64   `json:"height"`
	Sex            string    `json:"sex"`
	Category       string    `json:"category"`
	TrainingCenter string    `json:"training_center"`
	PhotoKey       string    `json:"photo_key,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// AthleteSummary is the compact projection returned by the athlete list
// endpoint.
type AthleteSummary struct {
	Name           string `json:"name"`
	Category       string `json:"category"`
	TrainingCenter string `json:"training_center"`
}

package model

import "time"

// Category is a competition category (e.g. Scale, Sprint). Names are unique.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

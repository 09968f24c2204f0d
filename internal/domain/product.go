package domain

import "time"

type Product struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Category  string     `json:"category"`
	Price     float64    `json:"price"`
	Stock     int        `json:"stock"`
	ImageURL  *string    `json:"image_url"`
	Deleted   bool       `json:"deleted"`
	DeletedAt *time.Time `json:"deleted_at"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type UpdateProductRequest struct {
	ID       int      `json:"id"`
	Name     *string  `json:"name"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price"`
	Stock    *int     `json:"stock"`
	ImageURL *string  `json:"image_url"`
	Deleted  *bool    `json:"deleted"`
}

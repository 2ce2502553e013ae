package models

import "time"

// Business captures a business account as stored.
type Business struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"busi_username"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Rating       *float64  `json:"rating"`
	Description  *string   `json:"description"`
	Address      *string   `json:"address"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// BusinessSummary is the projection returned after registration.
type BusinessSummary struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Username    string  `json:"busi_username"`
	Email       string  `json:"email"`
	Category    string  `json:"category"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
}

// BusinessProfile is the projection returned after login.
type BusinessProfile struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Username    string   `json:"busi_username"`
	Category    string   `json:"category"`
	Rating      *float64 `json:"rating"`
	Description *string  `json:"description"`
	Address     *string  `json:"address"`
}

func (b Business) Summary() BusinessSummary {
	return BusinessSummary{
		ID:          b.ID,
		Name:        b.Name,
		Username:    b.Username,
		Email:       b.Email,
		Category:    b.Category,
		Description: b.Description,
		Address:     b.Address,
	}
}

func (b Business) Profile() BusinessProfile {
	return BusinessProfile{
		ID:          b.ID,
		Name:        b.Name,
		Email:       b.Email,
		Username:    b.Username,
		Category:    b.Category,
		Rating:      b.Rating,
		Description: b.Description,
		Address:     b.Address,
	}
}

package models

import "time"

type Test struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Price           float64   `json:"price"`
	OriginalPrice   float64   `json:"original_price"`
	Discount        float64   `json:"discount"`
	Parameters      int       `json:"parameters"`
	ReportTime      string    `json:"report_time"`
	FastingRequired bool      `json:"fasting_required"`
	Description     string    `json:"description,omitempty"`
	Category        string    `json:"category,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type Package struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"original_price"`
	Discount      float64   `json:"discount"`
	TestsCount    int       `json:"tests_count"`
	Popular       bool      `json:"popular"`
	Description   string    `json:"description,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type SearchResult struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Type          ServiceType `json:"type"`
	Price         float64     `json:"price"`
	OriginalPrice float64     `json:"originalPrice"`
	Discount      float64     `json:"discount"`
	Details       string      `json:"details"`
	Category      string      `json:"category,omitempty"`
	Popular       bool        `json:"popular,omitempty"`
}

type SearchResponse struct {
	Results []SearchResult `json:"results"`
	Total   int            `json:"total"`
}

package models

// Shayari is an original poem entry.
type Shayari struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Tags        string `json:"tags"`
	DateCreated string `json:"date_created"`
	ImageURL    string `json:"image_url,omitempty"`
}

// RekhtaShayari is a poem saved from rekhta.org.
type RekhtaShayari struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Poet      string `json:"poet"`
	Content   string `json:"content"`
	RekhtaURL string `json:"rekhta_url"`
	DateSaved string `json:"date_saved"`
}

package models

import "time"

// Report is a citizen-submitted issue. The longitude column is named lon
// but serializes as "lng" to match the public API.
type Report struct {
	ID          int64     `db:"id" json:"id"`
	UserID      int64     `db:"user_id" json:"user_id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	ImageURL    *string   `db:"image_url" json:"image_url"`
	Lat         float64   `db:"lat" json:"lat"`
	Lng         float64   `db:"lon" json:"lng"`
	Status      string    `db:"status" json:"status"`
	Time        time.Time `db:"time" json:"time"`
}

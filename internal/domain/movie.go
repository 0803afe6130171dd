package domain

import "time"

// Genre describes a movie category.
type Genre struct {
	Name        string
	Description string
}

// Director holds biographical details for a movie's director.
type Director struct {
	Name  string
	Bio   string
	Birth *time.Time
	Death *time.Time
}

// Movie is the catalog aggregate.
type Movie struct {
	ID          string
	Title       string
	Description string
	Year        int
	Rate        float64
	Genre       Genre
	Director    Director
	Actors      []string
	ImagePath   string
	Featured    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

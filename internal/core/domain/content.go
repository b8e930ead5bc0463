package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is a calendar entry.
type Event struct {
	ID          uuid.UUID
	Title       string
	Description string
	Location    string
	StartDate   time.Time
	EndDate     *time.Time
	ImageURL    string
	CreatedAt   time.Time
	Access      Visibility
}

func (e Event) Visibility() Visibility { return e.Access }

// Archivo is an entry in the file library.
type Archivo struct {
	ID          uuid.UUID
	Name        string
	Description string
	Category    string
	FileURL     string
	MimeType    string
	SizeBytes   int64
	CreatedAt   time.Time
	Access      Visibility
}

func (a Archivo) Visibility() Visibility { return a.Access }

// Post is a blog article.
type Post struct {
	ID            uuid.UUID
	Slug          string
	Title         string
	Excerpt       string
	Content       string
	CoverImageURL string
	Author        string
	Published     bool
	PublishedAt   *time.Time
	CreatedAt     time.Time
}

// Delegacion is a regional delegation of the organization.
type Delegacion struct {
	ID          uuid.UUID
	Slug        string
	Name        string
	Description string
	City        string
	Address     string
	Email       string
	Phone       string
	ImageURL    string
	CreatedAt   time.Time
}

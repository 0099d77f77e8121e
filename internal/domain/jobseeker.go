package domain

import (
	"context"
	"time"
)

// ExperienceEntry is one row of work history on a job seeker profile
type ExperienceEntry struct {
	Company     string  `json:"company"`
	Title       string  `json:"title"`
	StartDate   string  `json:"start_date"` // YYYY-MM
	EndDate     *string `json:"end_date,omitempty"`
	Description *string `json:"description,omitempty"`
}

type EducationEntry struct {
	School    string  `json:"school"`
	Degree    *string `json:"degree,omitempty"`
	Major     *string `json:"major,omitempty"`
	StartYear int     `json:"start_year" validate:"omitempty,max_current_year"`
	EndYear   *int    `json:"end_year,omitempty"`
}

type CertificateEntry struct {
	Name     string  `json:"name"`
	Issuer   *string `json:"issuer,omitempty"`
	IssuedAt *string `json:"issued_at,omitempty"` // YYYY-MM
}

type AwardEntry struct {
	Title  string  `json:"title"`
	Issuer *string `json:"issuer,omitempty"`
	Year   *int    `json:"year,omitempty"`
}

// MediaItem is a portfolio media attachment (image, video, link)
type MediaItem struct {
	Kind  string  `json:"kind"` // image, video, link
	URL   string  `json:"url"`
	Title *string `json:"title,omitempty"`
}

// SelfIntroduction holds the four free-text sections of the profile
type SelfIntroduction struct {
	Motivation  *string `json:"motivation,omitempty"`
	Personality *string `json:"personality,omitempty"`
	Experience  *string `json:"experience,omitempty"`
	Aspiration  *string `json:"aspiration,omitempty"`
}

// JobSeekerProfile is the job seeker's editable profile, owned 1:1 by user id.
// The public Portfolio projection is derived from it on registration and kept
// in sync on every profile update.
type JobSeekerProfile struct {
	UserID        string             `json:"user_id" validate:"required"`
	Skills        []string           `json:"skills"`
	Languages     []string           `json:"languages"`
	Experiences   []ExperienceEntry  `json:"experiences"`
	Educations    []EducationEntry   `json:"educations" validate:"dive"`
	Certificates  []CertificateEntry `json:"certificates"`
	Awards        []AwardEntry       `json:"awards"`
	Intro         SelfIntroduction   `json:"intro"`
	ImageURL      *string            `json:"image_url,omitempty"`
	IntroVideoURL []string           `json:"intro_video_urls"`
	Media         []MediaItem        `json:"media"`
	PDFURLs       []string           `json:"pdf_urls"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

type JobSeekerRepository interface {
	GetByUserID(ctx context.Context, userID string) (*JobSeekerProfile, error)
	Upsert(ctx context.Context, profile *JobSeekerProfile) error
	SetImageURL(ctx context.Context, userID, url string) error
}

type JobSeekerUsecase interface {
	GetProfile(ctx context.Context, userID string) (*JobSeekerProfile, error)
	UpdateProfile(ctx context.Context, profile *JobSeekerProfile) error
	SetProfileImage(ctx context.Context, userID, url string) error
}

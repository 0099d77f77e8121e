package domain

import (
	"context"
	"time"
)

// Portfolio is the public-facing projection of a JobSeekerProfile plus
// registration metadata, shown to approved employers.
type Portfolio struct {
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Speciality   string    `json:"speciality"`
	Skills       []string  `json:"skills"`
	Description  *string   `json:"description,omitempty"`
	ImageURL     *string   `json:"image_url,omitempty"`
	Verified     bool      `json:"verified"`
	IsPublic     bool      `json:"is_public"`
	IsHidden     bool      `json:"is_hidden"`
	Rating       float64   `json:"rating"`
	ProjectCount int       `json:"project_count"`
	RegisteredAt time.Time `json:"registered_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RegisterPortfolioRequest is the owner-supplied registration metadata; the
// rest of the projection is copied from the profile.
type RegisterPortfolioRequest struct {
	Speciality  string  `json:"speciality" binding:"required"`
	Description *string `json:"description"`
	IsPublic    bool    `json:"is_public"`
}

type PortfolioRepository interface {
	GetByUserID(ctx context.Context, userID string) (*Portfolio, error)
	Upsert(ctx context.Context, p *Portfolio) error
	// List returns public portfolios; hidden ones only when includeHidden.
	List(ctx context.Context, includeHidden bool, limit, offset int) ([]Portfolio, int64, error)
	SetHidden(ctx context.Context, userID string, hidden bool) error
	// RefreshFromProfile re-copies the profile-derived columns (name, skills,
	// image) into an existing portfolio row. No-op if none is registered.
	RefreshFromProfile(ctx context.Context, userID string) error
}

// AccessUsecase is the portfolio access-control predicate. It fails closed:
// any store failure or missing record reads as "no access", uniformly, so
// call sites cannot diverge on error handling.
type AccessUsecase interface {
	CanAccessPortfolio(ctx context.Context, userID string) bool
}

type PortfolioUsecase interface {
	// Register creates/overwrites the owner's portfolio projection. Admin may
	// register on a job seeker's behalf.
	Register(ctx context.Context, ownerID string, req RegisterPortfolioRequest) (*Portfolio, error)
	// Get applies the owner-view bypass first, then the access predicate.
	Get(ctx context.Context, viewerID, ownerID string) (*Portfolio, error)
	List(ctx context.Context, viewerID string, page, pageSize int) ([]Portfolio, int64, error)
	SetHidden(ctx context.Context, adminID, ownerID string, hidden bool) error
}

package domain

import "context"

// FavoriteKind selects which of the two independent many-to-many relations an
// operation targets.
type FavoriteKind string

const (
	// FavoriteCompany: a job seeker or employer favorites a company.
	FavoriteCompany FavoriteKind = "company"
	// FavoriteTalent: an employer favorites a job seeker's portfolio.
	FavoriteTalent FavoriteKind = "talent"
)

func (k FavoriteKind) IsValid() bool {
	return k == FavoriteCompany || k == FavoriteTalent
}

// FavoriteRepository stores membership-only relations. Add is idempotent and
// Remove of a non-member is a no-op; both rely on single-statement atomicity,
// so concurrent add/remove for the same user need no extra coordination.
type FavoriteRepository interface {
	Add(ctx context.Context, kind FavoriteKind, userID, targetID string) error
	Remove(ctx context.Context, kind FavoriteKind, userID, targetID string) error
	List(ctx context.Context, kind FavoriteKind, userID string) ([]string, error)
	Exists(ctx context.Context, kind FavoriteKind, userID, targetID string) (bool, error)
}

type FavoriteUsecase interface {
	AddFavorite(ctx context.Context, userID string, kind FavoriteKind, targetID string) error
	RemoveFavorite(ctx context.Context, userID string, kind FavoriteKind, targetID string) error
	ListFavorites(ctx context.Context, userID string, kind FavoriteKind) ([]string, error)
	IsFavorite(ctx context.Context, userID string, kind FavoriteKind, targetID string) (bool, error)
}

package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"go-jobmatch-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobSeekerRepository struct {
	db *pgxpool.Pool
}

func NewJobSeekerRepository(db *pgxpool.Pool) domain.JobSeekerRepository {
	return &jobSeekerRepository{db: db}
}

func (r *jobSeekerRepository) GetByUserID(ctx context.Context, userID string) (*domain.JobSeekerProfile, error) {
	query := `
		SELECT
			user_id, skills, languages,
			experiences, educations, certificates, awards,
			intro_motivation, intro_personality, intro_experience, intro_aspiration,
			image_url, intro_video_urls, media, pdf_urls,
			created_at, updated_at
		FROM jobseeker_profiles WHERE user_id = $1`

	var p domain.JobSeekerProfile
	var skills, languages, videoURLs, pdfURLs []string
	var experiencesJSON, educationsJSON, certificatesJSON, awardsJSON, mediaJSON []byte

	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.UserID, pq.Array(&skills), pq.Array(&languages),
		&experiencesJSON, &educationsJSON, &certificatesJSON, &awardsJSON,
		&p.Intro.Motivation, &p.Intro.Personality, &p.Intro.Experience, &p.Intro.Aspiration,
		&p.ImageURL, pq.Array(&videoURLs), &mediaJSON, pq.Array(&pdfURLs),
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	p.Skills = skills
	p.Languages = languages
	p.IntroVideoURL = videoURLs
	p.PDFURLs = pdfURLs

	if err := unmarshalEntries(experiencesJSON, &p.Experiences); err != nil {
		return nil, err
	}
	if err := unmarshalEntries(educationsJSON, &p.Educations); err != nil {
		return nil, err
	}
	if err := unmarshalEntries(certificatesJSON, &p.Certificates); err != nil {
		return nil, err
	}
	if err := unmarshalEntries(awardsJSON, &p.Awards); err != nil {
		return nil, err
	}
	if err := unmarshalEntries(mediaJSON, &p.Media); err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *jobSeekerRepository) Upsert(ctx context.Context, p *domain.JobSeekerProfile) error {
	experiencesJSON, err := json.Marshal(p.Experiences)
	if err != nil {
		return err
	}
	educationsJSON, err := json.Marshal(p.Educations)
	if err != nil {
		return err
	}
	certificatesJSON, err := json.Marshal(p.Certificates)
	if err != nil {
		return err
	}
	awardsJSON, err := json.Marshal(p.Awards)
	if err != nil {
		return err
	}
	mediaJSON, err := json.Marshal(p.Media)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO jobseeker_profiles (
			user_id, skills, languages,
			experiences, educations, certificates, awards,
			intro_motivation, intro_personality, intro_experience, intro_aspiration,
			image_url, intro_video_urls, media, pdf_urls,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			skills = EXCLUDED.skills,
			languages = EXCLUDED.languages,
			experiences = EXCLUDED.experiences,
			educations = EXCLUDED.educations,
			certificates = EXCLUDED.certificates,
			awards = EXCLUDED.awards,
			intro_motivation = EXCLUDED.intro_motivation,
			intro_personality = EXCLUDED.intro_personality,
			intro_experience = EXCLUDED.intro_experience,
			intro_aspiration = EXCLUDED.intro_aspiration,
			image_url = EXCLUDED.image_url,
			intro_video_urls = EXCLUDED.intro_video_urls,
			media = EXCLUDED.media,
			pdf_urls = EXCLUDED.pdf_urls,
			updated_at = NOW()
		RETURNING created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		p.UserID, pq.Array(p.Skills), pq.Array(p.Languages),
		experiencesJSON, educationsJSON, certificatesJSON, awardsJSON,
		p.Intro.Motivation, p.Intro.Personality, p.Intro.Experience, p.Intro.Aspiration,
		p.ImageURL, pq.Array(p.IntroVideoURL), mediaJSON, pq.Array(p.PDFURLs),
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *jobSeekerRepository) SetImageURL(ctx context.Context, userID, url string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE jobseeker_profiles SET image_url = $1, updated_at = NOW() WHERE user_id = $2`,
		url, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// unmarshalEntries decodes a jsonb column, tolerating NULL
func unmarshalEntries(data []byte, dest interface{}) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dest)
}

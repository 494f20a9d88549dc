package queries

import (
	"context"

	"AmHughesAbsalom/MLS_API.git/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type CompetitionsDBConnection struct {
	*sqlx.DB
}

type Competitions interface {
	CreateCompetition(ctx context.Context, competition *models.Competition) error
	GetCompetition(ctx context.Context, competitionId uuid.UUID) (models.Competition, error)
	GetCompetitionBySlug(ctx context.Context, slug string) (models.Competition, error)
	ListCompetitions(ctx context.Context) ([]models.Competition, error)
	UpdateCompetition(ctx context.Context, competition *models.Competition) error
	DeleteCompetition(ctx context.Context, competitionId uuid.UUID) error
}

func (c *CompetitionsDBConnection) CreateCompetition(ctx context.Context, competition *models.Competition) error {
	if err := prepare(&competition.Id, competition); err != nil {
		return err
	}
	query :=
		`
		INSERT INTO competitions (id, name, slug, year)
		VALUES ($1, $2, $3, $4)
		RETURNING created, modified
		`
	return c.DB.GetContext(ctx, &competition.Timestamps, query,
		competition.Id, competition.Name, competition.Slug, competition.Year)
}

func (c *CompetitionsDBConnection) GetCompetition(ctx context.Context, competitionId uuid.UUID) (models.Competition, error) {
	competition := models.Competition{}
	err := c.DB.GetContext(ctx, &competition, `SELECT * FROM competitions WHERE id = $1`, competitionId)
	if err != nil {
		return models.Competition{}, notFound(err, "competition", competitionId)
	}
	return competition, nil
}

func (c *CompetitionsDBConnection) GetCompetitionBySlug(ctx context.Context, slug string) (models.Competition, error) {
	competition := models.Competition{}
	err := c.DB.GetContext(ctx, &competition, `SELECT * FROM competitions WHERE slug = $1`, slug)
	if err != nil {
		return models.Competition{}, notFound(err, "competition", slug)
	}
	return competition, nil
}

// ListCompetitions has no declared ordering; rows come back oldest first.
func (c *CompetitionsDBConnection) ListCompetitions(ctx context.Context) ([]models.Competition, error) {
	competitions := []models.Competition{}
	err := c.DB.SelectContext(ctx, &competitions, `SELECT * FROM competitions ORDER BY created`)
	if err != nil {
		return nil, err
	}
	return competitions, nil
}

func (c *CompetitionsDBConnection) UpdateCompetition(ctx context.Context, competition *models.Competition) error {
	if err := models.Validate(competition); err != nil {
		return err
	}
	query :=
		`
		UPDATE competitions
		SET name = $1, slug = $2, year = $3, modified = now()
		WHERE id = $4
		RETURNING created, modified
		`
	err := c.DB.GetContext(ctx, &competition.Timestamps, query,
		competition.Name, competition.Slug, competition.Year, competition.Id)
	if err != nil {
		return notFound(err, "competition", competition.Id)
	}
	return nil
}

func (c *CompetitionsDBConnection) DeleteCompetition(ctx context.Context, competitionId uuid.UUID) error {
	res, err := c.DB.ExecContext(ctx, `DELETE FROM competitions WHERE id = $1`, competitionId)
	if err != nil {
		return err
	}
	return affected(res, "competition", competitionId)
}

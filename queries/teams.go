package queries

import (
	"context"

	"AmHughesAbsalom/MLS_API.git/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type TeamsDBConnection struct {
	*sqlx.DB
}

type Teams interface {
	CreateTeam(ctx context.Context, team *models.Team) error
	GetTeam(ctx context.Context, teamId uuid.UUID) (models.Team, error)
	GetTeamBySlug(ctx context.Context, slug string) (models.Team, error)
	ListTeams(ctx context.Context) ([]models.Team, error)
	UpdateTeam(ctx context.Context, team *models.Team) error
	DeleteTeam(ctx context.Context, teamId uuid.UUID) error
}

func (t *TeamsDBConnection) CreateTeam(ctx context.Context, team *models.Team) error {
	if err := prepare(&team.Id, team); err != nil {
		return err
	}
	query :=
		`
		INSERT INTO teams (id, name, slug)
		VALUES ($1, $2, $3)
		RETURNING created, modified
		`
	return t.DB.GetContext(ctx, &team.Timestamps, query, team.Id, team.Name, team.Slug)
}

func (t *TeamsDBConnection) GetTeam(ctx context.Context, teamId uuid.UUID) (models.Team, error) {
	team := models.Team{}
	err := t.DB.GetContext(ctx, &team, `SELECT * FROM teams WHERE id = $1`, teamId)
	if err != nil {
		return models.Team{}, notFound(err, "team", teamId)
	}
	return team, nil
}

func (t *TeamsDBConnection) GetTeamBySlug(ctx context.Context, slug string) (models.Team, error) {
	team := models.Team{}
	err := t.DB.GetContext(ctx, &team, `SELECT * FROM teams WHERE slug = $1`, slug)
	if err != nil {
		return models.Team{}, notFound(err, "team", slug)
	}
	return team, nil
}

func (t *TeamsDBConnection) ListTeams(ctx context.Context) ([]models.Team, error) {
	teams := []models.Team{}
	err := t.DB.SelectContext(ctx, &teams, `SELECT * FROM teams ORDER BY name`)
	if err != nil {
		return nil, err
	}
	return teams, nil
}

func (t *TeamsDBConnection) UpdateTeam(ctx context.Context, team *models.Team) error {
	if err := models.Validate(team); err != nil {
		return err
	}
	query :=
		`
		UPDATE teams
		SET name = $1, slug = $2, modified = now()
		WHERE id = $3
		RETURNING created, modified
		`
	err := t.DB.GetContext(ctx, &team.Timestamps, query, team.Name, team.Slug, team.Id)
	if err != nil {
		return notFound(err, "team", team.Id)
	}
	return nil
}

func (t *TeamsDBConnection) DeleteTeam(ctx context.Context, teamId uuid.UUID) error {
	res, err := t.DB.ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, teamId)
	if err != nil {
		return err
	}
	return affected(res, "team", teamId)
}

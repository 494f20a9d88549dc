package queries

import (
	"context"

	"AmHughesAbsalom/MLS_API.git/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type PlayersDBConnection struct {
	*sqlx.DB
}

type Players interface {
	CreatePlayer(ctx context.Context, player *models.Player) error
	GetPlayer(ctx context.Context, playerId uuid.UUID) (models.Player, error)
	ListPlayers(ctx context.Context) ([]models.Player, error)
	ListPlayersByTeam(ctx context.Context, teamId uuid.UUID) ([]models.Player, error)
	UpdatePlayer(ctx context.Context, player *models.Player) error
	DeletePlayer(ctx context.Context, playerId uuid.UUID) error
}

func (p *PlayersDBConnection) CreatePlayer(ctx context.Context, player *models.Player) error {
	if err := prepare(&player.Id, player); err != nil {
		return err
	}
	query :=
		`
		INSERT INTO players (id, first_name, last_name, number, team_id, position)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created, modified
		`
	return p.DB.GetContext(ctx, &player.Timestamps, query,
		player.Id, player.FirstName, player.LastName, player.Number, player.TeamId, player.Position)
}

func (p *PlayersDBConnection) GetPlayer(ctx context.Context, playerId uuid.UUID) (models.Player, error) {
	player := models.Player{}
	err := p.DB.GetContext(ctx, &player, `SELECT * FROM players WHERE id = $1`, playerId)
	if err != nil {
		return models.Player{}, notFound(err, "player", playerId)
	}
	return player, nil
}

func (p *PlayersDBConnection) ListPlayers(ctx context.Context) ([]models.Player, error) {
	players := []models.Player{}
	err := p.DB.SelectContext(ctx, &players, `SELECT * FROM players ORDER BY last_name, first_name`)
	if err != nil {
		return nil, err
	}
	return players, nil
}

func (p *PlayersDBConnection) ListPlayersByTeam(ctx context.Context, teamId uuid.UUID) ([]models.Player, error) {
	players := []models.Player{}
	query :=
		`
		SELECT * FROM players
		WHERE team_id = $1
		ORDER BY last_name, first_name
		`
	err := p.DB.SelectContext(ctx, &players, query, teamId)
	if err != nil {
		return nil, err
	}
	return players, nil
}

func (p *PlayersDBConnection) UpdatePlayer(ctx context.Context, player *models.Player) error {
	if err := models.Validate(player); err != nil {
		return err
	}
	query :=
		`
		UPDATE players
		SET first_name = $1, last_name = $2, number = $3, team_id = $4, position = $5, modified = now()
		WHERE id = $6
		RETURNING created, modified
		`
	err := p.DB.GetContext(ctx, &player.Timestamps, query,
		player.FirstName, player.LastName, player.Number, player.TeamId, player.Position, player.Id)
	if err != nil {
		return notFound(err, "player", player.Id)
	}
	return nil
}

func (p *PlayersDBConnection) DeletePlayer(ctx context.Context, playerId uuid.UUID) error {
	res, err := p.DB.ExecContext(ctx, `DELETE FROM players WHERE id = $1`, playerId)
	if err != nil {
		return err
	}
	return affected(res, "player", playerId)
}

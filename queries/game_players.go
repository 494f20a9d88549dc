package queries

import (
	"context"

	"AmHughesAbsalom/MLS_API.git/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type GamePlayersDBConnection struct {
	*sqlx.DB
}

type GamePlayers interface {
	CreateGamePlayer(ctx context.Context, gamePlayer *models.GamePlayer) error
	GetGamePlayer(ctx context.Context, gamePlayerId uuid.UUID) (models.GamePlayer, error)
	ListGamePlayers(ctx context.Context, gameId uuid.UUID) ([]models.GamePlayerDetail, error)
	UpdateGamePlayer(ctx context.Context, gamePlayer *models.GamePlayer) error
	DeleteGamePlayer(ctx context.Context, gamePlayerId uuid.UUID) error
}

func (g *GamePlayersDBConnection) CreateGamePlayer(ctx context.Context, gamePlayer *models.GamePlayer) error {
	if err := prepare(&gamePlayer.Id, gamePlayer); err != nil {
		return err
	}
	query :=
		`
		INSERT INTO game_players (id, player_id, position, game_id, captain, team_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created, modified
		`
	return g.DB.GetContext(ctx, &gamePlayer.Timestamps, query,
		gamePlayer.Id, gamePlayer.PlayerId, gamePlayer.Position, gamePlayer.GameId, gamePlayer.Captain, gamePlayer.TeamId)
}

func (g *GamePlayersDBConnection) GetGamePlayer(ctx context.Context, gamePlayerId uuid.UUID) (models.GamePlayer, error) {
	gamePlayer := models.GamePlayer{}
	err := g.DB.GetContext(ctx, &gamePlayer, `SELECT * FROM game_players WHERE id = $1`, gamePlayerId)
	if err != nil {
		return models.GamePlayer{}, notFound(err, "game player", gamePlayerId)
	}
	return gamePlayer, nil
}

// ListGamePlayers returns everyone who took part in a game, ordered like
// players are.
func (g *GamePlayersDBConnection) ListGamePlayers(ctx context.Context, gameId uuid.UUID) ([]models.GamePlayerDetail, error) {
	gamePlayers := []models.GamePlayerDetail{}
	query :=
		`
		SELECT gp.*, p.first_name, p.last_name, p.number
		FROM game_players gp
		JOIN players p ON p.id = gp.player_id
		WHERE gp.game_id = $1
		ORDER BY p.last_name, p.first_name
		`
	err := g.DB.SelectContext(ctx, &gamePlayers, query, gameId)
	if err != nil {
		return nil, err
	}
	return gamePlayers, nil
}

func (g *GamePlayersDBConnection) UpdateGamePlayer(ctx context.Context, gamePlayer *models.GamePlayer) error {
	if err := models.Validate(gamePlayer); err != nil {
		return err
	}
	query :=
		`
		UPDATE game_players
		SET player_id = $1, position = $2, game_id = $3, captain = $4, team_id = $5, modified = now()
		WHERE id = $6
		RETURNING created, modified
		`
	err := g.DB.GetContext(ctx, &gamePlayer.Timestamps, query,
		gamePlayer.PlayerId, gamePlayer.Position, gamePlayer.GameId, gamePlayer.Captain, gamePlayer.TeamId, gamePlayer.Id)
	if err != nil {
		return notFound(err, "game player", gamePlayer.Id)
	}
	return nil
}

func (g *GamePlayersDBConnection) DeleteGamePlayer(ctx context.Context, gamePlayerId uuid.UUID) error {
	res, err := g.DB.ExecContext(ctx, `DELETE FROM game_players WHERE id = $1`, gamePlayerId)
	if err != nil {
		return err
	}
	return affected(res, "game player", gamePlayerId)
}

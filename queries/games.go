package queries

import (
	"context"

	"AmHughesAbsalom/MLS_API.git/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type GamesDBConnection struct {
	*sqlx.DB
}

type Games interface {
	CreateGame(ctx context.Context, game *models.Game) error
	GetGame(ctx context.Context, gameId uuid.UUID) (models.Game, error)
	GetGameByStatLink(ctx context.Context, statLink string) (models.Game, error)
	GetGameWithScore(ctx context.Context, gameId uuid.UUID) (models.GameWithScore, error)
	ListGames(ctx context.Context) ([]models.Game, error)
	ListGamesByCompetition(ctx context.Context, competitionId uuid.UUID) ([]models.Game, error)
	UpdateGame(ctx context.Context, game *models.Game) error
	DeleteGame(ctx context.Context, gameId uuid.UUID) error
	ScoredGoals(ctx context.Context, gameId uuid.UUID) ([]models.ScoredGoal, error)
	GameScore(ctx context.Context, gameId uuid.UUID, teamId uuid.UUID) (int, error)
}

func (g *GamesDBConnection) CreateGame(ctx context.Context, game *models.Game) error {
	if err := prepare(&game.Id, game); err != nil {
		return err
	}
	query :=
		`
		INSERT INTO games (id, home_team_id, away_team_id, start_time, competition_id, stat_link)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created, modified
		`
	return g.DB.GetContext(ctx, &game.Timestamps, query,
		game.Id, game.HomeTeamId, game.AwayTeamId, game.StartTime, game.CompetitionId, game.StatLink)
}

func (g *GamesDBConnection) GetGame(ctx context.Context, gameId uuid.UUID) (models.Game, error) {
	game := models.Game{}
	err := g.DB.GetContext(ctx, &game, `SELECT * FROM games WHERE id = $1`, gameId)
	if err != nil {
		return models.Game{}, notFound(err, "game", gameId)
	}
	return game, nil
}

func (g *GamesDBConnection) GetGameByStatLink(ctx context.Context, statLink string) (models.Game, error) {
	game := models.Game{}
	err := g.DB.GetContext(ctx, &game, `SELECT * FROM games WHERE stat_link = $1`, statLink)
	if err != nil {
		return models.Game{}, notFound(err, "game", statLink)
	}
	return game, nil
}

// GetGameWithScore loads a game with its team names and both scores, which
// are recounted from the goals on every call.
func (g *GamesDBConnection) GetGameWithScore(ctx context.Context, gameId uuid.UUID) (models.GameWithScore, error) {
	game := models.GameWithScore{}
	query :=
		`
		SELECT ga.*, ht.name AS home_team_name, at.name AS away_team_name
		FROM games ga
		JOIN teams ht ON ht.id = ga.home_team_id
		JOIN teams at ON at.id = ga.away_team_id
		WHERE ga.id = $1
		`
	err := g.DB.GetContext(ctx, &game, query, gameId)
	if err != nil {
		return models.GameWithScore{}, notFound(err, "game", gameId)
	}
	goals, err := g.ScoredGoals(ctx, gameId)
	if err != nil {
		return models.GameWithScore{}, err
	}
	game.HomeScore = models.Score(goals, game.HomeTeamId)
	game.AwayScore = models.Score(goals, game.AwayTeamId)
	return game, nil
}

func (g *GamesDBConnection) ListGames(ctx context.Context) ([]models.Game, error) {
	games := []models.Game{}
	err := g.DB.SelectContext(ctx, &games, `SELECT * FROM games ORDER BY start_time DESC`)
	if err != nil {
		return nil, err
	}
	return games, nil
}

func (g *GamesDBConnection) ListGamesByCompetition(ctx context.Context, competitionId uuid.UUID) ([]models.Game, error) {
	games := []models.Game{}
	query :=
		`
		SELECT * FROM games
		WHERE competition_id = $1
		ORDER BY start_time DESC
		`
	err := g.DB.SelectContext(ctx, &games, query, competitionId)
	if err != nil {
		return nil, err
	}
	return games, nil
}

func (g *GamesDBConnection) UpdateGame(ctx context.Context, game *models.Game) error {
	if err := models.Validate(game); err != nil {
		return err
	}
	query :=
		`
		UPDATE games
		SET home_team_id = $1, away_team_id = $2, start_time = $3, competition_id = $4, stat_link = $5, modified = now()
		WHERE id = $6
		RETURNING created, modified
		`
	err := g.DB.GetContext(ctx, &game.Timestamps, query,
		game.HomeTeamId, game.AwayTeamId, game.StartTime, game.CompetitionId, game.StatLink, game.Id)
	if err != nil {
		return notFound(err, "game", game.Id)
	}
	return nil
}

// DeleteGame removes a game together with its game players, goals, bookings,
// stat sets and formations.
func (g *GamesDBConnection) DeleteGame(ctx context.Context, gameId uuid.UUID) error {
	res, err := g.DB.ExecContext(ctx, `DELETE FROM games WHERE id = $1`, gameId)
	if err != nil {
		return err
	}
	return affected(res, "game", gameId)
}

// ScoredGoals lists the goals of a game with the team of the player each one
// is credited to.
func (g *GamesDBConnection) ScoredGoals(ctx context.Context, gameId uuid.UUID) ([]models.ScoredGoal, error) {
	goals := []models.ScoredGoal{}
	query :=
		`
		SELECT g.id AS goal_id, g.game_id, gp.team_id AS scorer_team_id, g.own_goal
		FROM goals g
		JOIN game_players gp ON gp.id = g.player_id
		WHERE g.game_id = $1
		ORDER BY g.minute
		`
	err := g.DB.SelectContext(ctx, &goals, query, gameId)
	if err != nil {
		return nil, err
	}
	return goals, nil
}

func (g *GamesDBConnection) GameScore(ctx context.Context, gameId uuid.UUID, teamId uuid.UUID) (int, error) {
	goals, err := g.ScoredGoals(ctx, gameId)
	if err != nil {
		return 0, err
	}
	return models.Score(goals, teamId), nil
}

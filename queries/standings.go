package queries

import (
	"context"

	"AmHughesAbsalom/MLS_API.git/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type StandingsDBConnection struct {
	*sqlx.DB
}

type Standings interface {
	ListResults(ctx context.Context, competitionId uuid.UUID) ([]models.GameWithScore, error)
	ListStandings(ctx context.Context, competitionId uuid.UUID) ([]models.StandingsModel, error)
}

// ListResults returns the games of a competition that have kicked off, newest
// first, each with its score recounted from the goals.
func (s *StandingsDBConnection) ListResults(ctx context.Context, competitionId uuid.UUID) ([]models.GameWithScore, error) {
	games := []models.GameWithScore{}
	query :=
		`
		SELECT ga.*, ht.name AS home_team_name, at.name AS away_team_name
		FROM games ga
		JOIN teams ht ON ht.id = ga.home_team_id
		JOIN teams at ON at.id = ga.away_team_id
		WHERE ga.competition_id = $1
		AND ga.start_time <= now()
		ORDER BY ga.start_time DESC
		`
	err := s.DB.SelectContext(ctx, &games, query, competitionId)
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return games, nil
	}

	goals := []models.ScoredGoal{}
	queryGoals :=
		`
		SELECT g.id AS goal_id, g.game_id, gp.team_id AS scorer_team_id, g.own_goal
		FROM goals g
		JOIN game_players gp ON gp.id = g.player_id
		JOIN games ga ON ga.id = g.game_id
		WHERE ga.competition_id = $1
		`
	err = s.DB.SelectContext(ctx, &goals, queryGoals, competitionId)
	if err != nil {
		return nil, err
	}
	byGame := map[uuid.UUID][]models.ScoredGoal{}
	for _, g := range goals {
		byGame[g.GameId] = append(byGame[g.GameId], g)
	}
	for i := range games {
		gameGoals := byGame[games[i].Id]
		games[i].HomeScore = models.Score(gameGoals, games[i].HomeTeamId)
		games[i].AwayScore = models.Score(gameGoals, games[i].AwayTeamId)
	}
	return games, nil
}

func (s *StandingsDBConnection) ListStandings(ctx context.Context, competitionId uuid.UUID) ([]models.StandingsModel, error) {
	games, err := s.ListResults(ctx, competitionId)
	if err != nil {
		return nil, err
	}
	return models.BuildStandings(competitionId, games), nil
}

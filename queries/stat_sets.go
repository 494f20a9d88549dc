package queries

import (
	"context"

	"AmHughesAbsalom/MLS_API.git/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type StatSetsDBConnection struct {
	*sqlx.DB
}

type StatSets interface {
	CreateStatSet(ctx context.Context, statSet *models.StatSet) error
	GetStatSet(ctx context.Context, statSetId uuid.UUID) (models.StatSet, error)
	ListStatSets(ctx context.Context, gameId uuid.UUID) ([]models.StatSet, error)
	UpdateStatSet(ctx context.Context, statSet *models.StatSet) error
	DeleteStatSet(ctx context.Context, statSetId uuid.UUID) error
	CreatePlayerStatLine(ctx context.Context, line *models.PlayerStatLine) error
	ListPlayerStatLines(ctx context.Context, gamePlayerId uuid.UUID) ([]models.PlayerStatLine, error)
	UpdatePlayerStatLine(ctx context.Context, line *models.PlayerStatLine) error
	DeletePlayerStatLine(ctx context.Context, lineId uuid.UUID) error
}

func (s *StatSetsDBConnection) CreateStatSet(ctx context.Context, statSet *models.StatSet) error {
	if err := prepare(&statSet.Id, statSet); err != nil {
		return err
	}
	query :=
		`
		INSERT INTO stat_sets (
		id,
		attempts_on_goal,
		shots_on_target,
		shots_off_target,
		blocked_shots,
		corner_kicks,
		fouls,
		crosses,
		offsides,
		first_yellows,
		second_yellows,
		red_cards,
		duels_won,
		duels_won_percentage,
		total_passes,
		pass_percentage,
		possession,
		team_id,
		game_id)
		VALUES (
		:id,
		:attempts_on_goal,
		:shots_on_target,
		:shots_off_target,
		:blocked_shots,
		:corner_kicks,
		:fouls,
		:crosses,
		:offsides,
		:first_yellows,
		:second_yellows,
		:red_cards,
		:duels_won,
		:duels_won_percentage,
		:total_passes,
		:pass_percentage,
		:possession,
		:team_id,
		:game_id)
		RETURNING created, modified
		`
	return namedGet(ctx, s.DB, &statSet.Timestamps, query, statSet)
}

func (s *StatSetsDBConnection) GetStatSet(ctx context.Context, statSetId uuid.UUID) (models.StatSet, error) {
	statSet := models.StatSet{}
	err := s.DB.GetContext(ctx, &statSet, `SELECT * FROM stat_sets WHERE id = $1`, statSetId)
	if err != nil {
		return models.StatSet{}, notFound(err, "stat set", statSetId)
	}
	return statSet, nil
}

func (s *StatSetsDBConnection) ListStatSets(ctx context.Context, gameId uuid.UUID) ([]models.StatSet, error) {
	statSets := []models.StatSet{}
	err := s.DB.SelectContext(ctx, &statSets, `SELECT * FROM stat_sets WHERE game_id = $1 ORDER BY created`, gameId)
	if err != nil {
		return nil, err
	}
	return statSets, nil
}

func (s *StatSetsDBConnection) UpdateStatSet(ctx context.Context, statSet *models.StatSet) error {
	if err := models.Validate(statSet); err != nil {
		return err
	}
	query :=
		`
		UPDATE stat_sets SET
		attempts_on_goal = :attempts_on_goal,
		shots_on_target = :shots_on_target,
		shots_off_target = :shots_off_target,
		blocked_shots = :blocked_shots,
		corner_kicks = :corner_kicks,
		fouls = :fouls,
		crosses = :crosses,
		offsides = :offsides,
		first_yellows = :first_yellows,
		second_yellows = :second_yellows,
		red_cards = :red_cards,
		duels_won = :duels_won,
		duels_won_percentage = :duels_won_percentage,
		total_passes = :total_passes,
		pass_percentage = :pass_percentage,
		possession = :possession,
		team_id = :team_id,
		game_id = :game_id,
		modified = now()
		WHERE id = :id
		RETURNING created, modified
		`
	if err := namedGet(ctx, s.DB, &statSet.Timestamps, query, statSet); err != nil {
		return notFound(err, "stat set", statSet.Id)
	}
	return nil
}

func (s *StatSetsDBConnection) DeleteStatSet(ctx context.Context, statSetId uuid.UUID) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM stat_sets WHERE id = $1`, statSetId)
	if err != nil {
		return err
	}
	return affected(res, "stat set", statSetId)
}

func (s *StatSetsDBConnection) CreatePlayerStatLine(ctx context.Context, line *models.PlayerStatLine) error {
	if err := prepare(&line.Id, line); err != nil {
		return err
	}
	query :=
		`
		INSERT INTO player_stat_lines (
		id, player_id, shots, shots_on_goal, minutes, goals, assists,
		fouls_commited, fouls_suffered, corners, offsides, saves, goals_against)
		VALUES (
		:id, :player_id, :shots, :shots_on_goal, :minutes, :goals, :assists,
		:fouls_commited, :fouls_suffered, :corners, :offsides, :saves, :goals_against)
		RETURNING created, modified
		`
	return namedGet(ctx, s.DB, &line.Timestamps, query, line)
}

func (s *StatSetsDBConnection) ListPlayerStatLines(ctx context.Context, gamePlayerId uuid.UUID) ([]models.PlayerStatLine, error) {
	lines := []models.PlayerStatLine{}
	err := s.DB.SelectContext(ctx, &lines, `SELECT * FROM player_stat_lines WHERE player_id = $1 ORDER BY created`, gamePlayerId)
	if err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *StatSetsDBConnection) UpdatePlayerStatLine(ctx context.Context, line *models.PlayerStatLine) error {
	if err := models.Validate(line); err != nil {
		return err
	}
	query :=
		`
		UPDATE player_stat_lines SET
		player_id = :player_id,
		shots = :shots,
		shots_on_goal = :shots_on_goal,
		minutes = :minutes,
		goals = :goals,
		assists = :assists,
		fouls_commited = :fouls_commited,
		fouls_suffered = :fouls_suffered,
		corners = :corners,
		offsides = :offsides,
		saves = :saves,
		goals_against = :goals_against,
		modified = now()
		WHERE id = :id
		RETURNING created, modified
		`
	if err := namedGet(ctx, s.DB, &line.Timestamps, query, line); err != nil {
		return notFound(err, "player stat line", line.Id)
	}
	return nil
}

func (s *StatSetsDBConnection) DeletePlayerStatLine(ctx context.Context, lineId uuid.UUID) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM player_stat_lines WHERE id = $1`, lineId)
	if err != nil {
		return err
	}
	return affected(res, "player stat line", lineId)
}

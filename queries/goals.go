package queries

import (
	"context"
	"log"

	"AmHughesAbsalom/MLS_API.git/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type GoalsDBConnection struct {
	*sqlx.DB
}

type Goals interface {
	CreateGoal(ctx context.Context, goal *models.Goal, assistedBy ...uuid.UUID) error
	GetGoal(ctx context.Context, goalId uuid.UUID) (models.Goal, error)
	ListGoals(ctx context.Context, gameId uuid.UUID) ([]models.Goal, error)
	UpdateGoal(ctx context.Context, goal *models.Goal) error
	DeleteGoal(ctx context.Context, goalId uuid.UUID) error
	AddAssist(ctx context.Context, goalId uuid.UUID, gamePlayerId uuid.UUID) error
	ListAssists(ctx context.Context, goalId uuid.UUID) ([]models.GamePlayer, error)
}

const insertAssistQuery = `
		INSERT INTO goal_assisted_by (id, goal_id, game_player_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (goal_id, game_player_id) DO NOTHING
		`

// CreateGoal records a goal and the game players who assisted it in one
// transaction.
func (g *GoalsDBConnection) CreateGoal(ctx context.Context, goal *models.Goal, assistedBy ...uuid.UUID) error {
	if err := prepare(&goal.Id, goal); err != nil {
		return err
	}
	query :=
		`
		INSERT INTO goals (id, game_id, minute, player_id, penalty, own_goal)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created, modified
		`
	tx, errTx := g.DB.BeginTxx(ctx, nil)
	if errTx != nil {
		log.Println("error creating goal tx: ", errTx.Error())
		return errTx
	}
	defer func() {
		_ = tx.Rollback()
	}()

	err := tx.GetContext(ctx, &goal.Timestamps, query,
		goal.Id, goal.GameId, goal.Minute, goal.PlayerId, goal.Penalty, goal.OwnGoal)
	if err != nil {
		log.Println("failed to insert goal: ", err.Error())
		return err
	}
	for _, gamePlayerId := range assistedBy {
		_, err := tx.ExecContext(ctx, insertAssistQuery, uuid.New(), goal.Id, gamePlayerId)
		if err != nil {
			log.Println("failed to insert assist: ", err.Error())
			return err
		}
	}
	return tx.Commit()
}

func (g *GoalsDBConnection) GetGoal(ctx context.Context, goalId uuid.UUID) (models.Goal, error) {
	goal := models.Goal{}
	err := g.DB.GetContext(ctx, &goal, `SELECT * FROM goals WHERE id = $1`, goalId)
	if err != nil {
		return models.Goal{}, notFound(err, "goal", goalId)
	}
	return goal, nil
}

func (g *GoalsDBConnection) ListGoals(ctx context.Context, gameId uuid.UUID) ([]models.Goal, error) {
	goals := []models.Goal{}
	err := g.DB.SelectContext(ctx, &goals, `SELECT * FROM goals WHERE game_id = $1 ORDER BY minute, created`, gameId)
	if err != nil {
		return nil, err
	}
	return goals, nil
}

func (g *GoalsDBConnection) UpdateGoal(ctx context.Context, goal *models.Goal) error {
	if err := models.Validate(goal); err != nil {
		return err
	}
	query :=
		`
		UPDATE goals
		SET game_id = $1, minute = $2, player_id = $3, penalty = $4, own_goal = $5, modified = now()
		WHERE id = $6
		RETURNING created, modified
		`
	err := g.DB.GetContext(ctx, &goal.Timestamps, query,
		goal.GameId, goal.Minute, goal.PlayerId, goal.Penalty, goal.OwnGoal, goal.Id)
	if err != nil {
		return notFound(err, "goal", goal.Id)
	}
	return nil
}

func (g *GoalsDBConnection) DeleteGoal(ctx context.Context, goalId uuid.UUID) error {
	res, err := g.DB.ExecContext(ctx, `DELETE FROM goals WHERE id = $1`, goalId)
	if err != nil {
		return err
	}
	return affected(res, "goal", goalId)
}

// AddAssist credits a game player with an assist. Adding the same assist
// twice is a no-op.
func (g *GoalsDBConnection) AddAssist(ctx context.Context, goalId uuid.UUID, gamePlayerId uuid.UUID) error {
	assist := models.GoalAssist{Id: uuid.New(), GoalId: goalId, GamePlayerId: gamePlayerId}
	if err := models.Validate(assist); err != nil {
		return err
	}
	_, err := g.DB.ExecContext(ctx, insertAssistQuery, assist.Id, assist.GoalId, assist.GamePlayerId)
	return err
}

func (g *GoalsDBConnection) ListAssists(ctx context.Context, goalId uuid.UUID) ([]models.GamePlayer, error) {
	gamePlayers := []models.GamePlayer{}
	query :=
		`
		SELECT gp.*
		FROM goal_assisted_by a
		JOIN game_players gp ON gp.id = a.game_player_id
		WHERE a.goal_id = $1
		ORDER BY gp.created
		`
	err := g.DB.SelectContext(ctx, &gamePlayers, query, goalId)
	if err != nil {
		return nil, err
	}
	return gamePlayers, nil
}

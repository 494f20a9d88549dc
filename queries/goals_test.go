package queries

import (
	"errors"

	"AmHughesAbsalom/MLS_API.git/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *QueriesTestSuite) TestCreateGoal_WithAssists() {
	conn := &GoalsDBConnection{DB: suite.db}
	goal := models.Goal{GameId: uuid.New(), Minute: 47, PlayerId: uuid.New()}
	first, second := uuid.New(), uuid.New()

	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`INSERT INTO goals \(id, game_id, minute, player_id, penalty, own_goal\)`).
		WithArgs(sqlmock.AnyArg(), goal.GameId, 47, goal.PlayerId, false, false).
		WillReturnRows(suite.stamps(suite.now, suite.now))
	suite.mock.ExpectExec(`INSERT INTO goal_assisted_by \(id, goal_id, game_player_id\)`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), first).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectExec(`INSERT INTO goal_assisted_by`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), second).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	err := conn.CreateGoal(suite.ctx, &goal, first, second)

	require.NoError(suite.T(), err)
	assert.NotEqual(suite.T(), uuid.Nil, goal.Id)
	assert.Equal(suite.T(), suite.now, goal.Created)
}

func (suite *QueriesTestSuite) TestCreateGoal_AssistFailureRollsBack() {
	conn := &GoalsDBConnection{DB: suite.db}
	goal := models.Goal{GameId: uuid.New(), Minute: 12, PlayerId: uuid.New(), Penalty: true}

	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`INSERT INTO goals`).
		WillReturnRows(suite.stamps(suite.now, suite.now))
	suite.mock.ExpectExec(`INSERT INTO goal_assisted_by`).
		WillReturnError(&pq.Error{Code: "23503"})
	suite.mock.ExpectRollback()

	err := conn.CreateGoal(suite.ctx, &goal, uuid.New())

	assert.True(suite.T(), IsForeignKeyViolation(err))
}

func (suite *QueriesTestSuite) TestCreateGoal_BeginFails() {
	conn := &GoalsDBConnection{DB: suite.db}
	goal := models.Goal{GameId: uuid.New(), PlayerId: uuid.New()}
	errBegin := errors.New("pool closed")

	suite.mock.ExpectBegin().WillReturnError(errBegin)

	assert.ErrorIs(suite.T(), conn.CreateGoal(suite.ctx, &goal), errBegin)
}

func (suite *QueriesTestSuite) TestCreateGoal_NegativeMinute() {
	conn := &GoalsDBConnection{DB: suite.db}
	goal := models.Goal{GameId: uuid.New(), Minute: -1, PlayerId: uuid.New()}

	assert.Error(suite.T(), conn.CreateGoal(suite.ctx, &goal))
}

func (suite *QueriesTestSuite) TestAddAssist() {
	conn := &GoalsDBConnection{DB: suite.db}
	goalId, gamePlayerId := uuid.New(), uuid.New()

	suite.mock.ExpectExec(`INSERT INTO goal_assisted_by \(id, goal_id, game_player_id\) VALUES \(\$1, \$2, \$3\) ON CONFLICT \(goal_id, game_player_id\) DO NOTHING`).
		WithArgs(sqlmock.AnyArg(), goalId, gamePlayerId).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(suite.T(), conn.AddAssist(suite.ctx, goalId, gamePlayerId))
}

func (suite *QueriesTestSuite) TestListGoals_ByMinute() {
	conn := &GoalsDBConnection{DB: suite.db}
	gameId := uuid.New()
	columns := []string{"id", "game_id", "minute", "player_id", "penalty", "own_goal", "created", "modified"}

	suite.mock.ExpectQuery(`SELECT \* FROM goals WHERE game_id = \$1 ORDER BY minute, created`).
		WithArgs(gameId).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(uuid.NewString(), gameId.String(), 3, uuid.NewString(), false, false, suite.now, suite.now).
			AddRow(uuid.NewString(), gameId.String(), 88, uuid.NewString(), false, true, suite.now, suite.now))

	goals, err := conn.ListGoals(suite.ctx, gameId)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), goals, 2)
	assert.True(suite.T(), goals[1].OwnGoal)
	assert.Equal(suite.T(), 88, goals[1].Minute)
}

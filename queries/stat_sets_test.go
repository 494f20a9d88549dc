package queries

import (
	"AmHughesAbsalom/MLS_API.git/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *QueriesTestSuite) TestCreateStatSet_BindsNamedParameters() {
	conn := &StatSetsDBConnection{DB: suite.db}
	statSet := models.StatSet{
		AttemptsOnGoal:     14,
		ShotsOnTarget:      6,
		ShotsOffTarget:     5,
		BlockedShots:       3,
		CornerKicks:        7,
		Fouls:              12,
		Crosses:            20,
		Offsides:           2,
		FirstYellows:       1,
		SecondYellows:      0,
		RedCards:           0,
		DuelsWon:           48,
		DuelsWonPercentage: 52,
		TotalPasses:        410,
		PassPercentage:     78,
		Possession:         55.5,
		TeamId:             uuid.New(),
		GameId:             uuid.New(),
	}

	suite.mock.ExpectQuery(`INSERT INTO stat_sets \( id, attempts_on_goal, .* VALUES \( \$1, \$2, .* \$19\) RETURNING created, modified`).
		WithArgs(sqlmock.AnyArg(), 14, 6, 5, 3, 7, 12, 20, 2, 1, 0, 0, 48, 52, 410, 78, 55.5, statSet.TeamId, statSet.GameId).
		WillReturnRows(suite.stamps(suite.now, suite.now))

	require.NoError(suite.T(), conn.CreateStatSet(suite.ctx, &statSet))
	assert.NotEqual(suite.T(), uuid.Nil, statSet.Id)
	assert.Equal(suite.T(), suite.now, statSet.Modified)
}

func (suite *QueriesTestSuite) TestCreateStatSet_PossessionOutOfRange() {
	conn := &StatSetsDBConnection{DB: suite.db}
	statSet := models.StatSet{Possession: 100, TeamId: uuid.New(), GameId: uuid.New()}

	assert.Error(suite.T(), conn.CreateStatSet(suite.ctx, &statSet))
}

func (suite *QueriesTestSuite) TestUpdateStatSet_NotFound() {
	conn := &StatSetsDBConnection{DB: suite.db}
	statSet := models.StatSet{Id: uuid.New(), Possession: 44.5, TeamId: uuid.New(), GameId: uuid.New()}

	suite.mock.ExpectQuery(`UPDATE stat_sets`).
		WillReturnRows(sqlmock.NewRows([]string{"created", "modified"}))

	assert.ErrorIs(suite.T(), conn.UpdateStatSet(suite.ctx, &statSet), ErrNotFound)
}

func (suite *QueriesTestSuite) TestCreatePlayerStatLine() {
	conn := &StatSetsDBConnection{DB: suite.db}
	line := models.PlayerStatLine{PlayerId: uuid.New(), Shots: 4, ShotsOnGoal: 2, Minutes: 90, Goals: 1}

	suite.mock.ExpectQuery(`INSERT INTO player_stat_lines`).
		WithArgs(sqlmock.AnyArg(), line.PlayerId, 4, 2, 90, 1, 0, 0, 0, 0, 0, 0, 0).
		WillReturnRows(suite.stamps(suite.now, suite.now))

	require.NoError(suite.T(), conn.CreatePlayerStatLine(suite.ctx, &line))
}

func (suite *QueriesTestSuite) TestListPlayerStatLines() {
	conn := &StatSetsDBConnection{DB: suite.db}
	gamePlayerId := uuid.New()

	suite.mock.ExpectQuery(`SELECT \* FROM player_stat_lines WHERE player_id = \$1 ORDER BY created`).
		WithArgs(gamePlayerId).
		WillReturnRows(sqlmock.NewRows([]string{"id", "player_id", "saves", "created", "modified"}).
			AddRow(uuid.NewString(), gamePlayerId.String(), 6, suite.now, suite.now))

	lines, err := conn.ListPlayerStatLines(suite.ctx, gamePlayerId)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), lines, 1)
	assert.Equal(suite.T(), 6, lines[0].Saves)
}

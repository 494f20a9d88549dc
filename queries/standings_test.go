package queries

import (
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *QueriesTestSuite) TestListStandings() {
	conn := &StandingsDBConnection{DB: suite.db}
	competitionId := uuid.New()
	fire, galaxy := uuid.New(), uuid.New()
	first, second := uuid.New(), uuid.New()
	columns := append(gameColumns, "home_team_name", "away_team_name")

	suite.mock.ExpectQuery(`FROM games ga .* WHERE ga\.competition_id = \$1 AND ga\.start_time <= now\(\) ORDER BY ga\.start_time DESC`).
		WithArgs(competitionId).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(second.String(), galaxy.String(), fire.String(), suite.now, competitionId.String(), "/2", suite.now, suite.now, "LA Galaxy", "Chicago Fire").
			AddRow(first.String(), fire.String(), galaxy.String(), suite.now, competitionId.String(), "/1", suite.now, suite.now, "Chicago Fire", "LA Galaxy"))
	suite.mock.ExpectQuery(`FROM goals g JOIN game_players gp ON gp\.id = g\.player_id JOIN games ga ON ga\.id = g\.game_id WHERE ga\.competition_id = \$1`).
		WithArgs(competitionId).
		WillReturnRows(sqlmock.NewRows(scoredGoalColumn).
			AddRow(uuid.NewString(), first.String(), fire.String(), false).
			AddRow(uuid.NewString(), first.String(), fire.String(), false).
			AddRow(uuid.NewString(), second.String(), galaxy.String(), true))

	standings, err := conn.ListStandings(suite.ctx, competitionId)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), standings, 2)
	assert.Equal(suite.T(), "Chicago Fire", standings[0].TeamName)
	assert.Equal(suite.T(), 6, standings[0].Pts)
	assert.Equal(suite.T(), 3, standings[0].Gf)
	assert.Equal(suite.T(), 1, standings[0].Position)
	assert.Equal(suite.T(), 0, standings[1].Pts)
	assert.Equal(suite.T(), -3, standings[1].Gd)
}

func (suite *QueriesTestSuite) TestListResults_NoGamesPlayed() {
	conn := &StandingsDBConnection{DB: suite.db}
	competitionId := uuid.New()

	suite.mock.ExpectQuery(`FROM games ga`).
		WithArgs(competitionId).
		WillReturnRows(sqlmock.NewRows(gameColumns))

	results, err := conn.ListResults(suite.ctx, competitionId)

	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), results)
}

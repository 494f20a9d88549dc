package queries

import (
	"time"

	"AmHughesAbsalom/MLS_API.git/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	gameColumns      = []string{"id", "home_team_id", "away_team_id", "start_time", "competition_id", "stat_link", "created", "modified"}
	scoredGoalColumn = []string{"goal_id", "game_id", "scorer_team_id", "own_goal"}
)

func (suite *QueriesTestSuite) TestCreateGame_Success() {
	conn := &GamesDBConnection{DB: suite.db}
	start := suite.now
	game := models.Game{
		HomeTeamId:    uuid.New(),
		AwayTeamId:    uuid.New(),
		StartTime:     &start,
		CompetitionId: uuid.New(),
		StatLink:      "/stats/2013/chi-vs-chv",
	}

	suite.mock.ExpectQuery(`INSERT INTO games \(id, home_team_id, away_team_id, start_time, competition_id, stat_link\)`).
		WithArgs(sqlmock.AnyArg(), game.HomeTeamId, game.AwayTeamId, sqlmock.AnyArg(), game.CompetitionId, game.StatLink).
		WillReturnRows(suite.stamps(suite.now, suite.now))

	require.NoError(suite.T(), conn.CreateGame(suite.ctx, &game))
	assert.NotEqual(suite.T(), uuid.Nil, game.Id)
}

func (suite *QueriesTestSuite) TestCreateGame_SameTeamTwice() {
	conn := &GamesDBConnection{DB: suite.db}
	teamId := uuid.New()
	game := models.Game{HomeTeamId: teamId, AwayTeamId: teamId, CompetitionId: uuid.New()}

	err := conn.CreateGame(suite.ctx, &game)

	assert.Error(suite.T(), err)
}

func (suite *QueriesTestSuite) TestGetGameByStatLink_NotFound() {
	conn := &GamesDBConnection{DB: suite.db}

	suite.mock.ExpectQuery(`SELECT \* FROM games WHERE stat_link = \$1`).
		WithArgs("/stats/missing").
		WillReturnRows(sqlmock.NewRows(gameColumns))

	_, err := conn.GetGameByStatLink(suite.ctx, "/stats/missing")

	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *QueriesTestSuite) TestListGames_NewestFirst() {
	conn := &GamesDBConnection{DB: suite.db}
	later := suite.now.Add(7 * 24 * time.Hour)

	suite.mock.ExpectQuery(`SELECT \* FROM games ORDER BY start_time DESC`).
		WillReturnRows(sqlmock.NewRows(gameColumns).
			AddRow(uuid.NewString(), uuid.NewString(), uuid.NewString(), later, uuid.NewString(), "/b", suite.now, suite.now).
			AddRow(uuid.NewString(), uuid.NewString(), uuid.NewString(), suite.now, uuid.NewString(), "/a", suite.now, suite.now).
			AddRow(uuid.NewString(), uuid.NewString(), uuid.NewString(), nil, uuid.NewString(), "/c", suite.now, suite.now))

	games, err := conn.ListGames(suite.ctx)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), games, 3)
	assert.Equal(suite.T(), later, *games[0].StartTime)
	assert.Nil(suite.T(), games[2].StartTime)
}

func (suite *QueriesTestSuite) TestGetGameWithScore() {
	conn := &GamesDBConnection{DB: suite.db}
	gameId, home, away := uuid.New(), uuid.New(), uuid.New()

	suite.mock.ExpectQuery(`SELECT ga\.\*, ht\.name AS home_team_name, at\.name AS away_team_name FROM games ga`).
		WithArgs(gameId).
		WillReturnRows(sqlmock.NewRows(append(gameColumns, "home_team_name", "away_team_name")).
			AddRow(gameId.String(), home.String(), away.String(), suite.now, uuid.NewString(), "/s", suite.now, suite.now, "Chicago Fire", "Chivas USA"))
	suite.mock.ExpectQuery(`SELECT g\.id AS goal_id, g\.game_id, gp\.team_id AS scorer_team_id, g\.own_goal FROM goals g`).
		WithArgs(gameId).
		WillReturnRows(sqlmock.NewRows(scoredGoalColumn).
			AddRow(uuid.NewString(), gameId.String(), home.String(), false).
			AddRow(uuid.NewString(), gameId.String(), away.String(), false).
			AddRow(uuid.NewString(), gameId.String(), away.String(), true).
			AddRow(uuid.NewString(), gameId.String(), home.String(), false))

	game, err := conn.GetGameWithScore(suite.ctx, gameId)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, game.HomeScore)
	assert.Equal(suite.T(), 1, game.AwayScore)
	assert.Equal(suite.T(), "Chicago Fire", game.HomeTeamName)
	assert.Contains(suite.T(), game.String(), "Chicago Fire vs. Chivas USA on ")
}

func (suite *QueriesTestSuite) TestGameScore_NoGoals() {
	conn := &GamesDBConnection{DB: suite.db}
	gameId := uuid.New()

	suite.mock.ExpectQuery(`FROM goals g JOIN game_players gp ON gp\.id = g\.player_id WHERE g\.game_id = \$1`).
		WithArgs(gameId).
		WillReturnRows(sqlmock.NewRows(scoredGoalColumn))

	score, err := conn.GameScore(suite.ctx, gameId, uuid.New())

	require.NoError(suite.T(), err)
	assert.Zero(suite.T(), score)
}

func (suite *QueriesTestSuite) TestGameScore_OwnGoalCountsForOpponent() {
	conn := &GamesDBConnection{DB: suite.db}
	gameId, home, away := uuid.New(), uuid.New(), uuid.New()

	suite.mock.ExpectQuery(`FROM goals g`).
		WithArgs(gameId).
		WillReturnRows(sqlmock.NewRows(scoredGoalColumn).
			AddRow(uuid.NewString(), gameId.String(), home.String(), true))

	score, err := conn.GameScore(suite.ctx, gameId, away)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, score)
}

func (suite *QueriesTestSuite) TestUpdateGame_KeepsCreated() {
	conn := &GamesDBConnection{DB: suite.db}
	game := models.Game{Id: uuid.New(), HomeTeamId: uuid.New(), AwayTeamId: uuid.New(), CompetitionId: uuid.New()}
	game.Created = suite.now

	suite.mock.ExpectQuery(`UPDATE games SET home_team_id = \$1, away_team_id = \$2, start_time = \$3, competition_id = \$4, stat_link = \$5, modified = now\(\) WHERE id = \$6`).
		WillReturnRows(suite.stamps(suite.now, suite.now.Add(time.Minute)))

	require.NoError(suite.T(), conn.UpdateGame(suite.ctx, &game))
	assert.Equal(suite.T(), suite.now, game.Created)
	assert.False(suite.T(), game.Modified.Before(game.Created))
}

func (suite *QueriesTestSuite) TestDeleteGame_NotFound() {
	conn := &GamesDBConnection{DB: suite.db}

	suite.mock.ExpectExec(`DELETE FROM games WHERE id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(suite.T(), conn.DeleteGame(suite.ctx, uuid.New()), ErrNotFound)
}

func (suite *QueriesTestSuite) TestListGamePlayers_WithNames() {
	conn := &GamePlayersDBConnection{DB: suite.db}
	gameId := uuid.New()
	columns := []string{"id", "player_id", "position", "game_id", "captain", "team_id", "created", "modified", "first_name", "last_name", "number"}

	suite.mock.ExpectQuery(`SELECT gp\.\*, p\.first_name, p\.last_name, p\.number FROM game_players gp JOIN players p ON p\.id = gp\.player_id WHERE gp\.game_id = \$1 ORDER BY p\.last_name, p\.first_name`).
		WithArgs(gameId).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(uuid.NewString(), uuid.NewString(), "G", gameId.String(), true, uuid.NewString(), suite.now, suite.now, "Sean", "Johnson", 25))

	players, err := conn.ListGamePlayers(suite.ctx, gameId)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), players, 1)
	assert.True(suite.T(), players[0].Captain)
	assert.Equal(suite.T(), models.PositionGoalkeeper, players[0].Position)
	assert.Equal(suite.T(), "Sean Johnson", players[0].String())
}

func (suite *QueriesTestSuite) TestCreateGamePlayer() {
	conn := &GamePlayersDBConnection{DB: suite.db}
	gamePlayer := models.GamePlayer{PlayerId: uuid.New(), Position: models.PositionMidfielder, GameId: uuid.New(), TeamId: uuid.New()}

	suite.mock.ExpectQuery(`INSERT INTO game_players \(id, player_id, position, game_id, captain, team_id\)`).
		WithArgs(sqlmock.AnyArg(), gamePlayer.PlayerId, "M", gamePlayer.GameId, false, gamePlayer.TeamId).
		WillReturnRows(suite.stamps(suite.now, suite.now))

	require.NoError(suite.T(), conn.CreateGamePlayer(suite.ctx, &gamePlayer))
}

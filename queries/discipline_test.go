package queries

import (
	"AmHughesAbsalom/MLS_API.git/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookingColumns = []string{"id", "game_id", "minute", "player_id", "card_color", "reason", "created", "modified"}

func (suite *QueriesTestSuite) TestCreateSubstitution() {
	conn := &DisciplineDBConnection{DB: suite.db}
	sub := models.Substitution{OutPlayerId: uuid.New(), InPlayerId: uuid.New(), TeamId: uuid.New(), Minute: 63}

	suite.mock.ExpectQuery(`INSERT INTO substitutions \(id, out_player_id, in_player_id, team_id, minute\)`).
		WithArgs(sqlmock.AnyArg(), sub.OutPlayerId, sub.InPlayerId, sub.TeamId, 63).
		WillReturnRows(suite.stamps(suite.now, suite.now))

	require.NoError(suite.T(), conn.CreateSubstitution(suite.ctx, &sub))
	assert.NotEqual(suite.T(), uuid.Nil, sub.Id)
}

func (suite *QueriesTestSuite) TestCreateSubstitution_SamePlayer() {
	conn := &DisciplineDBConnection{DB: suite.db}
	player := uuid.New()
	sub := models.Substitution{OutPlayerId: player, InPlayerId: player, TeamId: uuid.New(), Minute: 63}

	assert.Error(suite.T(), conn.CreateSubstitution(suite.ctx, &sub))
}

func (suite *QueriesTestSuite) TestListSubstitutions_ThroughGamePlayers() {
	conn := &DisciplineDBConnection{DB: suite.db}
	gameId := uuid.New()
	columns := []string{"id", "out_player_id", "in_player_id", "team_id", "minute", "created", "modified"}

	suite.mock.ExpectQuery(`SELECT s\.\* FROM substitutions s JOIN game_players gp ON gp\.id = s\.out_player_id WHERE gp\.game_id = \$1`).
		WithArgs(gameId).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(uuid.NewString(), uuid.NewString(), uuid.NewString(), uuid.NewString(), 70, suite.now, suite.now))

	subs, err := conn.ListSubstitutions(suite.ctx, gameId)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), subs, 1)
	assert.Equal(suite.T(), 70, subs[0].Minute)
}

func (suite *QueriesTestSuite) TestCreateBooking() {
	conn := &DisciplineDBConnection{DB: suite.db}
	booking := models.Booking{GameId: uuid.New(), Minute: 30, PlayerId: uuid.New(), CardColor: models.CardYellow, Reason: "Unsporting behavior"}

	suite.mock.ExpectQuery(`INSERT INTO bookings \(id, game_id, minute, player_id, card_color, reason\)`).
		WithArgs(sqlmock.AnyArg(), booking.GameId, 30, booking.PlayerId, "yellow", "Unsporting behavior").
		WillReturnRows(suite.stamps(suite.now, suite.now))

	require.NoError(suite.T(), conn.CreateBooking(suite.ctx, &booking))
}

func (suite *QueriesTestSuite) TestCreateBooking_UnknownCard() {
	conn := &DisciplineDBConnection{DB: suite.db}
	booking := models.Booking{GameId: uuid.New(), PlayerId: uuid.New(), CardColor: "green"}

	assert.Error(suite.T(), conn.CreateBooking(suite.ctx, &booking))
}

func (suite *QueriesTestSuite) TestListBookings() {
	conn := &DisciplineDBConnection{DB: suite.db}
	gameId := uuid.New()

	suite.mock.ExpectQuery(`SELECT \* FROM bookings WHERE game_id = \$1 ORDER BY minute, created`).
		WithArgs(gameId).
		WillReturnRows(sqlmock.NewRows(bookingColumns).
			AddRow(uuid.NewString(), gameId.String(), 44, uuid.NewString(), "red", "Serious foul play", suite.now, suite.now))

	bookings, err := conn.ListBookings(suite.ctx, gameId)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), bookings, 1)
	assert.Equal(suite.T(), models.CardRed, bookings[0].CardColor)
	assert.Equal(suite.T(), "Red", bookings[0].CardColor.Label())
}

func (suite *QueriesTestSuite) TestDeleteBooking_NotFound() {
	conn := &DisciplineDBConnection{DB: suite.db}

	suite.mock.ExpectExec(`DELETE FROM bookings WHERE id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(suite.T(), conn.DeleteBooking(suite.ctx, uuid.New()), ErrNotFound)
}

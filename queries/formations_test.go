package queries

import (
	"AmHughesAbsalom/MLS_API.git/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *QueriesTestSuite) TestFormationString() {
	conn := &FormationsDBConnection{DB: suite.db}
	formationId := uuid.New()

	suite.mock.ExpectQuery(`SELECT COUNT\(fp\.id\) AS players FROM formation_lines fl LEFT JOIN formation_players fp ON fp\.line_id = fl\.id WHERE fl\.formation_id = \$1 GROUP BY fl\.id ORDER BY fl\.sort_order, fl\.created`).
		WithArgs(formationId).
		WillReturnRows(sqlmock.NewRows([]string{"players"}).AddRow(1).AddRow(4).AddRow(3).AddRow(3))

	formation, err := conn.FormationString(suite.ctx, formationId)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "4-3-3", formation)
}

func (suite *QueriesTestSuite) TestFormationString_GoalkeeperOnly() {
	conn := &FormationsDBConnection{DB: suite.db}

	suite.mock.ExpectQuery(`FROM formation_lines fl`).
		WillReturnRows(sqlmock.NewRows([]string{"players"}).AddRow(1))

	formation, err := conn.FormationString(suite.ctx, uuid.New())

	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), formation)
}

func (suite *QueriesTestSuite) TestFormationString_EmptyLineCounted() {
	conn := &FormationsDBConnection{DB: suite.db}

	suite.mock.ExpectQuery(`FROM formation_lines fl`).
		WillReturnRows(sqlmock.NewRows([]string{"players"}).AddRow(1).AddRow(4).AddRow(0).AddRow(6))

	formation, err := conn.FormationString(suite.ctx, uuid.New())

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "4-0-6", formation)
}

func (suite *QueriesTestSuite) TestCreateFormationLine() {
	conn := &FormationsDBConnection{DB: suite.db}
	line := models.FormationLine{FormationId: uuid.New(), SortOrder: 2}

	suite.mock.ExpectQuery(`INSERT INTO formation_lines \(id, formation_id, sort_order\)`).
		WithArgs(sqlmock.AnyArg(), line.FormationId, 2).
		WillReturnRows(suite.stamps(suite.now, suite.now))

	require.NoError(suite.T(), conn.CreateFormationLine(suite.ctx, &line))
	assert.NotEqual(suite.T(), uuid.Nil, line.Id)
}

func (suite *QueriesTestSuite) TestListFormationLines_BySortOrder() {
	conn := &FormationsDBConnection{DB: suite.db}
	formationId := uuid.New()
	columns := []string{"id", "formation_id", "sort_order", "created", "modified"}

	suite.mock.ExpectQuery(`SELECT \* FROM formation_lines WHERE formation_id = \$1 ORDER BY sort_order, created`).
		WithArgs(formationId).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(uuid.NewString(), formationId.String(), 0, suite.now, suite.now).
			AddRow(uuid.NewString(), formationId.String(), 1, suite.now, suite.now))

	lines, err := conn.ListFormationLines(suite.ctx, formationId)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), lines, 2)
	assert.Equal(suite.T(), 1, lines[1].SortOrder)
}

func (suite *QueriesTestSuite) TestAddFormationPlayer_MissingLine() {
	conn := &FormationsDBConnection{DB: suite.db}
	player := models.FormationPlayer{PlayerId: uuid.New()}

	assert.Error(suite.T(), conn.AddFormationPlayer(suite.ctx, &player))
}

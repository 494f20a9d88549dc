package dbconnection

import (
	"fmt"

	"AmHughesAbsalom/MLS_API.git/config"
	"AmHughesAbsalom/MLS_API.git/queries"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// DBConnection gathers every repository over one connection pool.
type DBConnection struct {
	*queries.TeamsDBConnection
	*queries.CompetitionsDBConnection
	*queries.PlayersDBConnection
	*queries.GamesDBConnection
	*queries.GamePlayersDBConnection
	*queries.StatSetsDBConnection
	*queries.FormationsDBConnection
	*queries.GoalsDBConnection
	*queries.DisciplineDBConnection
	*queries.StandingsDBConnection
}

func NewDBConnection(cfg *config.Config) (*DBConnection, *sqlx.DB, error) {
	db, connErr := sqlx.Open("postgres", cfg.DatabaseURL())
	if connErr != nil {
		return nil, &sqlx.DB{}, fmt.Errorf("failed to connect the database!...: %w", connErr)
	}

	if err := db.Ping(); err != nil {
		return nil, &sqlx.DB{}, fmt.Errorf("database connection failed!: %w", err)
	}

	return FromDB(db), db, nil
}

// FromDB wires the repositories to an already opened pool.
func FromDB(db *sqlx.DB) *DBConnection {
	return &DBConnection{
		TeamsDBConnection:        &queries.TeamsDBConnection{DB: db},
		CompetitionsDBConnection: &queries.CompetitionsDBConnection{DB: db},
		PlayersDBConnection:      &queries.PlayersDBConnection{DB: db},
		GamesDBConnection:        &queries.GamesDBConnection{DB: db},
		GamePlayersDBConnection:  &queries.GamePlayersDBConnection{DB: db},
		StatSetsDBConnection:     &queries.StatSetsDBConnection{DB: db},
		FormationsDBConnection:   &queries.FormationsDBConnection{DB: db},
		GoalsDBConnection:        &queries.GoalsDBConnection{DB: db},
		DisciplineDBConnection:   &queries.DisciplineDBConnection{DB: db},
		StandingsDBConnection:    &queries.StandingsDBConnection{DB: db},
	}
}

package ingest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"AmHughesAbsalom/MLS_API.git/models"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/jmoiron/sqlx"
	jsoniter "github.com/json-iterator/go"
)

var ErrGameExists = errors.New("game already exists")

// Importer files scraped games under one competition.
type Importer struct {
	DB          *sqlx.DB
	Competition models.Competition
	// Force replaces a game that was imported before instead of skipping it.
	Force bool
}

type playerKey struct {
	teamId    uuid.UUID
	firstName string
	lastName  string
}

// gameImport carries the state of a single Import call.
type gameImport struct {
	tx      *sqlx.Tx
	stats   *GameStatSet
	game    models.Game
	teams   map[string]uuid.UUID
	players map[playerKey]uuid.UUID
}

// Import stores stats as one game in a single transaction. Nothing is written
// when any part of the game fails.
func (im *Importer) Import(ctx context.Context, statLink string, stats *GameStatSet) (models.Game, error) {
	tx, errTx := im.DB.BeginTxx(ctx, nil)
	if errTx != nil {
		log.Println("error creating import tx: ", errTx.Error())
		return models.Game{}, errTx
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if im.Force {
		if _, err := tx.ExecContext(ctx, `DELETE FROM games WHERE stat_link = $1`, statLink); err != nil {
			log.Println("failed to delete previous import: ", err.Error())
			return models.Game{}, err
		}
	} else {
		var exists bool
		err := tx.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM games WHERE stat_link = $1)`, statLink)
		if err != nil {
			return models.Game{}, err
		}
		if exists {
			return models.Game{}, fmt.Errorf("%s: %w", statLink, ErrGameExists)
		}
	}

	g := &gameImport{
		tx:      tx,
		stats:   stats,
		teams:   map[string]uuid.UUID{},
		players: map[playerKey]uuid.UUID{},
	}
	steps := []func(context.Context) error{
		func(ctx context.Context) error { return g.competition(ctx, im.Competition) },
		g.createTeams,
		func(ctx context.Context) error { return g.createGame(ctx, statLink) },
		g.createPlayers,
		g.createGoals,
		g.createBookings,
		g.createStatSets,
	}
	for _, step := range steps {
		if err := step(ctx); err != nil {
			return models.Game{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Game{}, err
	}
	return g.game, nil
}

func (g *gameImport) competition(ctx context.Context, competition models.Competition) error {
	err := g.tx.GetContext(ctx, &g.game.CompetitionId, `SELECT id FROM competitions WHERE slug = $1`, competition.Slug)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	if err := models.Validate(competition); err != nil {
		return err
	}
	g.game.CompetitionId = uuid.New()
	query :=
		`
		INSERT INTO competitions (id, name, slug, year)
		VALUES ($1, $2, $3, $4)
		`
	_, err = g.tx.ExecContext(ctx, query, g.game.CompetitionId, competition.Name, competition.Slug, competition.Year)
	if err != nil {
		log.Println("failed to insert competition: ", err.Error())
	}
	return err
}

func (g *gameImport) team(ctx context.Context, name string) (uuid.UUID, error) {
	team := models.Team{Name: name, Slug: slug.Make(name)}
	err := g.tx.GetContext(ctx, &team.Id, `SELECT id FROM teams WHERE slug = $1`, team.Slug)
	if err == nil {
		g.teams[name] = team.Id
		return team.Id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, err
	}
	if err := models.Validate(team); err != nil {
		return uuid.Nil, err
	}
	team.Id = uuid.New()
	_, err = g.tx.ExecContext(ctx, `INSERT INTO teams (id, name, slug) VALUES ($1, $2, $3)`, team.Id, team.Name, team.Slug)
	if err != nil {
		log.Println("failed to insert team: ", err.Error())
		return uuid.Nil, err
	}
	g.teams[name] = team.Id
	return team.Id, nil
}

func (g *gameImport) createTeams(ctx context.Context) error {
	var err error
	if g.game.HomeTeamId, err = g.team(ctx, g.stats.HomeTeam.Name); err != nil {
		return err
	}
	g.game.AwayTeamId, err = g.team(ctx, g.stats.AwayTeam.Name)
	return err
}

func (g *gameImport) createGame(ctx context.Context, statLink string) error {
	g.game.Id = uuid.New()
	g.game.StatLink = statLink
	g.game.StartTime = g.stats.GameDate
	if err := models.Validate(g.game); err != nil {
		return err
	}
	query :=
		`
		INSERT INTO games (id, home_team_id, away_team_id, start_time, competition_id, stat_link)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created, modified
		`
	err := g.tx.GetContext(ctx, &g.game.Timestamps, query,
		g.game.Id, g.game.HomeTeamId, g.game.AwayTeamId, g.game.StartTime, g.game.CompetitionId, g.game.StatLink)
	if err != nil {
		log.Println("failed to insert game: ", err.Error())
	}
	return err
}

func (g *gameImport) createPlayers(ctx context.Context) error {
	lineups := []struct {
		teamId uuid.UUID
		rows   []PlayerRow
	}{
		{g.game.HomeTeamId, g.stats.HomeTeam.Lineup()},
		{g.game.AwayTeamId, g.stats.AwayTeam.Lineup()},
	}
	for _, lineup := range lineups {
		for _, row := range lineup.rows {
			if err := g.createPlayer(ctx, lineup.teamId, row); err != nil {
				return fmt.Errorf("player %q: %w", row.Player, err)
			}
		}
	}
	return nil
}

// createPlayer finds or creates the player by name, team and shirt number and
// records the appearance in this game.
func (g *gameImport) createPlayer(ctx context.Context, teamId uuid.UUID, row PlayerRow) error {
	firstName, lastName := ParseName(row.Player)
	key := playerKey{teamId, firstName, lastName}
	if _, ok := g.players[key]; ok {
		return nil
	}
	shirt, err := number(row.Number)
	if err != nil {
		return err
	}
	position := models.ParsePosition(row.Position)

	player := models.Player{FirstName: firstName, LastName: lastName, Number: shirt, TeamId: teamId, Position: position}
	query :=
		`
		SELECT id FROM players
		WHERE first_name = $1 AND last_name = $2 AND team_id = $3 AND number = $4
		`
	err = g.tx.GetContext(ctx, &player.Id, query, firstName, lastName, teamId, shirt)
	if errors.Is(err, sql.ErrNoRows) {
		if err := models.Validate(player); err != nil {
			return err
		}
		player.Id = uuid.New()
		_, err = g.tx.ExecContext(ctx,
			`INSERT INTO players (id, first_name, last_name, number, team_id, position) VALUES ($1, $2, $3, $4, $5, $6)`,
			player.Id, player.FirstName, player.LastName, player.Number, player.TeamId, player.Position)
	}
	if err != nil {
		return err
	}

	gamePlayer := models.GamePlayer{Id: uuid.New(), PlayerId: player.Id, Position: position, GameId: g.game.Id, TeamId: teamId}
	_, err = g.tx.ExecContext(ctx,
		`INSERT INTO game_players (id, player_id, position, game_id, captain, team_id) VALUES ($1, $2, $3, $4, $5, $6)`,
		gamePlayer.Id, gamePlayer.PlayerId, gamePlayer.Position, gamePlayer.GameId, gamePlayer.Captain, gamePlayer.TeamId)
	if err != nil {
		return err
	}
	g.players[key] = gamePlayer.Id
	return nil
}

// gamePlayer resolves a player named in an event row to their appearance.
func (g *gameImport) gamePlayer(club, name string) (uuid.UUID, error) {
	teamName, err := g.stats.ClubName(club)
	if err != nil {
		return uuid.Nil, err
	}
	teamId, ok := g.teams[teamName]
	if !ok {
		return uuid.Nil, fmt.Errorf("club %q did not play in this game", club)
	}
	firstName, lastName := ParseName(name)
	id, ok := g.players[playerKey{teamId, firstName, lastName}]
	if !ok {
		return uuid.Nil, fmt.Errorf("%s is not in the %s lineup", strings.TrimSpace(name), teamName)
	}
	return id, nil
}

func (g *gameImport) createGoals(ctx context.Context) error {
	query :=
		`
		INSERT INTO goals (id, game_id, minute, player_id, penalty, own_goal)
		VALUES ($1, $2, $3, $4, $5, $6)
		`
	for _, event := range g.stats.Goals {
		minute, err := ParseMinute(event.Time)
		if err != nil {
			return err
		}
		scorer, err := g.gamePlayer(event.Club, scorerName(event.Player))
		if err != nil {
			return err
		}
		goal := models.Goal{Id: uuid.New(), GameId: g.game.Id, Minute: minute, PlayerId: scorer, OwnGoal: IsOwnGoal(event.Player)}
		if err := models.Validate(goal); err != nil {
			return err
		}
		_, err = g.tx.ExecContext(ctx, query, goal.Id, goal.GameId, goal.Minute, goal.PlayerId, goal.Penalty, goal.OwnGoal)
		if err != nil {
			log.Println("failed to insert goal: ", err.Error())
			return err
		}
		for _, name := range ParseAssists(event.AssistedBy) {
			assist, err := g.gamePlayer(event.Club, name)
			if err != nil {
				return err
			}
			_, err = g.tx.ExecContext(ctx,
				`INSERT INTO goal_assisted_by (id, goal_id, game_player_id) VALUES ($1, $2, $3) ON CONFLICT (goal_id, game_player_id) DO NOTHING`,
				uuid.New(), goal.Id, assist)
			if err != nil {
				log.Println("failed to insert assist: ", err.Error())
				return err
			}
		}
	}
	return nil
}

func (g *gameImport) createBookings(ctx context.Context) error {
	query :=
		`
		INSERT INTO bookings (id, game_id, minute, player_id, card_color, reason)
		VALUES ($1, $2, $3, $4, $5, $6)
		`
	for _, event := range g.stats.DisciplinaryEvents {
		minute, err := ParseMinute(event.Time)
		if err != nil {
			return err
		}
		player, err := g.gamePlayer(event.Club, event.Player)
		if err != nil {
			return err
		}
		booking := models.Booking{
			Id:        uuid.New(),
			GameId:    g.game.Id,
			Minute:    minute,
			PlayerId:  player,
			CardColor: models.CardColor(strings.ToLower(strings.TrimSpace(event.CardColor))),
			Reason:    event.Reason,
		}
		if err := models.Validate(booking); err != nil {
			return err
		}
		_, err = g.tx.ExecContext(ctx, query,
			booking.Id, booking.GameId, booking.Minute, booking.PlayerId, booking.CardColor, booking.Reason)
		if err != nil {
			log.Println("failed to insert booking: ", err.Error())
			return err
		}
	}
	return nil
}

func (g *gameImport) createStatSets(ctx context.Context) error {
	query :=
		`
		INSERT INTO stat_sets (
		id, attempts_on_goal, shots_on_target, shots_off_target, blocked_shots,
		corner_kicks, fouls, crosses, offsides, first_yellows, second_yellows,
		red_cards, duels_won, duels_won_percentage, total_passes, pass_percentage,
		possession, team_id, game_id)
		VALUES (
		:id, :attempts_on_goal, :shots_on_target, :shots_off_target, :blocked_shots,
		:corner_kicks, :fouls, :crosses, :offsides, :first_yellows, :second_yellows,
		:red_cards, :duels_won, :duels_won_percentage, :total_passes, :pass_percentage,
		:possession, :team_id, :game_id)
		`
	sides := []struct {
		teamId uuid.UUID
		stats  TeamStats
	}{
		{g.game.HomeTeamId, g.stats.HomeTeam},
		{g.game.AwayTeamId, g.stats.AwayTeam},
	}
	for _, side := range sides {
		statSet, err := teamStatSet(side.stats.Stats)
		if err != nil {
			return fmt.Errorf("%s stats: %w", side.stats.Name, err)
		}
		statSet.Id = uuid.New()
		statSet.TeamId = side.teamId
		statSet.GameId = g.game.Id
		if err := models.Validate(statSet); err != nil {
			return err
		}
		if _, err := g.tx.NamedExecContext(ctx, query, statSet); err != nil {
			log.Println("failed to insert stat set: ", err.Error())
			return err
		}
	}
	return nil
}

// teamStatSet maps report stat labels onto a StatSet.
func teamStatSet(stats map[string]jsoniter.Any) (models.StatSet, error) {
	s := models.StatSet{}
	ints := []struct {
		key  string
		dest *int
	}{
		{"Attempts on Goal", &s.AttemptsOnGoal},
		{"Shots on Target", &s.ShotsOnTarget},
		{"Shots off Target", &s.ShotsOffTarget},
		{"Blocked Shots", &s.BlockedShots},
		{"Corner Kicks", &s.CornerKicks},
		{"Fouls", &s.Fouls},
		{"Open Play Crosses", &s.Crosses},
		{"Offsides", &s.Offsides},
		{"First Yellow Cards", &s.FirstYellows},
		{"Second Yellow Cards", &s.SecondYellows},
		{"Red Cards", &s.RedCards},
		{"Duels Won", &s.DuelsWon},
		{"Duels Won %", &s.DuelsWonPercentage},
		{"Total Pass", &s.TotalPasses},
		{"Passing Accuracy %", &s.PassPercentage},
	}
	for _, f := range ints {
		n, err := intStat(stats, f.key)
		if err != nil {
			return models.StatSet{}, err
		}
		*f.dest = n
	}
	possession, err := floatStat(stats, "Possession")
	if err != nil {
		return models.StatSet{}, err
	}
	s.Possession = possession
	return s, nil
}

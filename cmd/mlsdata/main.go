package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"AmHughesAbsalom/MLS_API.git/config"
	dbconnection "AmHughesAbsalom/MLS_API.git/db_connection"
	"AmHughesAbsalom/MLS_API.git/ingest"
	"AmHughesAbsalom/MLS_API.git/migrations"
	"AmHughesAbsalom/MLS_API.git/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const usage = `usage: mlsdata <command> [arguments]

commands:
  migrate up|down|version     apply all steps, revert one step or print the version
  migrate goto <version>      migrate up or down to version
  migrate force <version>     mark version as applied without running it
  check                       compare the models and the live schema with the snapshots
  import [-force] <file>...   import scraped game stats
  score <game-id>             print the score of a game
  formation <formation-id>    print a formation such as 4-4-2
  standings [competition]     print the table of a competition by slug`

var errUsage = errors.New(usage)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "migrate":
		return migrate(args[1:])
	case "check":
		return check(ctx)
	case "import":
		return importGames(ctx, args[1:])
	case "score":
		return score(ctx, args[1:])
	case "formation":
		return formation(ctx, args[1:])
	case "standings":
		return standings(ctx, args[1:])
	}
	return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
}

func versionArg(args []string) (int, error) {
	if len(args) != 2 {
		return 0, errUsage
	}
	version, err := strconv.Atoi(args[1])
	if err != nil || version < 0 {
		return 0, fmt.Errorf("invalid version %q: %w", args[1], errUsage)
	}
	return version, nil
}

func migrate(args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	var version int
	switch args[0] {
	case "up", "down", "version":
		if len(args) != 1 {
			return errUsage
		}
	case "goto", "force":
		v, err := versionArg(args)
		if err != nil {
			return err
		}
		version = v
	default:
		return fmt.Errorf("unknown migrate command %q: %w", args[0], errUsage)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	m, err := dbconnection.NewMigrator(cfg)
	if err != nil {
		return err
	}
	defer m.Close()

	switch args[0] {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	case "goto":
		err = m.Goto(uint(version))
	case "force":
		err = m.Force(version)
	}
	if err != nil {
		return err
	}
	current, dirty, err := m.Version()
	if err != nil {
		return err
	}
	log.Printf("schema at version %d of %d (dirty: %t)", current, migrations.Latest(), dirty)
	return nil
}

func check(ctx context.Context) error {
	drift, err := migrations.CheckModels()
	if err != nil {
		return err
	}
	for _, d := range drift {
		log.Println("models:", d)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	m, err := dbconnection.NewMigrator(cfg)
	if err != nil {
		return err
	}
	defer m.Close()
	version, dirty, err := m.Version()
	if err != nil {
		return err
	}
	if version == 0 {
		return errors.New("no migrations applied")
	}
	if dirty {
		return fmt.Errorf("schema version %d is dirty", version)
	}

	_, db, err := dbconnection.NewDBConnection(cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	insp, err := migrations.NewGormInspector(db.DB)
	if err != nil {
		return err
	}
	live, err := migrations.CheckLive(ctx, insp, version)
	if err != nil {
		return err
	}
	for _, d := range live {
		log.Println("database:", d)
	}

	if n := len(drift) + len(live); n > 0 {
		return fmt.Errorf("%d schema differences at version %d", n, version)
	}
	log.Printf("schema matches version %d", version)
	return nil
}

func importGames(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	force := fs.Bool("force", false, "overwrite games that were imported before")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() == 0 {
		return errUsage
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	_, db, err := dbconnection.NewDBConnection(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	importer := &ingest.Importer{
		DB: db,
		Competition: models.Competition{
			Name: cfg.Competition.Name,
			Slug: cfg.Competition.Slug,
			Year: cfg.Competition.Year,
		},
		Force: *force,
	}

	failed := ingest.ImportFiles(ctx, importer, fs.Args())
	if len(failed) > 0 {
		return fmt.Errorf("failed to import %d of %d files: %v", len(failed), fs.NArg(), failed)
	}
	return nil
}

func idArg(args []string) (uuid.UUID, error) {
	if len(args) != 1 {
		return uuid.Nil, errUsage
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id %q: %w", args[0], err)
	}
	return id, nil
}

func score(ctx context.Context, args []string) error {
	gameId, err := idArg(args)
	if err != nil {
		return err
	}
	conn, db, err := connect()
	if err != nil {
		return err
	}
	defer db.Close()

	game, err := conn.GetGameWithScore(ctx, gameId)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d - %d\n", game, game.HomeScore, game.AwayScore)
	return nil
}

func formation(ctx context.Context, args []string) error {
	formationId, err := idArg(args)
	if err != nil {
		return err
	}
	conn, db, err := connect()
	if err != nil {
		return err
	}
	defer db.Close()

	f, err := conn.FormationString(ctx, formationId)
	if err != nil {
		return err
	}
	fmt.Println(f)
	return nil
}

func standings(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return errUsage
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	competitionSlug := cfg.Competition.Slug
	if len(args) == 1 {
		competitionSlug = args[0]
	}
	conn, db, err := dbconnection.NewDBConnection(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	competition, err := conn.GetCompetitionBySlug(ctx, competitionSlug)
	if err != nil {
		return err
	}
	table, err := conn.ListStandings(ctx, competition.Id)
	if err != nil {
		return err
	}
	fmt.Println(competition)
	fmt.Printf("%3s  %-28s %3s %3s %3s %3s %4s %4s %4s %4s\n", "#", "Team", "GP", "W", "D", "L", "GF", "GA", "GD", "PTS")
	for _, row := range table {
		fmt.Printf("%3d  %-28s %3d %3d %3d %3d %4d %4d %4d %4d\n",
			row.Position, row.TeamName, row.Gp, row.W, row.D, row.L, row.Gf, row.Ga, row.Gd, row.Pts)
	}
	return nil
}

func connect() (*dbconnection.DBConnection, *sqlx.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	return dbconnection.NewDBConnection(cfg)
}

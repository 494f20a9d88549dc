package dbconnection

import (
	"errors"
	"fmt"
	"log"

	"AmHughesAbsalom/MLS_API.git/config"
	"AmHughesAbsalom/MLS_API.git/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Migrator applies the schema steps with golang-migrate.
type Migrator struct {
	m *migrate.Migrate
}

type migrateLogger struct {
	verbose bool
}

func (l migrateLogger) Printf(format string, v ...interface{}) {
	log.Printf("migrate: "+format, v...)
}

func (l migrateLogger) Verbose() bool {
	return l.verbose
}

// NewMigrator reads steps from cfg.MigrationsPath when it is set and from the
// files embedded in the binary otherwise.
func NewMigrator(cfg *config.Config) (*Migrator, error) {
	return newMigrator(cfg.MigrationsPath, cfg.DatabaseURL())
}

func newMigrator(migrationsPath, databaseURL string) (*Migrator, error) {
	var (
		m   *migrate.Migrate
		err error
	)
	if migrationsPath != "" {
		m, err = migrate.New("file://"+migrationsPath, databaseURL)
	} else {
		src, errSrc := migrations.Source()
		if errSrc != nil {
			return nil, fmt.Errorf("failed to load embedded migrations: %w", errSrc)
		}
		m, err = migrate.NewWithSourceInstance("iofs", src, databaseURL)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to start migrations: %w", err)
	}
	m.Log = migrateLogger{}
	return &Migrator{m: m}, nil
}

func noChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		log.Println("migrate: no change")
		return nil
	}
	return err
}

// Up applies every pending step.
func (mg *Migrator) Up() error {
	return noChange(mg.m.Up())
}

// Down reverts the most recent step only.
func (mg *Migrator) Down() error {
	return noChange(mg.m.Steps(-1))
}

// Goto migrates up or down to the given version. Version 0 reverts every
// step.
func (mg *Migrator) Goto(version uint) error {
	if version > migrations.Latest() {
		return fmt.Errorf("unknown migration version %d, latest is %d", version, migrations.Latest())
	}
	if version == 0 {
		return noChange(mg.m.Down())
	}
	return noChange(mg.m.Migrate(version))
}

// Version reports the applied version, zero when nothing has been applied yet.
func (mg *Migrator) Version() (uint, bool, error) {
	version, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

// Force records version as applied without running anything, clearing the
// dirty flag left by a failed step.
func (mg *Migrator) Force(version int) error {
	return mg.m.Force(version)
}

func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()
	return errors.Join(srcErr, dbErr)
}

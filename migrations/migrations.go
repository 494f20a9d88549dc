// Package migrations holds the ordered schema history of the stats database:
// the reversible SQL steps applied by golang-migrate, a snapshot of the
// expected schema after every step, and the checks that compare the models and
// a live database against those snapshots.
package migrations

import (
	"embed"
	"io/fs"

	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/*.sql
var files embed.FS

const dir = "sql"

// Source returns the embedded steps as a golang-migrate source driver.
func Source() (source.Driver, error) {
	return iofs.New(files, dir)
}

// Files exposes the embedded step files, rooted at the step directory.
func Files() fs.FS {
	sub, err := fs.Sub(files, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

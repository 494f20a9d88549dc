package migrations

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"AmHughesAbsalom/MLS_API.git/models"

	"gorm.io/gorm/schema"
)

// migrate's own bookkeeping table lives next to ours.
const versionTable = "schema_migrations"

// ColumnInfo is a column as found in a live database.
type ColumnInfo struct {
	Name     string
	Type     string
	Length   int
	Nullable bool
}

// Inspector reads the shape of a live database.
type Inspector interface {
	Tables(ctx context.Context) ([]string, error)
	Columns(ctx context.Context, table string) ([]ColumnInfo, error)
	// ForeignKeys maps each foreign key column of table to the table it references.
	ForeignKeys(ctx context.Context, table string) (map[string]string, error)
}

// CheckLive compares a live database against the snapshot of version and
// returns one line per difference. An empty result means no drift.
func CheckLive(ctx context.Context, insp Inspector, version uint) ([]string, error) {
	want, err := Snapshot(version)
	if err != nil {
		return nil, err
	}
	tables, err := insp.Tables(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}

	var drift []string
	for _, name := range tables {
		if _, ok := want.Tables[name]; !ok && name != versionTable {
			drift = append(drift, fmt.Sprintf("unexpected table %s", name))
		}
	}
	for _, name := range want.TableNames() {
		if !slices.Contains(tables, name) {
			drift = append(drift, fmt.Sprintf("missing table %s", name))
			continue
		}
		tableDrift, err := checkTable(ctx, insp, want.Tables[name])
		if err != nil {
			return nil, err
		}
		drift = append(drift, tableDrift...)
	}
	return drift, nil
}

func checkTable(ctx context.Context, insp Inspector, want Table) ([]string, error) {
	columns, err := insp.Columns(ctx, want.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", want.Name, err)
	}
	fks, err := insp.ForeignKeys(ctx, want.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to read foreign keys of %s: %w", want.Name, err)
	}

	var drift []string
	live := make(map[string]ColumnInfo, len(columns))
	for _, c := range columns {
		live[c.Name] = c
		if _, ok := want.Column(c.Name); !ok {
			drift = append(drift, fmt.Sprintf("%s: unexpected column %s", want.Name, c.Name))
		}
	}
	for _, c := range want.Columns {
		got, ok := live[c.Name]
		if !ok {
			drift = append(drift, fmt.Sprintf("%s: missing column %s", want.Name, c.Name))
			continue
		}
		if got.Type != c.Type {
			drift = append(drift, fmt.Sprintf("%s.%s: type %s, want %s", want.Name, c.Name, got.Type, c.Type))
		}
		if c.Length != 0 && got.Length != c.Length {
			drift = append(drift, fmt.Sprintf("%s.%s: length %d, want %d", want.Name, c.Name, got.Length, c.Length))
		}
		if got.Nullable != c.Nullable {
			drift = append(drift, fmt.Sprintf("%s.%s: nullable %t, want %t", want.Name, c.Name, got.Nullable, c.Nullable))
		}
		if target := fks[c.Name]; target != c.References {
			drift = append(drift, fmt.Sprintf("%s.%s: references %q, want %q", want.Name, c.Name, target, c.References))
		}
	}
	return drift, nil
}

// CheckModels compares the columns of every model struct, as gorm's naming
// strategy sees them, with the latest snapshot.
func CheckModels() ([]string, error) {
	want, err := Snapshot(Latest())
	if err != nil {
		return nil, err
	}
	cache := &sync.Map{}
	seen := make(map[string]bool)

	var drift []string
	for _, model := range models.Tables() {
		parsed, err := schema.Parse(model, cache, schema.NamingStrategy{})
		if err != nil {
			return nil, fmt.Errorf("failed to parse model %T: %w", model, err)
		}
		seen[parsed.Table] = true
		table, ok := want.Tables[parsed.Table]
		if !ok {
			drift = append(drift, fmt.Sprintf("model %s has no table in version %d", parsed.Name, want.Version))
			continue
		}
		for _, name := range parsed.DBNames {
			if _, ok := table.Column(name); !ok {
				drift = append(drift, fmt.Sprintf("model %s: column %s not in table %s", parsed.Name, name, table.Name))
			}
		}
		for _, c := range table.Columns {
			if !slices.Contains(parsed.DBNames, c.Name) {
				drift = append(drift, fmt.Sprintf("model %s: no field for column %s.%s", parsed.Name, table.Name, c.Name))
			}
		}
	}
	for _, name := range want.TableNames() {
		if !seen[name] {
			drift = append(drift, fmt.Sprintf("table %s has no model", name))
		}
	}
	return drift, nil
}

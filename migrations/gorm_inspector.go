package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormInspector introspects a live postgres database through gorm's migrator.
type GormInspector struct {
	db *gorm.DB
}

func NewGormInspector(conn *sql.DB) (*GormInspector, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open inspector: %w", err)
	}
	return &GormInspector{db: db}, nil
}

func (g *GormInspector) Tables(ctx context.Context) ([]string, error) {
	return g.db.WithContext(ctx).Migrator().GetTables()
}

func (g *GormInspector) Columns(ctx context.Context, table string) ([]ColumnInfo, error) {
	types, err := g.db.WithContext(ctx).Migrator().ColumnTypes(table)
	if err != nil {
		return nil, err
	}
	columns := make([]ColumnInfo, 0, len(types))
	for _, ct := range types {
		info := ColumnInfo{Name: ct.Name(), Type: ct.DatabaseTypeName()}
		if length, ok := ct.Length(); ok {
			info.Length = int(length)
		}
		if nullable, ok := ct.Nullable(); ok {
			info.Nullable = nullable
		}
		columns = append(columns, info)
	}
	return columns, nil
}

type foreignKey struct {
	ColumnName   string
	ForeignTable string
}

func (g *GormInspector) ForeignKeys(ctx context.Context, table string) (map[string]string, error) {
	var rows []foreignKey
	query :=
		`
		SELECT kcu.column_name, ccu.table_name AS foreign_table
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu
			ON kcu.constraint_name = tc.constraint_name AND kcu.table_schema = tc.table_schema
		JOIN information_schema.constraint_column_usage ccu
			ON ccu.constraint_name = tc.constraint_name AND ccu.table_schema = tc.table_schema
		WHERE tc.constraint_type = 'FOREIGN KEY'
		AND tc.table_schema = CURRENT_SCHEMA()
		AND tc.table_name = ?
		`
	if err := g.db.WithContext(ctx).Raw(query, table).Scan(&rows).Error; err != nil {
		return nil, err
	}
	fks := make(map[string]string, len(rows))
	for _, r := range rows {
		fks[r.ColumnName] = r.ForeignTable
	}
	return fks, nil
}

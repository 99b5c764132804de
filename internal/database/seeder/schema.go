package seeder

import (
	"context"
	"fmt"
	"sort"

	"laborlink/internal/database"
)

// VerifySchema checks that every listed column exists before seeding into
// postgres, so a missed migration fails fast with a readable error.
func VerifySchema(ctx context.Context, db database.DB, tables map[string][]string) error {
	if db == nil {
		return database.ErrNilDB
	}

	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, table := range names {
		if err := ensureTableColumns(ctx, db, table, tables[table]...); err != nil {
			return err
		}
	}
	return nil
}

func ensureTableColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	if table == "" {
		return fmt.Errorf("empty table")
	}

	rows, err := db.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema='public' AND table_name=$1`,
		table,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		existing[c] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, col := range columns {
		if _, ok := existing[col]; !ok {
			return fmt.Errorf("schema mismatch: missing column %s.%s", table, col)
		}
	}
	return nil
}

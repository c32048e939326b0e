package source

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// ReadSQLite runs query, or selects every row of table, against a database
// opened read-only. With neither set the database must hold exactly one
// table.
func ReadSQLite(ctx context.Context, path, table, query string) (Table, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return Table{}, fmt.Errorf("open sqlite db: %w", err)
	}
	defer db.Close()

	query = strings.TrimSpace(query)
	if query == "" {
		if table == "" {
			table, err = soleTable(ctx, db)
			if err != nil {
				return Table{}, err
			}
		}
		query = "SELECT * FROM " + quoteIdent(table)
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return Table{}, fmt.Errorf("query sqlite db: %w", err)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return Table{}, fmt.Errorf("read columns: %w", err)
	}

	var records [][]any
	for rows.Next() {
		cells := make([]any, len(header))
		ptrs := make([]any, len(header))
		for i := range cells {
			ptrs[i] = &cells[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return Table{}, fmt.Errorf("scan row %d: %w", len(records)+1, err)
		}
		for i, c := range cells {
			if b, ok := c.([]byte); ok {
				cells[i] = string(b)
			}
		}
		records = append(records, cells)
	}
	if err := rows.Err(); err != nil {
		return Table{}, fmt.Errorf("iterate rows: %w", err)
	}
	return newTable(header, records)
}

func soleTable(ctx context.Context, db *sql.DB) (string, error) {
	rows, err := db.QueryContext(ctx, `SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	if err != nil {
		return "", fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return "", fmt.Errorf("list tables: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("list tables: %w", err)
	}
	switch len(names) {
	case 0:
		return "", fmt.Errorf("database has no tables: %w", ErrNoColumns)
	case 1:
		return names[0], nil
	default:
		return "", fmt.Errorf("database has %d tables (%s); pick one with --table", len(names), strings.Join(names, ", "))
	}
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

package reader

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/espenotterstad/gridview/internal/dataframe"
)

// ReadSQLite opens the SQLite file at path and returns one NamedFrame per
// user table (sqlite_ prefixed system tables excluded). Grounded in the
// original's reader/sqlite.rs, which enumerates sqlite_master then reads
// each table's PRAGMA table_info for its column types.
func ReadSQLite(path string, opts Options) ([]NamedFrame, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("reader: open sqlite %s: %w", path, err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%'`)
	if err != nil {
		return nil, fmt.Errorf("reader: list sqlite tables: %w", err)
	}
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return nil, err
		}
		names = append(names, name)
	}
	rows.Close()

	frames := make([]NamedFrame, 0, len(names))
	for _, name := range names {
		df, err := sqliteTableFrame(db, name, opts)
		if err != nil {
			return nil, err
		}
		frames = append(frames, NamedFrame{Name: name, DataFrame: df})
	}
	return frames, nil
}

func sqliteTableFrame(db *sql.DB, table string, opts Options) (dataframe.DataFrame, error) {
	rows, err := db.Query(fmt.Sprintf(`SELECT * FROM "%s"`, table))
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("reader: read sqlite table %s: %w", table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	var text [][]string
	for rows.Next() {
		raw := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return dataframe.DataFrame{}, err
		}
		row := make([]string, len(cols))
		for i, v := range raw {
			row[i] = sqliteCellString(v)
		}
		text = append(text, row)
	}
	return frameFromRows(cols, text, opts.Infer), nil
}

func sqliteCellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(t)
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

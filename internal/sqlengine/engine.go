// Package sqlengine implements C3: execution of SQL text against the
// catalog's registered tables plus an optional anonymous "_" table, via the
// in-memory SimonWaldherr/tinySQL driver exposed through database/sql.
package sqlengine

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	// Registers the "tinysql" driver used below via sql.Open.
	_ "github.com/SimonWaldherr/tinySQL"

	"github.com/espenotterstad/gridview/internal/dataframe"
)

// Error wraps any syntactic, semantic, or execution failure the engine
// surfaces, per spec §4.3/§7 (SqlError).
type Error struct {
	Query string
	Err   error
}

func (e *Error) Error() string { return fmt.Sprintf("sql: %s: %v", e.Query, e.Err) }
func (e *Error) Unwrap() error { return e.Err }

// Engine is the process-wide SQL executor. All mutations (register/execute)
// serialize through mu, matching spec §5's "process-wide singleton behind a
// lock."
type Engine struct {
	mu sync.Mutex
	db *sql.DB
}

// New opens a fresh in-memory tinySQL database.
func New() (*Engine, error) {
	db, err := sql.Open("tinysql", "mem://?tenant=gridview")
	if err != nil {
		return nil, fmt.Errorf("sqlengine: open: %w", err)
	}
	return &Engine{db: db}, nil
}

// Close releases the underlying database handle.
func (e *Engine) Close() error { return e.db.Close() }

// Register creates or replaces a table named name in the engine's backing
// store from df. Called by cmd/gridview at startup for each table it
// registers in the catalog; later catalog changes are not mirrored here.
func (e *Engine) Register(name string, df dataframe.DataFrame) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registerLocked(name, df)
}

func (e *Engine) registerLocked(name string, df dataframe.DataFrame) error {
	if _, err := e.db.Exec(fmt.Sprintf(`DROP TABLE IF EXISTS %s`, quoteIdent(name))); err != nil {
		return fmt.Errorf("sqlengine: drop %s: %w", name, err)
	}
	if err := createAndPopulate(e.db, name, df); err != nil {
		return fmt.Errorf("sqlengine: register %s: %w", name, err)
	}
	return nil
}

// Unregister drops a table from the backing store. No-op if absent.
func (e *Engine) Unregister(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, _ = e.db.Exec(fmt.Sprintf(`DROP TABLE IF EXISTS %s`, quoteIdent(name)))
}

// Execute runs query against the engine. If anon is non-nil, it is bound to
// the reserved table "_" for the duration of this call only; the binding is
// released before Execute returns, so a later call referencing "_" without
// supplying anon never observes a previous call's data (spec invariant 6).
func (e *Engine) Execute(query string, anon *dataframe.DataFrame) (dataframe.DataFrame, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if anon != nil {
		if err := e.registerLocked("_", *anon); err != nil {
			return dataframe.DataFrame{}, &Error{Query: query, Err: err}
		}
		defer func() {
			_, _ = e.db.Exec(fmt.Sprintf(`DROP TABLE IF EXISTS %s`, quoteIdent("_")))
		}()
	}

	rows, err := e.db.Query(query)
	if err != nil {
		return dataframe.DataFrame{}, &Error{Query: query, Err: err}
	}
	defer rows.Close()

	df, err := materialize(rows)
	if err != nil {
		return dataframe.DataFrame{}, &Error{Query: query, Err: err}
	}
	return df, nil
}

func quoteIdent(name string) string {
	return `"` + name + `"`
}

// createAndPopulate issues a CREATE TABLE matching df's schema followed by
// one INSERT per row.
func createAndPopulate(db *sql.DB, name string, df dataframe.DataFrame) error {
	cols := df.Columns()
	colDefs := make([]string, len(cols))
	for i, c := range cols {
		colDefs[i] = fmt.Sprintf("%s %s", quoteIdent(c.Name), sqlType(c.Kind))
	}
	ddl := fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(name), joinComma(colDefs))
	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	if df.Height() == 0 || len(cols) == 0 {
		return nil
	}

	placeholders := make([]string, len(cols))
	for i := range placeholders {
		placeholders[i] = "?"
	}
	insert := fmt.Sprintf("INSERT INTO %s VALUES (%s)", quoteIdent(name), joinComma(placeholders))

	stmt, err := db.Prepare(insert)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for r := 0; r < df.Height(); r++ {
		args := make([]any, len(cols))
		for i, c := range cols {
			args[i] = toDriverValue(c, c.At(r))
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("insert row %d: %w", r, err)
		}
	}
	return nil
}

func sqlType(k dataframe.Kind) string {
	switch k {
	case dataframe.KindInt:
		return "INTEGER"
	case dataframe.KindFloat:
		return "REAL"
	case dataframe.KindBool:
		return "BOOLEAN"
	case dataframe.KindDate, dataframe.KindDatetime:
		return "DATETIME"
	case dataframe.KindBinary:
		return "BLOB"
	default:
		return "TEXT"
	}
}

func toDriverValue(col dataframe.Column, v dataframe.Value) any {
	if v.Null {
		return nil
	}
	switch v.Kind {
	case dataframe.KindInt:
		return v.I
	case dataframe.KindFloat:
		return v.F
	case dataframe.KindBool:
		return v.B
	case dataframe.KindDate, dataframe.KindDatetime:
		return v.T
	case dataframe.KindBinary:
		return v.Bin
	case dataframe.KindCategorical:
		return col.CategoricalString(v)
	default:
		return v.S
	}
}

// materialize drains rows into a single-chunk-per-column data frame,
// inferring each result column's logical type from the first non-null
// value observed (SQL results are dynamically typed at the driver level).
func materialize(rows *sql.Rows) (dataframe.DataFrame, error) {
	names, err := rows.Columns()
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	raw := make([][]any, len(names))
	for rows.Next() {
		scanTargets := make([]any, len(names))
		scanValues := make([]any, len(names))
		for i := range scanValues {
			scanTargets[i] = &scanValues[i]
		}
		if err := rows.Scan(scanTargets...); err != nil {
			return dataframe.DataFrame{}, err
		}
		for i, v := range scanValues {
			raw[i] = append(raw[i], v)
		}
	}
	if err := rows.Err(); err != nil {
		return dataframe.DataFrame{}, err
	}

	cols := make([]dataframe.Column, len(names))
	for i, name := range names {
		cols[i] = columnFromAny(name, raw[i])
	}
	return dataframe.New(cols)
}

func columnFromAny(name string, vals []any) dataframe.Column {
	kind := inferResultKind(vals)
	out := make([]dataframe.Value, len(vals))
	for i, v := range vals {
		out[i] = convertAny(kind, v)
	}
	return dataframe.NewColumn(name, kind, out)
}

func inferResultKind(vals []any) dataframe.Kind {
	for _, v := range vals {
		switch v.(type) {
		case nil:
			continue
		case int64, int32, int:
			return dataframe.KindInt
		case float64, float32:
			return dataframe.KindFloat
		case bool:
			return dataframe.KindBool
		case time.Time:
			return dataframe.KindDatetime
		case []byte:
			return dataframe.KindBinary
		default:
			return dataframe.KindString
		}
	}
	return dataframe.KindString
}

func convertAny(kind dataframe.Kind, v any) dataframe.Value {
	if v == nil {
		return dataframe.NullValue(kind)
	}
	switch kind {
	case dataframe.KindInt:
		switch n := v.(type) {
		case int64:
			return dataframe.IntValue(n)
		case int32:
			return dataframe.IntValue(int64(n))
		case int:
			return dataframe.IntValue(int64(n))
		}
	case dataframe.KindFloat:
		switch n := v.(type) {
		case float64:
			return dataframe.FloatValue(n)
		case float32:
			return dataframe.FloatValue(float64(n))
		}
	case dataframe.KindBool:
		if b, ok := v.(bool); ok {
			return dataframe.BoolValue(b)
		}
	case dataframe.KindDatetime:
		if t, ok := v.(time.Time); ok {
			return dataframe.DatetimeValue(t)
		}
	case dataframe.KindBinary:
		if b, ok := v.([]byte); ok {
			return dataframe.BinaryValue(b)
		}
	}
	return dataframe.StringValue(fmt.Sprintf("%v", v))
}

func joinComma(ss []string) string {
	out := ""
	for i, s := range ss {
		if i > 0 {
			out += ", "
		}
		out += s
	}
	return out
}

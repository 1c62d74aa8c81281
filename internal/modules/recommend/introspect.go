package recommend

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/aulanova/aulanova-backend/internal/pkg/logger"
)

// Introspector reads table and column metadata plus one sample row per table
// so the schema-analysis step can describe the store to the completion
// service. It is strictly read-only and swallows every error into the
// returned description.
type Introspector struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewIntrospector(db *gorm.DB, baseLog *logger.Logger) *Introspector {
	return &Introspector{db: db, log: baseLog.With("component", "Introspector")}
}

func (in *Introspector) Describe(ctx context.Context) SchemaDescription {
	names, err := in.tableNames(ctx)
	if err != nil {
		in.log.Warn("Schema introspection failed", "error", err)
		return SchemaDescription{Error: err.Error()}
	}

	out := SchemaDescription{Tables: make(map[string]TableSchema, len(names))}
	for _, name := range names {
		table, err := in.describeTable(ctx, name)
		if err != nil {
			in.log.Warn("Table introspection failed", "table", name, "error", err)
			out.Tables[name] = TableSchema{Error: err.Error()}
			continue
		}
		out.Tables[name] = table
	}
	return out
}

func (in *Introspector) tableNames(ctx context.Context) ([]string, error) {
	var query string
	switch in.db.Dialector.Name() {
	case "postgres":
		query = `SELECT tablename FROM pg_tables WHERE schemaname = 'public' ORDER BY tablename`
	default:
		query = `SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`
	}

	rows, err := in.db.WithContext(ctx).Raw(query).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (in *Introspector) describeTable(ctx context.Context, name string) (TableSchema, error) {
	cols, err := in.columns(ctx, name)
	if err != nil {
		return TableSchema{}, err
	}

	sample, err := in.sampleRow(ctx, name, len(cols))
	if err != nil {
		return TableSchema{}, err
	}
	for i := range cols {
		if sample != nil && i < len(sample) {
			cols[i].SampleValue = sample[i]
		}
	}

	var count int64
	if err := in.db.WithContext(ctx).
		Raw(fmt.Sprintf(`SELECT COUNT(*) FROM %q`, name)).
		Scan(&count).Error; err != nil {
		return TableSchema{}, err
	}

	return TableSchema{Columns: cols, RowCount: count}, nil
}

func (in *Introspector) columns(ctx context.Context, table string) ([]ColumnSchema, error) {
	if in.db.Dialector.Name() == "postgres" {
		return in.columnsPostgres(ctx, table)
	}
	return in.columnsSQLite(ctx, table)
}

func (in *Introspector) columnsSQLite(ctx context.Context, table string) ([]ColumnSchema, error) {
	var raw []struct {
		Name    string `gorm:"column:name"`
		Type    string `gorm:"column:type"`
		Notnull int    `gorm:"column:notnull"`
		Pk      int    `gorm:"column:pk"`
	}
	if err := in.db.WithContext(ctx).
		Raw(fmt.Sprintf(`PRAGMA table_info(%q)`, table)).
		Scan(&raw).Error; err != nil {
		return nil, err
	}

	cols := make([]ColumnSchema, 0, len(raw))
	for _, c := range raw {
		cols = append(cols, ColumnSchema{
			Name:       c.Name,
			Type:       c.Type,
			Nullable:   c.Notnull == 0,
			PrimaryKey: c.Pk > 0,
		})
	}
	return cols, nil
}

func (in *Introspector) columnsPostgres(ctx context.Context, table string) ([]ColumnSchema, error) {
	var raw []struct {
		ColumnName string `gorm:"column:column_name"`
		DataType   string `gorm:"column:data_type"`
		IsNullable string `gorm:"column:is_nullable"`
	}
	if err := in.db.WithContext(ctx).
		Raw(`SELECT column_name, data_type, is_nullable
		     FROM information_schema.columns
		     WHERE table_schema = 'public' AND table_name = ?
		     ORDER BY ordinal_position`, table).
		Scan(&raw).Error; err != nil {
		return nil, err
	}

	pks := map[string]bool{}
	var pkNames []string
	if err := in.db.WithContext(ctx).
		Raw(`SELECT a.attname
		     FROM pg_index i
		     JOIN pg_attribute a ON a.attrelid = i.indrelid AND a.attnum = ANY(i.indkey)
		     WHERE i.indrelid = ?::regclass AND i.indisprimary`, table).
		Scan(&pkNames).Error; err == nil {
		for _, n := range pkNames {
			pks[n] = true
		}
	}

	cols := make([]ColumnSchema, 0, len(raw))
	for _, c := range raw {
		cols = append(cols, ColumnSchema{
			Name:       c.ColumnName,
			Type:       c.DataType,
			Nullable:   c.IsNullable == "YES",
			PrimaryKey: pks[c.ColumnName],
		})
	}
	return cols, nil
}

// sampleRow returns the first row stringified column by column, or nil when
// the table is empty.
func (in *Introspector) sampleRow(ctx context.Context, table string, want int) ([]*string, error) {
	rows, err := in.db.WithContext(ctx).
		Raw(fmt.Sprintf(`SELECT * FROM %q LIMIT 1`, table)).
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	raw := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range raw {
		ptrs[i] = &raw[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, err
	}

	out := make([]*string, want)
	for i := 0; i < want && i < len(raw); i++ {
		if raw[i] == nil {
			continue
		}
		var s string
		switch v := raw[i].(type) {
		case []byte:
			s = string(v)
		default:
			s = fmt.Sprintf("%v", v)
		}
		out[i] = &s
	}
	return out, nil
}

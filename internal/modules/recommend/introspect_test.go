package recommend

import (
	"context"
	"testing"

	"github.com/aulanova/aulanova-backend/internal/data/repos/testutil"
)

func TestDescribeListsMigratedTables(t *testing.T) {
	db := testutil.DB(t)
	in := NewIntrospector(db, testutil.Logger(t))

	desc := in.Describe(context.Background())
	if desc.Error != "" {
		t.Fatalf("introspection errored: %s", desc.Error)
	}

	for _, table := range []string{"users", "profiles", "content", "categories"} {
		schema, ok := desc.Tables[table]
		if !ok {
			t.Fatalf("table %q missing from description", table)
		}
		if schema.Error != "" {
			t.Fatalf("table %q errored: %s", table, schema.Error)
		}
		if len(schema.Columns) == 0 {
			t.Fatalf("table %q has no columns", table)
		}
	}
}

func TestDescribeColumnDetail(t *testing.T) {
	db := testutil.DB(t)
	in := NewIntrospector(db, testutil.Logger(t))

	desc := in.Describe(context.Background())
	content, ok := desc.Tables["content"]
	if !ok {
		t.Fatal("content table missing")
	}

	byName := map[string]ColumnSchema{}
	for _, col := range content.Columns {
		byName[col.Name] = col
	}
	if _, ok := byName["categories"]; !ok {
		t.Fatal("categories column missing from content table description")
	}
	id, ok := byName["id"]
	if !ok {
		t.Fatal("id column missing from content table description")
	}
	if !id.PrimaryKey {
		t.Fatal("id column should be reported as primary key")
	}
}

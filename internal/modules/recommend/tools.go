package recommend

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"github.com/aulanova/aulanova-backend/internal/domain"
	"github.com/aulanova/aulanova-backend/internal/pkg/logger"
)

// Tool is a read-only capability a pipeline step may expose to the completion
// service. Invoke never fails: store-level errors come back as a structured
// {"error": ...} payload so the orchestrator can always proceed or report
// gracefully.
type Tool interface {
	Name() string
	Description() string
	Invoke(ctx context.Context, input string) string
}

func errPayload(err error) string {
	b, _ := json.Marshal(map[string]string{"error": err.Error()})
	return string(b)
}

func rowsPayload(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return errPayload(err)
	}
	return string(b)
}

func splitTerms(input string) []string {
	terms := []string{}
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			terms = append(terms, part)
		}
	}
	return terms
}

// ---- schema tool ----

type schemaTool struct {
	intr *Introspector
}

func NewSchemaTool(intr *Introspector) Tool { return &schemaTool{intr: intr} }

func (t *schemaTool) Name() string { return "database_schema" }
func (t *schemaTool) Description() string {
	return "Describes the tables, columns, sample values and row counts of the activity store."
}

func (t *schemaTool) Invoke(ctx context.Context, _ string) string {
	return rowsPayload(t.intr.Describe(ctx))
}

// ---- content search tool (fuzzy) ----

type searchTool struct {
	retriever *Retriever
	log       *logger.Logger
}

func NewSearchTool(retriever *Retriever, baseLog *logger.Logger) Tool {
	return &searchTool{retriever: retriever, log: baseLog.With("tool", "content_search")}
}

func (t *searchTool) Name() string { return "content_search" }
func (t *searchTool) Description() string {
	return "Finds up to 10 activities whose title, description, topic or type contains any of the given comma-separated terms."
}

// Invoke searches each comma-separated term separately and unions the rows;
// a joined interest list like "Cloud Computing, Data Science" must not be
// treated as one substring.
func (t *searchTool) Invoke(ctx context.Context, input string) string {
	terms := splitTerms(input)

	seen := map[uuid.UUID]bool{}
	items := []domain.ContentItem{}
	for _, term := range terms {
		rows, err := t.retriever.SearchFuzzy(ctx, term)
		if err != nil {
			t.log.Warn("Content search failed", "term", term, "error", err)
			return errPayload(err)
		}
		for _, row := range rows {
			if seen[row.ID] {
				continue
			}
			seen[row.ID] = true
			items = append(items, row)
			if len(items) == RetrievalLimit {
				return rowsPayload(items)
			}
		}
	}
	return rowsPayload(items)
}

// ---- category search tool (exact, delimited) ----

type categoryTool struct {
	retriever *Retriever
	log       *logger.Logger
}

func NewCategoryTool(retriever *Retriever, baseLog *logger.Logger) Tool {
	return &categoryTool{retriever: retriever, log: baseLog.With("tool", "category_search")}
}

func (t *categoryTool) Name() string { return "category_search" }
func (t *categoryTool) Description() string {
	return "Finds up to 10 activities tagged with any of the given comma-separated category names."
}

func (t *categoryTool) Invoke(ctx context.Context, input string) string {
	items, err := t.retriever.SearchByCategories(ctx, splitTerms(input))
	if err != nil {
		t.log.Warn("Category search failed", "error", err)
		return errPayload(err)
	}
	return rowsPayload(items)
}

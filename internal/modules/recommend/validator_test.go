package recommend

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/aulanova/aulanova-backend/internal/domain"
	"github.com/aulanova/aulanova-backend/internal/pkg/logger"
)

func testLogger(tb testing.TB) *logger.Logger {
	tb.Helper()
	log, err := logger.New("test")
	if err != nil {
		tb.Fatalf("failed to init logger: %v", err)
	}
	return log
}

func testProfile(interests ...string) *domain.Profile {
	return &domain.Profile{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		UserType:       "student",
		InterestAreas:  datatypes.NewJSONSlice(interests),
		EducationLevel: domain.LevelAdvanced,
	}
}

func TestValidateNilProfile(t *testing.T) {
	v := NewValidator(testLogger(t))
	userID := uuid.New()

	result := v.Validate(`[]`, nil, userID)

	if result.Status != StatusError {
		t.Fatalf("expected status %q, got %q", StatusError, result.Status)
	}
	if result.TotalCount != 0 || len(result.Recommendations) != 0 {
		t.Fatalf("error result must carry no recommendations, got %d", len(result.Recommendations))
	}
	if !strings.Contains(result.Error, userID.String()) {
		t.Fatalf("error message should name the user, got %q", result.Error)
	}
}

func TestValidateKeepsValidDropsInvalid(t *testing.T) {
	v := NewValidator(testLogger(t))

	raw := `[
		{"title": "Cloud Architecture Course", "description": "d", "content_type": "course", "modality": "online", "level": "advanced", "rating": 4.8},
		{"description": "missing title", "content_type": "course", "modality": "online"},
		{"title": "Bad Rating", "description": "d", "content_type": "course", "modality": "online", "rating": 7.5},
		{"title": "Bad Modality", "description": "d", "content_type": "course", "modality": "telepathic"},
		{"title": "Security Workshop", "description": "d", "content_type": "workshop", "modality": "hybrid", "relevance": 0.9}
	]`

	result := v.Validate(raw, testProfile("Cloud Computing"), uuid.New())

	if result.Status != StatusSuccess {
		t.Fatalf("expected success, got %q (%s)", result.Status, result.Error)
	}
	if len(result.Recommendations) != 2 {
		t.Fatalf("expected 2 surviving records, got %d", len(result.Recommendations))
	}
	if result.TotalCount != len(result.Recommendations) {
		t.Fatalf("total_count %d != len(recommendations) %d", result.TotalCount, len(result.Recommendations))
	}
	if result.Recommendations[0].Title != "Cloud Architecture Course" {
		t.Fatalf("unexpected first record %q", result.Recommendations[0].Title)
	}
	if result.Recommendations[0].MatchReasons == nil {
		t.Fatal("match_reasons must never be nil")
	}
}

func TestValidateNormalizesEnums(t *testing.T) {
	v := NewValidator(testLogger(t))

	raw := `[{"title": "T", "description": "d", "content_type": " Course ", "modality": "ONLINE", "level": "Advanced"}]`
	result := v.Validate(raw, testProfile(), uuid.New())

	if len(result.Recommendations) != 1 {
		t.Fatalf("expected 1 record, got %d", len(result.Recommendations))
	}
	rec := result.Recommendations[0]
	if rec.ContentType != domain.ContentTypeCourse {
		t.Fatalf("content_type not normalized: %q", rec.ContentType)
	}
	if rec.Modality != domain.ModalityOnline {
		t.Fatalf("modality not normalized: %q", rec.Modality)
	}
	if rec.Level != domain.LevelAdvanced {
		t.Fatalf("level not normalized: %q", rec.Level)
	}
	if rec.Status != domain.ContentStatusActive {
		t.Fatalf("status should default to active, got %q", rec.Status)
	}
}

func TestValidateFallbackWhenNothingSurvives(t *testing.T) {
	v := NewValidator(testLogger(t))
	profile := testProfile("Cloud Computing", "Data Science")

	for _, tc := range []struct {
		name string
		raw  string
	}{
		{"empty output", ""},
		{"prose output", "I could not find anything useful."},
		{"empty array", "[]"},
		{"all invalid", `[{"title": "", "description": "d", "content_type": "course", "modality": "online"}]`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			result := v.Validate(tc.raw, profile, uuid.New())

			if result.Status != StatusSuccess {
				t.Fatalf("fallback must still be a success, got %q", result.Status)
			}
			if len(result.Recommendations) != 1 {
				t.Fatalf("expected exactly the fallback record, got %d", len(result.Recommendations))
			}
			rec := result.Recommendations[0]
			if !strings.Contains(rec.Title, "student") {
				t.Fatalf("fallback title should carry the user type, got %q", rec.Title)
			}
			if rec.Price == nil || *rec.Price != fallbackPrice {
				t.Fatalf("fallback price mismatch: %v", rec.Price)
			}
			if rec.Rating == nil || *rec.Rating != fallbackRating {
				t.Fatalf("fallback rating mismatch: %v", rec.Rating)
			}
			if rec.Seats == nil || *rec.Seats != fallbackSeats {
				t.Fatalf("fallback seats mismatch: %v", rec.Seats)
			}
			if rec.Modality != domain.ModalityOnline {
				t.Fatalf("fallback modality should be online, got %q", rec.Modality)
			}
			if rec.Level != domain.LevelAdvanced {
				t.Fatalf("fallback level should follow the profile, got %q", rec.Level)
			}
			if len(rec.MatchReasons) != 2 {
				t.Fatalf("fallback match_reasons should list the interest areas, got %v", rec.MatchReasons)
			}
		})
	}
}

func TestValidateFallbackIsDeterministic(t *testing.T) {
	v := NewValidator(testLogger(t))
	profile := testProfile("Cloud Computing")
	userID := uuid.New()

	first := v.Validate("garbage", profile, userID)
	second := v.Validate("garbage", profile, userID)

	if first.Recommendations[0].Title != second.Recommendations[0].Title {
		t.Fatal("fallback must be identical across runs")
	}
	if *first.Recommendations[0].Price != *second.Recommendations[0].Price {
		t.Fatal("fallback price must be identical across runs")
	}
}

func TestParseRecordsTolerantForms(t *testing.T) {
	base := `[{"title": "T", "description": "d", "content_type": "course", "modality": "online"}]`

	for _, tc := range []struct {
		name string
		raw  string
	}{
		{"bare array", base},
		{"fenced", "```json\n" + base + "\n```"},
		{"object wrapper", `{"recommendations": ` + base + `}`},
		{"surrounded by prose", "Here you go:\n" + base + "\nHope that helps!"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			records, err := parseRecords(tc.raw)
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}
			if len(records) != 1 {
				t.Fatalf("expected 1 record, got %d", len(records))
			}
			if records[0].Title == nil || *records[0].Title != "T" {
				t.Fatalf("unexpected record: %+v", records[0])
			}
		})
	}
}

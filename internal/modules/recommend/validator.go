package recommend

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/aulanova/aulanova-backend/internal/domain"
	"github.com/aulanova/aulanova-backend/internal/pkg/logger"
)

// Fallback placeholders, kept stable so repeated runs against an unchanged
// profile produce an identical degraded answer.
const (
	fallbackPrice    = 99.99
	fallbackRating   = 4.5
	fallbackSeats    = 20
	fallbackDuration = 10
)

// Validator turns the orchestrator's raw text into a well-formed
// PipelineResult. Model output is untrusted: bad records are dropped one by
// one, and a fully unusable answer degrades to a deterministic
// profile-derived recommendation rather than an error, as long as a profile
// exists.
type Validator struct {
	log *logger.Logger
}

func NewValidator(baseLog *logger.Logger) *Validator {
	return &Validator{log: baseLog.With("component", "Validator")}
}

func (v *Validator) Validate(raw string, profile *domain.Profile, userID uuid.UUID) PipelineResult {
	if profile == nil {
		return NewErrorResult(userID, fmt.Sprintf("profile not found for user %s", userID))
	}

	records, err := parseRecords(raw)
	if err != nil {
		v.log.Warn("Model output did not parse; using fallback", "error", err)
	}

	recs := make([]Recommendation, 0, len(records))
	for i, rec := range records {
		validated, err := buildRecommendation(rec)
		if err != nil {
			v.log.Debug("Dropping invalid recommendation record", "index", i, "error", err)
			continue
		}
		recs = append(recs, validated)
	}

	if len(recs) == 0 {
		recs = []Recommendation{FallbackRecommendation(profile)}
	}
	return NewSuccessResult(userID, recs)
}

// FallbackRecommendation is the deterministic degraded answer built purely
// from the profile.
func FallbackRecommendation(profile *domain.Profile) Recommendation {
	price := fallbackPrice
	rating := fallbackRating
	seats := fallbackSeats
	duration := fallbackDuration

	reasons := make([]string, 0, len(profile.InterestAreas))
	for _, area := range profile.InterestAreas {
		if strings.TrimSpace(area) != "" {
			reasons = append(reasons, area)
		}
	}

	return Recommendation{
		Title:         fmt.Sprintf("Course tailored for %s", profile.UserType),
		Description:   fmt.Sprintf("Personalized course based on your %s profile", profile.UserType),
		ContentType:   domain.ContentTypeCourse,
		Modality:      domain.ModalityOnline,
		Level:         profile.EducationLevel,
		Seats:         &seats,
		Rating:        &rating,
		Price:         &price,
		DurationHours: &duration,
		Status:        domain.ContentStatusActive,
		MatchReasons:  reasons,
	}
}

// rawRecord keeps every field optional so one malformed value cannot poison
// sibling fields during decoding.
type rawRecord struct {
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	ContentType   *string  `json:"content_type"`
	Modality      *string  `json:"modality"`
	Level         *string  `json:"level"`
	Seats         *int     `json:"seats"`
	Rating        *float64 `json:"rating"`
	Price         *float64 `json:"price"`
	DurationHours *int     `json:"duration_hours"`
	Status        *string  `json:"status"`
	Relevance     *float64 `json:"relevance"`
	MatchReasons  []string `json:"match_reasons"`
}

func parseRecords(raw string) ([]rawRecord, error) {
	text := stripCodeFences(raw)
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("empty model output")
	}

	var records []rawRecord
	if err := json.Unmarshal([]byte(text), &records); err == nil {
		return records, nil
	}

	// Some models wrap the array in an object; take the first array value.
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &wrapper); err == nil {
		for _, v := range wrapper {
			if err := json.Unmarshal(v, &records); err == nil {
				return records, nil
			}
		}
	}

	// Last resort: the outermost bracketed region.
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start >= 0 && end > start {
		if err := json.Unmarshal([]byte(text[start:end+1]), &records); err == nil {
			return records, nil
		}
	}

	return nil, fmt.Errorf("no recommendation array found in model output")
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func buildRecommendation(rec rawRecord) (Recommendation, error) {
	var out Recommendation

	if rec.Title == nil || strings.TrimSpace(*rec.Title) == "" {
		return out, fmt.Errorf("missing title")
	}
	if rec.Description == nil {
		return out, fmt.Errorf("missing description")
	}
	if rec.ContentType == nil {
		return out, fmt.Errorf("missing content_type")
	}
	if rec.Modality == nil {
		return out, fmt.Errorf("missing modality")
	}

	contentType := strings.ToLower(strings.TrimSpace(*rec.ContentType))
	switch contentType {
	case domain.ContentTypeCourse, domain.ContentTypeWorkshop, domain.ContentTypeMaster, domain.ContentTypeCertification:
	default:
		return out, fmt.Errorf("unknown content_type %q", *rec.ContentType)
	}

	modality := strings.ToLower(strings.TrimSpace(*rec.Modality))
	switch modality {
	case domain.ModalityInPerson, domain.ModalityOnline, domain.ModalityHybrid:
	default:
		return out, fmt.Errorf("unknown modality %q", *rec.Modality)
	}

	level := ""
	if rec.Level != nil {
		level = strings.ToLower(strings.TrimSpace(*rec.Level))
		switch level {
		case "", domain.LevelBasic, domain.LevelIntermediate, domain.LevelAdvanced:
		default:
			return out, fmt.Errorf("unknown level %q", *rec.Level)
		}
	}

	status := domain.ContentStatusActive
	if rec.Status != nil && strings.TrimSpace(*rec.Status) != "" {
		status = strings.ToLower(strings.TrimSpace(*rec.Status))
		switch status {
		case domain.ContentStatusActive, domain.ContentStatusInactive, domain.ContentStatusDraft:
		default:
			return out, fmt.Errorf("unknown status %q", *rec.Status)
		}
	}

	if rec.Seats != nil && *rec.Seats < 0 {
		return out, fmt.Errorf("negative seats %v", *rec.Seats)
	}
	if rec.Rating != nil && (*rec.Rating < 0 || *rec.Rating > 5) {
		return out, fmt.Errorf("rating %v out of range", *rec.Rating)
	}
	if rec.Price != nil && *rec.Price < 0 {
		return out, fmt.Errorf("negative price %v", *rec.Price)
	}
	if rec.DurationHours != nil && *rec.DurationHours < 0 {
		return out, fmt.Errorf("negative duration %v", *rec.DurationHours)
	}
	if rec.Relevance != nil && (*rec.Relevance < 0 || *rec.Relevance > 1) {
		return out, fmt.Errorf("relevance %v out of range", *rec.Relevance)
	}

	reasons := rec.MatchReasons
	if reasons == nil {
		reasons = []string{}
	}

	out = Recommendation{
		Title:         strings.TrimSpace(*rec.Title),
		Description:   strings.TrimSpace(*rec.Description),
		ContentType:   contentType,
		Modality:      modality,
		Level:         level,
		Seats:         rec.Seats,
		Rating:        rec.Rating,
		Price:         rec.Price,
		DurationHours: rec.DurationHours,
		Status:        status,
		Relevance:     rec.Relevance,
		MatchReasons:  reasons,
	}
	return out, nil
}

package recommend

import (
	"context"
	"strings"

	"github.com/aulanova/aulanova-backend/internal/domain"
)

// SchemaAnalysisStep documents the store's structure before any content is
// recommended. A completion failure here degrades to the raw introspection
// payload; schema analysis must never abort the pipeline.
func SchemaAnalysisStep(schema Tool) Step {
	return Step{
		Role: "Database Schema Analyst",
		Goal: "Analyze and document the structure of the activity store, identifying " +
			"fields and relationships relevant for recommendations.",
		Instruction: strings.Join([]string{
			"Analyze the structure of the database:",
			"- identify tables and relationships",
			"- note the fields and their types",
			"- document patterns relevant for recommending activities",
			"Summarize your findings as a short schema analysis.",
		}, "\n"),
		Tools: []Tool{schema},
		Fallback: func(ctx context.Context) string {
			return schema.Invoke(ctx, "")
		},
	}
}

// ContentAnalysisStep asks for up to 10 recommendations fitted to the
// profile. Its output feeds the validator, so the instruction pins the exact
// record shape.
func ContentAnalysisStep(profile *domain.Profile, search, categories Tool) Step {
	interests := strings.Join(profile.InterestAreas, ", ")

	return Step{
		Role: "Educational Content Analyst",
		Goal: "Analyze the available activities and produce personalized " +
			"recommendations for the given profile.",
		Instruction: strings.Join([]string{
			"Act as an expert activity recommender. Analyze this user profile:",
			"- user type: " + profile.UserType,
			"- interest areas: " + interests,
			"- education level: " + profile.EducationLevel,
			"",
			"Using the tool results below, recommend up to 10 activities that best fit the profile:",
			"1. prioritize activities matching the interest areas",
			"2. adapt the difficulty to the education level",
			"3. consider the user type when weighing format and modality",
			"4. be creative: use synonyms and related terms, not only exact matches",
			"",
			"Respond with ONLY a JSON array. Each element must have the fields:",
			`title (string), description (string), content_type (course|workshop|master|certification),`,
			`modality (in_person|online|hybrid), level (basic|intermediate|advanced, optional),`,
			`seats (>= 0, optional), rating (0-5, optional), price (>= 0, optional), duration_hours (optional),`,
			`status (active|inactive|draft), relevance (0-1, optional), match_reasons (array of strings).`,
		}, "\n"),
		Tools:                []Tool{search, categories},
		ToolInput:            interests,
		SchemaName:           "recommendations",
		Schema:               recommendationSchema(),
		DependsOnPriorOutput: true,
	}
}

// PathDesignStep optionally reorders the recommended activities into a
// coherent learning sequence. It rewrites match_reasons but must keep the
// same JSON record shape so the validator stays downstream-compatible.
func PathDesignStep() Step {
	return Step{
		Role: "Learning Path Designer",
		Goal: "Design a personalized learning sequence from the recommended " +
			"activities.",
		Instruction: strings.Join([]string{
			"Take the recommended activities from the previous step and order them",
			"into a progressive learning path (foundations first, advanced later).",
			"Respond with ONLY the same JSON array, reordered, with match_reasons",
			"updated to explain each activity's place in the sequence.",
			"Do not add, remove or rename any field.",
		}, "\n"),
		SchemaName:           "recommendations",
		Schema:               recommendationSchema(),
		DependsOnPriorOutput: true,
	}
}

// recommendationSchema is the json_schema for structured step output. The
// validator still re-checks every record; the schema only steers the model.
func recommendationSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"recommendations"},
		"properties": map[string]any{
			"recommendations": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"required":             []string{"title", "description", "content_type", "modality", "status"},
					"properties": map[string]any{
						"title":          map[string]any{"type": "string"},
						"description":    map[string]any{"type": "string"},
						"content_type":   map[string]any{"type": "string", "enum": []string{"course", "workshop", "master", "certification"}},
						"modality":       map[string]any{"type": "string", "enum": []string{"in_person", "online", "hybrid"}},
						"level":          map[string]any{"type": []string{"string", "null"}},
						"seats":          map[string]any{"type": []string{"integer", "null"}},
						"rating":         map[string]any{"type": []string{"number", "null"}},
						"price":          map[string]any{"type": []string{"number", "null"}},
						"duration_hours": map[string]any{"type": []string{"integer", "null"}},
						"status":         map[string]any{"type": "string", "enum": []string{"active", "inactive", "draft"}},
						"relevance":      map[string]any{"type": []string{"number", "null"}},
						"match_reasons":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					},
				},
			},
		},
	}
}

package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/aulanova/aulanova-backend/internal/pkg/logger"
	"github.com/aulanova/aulanova-backend/internal/platform/openai"
)

type StepStatus string

const (
	StepPending   StepStatus = "pending"
	StepRunning   StepStatus = "running"
	StepCompleted StepStatus = "completed"
	StepFailed    StepStatus = "failed"
)

// Step is one role-bound unit of the pipeline. Steps run strictly in
// declaration order; a later step sees the previous step's raw text only
// when DependsOnPriorOutput is set.
type Step struct {
	Role        string
	Goal        string
	Instruction string

	// Tools the completion service may read for this step. Each tool is
	// invoked once with ToolInput and its payload is embedded verbatim;
	// the orchestrator never interprets tool output.
	Tools     []Tool
	ToolInput string

	// Schema, when set, makes the step request structured output via
	// GenerateJSON instead of free text. The decoded object is re-marshalled
	// so downstream steps and the validator still see text.
	SchemaName string
	Schema     map[string]any

	DependsOnPriorOutput bool

	// Fallback, when set, replaces the step output after a completion
	// failure instead of failing the whole pipeline.
	Fallback func(ctx context.Context) string
}

type StepResult struct {
	Role   string
	Status StepStatus
	Output string
	Err    error
}

// Orchestrator executes a fixed sequence of steps against the completion
// service. Execution order is deterministic even though step content is not.
type Orchestrator struct {
	ai          openai.Client
	log         *logger.Logger
	steps       []Step
	stepTimeout time.Duration

	results []StepResult
}

func NewOrchestrator(ai openai.Client, baseLog *logger.Logger, stepTimeout time.Duration, steps []Step) *Orchestrator {
	results := make([]StepResult, len(steps))
	for i, s := range steps {
		results[i] = StepResult{Role: s.Role, Status: StepPending}
	}
	return &Orchestrator{
		ai:          ai,
		log:         baseLog.With("component", "Orchestrator"),
		steps:       steps,
		stepTimeout: stepTimeout,
		results:     results,
	}
}

// Run executes every step in order and returns the final step's raw text.
// A step failure without a configured fallback fails the pipeline.
func (o *Orchestrator) Run(ctx context.Context) (string, error) {
	if len(o.steps) == 0 {
		return "", fmt.Errorf("no steps configured")
	}

	prior := ""
	for i, step := range o.steps {
		if err := ctx.Err(); err != nil {
			o.results[i].Status = StepFailed
			o.results[i].Err = err
			return "", err
		}

		o.results[i].Status = StepRunning
		o.log.Debug("Running pipeline step", "role", step.Role, "index", i)

		out, err := o.runStep(ctx, step, prior)
		if err != nil {
			if step.Fallback == nil {
				o.results[i].Status = StepFailed
				o.results[i].Err = err
				o.log.Warn("Pipeline step failed", "role", step.Role, "error", err)
				return "", fmt.Errorf("step %q: %w", step.Role, err)
			}
			o.log.Warn("Pipeline step degraded to fallback", "role", step.Role, "error", err)
			out = step.Fallback(ctx)
		}

		o.results[i].Status = StepCompleted
		o.results[i].Output = out
		prior = out
	}

	return prior, nil
}

// Results exposes per-step state for diagnostics.
func (o *Orchestrator) Results() []StepResult {
	out := make([]StepResult, len(o.results))
	copy(out, o.results)
	return out
}

func (o *Orchestrator) runStep(ctx context.Context, step Step, prior string) (string, error) {
	if o.stepTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.stepTimeout)
		defer cancel()
	}

	system := strings.Join([]string{
		"ROLE: " + step.Role,
		"GOAL: " + step.Goal,
	}, "\n")

	var user strings.Builder
	user.WriteString(step.Instruction)

	if step.DependsOnPriorOutput && strings.TrimSpace(prior) != "" {
		user.WriteString("\n\nOUTPUT OF THE PREVIOUS STEP:\n")
		user.WriteString(prior)
	}

	for _, tool := range step.Tools {
		payload := tool.Invoke(ctx, step.ToolInput)
		user.WriteString("\n\nTOOL ")
		user.WriteString(tool.Name())
		user.WriteString(" (")
		user.WriteString(tool.Description())
		user.WriteString("):\n")
		user.WriteString(payload)
	}

	if step.Schema != nil {
		obj, err := o.ai.GenerateJSON(ctx, system, user.String(), step.SchemaName, step.Schema)
		if err != nil {
			return "", err
		}
		b, err := json.Marshal(obj)
		if err != nil {
			return "", fmt.Errorf("re-encode structured output: %w", err)
		}
		return string(b), nil
	}

	return o.ai.GenerateText(ctx, system, user.String())
}

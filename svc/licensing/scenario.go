package licensing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/sitelicense/pkg/logger"
)

// Action names accepted in scenario steps.
const (
	ActionRegister       = "register"
	ActionSubscribe      = "subscribe"
	ActionAddWebsite     = "add_website"
	ActionRemoveWebsite  = "remove_website"
	ActionDisableWebsite = "disable_website"
	ActionUpdatePlan     = "update_plan"
)

// Scenario is an ordered list of licensing operations, usually decoded from YAML:
//
//	stop_on_error: true
//	steps:
//	  - {action: register, email: jane@example.com, name: Jane, password: secret, plan: Single}
//	  - {action: add_website, email: jane@example.com, url: a.example}
//	  - {action: add_website, email: jane@example.com, url: b.example, expect: website_limit_reached}
type Scenario struct {
	StopOnError bool   `yaml:"stop_on_error"`
	Steps       []Step `yaml:"steps"`
}

// Step addresses its customer by email. Expect, when set, is the error code
// the step must produce; "ok" expects success explicitly.
type Step struct {
	Action   string `yaml:"action"`
	Email    string `yaml:"email"`
	Name     string `yaml:"name,omitempty"`
	Password string `yaml:"password,omitempty"`
	Plan     string `yaml:"plan,omitempty"`
	URL      string `yaml:"url,omitempty"`
	Expect   string `yaml:"expect,omitempty"`
}

type StepResult struct {
	Index      int    `yaml:"index"`
	Action     string `yaml:"action"`
	Email      string `yaml:"email"`
	Code       string `yaml:"code,omitempty"`
	Transition string `yaml:"transition,omitempty"`
	OK         bool   `yaml:"ok"`
}

type ScenarioResult struct {
	Steps     []StepResult   `yaml:"steps"`
	Failed    int            `yaml:"failed"`
	Customers []CustomerView `yaml:"customers"`
}

const expectOK = "ok"

// RunOption configures RunScenario.
type RunOption func(*runConfig)

type runConfig struct {
	logger *slog.Logger
}

// WithRunLogger logs every step outcome to l. Nil loggers are ignored.
func WithRunLogger(l *slog.Logger) RunOption {
	return func(c *runConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// ParseScenario decodes and checks a YAML scenario. Unknown fields are rejected.
func ParseScenario(r io.Reader) (Scenario, error) {
	var sc Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return Scenario{}, errors.Join(ErrInvalidScenario, err)
	}
	if err := sc.Validate(); err != nil {
		return Scenario{}, err
	}
	return sc, nil
}

// Validate checks that every step has a known action and an email.
func (sc Scenario) Validate() error {
	if len(sc.Steps) == 0 {
		return fmt.Errorf("%w: no steps", ErrInvalidScenario)
	}
	for i, step := range sc.Steps {
		switch step.Action {
		case ActionRegister, ActionSubscribe, ActionAddWebsite,
			ActionRemoveWebsite, ActionDisableWebsite, ActionUpdatePlan:
		default:
			return fmt.Errorf("%w: step %d: %w %q", ErrInvalidScenario, i, ErrUnknownAction, step.Action)
		}
		if step.Email == "" {
			return fmt.Errorf("%w: step %d: email is required", ErrInvalidScenario, i)
		}
	}
	return nil
}

// RunScenario applies every step to svc in order and collects the outcome.
// A step is OK when its error code matches Expect (or it succeeds when Expect
// is empty). With StopOnError the run ends at the first failed step and
// returns ErrStepFailed alongside the partial result.
func RunScenario(ctx context.Context, svc Service, sc Scenario, opts ...RunOption) (*ScenarioResult, error) {
	cfg := runConfig{logger: logger.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.logger.With(logger.Component("scenario"))

	result := &ScenarioResult{Steps: make([]StepResult, 0, len(sc.Steps))}

	var runErr error
	for i, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		transition, err := runStep(logger.WithStep(ctx, i), svc, step)
		sr := StepResult{
			Index:      i,
			Action:     step.Action,
			Email:      step.Email,
			Code:       ErrorCode(err),
			Transition: transition,
		}
		sr.OK = stepMatches(step.Expect, sr.Code)
		result.Steps = append(result.Steps, sr)
		logStep(ctx, log, step, sr)

		if !sr.OK {
			result.Failed++
			if sc.StopOnError {
				runErr = fmt.Errorf("%w: step %d (%s): %w", ErrStepFailed, i, step.Action, errOrMismatch(err, step.Expect))
				break
			}
		}
	}

	customers, err := svc.List(ctx)
	if err != nil {
		return result, err
	}
	result.Customers = customers
	return result, runErr
}

func logStep(ctx context.Context, log *slog.Logger, step Step, sr StepResult) {
	outcome := []slog.Attr{slog.Bool("ok", sr.OK), logger.ErrorCode(sr.Code)}
	if step.Expect != "" {
		outcome = append(outcome, slog.String("expect", step.Expect))
	}
	if sr.Transition != "" {
		outcome = append(outcome, logger.Transition(sr.Transition))
	}
	args := []any{
		logger.Step(sr.Index),
		slog.String("action", sr.Action),
		logger.Group("outcome", outcome...),
	}
	if !sr.OK {
		log.WarnContext(ctx, "scenario step failed", args...)
		return
	}
	log.DebugContext(ctx, "scenario step passed", args...)
}

func runStep(ctx context.Context, svc Service, step Step) (string, error) {
	if step.Action == ActionRegister {
		_, err := svc.Register(ctx, RegisterInput{
			Name:     step.Name,
			Email:    step.Email,
			Password: step.Password,
			Plan:     step.Plan,
		})
		return "", err
	}

	id, err := svc.Lookup(ctx, step.Email)
	if err != nil {
		return "", err
	}
	return dispatch(ctx, svc, id, step)
}

func dispatch(ctx context.Context, svc Service, id uuid.UUID, step Step) (string, error) {
	switch step.Action {
	case ActionSubscribe:
		return "", svc.Subscribe(ctx, id, step.Plan)
	case ActionAddWebsite:
		return "", svc.AddWebsite(ctx, id, step.URL)
	case ActionRemoveWebsite:
		return "", svc.RemoveWebsite(ctx, id, step.URL)
	case ActionDisableWebsite:
		return "", svc.DisableWebsite(ctx, id, step.URL)
	case ActionUpdatePlan:
		t, err := svc.UpdatePlan(ctx, id, step.Plan)
		if err != nil {
			return "", err
		}
		return t.String(), nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownAction, step.Action)
	}
}

func stepMatches(expect, code string) bool {
	if expect == "" || expect == expectOK {
		return code == ""
	}
	return expect == code
}

func errOrMismatch(err error, expect string) error {
	if err != nil {
		return err
	}
	return fmt.Errorf("expected %s, got success", expect)
}

package licensing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/sitelicense/pkg/license"
	"github.com/dmitrymomot/sitelicense/pkg/logger"
)

// Service exposes the licensing rules over customer identifiers.
// Mutations on the same customer are serialized; different customers proceed in parallel.
type Service interface {
	Register(ctx context.Context, in RegisterInput) (uuid.UUID, error)
	Lookup(ctx context.Context, email string) (uuid.UUID, error)
	Get(ctx context.Context, customerID uuid.UUID) (*CustomerView, error)
	List(ctx context.Context) ([]CustomerView, error)

	Subscribe(ctx context.Context, customerID uuid.UUID, planType string) error
	AddWebsite(ctx context.Context, customerID uuid.UUID, url string) error
	RemoveWebsite(ctx context.Context, customerID uuid.UUID, url string) error
	DisableWebsite(ctx context.Context, customerID uuid.UUID, url string) error
	UpdatePlan(ctx context.Context, customerID uuid.UUID, planType string) (license.Transition, error)
}

// RegisterInput carries the identity of a new customer.
// Plan is optional; when set the customer is subscribed immediately.
type RegisterInput struct {
	Name     string `validate:"required,max=200"`
	Email    string `validate:"required,email,max=254"`
	Password string `validate:"required,max=72"`
	Plan     string
}

type record struct {
	mu       sync.Mutex
	customer *license.Customer
}

type service struct {
	mu        sync.RWMutex
	customers map[uuid.UUID]*record
	emails    map[string]uuid.UUID
	order     []uuid.UUID

	validate   *validator.Validate
	logger     *slog.Logger
	bcryptCost int
	now        func() time.Time
}

// NewService creates an in-memory licensing service.
// State lives for the lifetime of the process only.
func NewService(opts ...ServiceOption) Service {
	s := &service{
		customers:  make(map[uuid.UUID]*record),
		emails:     make(map[string]uuid.UUID),
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		logger:     logger.Nop(),
		bcryptCost: bcrypt.DefaultCost,
		now:        func() time.Time { return time.Now().UTC() },
	}

	for _, opt := range opts {
		opt(s)
	}

	// Records logged with a customer-scoped context carry customer_id.
	handler := logger.NewLogHandlerDecorator(s.logger.Handler(), logger.CustomerIDExtractor)
	s.logger = slog.New(handler).With(logger.Component("licensing"))
	return s
}

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

// Register creates a customer with a bcrypt-hashed password.
// Returns ErrInvalidInput for missing or malformed fields and ErrEmailTaken
// when the normalized email is already registered.
func (s *service) Register(ctx context.Context, in RegisterInput) (uuid.UUID, error) {
	if err := ctx.Err(); err != nil {
		return uuid.Nil, err
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	customer, err := s.register(in)
	if err != nil {
		s.logger.WarnContext(ctx, "customer registration rejected",
			logger.PlanType(in.Plan),
			logger.Error(err),
			logger.ErrorCode(ErrorCode(err)),
		)
		return uuid.Nil, err
	}

	s.logger.InfoContext(logger.WithCustomerID(ctx, customer.ID), "customer registered",
		logger.PlanType(planTypeOf(customer)),
	)
	return customer.ID, nil
}

func (s *service) register(in RegisterInput) (*license.Customer, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, errors.Join(ErrInvalidInput, err)
	}
	// validator counts runes; bcrypt limits bytes.
	if len(in.Password) > maxPasswordBytes {
		return nil, fmt.Errorf("%w: password exceeds %d bytes", ErrInvalidInput, maxPasswordBytes)
	}

	// Reject known emails before paying for the hash; re-checked under the write lock.
	s.mu.RLock()
	_, taken := s.emails[in.Email]
	s.mu.RUnlock()
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, errors.Join(ErrPasswordHashing, err)
	}

	opts := []license.CustomerOption{license.WithClock(s.now)}
	if in.Plan != "" {
		opts = append(opts, license.WithPlan(in.Plan))
	}
	customer, err := license.NewCustomer(in.Name, in.Email, string(hash), opts...)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.emails[in.Email]; taken {
		return nil, ErrEmailTaken
	}
	s.customers[customer.ID] = &record{customer: customer}
	s.emails[in.Email] = customer.ID
	s.order = append(s.order, customer.ID)
	return customer, nil
}

// Lookup resolves a customer id by email.
func (s *service) Lookup(ctx context.Context, email string) (uuid.UUID, error) {
	if err := ctx.Err(); err != nil {
		return uuid.Nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.emails[normalizeEmail(email)]
	if !ok {
		return uuid.Nil, ErrCustomerNotFound
	}
	return id, nil
}

// Get returns a snapshot of the customer state.
func (s *service) Get(ctx context.Context, customerID uuid.UUID) (*CustomerView, error) {
	var view CustomerView
	err := s.withCustomer(ctx, customerID, func(c *license.Customer) error {
		view = newCustomerView(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// List returns snapshots of every customer in registration order.
func (s *service) List(ctx context.Context) ([]CustomerView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	records := make([]*record, 0, len(s.order))
	for _, id := range s.order {
		records = append(records, s.customers[id])
	}
	s.mu.RUnlock()

	views := make([]CustomerView, 0, len(records))
	for _, rec := range records {
		rec.mu.Lock()
		views = append(views, newCustomerView(rec.customer))
		rec.mu.Unlock()
	}
	return views, nil
}

// Subscribe creates the customer's only subscription.
func (s *service) Subscribe(ctx context.Context, customerID uuid.UUID, planType string) error {
	ctx = logger.WithCustomerID(ctx, customerID)
	err := s.withCustomer(ctx, customerID, func(c *license.Customer) error {
		return c.Subscribe(planType)
	})
	s.logResult(ctx, "subscribe", err, logger.PlanType(planType))
	return err
}

func (s *service) AddWebsite(ctx context.Context, customerID uuid.UUID, url string) error {
	return s.mutateSubscription(ctx, customerID, "add_website", func(sub *license.Subscription) ([]slog.Attr, error) {
		return nil, sub.AddWebsite(url)
	}, logger.URL(url))
}

// RemoveWebsite deletes websites matching url, or the last added one when url is empty.
func (s *service) RemoveWebsite(ctx context.Context, customerID uuid.UUID, url string) error {
	return s.mutateSubscription(ctx, customerID, "remove_website", func(sub *license.Subscription) ([]slog.Attr, error) {
		return nil, sub.RemoveWebsite(url)
	}, logger.URL(url))
}

func (s *service) DisableWebsite(ctx context.Context, customerID uuid.UUID, url string) error {
	return s.mutateSubscription(ctx, customerID, "disable_website", func(sub *license.Subscription) ([]slog.Attr, error) {
		return nil, sub.DisableWebsite(url)
	}, logger.URL(url))
}

// UpdatePlan moves the subscription to planType and reports which way it moved.
// The transition is TransitionRejected whenever an error is returned.
func (s *service) UpdatePlan(ctx context.Context, customerID uuid.UUID, planType string) (license.Transition, error) {
	transition := license.TransitionRejected
	err := s.mutateSubscription(ctx, customerID, "update_plan", func(sub *license.Subscription) ([]slog.Attr, error) {
		t := license.ResolveTransition(sub.Plan().Type(), planType)
		if err := sub.UpdatePlan(planType); err != nil {
			return []slog.Attr{logger.Transition(license.TransitionRejected)}, err
		}
		transition = t
		return []slog.Attr{logger.Transition(t)}, nil
	}, logger.PlanType(planType))
	return transition, err
}

// mutation changes a subscription and returns extra attributes for the outcome log.
type mutation func(*license.Subscription) ([]slog.Attr, error)

func (s *service) mutateSubscription(ctx context.Context, customerID uuid.UUID, op string, fn mutation, attrs ...slog.Attr) error {
	ctx = logger.WithCustomerID(ctx, customerID)
	enabled := -1
	err := s.withCustomer(ctx, customerID, func(c *license.Customer) error {
		if !c.HasSubscription() {
			return ErrNoSubscription
		}
		extra, err := fn(c.Subscription)
		attrs = append(attrs, extra...)
		if err != nil {
			return err
		}
		enabled = len(c.Subscription.EnabledWebsites())
		return nil
	})
	if enabled >= 0 {
		attrs = append(attrs, logger.Enabled(enabled))
	}
	s.logResult(ctx, op, err, attrs...)
	return err
}

// withCustomer runs fn while holding the customer's lock.
func (s *service) withCustomer(ctx context.Context, customerID uuid.UUID, fn func(*license.Customer) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	rec, ok := s.customers[customerID]
	s.mu.RUnlock()
	if !ok {
		return ErrCustomerNotFound
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	return fn(rec.customer)
}

func (s *service) logResult(ctx context.Context, op string, err error, attrs ...slog.Attr) {
	args := make([]any, 0, len(attrs)+3)
	args = append(args, slog.String("op", op))
	for _, a := range attrs {
		args = append(args, a)
	}
	if err != nil {
		args = append(args, logger.Error(err), logger.ErrorCode(ErrorCode(err)))
		s.logger.WarnContext(ctx, "licensing operation failed", args...)
		return
	}
	s.logger.DebugContext(ctx, "licensing operation applied", args...)
}

func planTypeOf(c *license.Customer) string {
	if !c.HasSubscription() {
		return ""
	}
	return c.Subscription.Plan().Type().String()
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

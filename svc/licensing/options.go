package licensing

import (
	"log/slog"
	"time"
)

// ServiceOption configures a Service instance.
type ServiceOption func(*service)

// WithLogger sets the service logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithBcryptCost sets the cost used to hash customer passwords.
func WithBcryptCost(cost int) ServiceOption {
	return func(s *service) {
		s.bcryptCost = cost
	}
}

// WithClock overrides the time source for subscription renewal dates.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

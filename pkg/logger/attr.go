package logger

import (
	"fmt"
	"log/slog"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ErrorCode records a stable error code under the key "error_code".
// Empty codes produce an empty Attr.
func ErrorCode(code string) slog.Attr {
	if code == "" {
		return slog.Attr{}
	}
	return slog.String("error_code", code)
}

// CustomerID records the customer identifier under the key "customer_id".
// If id is nil, it returns an empty Attr.
func CustomerID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.String("customer_id", fmt.Sprint(id))
}

// PlanType records a tier name under the key "plan_type".
func PlanType(planType any) slog.Attr {
	return slog.String("plan_type", fmt.Sprint(planType))
}

// URL records a website url under the key "url".
func URL(url string) slog.Attr {
	return slog.String("url", url)
}

// Transition records a plan transition outcome under the key "transition".
func Transition(t any) slog.Attr {
	return slog.String("transition", fmt.Sprint(t))
}

// Enabled records the enabled website count under the key "enabled_websites".
func Enabled(n int) slog.Attr {
	return slog.Int("enabled_websites", n)
}

// Step records a scenario step index under the key "step".
func Step(i int) slog.Attr {
	return slog.Int("step", i)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

package config

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// App is the runtime configuration of the licensing service.
type App struct {
	Env        string `env:"APP_ENV" envDefault:"development" validate:"required"`
	Name       string `env:"APP_NAME" envDefault:"sitelicense" validate:"required,printascii"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info" validate:"required"`
	LogFormat  string `env:"LOG_FORMAT" validate:"omitempty,oneof=json text"`
	BcryptCost int    `env:"BCRYPT_COST" envDefault:"10" validate:"min=4,max=31"`
}

var appValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate reports settings that would fail later at runtime.
func (a App) Validate() error {
	if err := appValidator.Struct(a); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}

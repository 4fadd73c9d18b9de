package validator

import (
	"fmt"

	playground "github.com/go-playground/validator/v10"

	"landledger/pkg/ledgererr"
)

// Validator adapts go-playground/validator to echo.Validator so controllers
// can call c.Validate(&req) on bound requests.
type Validator struct {
	v *playground.Validate
}

func New() *Validator {
	return &Validator{v: playground.New()}
}

func (cv *Validator) Validate(i interface{}) error {
	if err := cv.v.Struct(i); err != nil {
		return fmt.Errorf("%w: %v", ledgererr.ErrValidation, err)
	}
	return nil
}

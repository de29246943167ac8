package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"banksampah-backend/internal/domain"
)

var validate = validator.New()

// checkInput runs struct-tag validation and folds failures into the
// ErrValidation taxonomy so callers match them with errors.Is.
func checkInput(input any) error {
	if err := validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return nil
}

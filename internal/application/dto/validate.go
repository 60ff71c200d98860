package dto

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/hubber-api/internal/domain"
)

// validate instancia compartida: las reglas viven en los tags de los DTOs y se
// aplican igual en los caminos de creación y de actualización.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate ejecuta las reglas declaradas en los tags del DTO. Devuelve un error
// que envuelve domain.ErrInvalidInput para que la capa HTTP lo mapee a 400.
func Validate(in any) error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}
	return nil
}

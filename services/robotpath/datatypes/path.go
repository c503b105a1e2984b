// Package datatypes defines the JSON request/response shapes for the
// robotpath HTTP API and the validator instance used to check them.
package datatypes

import (
	"github.com/go-playground/validator/v10"
)

// pathValidate is the shared validator instance for this package, with the
// "direction" custom validator registered once at init time.
var pathValidate *validator.Validate

func init() {
	pathValidate = validator.New()
	_ = pathValidate.RegisterValidation("direction", validateDirection)
}

var validDirections = map[string]bool{
	"east": true, "west": true, "north": true, "south": true,
}

func validateDirection(fl validator.FieldLevel) bool {
	return validDirections[fl.Field().String()]
}

// Point is a position on the integer lattice.
type Point struct {
	X int64 `json:"x"`
	Y int64 `json:"y"`
}

// CommandDTO is one leg of the requested path.
type CommandDTO struct {
	Direction string `json:"direction" validate:"required,direction"`
	Steps     uint32 `json:"steps"`
}

// EnterPathRequest is the body of POST /tibber-developer-test/enter-path.
type EnterPathRequest struct {
	Start    Point        `json:"start"`
	Commands []CommandDTO `json:"commands" validate:"required,min=1,dive"`
}

// Validate checks field-level constraints using go-playground/validator.
// It does not check that Commands is non-empty-semantically beyond min=1;
// deeper checks (valid direction enum) are covered by the "direction" tag.
func (r *EnterPathRequest) Validate() error {
	return pathValidate.Struct(r)
}

// EnterPathResponse is returned on success with HTTP 201.
type EnterPathResponse struct {
	ID        int64   `json:"id"`
	Timestamp string  `json:"Timestamp"`
	Commands  int     `json:"Commands"`
	Result    uint64  `json:"Result"`
	Duration  float64 `json:"Duration"`
	Message   string  `json:"message"`
}

// ErrorResponse is returned on any failure, always as HTTP 500 per the
// documented error-mapping policy.
type ErrorResponse struct {
	Error string `json:"error"`
}

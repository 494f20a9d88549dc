package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(gameValidation, Game{})
	v.RegisterStructValidation(substitutionValidation, Substitution{})
	return v
}

func gameValidation(sl validator.StructLevel) {
	g := sl.Current().Interface().(Game)
	if g.HomeTeamId == g.AwayTeamId {
		sl.ReportError(g.AwayTeamId, "AwayTeamId", "awayTeamId", "distinct_teams", "")
	}
}

func substitutionValidation(sl validator.StructLevel) {
	s := sl.Current().Interface().(Substitution)
	if s.InPlayerId == s.OutPlayerId {
		sl.ReportError(s.InPlayerId, "InPlayerId", "inPlayerId", "distinct_players", "")
	}
}

// ValidationError lists the fields whose declared constraints a record
// violates, keyed by struct field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, e.Fields[k])
	}
	return "invalid record: " + strings.Join(msgs, "; ")
}

// Validate checks a record against its field constraints: length caps,
// required references and enum membership.
func Validate(record any) error {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fe.Field(), fe.Tag())
	}
	return &ValidationError{Fields: fields}
}

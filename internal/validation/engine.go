// Package validation checks request payloads before they reach the store.
//
// Checks run in three passes: structural rules declared as struct tags,
// cross-field rules, then uniqueness lookups against persisted rows. Every
// violation is collected; uniqueness is only checked for fields that passed
// the structural pass.
package validation

import (
	"context"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/store"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var (
	alphaSpaceRe = regexp.MustCompile(`^[A-Za-z\s]+$`)
	digitsRe     = regexp.MustCompile(`^\d+$`)
)

const passwordSymbols = "!@#$%^&*()_+"

type Engine struct {
	validate  *validator.Validate
	customers *store.Repo[models.Customer]
	employees *store.Repo[models.Employee]
	jobs      *store.Repo[models.Job]
}

var customRules = map[string]validator.Func{
	"alphaspace": func(fl validator.FieldLevel) bool {
		return alphaSpaceRe.MatchString(fl.Field().String())
	},
	"digits": func(fl validator.FieldLevel) bool {
		return digitsRe.MatchString(fl.Field().String())
	},
}

func registerRules(v *validator.Validate, rules map[string]validator.Func) error {
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %q rule: %w", tag, err)
		}
	}
	return nil
}

// NewEngine panics if a custom rule cannot be registered.
func NewEngine(db *gorm.DB) *Engine {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	if err := registerRules(v, customRules); err != nil {
		panic(err)
	}

	return &Engine{
		validate:  v,
		customers: store.NewRepo[models.Customer](db),
		employees: store.NewRepo[models.Employee](db),
		jobs:      store.NewRepo[models.Job](db),
	}
}

// report accumulates violations for one payload.
type report struct {
	fields []apperr.FieldError
	failed map[string]bool
}

func newReport() *report {
	return &report{failed: map[string]bool{}}
}

func (r *report) add(fe apperr.FieldError) {
	r.fields = append(r.fields, fe)
	r.failed[fe.Field] = true
}

// ok reports whether field passed every check so far.
func (r *report) ok(field string) bool {
	return !r.failed[field]
}

func (r *report) err() error {
	if len(r.fields) == 0 {
		return nil
	}
	return apperr.Violations(r.fields)
}

// structural runs the tag rules on payload.
func (e *Engine) structural(payload any, r *report) {
	err := e.validate.Struct(payload)
	if err == nil {
		return
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		r.add(apperr.FieldError{Field: "body", Code: "invalid", Message: "Invalid request body"})
		return
	}
	for _, fe := range verrs {
		r.add(describe(fe))
	}
}

func checkPassword(field, value string, r *report) {
	if value == "" {
		return
	}
	for _, fe := range passwordStrength(field, value) {
		r.add(fe)
	}
}

func checkConfirm(password, field, confirm string, r *report) {
	if password == "" || confirm == "" {
		return
	}
	if password != confirm {
		r.add(apperr.FieldError{Field: field, Code: "password_mismatch", Message: "Passwords do not match"})
	}
}

// unique adds a taken violation when another row of repo holds value.
func unique[T any](ctx context.Context, repo *store.Repo[T], r *report, field, column, value string, excludeID uint) error {
	if value == "" || !r.ok(field) {
		return nil
	}
	taken, err := repo.Taken(ctx, column, value, excludeID)
	if err != nil {
		return err
	}
	if taken {
		label := labelFor(field)
		r.add(apperr.FieldError{
			Field:   field,
			Code:    "taken",
			Message: label + " already exists",
			Params:  map[string]any{"Field": label},
			Unique:  true,
		})
	}
	return nil
}

// passwordStrength returns one violation per missing character class.
func passwordStrength(field, value string) []apperr.FieldError {
	var out []apperr.FieldError
	if !strings.ContainsFunc(value, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		out = append(out, apperr.FieldError{Field: field, Code: "password_uppercase", Message: "Password must contain at least one uppercase letter"})
	}
	if !strings.ContainsFunc(value, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		out = append(out, apperr.FieldError{Field: field, Code: "password_lowercase", Message: "Password must contain at least one lowercase letter"})
	}
	if !strings.ContainsFunc(value, func(r rune) bool { return r >= '0' && r <= '9' }) {
		out = append(out, apperr.FieldError{Field: field, Code: "password_number", Message: "Password must contain at least one number"})
	}
	if !strings.ContainsAny(value, passwordSymbols) {
		out = append(out, apperr.FieldError{Field: field, Code: "password_special", Message: "Password must contain at least one special character"})
	}
	return out
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

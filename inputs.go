package startupmetrics

import (
	"errors"
	"math"
	"reflect"
	"strings"

	"github.com/blackroad/startupmetrics/period"
	"github.com/go-playground/validator/v10"
)

// StartupInput carries the fields to register a startup.
type StartupInput struct {
	Name        string `json:"name" validate:"required"`
	FoundedDate string `json:"founded_date"`
	Stage       string `json:"stage"` // empty defaults to store.DefaultStage
}

// CustomerInput carries the fields to record a new paying customer.
type CustomerInput struct {
	Name  string  `json:"name" validate:"required"`
	MRR   float64 `json:"mrr" validate:"finite,gte=0"`
	Plan  string  `json:"plan"` // empty defaults to store.DefaultPlan
	Notes string  `json:"notes"`
}

// EmployeeInput carries the fields to record a hire.
type EmployeeInput struct {
	Name       string  `json:"name" validate:"required"`
	Role       string  `json:"role" validate:"required"`
	Department string  `json:"department"` // empty defaults to store.DefaultDepartment
	Salary     float64 `json:"salary" validate:"finite,gte=0"`
}

// FundingInput carries the fields to record a closed funding round.
type FundingInput struct {
	RoundName string   `json:"round_name" validate:"required"`
	Amount    float64  `json:"amount" validate:"finite,gte=0"`
	Valuation *float64 `json:"valuation" validate:"omitempty,finite,gte=0"`
	Investors []string `json:"investors"`
	Notes     string   `json:"notes"`
}

// MetricInput carries the fields to record a raw KPI point. Value may be
// negative (a metric can track a loss) but never NaN or infinite.
type MetricInput struct {
	MetricType string       `json:"metric_type" validate:"required"`
	Value      float64      `json:"value" validate:"finite"`
	Period     period.Month `json:"period"` // zero records against the current month
	Notes      string       `json:"notes"`
}

// newValidator returns the validator every write operation screens its
// inputs with, before anything is read or written.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("finite", isFinite)
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// isFinite rejects NaN and infinities on numeric fields.
func isFinite(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// checkInput screens a write input, turning the first violation into an
// InvalidArgumentError.
func (s *Service) checkInput(input any) error {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}
	var violations validator.ValidationErrors
	if errors.As(err, &violations) && len(violations) > 0 {
		fe := violations[0]
		return &InvalidArgumentError{Field: fe.Field(), Reason: reason(fe)}
	}
	return err
}

// checkValue screens a single named value outside any input struct.
func (s *Service) checkValue(name string, value any, rules string) error {
	err := s.validate.Var(value, rules)
	if err == nil {
		return nil
	}
	var violations validator.ValidationErrors
	if errors.As(err, &violations) && len(violations) > 0 {
		return &InvalidArgumentError{Field: name, Reason: reason(violations[0])}
	}
	return err
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "gte":
		return "must not be negative"
	case "finite":
		return "must be a finite number"
	default:
		return "fails rule " + fe.Tag()
	}
}

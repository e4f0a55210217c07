package helper

import (
	"errors"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	reUsername = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9._\-]*[a-zA-Z0-9]$`)
	reTelefono = regexp.MustCompile(`^\+?[0-9(][0-9.\-() ]*[0-9]$`)
	reCodFisc  = regexp.MustCompile(`^[A-Z]{6}[0-9LMNPQRSTUV]{2}[A-EHLMPRST][0-9LMNPQRSTUV]{2}[A-Z][0-9LMNPQRSTUV]{3}[A-Z]$`)

	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared instance. Field names in errors are the json
// names, which match the column names.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		mustRegister(v, "notblank", validators.NotBlank)
		mustRegister(v, "username", matchString(reUsername))
		mustRegister(v, "telefono", matchString(reTelefono))
		mustRegister(v, "codfisc", matchString(reCodFisc))
		validate = v
	})
	return validate
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func matchString(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		f := fl.Field()
		if f.Kind() != reflect.String {
			return false
		}
		return re.MatchString(f.String())
	}
}

// RegisterStructValidation must be called from init() of the model packages.
func RegisterStructValidation(fn validator.StructLevelFunc, types ...interface{}) {
	Validator().RegisterStructValidation(fn, types...)
}

// ValidationErrors maps a field name to its message key (field.notblank, field.choice, ...).
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v[k])
		b.WriteString("\n")
	}
	return b.String()
}

// Has reports whether field failed with the given message key.
func (v ValidationErrors) Has(field, key string) bool {
	return v[field] == key
}

// Validate runs the declared tags of s.
func Validate(s interface{}) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make(ValidationErrors, len(verrs))
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = messageKey(fe)
	}
	return out
}

func messageKey(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required", "notblank":
		return "field.notblank"
	case "oneof", "choice":
		return "field.choice"
	case "max", "lte":
		if isString {
			return "field.maxlength"
		}
		return "field.lessthanorequal"
	case "min", "gte":
		if isString {
			return "field.minlength"
		}
		return "field.greaterthanorequal"
	case "gt":
		return "field.positive"
	case "email":
		return "field.email"
	case "url":
		return "field.url"
	case "telefono":
		return "field.phone"
	case "username", "codfisc":
		return "field.regex"
	case "timerange":
		return "field.time"
	default:
		return "field.invalid"
	}
}

package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"strings"

	val "github.com/go-playground/validator/v10"

	"salonbooking/shared/constant"
	"salonbooking/shared/failure"
	"salonbooking/shared/timezone"
)

var (
	validate *val.Validate

	personNamePattern = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s'-]+$`)
	phonePrefix       = regexp.MustCompile(`^\+\d{1,4}$`)
)

func registerTimeOfDay(field val.FieldLevel) bool {
	return timezone.IsValidTime(field.Field().String())
}

func registerISODate(field val.FieldLevel) bool {
	return timezone.IsValidDate(field.Field().String())
}

func registerPersonName(field val.FieldLevel) bool {
	return personNamePattern.MatchString(strings.TrimSpace(field.Field().String()))
}

func registerPhonePrefix(field val.FieldLevel) bool {
	return phonePrefix.MatchString(field.Field().String())
}

// registerPastDate accepts yyyy-MM-dd values strictly before today in the application timezone.
func registerPastDate(field val.FieldLevel) bool {
	value := field.Field().String()
	if !timezone.IsValidDate(value) {
		return false
	}

	return value < timezone.Today()
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return constant.Empty
	}

	if name == constant.Empty {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	custom := map[string]val.Func{
		"hhmm":        registerTimeOfDay,
		"isodate":     registerISODate,
		"personname":  registerPersonName,
		"phoneprefix": registerPhonePrefix,
		"pastdate":    registerPastDate,
	}

	for tag, fn := range custom {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	if err := Decode(r, data); err != nil {
		return err
	}

	return ValidateStruct(data)
}

// Decode reads a JSON body without running the validation rules, for steps that check their
// own guards before validating.
func Decode[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(io.LimitReader(r, constant.RequestMaxBodyBytes))

	if err := decoder.Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return nil
}

// ValidateStruct reports the first failing rule as the message and every failing field in Fields.
func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		return failure.InvalidFields(message(err), fields(err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

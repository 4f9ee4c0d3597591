package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"frontdesk/shared/failure"
	"frontdesk/shared/phone"
	"frontdesk/shared/stay"

	val "github.com/go-playground/validator/v10"
)

var validate = newValidate()

// customTags validate string fields only. Any other kind fails the tag.
var customTags = map[string]func(string) bool{
	"date": func(value string) bool {
		_, err := stay.ParseDate(value)

		return err == nil
	},
	"phone": phone.Plausible,
}

func newValidate() *val.Validate {
	v := val.New(val.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(jsonName)

	for tag, check := range customTags {
		err := v.RegisterValidation(tag, func(field val.FieldLevel) bool {
			value, ok := field.Field().Interface().(string)

			return ok && check(value)
		})
		if err != nil {
			panic(err)
		}
	}

	return v
}

// jsonName reports fields by the name clients send them under.
func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return field.Name
	}

	return name
}

// Validate decodes a JSON body from r into data and validates it.
// Decode and rule failures both come back as a 400 failure.
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

package pos

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// NewValidator returns a validator that knows the POS enum rules and
// reports fields by their JSON names.
func NewValidator() (*validator.Validate, error) {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		return nil, err
	}
	if err := v.RegisterValidation("pos_type", func(fl validator.FieldLevel) bool {
		return PosType(fl.Field().String()).Valid()
	}); err != nil {
		return nil, err
	}
	if err := v.RegisterValidation("campus_type", func(fl validator.FieldLevel) bool {
		return CampusType(fl.Field().String()).Valid()
	}); err != nil {
		return nil, err
	}
	return v, nil
}

// validateRequests checks every request and merges the failures into one
// ValidationError. Fields of batch items are prefixed with their index.
func validateRequests(v *validator.Validate, reqs []PosRequest) error {
	fields := map[string]string{}
	for i, req := range reqs {
		err := v.Struct(req)
		if err == nil {
			continue
		}
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			key := fe.Field()
			if len(reqs) > 1 {
				key = fmt.Sprintf("[%d].%s", i, key)
			}
			fields[key] = describe(fe)
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "notblank":
		return "must not be blank"
	case "max":
		return "must be at most " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "pos_type":
		return fmt.Sprintf("must be one of %v", PosTypes)
	case "campus_type":
		return fmt.Sprintf("must be one of %v", CampusTypes)
	default:
		return "failed " + fe.Tag()
	}
}

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"wordrobe/internal/models"
)

const maxBodyBytes = 1 << 16

var (
	validate *validator.Validate
	trans    ut.Translator
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// report json names in messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	english := en.New()
	trans, _ = ut.New(english, english).GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		panic(fmt.Sprintf("failed to register validator translations: %v", err))
	}
}

// validationError lists the translated messages of failed fields
type validationError struct {
	fields []string
}

func (e *validationError) Error() string {
	return "validation failed: " + strings.Join(e.fields, "; ")
}

func (e *validationError) Unwrap() error {
	return models.ErrInvalidInput
}

// decodeAndValidate reads a JSON body into dst and validates it. An empty
// body leaves dst at its zero value.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) error {
	if r.Body != nil {
		decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("%s: %w", ErrInvalidRequestBody, models.ErrInvalidInput)
		}
	}

	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			messages := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				messages = append(messages, fe.Translate(trans))
			}
			return &validationError{fields: messages}
		}
		return fmt.Errorf("%v: %w", err, models.ErrInvalidInput)
	}
	return nil
}

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"school-backend/models"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

var validate = newValidator()

// newValidator reports fields under their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// parsePage читает limit и offset из query string. По умолчанию limit равен
// defaultLimit, offset равен 0.
func parsePage(r *http.Request, defaultLimit int) (models.Page, error) {
	page := models.Page{Limit: defaultLimit}

	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return page, fmt.Errorf("invalid limit '%s'", v)
		}
		page.Limit = limit
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil {
			return page, fmt.Errorf("invalid offset '%s'", v)
		}
		page.Offset = offset
	}

	if err := validate.Struct(page); err != nil {
		return page, validationMessage(err)
	}
	return page, nil
}

func pathUint(r *http.Request, name string) (uint, error) {
	v := mux.Vars(r)[name]
	id, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s '%s'", name, v)
	}
	return uint(id), nil
}

func pathInt(r *http.Request, name string) (int64, error) {
	v := mux.Vars(r)[name]
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s '%s'", name, v)
	}
	return n, nil
}

// validationMessage converts validator errors to a single readable message.
func validationMessage(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	parts := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		field := e.Field()
		switch e.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", field))
		case "min":
			parts = append(parts, fmt.Sprintf("%s must be at least %s", field, e.Param()))
		case "max":
			parts = append(parts, fmt.Sprintf("%s must be at most %s", field, e.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", field))
		}
	}
	return errors.New(strings.Join(parts, "; "))
}

func routeVar(r *http.Request, name string) string {
	return mux.Vars(r)[name]
}

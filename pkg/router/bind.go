package router

import (
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/devtask-ledger/backend/pkg/errorx"
	"github.com/go-chi/chi/v5"
)

// bindRequest fills a request struct from the URL. Each exported field is
// looked up by its json tag, path parameters first, then the query string.
func bindRequest(req *http.Request, v any) error {
	value := reflect.ValueOf(v).Elem()
	t := value.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}

		raw := chi.URLParam(req, name)
		if raw == "" {
			raw = req.URL.Query().Get(name)
		}

		if raw == "" {
			continue
		}

		if err := setField(value.Field(i), name, raw); err != nil {
			return err
		}
	}

	return nil
}

func setField(field reflect.Value, name, raw string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return errorx.New(errorx.BadRequest, "Parameter %s must be an integer", name)
		}

		field.SetInt(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return errorx.New(errorx.BadRequest, "Parameter %s must be a boolean", name)
		}

		field.SetBool(b)
	default:
		return errorx.New(errorx.Internal, "Unsupported parameter type for %s", name)
	}

	return nil
}

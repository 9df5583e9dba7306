// Package bind decodes an HTTP form submission into a struct and runs
// validation over it.
package bind

import (
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/grocerly/grocerly/pkg/validate"
)

// Form parses an application/x-www-form-urlencoded body into dest and
// validates it. Field names come from the `form` tag (falling back to `json`,
// then the lowercased Go name).
//
// Returns (errs, nil) when there are binding or validation failures — the
// handler re-renders the form with them. Returns (nil, err) only when the
// request body itself cannot be parsed.
func Form(r *http.Request, dest interface{}) (map[string]string, error) {
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("bind: parse form: %w", err)
	}

	errs := setFields(r.PostForm, dest)

	for name, msg := range validate.Struct(dest) {
		if _, bound := errs[name]; !bound {
			errs[name] = msg
		}
	}

	if len(errs) > 0 {
		return errs, nil
	}
	return nil, nil
}

// setFields copies form values onto dest's fields, collecting a conversion
// error per field that cannot be parsed into its Go type.
func setFields(form map[string][]string, dest interface{}) map[string]string {
	errs := make(map[string]string)

	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return errs
	}
	rv = rv.Elem()
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		value := rv.Field(i)
		if !value.CanSet() {
			continue
		}

		name := validate.FieldName(field)
		vals, ok := form[name]
		if !ok || len(vals) == 0 {
			continue
		}
		raw := strings.TrimSpace(vals[0])

		switch value.Kind() {
		case reflect.String:
			value.SetString(raw)

		case reflect.Float32, reflect.Float64:
			if raw == "" {
				continue
			}
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				errs[name] = fmt.Sprintf("The %s field must be a number.", name)
				continue
			}
			value.SetFloat(f)

		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if raw == "" {
				continue
			}
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				errs[name] = fmt.Sprintf("The %s field must be an integer.", name)
				continue
			}
			value.SetInt(n)

		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if raw == "" {
				continue
			}
			n, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				errs[name] = fmt.Sprintf("The %s field must be an integer.", name)
				continue
			}
			value.SetUint(n)

		case reflect.Bool:
			value.SetBool(raw == "true" || raw == "1" || raw == "on")
		}
	}

	return errs
}

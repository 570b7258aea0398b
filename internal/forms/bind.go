package forms

import (
	"net/url"
	"reflect"
	"strings"
)

// Bind copies values into the string fields of the struct dst points to,
// matching each field's `form` tag. Fields of other kinds are skipped.
func Bind(values url.Values, dst interface{}) {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return
	}
	v = v.Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" || field.Type.Kind() != reflect.String {
			continue
		}
		if vals, ok := values[name]; ok && len(vals) > 0 {
			v.Field(i).SetString(vals[0])
		}
	}
}

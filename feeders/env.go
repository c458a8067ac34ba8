package feeders

import (
	"reflect"
	"strings"

	"github.com/golobby/cast"
)

// lookupFunc returns the value stored under an environment name.
type lookupFunc func(name string) (string, bool)

// envName builds PREFIX_TAG_SUFFIX, skipping empty affixes.
func envName(tag, prefix, suffix string) string {
	name := strings.ToUpper(tag)
	if prefix != "" {
		name = strings.ToUpper(prefix) + "_" + name
	}
	if suffix != "" {
		name = name + "_" + strings.ToUpper(suffix)
	}
	return name
}

// fillStruct sets every field carrying an `env` tag from lookup. Embedded
// and nested structs are walked.
func fillStruct(rv reflect.Value, prefix, suffix string, lookup lookupFunc) error {
	rt := rv.Type()
	for i := range rv.NumField() {
		field := rv.Field(i)
		fieldType := rt.Field(i)
		if !fieldType.IsExported() {
			continue
		}

		switch {
		case field.Kind() == reflect.Struct:
			if err := fillStruct(field, prefix, suffix, lookup); err != nil {
				return err
			}
		case field.Kind() == reflect.Pointer && !field.IsNil() && field.Elem().Kind() == reflect.Struct:
			if err := fillStruct(field.Elem(), prefix, suffix, lookup); err != nil {
				return err
			}
		default:
			tag, ok := fieldType.Tag.Lookup("env")
			if !ok {
				continue
			}
			name := envName(tag, prefix, suffix)
			value, found := lookup(name)
			if !found || value == "" {
				continue
			}
			if err := setFieldValue(field, name, value); err != nil {
				return err
			}
		}
	}
	return nil
}

func setFieldValue(field reflect.Value, name, value string) error {
	if !field.CanSet() {
		return ErrEnvFieldCannotBeSet
	}
	converted, err := cast.FromType(value, field.Type())
	if err != nil {
		return wrapConversionError(name, field.Type(), err)
	}
	field.Set(reflect.ValueOf(converted).Convert(field.Type()))
	return nil
}

func structTarget(target any) (reflect.Value, bool) {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	return rv.Elem(), true
}

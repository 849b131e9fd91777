package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

var (
	ErrEmptyPatch          = errors.New("patch must contain at least one field")
	ErrUnknownPatchField   = errors.New("unknown patch field")
	ErrImmutablePatchField = errors.New("patch field is immutable")
	ErrInvalidPatchValue   = errors.New("invalid patch value")
)

var immutableFields = map[string]bool{
	"id":         true,
	"owner_id":   true,
	"created_at": true,
	"updated_at": true,
}

// fieldIndexCache maps a struct type to its json-name -> field index table
var fieldIndexCache sync.Map

func jsonFieldIndex(t reflect.Type) map[string]int {
	if cached, ok := fieldIndexCache.Load(t); ok {
		return cached.(map[string]int)
	}

	index := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}
		index[name] = i
	}

	fieldIndexCache.Store(t, index)
	return index
}

func structType(model interface{}) (reflect.Type, error) {
	t := reflect.TypeOf(model)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("patch target must be a struct, got %T", model)
	}
	return t, nil
}

// NormalizePatch converts a JSON-decoded patch into values typed like the fields of model.
// Keys are json field names, which are also the column names.
func NormalizePatch(model interface{}, patch map[string]interface{}) (map[string]interface{}, error) {
	if len(patch) == 0 {
		return nil, ErrEmptyPatch
	}

	t, err := structType(model)
	if err != nil {
		return nil, err
	}
	index := jsonFieldIndex(t)

	normalized := make(map[string]interface{}, len(patch))
	for key, raw := range patch {
		if immutableFields[key] {
			return nil, fmt.Errorf("%w: %s", ErrImmutablePatchField, key)
		}

		i, ok := index[key]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPatchField, key)
		}

		fieldType := t.Field(i).Type
		if raw == nil && fieldType.Kind() != reflect.Ptr {
			return nil, fmt.Errorf("%w: %s cannot be null", ErrInvalidPatchValue, key)
		}

		encoded, err := json.Marshal(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPatchValue, key, err)
		}

		typed := reflect.New(fieldType)
		if err := json.Unmarshal(encoded, typed.Interface()); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPatchValue, key, err)
		}

		normalized[key] = typed.Elem().Interface()
	}

	return normalized, nil
}

// ApplyPatch shallow-merges a normalized patch into dst, which must be a pointer to a struct.
// Fields absent from the patch are left untouched.
func ApplyPatch(dst interface{}, patch map[string]interface{}) error {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("patch destination must be a non-nil struct pointer, got %T", dst)
	}
	v = v.Elem()
	index := jsonFieldIndex(v.Type())

	for key, value := range patch {
		i, ok := index[key]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownPatchField, key)
		}

		field := v.Field(i)
		if value == nil {
			field.Set(reflect.Zero(field.Type()))
			continue
		}

		rv := reflect.ValueOf(value)
		if !rv.Type().AssignableTo(field.Type()) {
			return fmt.Errorf("%w: %s expects %s, got %T", ErrInvalidPatchValue, key, field.Type(), value)
		}
		field.Set(rv)
	}

	return nil
}

/*
 *    Copyright 2023 iFood
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

package envelope

import (
	"encoding"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

var (
	jsonMarshalerType = reflect.TypeOf((*json.Marshaler)(nil)).Elem()
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

// sanitize rebuilds value out of maps, slices and scalars json.Marshal always
// accepts. Anything else (non finite floats, complex numbers, channels,
// functions, reference cycles) becomes its fmt representation.
func sanitize(value any) any {
	return sanitizeValue(reflect.ValueOf(value), make(map[uintptr]bool))
}

//nolint:cyclop
func sanitizeValue(v reflect.Value, seen map[uintptr]bool) any {
	if !v.IsValid() {
		return nil
	}

	if v.Type().Implements(jsonMarshalerType) || v.Type().Implements(textMarshalerType) {
		if data, err := json.Marshal(v.Interface()); err == nil {
			return json.RawMessage(data)
		}

		return fmt.Sprint(v.Interface())
	}

	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return nil
		}

		return sanitizeValue(v.Elem(), seen)
	case reflect.Pointer:
		if v.IsNil() {
			return nil
		}

		return visit(v, seen, func() any { return sanitizeValue(v.Elem(), seen) })
	case reflect.Map:
		if v.IsNil() {
			return nil
		}

		return visit(v, seen, func() any {
			out := make(map[string]any, v.Len())
			iter := v.MapRange()
			for iter.Next() {
				out[fmt.Sprint(iter.Key().Interface())] = sanitizeValue(iter.Value(), seen)
			}

			return out
		})
	case reflect.Slice:
		if v.IsNil() {
			return nil
		}

		if v.Type().Elem().Kind() == reflect.Uint8 {
			return v.Interface()
		}

		return visit(v, seen, func() any { return sanitizeList(v, seen) })
	case reflect.Array:
		return sanitizeList(v, seen)
	case reflect.Struct:
		return sanitizeStruct(v, seen)
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return strconv.FormatFloat(f, 'g', -1, 64)
		}

		return f
	case reflect.Complex64, reflect.Complex128, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return fmt.Sprint(v.Interface())
	default:
		return v.Interface()
	}
}

// visit guards reference types against cycles: a value already on the current
// path is replaced by its address.
func visit(v reflect.Value, seen map[uintptr]bool, fn func() any) any {
	ptr := v.Pointer()
	if seen[ptr] {
		return fmt.Sprintf("<cycle %s 0x%x>", v.Type(), ptr)
	}

	seen[ptr] = true
	defer delete(seen, ptr)

	return fn()
}

func sanitizeList(v reflect.Value, seen map[uintptr]bool) []any {
	out := make([]any, v.Len())
	for i := 0; i < v.Len(); i++ {
		out[i] = sanitizeValue(v.Index(i), seen)
	}

	return out
}

func sanitizeStruct(v reflect.Value, seen map[uintptr]bool) map[string]any {
	out := make(map[string]any)
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name, omitEmpty, skip := parseTag(field)
		if skip || (omitEmpty && v.Field(i).IsZero()) {
			continue
		}

		out[name] = sanitizeValue(v.Field(i), seen)
	}

	return out
}

func parseTag(field reflect.StructField) (name string, omitEmpty, skip bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}

	parts := strings.Split(tag, ",")
	name = parts[0]
	if name == "" {
		name = field.Name
	}

	for _, option := range parts[1:] {
		if option == "omitempty" {
			omitEmpty = true
		}
	}

	return name, omitEmpty, false
}

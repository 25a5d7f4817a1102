package log

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"
)

func mergeFields(receiver map[string]any, input map[string]any) map[string]any {
	newMap := make(map[string]any, len(receiver)+len(input))

	for k, v := range receiver {
		if k == "" {
			continue
		}

		newMap[k] = prepareForLog(v)
	}

	for k, v := range input {
		if k == "" {
			continue
		}

		newMap[k] = prepareForLog(v)
	}

	return newMap
}

func prepareForLog(v any) any {
	switch t := v.(type) {
	case error:
		// encoding/json drops errors otherwise
		return t.Error()
	case time.Time:
		return v
	case map[string]any:
		return mergeFields(t, nil)
	default:
		rv := reflect.ValueOf(v)

		switch rv.Kind() {
		case reflect.Map:
			iter := rv.MapRange()
			newMap := make(map[string]any, rv.Len())

			for iter.Next() {
				key := fmt.Sprint(iter.Key().Interface())
				if key == "" {
					continue
				}

				newMap[key] = prepareForLog(iter.Value().Interface())
			}

			return newMap

		case reflect.Ptr, reflect.Interface:
			if rv.IsNil() {
				return nil
			}

			return prepareForLog(rv.Elem().Interface())

		case reflect.Struct:
			rvt := rv.Type()
			newMap := make(map[string]any, rv.NumField())

			for i := 0; i < rv.NumField(); i++ {
				field := rv.Field(i)
				if !field.CanInterface() {
					continue
				}

				newMap[rvt.Field(i).Name] = prepareForLog(field.Interface())
			}

			return newMap

		case reflect.Slice, reflect.Array:
			if rv.Kind() == reflect.Slice && rv.IsNil() {
				return nil
			}

			newArray := make([]any, rv.Len())

			for i := range newArray {
				newArray[i] = prepareForLog(rv.Index(i).Interface())
			}

			return newArray

		default:
			return v
		}
	}
}

// fieldsAsString renders fields ordered by key, e.g. "AppName: Test, Version: 1.2.3".
func fieldsAsString(fields map[string]any) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%v: %v", k, fields[k]))
	}

	return strings.Join(parts, ", ")
}

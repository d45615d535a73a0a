package typelog

import (
	"fmt"
	"reflect"
	"strings"
)

// Maximum recursion depth to prevent stack overflow on deeply nested values.
const maxDumpDepth = 10

// Dump writes the contents of v through the raw destination, bypassing the
// line format entirely. Structs dump their exported fields, maps and slices
// their elements, basic types their values. Useful for dropping serialized
// object state into the same file the formatted entries go to.
func (l *Logger) Dump(v interface{}) error {
	if l == nil {
		return nil
	}

	var b strings.Builder
	if v == nil {
		b.WriteString("<nil>\n")
	} else {
		// Track visited pointers to prevent infinite recursion on cycles.
		visited := make(map[uintptr]bool)
		dumpValue(&b, v, "", visited, 0)
	}

	_, err := l.dest.Write([]byte(b.String()))
	return err
}

// dumpValue is the recursive helper for Dump.
func dumpValue(b *strings.Builder, v interface{}, prefix string, visited map[uintptr]bool, depth int) {
	if depth > maxDumpDepth {
		fmt.Fprintf(b, "%s: <max depth reached>\n", prefix)
		return
	}

	if v == nil {
		fmt.Fprintf(b, "%s: <nil>\n", prefix)
		return
	}

	val := reflect.ValueOf(v)

	// Unwrap interfaces and pointers, with cycle detection.
	for {
		switch val.Kind() {
		case reflect.Interface:
			if val.IsNil() {
				fmt.Fprintf(b, "%s: <nil>\n", prefix)
				return
			}
			val = val.Elem()
			continue
		case reflect.Ptr:
			if val.IsNil() {
				fmt.Fprintf(b, "%s: <nil>\n", prefix)
				return
			}
			ptr := val.Pointer()
			if visited[ptr] {
				fmt.Fprintf(b, "%s: <circular reference>\n", prefix)
				return
			}
			visited[ptr] = true
			val = val.Elem()
		default:
		}
		break
	}

	typ := val.Type()

	switch val.Kind() {
	case reflect.Struct:
		if prefix == "" {
			fmt.Fprintf(b, "Struct: %s\n", typ.Name())
		} else {
			fmt.Fprintf(b, "%s: %s {\n", prefix, typ.Name())
		}

		for i := 0; i < val.NumField(); i++ {
			field := typ.Field(i)
			fieldVal := val.Field(i)

			// Skip unexported fields
			if !fieldVal.CanInterface() {
				continue
			}

			fieldPrefix := field.Name
			if prefix != "" {
				fieldPrefix = prefix + "." + field.Name
			}

			dumpValue(b, fieldVal.Interface(), fieldPrefix, visited, depth+1)
		}

		if prefix != "" {
			fmt.Fprintf(b, "%s: }\n", prefix)
		}

	case reflect.Map:
		fmt.Fprintf(b, "%s: map[%s]%s (len: %d) {\n",
			prefix, typ.Key().String(), typ.Elem().String(), val.Len())

		iter := val.MapRange()
		for iter.Next() {
			keyStr := fmt.Sprintf("%v", iter.Key().Interface())
			dumpValue(b, iter.Value().Interface(), prefix+"["+keyStr+"]", visited, depth+1)
		}

		fmt.Fprintf(b, "%s: }\n", prefix)

	case reflect.Slice, reflect.Array:
		fmt.Fprintf(b, "%s: %s (len: %d) {\n", prefix, typ.String(), val.Len())

		// Limit the number of elements for large slices/arrays
		const maxElements = 10
		for i := 0; i < val.Len() && i < maxElements; i++ {
			dumpValue(b, val.Index(i).Interface(), fmt.Sprintf("%s[%d]", prefix, i), visited, depth+1)
		}
		if val.Len() > maxElements {
			fmt.Fprintf(b, "%s: ... (%d more elements)\n", prefix, val.Len()-maxElements)
		}

		fmt.Fprintf(b, "%s: }\n", prefix)

	default:
		if val.IsValid() && val.CanInterface() {
			fmt.Fprintf(b, "%s: %v\n", prefix, val.Interface())
		} else {
			fmt.Fprintf(b, "%s: %v\n", prefix, v)
		}
	}
}

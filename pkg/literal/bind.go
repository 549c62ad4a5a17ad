package literal

import (
	"reflect"
	"strconv"
	"strings"
)

const pathSep = "."

// Bind resolves every expression to a substitution value. An expression is
// looked up in named first, as a whole key and then as a dotted path into
// nested maps, structs and slices. Failing that, a decimal expression indexes
// positional. Unresolved expressions yield an *UnboundError listing all of
// them.
func (l *Literal) Bind(named map[string]any, positional []any) ([]any, error) {
	substitutions := make([]any, len(l.expressions))
	var missing []string
	for i, expr := range l.expressions {
		value, ok := Resolve(expr, named, positional)
		if !ok {
			missing = append(missing, expr)
			continue
		}
		substitutions[i] = value
	}
	if len(missing) > 0 {
		return nil, &UnboundError{Expressions: missing}
	}
	return substitutions, nil
}

// Resolve looks up a single expression the way Bind does.
func Resolve(expr string, named map[string]any, positional []any) (any, bool) {
	if value, ok := named[expr]; ok {
		return value, true
	}
	if idx, err := strconv.Atoi(expr); err == nil {
		if idx < 0 || idx >= len(positional) {
			return nil, false
		}
		return positional[idx], true
	}
	if !strings.Contains(expr, pathSep) || named == nil {
		return nil, false
	}

	segments := strings.Split(expr, pathSep)
	head, ok := named[segments[0]]
	if !ok {
		return nil, false
	}
	return walk(head, segments[1:])
}

func walk(data any, segments []string) (any, bool) {
	for _, seg := range segments {
		rv := reflect.ValueOf(data)
		for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
			if rv.IsNil() {
				return nil, false
			}
			rv = rv.Elem()
		}

		switch rv.Kind() {
		case reflect.Map:
			if rv.Type().Key().Kind() != reflect.String {
				return nil, false
			}
			v := rv.MapIndex(reflect.ValueOf(seg).Convert(rv.Type().Key()))
			if !v.IsValid() {
				return nil, false
			}
			data = v.Interface()
		case reflect.Struct:
			f := rv.FieldByName(seg)
			if !f.IsValid() || !f.CanInterface() {
				return nil, false
			}
			data = f.Interface()
		case reflect.Slice, reflect.Array:
			idx, err := strconv.Atoi(seg)
			if err != nil {
				return nil, false
			}
			if idx < 0 {
				idx += rv.Len()
			}
			if idx < 0 || idx >= rv.Len() {
				return nil, false
			}
			data = rv.Index(idx).Interface()
		default:
			return nil, false
		}
	}
	return data, true
}

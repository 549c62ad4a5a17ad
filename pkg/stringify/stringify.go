package stringify

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Texter is implemented by values that provide their own canonical text. It
// takes precedence over fmt.Stringer and error.
type Texter interface {
	Text() string
}

type undefined struct{}

func (undefined) Text() string { return "undefined" }

func (undefined) String() string { return "undefined" }

// Undefined marks a substitution slot that deliberately carries no value. It
// renders as "undefined", while nil renders as "null".
var Undefined any = undefined{}

const (
	nullText  = "null"
	arraySep  = ","
	trueText  = "true"
	falseText = "false"
)

// Text returns the canonical text form of v. A slice or pointer that contains
// itself renders as empty text where it recurs.
func Text(v any) string {
	return text(v, nil)
}

// visit identifies a slice or pointer on the current conversion path.
type visit struct {
	ptr uintptr
	typ reflect.Type
	n   int
}

type path []visit

func (p path) enter(rv reflect.Value) (path, bool) {
	v := visit{ptr: rv.Pointer(), typ: rv.Type()}
	if rv.Kind() == reflect.Slice {
		v.n = rv.Len()
	}
	for _, seen := range p {
		if seen == v {
			return p, false
		}
	}
	return append(p, v), true
}

func text(v any, seen path) string {
	switch value := v.(type) {
	case nil:
		return nullText
	case string:
		return value
	case Texter:
		if isNil(v) {
			return nullText
		}
		return value.Text()
	case fmt.Stringer:
		if isNil(v) {
			return nullText
		}
		return value.String()
	case error:
		if isNil(v) {
			return nullText
		}
		return value.Error()
	case []byte:
		if value == nil {
			return nullText
		}
		return string(value)
	case bool:
		if value {
			return trueText
		}
		return falseText
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case uint64:
		return strconv.FormatUint(value, 10)
	case float64:
		return FormatNumber(value)
	case float32:
		return formatFloat(float64(value), 32)
	case []any:
		if value == nil {
			return nullText
		}
		return joinElements(reflect.ValueOf(value), seen)
	case []string:
		if value == nil {
			return nullText
		}
		return strings.Join(value, arraySep)
	}
	return reflectText(reflect.ValueOf(v), seen)
}

func reflectText(rv reflect.Value, seen path) string {
	switch rv.Kind() {
	case reflect.Invalid:
		return nullText
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		if rv.Bool() {
			return trueText
		}
		return falseText
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return formatFloat(rv.Float(), 32)
	case reflect.Float64:
		return formatFloat(rv.Float(), 64)
	case reflect.Slice:
		if rv.IsNil() {
			return nullText
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return string(rv.Bytes())
		}
		return joinElements(rv, seen)
	case reflect.Array:
		return joinElements(rv, seen)
	case reflect.Pointer:
		if rv.IsNil() {
			return nullText
		}
		next, ok := seen.enter(rv)
		if !ok {
			return ""
		}
		return text(rv.Elem().Interface(), next)
	case reflect.Interface:
		if rv.IsNil() {
			return nullText
		}
		return text(rv.Elem().Interface(), seen)
	case reflect.Map, reflect.Chan, reflect.Func:
		if rv.IsNil() {
			return nullText
		}
	}
	return fmt.Sprint(rv.Interface())
}

// joinElements renders a slice or array the way an array's default text form
// does: elements joined with commas, absent elements as empty text.
func joinElements(rv reflect.Value, seen path) string {
	n := rv.Len()
	if n == 0 {
		return ""
	}
	if rv.Kind() == reflect.Slice {
		var ok bool
		if seen, ok = seen.enter(rv); !ok {
			return ""
		}
	}
	if n == 1 {
		return elementText(rv.Index(0), seen)
	}
	var sb strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString(arraySep)
		}
		sb.WriteString(elementText(rv.Index(i), seen))
	}
	return sb.String()
}

func elementText(ev reflect.Value, seen path) string {
	if !ev.IsValid() || !ev.CanInterface() {
		return ""
	}
	elem := ev.Interface()
	if IsAbsent(elem) {
		return ""
	}
	return text(elem, seen)
}

// IsAbsent reports whether v is nil, a typed nil, or Undefined.
func IsAbsent(v any) bool {
	if v == nil || v == Undefined {
		return true
	}
	return isNil(v)
}

func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}

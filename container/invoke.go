package container

import (
	"fmt"
	"math"
	"reflect"
)

var errorType = reflect.TypeFor[error]()

// callFunc calls fn with args converted to its parameter types.
func callFunc(fn reflect.Value, args []any) ([]reflect.Value, error) {
	ft := fn.Type()
	n := ft.NumIn()
	if ft.IsVariadic() {
		if len(args) < n-1 {
			return nil, fmt.Errorf("%w: want at least %d, got %d", ErrArgumentCount, n-1, len(args))
		}
	} else if len(args) != n {
		return nil, fmt.Errorf("%w: want %d, got %d", ErrArgumentCount, n, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var param reflect.Type
		if ft.IsVariadic() && i >= n-1 {
			param = ft.In(n - 1).Elem()
		} else {
			param = ft.In(i)
		}
		v, err := argumentValue(arg, param)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		in[i] = v
	}
	return fn.Call(in), nil
}

func argumentValue(arg any, param reflect.Type) (reflect.Value, error) {
	if arg == nil {
		switch param.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(param), nil
		default:
			return reflect.Value{}, fmt.Errorf("%w: nil for %s", ErrArgumentType, param)
		}
	}
	v := reflect.ValueOf(arg)
	if v.Type().AssignableTo(param) {
		return v, nil
	}
	if isNumeric(v.Kind()) && isNumeric(param.Kind()) {
		if out, ok := convertNumber(v, param); ok {
			return out, nil
		}
		return reflect.Value{}, fmt.Errorf("%w: %v does not fit %s", ErrArgumentType, arg, param)
	}
	return reflect.Value{}, fmt.Errorf("%w: %s for %s", ErrArgumentType, v.Type(), param)
}

func isNumeric(k reflect.Kind) bool {
	return isInt(k) || isUint(k) || isFloat(k)
}

func isInt(k reflect.Kind) bool   { return k >= reflect.Int && k <= reflect.Int64 }
func isUint(k reflect.Kind) bool  { return k >= reflect.Uint && k <= reflect.Uintptr }
func isFloat(k reflect.Kind) bool { return k == reflect.Float32 || k == reflect.Float64 }

// convertNumber converts v to param when no value is lost: the result has
// the same sign and magnitude, and a float only becomes an integer when it
// has no fractional part.
func convertNumber(v reflect.Value, param reflect.Type) (reflect.Value, bool) {
	out := reflect.New(param).Elem()
	switch src := v.Kind(); {
	case isInt(src):
		return out, setInt(out, v.Int())
	case isUint(src):
		return out, setUint(out, v.Uint())
	default:
		return out, setFloat(out, v.Float())
	}
}

func setInt(out reflect.Value, i int64) bool {
	switch k := out.Kind(); {
	case isInt(k):
		if out.OverflowInt(i) {
			return false
		}
		out.SetInt(i)
	case isUint(k):
		if i < 0 {
			return false
		}
		return setUint(out, uint64(i))
	default:
		out.SetFloat(float64(i))
		f := out.Float()
		if f < math.MinInt64 || f >= math.MaxInt64 || int64(f) != i {
			return false
		}
	}
	return true
}

func setUint(out reflect.Value, u uint64) bool {
	switch k := out.Kind(); {
	case isInt(k):
		if u > math.MaxInt64 || out.OverflowInt(int64(u)) {
			return false
		}
		out.SetInt(int64(u))
	case isUint(k):
		if out.OverflowUint(u) {
			return false
		}
		out.SetUint(u)
	default:
		out.SetFloat(float64(u))
		f := out.Float()
		if f >= math.MaxUint64 || uint64(f) != u {
			return false
		}
	}
	return true
}

func setFloat(out reflect.Value, f float64) bool {
	switch k := out.Kind(); {
	case isInt(k):
		if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return false
		}
		return setInt(out, int64(f))
	case isUint(k):
		if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 {
			return false
		}
		return setUint(out, uint64(f))
	default:
		if out.OverflowFloat(f) {
			return false
		}
		out.SetFloat(f)
	}
	return true
}

// validFactory reports whether ft returns T or (T, error).
func validFactory(ft reflect.Type) bool {
	switch ft.NumOut() {
	case 1:
		return true
	case 2:
		return ft.Out(1) == errorType
	default:
		return false
	}
}

func factoryResult(out []reflect.Value) (any, error) {
	if err := trailingError(out); err != nil {
		return nil, err
	}
	return out[0].Interface(), nil
}

func trailingError(out []reflect.Value) error {
	if len(out) == 0 {
		return nil
	}
	last := out[len(out)-1]
	if last.Type() != errorType || last.IsNil() {
		return nil
	}
	return last.Interface().(error)
}

package utils

import "reflect"

func IsNil(val any) bool {
	rv := reflect.ValueOf(val)
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// IsFuncPtr reports whether val is a non-nil pointer to a func variable.
func IsFuncPtr(val any) bool {
	rv := reflect.ValueOf(val)
	return rv.IsValid() && rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() == reflect.Func
}

// Package enum lists the declared values of enumeration types.
//
// Go cannot enumerate the constants of a type at run time, so the values
// are supplied by the caller: either directly to Filter, or once per type
// through Register or RegisterNamed, usually from an init function
// written by enumgen:
//
//	//go:generate enumgen --type Direction
//	type Direction int
//
//	const (
//		Invalid Direction = iota
//		North
//		East
//	)
//
//	for _, d := range enum.List[Direction]() { ... } // North, East
//
// enumgen registers the constant names along with the values, so the
// Sentinel is recognised by name even when the type has no String method.
// Every helper drops values named Sentinel.
package enum

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/sirupsen/logrus"

	"go.lepak.sg/gamekit/traverse"
)

// Sentinel is the name of the placeholder value that is never listed.
// The match is exact and case sensitive.
const Sentinel = "Invalid"

var logger logrus.FieldLogger = logrus.StandardLogger()

// SetLogger replaces the logger used for diagnostics.
func SetLogger(l logrus.FieldLogger) {
	logger = l
}

// registration is what Register recorded for one type. values holds a
// []T; names, when present, has the declared name of each value.
type registration struct {
	values  any
	names   []string
	byValue map[any]string
}

var registry = struct {
	sync.RWMutex
	types map[reflect.Type]registration
}{
	types: make(map[reflect.Type]registration),
}

// Name returns the name of v. A fmt.Stringer is named by its String
// method. Otherwise the name recorded by RegisterNamed is used, and
// failing that the default formatting of v.
func Name[T any](v T) string {
	if s, ok := any(v).(fmt.Stringer); ok {
		return s.String()
	}

	registry.RLock()
	reg, ok := registry.types[typeOf[T]()]
	registry.RUnlock()
	if ok {
		if name, ok := reg.byValue[any(v)]; ok {
			return name
		}
	}
	return fmt.Sprint(v)
}

// IsEnum reports whether T is an enumeration type: a defined,
// non-predeclared type whose underlying type is an integer or a string.
func IsEnum[T any]() bool {
	return isEnumType(typeOf[T]())
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func isEnumType(t reflect.Type) bool {
	if t.Name() == "" || t.PkgPath() == "" {
		return false
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.String:
		return true
	default:
		return false
	}
}

// Register records the declared values of T in declaration order,
// replacing any earlier registration of T. Values are named by Name, so a
// type without a String method should use RegisterNamed instead.
// Registering a type that is not an enumeration type logs an error and
// records nothing.
func Register[T any](values ...T) {
	register(nil, values)
}

// RegisterNamed is Register with the declared name of each value, as
// written by enumgen. names and values must have the same length.
func RegisterNamed[T any](names []string, values ...T) {
	if len(names) != len(values) {
		logger.WithFields(logrus.Fields{
			"type":   typeOf[T]().String(),
			"names":  len(names),
			"values": len(values),
		}).Error("enum: names and values differ in length")
		return
	}
	register(names, values)
}

func register[T any](names []string, values []T) {
	t := typeOf[T]()
	if !isEnumType(t) {
		logger.WithField("type", t.String()).Error("enum: cannot register values of a non-enum type")
		return
	}

	reg := registration{
		values: append([]T(nil), values...),
	}
	if names != nil {
		reg.names = append([]string(nil), names...)
		reg.byValue = make(map[any]string, len(values))
		traverse.EachIndexed[[]T, T](values, func(i int, v T) {
			// aliases share a value; the first declaration names it
			if _, ok := reg.byValue[any(v)]; !ok {
				reg.byValue[any(v)] = names[i]
			}
		}, false)
	}

	registry.Lock()
	registry.types[t] = reg
	registry.Unlock()
}

// registered returns the values recorded for T, and their names in
// declaration order if they were registered with names. ok is false, and
// an error has been logged, when T is not an enumeration type or has not
// been registered.
func registered[T any]() (values []T, names []string, ok bool) {
	t := typeOf[T]()
	if !isEnumType(t) {
		logger.WithField("type", t.String()).Error("enum: not an enum type")
		return nil, nil, false
	}

	registry.RLock()
	reg, ok := registry.types[t]
	registry.RUnlock()
	if !ok {
		logger.WithField("type", t.String()).Error("enum: no values registered")
		return nil, nil, false
	}

	return reg.values.([]T), reg.names, true
}

// declared returns the registered values of T minus the Sentinel.
// A value is named by its String method if it has one, otherwise by the
// name registered at its position.
func declared[T any]() (values []T, ok bool) {
	all, names, ok := registered[T]()
	if !ok {
		return nil, false
	}
	if names == nil {
		return Filter[T](all), true
	}

	out := make([]T, 0, len(all))
	traverse.EachIndexed[[]T, T](all, func(i int, v T) {
		name := names[i]
		if s, ok := any(v).(fmt.Stringer); ok {
			name = s.String()
		}
		if name != Sentinel {
			out = append(out, v)
		}
	}, false)
	return out, true
}

// List returns the registered values of T in declaration order,
// without the Sentinel. It returns nil, after logging an error, when T is
// not an enumeration type or has no registered values.
func List[T any]() []T {
	values, _ := declared[T]()
	return values
}

// Each calls f for every value List would return, in the same order.
// f is not called at all when List would return nil.
func Each[T any](f func(v T)) {
	values, ok := declared[T]()
	if !ok || f == nil {
		return
	}
	traverse.Each[[]T, T](values, f, false)
}

// Filter returns a new slice with the values of values, in order,
// minus any whose Name is Sentinel.
func Filter[T any](values []T) []T {
	out := make([]T, 0, len(values))
	traverse.Each[[]T, T](values, func(v T) {
		if Name(v) != Sentinel {
			out = append(out, v)
		}
	}, false)
	return out
}

package enums

import (
	"reflect"
	"sync"

	"github.com/invopop/jsonschema"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// registration holds the name table for one registered enum type.
type registration struct {
	count int32
	names []string
	index map[string]int32
}

var (
	mu       sync.RWMutex
	registry = make(map[reflect.Type]registration)
	logger   = zerolog.Nop()
)

// SetLogger replaces the logger used for registration events. The default
// logger discards everything.
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// Register associates a name with every ordinal of E, in ordinal order. It
// rejects a non-positive ordinal count, a name slice whose length differs
// from the count, empty or duplicate names, and re-registration of a type.
// Registration is meant to happen once per type during initialization;
// lookups may then proceed concurrently.
func Register[E Sequential](names ...string) error {
	n := Count[E]()
	if n <= 0 {
		return eris.Errorf("enums: ordinal count of %T must be positive, got %d", *new(E), n)
	}
	if len(names) != int(n) {
		return eris.Errorf("enums: %T declares %d ordinals but %d names were given", *new(E), n, len(names))
	}

	index := make(map[string]int32, len(names))
	for i, name := range names {
		if name == "" {
			return eris.Errorf("enums: name for ordinal %d of %T is empty", i, *new(E))
		}
		if _, ok := index[name]; ok {
			return eris.Errorf("enums: duplicate name %q for %T", name, *new(E))
		}
		index[name] = int32(i)
	}

	typ := reflect.TypeFor[E]()

	mu.Lock()
	defer mu.Unlock()
	if _, ok := registry[typ]; ok {
		return eris.Errorf("enums: %s is already registered", typ)
	}
	registry[typ] = registration{count: n, names: names, index: index}
	logger.Debug().Str("type", typ.String()).Int32("count", n).Msg("registered sequential enum")

	return nil
}

// MustRegister is like Register but panics on error. Use it from package init
// functions where a failed registration is a programming error.
func MustRegister[E Sequential](names ...string) {
	if err := Register[E](names...); err != nil {
		panic(err)
	}
}

// Registered reports whether a name table has been registered for E.
func Registered[E Sequential]() bool {
	_, ok := lookup[E]()
	return ok
}

// Name returns the registered name of e. The second return is false when E
// has no name table or e lies outside [0, Count).
func Name[E Sequential](e E) (string, bool) {
	reg, ok := lookup[E]()
	if !ok {
		return "", false
	}
	ord := ToUnderlying(e)
	if ord < 0 || ord >= int64(reg.count) {
		return "", false
	}
	return reg.names[ord], true
}

// Parse returns the value of E registered under the given name.
func Parse[E Sequential](name string) (E, error) {
	var zero E
	reg, ok := lookup[E]()
	if !ok {
		return zero, eris.Errorf("enums: %T has no registered name table", zero)
	}
	ord, ok := reg.index[name]
	if !ok {
		return zero, eris.Errorf("enums: unknown %T name %q", zero, name)
	}
	return E(ord), nil
}

// Schema returns a JSON schema describing E as a string enum over its
// registered names, in ordinal order.
func Schema[E Sequential]() (*jsonschema.Schema, error) {
	reg, ok := lookup[E]()
	if !ok {
		return nil, eris.Errorf("enums: %T has no registered name table", *new(E))
	}
	values := make([]any, len(reg.names))
	for i, name := range reg.names {
		values[i] = name
	}
	return &jsonschema.Schema{Type: "string", Enum: values}, nil
}

func lookup[E Sequential]() (registration, bool) {
	mu.RLock()
	defer mu.RUnlock()
	reg, ok := registry[reflect.TypeFor[E]()]
	return reg, ok
}

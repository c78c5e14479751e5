package suite

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync"
)

//go:embed suites/*.yaml
var builtinFS embed.FS

var (
	cacheMu sync.RWMutex
	cache   = make(map[string]*Suite)
)

// Builtin loads an embedded suite by name (e.g. "smoke").
func Builtin(name string) (*Suite, error) {
	cacheMu.RLock()
	if s, ok := cache[name]; ok {
		cacheMu.RUnlock()
		return s, nil
	}
	cacheMu.RUnlock()

	data, err := builtinFS.ReadFile("suites/" + name + ".yaml")
	if err != nil {
		names, _ := BuiltinNames()
		return nil, fmt.Errorf("built-in suite %q not found (available: %s)", name, strings.Join(names, ", "))
	}

	s, err := ParseSuite(data)
	if err != nil {
		return nil, fmt.Errorf("parsing built-in suite %q: %w", name, err)
	}

	cacheMu.Lock()
	cache[name] = s
	cacheMu.Unlock()

	return s, nil
}

// BuiltinNames returns the names of all embedded suites.
func BuiltinNames() ([]string, error) {
	entries, err := builtinFS.ReadDir("suites")
	if err != nil {
		return nil, fmt.Errorf("reading suites directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") {
			names = append(names, strings.TrimSuffix(name, ".yaml"))
		}
	}
	sort.Strings(names)
	return names, nil
}

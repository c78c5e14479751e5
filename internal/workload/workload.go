// Package workload provides the built-in operations that suites can time.
package workload

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"sort"

	"github.com/timed-go/timed/pkg/duration"
	"github.com/timed-go/timed/pkg/timer"
)

// Workload errors.
var (
	ErrUnknownWorkload = errors.New("unknown workload")
	ErrInvalidParams   = errors.New("invalid workload parameters")
)

// Params configures a workload. Each workload reads only the fields it needs.
type Params struct {
	// Duration is how long sleep and busywait take.
	Duration duration.Duration

	// Size is the element count for sort and the byte count for alloc.
	Size int
}

// Workload is a timed operation with an optional untimed setup.
type Workload struct {
	Name  string
	Op    func()
	Setup func()
}

type factory struct {
	needsDuration bool
	needsSize     bool
	build         func(p Params) Workload
}

var factories = map[string]factory{
	"noop": {
		build: func(Params) Workload { return Workload{Op: func() {}} },
	},
	"sleep": {
		needsDuration: true,
		build: func(p Params) Workload {
			return Workload{Op: func() { timer.Sleep(p.Duration) }}
		},
	},
	"busywait": {
		needsDuration: true,
		build: func(p Params) Workload {
			return Workload{Op: func() { timer.BusyWait(p.Duration) }}
		},
	},
	"sort": {
		needsSize: true,
		build:     buildSort,
	},
	"alloc": {
		needsSize: true,
		build:     buildAlloc,
	},
}

// Names returns the registered workload names in order.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks that name is registered and p carries what it needs.
func Validate(name string, p Params) error {
	f, ok := factories[name]
	if !ok {
		return fmt.Errorf("%w: %q (available: %v)", ErrUnknownWorkload, name, Names())
	}
	if f.needsDuration && p.Duration == 0 {
		return fmt.Errorf("%w: %s needs a duration", ErrInvalidParams, name)
	}
	if f.needsSize && p.Size <= 0 {
		return fmt.Errorf("%w: %s needs a positive size", ErrInvalidParams, name)
	}
	return nil
}

// New builds the named workload.
func New(name string, p Params) (Workload, error) {
	if err := Validate(name, p); err != nil {
		return Workload{}, err
	}
	w := factories[name].build(p)
	w.Name = name
	if w.Setup == nil {
		w.Setup = func() {}
	}
	return w, nil
}

// buildSort sorts Size pseudo-random ints; setup reshuffles them.
func buildSort(p Params) Workload {
	rng := rand.New(rand.NewPCG(1, 2))
	data := make([]int, p.Size)
	return Workload{
		Setup: func() {
			for i := range data {
				data[i] = rng.IntN(p.Size * 10)
			}
		},
		Op: func() { slices.Sort(data) },
	}
}

// sink keeps allocations observable.
var sink []byte

// buildAlloc allocates Size bytes and touches every page.
func buildAlloc(p Params) Workload {
	return Workload{
		Op: func() {
			buf := make([]byte, p.Size)
			for i := 0; i < len(buf); i += 4096 {
				buf[i] = 1
			}
			sink = buf
		},
	}
}

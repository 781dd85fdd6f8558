package colormap

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	regMu    sync.RWMutex
	registry = map[string]Colormap{}
)

func init() {
	for _, cm := range []Colormap{
		Viridis, Plasma, Inferno, Magma,
		YlOrBr, YlGnBu, Blues, Greens, Greys, Oranges,
		Copper, Autumn, Tab20,
	} {
		registry[normalize(cm.Name())] = cm
	}
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register adds a colormap to the registry, replacing any existing
// entry with the same name. Lookup is case-insensitive.
func Register(cm Colormap) {
	regMu.Lock()
	defer regMu.Unlock()
	registry[normalize(cm.Name())] = cm
}

// Lookup returns the registered colormap for name.
func Lookup(name string) (Colormap, bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	cm, ok := registry[normalize(name)]
	return cm, ok
}

// Names returns the registered colormap names in sorted order.
func Names() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	names := make([]string, 0, len(registry))
	for _, cm := range registry {
		names = append(names, cm.Name())
	}
	sort.Strings(names)
	return names
}

// Ref identifies a colormap either by registry name or as an already
// resolved object. Exactly one field should be set; a resolved Map
// takes precedence.
type Ref struct {
	Name string
	Map  Colormap
}

// Named returns a Ref that resolves name against the registry.
func Named(name string) Ref { return Ref{Name: name} }

// Of returns a Ref wrapping an already resolved colormap.
func Of(cm Colormap) Ref { return Ref{Map: cm} }

// Resolve returns the referenced colormap, consulting the registry
// when only a name is set.
func (r Ref) Resolve() (Colormap, error) {
	if r.Map != nil {
		return r.Map, nil
	}
	if r.Name == "" {
		return nil, fmt.Errorf("colormap: empty reference")
	}
	cm, ok := Lookup(r.Name)
	if !ok {
		return nil, fmt.Errorf("colormap: unknown colormap %q", r.Name)
	}
	return cm, nil
}

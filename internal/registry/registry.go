// Package registry provides a global registry of engine variants.
// Variants register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"iter"
	"sort"
	"sync"

	"github.com/vovakirdan/matrix-snake/internal/core"
)

// Game is the interface the platform drives. Implementations contain pure
// logic; input sampling, timing and pixel output belong to the platform.
type Game interface {
	// ID returns a unique identifier for the variant (e.g., "snake").
	// Used for CLI arguments and the round journal.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Step consumes one command and reports the outcome.
	// Died, Won and Restarting leave the engine already reset.
	Step(cmd core.Command) core.GameResult

	// Grid returns the playfield dimensions.
	Grid() core.Grid

	// Body yields the occupied cells from tail to head.
	Body() iter.Seq[core.Pos]

	// Apple returns the current apple cell.
	Apple() core.Pos

	// Vacated returns the cell most recently left by the tail.
	Vacated() core.Pos

	// LastRound returns the summary of the most recently finished round.
	LastRound() (core.RoundSummary, bool)
}

// VariantInfo contains metadata about a registered variant.
type VariantInfo struct {
	ID       string
	Title    string
	Grid     core.Grid
	Capacity int
}

// Factory creates a new engine from the runtime configuration. A variant
// may override parts of cfg, such as the grid size.
type Factory func(cfg core.RuntimeConfig) (Game, error)

// Variant describes a registered engine flavour.
type Variant struct {
	Title   string
	Factory Factory
	// Adjust rewrites a configuration before Factory sees it. It is also
	// used to report the effective grid in List.
	Adjust func(cfg core.RuntimeConfig) core.RuntimeConfig
}

var (
	variants = make(map[string]Variant)
	mu       sync.RWMutex
)

// Register adds a variant to the registry.
// Typically called from a package's init() function.
// Panics if a variant with the same ID is already registered.
func Register(id string, v Variant) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := variants[id]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}
	if v.Factory == nil {
		panic(fmt.Sprintf("registry: variant %q has no factory", id))
	}
	variants[id] = v
}

// List returns information about all registered variants, sorted by ID.
// Grid and capacity are those the variant would use with base.
func List(base core.RuntimeConfig) []VariantInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]VariantInfo, 0, len(variants))
	for id, v := range variants {
		cfg := v.adjust(base)
		result = append(result, VariantInfo{
			ID:       id,
			Title:    v.Title,
			Grid:     cfg.Grid,
			Capacity: cfg.Capacity,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a variant by its ID.
// Returns an error if the ID is not registered or the configuration is invalid.
func Create(id string, cfg core.RuntimeConfig) (Game, error) {
	mu.RLock()
	v, ok := variants[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown variant %q", id)
	}

	g, err := v.Factory(v.adjust(cfg))
	if err != nil {
		return nil, fmt.Errorf("registry: create %q: %w", id, err)
	}
	return g, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}

func (v Variant) adjust(cfg core.RuntimeConfig) core.RuntimeConfig {
	if v.Adjust == nil {
		return cfg
	}
	return v.Adjust(cfg)
}

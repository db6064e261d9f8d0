package fibonacci

// CalculatorFactory is not mockable with mockgen because Register takes the
// unexported coreCalculator type. Use DefaultFactory in tests instead.

import (
	"fmt"
	"sort"
	"sync"
)

// CalculatorFactory creates and caches Calculator instances by name.
type CalculatorFactory interface {
	// Create returns a fresh, uncached Calculator.
	Create(name string) (Calculator, error)

	// Get returns the cached Calculator for name, creating it on first use.
	Get(name string) (Calculator, error)

	// List returns the registered names in sorted order.
	List() []string

	// Register adds or replaces a calculator type.
	Register(name string, creator func() coreCalculator) error

	// GetAll returns every registered calculator keyed by name.
	GetAll() map[string]Calculator
}

// DefaultFactory is a thread-safe CalculatorFactory.
type DefaultFactory struct {
	mu          sync.RWMutex
	creators    map[string]func() coreCalculator
	calculators map[string]Calculator
}

// NewDefaultFactory returns a factory with the standard calculators:
//
//   - "matrix": MatrixExponentiation (O(log n) time, O(1) memory)
//   - "table": TableCalculator (O(n) time, O(n) memory)
//   - "window": WindowCalculator (O(n) time, O(1) memory)
func NewDefaultFactory() *DefaultFactory {
	f := &DefaultFactory{
		creators:    make(map[string]func() coreCalculator),
		calculators: make(map[string]Calculator),
	}

	_ = f.Register("matrix", func() coreCalculator { return &MatrixExponentiation{} })
	_ = f.Register("table", func() coreCalculator { return &TableCalculator{} })
	_ = f.Register("window", func() coreCalculator { return &WindowCalculator{} })

	return f
}

// Register adds a calculator type. An existing entry with the same name is
// replaced and its cached instance dropped.
func (f *DefaultFactory) Register(name string, creator func() coreCalculator) error {
	if name == "" {
		return fmt.Errorf("calculator name cannot be empty")
	}
	if creator == nil {
		return fmt.Errorf("creator for calculator %q cannot be nil", name)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.creators[name] = creator
	delete(f.calculators, name)
	return nil
}

// Create returns a new Calculator without caching it.
func (f *DefaultFactory) Create(name string) (Calculator, error) {
	f.mu.RLock()
	creator, ok := f.creators[name]
	f.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown calculator: %s", name)
	}
	return NewCalculator(creator()), nil
}

// Get returns the cached Calculator for name.
func (f *DefaultFactory) Get(name string) (Calculator, error) {
	f.mu.RLock()
	if calc, exists := f.calculators[name]; exists {
		f.mu.RUnlock()
		return calc, nil
	}
	f.mu.RUnlock()

	f.mu.Lock()
	defer f.mu.Unlock()

	if calc, exists := f.calculators[name]; exists {
		return calc, nil
	}

	creator, ok := f.creators[name]
	if !ok {
		return nil, fmt.Errorf("unknown calculator: %s", name)
	}

	calc := NewCalculator(creator())
	f.calculators[name] = calc
	return calc, nil
}

// List returns the registered names, sorted.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	names := make([]string, 0, len(f.creators))
	for name := range f.creators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll initializes any calculator not created yet and returns a copy of
// the cache.
func (f *DefaultFactory) GetAll() map[string]Calculator {
	f.mu.Lock()
	defer f.mu.Unlock()

	for name, creator := range f.creators {
		if _, exists := f.calculators[name]; !exists {
			f.calculators[name] = NewCalculator(creator())
		}
	}

	result := make(map[string]Calculator, len(f.calculators))
	for name, calc := range f.calculators {
		result[name] = calc
	}
	return result
}

// MustGet is like Get but panics if name is not registered.
func (f *DefaultFactory) MustGet(name string) Calculator {
	calc, err := f.Get(name)
	if err != nil {
		panic(fmt.Sprintf("fibonacci: required calculator not found: %s", name))
	}
	return calc
}

// Has reports whether name is registered.
func (f *DefaultFactory) Has(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, exists := f.creators[name]
	return exists
}

var globalFactory = NewDefaultFactory()

// GlobalFactory returns the process-wide factory.
func GlobalFactory() *DefaultFactory {
	return globalFactory
}

// RegisterCalculator registers a calculator in the global factory.
func RegisterCalculator(name string, creator func() coreCalculator) error {
	return globalFactory.Register(name, creator)
}

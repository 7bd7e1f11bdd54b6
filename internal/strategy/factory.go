package strategy

import "fmt"

// DefaultName is used when a config leaves strategy.name empty.
const DefaultName = "crossover"

// New builds a strategy by name.
func New(name string) (Strategy, error) {
	switch name {
	case "", DefaultName:
		return Crossover{}, nil
	default:
		return nil, fmt.Errorf("unsupported strategy: %q", name)
	}
}

// Names lists the registered strategies.
func Names() []string {
	return []string{DefaultName}
}

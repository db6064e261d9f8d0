package orchestration

import (
	"github.com/agbru/fibmod/internal/config"
	"github.com/agbru/fibmod/internal/fibonacci"
)

// GetCalculatorsToRun resolves an algorithm selection: "all" yields every
// registered calculator in sorted name order, any other name yields that
// calculator alone, and an unknown name yields nil.
func GetCalculatorsToRun(algo string, factory fibonacci.CalculatorFactory) []fibonacci.Calculator {
	if algo == config.AlgoAll {
		keys := factory.List()
		calculators := make([]fibonacci.Calculator, 0, len(keys))
		for _, k := range keys {
			if calc, err := factory.Get(k); err == nil {
				calculators = append(calculators, calc)
			}
		}
		return calculators
	}
	if calc, err := factory.Get(algo); err == nil {
		return []fibonacci.Calculator{calc}
	}
	return nil
}

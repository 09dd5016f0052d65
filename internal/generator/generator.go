package generator

import (
	"time"

	"github.com/sirupsen/logrus"

	"svw.info/sudokuweb/internal/ports"
)

// DefaultBudget bounds hard-tier generation wall-clock time.
const DefaultBudget = 4 * time.Second

// UniqueGenerator creates puzzles with a unique solution using a
// provided Solver. Budget limits carving time for the hard tier only;
// it is checked between removal attempts, so a single uniqueness probe
// is never interrupted once started.
type UniqueGenerator struct {
	Solver ports.Solver
	Budget time.Duration
	Log    *logrus.Logger
}

// NewUniqueGenerator wires a generator that uses the given solver for
// uniqueness probes, with the default time budget.
func NewUniqueGenerator(s ports.Solver, log *logrus.Logger) *UniqueGenerator {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &UniqueGenerator{Solver: s, Budget: DefaultBudget, Log: log}
}

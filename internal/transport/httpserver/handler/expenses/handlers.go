package expenses

import (
	expensesdomain "split-app-go/internal/domain/expenses"
	groupsdomain "split-app-go/internal/domain/groups"
	"split-app-go/pkg/logger"
)

// Recorder observes successfully stored expense rows.
type Recorder interface {
	ExpenseRecorded(kind string, amount float64)
}

type noopRecorder struct{}

func (noopRecorder) ExpenseRecorded(string, float64) {}

type Handlers struct {
	Groups   *groupsdomain.Service
	Expenses *expensesdomain.Service
	recorder Recorder
	log      logger.Logger
}

func New(groups *groupsdomain.Service, expenses *expensesdomain.Service, recorder Recorder, log logger.Logger) *Handlers {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &Handlers{
		Groups:   groups,
		Expenses: expenses,
		recorder: recorder,
		log:      log,
	}
}

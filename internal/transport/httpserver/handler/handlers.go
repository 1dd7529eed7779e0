package handler

import (
	expensesdomain "split-app-go/internal/domain/expenses"
	groupsdomain "split-app-go/internal/domain/groups"
	"split-app-go/internal/transport/httpserver/handler/common"
	"split-app-go/internal/transport/httpserver/handler/expenses"
	"split-app-go/internal/transport/httpserver/handler/groups"
	"split-app-go/pkg/logger"
)

type Handlers struct {
	Common   *common.Handlers
	Groups   *groups.Handlers
	Expenses *expenses.Handlers
}

func New(db common.Pinger, groupsService *groupsdomain.Service, expensesService *expensesdomain.Service, recorder expenses.Recorder, log logger.Logger) *Handlers {
	return &Handlers{
		Common:   common.New(db, log),
		Groups:   groups.New(groupsService, log),
		Expenses: expenses.New(groupsService, expensesService, recorder, log),
	}
}

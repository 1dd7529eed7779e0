package groups

import (
	groupsdomain "split-app-go/internal/domain/groups"
	"split-app-go/pkg/logger"
)

type Handlers struct {
	Groups *groupsdomain.Service
	log    logger.Logger
}

func New(groups *groupsdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Groups: groups,
		log:    log,
	}
}

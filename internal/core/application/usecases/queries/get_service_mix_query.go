package queries

import (
	"errors"

	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/guard"
)

var ErrGetServiceMixQueryIsNotConstructed = errors.New(
	"GetServiceMixQuery must be created via NewGetServiceMixQuery constructor",
)

// GetServiceMixQuery counts orders per service, most popular first. Every
// order counts whatever its status, as it is a measure of demand.
type GetServiceMixQuery struct {
	guard guard.ConstructorGuard
}

func NewGetServiceMixQuery() GetServiceMixQuery {
	return GetServiceMixQuery{guard: guard.NewConstructorGuard()}
}

func (q GetServiceMixQuery) Validate() error {
	return q.guard.Validate(ErrGetServiceMixQueryIsNotConstructed)
}

// ServiceMixEntry names a deleted service "Unknown".
type ServiceMixEntry struct {
	ServiceName string
	Orders      int
}

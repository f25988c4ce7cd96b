package order

import (
	"github.com/smallbiznis/quickstep/internal/order/enrich"
	"github.com/smallbiznis/quickstep/internal/order/repository"
	"github.com/smallbiznis/quickstep/internal/order/service"
	"go.uber.org/fx"
)

var Module = fx.Module("order.service",
	enrich.Module,
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)

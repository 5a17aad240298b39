package components

import (
	"elite-drive/internal/handler"
	"elite-drive/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCarHandler,
		api.NewScheduleHandler,
		api.NewCustomerHandler,
		api.NewBookingHandler,
		api.NewServiceHandler,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	car *api.CarHandler,
	schedule *api.ScheduleHandler,
	customer *api.CustomerHandler,
	booking *api.BookingHandler,
	service *api.ServiceHandler,
) handler.Handlers {
	return handler.Handlers{
		Car:      car,
		Schedule: schedule,
		Customer: customer,
		Booking:  booking,
		Service:  service,
	}
}

package worker

import (
	"github.com/spec-kit/campus-alert-service/internal/service"
)

// StartDeliveryWorker registers delivery channel handlers.
func StartDeliveryWorker(deliveryService *service.DeliveryService) {
	if deliveryService == nil {
		return
	}
	deliveryService.RegisterHandlers()
}

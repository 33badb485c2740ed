package order

import (
	"math"
	"strings"

	"tiffin/internal/entities"
)

func isValidPaymentMethod(method entities.PaymentMethodType) bool {
	switch method {
	case entities.PaymentCard, entities.PaymentUPI, entities.PaymentNet, entities.PaymentCOD:
		return true
	default:
		return false
	}
}

// isValidOverrideStatus статусы, доступные административному переводу.
// CANCELLED сюда не входит: отмена идет только через Cancel с причиной.
func isValidOverrideStatus(status entities.OrderStatusType) bool {
	switch status {
	case entities.OrderPlaced, entities.OrderPreparing, entities.OrderDelivered:
		return true
	default:
		return false
	}
}

func isValidCancelReason(reason string) bool {
	return strings.TrimSpace(reason) != ""
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

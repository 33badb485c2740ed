package order

import (
	"encoding/json"
	"fmt"

	"tiffin/internal/entities"
)

func marshalItems(items []entities.OrderItem) ([]byte, error) {
	models := make([]itemDB, 0, len(items))
	for _, item := range items {
		models = append(models, itemDB{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			ImageURL: item.ImageURL,
		})
	}
	raw, err := json.Marshal(models)
	if err != nil {
		return nil, fmt.Errorf("marshal order items: %w", err)
	}
	return raw, nil
}

func ToDomain(model *OrderDB) (*entities.Order, error) {
	var itemModels []itemDB
	if err := json.Unmarshal(model.Items, &itemModels); err != nil {
		return nil, fmt.Errorf("unmarshal order items: %w", err)
	}

	items := make([]entities.OrderItem, 0, len(itemModels))
	for _, item := range itemModels {
		items = append(items, entities.OrderItem{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			ImageURL: item.ImageURL,
		})
	}

	cancelReason := ""
	if model.CancelReason != nil {
		cancelReason = *model.CancelReason
	}

	return &entities.Order{
		OrderID:       model.OrderID,
		Owner:         model.Owner,
		Items:         items,
		TotalAmount:   model.TotalAmount,
		PaymentMethod: entities.PaymentMethodType(model.PaymentMethod),
		Status:        entities.OrderStatusType(model.Status),
		CancelReason:  cancelReason,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}, nil
}

func ToDomainList(models []OrderDB) ([]entities.Order, error) {
	orders := make([]entities.Order, 0, len(models))
	for i := range models {
		orderEntity, err := ToDomain(&models[i])
		if err != nil {
			return nil, err
		}
		orders = append(orders, *orderEntity)
	}
	return orders, nil
}

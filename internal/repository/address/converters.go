package address

import "tiffin/internal/entities"

func ToDomain(model *AddressDB) *entities.Address {
	return &entities.Address{
		ID:          model.ID,
		Owner:       model.Owner,
		Label:       model.Label,
		AddressLine: model.AddressLine,
		City:        model.City,
		State:       model.State,
		Pincode:     model.Pincode,
		IsDefault:   model.IsDefault,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func ToDomainList(models []AddressDB) []entities.Address {
	addresses := make([]entities.Address, 0, len(models))
	for i := range models {
		addresses = append(addresses, *ToDomain(&models[i]))
	}
	return addresses
}

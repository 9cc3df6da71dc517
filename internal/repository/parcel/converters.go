package parcel

import (
	"parcel-service/internal/entities"
)

func ToDomain(p *ParcelDB) *entities.Parcel {
	if p == nil {
		return nil
	}

	parcel := &entities.Parcel{
		ID:            p.ID,
		OwnerName:     p.OwnerName,
		OwnerEmail:    p.OwnerEmail,
		OwnerPhone:    p.OwnerPhone,
		ReceiverName:  p.ReceiverName,
		ReceiverPhone: p.ReceiverPhone,
		Address:       p.Address,
		Weight:        p.Weight,
		Status:        entities.ParcelStatusType(p.Status),
		AssigneeID:    p.AssigneeID,
		RequestedDate: p.RequestedDate.UTC(),
		BookingDate:   p.BookingDate.UTC(),
		UpdatedAt:     p.UpdatedAt.UTC(),
	}
	if p.ApproximateDeliveryDate != nil {
		date := p.ApproximateDeliveryDate.UTC()
		parcel.ApproximateDeliveryDate = &date
	}
	return parcel
}

func FromDomainModify(parcelModify *entities.ParcelModify) *ParcelModifyDB {
	if parcelModify == nil {
		return nil
	}

	parcelDB := &ParcelModifyDB{
		ID:            parcelModify.ID,
		OwnerName:     parcelModify.OwnerName,
		OwnerEmail:    parcelModify.OwnerEmail,
		OwnerPhone:    parcelModify.OwnerPhone,
		ReceiverName:  parcelModify.ReceiverName,
		ReceiverPhone: parcelModify.ReceiverPhone,
		Address:       parcelModify.Address,
		Weight:        parcelModify.Weight,
		RequestedDate: parcelModify.RequestedDate,
		BookingDate:   parcelModify.BookingDate,
	}
	if parcelModify.Status != nil {
		status := parcelModify.Status.String()
		parcelDB.Status = &status
	}
	return parcelDB
}

func ToDomainList(parcelsDB []ParcelDB) []entities.Parcel {
	if len(parcelsDB) == 0 {
		return []entities.Parcel{}
	}

	result := make([]entities.Parcel, len(parcelsDB))
	for i := range parcelsDB {
		result[i] = *ToDomain(&parcelsDB[i])
	}
	return result
}

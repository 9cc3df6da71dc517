package book_parcel_post

import (
	"parcel-service/internal/entities"
	"parcel-service/internal/generated/dto"
)

func ToDomainModify(parcelCreateDTO *dto.ParcelCreate) entities.ParcelModify {
	return entities.ParcelModify{
		OwnerName:     &parcelCreateDTO.Name,
		OwnerEmail:    &parcelCreateDTO.Email,
		OwnerPhone:    parcelCreateDTO.Phone,
		ReceiverName:  &parcelCreateDTO.ReceiverName,
		ReceiverPhone: parcelCreateDTO.ReceiverPhone,
		Address:       &parcelCreateDTO.Address,
		Weight:        parcelCreateDTO.Weight,
		RequestedDate: parcelCreateDTO.RequestedDate,
	}
}

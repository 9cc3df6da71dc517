package presenter

import (
	"parcel-service/internal/entities"
	"parcel-service/internal/generated/dto"
)

const dateLayout = "2006-01-02"

func ParcelToDTO(parcelEntity *entities.Parcel) dto.Parcel {
	return dto.Parcel{
		Id:                      parcelEntity.ID,
		Name:                    parcelEntity.OwnerName,
		Email:                   parcelEntity.OwnerEmail,
		Phone:                   parcelEntity.OwnerPhone,
		ReceiverName:            parcelEntity.ReceiverName,
		ReceiverPhone:           parcelEntity.ReceiverPhone,
		Address:                 parcelEntity.Address,
		Weight:                  parcelEntity.Weight,
		Status:                  dto.ParcelStatus(parcelEntity.Status),
		DeliveryManId:           parcelEntity.AssigneeID,
		RequestedDate:           parcelEntity.RequestedDate,
		BookingDate:             parcelEntity.BookingDate,
		ApproximateDeliveryDate: parcelEntity.ApproximateDeliveryDate,
		UpdatedAt:               parcelEntity.UpdatedAt,
	}
}

func ParcelsToDTO(parcels []entities.Parcel) []dto.Parcel {
	result := make([]dto.Parcel, len(parcels))
	for i := range parcels {
		result[i] = ParcelToDTO(&parcels[i])
	}
	return result
}

func UserToDTO(userEntity *entities.User) dto.User {
	return dto.User{
		Id:           userEntity.ID,
		Name:         userEntity.Name,
		Email:        userEntity.Email,
		ProfileImage: userEntity.ProfileImage,
		UserType:     dto.UserUserType(userEntity.Role),
		CreatedAt:    userEntity.CreatedAt,
	}
}

func UsersToDTO(users []entities.User) []dto.User {
	result := make([]dto.User, len(users))
	for i := range users {
		result[i] = UserToDTO(&users[i])
	}
	return result
}

func UsersPageToDTO(page *entities.UserPage) dto.UsersPage {
	return dto.UsersPage{
		Users:      UsersToDTO(page.Users),
		TotalUsers: page.Total,
		Page:       page.Page,
	}
}

func ReviewToDTO(reviewEntity *entities.Review) dto.Review {
	return dto.Review{
		Id:            reviewEntity.ID,
		ParcelId:      reviewEntity.ParcelID,
		DeliveryManId: reviewEntity.DeliveryPersonID,
		ReviewerName:  reviewEntity.ReviewerName,
		ReviewerEmail: reviewEntity.ReviewerEmail,
		ReviewerImage: reviewEntity.ReviewerImage,
		Rating:        reviewEntity.Rating,
		Feedback:      reviewEntity.Feedback,
		CreatedAt:     reviewEntity.CreatedAt,
	}
}

func ReviewsToDTO(reviews []entities.Review) []dto.Review {
	result := make([]dto.Review, len(reviews))
	for i := range reviews {
		result[i] = ReviewToDTO(&reviews[i])
	}
	return result
}

func RanksToDTO(ranks []entities.DeliveryPersonRank) []dto.DeliveryManRank {
	result := make([]dto.DeliveryManRank, len(ranks))
	for i, r := range ranks {
		result[i] = dto.DeliveryManRank{
			Id:               r.DeliveryPersonID,
			Name:             r.Name,
			Image:            r.ProfileImage,
			DeliveredParcels: r.DeliveredCount,
			AverageRating:    r.AverageRating,
		}
	}
	return result
}

func StatsToDTO(statsEntity *entities.Stats) dto.Stats {
	bookings := make([]dto.DailyBookings, len(statsEntity.BookingsByDate))
	for i, b := range statsEntity.BookingsByDate {
		bookings[i] = dto.DailyBookings{
			Date:  b.Date.UTC().Format(dateLayout),
			Count: b.Count,
		}
	}

	return dto.Stats{
		Booked:         statsEntity.Booked,
		Delivered:      statsEntity.Delivered,
		Users:          statsEntity.Users,
		BookingsByDate: bookings,
	}
}

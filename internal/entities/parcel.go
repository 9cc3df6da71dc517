package entities

import (
	"strings"
	"time"
)

type Parcel struct {
	ID                      int64
	OwnerName               string
	OwnerEmail              string
	OwnerPhone              string
	ReceiverName            string
	ReceiverPhone           string
	Address                 string
	Weight                  float64
	Status                  ParcelStatusType
	AssigneeID              *int64
	RequestedDate           time.Time
	BookingDate             time.Time
	ApproximateDeliveryDate *time.Time
	UpdatedAt               time.Time
}

type ParcelStatusType string

const (
	ParcelPending   ParcelStatusType = "pending"
	ParcelOnTheWay  ParcelStatusType = "on_the_way"
	ParcelDelivered ParcelStatusType = "delivered"
	ParcelCanceled  ParcelStatusType = "canceled"
)

const DefaultParcelStatus = ParcelPending

func (s ParcelStatusType) String() string {
	return string(s)
}

// граф переходов, терминальные статусы ключей не имеют
var parcelTransitions = map[ParcelStatusType][]ParcelStatusType{
	ParcelPending:  {ParcelOnTheWay, ParcelCanceled},
	ParcelOnTheWay: {ParcelDelivered},
}

func (s ParcelStatusType) CanTransitionTo(next ParcelStatusType) bool {
	for _, allowed := range parcelTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s ParcelStatusType) IsTerminal() bool {
	return s == ParcelDelivered || s == ParcelCanceled
}

// HasAssignee сообщает, должен ли у посылки в этом статусе быть курьер.
func (s ParcelStatusType) HasAssignee() bool {
	return s == ParcelOnTheWay || s == ParcelDelivered
}

// ParseParcelStatus приводит строку статуса к каноническому виду.
// Понимает старые написания ("On The Way", "cancelled") и регистр.
func ParseParcelStatus(raw string) (ParcelStatusType, bool) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)

	switch normalized {
	case "pending":
		return ParcelPending, true
	case "on_the_way", "ontheway":
		return ParcelOnTheWay, true
	case "delivered":
		return ParcelDelivered, true
	case "canceled", "cancelled":
		return ParcelCanceled, true
	default:
		return "", false
	}
}

type ParcelModify struct {
	ID            *int64
	OwnerName     *string
	OwnerEmail    *string
	OwnerPhone    *string
	ReceiverName  *string
	ReceiverPhone *string
	Address       *string
	Weight        *float64
	RequestedDate *time.Time

	// заполняются только при бронировании
	Status      *ParcelStatusType
	BookingDate *time.Time
}

// IsEmpty сообщает, что в патче нет ни одного редактируемого поля.
func (m ParcelModify) IsEmpty() bool {
	return m.OwnerName == nil &&
		m.OwnerEmail == nil &&
		m.OwnerPhone == nil &&
		m.ReceiverName == nil &&
		m.ReceiverPhone == nil &&
		m.Address == nil &&
		m.Weight == nil &&
		m.RequestedDate == nil
}

type ParcelAssignment struct {
	ParcelID                int64
	DeliveryPersonID        int64
	ApproximateDeliveryDate time.Time
}

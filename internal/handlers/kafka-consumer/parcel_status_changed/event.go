package parcel_status_changed

// statusChangedEvent публикует приложение курьера после смены статуса посылки.
type statusChangedEvent struct {
	ParcelID         int64  `json:"parcel_id"`
	Status           string `json:"status"`
	DeliveryPersonID int64  `json:"delivery_person_id"`
}

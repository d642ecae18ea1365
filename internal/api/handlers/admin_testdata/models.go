package admin_testdata

// CreateTestDataRequest HTTP request model.
// Дата опциональна: по умолчанию тестовые бронирования создаются на завтра.
type CreateTestDataRequest struct {
	Date *string `json:"date,omitempty"` // "2025-10-15"
}

// CreateTestDataResponse HTTP response model
type CreateTestDataResponse struct {
	Created    int      `json:"created"`
	BookingIDs []string `json:"bookingIds"`
}

// ClearTestDataResponse HTTP response model
type ClearTestDataResponse struct {
	Removed int `json:"removed"`
}

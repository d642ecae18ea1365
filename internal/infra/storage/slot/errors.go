package slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slot.repository: slot not found")

	// ErrSlotConflict возвращается, когда слот нельзя занять:
	// он уже booked, blocked или maintenance. Это ожидаемый исход
	// проигранной гонки за слот, а не сбой.
	ErrSlotConflict = errors.New("slot.repository: slot is not available")

	// ErrSlotNotBooked возвращается при попытке освободить слот,
	// который не находится в статусе booked
	ErrSlotNotBooked = errors.New("slot.repository: slot is not booked")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slot.repository: failed to scan row")
)

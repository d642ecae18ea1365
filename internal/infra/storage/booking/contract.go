package booking

import "github.com/qnovavr/QNOVA-BookingService/pkg/txmanager"

// DBExecutor общий интерфейс для *sql.DB и *sql.Tx (см. pkg/txmanager)
type DBExecutor = txmanager.Executor

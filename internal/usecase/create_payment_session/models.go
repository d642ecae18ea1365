package create_payment_session

// Request модель запроса на создание платёжной сессии.
// Клиент передает только идентификатор пакета: сумма и валюта берутся
// из серверного прайс-листа и не принимаются из запроса.
type Request struct {
	PackageID string
}

// Response модель ответа с созданной платёжной сессией
type Response struct {
	SessionID string // ID сессии провайдера
	URL       string // URL для редиректа клиента на страницу оплаты
}

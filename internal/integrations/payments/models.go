package payments

// CheckoutSession созданная платёжная сессия
type CheckoutSession struct {
	ID  string // ID сессии провайдера (cs_...)
	URL string // URL для редиректа клиента на страницу оплаты
}

// SessionStatus статус платёжной сессии
type SessionStatus struct {
	ID            string
	Status        string // open | complete | expired
	PaymentStatus string // paid | unpaid | no_payment_required
}

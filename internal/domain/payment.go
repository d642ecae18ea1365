package domain

// PricingPackage пакет из прайс-листа студии.
// Суммы задаются только на сервере: сумма из запроса клиента никогда
// не попадает в платёжную сессию.
type PricingPackage struct {
	ID          string
	Name        string
	AmountCents int64
	Currency    string
}

// PricingPackages каталог пакетов для оплаты
var PricingPackages = []PricingPackage{
	{ID: "katvr-single", Name: "KAT VR Gaming Session (30 min)", AmountCents: 2500, Currency: "eur"},
	{ID: "ps5-hour", Name: "PlayStation 5 VR Experience (60 min)", AmountCents: 3500, Currency: "eur"},
	{ID: "group-party", Name: "Group KAT VR Party (up to 8 players)", AmountCents: 12000, Currency: "eur"},
}

// PackageByID возвращает пакет по идентификатору
func PackageByID(id string) (PricingPackage, bool) {
	for _, p := range PricingPackages {
		if p.ID == id {
			return p, true
		}
	}
	return PricingPackage{}, false
}

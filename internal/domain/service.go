package domain

import "strings"

// ServiceType describes a bookable offering of the studio.
// Тип услуги определяет шаг сетки слотов и максимальное число участников.
type ServiceType struct {
	Name                string
	SlotIntervalMinutes int
	DurationMinutes     int
	MaxParticipants     int
}

// Названия услуг — фиксированное перечисление
const (
	ServiceKATVR      = "KAT VR Gaming Session"
	ServicePS5VR      = "PlayStation 5 VR Experience"
	ServiceGroupKATVR = "Group KAT VR Party"
)

// ServiceTypes каталог услуг студии
var ServiceTypes = []ServiceType{
	{
		Name:                ServiceKATVR,
		SlotIntervalMinutes: 30,
		DurationMinutes:     30,
		MaxParticipants:     4,
	},
	{
		Name:                ServicePS5VR,
		SlotIntervalMinutes: 60,
		DurationMinutes:     60,
		MaxParticipants:     4,
	},
	{
		Name:                ServiceGroupKATVR,
		SlotIntervalMinutes: 30,
		DurationMinutes:     30,
		MaxParticipants:     8,
	},
}

// ServiceByName возвращает услугу по точному названию
func ServiceByName(name string) (ServiceType, bool) {
	for _, s := range ServiceTypes {
		if s.Name == name {
			return s, true
		}
	}
	return ServiceType{}, false
}

// IsPlayStation returns true for PlayStation-based services.
// Слоты PlayStation-услуг идут с шагом в час и включают старт в момент
// закрытия; все остальные услуги — с шагом полчаса до закрытия.
func (s ServiceType) IsPlayStation() bool {
	return strings.Contains(s.Name, "PlayStation")
}

package domain

// Room идентификатор зала спорткомплекса
// Закрытое множество значений, зал - не отдельная сущность
type Room string

const (
	RoomHall1 Room = "hall1"
	RoomHall2 Room = "hall2"
	RoomHall3 Room = "hall3"
	RoomPool  Room = "pool"
)

// Rooms упорядоченный список залов
// Первый элемент - зал по умолчанию для быстрой записи
var Rooms = []Room{
	RoomHall1,
	RoomHall2,
	RoomHall3,
	RoomPool,
}

// roomLabels отображаемые названия залов
var roomLabels = map[Room]string{
	RoomHall1: "Зал 1: Силовые тренировки",
	RoomHall2: "Зал 2: Кардио тренировки",
	RoomHall3: "Зал 3: Игровые развлечения",
	RoomPool:  "Бассейн: Аквааэробика",
}

// DefaultRoom зал по умолчанию для быстрой записи
func DefaultRoom() Room {
	return Rooms[0]
}

// IsValidRoom проверяет, что значение входит в закрытое множество залов
func IsValidRoom(r Room) bool {
	_, ok := roomLabels[r]
	return ok
}

// Label возвращает отображаемое название зала
func (r Room) Label() string {
	if label, ok := roomLabels[r]; ok {
		return label
	}
	return string(r)
}

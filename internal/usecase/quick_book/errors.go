package quick_book

import (
	"errors"
	"fmt"
)

var (
	// ErrClientNotFound возвращается, когда профиль клиента не найден
	ErrClientNotFound = errors.New("quick_book: client not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("quick_book: service not found")

	// ErrTrainerNotFound возвращается, когда тренер не найден или неактивен
	ErrTrainerNotFound = errors.New("quick_book: trainer not found")

	// ErrSlotTaken возвращается, когда слот пересекается с существующей записью
	ErrSlotTaken = errors.New("quick_book: time slot is already taken")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("quick_book: internal error")
)

// SlotConflictError ошибка занятого слота
// Содержит интервал занятия, с которым обнаружен конфликт
type SlotConflictError struct {
	ConflictingSlot string // Интервал в формате "HH:MM-HH:MM"
}

// Error реализует интерфейс error
func (e *SlotConflictError) Error() string {
	if e.ConflictingSlot == "" {
		return ErrSlotTaken.Error()
	}
	return fmt.Sprintf("%v: conflicts with booking %s", ErrSlotTaken, e.ConflictingSlot)
}

// Unwrap позволяет errors.Is находить ErrSlotTaken
func (e *SlotConflictError) Unwrap() error {
	return ErrSlotTaken
}

package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeFormat формат времени HH:MM
const TimeFormat = "15:04"

var (
	// ErrInvalidFormat возвращается при некорректном формате строки времени
	ErrInvalidFormat = errors.New("types: invalid time string format, expected HH:MM")

	// ErrOutOfRange возвращается, когда результат арифметики выходит за границы суток
	ErrOutOfRange = errors.New("types: time out of day range")
)

// TimeString время в формате "HH:MM" (время суток без даты)
// Используется для хранения времени начала/окончания занятий
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет, что строка соответствует формату HH:MM
func (t TimeString) Validate() error {
	if _, err := time.Parse(TimeFormat, string(t)); err != nil {
		return ErrInvalidFormat
	}
	return nil
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// MinutesOfDay возвращает количество минут с начала суток
func (t TimeString) MinutesOfDay() (int, error) {
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return 0, ErrInvalidFormat
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// Hour возвращает часы времени (0-23)
func (t TimeString) Hour() int {
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return 0
	}
	return parsed.Hour()
}

// Minute возвращает минуты времени (0-59)
func (t TimeString) Minute() int {
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return 0
	}
	return parsed.Minute()
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперёд
// Возвращает ошибку, если результат выходит за границы суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := t.MinutesOfDay()
	if err != nil {
		return "", err
	}

	total += minutes
	if total < 0 || total > 24*60 {
		return "", ErrOutOfRange
	}

	// 24:00 представляем как конец суток для сравнения границ
	if total == 24*60 {
		return TimeString("24:00"), nil
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// Sub возвращает разницу t - other в минутах
func (t TimeString) Sub(other TimeString) (int, error) {
	a, err := t.MinutesOfDay()
	if err != nil {
		return 0, err
	}
	b, err := other.MinutesOfDay()
	if err != nil {
		return 0, err
	}
	return a - b, nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// At привязывает время суток к дате, возвращая полный time.Time
func (t TimeString) At(date time.Time) (time.Time, error) {
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return time.Time{}, ErrInvalidFormat
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, date.Location()), nil
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД
// Поддерживает строки "HH:MM" и "HH:MM:SS" (тип TIME в postgres), а также time.Time
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("types: cannot scan %T into TimeString", src)
	}
}

func (t *TimeString) scanString(s string) error {
	// Отбрасываем секунды, если БД вернула HH:MM:SS
	if len(s) >= 8 && s[5] == ':' {
		s = s[:5]
	}
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return err
	}
	*t = ts
	return nil
}

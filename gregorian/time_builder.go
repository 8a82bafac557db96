// SPDX-License-Identifier: MIT

package gregorian

import (
	"time"

	"github.com/katalvlaran/hanzi/chinese"
	"github.com/katalvlaran/hanzi/internal/log"
)

// TimeBuilder collects a clock time given on the 24-hour clock. Setters
// never fail; validation happens in BuildLinear and BuildDelta.
type TimeBuilder struct {
	hour      uint8
	minute    uint8
	second    uint8
	hasSecond bool
	dayPart   bool
}

// NewTimeBuilder returns a builder for 零点 (midnight) without seconds or
// day part.
func NewTimeBuilder() *TimeBuilder {
	return &TimeBuilder{}
}

// WithHour sets the hour, 0-23.
func (b *TimeBuilder) WithHour(hour uint8) *TimeBuilder {
	b.hour = hour
	return b
}

// WithMinute sets the minute, 0-59.
func (b *TimeBuilder) WithMinute(minute uint8) *TimeBuilder {
	b.minute = minute
	return b
}

// WithSecond sets the second, 0-59. Only linear times show seconds.
func (b *TimeBuilder) WithSecond(second uint8) *TimeBuilder {
	b.second, b.hasSecond = second, true
	return b
}

// WithDayPart writes linear times on the 12-hour clock after the part of
// the day.
func (b *TimeBuilder) WithDayPart(dayPart bool) *TimeBuilder {
	b.dayPart = dayPart
	return b
}

// WithTime sets hour, minute and second from t, in t's location.
func (b *TimeBuilder) WithTime(t time.Time) *TimeBuilder {
	hour, minute, second := t.Clock()

	return b.WithHour(uint8(hour)).WithMinute(uint8(minute)).WithSecond(uint8(second))
}

// BuildLinear validates the collected parts and returns a linear time.
//
// Errors (as *chinese.ValueError), checked in this order:
//   - ErrHourOutOfRange   if hour > 23.
//   - ErrMinuteOutOfRange if minute > 59.
//   - ErrSecondOutOfRange if second > 59.
func (b *TimeBuilder) BuildLinear() (LinearTime, error) {
	hour, minute, err := b.clock()
	if err != nil {
		log.Rejected("linear time", err)
		return LinearTime{}, err
	}

	t := LinearTime{DayPart: b.dayPart, Hour: hour, Minute: minute}
	if b.hasSecond {
		second, err := NewSecond(b.second)
		if err != nil {
			log.Rejected("linear time", err)
			return LinearTime{}, err
		}
		t.Second = chinese.Some(second)
	}

	return t, nil
}

// BuildDelta validates hour and minute and returns a relative time on the
// 12-hour clock. Seconds and the day part flag are ignored.
func (b *TimeBuilder) BuildDelta() (DeltaTime, error) {
	hour, minute, err := b.clock()
	if err != nil {
		log.Rejected("delta time", err)
		return DeltaTime{}, err
	}

	return DeltaTime{Hour: hour.Hour12(), Minute: minute}, nil
}

func (b *TimeBuilder) clock() (Hour24, Minute, error) {
	hour, err := NewHour24(b.hour)
	if err != nil {
		return Hour24{}, Minute{}, err
	}
	minute, err := NewMinute(b.minute)
	if err != nil {
		return Hour24{}, Minute{}, err
	}

	return hour, minute, nil
}

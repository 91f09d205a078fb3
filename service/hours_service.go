package services

import (
	"strconv"
	"strings"
	"time"
)

// Open-status labels returned alongside the boolean.
const (
	OpenStatusOpen   = "Mở cửa"
	OpenStatusClosed = "Đã đóng"
)

// HoursService evaluates "HH:MM - HH:MM" open-hour specs against the current
// wall-clock time. Malformed specs fail closed: they are reported as closed,
// never open. The clock is injectable for deterministic tests.
type HoursService struct {
	now func() time.Time
}

func NewHoursService() *HoursService {
	return &HoursService{now: time.Now}
}

// NewHoursServiceAt builds a service pinned to a fixed simulation time.
func NewHoursServiceAt(now func() time.Time) *HoursService {
	return &HoursService{now: now}
}

// IsOpen reports whether a venue with the given spec is open right now, plus
// the display label. A window whose open time is at or after its close time
// wraps past midnight: open when now >= open OR now <= close.
func (s *HoursService) IsOpen(openHours string) (bool, string) {
	openMin, closeMin, ok := parseOpenHours(openHours)
	if !ok {
		return false, OpenStatusClosed
	}

	now := s.now()
	nowMin := now.Hour()*60 + now.Minute()

	var isOpen bool
	if openMin < closeMin {
		isOpen = openMin <= nowMin && nowMin <= closeMin
	} else {
		isOpen = nowMin >= openMin || nowMin <= closeMin
	}

	if isOpen {
		return true, OpenStatusOpen
	}
	return false, OpenStatusClosed
}

// parseOpenHours splits on the literal " - " separator and returns both
// bounds as minutes of the day.
func parseOpenHours(openHours string) (openMin, closeMin int, ok bool) {
	parts := strings.Split(openHours, " - ")
	if len(parts) != 2 {
		return 0, 0, false
	}
	openMin, ok = parseClockTime(parts[0])
	if !ok {
		return 0, 0, false
	}
	closeMin, ok = parseClockTime(parts[1])
	if !ok {
		return 0, 0, false
	}
	return openMin, closeMin, true
}

func parseClockTime(s string) (int, bool) {
	fields := strings.Split(strings.TrimSpace(s), ":")
	if len(fields) != 2 {
		return 0, false
	}
	hour, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, false
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}

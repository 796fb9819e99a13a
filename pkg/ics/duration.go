package ics

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// parseIcsDuration parses an RFC 5545 DURATION value such as "PT1H30M",
// "P1D" or "P2W". Days and weeks are returned separately so that they can
// be added as calendar days.
func parseIcsDuration(value string) (int, time.Duration, error) {
	s := strings.TrimSpace(value)
	sign := 1
	switch {
	case strings.HasPrefix(s, "-"):
		sign = -1
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	if !strings.HasPrefix(s, "P") || len(s) < 3 {
		return 0, 0, fmt.Errorf("invalid duration %q", value)
	}
	s = s[1:]

	days := 0
	var d time.Duration
	inTime := false
	number := ""
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			number += string(r)
			continue
		case r == 'T':
			if inTime || number != "" {
				return 0, 0, fmt.Errorf("invalid duration %q", value)
			}
			inTime = true
			continue
		}

		if number == "" {
			return 0, 0, fmt.Errorf("invalid duration %q", value)
		}
		n, err := strconv.Atoi(number)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid duration %q: %w", value, err)
		}
		number = ""

		switch {
		case r == 'W' && !inTime:
			days += 7 * n
		case r == 'D' && !inTime:
			days += n
		case r == 'H' && inTime:
			d += time.Duration(n) * time.Hour
		case r == 'M' && inTime:
			d += time.Duration(n) * time.Minute
		case r == 'S' && inTime:
			d += time.Duration(n) * time.Second
		default:
			return 0, 0, fmt.Errorf("invalid duration %q", value)
		}
	}
	if number != "" {
		return 0, 0, fmt.Errorf("invalid duration %q", value)
	}

	return sign * days, time.Duration(sign) * d, nil
}

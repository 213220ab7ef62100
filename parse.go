package clack

import (
	"net/netip"
	"strconv"
	"strings"
	"time"
)

// ParseFunc converts the submitted text of an Input into the caller's type.
// A non-nil error is shown to the user as "Invalid value format".
type ParseFunc[T any] func(input string) (T, error)

// ParseString returns the input unchanged.
func ParseString(input string) (string, error) {
	return input, nil
}

// ParseInt parses a base 10 int.
func ParseInt(input string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(input))
}

// ParseInt64 parses a base 10 int64.
func ParseInt64(input string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(input), 10, 64)
}

// ParseUint parses a base 10 uint.
func ParseUint(input string) (uint, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(input), 10, 0)
	return uint(v), err
}

// ParseFloat parses a float64.
func ParseFloat(input string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(input), 64)
}

// ParseBool accepts the spellings of strconv.ParseBool.
func ParseBool(input string) (bool, error) {
	return strconv.ParseBool(strings.TrimSpace(input))
}

// ParseDuration parses a duration such as "1h30m".
func ParseDuration(input string) (time.Duration, error) {
	return time.ParseDuration(strings.TrimSpace(input))
}

// ParseIP parses an IPv4 or IPv6 address.
func ParseIP(input string) (netip.Addr, error) {
	return netip.ParseAddr(strings.TrimSpace(input))
}

// ParseAddrPort parses an "ip:port" pair such as "127.0.0.1:8080" or "[::1]:53".
func ParseAddrPort(input string) (netip.AddrPort, error) {
	return netip.ParseAddrPort(strings.TrimSpace(input))
}

// Optional wraps p so that empty input yields nil instead of an error.
// Use it with a non-required Input:
//
//	port, err := clack.InteractAs(clack.NewText("Port"), clack.Optional(clack.ParseInt))
func Optional[T any](p ParseFunc[T]) ParseFunc[*T] {
	return func(input string) (*T, error) {
		if strings.TrimSpace(input) == "" {
			return nil, nil
		}
		v, err := p(input)
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
}

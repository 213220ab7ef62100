package clack

import (
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFuncs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		parse    func(string) (any, error)
		input    string
		expected any
		wantErr  bool
	}{
		{name: "string is unchanged", parse: wrap(ParseString), input: " a b ", expected: " a b "},
		{name: "int", parse: wrap(ParseInt), input: " 42 ", expected: 42},
		{name: "negative int", parse: wrap(ParseInt), input: "-7", expected: -7},
		{name: "int rejects text", parse: wrap(ParseInt), input: "4x", wantErr: true},
		{name: "int64", parse: wrap(ParseInt64), input: "9000000000", expected: int64(9000000000)},
		{name: "uint", parse: wrap(ParseUint), input: "8080", expected: uint(8080)},
		{name: "uint rejects negative", parse: wrap(ParseUint), input: "-1", wantErr: true},
		{name: "float", parse: wrap(ParseFloat), input: "2.5", expected: 2.5},
		{name: "bool", parse: wrap(ParseBool), input: "true", expected: true},
		{name: "bool short form", parse: wrap(ParseBool), input: "F", expected: false},
		{name: "bool rejects yes", parse: wrap(ParseBool), input: "yes", wantErr: true},
		{name: "duration", parse: wrap(ParseDuration), input: "1h30m", expected: 90 * time.Minute},
		{name: "duration needs a unit", parse: wrap(ParseDuration), input: "90", wantErr: true},
		{name: "ipv4", parse: wrap(ParseIP), input: "192.168.0.1", expected: netip.MustParseAddr("192.168.0.1")},
		{name: "ipv6", parse: wrap(ParseIP), input: "::1", expected: netip.IPv6Loopback()},
		{name: "ip rejects host names", parse: wrap(ParseIP), input: "localhost", wantErr: true},
		{name: "addr port", parse: wrap(ParseAddrPort), input: "[::1]:53", expected: netip.AddrPortFrom(netip.IPv6Loopback(), 53)},
		{name: "addr port needs a port", parse: wrap(ParseAddrPort), input: "127.0.0.1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := tt.parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func wrap[T any](p ParseFunc[T]) func(string) (any, error) {
	return func(s string) (any, error) {
		v, err := p(s)
		return v, err
	}
}

func TestOptional(t *testing.T) {
	t.Parallel()

	parse := Optional(ParseInt)

	v, err := parse("  ")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = parse("5")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 5, *v)

	_, err = parse("five")
	assert.Error(t, err)
}

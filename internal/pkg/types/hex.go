package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Hex is a 0x-prefixed hexadecimal quantity as used by EVM JSON-RPC
// (block numbers, gas prices, log indexes).
type Hex string

// HexFromString validates s and returns it as a Hex.
func HexFromString(s string) (Hex, error) {
	if err := validateHex(s); err != nil {
		return "", err
	}
	return Hex(s), nil
}

// HexFromUint encodes n as a minimal 0x-prefixed quantity.
func HexFromUint(n uint64) Hex {
	return Hex("0x" + strconv.FormatUint(n, 16))
}

func validateHex(s string) error {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return fmt.Errorf("hex string must start with 0x")
	}

	if _, err := strconv.ParseUint(s[2:], 16, 64); err != nil {
		return fmt.Errorf("invalid hexadecimal value: %w", err)
	}

	return nil
}

// MarshalJSON encodes the Hex as a JSON string.
func (h Hex) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(h))
}

// UnmarshalJSON parses and validates a JSON-encoded hexadecimal string.
func (h *Hex) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid hex string: %w", err)
	}

	if err := validateHex(s); err != nil {
		return err
	}

	*h = Hex(s)
	return nil
}

// IsEmpty reports whether h holds no value.
func (h Hex) IsEmpty() bool {
	return h == ""
}

// Uint64 decodes h, returning zero for empty or invalid values.
func (h Hex) Uint64() uint64 {
	if len(h) < 3 {
		return 0
	}

	v, _ := strconv.ParseUint(string(h)[2:], 16, 64)
	return v
}

// Int64 decodes h as a signed value, returning zero for empty or invalid values.
func (h Hex) Int64() int64 {
	return int64(h.Uint64())
}

// Package caip formats and parses CAIP-10 account identifiers
// ("namespace:reference:address", e.g. "eip155:1:0xab...").
//
// Formatting never panics and never returns an error to the caller: a malformed
// part is logged and reported through the boolean result so that callers can
// skip the recipient and carry on.
package caip

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/push-protocol/push-showrunners-framework-sub000/internal/pkg/logger"
)

// NamespaceEIP155 is the CAIP-2 namespace of EVM chains.
const NamespaceEIP155 = "eip155"

// ErrFormatting is wrapped by every parse or format failure.
var ErrFormatting = errors.New("malformed account id")

var (
	namespacePattern = regexp.MustCompile(`^[-a-z0-9]{3,8}$`)
	referencePattern = regexp.MustCompile(`^[-_a-zA-Z0-9]{1,32}$`)
	addressPattern   = regexp.MustCompile(`^[-.%a-zA-Z0-9]{1,128}$`)
)

// AccountID is a parsed CAIP-10 account identifier.
type AccountID struct {
	Namespace string
	ChainID   string
	Address   string
}

// Validate reports the first malformed component.
func (a AccountID) Validate() error {
	switch {
	case !namespacePattern.MatchString(a.Namespace):
		return fmt.Errorf("%w: namespace %q", ErrFormatting, a.Namespace)
	case !referencePattern.MatchString(a.ChainID):
		return fmt.Errorf("%w: chain id %q", ErrFormatting, a.ChainID)
	case !addressPattern.MatchString(a.Address):
		return fmt.Errorf("%w: address %q", ErrFormatting, a.Address)
	}
	return nil
}

// String renders the canonical form without validating.
func (a AccountID) String() string {
	return a.Namespace + ":" + a.ChainID + ":" + a.Address
}

// ToAccountID builds the canonical string. ok is false, and the problem logged,
// when any component is malformed.
func ToAccountID(namespace, chainID, address string) (string, bool) {
	id := AccountID{Namespace: namespace, ChainID: chainID, Address: address}
	if err := id.Validate(); err != nil {
		logger.Warn(context.Background(), "skipping malformed account id",
			"caip.namespace", namespace,
			"caip.chain_id", chainID,
			"caip.address", address,
			"error", err,
		)
		return "", false
	}

	return id.String(), true
}

// EIP155 formats an EVM address on chainID.
func EIP155(chainID int64, address string) (string, bool) {
	return ToAccountID(NamespaceEIP155, strconv.FormatInt(chainID, 10), address)
}

// Parse splits and validates a CAIP-10 string.
func Parse(s string) (AccountID, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 {
		return AccountID{}, fmt.Errorf("%w: %q", ErrFormatting, s)
	}

	id := AccountID{Namespace: parts[0], ChainID: parts[1], Address: parts[2]}
	if err := id.Validate(); err != nil {
		return AccountID{}, err
	}

	return id, nil
}

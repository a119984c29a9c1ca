package wallet

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/push-protocol/push-showrunners-framework-sub000/internal/pkg/logger"
)

// ErrConfiguration marks a channel that cannot operate because of its wallet
// setup. It is fatal for that channel only.
var ErrConfiguration = errors.New("configuration error")

// keyFields are the accepted names of the key inside a structured wallet entry.
var keyFields = []string{"PK", "pk", "privateKey", "private_key"}

// Entry is one admitted wallet of a channel.
type Entry struct {
	Name     string
	Key      Key
	Metadata map[string]any
}

// Skipped describes a wallet entry that failed admission.
type Skipped struct {
	Channel string
	Wallet  string
	Reason  error
}

// Pool maps channel names to their admitted wallets, ordered by wallet index
// (wallet1, wallet2, ..., wallet10). It is immutable once built.
type Pool struct {
	wallets map[string][]Entry
	skipped []Skipped
}

// Wallets returns the admitted wallets of channel.
func (p Pool) Wallets(channel string) []Entry {
	return p.wallets[channel]
}

// Channels returns every channel with at least one admitted wallet, sorted.
func (p Pool) Channels() []string {
	channels := make([]string, 0, len(p.wallets))
	for name := range p.wallets {
		channels = append(channels, name)
	}
	slices.Sort(channels)
	return channels
}

// Skipped lists the rejected entries.
func (p Pool) Skipped() []Skipped {
	return p.skipped
}

// NewPoolFromMap builds a pool from decoded key files: channel -> wallet name ->
// either a key string or an object holding the key under one of PK, pk,
// privateKey or private_key plus arbitrary metadata.
//
// Invalid entries are dropped with a warning. Every channel left without a valid
// wallet contributes an ErrConfiguration to the returned error; the pool still
// holds the healthy channels.
func NewPoolFromMap(ctx context.Context, raw map[string]map[string]any) (Pool, error) {
	pool := Pool{wallets: make(map[string][]Entry, len(raw))}

	var errs []error
	for channel, wallets := range raw {
		entries := make([]Entry, 0, len(wallets))

		for name, value := range wallets {
			entry, err := parseEntry(name, value)
			if err != nil {
				logger.Warn(ctx, "skipping invalid wallet",
					"channel.name", channel,
					"wallet.name", name,
					"error", err,
				)
				pool.skipped = append(pool.skipped, Skipped{Channel: channel, Wallet: name, Reason: err})
				continue
			}

			entries = append(entries, entry)
		}

		if len(entries) == 0 {
			errs = append(errs, fmt.Errorf("%w: channel %q has no valid wallet", ErrConfiguration, channel))
			continue
		}

		slices.SortFunc(entries, compareWalletNames)
		pool.wallets[channel] = entries
	}

	return pool, errors.Join(errs...)
}

// LoadPool reads every <dir>/<channel>.json key file. See NewPoolFromMap for
// admission rules.
func LoadPool(ctx context.Context, dir string) (Pool, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return Pool{}, err
	}

	if len(files) == 0 {
		return Pool{}, fmt.Errorf("%w: no key files found in %q", ErrConfiguration, dir)
	}

	var (
		raw  = make(map[string]map[string]any, len(files))
		errs []error
	)
	for _, file := range files {
		channel := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))

		data, err := os.ReadFile(file)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: reading %q: %w", ErrConfiguration, file, err))
			continue
		}

		var wallets map[string]any
		if err := json.Unmarshal(data, &wallets); err != nil {
			errs = append(errs, fmt.Errorf("%w: decoding %q: %w", ErrConfiguration, file, err))
			continue
		}

		raw[channel] = wallets
	}

	pool, err := NewPoolFromMap(ctx, raw)
	return pool, errors.Join(append(errs, err)...)
}

func parseEntry(name string, value any) (Entry, error) {
	switch v := value.(type) {
	case string:
		key, err := ParseKey(v)
		if err != nil {
			return Entry{}, err
		}
		return Entry{Name: name, Key: key}, nil

	case map[string]any:
		metadata := make(map[string]any, len(v))
		var raw string
		for field, fieldValue := range v {
			if slices.Contains(keyFields, field) {
				raw, _ = fieldValue.(string)
				continue
			}
			metadata[field] = fieldValue
		}

		key, err := ParseKey(raw)
		if err != nil {
			return Entry{}, err
		}
		return Entry{Name: name, Key: key, Metadata: metadata}, nil

	default:
		return Entry{}, fmt.Errorf("%w: unsupported entry type %T", ErrInvalidKey, value)
	}
}

// compareWalletNames orders by trailing index (wallet2 < wallet10), then by name.
func compareWalletNames(a, b Entry) int {
	if c := cmp.Compare(walletIndex(a.Name), walletIndex(b.Name)); c != 0 {
		return c
	}
	return cmp.Compare(a.Name, b.Name)
}

func walletIndex(name string) int {
	i := len(name)
	for i > 0 && name[i-1] >= '0' && name[i-1] <= '9' {
		i--
	}

	n, err := strconv.Atoi(name[i:])
	if err != nil {
		return 0
	}
	return n
}

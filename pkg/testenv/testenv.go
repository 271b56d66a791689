// Copyright 2026 Outreach Corporation. All Rights Reserved.

// Description: Default table and the set-if-absent application of it.

package testenv

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/getoutreach/testharness/pkg/cfg"
	"github.com/getoutreach/testharness/pkg/log"
)

// Keys written by Configure.
const (
	UseNetwork            = "CLUSTER_TEST_USE_NETWORK"
	ManCenterEnabled      = "CLUSTER_MANCENTER_ENABLED"
	WaitSecondsBeforeJoin = "CLUSTER_WAIT_SECONDS_BEFORE_JOIN"
	LocalAddress          = "CLUSTER_LOCAL_ADDRESS"
	PreferIPv4Stack       = "CLUSTER_PREFER_IPV4_STACK"
	VersionCheckEnabled   = "CLUSTER_VERSION_CHECK_ENABLED"
	MulticastGroupKey     = "CLUSTER_MULTICAST_GROUP"
	LoggingType           = "CLUSTER_LOGGING_TYPE"
)

// ConfigFile is the optional file Configure reads extra defaults from.
const ConfigFile = "testenv.yaml"

// multicastPrefix is the fixed leading octet of the rendezvous group.
const multicastPrefix = 224

// Default is a single key and the value it gets when unset.
type Default struct {
	Key   string
	Value string
}

// Config is the shape of testenv.yaml.
type Config struct {
	// Defaults adds keys to the default table or replaces the value of
	// built in ones. They are still only applied when unset.
	Defaults map[string]string `yaml:"Defaults"`
}

// Load reads testenv.yaml through r. A missing file leaves c untouched.
func (c *Config) Load(r cfg.Reader) error {
	err := r.Load(ConfigFile, c)
	if os.IsNotExist(errors.Cause(err)) {
		return nil
	}
	return err
}

// Keys returns every key of the built in table, in table order.
func Keys() []string {
	defaults := Defaults(nil)
	keys := make([]string, 0, len(defaults))
	for _, d := range defaults {
		keys = append(keys, d.Key)
	}
	return keys
}

// Defaults returns the built in default table. The multicast group is
// drawn from rng, or from the auto seeded global source if rng is nil.
func Defaults(rng *rand.Rand) []Default {
	return []Default{
		{UseNetwork, "false"},
		{ManCenterEnabled, "false"},
		{WaitSecondsBeforeJoin, "1"},
		{LocalAddress, "127.0.0.1"},
		{PreferIPv4Stack, "true"},
		{VersionCheckEnabled, "false"},
		{MulticastGroupKey, MulticastGroup(rng)},
		{LoggingType, "gobox"},
	}
}

// MulticastGroup returns 224.a.b.c with each of a, b and c drawn
// uniformly from [0,255).
func MulticastGroup(rng *rand.Rand) string {
	intn := rand.IntN
	if rng != nil {
		intn = rng.IntN
	}
	return fmt.Sprintf("%d.%d.%d.%d", multicastPrefix, intn(255), intn(255), intn(255))
}

// Merge overlays c.Defaults on top of defaults. Keys of defaults keep
// their position; new keys are appended in sorted order.
func (c Config) Merge(defaults []Default) []Default {
	out := make([]Default, 0, len(defaults)+len(c.Defaults))
	seen := make(map[string]bool, len(defaults))
	for _, d := range defaults {
		if v, ok := c.Defaults[d.Key]; ok {
			d.Value = v
		}
		seen[d.Key] = true
		out = append(out, d)
	}

	extra := make([]string, 0, len(c.Defaults))
	for k := range c.Defaults {
		if !seen[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	for _, k := range extra {
		out = append(out, Default{k, c.Defaults[k]})
	}
	return out
}

// Apply sets every default that has no value in store yet and returns
// the keys it set. Values already present are never overwritten, which
// makes a second Apply a no-op.
//
// Two concurrent first calls may both see a key unset and both write
// it; the last write wins. That is fine for constant defaults.
func Apply(store Store, defaults []Default) ([]string, error) {
	var applied []string
	for _, d := range defaults {
		if _, ok := store.Lookup(d.Key); ok {
			continue
		}
		if err := store.Set(d.Key, d.Value); err != nil {
			return applied, err
		}
		applied = append(applied, d.Key)
	}
	return applied, nil
}

// ConfigureStore loads the config through r and applies the merged
// default table to store. Unlike Configure it runs every time.
func ConfigureStore(ctx context.Context, store Store, r cfg.Reader) ([]string, error) {
	var c Config
	if err := c.Load(r); err != nil {
		return nil, errors.Wrap(err, "load test environment config")
	}

	applied, err := Apply(store, c.Merge(Defaults(nil)))
	if err != nil {
		return applied, errors.Wrap(err, "apply test environment defaults")
	}

	log.Debug(ctx, "test environment configured", log.F{"testenv.applied": applied})
	return applied, nil
}

// nolint:gochecknoglobals // Why: process wide init-once state
var (
	once       sync.Once
	configured atomic.Bool
)

// Configure applies the defaults to the process environment. Only the
// first call in a process does anything; it is safe to call from many
// goroutines. Failures are logged, not returned.
func Configure() {
	once.Do(func() {
		ctx := context.Background()
		if _, err := ConfigureStore(ctx, Environ(), cfg.DefaultReader()); err != nil {
			log.Error(ctx, "failed to configure test environment", log.F{"error": err.Error()})
		}
		configured.Store(true)
	})
}

// Configured reports whether Configure has run in this process.
func Configured() bool {
	return configured.Load()
}

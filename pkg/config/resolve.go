package config

import (
	"os"
	"strconv"
	"strings"
)

// Override-signal keys honored by Resolve. Absent keys behave as "not set";
// values are trimmed, and a whitespace-only value behaves as absent too.
const (
	OverrideApp            = "STACKFORGE_APP"
	OverrideRegion         = "STACKFORGE_REGION"
	OverrideEnvironment    = "STACKFORGE_ENVIRONMENT"
	OverrideSuffix         = "STACKFORGE_SUFFIX"
	OverrideStateBucket    = "STACKFORGE_STATE_BUCKET"
	OverrideStateLockTable = "STACKFORGE_STATE_LOCK_TABLE"
	OverrideEphemeral      = "STACKFORGE_EPHEMERAL"
	OverrideTags           = "STACKFORGE_TAGS" // comma-separated key=value pairs
)

type (
	// Overrides is the process-wide override-signal lookup, a flat
	// string-keyed table. EnvOverrides is the usual implementation.
	Overrides func(key string) (string, bool)

	// Defaults is the documented default table. A blank field means the
	// corresponding property has no default and must be supplied by the
	// caller or an override signal.
	Defaults struct {
		Region         string
		Environment    string
		Suffix         string
		StateBucket    string
		StateLockTable string
		Ephemeral      string
		Tags           map[string]string
	}

	// Resolved is the fully-populated stack configuration. Every field holds
	// a deterministic value; it is read-only for the remainder of the
	// pipeline.
	Resolved struct {
		AppName        string
		Region         string
		Environment    string
		Suffix         string
		StateBucket    string
		StateLockTable string
		Ephemeral      bool

		tags map[string]string
	}
)

// StandardDefaults is the documented default table. AppName deliberately has
// no default; a stack without a name is a resolution error.
var StandardDefaults = Defaults{
	Region:         "us-east-1",
	Environment:    "dev",
	Suffix:         "main",
	StateBucket:    "stackforge-state",
	StateLockTable: "stackforge-locks",
	Ephemeral:      "false",
	Tags:           map[string]string{"managed-by": "stackforge"},
}

// EnvOverrides reads override signals from the process environment.
func EnvOverrides(key string) (string, bool) {
	return os.LookupEnv(key)
}

// NoOverrides is an Overrides table with every key absent.
func NoOverrides(string) (string, bool) {
	return "", false
}

// Resolve merges the caller-supplied properties, the default table, and the
// override signals into one Resolved record. Precedence per field, highest
// first: override signal, caller property, documented default. An empty (or
// whitespace-only) value at any level falls through to the next; it never
// wins over a lower-precedence non-empty value. Resolution is a pure
// function of its inputs.
func Resolve(props Properties, defaults Defaults, overrides Overrides) (Resolved, error) {
	if overrides == nil {
		overrides = NoOverrides
	}

	var (
		cfg Resolved
		err error
	)

	fields := []struct {
		name        string
		overrideKey string
		caller      string
		def         string
		into        *string
	}{
		{"app", OverrideApp, props.AppName, "", &cfg.AppName},
		{"region", OverrideRegion, props.Region, defaults.Region, &cfg.Region},
		{"environment", OverrideEnvironment, props.Environment, defaults.Environment, &cfg.Environment},
		{"suffix", OverrideSuffix, props.Suffix, defaults.Suffix, &cfg.Suffix},
		{"state_bucket", OverrideStateBucket, props.StateBucket, defaults.StateBucket, &cfg.StateBucket},
		{"state_lock_table", OverrideStateLockTable, props.StateLockTable, defaults.StateLockTable, &cfg.StateLockTable},
	}

	for _, f := range fields {
		*f.into, err = resolveField(f.name, f.overrideKey, f.caller, f.def, overrides)
		if err != nil {
			return Resolved{}, err
		}
	}

	ephemeral, err := resolveField("ephemeral", OverrideEphemeral, props.Ephemeral, defaults.Ephemeral, overrides)
	if err != nil {
		return Resolved{}, err
	}
	cfg.Ephemeral, err = strconv.ParseBool(ephemeral)
	if err != nil {
		return Resolved{}, &InvalidValueError{Field: "ephemeral", Value: ephemeral, Cause: err}
	}

	cfg.tags = resolveTags(props.Tags, defaults.Tags, overrides)

	return cfg, nil
}

// resolveField applies the precedence rule for a single scalar field. Every
// level is trimmed; a whitespace-only value falls through the same as an
// absent one.
func resolveField(name, overrideKey, caller, def string, overrides Overrides) (string, error) {
	if v, ok := overrides(overrideKey); ok {
		if v = strings.TrimSpace(v); v != "" {
			return v, nil
		}
	}
	if v := strings.TrimSpace(caller); v != "" {
		return v, nil
	}
	if v := strings.TrimSpace(def); v != "" {
		return v, nil
	}
	return "", &MissingFieldError{Field: name}
}

// resolveTags merges per key: defaults, then caller tags, then any pairs from
// the override signal, later entries winning.
func resolveTags(caller, def map[string]string, overrides Overrides) map[string]string {
	tags := make(map[string]string, len(def)+len(caller))
	for k, v := range def {
		tags[k] = v
	}
	for k, v := range caller {
		if v != "" {
			tags[k] = v
		}
	}
	if raw, ok := overrides(OverrideTags); ok {
		for _, pair := range strings.Split(raw, ",") {
			k, v, ok := strings.Cut(pair, "=")
			if !ok {
				continue
			}
			k, v = strings.TrimSpace(k), strings.TrimSpace(v)
			if k == "" || v == "" {
				continue
			}
			tags[k] = v
		}
	}
	return tags
}

// Tags returns a copy of the resolved tag set, so downstream consumers cannot
// mutate the shared record.
func (r Resolved) Tags() map[string]string {
	tags := make(map[string]string, len(r.tags))
	for k, v := range r.tags {
		tags[k] = v
	}
	return tags
}

// Scalar looks up a resolved scalar field by its property name. It is how
// module descriptors declare inputs sourced from configuration rather than
// from another module's outputs.
func (r Resolved) Scalar(name string) (string, bool) {
	switch name {
	case "app":
		return r.AppName, true
	case "region":
		return r.Region, true
	case "environment":
		return r.Environment, true
	case "suffix":
		return r.Suffix, true
	case "state_bucket":
		return r.StateBucket, true
	case "state_lock_table":
		return r.StateLockTable, true
	case "ephemeral":
		return strconv.FormatBool(r.Ephemeral), true
	default:
		return "", false
	}
}

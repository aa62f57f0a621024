package types

import "errors"

var (
	ErrNoProfileInput       = errors.New("no usage profile provided. Pass usage flags, a config file, or run with --discover")
	ErrDiscoveryNoProfile   = errors.New("discovery session ended without producing a usage profile")
	ErrDiscoveryNotEnabled  = errors.New("discovery endpoint not configured. Set AI_COST_ENDPOINT or the discovery section of the config file")
	ErrNegativeProfileValue = errors.New("usage profile values must be non-negative")
)

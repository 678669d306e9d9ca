package config

import "errors"

var (
	// ErrInvalid reports a setting outside its allowed range. The message
	// names the offending key.
	ErrInvalid = errors.New("config: invalid setting")

	// ErrRead reports a configuration file that could not be read or parsed.
	ErrRead = errors.New("config: cannot load file")
)

// Package config holds the tunable settings of a segcolor run: one YAML
// section per engine plus the run, logging and metrics sections.
//
// Every field defaults to the reference value (Default). Load overlays a
// YAML file onto the defaults, so a file only needs the keys it changes:
//
//	run:
//	  threads: 4
//	  time_limit: 10m
//	repair:
//	  policy: fifo
//	  tolerance: 1.1
//	local_search:
//	  badify: 50
//
// Durations use Go syntax ("1.5s", "10m"). Validate reports the first bad
// key wrapped in ErrInvalid. The *Options methods translate a section into
// the options struct of the matching engine package; loggers and random
// sources are attached by the caller.
package config

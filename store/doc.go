// Package store persists best-known colourings, one JSON file per instance
// in a solutions directory (<dir>/<id>.json):
//
//	{"type":"Solution_CGSHOP2022","instance":"<id>","num_colors":k,"colors":[...]}
//
// A missing file is not an error: it means no solution is known and any
// valid colouring improves on it. SaveIfBetter verifies the candidate,
// compares it with the stored one and replaces the file atomically (temp
// file + rename). Writes through one Store are serialised; concurrent
// processes sharing a directory may race, last writer wins.
package store

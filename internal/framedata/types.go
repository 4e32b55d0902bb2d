// Package framedata provides the frame-data lookup used by the !frames command.
//
// Frame data is loaded from a YAML file listing characters and their moves.
// Each character and move carries a case-insensitive regular expression used
// to match free-text user queries; when no pattern is given the name (or the
// move input) must match exactly, ignoring case.
//
// # File Format
//
//	characters:
//	  - name: "Sol Badguy"
//	    match: "^sol"
//	    moves:
//	      - name: "5K"
//	        input: "5K"
//	        match: "^5k$"
//	        damage: "25"
//	        guard: "All"
//	        startup: "3"
//	        active: "3"
//	        recovery: "8"
//	        on_block: "-1"
//	        on_hit: "+2"
//	        level: "0"
//
// Values are opaque strings and are displayed as written.
package framedata

import (
	"errors"
	"regexp"
)

var (
	// ErrUnknownCharacter is returned when no character matches the query
	ErrUnknownCharacter = errors.New("unknown character")
	// ErrUnknownMove is returned when the character matched but none of its moves did
	ErrUnknownMove = errors.New("unknown move")
)

// Move is the frame data of a single move
type Move struct {
	Name     string `yaml:"name"`
	Input    string `yaml:"input"`
	Match    string `yaml:"match"`
	Damage   string `yaml:"damage"`
	Guard    string `yaml:"guard"`
	Startup  string `yaml:"startup"`
	Active   string `yaml:"active"`
	Recovery string `yaml:"recovery"`
	OnBlock  string `yaml:"on_block"`
	OnHit    string `yaml:"on_hit"`
	Level    string `yaml:"level"`

	matcher *regexp.Regexp
}

// Character is a playable character and its moves
type Character struct {
	Name  string `yaml:"name"`
	Match string `yaml:"match"`
	Moves []Move `yaml:"moves"`

	matcher *regexp.Regexp
}

// File is the top-level structure of a frame-data file
type File struct {
	Game       string      `yaml:"game"`
	Characters []Character `yaml:"characters"`
}

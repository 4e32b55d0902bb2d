package framedata

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/keepmind9/framebot/internal/logger"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Store answers frame-data queries. It is read-only after loading and safe
// for concurrent use.
type Store struct {
	game       string
	characters []Character
}

// LoadFile reads and compiles a frame-data file
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read frame data file: %w", err)
	}

	store, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load frame data from %s: %w", path, err)
	}

	logger.WithFields(logrus.Fields{
		"file":       path,
		"game":       store.game,
		"characters": len(store.characters),
	}).Info("frame-data-loaded")

	return store, nil
}

// Parse builds a Store from YAML frame data
func Parse(data []byte) (*Store, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse frame data: %w", err)
	}
	return New(file)
}

// New compiles the matchers of every character and move in file
func New(file File) (*Store, error) {
	if len(file.Characters) == 0 {
		return nil, fmt.Errorf("frame data has no characters")
	}

	characters := make([]Character, len(file.Characters))
	for i, c := range file.Characters {
		if c.Name == "" {
			return nil, fmt.Errorf("character #%d has no name", i+1)
		}

		matcher, err := compileMatcher(c.Match, c.Name)
		if err != nil {
			return nil, fmt.Errorf("invalid match for character %s: %w", c.Name, err)
		}
		c.matcher = matcher

		moves := make([]Move, len(c.Moves))
		for j, m := range c.Moves {
			if m.Input == "" {
				m.Input = m.Name
			}
			if m.Input == "" {
				return nil, fmt.Errorf("move #%d of %s has neither name nor input", j+1, c.Name)
			}
			matcher, err := compileMatcher(m.Match, m.Input, m.Name)
			if err != nil {
				return nil, fmt.Errorf("invalid match for move %s of %s: %w", m.Input, c.Name, err)
			}
			m.matcher = matcher
			moves[j] = m
		}
		c.Moves = moves
		characters[i] = c
	}

	return &Store{game: file.Game, characters: characters}, nil
}

// Find returns the first move of the first character matching the queries.
// Queries are matched as given; the caller keeps the original text for
// error messages.
func (s *Store) Find(characterQuery, moveQuery string) (Move, error) {
	for _, c := range s.characters {
		if !c.matcher.MatchString(characterQuery) {
			continue
		}
		for _, m := range c.Moves {
			if m.matcher.MatchString(moveQuery) {
				return m, nil
			}
		}
		return Move{}, fmt.Errorf("%w: %s has no move matching %q", ErrUnknownMove, c.Name, moveQuery)
	}
	return Move{}, fmt.Errorf("%w: %q", ErrUnknownCharacter, characterQuery)
}

// Characters returns the names of all loaded characters in file order
func (s *Store) Characters() []string {
	names := make([]string, len(s.characters))
	for i, c := range s.characters {
		names[i] = c.Name
	}
	return names
}

// Game returns the game title declared in the frame-data file
func (s *Store) Game() string {
	return s.game
}

// compileMatcher compiles pattern case-insensitively. An empty pattern matches
// any of names exactly, ignoring case.
func compileMatcher(pattern string, names ...string) (*regexp.Regexp, error) {
	if pattern == "" {
		quoted := make([]string, 0, len(names))
		for _, n := range names {
			if n != "" {
				quoted = append(quoted, regexp.QuoteMeta(n))
			}
		}
		pattern = "^(?:" + strings.Join(quoted, "|") + ")$"
	}
	return regexp.Compile("(?i)" + pattern)
}

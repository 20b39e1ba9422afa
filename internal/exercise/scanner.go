package exercise

import (
	"fmt"
	"log/slog"
	"os"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/felixgeelhaar/pickex/internal/domain"
)

// markerPattern selects candidate marker files before strict parsing
const markerPattern = "ch*_ex*.*"

// MarkerSource lists the names of completion marker files
type MarkerSource interface {
	Markers() ([]string, error)
}

// DirSource lists marker files in a directory
type DirSource struct {
	Dir string
}

// Markers returns the names of regular files matching ch*_ex*.*.
// A missing directory has no markers.
func (d DirSource) Markers() ([]string, error) {
	entries, err := os.ReadDir(d.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read done directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if ok, _ := path.Match(markerPattern, entry.Name()); ok {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// ParseMarker parses a marker file name of the form ch<C>_ex<E>.<ext>
func ParseMarker(name string) (domain.Ref, bool) {
	stem, _, found := strings.Cut(name, ".")
	if !found {
		return domain.Ref{}, false
	}

	chPart, exPart, found := strings.Cut(stem, "_")
	if !found {
		return domain.Ref{}, false
	}

	chapter, ok := parseNumber(chPart, "ch")
	if !ok {
		return domain.Ref{}, false
	}
	exercise, ok := parseNumber(exPart, "ex")
	if !ok {
		return domain.Ref{}, false
	}

	return domain.Ref{Chapter: chapter, Exercise: exercise}, true
}

func parseNumber(s, prefix string) (int, bool) {
	digits, ok := strings.CutPrefix(s, prefix)
	if !ok || digits == "" {
		return 0, false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// Completion maps a chapter to its completed exercise numbers
type Completion map[int]map[int]struct{}

// Add marks an exercise as done
func (c Completion) Add(ref domain.Ref) {
	set, ok := c[ref.Chapter]
	if !ok {
		set = make(map[int]struct{})
		c[ref.Chapter] = set
	}
	set[ref.Exercise] = struct{}{}
}

// Done reports whether an exercise is marked as done
func (c Completion) Done(ref domain.Ref) bool {
	_, ok := c[ref.Chapter][ref.Exercise]
	return ok
}

// Exercises returns the sorted completed exercises of a chapter
func (c Completion) Exercises(chapter int) []int {
	exercises := make([]int, 0, len(c[chapter]))
	for e := range c[chapter] {
		exercises = append(exercises, e)
	}
	slices.Sort(exercises)
	return exercises
}

// Scanner derives completions from marker files
type Scanner struct {
	catalog *Catalog
	source  MarkerSource
}

// NewScanner creates a new completion scanner
func NewScanner(catalog *Catalog, source MarkerSource) *Scanner {
	return &Scanner{catalog: catalog, source: source}
}

// Scan returns the completed exercises found by the source.
// Every catalog chapter is present in the result, possibly empty.
// Markers for chapters outside the catalog are kept as well.
func (s *Scanner) Scan() (Completion, error) {
	done := make(Completion)
	for _, ch := range s.catalog.Chapters() {
		done[ch] = make(map[int]struct{})
	}

	names, err := s.source.Markers()
	if err != nil {
		return nil, fmt.Errorf("list markers: %w", err)
	}

	for _, name := range names {
		ref, ok := ParseMarker(name)
		if !ok {
			slog.Debug("skipping malformed marker", "name", name)
			continue
		}
		if !s.catalog.HasChapter(ref.Chapter) {
			slog.Debug("marker for chapter outside catalog", "name", name, "chapter", ref.Chapter)
		}
		done.Add(ref)
	}

	return done, nil
}

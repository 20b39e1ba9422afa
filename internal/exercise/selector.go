package exercise

import (
	"fmt"
	"slices"

	"github.com/felixgeelhaar/pickex/internal/domain"
	"github.com/hashicorp/go-multierror"
)

// Filter describes which exercises are eligible for a draw
type Filter struct {
	FromChapters     []int    // nil means "derive from groups"
	ExcludeChapters  []int
	FromGroups       []string // nil means all groups
	ExcludeGroups    []string
	IncludeCompleted bool
}

// Validate checks that every chapter and group exists in the catalog
func (f Filter) Validate(catalog *Catalog) error {
	var result error

	for _, chapters := range [][]int{f.FromChapters, f.ExcludeChapters} {
		for _, n := range chapters {
			if !catalog.HasChapter(n) {
				result = multierror.Append(result, fmt.Errorf("%w: %d", domain.ErrUnknownChapter, n))
			}
		}
	}
	for _, groups := range [][]string{f.FromGroups, f.ExcludeGroups} {
		for _, g := range groups {
			if !catalog.HasGroup(g) {
				result = multierror.Append(result, fmt.Errorf("%w: %s", domain.ErrUnknownGroup, g))
			}
		}
	}

	return result
}

// Selection is the resolved chapter set and its candidate exercises
type Selection struct {
	Chapters   []int
	Candidates []domain.Ref
}

// Select resolves a filter against the catalog and the completed exercises.
// Candidates are sorted by chapter, then exercise.
func Select(catalog *Catalog, done Completion, f Filter) (Selection, error) {
	chapters := resolveChapters(catalog, f)
	if len(chapters) == 0 {
		return Selection{}, domain.ErrEmptyChapterSet
	}

	var candidates []domain.Ref
	for _, ch := range chapters {
		for _, ex := range catalog.ExercisesOf(ch) {
			ref := domain.Ref{Chapter: ch, Exercise: ex}
			if !f.IncludeCompleted && done.Done(ref) {
				continue
			}
			candidates = append(candidates, ref)
		}
	}

	return Selection{Chapters: chapters, Candidates: candidates}, nil
}

func resolveChapters(catalog *Catalog, f Filter) []int {
	set := make(map[int]struct{})

	if f.FromChapters != nil {
		for _, n := range f.FromChapters {
			set[n] = struct{}{}
		}
	} else {
		groups := f.FromGroups
		if groups == nil {
			groups = catalog.Groups()
		}
		for _, g := range groups {
			if slices.Contains(f.ExcludeGroups, g) {
				continue
			}
			for _, n := range catalog.ChaptersOf(g) {
				set[n] = struct{}{}
			}
		}
	}

	for _, n := range f.ExcludeChapters {
		delete(set, n)
	}

	chapters := make([]int, 0, len(set))
	for n := range set {
		chapters = append(chapters, n)
	}
	slices.Sort(chapters)
	return chapters
}

package exercise

import (
	"fmt"
	"slices"

	"github.com/felixgeelhaar/pickex/internal/domain"
	"github.com/hashicorp/go-multierror"
)

// Catalog is an immutable table of chapters and chapter groups
type Catalog struct {
	chapters map[int]domain.Chapter
	groups   map[string][]int
	order    []string // group names in declaration order
}

// NewCatalog builds a catalog from chapter and group tables.
// All defects are reported together.
func NewCatalog(chapters []domain.Chapter, groups []domain.Group) (*Catalog, error) {
	c := &Catalog{
		chapters: make(map[int]domain.Chapter, len(chapters)),
		groups:   make(map[string][]int, len(groups)),
	}

	var result error
	for _, ch := range chapters {
		if ch.Number <= 0 {
			result = multierror.Append(result, fmt.Errorf("chapter %d: number must be positive", ch.Number))
			continue
		}
		if ch.Exercises <= 0 {
			result = multierror.Append(result, fmt.Errorf("chapter %d: exercise count must be positive", ch.Number))
			continue
		}
		if _, ok := c.chapters[ch.Number]; ok {
			result = multierror.Append(result, fmt.Errorf("chapter %d: declared twice", ch.Number))
			continue
		}
		c.chapters[ch.Number] = ch
	}

	owner := make(map[int]string)
	for _, g := range groups {
		if g.Name == "" {
			result = multierror.Append(result, fmt.Errorf("group with chapters %v: name required", g.Chapters))
			continue
		}
		if _, ok := c.groups[g.Name]; ok {
			result = multierror.Append(result, fmt.Errorf("group %s: declared twice", g.Name))
			continue
		}

		members := make([]int, 0, len(g.Chapters))
		for _, n := range g.Chapters {
			if _, ok := c.chapters[n]; !ok {
				result = multierror.Append(result, fmt.Errorf("group %s: %w %d", g.Name, domain.ErrUnknownChapter, n))
				continue
			}
			if prev, ok := owner[n]; ok {
				result = multierror.Append(result, fmt.Errorf("group %s: chapter %d already in group %s", g.Name, n, prev))
				continue
			}
			owner[n] = g.Name
			members = append(members, n)
		}
		slices.Sort(members)

		c.groups[g.Name] = members
		c.order = append(c.order, g.Name)
	}

	if result != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, result)
	}
	return c, nil
}

// ExercisesOf returns the exercise numbers of a chapter, 1..N.
// Unknown chapters yield nil.
func (c *Catalog) ExercisesOf(chapter int) []int {
	ch, ok := c.chapters[chapter]
	if !ok {
		return nil
	}
	exercises := make([]int, ch.Exercises)
	for i := range exercises {
		exercises[i] = i + 1
	}
	return exercises
}

// ChaptersOf returns the sorted chapters of a group
func (c *Catalog) ChaptersOf(group string) []int {
	return slices.Clone(c.groups[group])
}

// Chapters returns all chapter numbers in ascending order
func (c *Catalog) Chapters() []int {
	numbers := make([]int, 0, len(c.chapters))
	for n := range c.chapters {
		numbers = append(numbers, n)
	}
	slices.Sort(numbers)
	return numbers
}

// Groups returns group names in declaration order
func (c *Catalog) Groups() []string {
	return slices.Clone(c.order)
}

// Chapter returns a chapter by number
func (c *Catalog) Chapter(number int) (domain.Chapter, bool) {
	ch, ok := c.chapters[number]
	return ch, ok
}

// HasChapter reports whether the chapter exists
func (c *Catalog) HasChapter(number int) bool {
	_, ok := c.chapters[number]
	return ok
}

// HasGroup reports whether the group exists
func (c *Catalog) HasGroup(name string) bool {
	_, ok := c.groups[name]
	return ok
}

// Contains reports whether ref names an exercise of the catalog
func (c *Catalog) Contains(ref domain.Ref) bool {
	ch, ok := c.chapters[ref.Chapter]
	return ok && ref.Exercise >= 1 && ref.Exercise <= ch.Exercises
}

// Size returns the total number of exercises
func (c *Catalog) Size() int {
	total := 0
	for _, ch := range c.chapters {
		total += ch.Exercises
	}
	return total
}

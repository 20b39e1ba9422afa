package exercise

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/felixgeelhaar/pickex/internal/domain"
)

// Draw is the outcome of a single pick
type Draw struct {
	Chapters  []int        // resolved chapter set
	Available int          // candidates before sampling
	Picked    []domain.Ref // sorted by chapter, then exercise
}

// ChapterProgress summarizes completion for one chapter
type ChapterProgress struct {
	Chapter domain.Chapter
	Done    int
}

// Ratio returns the completed fraction of the chapter
func (p ChapterProgress) Ratio() float64 {
	if p.Chapter.Exercises == 0 {
		return 0
	}
	return float64(p.Done) / float64(p.Chapter.Exercises)
}

// Picker selects exercises from a catalog, skipping completed ones
type Picker struct {
	catalog *Catalog
	scanner *Scanner
	sampler *Sampler
}

// NewPicker creates a new picker
func NewPicker(catalog *Catalog, source MarkerSource, sampler *Sampler) *Picker {
	return &Picker{
		catalog: catalog,
		scanner: NewScanner(catalog, source),
		sampler: sampler,
	}
}

// Catalog returns the catalog the picker draws from
func (p *Picker) Catalog() *Catalog {
	return p.catalog
}

// Pick draws up to n exercises matching the filter
func (p *Picker) Pick(f Filter, n int) (Draw, error) {
	if n < 0 {
		return Draw{}, fmt.Errorf("%w: %d", domain.ErrInvalidCount, n)
	}
	if err := f.Validate(p.catalog); err != nil {
		return Draw{}, err
	}

	done := make(Completion)
	if !f.IncludeCompleted {
		var err error
		done, err = p.scanner.Scan()
		if err != nil {
			return Draw{}, fmt.Errorf("scan completed exercises: %w", err)
		}
	}

	sel, err := Select(p.catalog, done, f)
	if err != nil {
		return Draw{}, err
	}
	slog.Debug("resolved selection",
		"chapters", sel.Chapters,
		"candidates", len(sel.Candidates),
		"include_completed", f.IncludeCompleted)

	picked := p.sampler.Sample(sel.Candidates, n)
	slices.SortFunc(picked, domain.Ref.Compare)

	return Draw{
		Chapters:  sel.Chapters,
		Available: len(sel.Candidates),
		Picked:    picked,
	}, nil
}

// Progress reports completed exercises per catalog chapter.
// Markers outside a chapter's range are not counted.
func (p *Picker) Progress() ([]ChapterProgress, error) {
	done, err := p.scanner.Scan()
	if err != nil {
		return nil, fmt.Errorf("scan completed exercises: %w", err)
	}

	chapters := p.catalog.Chapters()
	progress := make([]ChapterProgress, 0, len(chapters))
	for _, n := range chapters {
		ch, _ := p.catalog.Chapter(n)
		count := 0
		for _, ex := range done.Exercises(n) {
			if p.catalog.Contains(domain.Ref{Chapter: n, Exercise: ex}) {
				count++
			}
		}
		progress = append(progress, ChapterProgress{Chapter: ch, Done: count})
	}
	return progress, nil
}

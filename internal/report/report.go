// Package report renders draws, progress and the catalog for the terminal.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/felixgeelhaar/pickex/internal/exercise"
)

// Draw prints the number of available exercises and the picked ones
func Draw(w io.Writer, draw exercise.Draw) error {
	if _, err := fmt.Fprintf(w, "%d available exercises from chapters %s.\n",
		draw.Available, formatSet(draw.Chapters)); err != nil {
		return err
	}
	if len(draw.Picked) == 0 {
		return nil
	}

	plural := ""
	if len(draw.Picked) > 1 {
		plural = "s"
	}
	if _, err := fmt.Fprintf(w, "You got %d exercise%s:\n", len(draw.Picked), plural); err != nil {
		return err
	}
	for _, ref := range draw.Picked {
		if _, err := fmt.Fprintf(w, "\tchapter %d, exercise %d\n", ref.Chapter, ref.Exercise); err != nil {
			return err
		}
	}
	return nil
}

// Progress prints a completion bar per chapter and an overall total
func Progress(w io.Writer, progress []exercise.ChapterProgress) error {
	var b strings.Builder
	b.WriteString("Progress by Chapter\n")
	b.WriteString("===================\n")

	done, total := 0, 0
	for _, p := range progress {
		fmt.Fprintf(&b, "%2d %s %3d/%-3d %s\n",
			p.Chapter.Number, renderProgressBar(p.Ratio(), 20), p.Done, p.Chapter.Exercises, p.Chapter.Title)
		done += p.Done
		total += p.Chapter.Exercises
	}

	ratio := 0.0
	if total > 0 {
		ratio = float64(done) / float64(total)
	}
	fmt.Fprintf(&b, "\nTotal: %d/%d (%.1f%%)\n", done, total, ratio*100)

	_, err := io.WriteString(w, b.String())
	return err
}

// Catalog prints every group with its chapters
func Catalog(w io.Writer, catalog *exercise.Catalog) error {
	var b strings.Builder
	for _, g := range catalog.Groups() {
		fmt.Fprintf(&b, "%s\n", g)
		for _, n := range catalog.ChaptersOf(g) {
			ch, _ := catalog.Chapter(n)
			fmt.Fprintf(&b, "  %2d  %-36s %2d exercises\n", ch.Number, ch.Title, ch.Exercises)
		}
	}
	fmt.Fprintf(&b, "\n%d chapters, %d exercises\n", len(catalog.Chapters()), catalog.Size())

	_, err := io.WriteString(w, b.String())
	return err
}

// formatSet renders chapters as "{1, 3, 4}"
func formatSet(chapters []int) string {
	parts := make([]string, len(chapters))
	for i, c := range chapters {
		parts[i] = strconv.Itoa(c)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// renderProgressBar creates a visual progress bar
func renderProgressBar(value float64, width int) string {
	filled := int(value * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	empty := width - filled

	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", empty) + "]"
}

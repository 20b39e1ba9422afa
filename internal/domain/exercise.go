package domain

import (
	"cmp"
	"fmt"
)

// Chapter is a numbered section of the exercise catalog
type Chapter struct {
	Number    int
	Title     string
	Exercises int // exercises are numbered 1..Exercises
}

// Group is a named set of chapters used for coarse filtering
type Group struct {
	Name     string
	Chapters []int
}

// Ref identifies a single exercise within a chapter
type Ref struct {
	Chapter  int
	Exercise int
}

// Compare orders refs by chapter, then by exercise number
func (r Ref) Compare(o Ref) int {
	if c := cmp.Compare(r.Chapter, o.Chapter); c != 0 {
		return c
	}
	return cmp.Compare(r.Exercise, o.Exercise)
}

// String returns the marker file stem for the ref: "ch<C>_ex<E>"
func (r Ref) String() string {
	return fmt.Sprintf("ch%d_ex%d", r.Chapter, r.Exercise)
}

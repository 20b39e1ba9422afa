package exercise_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/felixgeelhaar/pickex/internal/domain"
	"github.com/felixgeelhaar/pickex/internal/exercise"
)

func singleChapterCatalog(t *testing.T) *exercise.Catalog {
	t.Helper()

	catalog, err := exercise.NewCatalog(
		[]domain.Chapter{{Number: 1, Title: "Only", Exercises: 3}},
		[]domain.Group{{Name: "only", Chapters: []int{1}}},
	)
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	return catalog
}

func refs(pairs ...[2]int) []domain.Ref {
	out := make([]domain.Ref, len(pairs))
	for i, p := range pairs {
		out[i] = domain.Ref{Chapter: p[0], Exercise: p[1]}
	}
	return out
}

func TestSelect_NothingDone(t *testing.T) {
	catalog := singleChapterCatalog(t)

	sel, err := exercise.Select(catalog, exercise.Completion{}, exercise.Filter{FromChapters: []int{1}})
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}

	want := refs([2]int{1, 1}, [2]int{1, 2}, [2]int{1, 3})
	if !slices.Equal(sel.Candidates, want) {
		t.Errorf("Candidates = %v; want %v", sel.Candidates, want)
	}
	if !slices.Equal(sel.Chapters, []int{1}) {
		t.Errorf("Chapters = %v; want [1]", sel.Chapters)
	}
}

func TestSelect_CompletedExercises(t *testing.T) {
	catalog := singleChapterCatalog(t)
	done := exercise.Completion{}
	done.Add(domain.Ref{Chapter: 1, Exercise: 2})

	tests := []struct {
		name             string
		includeCompleted bool
		want             []domain.Ref
	}{
		{"excluded", false, refs([2]int{1, 1}, [2]int{1, 3})},
		{"included", true, refs([2]int{1, 1}, [2]int{1, 2}, [2]int{1, 3})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := exercise.Filter{FromChapters: []int{1}, IncludeCompleted: tt.includeCompleted}
			sel, err := exercise.Select(catalog, done, f)
			if err != nil {
				t.Fatalf("Select() error = %v", err)
			}
			if !slices.Equal(sel.Candidates, tt.want) {
				t.Errorf("Candidates = %v; want %v", sel.Candidates, tt.want)
			}
		})
	}
}

func TestSelect_ResolveChapters(t *testing.T) {
	catalog := exercise.Default()

	tests := []struct {
		name   string
		filter exercise.Filter
		want   []int
	}{
		{
			name:   "all groups by default",
			filter: exercise.Filter{},
			want:   []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17},
		},
		{
			name:   "group minus chapter",
			filter: exercise.Filter{FromGroups: []string{"data_structures"}, ExcludeChapters: []int{2}},
			want:   []int{1, 3, 4},
		},
		{
			name:   "exclude groups from all",
			filter: exercise.Filter{ExcludeGroups: []string{"concepts_and_algorithms", "knowledge_based"}},
			want:   []int{1, 2, 3, 4, 16, 17},
		},
		{
			name:   "several groups",
			filter: exercise.Filter{FromGroups: []string{"hard", "moderate"}},
			want:   []int{16, 17},
		},
		{
			name: "explicit chapters ignore groups",
			filter: exercise.Filter{
				FromChapters:  []int{17, 3, 3},
				FromGroups:    []string{"data_structures"},
				ExcludeGroups: []string{"hard"},
			},
			want: []int{3, 17},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := exercise.Select(catalog, exercise.Completion{}, tt.filter)
			if err != nil {
				t.Fatalf("Select() error = %v", err)
			}
			if !slices.Equal(sel.Chapters, tt.want) {
				t.Errorf("Chapters = %v; want %v", sel.Chapters, tt.want)
			}
		})
	}
}

func TestSelect_EmptyChapterSet(t *testing.T) {
	catalog := exercise.Default()

	tests := []struct {
		name   string
		filter exercise.Filter
	}{
		{"chapter excluded", exercise.Filter{FromChapters: []int{1}, ExcludeChapters: []int{1}}},
		{"empty chapter list", exercise.Filter{FromChapters: []int{}}},
		{"empty group list", exercise.Filter{FromGroups: []string{}}},
		{"group excluded", exercise.Filter{FromGroups: []string{"hard"}, ExcludeGroups: []string{"hard"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := exercise.Select(catalog, exercise.Completion{}, tt.filter)
			if !errors.Is(err, domain.ErrEmptyChapterSet) {
				t.Errorf("Select() error = %v; want ErrEmptyChapterSet", err)
			}
		})
	}
}

func TestSelect_SubsetOfCatalog(t *testing.T) {
	catalog := exercise.Default()
	done := exercise.Completion{}
	done.Add(domain.Ref{Chapter: 1, Exercise: 1})
	done.Add(domain.Ref{Chapter: 99, Exercise: 1})
	done.Add(domain.Ref{Chapter: 16, Exercise: 40})

	sel, err := exercise.Select(catalog, done, exercise.Filter{})
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}

	if len(sel.Candidates) != catalog.Size()-1 {
		t.Errorf("Candidates len = %d; want %d", len(sel.Candidates), catalog.Size()-1)
	}
	for _, ref := range sel.Candidates {
		if !catalog.Contains(ref) {
			t.Errorf("candidate %v outside catalog", ref)
		}
	}
	if !slices.IsSortedFunc(sel.Candidates, domain.Ref.Compare) {
		t.Error("candidates are not sorted")
	}
}

func TestFilter_Validate(t *testing.T) {
	catalog := exercise.Default()

	if err := (exercise.Filter{FromChapters: []int{1, 17}, FromGroups: []string{"hard"}}).Validate(catalog); err != nil {
		t.Errorf("Validate() error = %v; want nil", err)
	}

	err := exercise.Filter{
		FromChapters:    []int{0},
		ExcludeChapters: []int{18},
		FromGroups:      []string{"easy"},
		ExcludeGroups:   []string{"hard"},
	}.Validate(catalog)
	if !errors.Is(err, domain.ErrUnknownChapter) {
		t.Errorf("Validate() error = %v; want ErrUnknownChapter", err)
	}
	if !errors.Is(err, domain.ErrUnknownGroup) {
		t.Errorf("Validate() error = %v; want ErrUnknownGroup", err)
	}
}

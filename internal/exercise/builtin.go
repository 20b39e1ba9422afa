package exercise

import "github.com/felixgeelhaar/pickex/internal/domain"

// Cracking the Coding Interview, 6th edition
var builtinChapters = []domain.Chapter{
	{Number: 1, Title: "Arrays and Strings", Exercises: 9},
	{Number: 2, Title: "Linked Lists", Exercises: 8},
	{Number: 3, Title: "Stacks and Queues", Exercises: 6},
	{Number: 4, Title: "Trees and Graphs", Exercises: 12},
	{Number: 5, Title: "Bit Manipulation", Exercises: 8},
	{Number: 6, Title: "Math and Logic Puzzles", Exercises: 10},
	{Number: 7, Title: "Object-Oriented Design", Exercises: 12},
	{Number: 8, Title: "Recursion and Dynamic Programming", Exercises: 14},
	{Number: 9, Title: "System Design and Scalability", Exercises: 8},
	{Number: 10, Title: "Sorting and Searching", Exercises: 11},
	{Number: 11, Title: "Testing", Exercises: 6},
	{Number: 12, Title: "C and C++", Exercises: 11},
	{Number: 13, Title: "Java", Exercises: 8},
	{Number: 14, Title: "Databases", Exercises: 7},
	{Number: 15, Title: "Threads and Locks", Exercises: 7},
	{Number: 16, Title: "Moderate", Exercises: 26},
	{Number: 17, Title: "Hard", Exercises: 26},
}

var builtinGroups = []domain.Group{
	{Name: "data_structures", Chapters: []int{1, 2, 3, 4}},
	{Name: "concepts_and_algorithms", Chapters: []int{5, 6, 7, 8, 9, 10, 11}},
	{Name: "knowledge_based", Chapters: []int{12, 13, 14, 15}},
	{Name: "moderate", Chapters: []int{16}},
	{Name: "hard", Chapters: []int{17}},
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := NewCatalog(builtinChapters, builtinGroups)
	if err != nil {
		panic(err)
	}
	return c
}

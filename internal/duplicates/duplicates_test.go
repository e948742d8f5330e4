package duplicates

import (
	"math/rand/v2"
	"slices"
	"sync"
	"testing"
)

func TestHasDuplicate(t *testing.T) {
	testCases := []struct {
		name     string
		input    []int
		expected bool
	}{
		{name: "sample input", input: []int{1, 2, 3, 4, 1}, expected: true},
		{name: "all distinct", input: []int{1, 2, 3, 4, 5}, expected: false},
		{name: "empty", input: []int{}, expected: false},
		{name: "nil", input: nil, expected: false},
		{name: "singleton", input: []int{42}, expected: false},
		{name: "pair", input: []int{7, 7}, expected: true},
		{name: "negative values", input: []int{-1, 0, 1, -1}, expected: true},
		{name: "many repeats", input: []int{1, 1, 1, 3, 3, 3, 4, 3, 4, 2}, expected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := HasDuplicate(tc.input)
			if result != tc.expected {
				t.Errorf("HasDuplicate(%v) = %v, Want: %v", tc.input, result, tc.expected)
			}
		})
	}
}

func TestHasDuplicate_Strings(t *testing.T) {
	if !HasDuplicate([]string{"eat", "tea", "eat"}) {
		t.Error("expected duplicate for repeated string")
	}
	if HasDuplicate([]string{"eat", "tea", "ate"}) {
		t.Error("expected no duplicate for distinct strings")
	}
}

func TestFirstDuplicate(t *testing.T) {
	testCases := []struct {
		input         []int
		expectedIndex int
		expectedFound bool
	}{
		{input: []int{1, 2, 3, 4, 1}, expectedIndex: 4, expectedFound: true},
		{input: []int{7, 7}, expectedIndex: 1, expectedFound: true},
		{input: []int{1, 2, 2, 1}, expectedIndex: 2, expectedFound: true},
		{input: []int{1, 2, 3}, expectedIndex: -1, expectedFound: false},
		{input: nil, expectedIndex: -1, expectedFound: false},
	}

	for _, tc := range testCases {
		index, found := FirstDuplicate(tc.input)
		if index != tc.expectedIndex || found != tc.expectedFound {
			t.Errorf("FirstDuplicate(%v) = (%d, %v), Want: (%d, %v)",
				tc.input, index, found, tc.expectedIndex, tc.expectedFound)
		}
	}
}

func TestHasDuplicateFunc(t *testing.T) {
	type point struct {
		X, Y int
		Tags []string
	}
	key := func(p point) [2]int { return [2]int{p.X, p.Y} }

	distinct := []point{{X: 1, Y: 2}, {X: 2, Y: 1}, {X: 0, Y: 0}}
	if HasDuplicateFunc(distinct, key) {
		t.Errorf("HasDuplicateFunc(%v) = true, Want: false", distinct)
	}

	repeated := []point{{X: 1, Y: 2, Tags: []string{"a"}}, {X: 3, Y: 3}, {X: 1, Y: 2, Tags: []string{"b"}}}
	if !HasDuplicateFunc(repeated, key) {
		t.Errorf("HasDuplicateFunc(%v) = false, Want: true", repeated)
	}
}

func TestCount(t *testing.T) {
	testCases := []struct {
		input    []int
		expected int
	}{
		{input: []int{1, 2, 3, 4, 1}, expected: 1},
		{input: []int{1, 1, 1}, expected: 2},
		{input: []int{1, 2, 3}, expected: 0},
		{input: []int{}, expected: 0},
	}

	for _, tc := range testCases {
		result := Count(tc.input)
		if result != tc.expected {
			t.Errorf("Count(%v) = %d, Want: %d", tc.input, result, tc.expected)
		}
		if (result > 0) != HasDuplicate(tc.input) {
			t.Errorf("Count(%v) = %d disagrees with HasDuplicate", tc.input, result)
		}
	}
}

func TestHasDuplicate_PermutationDoesNotChangeResult(t *testing.T) {
	rng := rand.New(rand.NewPCG(17, 217))

	inputs := [][]int{
		{1, 2, 3, 4, 1},
		{1, 2, 3, 4, 5},
		{-1, 0, 1, -1},
		{9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
	}

	for _, input := range inputs {
		expected := HasDuplicate(input)
		shuffled := slices.Clone(input)
		for range 20 {
			rng.Shuffle(len(shuffled), func(i, j int) {
				shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
			})
			if got := HasDuplicate(shuffled); got != expected {
				t.Fatalf("HasDuplicate(%v) = %v, Want: %v (permutation of %v)", shuffled, got, expected, input)
			}
		}
	}
}

func TestHasDuplicate_DoesNotMutateInput(t *testing.T) {
	input := []int{5, 3, 5, 1}
	original := slices.Clone(input)

	first := HasDuplicate(input)
	second := HasDuplicate(input)

	if first != second {
		t.Errorf("repeated calls disagree: %v then %v", first, second)
	}
	if !slices.Equal(input, original) {
		t.Errorf("input mutated: got %v, want %v", input, original)
	}
}

func TestHasDuplicate_Concurrent(t *testing.T) {
	withRepeat := []int{1, 2, 3, 4, 1}
	distinct := []int{1, 2, 3, 4, 5}

	var wg sync.WaitGroup
	errs := make(chan string, 64)

	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !HasDuplicate(withRepeat) {
				errs <- "expected duplicate"
			}
			if HasDuplicate(distinct) {
				errs <- "expected no duplicate"
			}
		}()
	}

	wg.Wait()
	close(errs)

	for msg := range errs {
		t.Error(msg)
	}
}

func BenchmarkHasDuplicate_Distinct(b *testing.B) {
	input := make([]int, 10_000)
	for i := range input {
		input[i] = i
	}

	b.ResetTimer()
	for range b.N {
		HasDuplicate(input)
	}
}

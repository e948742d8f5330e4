package main

import (
	"fmt"

	"github.com/povarna/generative-ai-agents/dupcheck/internal/duplicates"
)

func main() {
	input := []int{1, 2, 3, 4, 1}
	result := duplicates.HasDuplicate(input)
	fmt.Println(result)
}

package dto

// TestSetQuestionDTO is the outward shape of one selected question. Usage
// bookkeeping stays internal; only display fields are exposed.
type TestSetQuestionDTO struct {
	ID     uint   `json:"id"`
	Part   int    `json:"part"`
	Topic  string `json:"topic,omitempty"`
	Title  string `json:"title"`
	Prompt string `json:"prompt"`
}

// TestSetDTO is one generated speaking test: several Part 1 questions, a
// single Part 2 cue card, and several Part 3 follow-ups. ExhaustedParts lists
// parts whose catalog was smaller than the required count, so a caller can
// tell "fewer questions by design" from a failed selection.
type TestSetDTO struct {
	Part1          []TestSetQuestionDTO `json:"part1"`
	Part2          TestSetQuestionDTO   `json:"part2"`
	Part3          []TestSetQuestionDTO `json:"part3"`
	ExhaustedParts []int                `json:"exhausted_parts,omitempty"`
}

package gui

import "strings"

// SequenceInput holds the scaffold sequence text field state. Edits are
// filtered to nucleotide characters so pasting a FASTA body or a
// sequence with whitespace just works.
type SequenceInput struct {
	text string
}

// Set replaces the content with s, keeping only A, T, G and C (both
// cases). Returns the number of characters dropped.
func (q *SequenceInput) Set(s string) int {
	var b strings.Builder
	dropped := 0
	for _, r := range s {
		switch r {
		case 'A', 'T', 'G', 'C', 'a', 't', 'g', 'c':
			b.WriteRune(r)
		default:
			dropped++
		}
	}
	q.text = b.String()
	return dropped
}

// Text returns the current sequence.
func (q *SequenceInput) Text() string {
	return q.text
}

// Len returns the sequence length in nucleotides.
func (q *SequenceInput) Len() int {
	return len(q.text)
}

// IsEmpty reports whether no sequence was entered.
func (q *SequenceInput) IsEmpty() bool {
	return q.text == ""
}

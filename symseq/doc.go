// Package symseq generates the 12-letter morphic sequence and answers
// recurrence questions about its subwords.
//
// The alphabet is {A, B} × six directions. Each letter expands into seven
// letters (Rule); the sequence is the fixed point grown from A0, produced
// block by block: block b is Rule(seq[b]), so generation reads values it has
// already written.
//
// Recurrence
//
//	IndexOfLastNewSubword(L) is the start of the last length-L word to appear
//	for the first time. L=1 and L=2 are found by scanning the first
//	BaseWindow symbols for all twelve symbols and for every pair the rules
//	produce; if one is missing the scan fails with ErrSequenceTooShort.
//	Longer lengths are bounded by a shorter one (m = ⌈L/7⌉+1, bound
//	7·last(m)+6) and then scanned exactly. Results are memoized per length.
//
//	  IndexOfLastNewSubword(1) == 214   (B5 is the last letter to appear)
//	  IndexOfLastNewSubword(2) == 587
package symseq

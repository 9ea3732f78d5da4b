package movegen

import "sort"

// forEachPermutation invokes fn with every distinct ordering of every
// sub-multiset of the given letters with at least minLen tiles. Letters are
// sorted first and equal letters are only advanced in canonical order, so
// racks with duplicate tiles never yield the same sequence twice.
//
// The slice passed to fn is a reused buffer; fn must copy it if it needs to
// retain the letters.
func forEachPermutation(letters []rune, minLen int, fn func(perm []rune)) {
	if len(letters) < minLen {
		return
	}

	sorted := make([]rune, len(letters))
	copy(sorted, letters)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	used := make([]bool, len(sorted))
	buf := make([]rune, 0, len(sorted))

	var recurse func()
	recurse = func() {
		if len(buf) >= minLen {
			fn(buf)
		}
		if len(buf) == len(sorted) {
			return
		}
		for i := 0; i < len(sorted); i++ {
			if used[i] {
				continue
			}
			// Skip a duplicate letter unless its earlier copy is in use
			if i > 0 && sorted[i] == sorted[i-1] && !used[i-1] {
				continue
			}
			used[i] = true
			buf = append(buf, sorted[i])
			recurse()
			buf = buf[:len(buf)-1]
			used[i] = false
		}
	}
	recurse()
}

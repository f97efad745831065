// Package levenshtein computes the edit distance between two byte sequences
// with the textbook dynamic-programming fill, optionally returning an edit
// script.
//
// 🚀 What is the edit distance?
//
//	The minimum number of single-byte insertions, deletions and
//	substitutions that turn a into b. Typical uses:
//	  • DNA / protein sequence comparison
//	  • Spelling correction & fuzzy matching
//	  • Diffing short records
//
// ✨ Key features:
//   - full-matrix mode: O(N·M) memory, supports the edit script
//   - two-row mode: O(min(N,M)) memory, distance only (default)
//   - empty inputs are valid: Distance("", b) == len(b)
//
// ⚙️ Usage:
//
//	opts := levenshtein.DefaultOptions()
//	opts.MemoryMode = levenshtein.FullMatrix
//	opts.ReturnScript = true
//	dist, script, err := levenshtein.Distance(a, b, &opts)
//
// The package is the sequential reference for package wavefront: both must
// agree for every input and every worker count.
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (FullMatrix) or O(min(N,M)) (TwoRows)
package levenshtein

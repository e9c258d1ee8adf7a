// Package stringsearch implements the classic substring-search machinery:
// the prefix (failure) function with Knuth–Morris–Pratt matching, the
// Z-function with its matching variant, and Rabin–Karp rolling-hash search.
//
// Overview:
//
//   - PrefixFunction(s): π[i] is the length of the longest proper prefix of
//     s[0..i] that is also a suffix of it. Built iteratively in O(|s|).
//   - Find(text, pattern): KMP matching via the prefix function of
//     pattern + "#" + text. Because the separator occurs in neither input,
//     π can reach |pattern| only at genuine occurrences. O(|text|+|pattern|).
//   - ZFunction(s): z[i] is the length of the longest common prefix of s and
//     s[i:], with z[0] = 0 by convention. Built with the [l, r) window
//     technique in O(|s|).
//   - FindZ(text, pattern): the same concatenation trick read through the
//     Z-array: z[i] == |pattern| marks an occurrence.
//   - RabinKarp(text, pattern): polynomial rolling hash over all windows of
//     length |pattern|; hash hits are verified by direct comparison, so hash
//     collisions can cost time but never report a false position.
//
// All matchers return the 0-based byte positions of every occurrence in
// ascending order, or a nil slice when there is none (including the case of
// a pattern longer than the text). Absence of matches is not an error.
//
// Errors (sentinel):
//
//   - ErrEmptyPattern     the pattern is the empty string.
//   - ErrSeparatorInInput text or pattern contains the reserved separator
//     byte '#' (Find and FindZ only; RabinKarp has no separator).
package stringsearch

// Package match ranks known identifiers against a misspelled one for "did you
// mean" hints on unknown field and type names.
//
//   - Tokens and Normalize fold case and underscores;
//   - Levenshtein and Similarity measure edit distance;
//   - Suggest picks the few names worth showing.
package match

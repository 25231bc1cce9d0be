// Package diagnostic provides structured errors, warnings and infos for the
// fieldaccess generator.
//
// Key capabilities:
//   - Unknown type reports with "did you mean" suggestions
//   - Rejected struct tags
//   - Structs that declare no fields
package diagnostic

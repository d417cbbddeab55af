// Package sanitizer normalizes user-supplied text before validation and
// storage.
//
// Name and email normalization is idempotent. Invalid input is never an
// error here; validation happens afterwards.
//
// Normalization includes:
//   - Names: collapse whitespace, trim leading/trailing spaces
//   - Emails: trim surrounding whitespace only, case is preserved
//   - Free text: strip every HTML element and attribute, escaping what remains
package sanitizer

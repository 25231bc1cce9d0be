package common

// UnknownStr is the display text of out-of-range enum values.
const UnknownStr = "unknown"

// Package utils provides shared utility functions.
//
// These utilities are used across multiple packages and include:
//   - Branch naming and sanitization
//   - Reading piped input without blocking on a terminal
package utils

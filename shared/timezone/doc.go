// Package timezone centralizes time handling so every row timestamp is
// stamped in the configured application timezone.
package timezone

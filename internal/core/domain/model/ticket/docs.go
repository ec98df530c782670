// Package ticket provides the validated values a ticket is described by.
//
// The package includes:
//   - Title: a ticket title of 1 to 50 bytes, immutable once built
//   - Status: one of ToDo, InProgress or Done, parsed case-insensitively
//
// Both are plain values, safe to copy and to share between goroutines.
// Moving a ticket between statuses is left to whatever owns the ticket.
package ticket

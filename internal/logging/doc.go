// Package logging provides concrete implementations of the attrread.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted messages to stderr (or any io.Writer)
//   - NullLogger: Discards all messages (useful for testing)
//
// Log output never goes to stdout, which is reserved for the report.
package logging

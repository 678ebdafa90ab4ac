// Package journal provides an optional SQLite-backed log of conversions
// performed through the CLI.
//
// Each entry records the command, its input, the rendered output (or the
// error code when the conversion failed) and the unit label, if any.
//
// # Ordering
//
//   - Entries are ordered by seq, a logical counter assigned on insert
//     (MAX(seq)+1 inside the INSERT), never by wall-clock time.
//   - Queries use ORDER BY seq ASC, id ASC COLLATE BINARY.
//   - IDs are UUIDv7 strings unless a generator is supplied.
//
// # Database Configuration
//
//   - WAL mode, synchronous=NORMAL, busy_timeout=5000
//   - a single open connection, so inserts never race for seq
package journal

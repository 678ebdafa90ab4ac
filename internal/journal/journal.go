package journal

import (
	"database/sql"
	_ "embed"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Schema version tracking:
// 1 - Initial entries table
const currentSchemaVersion = 1

// Entry is one recorded conversion.
type Entry struct {
	ID        string `json:"id" yaml:"id"`
	Seq       int64  `json:"seq" yaml:"seq"`
	Command   string `json:"command" yaml:"command"`
	Input     string `json:"input" yaml:"input"`
	Output    string `json:"output,omitempty" yaml:"output,omitempty"`
	Unit      string `json:"unit,omitempty" yaml:"unit,omitempty"`
	ErrorCode string `json:"error_code,omitempty" yaml:"error_code,omitempty"`
}

// Failed reports whether the recorded conversion returned an error.
func (e Entry) Failed() bool {
	return e.ErrorCode != ""
}

// Journal is an append-only conversion log.
type Journal struct {
	db     *sql.DB
	newID  func() string
	logger *slog.Logger
}

// Option configures a Journal.
type Option func(*Journal)

// WithLogger sets the logger for debug output. The default discards logs.
func WithLogger(logger *slog.Logger) Option {
	return func(j *Journal) {
		j.logger = logger
	}
}

// WithIDGenerator replaces the UUIDv7 generator, e.g. for deterministic tests.
func WithIDGenerator(gen func() string) Option {
	return func(j *Journal) {
		j.newID = gen
	}
}

// NewUUIDv7 returns a time-sortable UUIDv7 string.
// Panics if UUID generation fails (should never happen in practice).
func NewUUIDv7() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Open creates or opens a journal database at path (":memory:" works).
// Applies pragmas and the schema; safe to call on an existing database.
func Open(path string, opts ...Option) (*Journal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to journal: %w", err)
	}

	// SQLite only supports one writer; one connection also keeps seq assignment serial.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	j := &Journal{
		db:     db,
		newID:  NewUUIDv7,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(j)
	}

	j.logger.Debug("journal opened", "path", path)
	return j, nil
}

// Close closes the database connection.
func (j *Journal) Close() error {
	if j.db == nil {
		return nil
	}
	return j.db.Close()
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("get user_version: %w", err)
	}
	if version > currentSchemaVersion {
		return fmt.Errorf("journal schema version %d is newer than supported version %d", version, currentSchemaVersion)
	}

	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}

	return nil
}

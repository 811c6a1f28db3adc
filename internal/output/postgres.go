package output

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/chrisdamba/dispatchlens/internal/models"

	_ "github.com/lib/pq"
)

// PostgresOutput stores report rows in one table per report topic, named
// after the topic. Tables are expected to exist with snake_case columns
// matching the report row fields.
type PostgresOutput struct {
	db *sql.DB
}

func NewPostgresOutput(cfg *models.DatabaseConfig) (*PostgresOutput, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	return &PostgresOutput{db: db}, nil
}

func (p *PostgresOutput) WriteMessage(topic string, msg []byte) error {
	var row map[string]interface{}
	if err := json.Unmarshal(msg, &row); err != nil {
		return err
	}

	columns := columnsFor(topic)
	cols := make([]string, 0, len(columns))
	placeholders := make([]string, 0, len(columns))
	vals := make([]interface{}, 0, len(columns))
	for i, column := range columns {
		cols = append(cols, camelToSnake(column))
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
		vals = append(vals, row[column])
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		topic,
		strings.Join(cols, ", "),
		strings.Join(placeholders, ", "),
	)

	if _, err := p.db.Exec(query, vals...); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", topic, err)
	}

	return nil
}

func (p *PostgresOutput) Close() error {
	return p.db.Close()
}

func camelToSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// This file implements the todos table operations: insert, get, delete,
// prune, and the filtered list query.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dukaforge/cltodo/pkg/types"
)

// dateLayout is the stored form of entry dates: RFC 3339 with the local UTC
// offset. SQL comparisons and ordering go through datetime(), which
// normalizes the offset, so strings recorded under different offsets still
// compare chronologically rather than lexically.
const dateLayout = time.RFC3339

// Insert persists one new entry and returns its assigned id.
func (s *Store) Insert(t types.Todo) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO todos (date, text, priority) VALUES (?, ?, ?)",
		t.Date.Format(dateLayout), t.Text, int64(t.Priority),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting todo: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading assigned id: %w", err)
	}
	return id, nil
}

// Get retrieves a single entry by id.
// Returns types.ErrNotFound when no row matches.
func (s *Store) Get(id int64) (types.Todo, error) {
	row := s.db.QueryRow("SELECT id, date, text, priority FROM todos WHERE id = ?", id)
	t, err := scanTodo(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Todo{}, types.ErrNotFound
		}
		return types.Todo{}, fmt.Errorf("getting todo %d: %w", id, err)
	}
	return t, nil
}

// Delete removes at most one entry. Deleting an id with no matching row is
// a silent no-op: the affected-row count is deliberately not inspected.
func (s *Store) Delete(id int64) error {
	if _, err := s.db.Exec("DELETE FROM todos WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting todo %d: %w", id, err)
	}
	return nil
}

// Prune removes every entry unconditionally. With the table emptied the
// implicit rowid sequence restarts, so the next insert is assigned id 1.
func (s *Store) Prune() error {
	if _, err := s.db.Exec("DELETE FROM todos"); err != nil {
		return fmt.Errorf("pruning todos: %w", err)
	}
	return nil
}

// List runs the single filtered, ordered query described by f and hydrates
// every match. Supplied predicates combine as a conjunction; with none, all
// rows match. A date bound drops rows whose stored date does not survive
// datetime() normalization, so corruption detection covers returned rows
// only. Ties on the stored second fall back to id order so repeated runs
// list identically. Unless f.Chronological is set, the date-ordered result
// is then re-bucketed by priority tier.
func (s *Store) List(f types.ListFilter) ([]types.Todo, error) {
	query := "SELECT id, date, text, priority FROM todos"
	var conditions []string
	var args []any

	if f.Priority != nil {
		conditions = append(conditions, "priority = ?")
		args = append(args, int64(*f.Priority))
	}
	if f.From != nil {
		conditions = append(conditions, "datetime(date) >= datetime(?)")
		args = append(args, f.From.Format(dateLayout))
	}
	if f.To != nil {
		conditions = append(conditions, "datetime(date) <= datetime(?)")
		args = append(args, f.To.Format(dateLayout))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	order := "DESC"
	if f.Reversed {
		order = "ASC"
	}
	query += fmt.Sprintf(" ORDER BY datetime(date) %s, id %s", order, order)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing todos: %w", err)
	}
	defer rows.Close()

	todos := make([]types.Todo, 0)
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating todo: %w", err)
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating todos: %w", err)
	}

	if !f.Chronological {
		todos = types.BucketByPriority(todos)
	}
	return todos, nil
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanTodo hydrates one row into a typed entry. A stored date that no
// longer parses or a priority tag outside the closed set is corruption and
// fails the whole operation rather than skipping the row.
func scanTodo(sc scanner) (types.Todo, error) {
	var t types.Todo
	var date string
	var tag int64
	if err := sc.Scan(&t.ID, &date, &t.Text, &tag); err != nil {
		return types.Todo{}, err
	}

	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return types.Todo{}, fmt.Errorf("todo %d: %w: %q", t.ID, types.ErrCorruptDate, date)
	}
	t.Date = parsed

	p, err := types.PriorityFromTag(tag)
	if err != nil {
		return types.Todo{}, fmt.Errorf("todo %d: %w", t.ID, err)
	}
	t.Priority = p

	return t, nil
}

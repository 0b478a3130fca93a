package postgres

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"Trellis/internal/core/event"
	"Trellis/internal/core/mvc"
	"Trellis/internal/todo"
)

// TodoModel is the persistent Model backend. Handlers execute their
// mutation against the todo_items table; FetchData selects the list in id
// order. The sequential id counter is seeded from the table at startup and
// advances in memory, so ids are never reused even after deletes.
type TodoModel struct {
	mvc.ModelBase
	db  *DB
	log zerolog.Logger

	mu     sync.Mutex
	nextID int
}

var _ mvc.Model[[]todo.Item] = (*TodoModel)(nil)

// NewTodoModel ensures the schema exists, seeds the id counter and
// registers handlers for the full todo event map.
func NewTodoModel(ctx context.Context, db *DB, baseLogger *zerolog.Logger) (*TodoModel, error) {
	m := &TodoModel{
		ModelBase: mvc.NewModelBase(),
		db:        db,
		log:       baseLogger.With().Str("component", "todo_pg_model").Logger(),
	}

	schema := `
		CREATE TABLE IF NOT EXISTS todo_items (
			id   INTEGER PRIMARY KEY,
			name TEXT    NOT NULL,
			done BOOLEAN NOT NULL DEFAULT FALSE
		)
	`
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		m.log.Error().Err(err).Msg("Failed to ensure todo_items schema")
		return nil, err
	}

	// COALESCE covers the empty table; ids start at 0.
	row := db.pool.QueryRow(ctx, `SELECT COALESCE(MAX(id) + 1, 0) FROM todo_items`)
	if err := row.Scan(&m.nextID); err != nil {
		m.log.Error().Err(err).Msg("Failed to seed id counter")
		return nil, err
	}

	event.Handle(m.Events(), todo.Add, m.add)
	event.Handle(m.Events(), todo.Remove, m.remove)
	event.Handle(m.Events(), todo.Toggle, m.toggle)
	event.Handle(m.Events(), todo.Clear, m.clear)

	m.log.Info().Int("next_id", m.nextID).Msg("Todo model ready")
	return m, nil
}

func (m *TodoModel) add(ctx context.Context, name string) (todo.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item := todo.Item{ID: m.nextID, Name: name}

	query := `INSERT INTO todo_items (id, name, done) VALUES ($1, $2, FALSE)`
	if _, err := m.db.pool.Exec(ctx, query, item.ID, item.Name); err != nil {
		m.log.Error().Err(err).Str("name", name).Msg("Failed to insert item")
		return todo.Item{}, err
	}

	m.nextID++
	return item, nil
}

func (m *TodoModel) remove(ctx context.Context, id int) (bool, error) {
	tag, err := m.db.pool.Exec(ctx, `DELETE FROM todo_items WHERE id = $1`, id)
	if err != nil {
		m.log.Error().Err(err).Int("id", id).Msg("Failed to delete item")
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (m *TodoModel) toggle(ctx context.Context, id int) (bool, error) {
	tag, err := m.db.pool.Exec(ctx, `UPDATE todo_items SET done = NOT done WHERE id = $1`, id)
	if err != nil {
		m.log.Error().Err(err).Int("id", id).Msg("Failed to toggle item")
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (m *TodoModel) clear(ctx context.Context, _ struct{}) (int, error) {
	tag, err := m.db.pool.Exec(ctx, `DELETE FROM todo_items`)
	if err != nil {
		m.log.Error().Err(err).Msg("Failed to clear items")
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

// FetchData returns the list in id order. It never mutates state.
func (m *TodoModel) FetchData(ctx context.Context) ([]todo.Item, error) {
	rows, err := m.db.pool.Query(ctx, `SELECT id, name, done FROM todo_items ORDER BY id`)
	if err != nil {
		m.log.Error().Err(err).Msg("Failed to query items")
		return nil, err
	}
	defer rows.Close()

	var items []todo.Item
	for rows.Next() {
		var item todo.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Done); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

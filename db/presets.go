package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Xordas/ScreenX/layout"
	"github.com/Xordas/ScreenX/model"
)

// SavePreset stores l under its name, replacing any preset with the same name. A
// replaced preset moves to the end of the list.
func (s *SQLiteStorage) SavePreset(l model.Layout) error {
	if l.Name == "" {
		return ErrMissingName
	}

	data, err := layout.Marshal(l)
	if err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("could not start transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.Exec(`delete from presets where name = ?`, l.Name); err != nil {
		return fmt.Errorf("could not replace preset %q: %w", l.Name, err)
	}

	if _, err := tx.Exec(`insert into presets(name, layout) values(?, ?)`, l.Name, string(data)); err != nil {
		return fmt.Errorf("could not save preset %q: %w", l.Name, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit preset %q: %w", l.Name, err)
	}

	return nil
}

func (s *SQLiteStorage) DeletePreset(name string) error {
	if name == "" {
		return ErrMissingName
	}

	if _, err := s.db.Exec(`delete from presets where name = ?`, name); err != nil {
		return fmt.Errorf("could not delete preset %q: %w", name, err)
	}

	return nil
}

func (s *SQLiteStorage) Preset(name string) (model.Layout, error) {
	var data string

	err := s.db.QueryRow(`select layout from presets where name = ?`, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Layout{}, fmt.Errorf("preset %q: %w", name, ErrNotFound)
	}

	if err != nil {
		return model.Layout{}, fmt.Errorf("could not load preset %q: %w", name, err)
	}

	return layout.Unmarshal([]byte(data))
}

// Presets returns all presets in the order they were last saved.
func (s *SQLiteStorage) Presets() ([]model.Layout, error) {
	rows, err := s.db.Query(`select layout from presets order by rowid`)
	if err != nil {
		return nil, fmt.Errorf("could not list presets: %w", err)
	}
	defer rows.Close()

	result := make([]model.Layout, 0)

	for rows.Next() {
		var data string

		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("could not read preset: %w", err)
		}

		l, err := layout.Unmarshal([]byte(data))
		if err != nil {
			return nil, err
		}

		result = append(result, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not list presets: %w", err)
	}

	return result, nil
}

func (s *SQLiteStorage) SaveCurrentLayout(l model.Layout) error {
	data, err := layout.Marshal(l)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`insert or replace into state(key, value) values(?, ?)`, currentLayoutKey, string(data))
	if err != nil {
		return fmt.Errorf("could not save current layout: %w", err)
	}

	return nil
}

// CurrentLayout returns ErrNotFound until a layout has been saved.
func (s *SQLiteStorage) CurrentLayout() (model.Layout, error) {
	var data string

	err := s.db.QueryRow(`select value from state where key = ?`, currentLayoutKey).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Layout{}, fmt.Errorf("current layout: %w", ErrNotFound)
	}

	if err != nil {
		return model.Layout{}, fmt.Errorf("could not load current layout: %w", err)
	}

	return layout.Unmarshal([]byte(data))
}

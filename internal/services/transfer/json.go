package transfer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/thenoetrevino/blogdb/internal/models"
)

// userRecord is the JSON form of a user; field order fixes key order
type userRecord struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// ExportUsersJSON writes every user to path as an indented JSON array.
// It returns the number of users written.
func (s *service) ExportUsersJSON(ctx context.Context, path string) (int, error) {
	if path == "" {
		return 0, ErrEmptyPath
	}

	users, err := s.snapshot(ctx)
	if err != nil {
		return 0, err
	}

	records := make([]userRecord, 0, len(users))
	for _, u := range users {
		records = append(records, userRecord{
			ID:        u.ID.ToInt(),
			Name:      u.Name,
			Email:     u.Email,
			CreatedAt: u.CreatedAt.Format(models.TimestampLayout),
		})
	}

	err = writeFile(path, func(f *os.File) error {
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(records); err != nil {
			return fileErr("write", path, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("users exported", "format", "json", "path", path, "rows", len(records))
	return len(records), nil
}

// ImportUsersJSON reads users from a JSON array of objects with string
// "name" and "email" keys. Other keys are ignored; elements without usable
// values are counted as malformed.
func (s *service) ImportUsersJSON(ctx context.Context, path string) (*models.ImportResult, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fileErr("read", path, err)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, fileErr("parse", path, fmt.Errorf("%w: %v", ErrNotArray, err))
	}

	if elements == nil {
		return nil, fileErr("parse", path, ErrNotArray)
	}

	result := &models.ImportResult{}
	rows := make([]models.NewUser, 0, len(elements))
	for i, raw := range elements {
		var obj map[string]any
		if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
			s.logger.Debug("skipping non-object element", "path", path, "index", i)
			result.Malformed++
			continue
		}
		name, nameOK := obj["name"].(string)
		email, emailOK := obj["email"].(string)
		if !nameOK || !emailOK {
			result.Malformed++
			continue
		}
		u, ok := newUser(name, email)
		if !ok {
			result.Malformed++
			continue
		}
		rows = append(rows, u)
	}

	return s.store(ctx, path, rows, result)
}

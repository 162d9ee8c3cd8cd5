package transfer

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"

	"github.com/thenoetrevino/blogdb/internal/models"
)

var csvHeader = []string{"ID", "Name", "Email", "Created At"}

// ExportUsersCSV writes every user to path as CSV with a header row.
// It returns the number of users written.
func (s *service) ExportUsersCSV(ctx context.Context, path string) (int, error) {
	if path == "" {
		return 0, ErrEmptyPath
	}

	users, err := s.snapshot(ctx)
	if err != nil {
		return 0, err
	}

	err = writeFile(path, func(f *os.File) error {
		w := csv.NewWriter(f)
		if err := w.Write(csvHeader); err != nil {
			return fileErr("write", path, err)
		}
		for _, u := range users {
			record := []string{u.ID.String(), u.Name, u.Email, u.CreatedAt.Format(models.TimestampLayout)}
			if err := w.Write(record); err != nil {
				return fileErr("write", path, err)
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return fileErr("write", path, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("users exported", "format", "csv", "path", path, "rows", len(users))
	return len(users), nil
}

// ImportUsersCSV reads users from a CSV file in the export layout. The first
// row is a header and is skipped; name and email are taken from the second
// and third columns. Rows that cannot be used are counted as malformed.
func (s *service) ImportUsersCSV(ctx context.Context, path string) (*models.ImportResult, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fileErr("open", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("failed to close import file", "path", path, "error", err)
		}
	}()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	result := &models.ImportResult{}
	var rows []models.NewUser
	header := true
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				s.logger.Debug("skipping unparsable csv line", "path", path, "line", parseErr.Line, "error", err)
				result.Malformed++
				header = false
				continue
			}
			return nil, fileErr("read", path, err)
		}

		if header {
			header = false
			continue
		}
		if len(record) < 3 {
			result.Malformed++
			continue
		}
		u, ok := newUser(record[1], record[2])
		if !ok {
			result.Malformed++
			continue
		}
		rows = append(rows, u)
	}
	if header {
		return nil, fileErr("read", path, ErrMissingHeader)
	}

	return s.store(ctx, path, rows, result)
}

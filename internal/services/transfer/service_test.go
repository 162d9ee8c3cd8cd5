package transfer

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/blogdb/internal/database"
	"github.com/thenoetrevino/blogdb/internal/models"
)

// setupTestService creates an in-memory database and a service over it
func setupTestService(t *testing.T) (Service, *database.Repository) {
	t.Helper()
	db, err := database.Open(context.Background(), database.InMemory)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := database.NewRepository(db)
	return NewService(repo, nil), repo
}

func seedUsers(t *testing.T, repo *database.Repository, pairs ...[2]string) {
	t.Helper()
	for _, p := range pairs {
		_, err := repo.CreateUser(context.Background(), p[0], p[1])
		require.NoError(t, err)
	}
}

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// pairs returns the sorted (name, email) set of the stored users
func pairs(t *testing.T, repo *database.Repository) []string {
	t.Helper()
	users, err := repo.ListUsers(context.Background(), models.SortByID, false, 0)
	require.NoError(t, err)
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.Name+" <"+u.Email+">")
	}
	sort.Strings(out)
	return out
}

func TestExportUsersCSV(t *testing.T) {
	t.Parallel()

	svc, repo := setupTestService(t)
	seedUsers(t, repo, [2]string{"Ivan", "ivan@mail.ru"}, [2]string{"Maria", "maria@mail.ru"})
	path := filepath.Join(t.TempDir(), "users.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale content that must go\n\n\n"), 0o600))

	n, err := svc.ExportUsersCSV(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, []string{"ID", "Name", "Email", "Created At"}, records[0])
	assert.Equal(t, []string{"1", "Ivan", "ivan@mail.ru"}, records[1][:3])
	assert.Equal(t, "Maria", records[2][1])
	assert.Len(t, records[1][3], len(models.TimestampLayout))
}

func TestExportUsersJSON(t *testing.T) {
	t.Parallel()

	svc, repo := setupTestService(t)
	seedUsers(t, repo, [2]string{"Дмитрий", "dmitry@mail.ru"})
	path := filepath.Join(t.TempDir(), "users.json")

	n, err := svc.ExportUsersJSON(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Дмитрий", "non-ASCII must not be escaped")
	assert.Contains(t, string(data), "\n    \"id\": 1,\n    \"name\"", "keys are indented and ordered")

	var got []map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "dmitry@mail.ru", got[0]["email"])
	assert.Contains(t, got[0], "created_at")
}

func TestExportUsersJSON_EmptyTable(t *testing.T) {
	t.Parallel()

	svc, _ := setupTestService(t)
	path := filepath.Join(t.TempDir(), "users.json")

	n, err := svc.ExportUsersJSON(context.Background(), path)
	require.NoError(t, err)
	assert.Zero(t, n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()

	src, srcRepo := setupTestService(t)
	seedUsers(t, srcRepo,
		[2]string{"Ivan", "ivan@mail.ru"},
		[2]string{"Maria", "maria@mail.ru"},
		[2]string{"Olga", "olga@mail.ru"},
	)
	path := filepath.Join(t.TempDir(), "users.json")
	_, err := src.ExportUsersJSON(context.Background(), path)
	require.NoError(t, err)

	dst, dstRepo := setupTestService(t)
	result, err := dst.ImportUsersJSON(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, &models.ImportResult{Imported: 3}, result)
	assert.Equal(t, pairs(t, srcRepo), pairs(t, dstRepo))
}

func TestCSVRoundTrip(t *testing.T) {
	t.Parallel()

	src, srcRepo := setupTestService(t)
	seedUsers(t, srcRepo, [2]string{"Ivan, Jr.", "ivan@mail.ru"}, [2]string{"Maria", "maria@mail.ru"})
	path := filepath.Join(t.TempDir(), "users.csv")
	_, err := src.ExportUsersCSV(context.Background(), path)
	require.NoError(t, err)

	dst, dstRepo := setupTestService(t)
	result, err := dst.ImportUsersCSV(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, pairs(t, srcRepo), pairs(t, dstRepo))
}

func TestImportUsersCSV_DuplicateRow(t *testing.T) {
	t.Parallel()

	svc, repo := setupTestService(t)
	seedUsers(t, repo, [2]string{"Ivan", "ivan@mail.ru"})
	path := writeTestFile(t, "users.csv", "ID,Name,Email,Created At\n"+
		"7,Anna,anna@mail.ru,2024-01-01 00:00:00\n"+
		"8,Ivan Again,ivan@mail.ru,2024-01-01 00:00:00\n"+
		"9,Sergey,sergey@mail.ru,2024-01-01 00:00:00\n")

	result, err := svc.ImportUsersCSV(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Duplicates)
	assert.Zero(t, result.Malformed)

	count, err := repo.CountUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestImportUsersCSV_MalformedRows(t *testing.T) {
	t.Parallel()

	svc, repo := setupTestService(t)
	path := writeTestFile(t, "users.csv", "ID,Name,Email\n"+
		"1,Anna\n"+ // too few fields
		"2,,empty@mail.ru\n"+ // empty name
		"3,NoEmail,\n"+ // empty email
		"4,Sergey,sergey@mail.ru\n")

	result, err := svc.ImportUsersCSV(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 3, result.Malformed)
	assert.Equal(t, []string{"Sergey <sergey@mail.ru>"}, pairs(t, repo))
}

func TestImportUsersCSV_StrayQuoteInField(t *testing.T) {
	t.Parallel()

	svc, repo := setupTestService(t)
	path := writeTestFile(t, "users.csv", "ID,Name,Email,Created At\n"+
		"1,Iv\"an,ivan@mail.ru,x\n"+
		"2,Maria,maria@mail.ru,x\n")

	result, err := svc.ImportUsersCSV(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Zero(t, result.Malformed)
	assert.Equal(t, []string{"Iv\"an <ivan@mail.ru>", "Maria <maria@mail.ru>"}, pairs(t, repo))
}

func TestImportUsersCSV_HeaderOnly(t *testing.T) {
	t.Parallel()

	svc, _ := setupTestService(t)
	path := writeTestFile(t, "users.csv", "ID,Name,Email,Created At\n")

	result, err := svc.ImportUsersCSV(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, &models.ImportResult{}, result)
}

func TestImportUsersJSON_MalformedElements(t *testing.T) {
	t.Parallel()

	svc, repo := setupTestService(t)
	path := writeTestFile(t, "users.json", `[
		{"name": "Dmitry", "email": "dmitry@mail.ru"},
		{"name": "NoEmail"},
		{"name": 42, "email": "num@mail.ru"},
		"not an object",
		null,
		{"name": " ", "email": "blank@mail.ru"},
		{"name": "Olga", "email": "olga@mail.ru", "extra": true},
		{"name": "Dmitry twin", "email": "dmitry@mail.ru"}
	]`)

	result, err := svc.ImportUsersJSON(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, &models.ImportResult{Imported: 2, Duplicates: 1, Malformed: 5}, result)
	assert.Equal(t, []string{"Dmitry <dmitry@mail.ru>", "Olga <olga@mail.ru>"}, pairs(t, repo))
}

func TestImport_FileErrors(t *testing.T) {
	t.Parallel()

	svc, repo := setupTestService(t)
	ctx := context.Background()
	missing := filepath.Join(t.TempDir(), "missing")

	tests := []struct {
		name string
		run  func() error
	}{
		{"csv missing file", func() error { _, err := svc.ImportUsersCSV(ctx, missing); return err }},
		{"json missing file", func() error { _, err := svc.ImportUsersJSON(ctx, missing); return err }},
		{"json object at top level", func() error {
			_, err := svc.ImportUsersJSON(ctx, writeTestFile(t, "obj.json", `{"name": "x", "email": "y"}`))
			return err
		}},
		{"json null at top level", func() error {
			_, err := svc.ImportUsersJSON(ctx, writeTestFile(t, "null.json", `null`))
			return err
		}},
		{"csv without header", func() error {
			_, err := svc.ImportUsersCSV(ctx, writeTestFile(t, "empty.csv", ""))
			return err
		}},
		{"json syntax error", func() error {
			_, err := svc.ImportUsersJSON(ctx, writeTestFile(t, "bad.json", `[{"name": "x",`))
			return err
		}},
		{"export into missing directory", func() error {
			_, err := svc.ExportUsersCSV(ctx, filepath.Join(missing, "out.csv"))
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			require.Error(t, err)
			assert.ErrorIs(t, err, models.ErrFileIO)
		})
	}

	count, err := repo.CountUsers(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestEmptyPath(t *testing.T) {
	t.Parallel()

	svc, _ := setupTestService(t)
	_, err := svc.ExportUsersJSON(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyPath)
	_, err = svc.ImportUsersCSV(context.Background(), "")
	assert.ErrorIs(t, err, models.ErrValidation)
}

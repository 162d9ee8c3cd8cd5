package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clipkg "github.com/thenoetrevino/blogdb/internal/cli"
	"github.com/thenoetrevino/blogdb/internal/testutil/cli"
)

func TestAddUser(t *testing.T) {
	db, app := cli.SetupCLITest(t)

	t.Run("quiet mode prints the new id", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, AddCmd(), []string{
			"--name", "Ivan",
			"--email", "ivan@mail.ru",
			"--quiet",
		})

		require.NoError(t, err)
		assert.Equal(t, "1", strings.TrimSpace(output))

		var email string
		err = db.QueryRow("SELECT email FROM users WHERE name = ?", "Ivan").Scan(&email)
		require.NoError(t, err)
		assert.Equal(t, "ivan@mail.ru", email)
	})

	t.Run("json output wraps the user", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, AddCmd(), []string{
			"--name", "Maria",
			"--email", "maria@mail.ru",
			"--json",
		})

		require.NoError(t, err)
		result := cli.ParseJSON(t, output)
		assert.Equal(t, true, result["success"])

		data, ok := result["data"].(map[string]interface{})
		require.True(t, ok, "expected data object, got %v", result["data"])
		assert.Equal(t, "Maria", data["name"])
		assert.Equal(t, "maria@mail.ru", data["email"])
		assert.EqualValues(t, 2, data["id"])
	})

	t.Run("human output confirms creation", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, AddCmd(), []string{
			"--name", "Olga",
			"--email", "olga@mail.ru",
		})

		require.NoError(t, err)
		assert.Contains(t, output, "User 3 created: Olga <olga@mail.ru>")
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, AddCmd(), []string{
			"--name", "Ivan Again",
			"--email", "ivan@mail.ru",
			"--json",
		})

		require.Error(t, err)
		assert.Equal(t, clipkg.ExitConflict, clipkg.ExitCodeFor(err))

		result := cli.ParseJSON(t, output)
		assert.Equal(t, false, result["success"])
		errData := result["error"].(map[string]interface{})
		assert.Equal(t, "CONFLICT", errData["code"])
		assert.Equal(t, 3, cli.CountRows(t, db, "users"))
	})

	t.Run("blank name is a usage error", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, AddCmd(), []string{
			"--name", "   ",
			"--email", "blank@mail.ru",
			"--json",
		})

		require.Error(t, err)
		assert.Equal(t, clipkg.ExitUsage, clipkg.ExitCodeFor(err))
		assert.Equal(t, 3, cli.CountRows(t, db, "users"))
	})
}

func TestListUsers(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	cli.CreateTestUser(t, db, "Charlie", "c@mail.ru")
	cli.CreateTestUser(t, db, "Alice", "a@mail.ru")
	cli.CreateTestUser(t, db, "Bob", "b@mail.ru")

	t.Run("quiet lists ids in id order", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})

		require.NoError(t, err)
		assert.Equal(t, "1\n2\n3\n", output)
	})

	t.Run("order by name descending with limit", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{
			"--order-by", "name", "--desc", "--limit", "2", "--json",
		})

		require.NoError(t, err)
		result := cli.ParseJSON(t, output)
		users := result["users"].([]interface{})
		require.Len(t, users, 2)
		assert.Equal(t, "Charlie", users[0].(map[string]interface{})["name"])
		assert.Equal(t, "Bob", users[1].(map[string]interface{})["name"])
	})

	t.Run("human output renders a table", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{})

		require.NoError(t, err)
		assert.Contains(t, output, "Found 3 users")
		assert.Contains(t, output, "Email")
		assert.Contains(t, output, "a@mail.ru")
	})

	t.Run("unknown sort field is a validation error", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--order-by", "password", "--json"})

		require.Error(t, err)
		assert.Equal(t, clipkg.ExitValidation, clipkg.ExitCodeFor(err))
	})
}

func TestListUsers_Empty(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--json"})
	require.NoError(t, err)

	result := cli.ParseJSON(t, output)
	assert.Equal(t, []interface{}{}, result["users"])

	output, err = cli.ExecuteCLICommand(t, app, ListCmd(), []string{})
	require.NoError(t, err)
	assert.Contains(t, output, "No users found")
}

func TestSearchUsers(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	cli.CreateTestUser(t, db, "Ivan", "ivan@mail.ru")
	cli.CreateTestUser(t, db, "Olga", "olga@example.com")

	output, err := cli.ExecuteCLICommand(t, app, SearchCmd(), []string{"IVAN", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "1\n", output)

	output, err = cli.ExecuteCLICommand(t, app, SearchCmd(), []string{"nobody"})
	require.NoError(t, err)
	assert.Contains(t, output, "No users match 'nobody'")

	_, err = cli.ExecuteCLICommand(t, app, SearchCmd(), []string{})
	require.Error(t, err)
	assert.Equal(t, clipkg.ExitUsage, clipkg.ExitCodeFor(err))
}

func TestUpdateEmail(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	cli.CreateTestUser(t, db, "Ivan", "ivan@mail.ru")
	cli.CreateTestUser(t, db, "Maria", "maria@mail.ru")

	emailOf := func(id int) string {
		var email string
		require.NoError(t, db.QueryRow("SELECT email FROM users WHERE id = ?", id).Scan(&email))
		return email
	}

	t.Run("by id", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, UpdateEmailCmd(), []string{
			"--id", "1", "--email", "ivan@new.ru",
		})

		require.NoError(t, err)
		assert.Contains(t, output, "Email of user 1 changed to ivan@new.ru")
		assert.Equal(t, "ivan@new.ru", emailOf(1))
	})

	t.Run("by name", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, UpdateEmailCmd(), []string{
			"--name", "Maria", "--email", "maria@new.ru", "--quiet",
		})

		require.NoError(t, err)
		assert.Equal(t, "maria@new.ru", emailOf(2))
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, UpdateEmailCmd(), []string{
			"--id", "9", "--email", "ghost@mail.ru", "--json",
		})

		require.Error(t, err)
		assert.Equal(t, clipkg.ExitNotFound, clipkg.ExitCodeFor(err))
	})

	t.Run("taken email", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, UpdateEmailCmd(), []string{
			"--id", "1", "--email", "maria@new.ru", "--json",
		})

		require.Error(t, err)
		assert.Equal(t, clipkg.ExitConflict, clipkg.ExitCodeFor(err))
		assert.Equal(t, "ivan@new.ru", emailOf(1))
	})

	t.Run("selector is required", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, UpdateEmailCmd(), []string{
			"--email", "x@mail.ru", "--json",
		})

		require.Error(t, err)
		assert.Equal(t, clipkg.ExitUsage, clipkg.ExitCodeFor(err))
	})
}

func TestDeleteUser(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	ivan := cli.CreateTestUser(t, db, "Ivan", "ivan@mail.ru")
	cli.CreateTestPost(t, db, ivan, "Hello", "first post")

	t.Run("declined confirmation keeps the user", func(t *testing.T) {
		output, err := cli.ExecuteCLICommandWithInput(t, app, DeleteCmd(), []string{"--id", "1"}, "n\n")

		require.NoError(t, err)
		assert.Contains(t, output, "Delete user #1 'Ivan' and all of their posts?")
		assert.Contains(t, output, "Cancelled")
		assert.Equal(t, 1, cli.CountRows(t, db, "users"))
	})

	t.Run("confirmed delete removes user and posts", func(t *testing.T) {
		output, err := cli.ExecuteCLICommandWithInput(t, app, DeleteCmd(), []string{"--id", "1"}, "yes\n")

		require.NoError(t, err)
		assert.Contains(t, output, "User 1 deleted")
		assert.Equal(t, 0, cli.CountRows(t, db, "users"))
		assert.Equal(t, 0, cli.CountRows(t, db, "posts"))
	})

	t.Run("missing user is a no-op", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", "1", "--force", "--json"})

		require.NoError(t, err)
		result := cli.ParseJSON(t, output)
		data := result["data"].(map[string]interface{})
		assert.Equal(t, false, data["deleted"])
	})

	t.Run("zero id is a usage error", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", "0", "--force", "--json"})

		require.Error(t, err)
		assert.Equal(t, clipkg.ExitUsage, clipkg.ExitCodeFor(err))
	})
}

package database

import (
	"context"
	"fmt"
	"testing"
)

func TestGetUserPostCounts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	ivan := mustCreateUser(t, repo, "Ivan", "ivan@mail.ru")
	mustCreateUser(t, repo, "Maria", "maria@mail.ru")
	olga := mustCreateUser(t, repo, "Olga", "olga@mail.ru")
	mustCreatePost(t, repo, "First post", ivan.ID)
	for i := 0; i < 3; i++ {
		mustCreatePost(t, repo, fmt.Sprintf("Olga %d", i), olga.ID)
	}

	t.Run("by user id", func(t *testing.T) {
		counts, err := repo.GetUserPostCounts(ctx, false)
		if err != nil {
			t.Fatalf("Failed to count posts: %v", err)
		}
		want := []struct {
			name  string
			count int
		}{{"Ivan", 1}, {"Maria", 0}, {"Olga", 3}}
		if len(counts) != len(want) {
			t.Fatalf("Expected %d rows, got %d", len(want), len(counts))
		}
		for i, w := range want {
			if counts[i].Name != w.name || counts[i].PostCount != w.count {
				t.Errorf("Row %d: expected (%s, %d), got (%s, %d)",
					i, w.name, w.count, counts[i].Name, counts[i].PostCount)
			}
		}
	})

	t.Run("by count descending", func(t *testing.T) {
		counts, err := repo.GetUserPostCounts(ctx, true)
		if err != nil {
			t.Fatalf("Failed to count posts: %v", err)
		}
		names := []string{counts[0].Name, counts[1].Name, counts[2].Name}
		if names[0] != "Olga" || names[1] != "Ivan" || names[2] != "Maria" {
			t.Errorf("Unexpected order %v", names)
		}
	})
}

func TestGetUserPostCountsEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	counts, err := repo.GetUserPostCounts(context.Background(), false)
	if err != nil {
		t.Fatalf("Failed to count posts: %v", err)
	}
	if len(counts) != 0 {
		t.Errorf("Expected no rows, got %d", len(counts))
	}
}

func TestGetRecentPosts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	ivan := mustCreateUser(t, repo, "Ivan", "ivan@mail.ru")
	maria := mustCreateUser(t, repo, "Maria", "maria@mail.ru")
	for i := 1; i <= 12; i++ {
		author := ivan.ID
		if i%2 == 0 {
			author = maria.ID
		}
		mustCreatePost(t, repo, fmt.Sprintf("Post %d", i), author)
	}

	posts, err := repo.GetRecentPosts(ctx, 10)
	if err != nil {
		t.Fatalf("Failed to get recent posts: %v", err)
	}
	if len(posts) != 10 {
		t.Fatalf("Expected 10 posts, got %d", len(posts))
	}
	if posts[0].Title != "Post 12" || posts[0].AuthorName != "Maria" {
		t.Errorf("Expected newest post first, got %s by %s", posts[0].Title, posts[0].AuthorName)
	}
	if posts[9].Title != "Post 3" {
		t.Errorf("Expected Post 3 last, got %s", posts[9].Title)
	}
	for i := 1; i < len(posts); i++ {
		if posts[i].CreatedAt.After(posts[i-1].CreatedAt) {
			t.Errorf("Posts not ordered by created_at descending at %d", i)
		}
	}
}

func TestGetRecentPostsExplicitTimestamps(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	ivan := mustCreateUser(t, repo, "Ivan", "ivan@mail.ru")
	// Inserted out of chronological order
	for _, p := range []struct{ title, at string }{
		{"middle", "2024-05-02 10:00:00"},
		{"newest", "2024-05-03 10:00:00"},
		{"oldest", "2024-05-01 10:00:00"},
	} {
		if _, err := db.Exec(
			`INSERT INTO posts (title, content, user_id, created_at) VALUES (?, 'x', ?, ?)`,
			p.title, ivan.ID, p.at,
		); err != nil {
			t.Fatalf("Failed to insert post: %v", err)
		}
	}

	posts, err := repo.GetRecentPosts(ctx, 2)
	if err != nil {
		t.Fatalf("Failed to get recent posts: %v", err)
	}
	if len(posts) != 2 || posts[0].Title != "newest" || posts[1].Title != "middle" {
		t.Errorf("Unexpected recent posts %+v", posts)
	}
}

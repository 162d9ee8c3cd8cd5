package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/blogdb/internal/models"
	"github.com/thenoetrevino/blogdb/internal/types"
)

// PostRepo handles all post-related database operations.
type PostRepo struct {
	db *sql.DB
}

// CreatePost inserts a post owned by userID. An unknown user is reported as
// models.ErrNotFound by the foreign key.
func (r *PostRepo) CreatePost(ctx context.Context, title, content string, userID types.UserID) (*models.Post, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO posts (title, content, user_id) VALUES (?, ?, ?)`,
		title, content, userID,
	)
	if err != nil {
		return nil, classify(fmt.Sprintf("insert post '%s' for user %d", title, userID), err)
	}

	postID, err := result.LastInsertId()
	if err != nil {
		return nil, storageErr("get post ID after insert", err)
	}

	slog.Debug("post created", "post_id", postID, "user_id", userID)
	return r.GetPostByID(ctx, types.PostID(postID))
}

// GetPostByID retrieves a post by its ID
func (r *PostRepo) GetPostByID(ctx context.Context, id types.PostID) (*models.Post, error) {
	post := &models.Post{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, content, user_id, created_at FROM posts WHERE id = ?`,
		id,
	).Scan(&post.ID, &post.Title, &post.Content, &post.UserID, &post.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("post", id.ToInt())
	}
	if err != nil {
		return nil, storageErr(fmt.Sprintf("get post %d", id), err)
	}
	return post, nil
}

// GetPostContent returns only the body of a post
func (r *PostRepo) GetPostContent(ctx context.Context, id types.PostID) (string, error) {
	var content string
	err := r.db.QueryRowContext(ctx, `SELECT content FROM posts WHERE id = ?`, id).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return "", notFound("post", id.ToInt())
	}
	if err != nil {
		return "", storageErr(fmt.Sprintf("get content of post %d", id), err)
	}
	return content, nil
}

// ListPostsWithAuthors joins every post with its author's name, ordered by post ID
func (r *PostRepo) ListPostsWithAuthors(ctx context.Context) ([]*models.PostWithAuthor, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.title, u.name, p.created_at
		FROM posts p
		JOIN users u ON p.user_id = u.id
		ORDER BY p.id
	`)
	if err != nil {
		return nil, storageErr("list posts with authors", err)
	}
	defer closeRows(rows)

	posts := make([]*models.PostWithAuthor, 0, 10)
	for rows.Next() {
		post := &models.PostWithAuthor{}
		if err := rows.Scan(&post.ID, &post.Title, &post.AuthorName, &post.CreatedAt); err != nil {
			return nil, storageErr("scan post row", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate post rows", err)
	}
	return posts, nil
}

// ListPostsByUser returns the posts owned by a user, ordered by post ID
func (r *PostRepo) ListPostsByUser(ctx context.Context, userID types.UserID) ([]*models.Post, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, content, user_id, created_at
		FROM posts
		WHERE user_id = ?
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, storageErr(fmt.Sprintf("list posts of user %d", userID), err)
	}
	defer closeRows(rows)

	posts := make([]*models.Post, 0, 10)
	for rows.Next() {
		post := &models.Post{}
		if err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.UserID, &post.CreatedAt); err != nil {
			return nil, storageErr("scan post row", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate post rows", err)
	}
	return posts, nil
}

// CountPosts returns the number of stored posts
func (r *PostRepo) CountPosts(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&count); err != nil {
		return 0, storageErr("count posts", err)
	}
	return count, nil
}

// DeletePost removes a post. A missing ID removes nothing and is not an error.
func (r *PostRepo) DeletePost(ctx context.Context, id types.PostID) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return 0, storageErr(fmt.Sprintf("delete post %d", id), err)
	}
	return rowsAffected(result)
}

package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/blogdb/internal/models"
)

// ReportRepo runs the aggregate and join queries behind the reports.
type ReportRepo struct {
	db *sql.DB
}

// GetUserPostCounts counts posts per user, including users with no posts.
// byCount orders by count descending; otherwise rows follow user ID.
func (r *ReportRepo) GetUserPostCounts(ctx context.Context, byCount bool) ([]*models.UserPostCount, error) {
	order := "u.id"
	if byCount {
		order = "post_count DESC, u.id"
	}

	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT u.id, u.name, COUNT(p.id) AS post_count
		FROM users u
		LEFT JOIN posts p ON u.id = p.user_id
		GROUP BY u.id
		ORDER BY %s
	`, order))
	if err != nil {
		return nil, storageErr("count posts per user", err)
	}
	defer closeRows(rows)

	counts := make([]*models.UserPostCount, 0, 10)
	for rows.Next() {
		c := &models.UserPostCount{}
		if err := rows.Scan(&c.UserID, &c.Name, &c.PostCount); err != nil {
			return nil, storageErr("scan post count row", err)
		}
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate post count rows", err)
	}
	return counts, nil
}

// GetRecentPosts returns the newest posts with their author, at most limit rows
func (r *ReportRepo) GetRecentPosts(ctx context.Context, limit int) ([]*models.RecentPost, error) {
	// CURRENT_TIMESTAMP has one second resolution; id orders posts created
	// within the same second.
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.title, u.name, p.created_at
		FROM posts p
		JOIN users u ON p.user_id = u.id
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, storageErr("list recent posts", err)
	}
	defer closeRows(rows)

	posts := make([]*models.RecentPost, 0, 10)
	for rows.Next() {
		post := &models.RecentPost{}
		if err := rows.Scan(&post.Title, &post.AuthorName, &post.CreatedAt); err != nil {
			return nil, storageErr("scan recent post row", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate recent post rows", err)
	}
	return posts, nil
}

package db

import (
	"fmt"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/jmoiron/sqlx"
)

// Post — опубликованный пост. Записи только добавляются, не меняются.
type Post struct {
	ID          int64     `db:"id"`
	Text        string    `db:"text"`
	PublishedAt time.Time `db:"published_at"`
}

type PostRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepository {
	return &PostRepository{
		db: db,
	}
}

func (r *PostRepository) Append(text string, publishedAt time.Time) (int64, error) {
	var id int64

	err := r.db.Get(&id, `
	    INSERT INTO posts (text, published_at)
		VALUES ($1, $2)
		RETURNING id
	`, text, publishedAt)

	if err != nil {
		return 0, fmt.Errorf("PostRepository.Append: %w", err)
	}

	return id, nil
}

func (r *PostRepository) GetByID(postID int64) (*Post, error) {
	var post Post

	err := r.db.Get(&post, `
	    SELECT * FROM posts
		WHERE id = $1
	`, postID)

	if err != nil {
		return nil, fmt.Errorf("PostRepository.GetByID: %w", err)
	}

	return pointer.To(post), nil
}

func (r *PostRepository) GetRecent(limit int) ([]Post, error) {
	var posts []Post

	err := r.db.Select(&posts, `
	    SELECT id, text, published_at FROM posts
		ORDER BY published_at DESC, id DESC
		LIMIT $1
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("PostRepository.GetRecent: %w", err)
	}

	return posts, nil
}

package store

import (
	"context"

	"guestbook/models"
)

// RepositoryAdapter exposes store functions as an object implementing api.Repository.
type RepositoryAdapter struct{}

func (RepositoryAdapter) InsertSubmission(ctx context.Context, sub models.Submission) error {
	return InsertSubmission(ctx, sub)
}
func (RepositoryAdapter) RecentSubmissions(ctx context.Context, limit int64) ([]models.Submission, error) {
	return RecentSubmissions(ctx, limit)
}

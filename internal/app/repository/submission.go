package repository

import (
	"context"

	"leadflow/internal/app/ds"
)

// Методы для работы с заявками

func (r *Repository) CreateSubmission(ctx context.Context, s *ds.Submission) error {
	if err := r.ensureSchema(ctx); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(s).Error
}

// ListSubmissions возвращает все заявки, новые первыми
func (r *Repository) ListSubmissions(ctx context.Context) ([]ds.Submission, error) {
	if err := r.ensureSchema(ctx); err != nil {
		return nil, err
	}

	var submissions []ds.Submission
	err := r.db.WithContext(ctx).Order("submitted_at DESC").Order("id DESC").Find(&submissions).Error
	if err != nil {
		return nil, err
	}
	return submissions, nil
}

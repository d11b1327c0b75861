package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"

	"leadflow/internal/app/config"
	"leadflow/internal/app/ds"
)

// MinIOClient складывает копии заявок в бакет (архив для отдела продаж)
type MinIOClient struct {
	client     *minio.Client
	bucketName string
	timeout    time.Duration
}

// NewMinIOClient создает клиент и бакет, если его еще нет
func NewMinIOClient(ctx context.Context, cfg config.MinIOConfig) (*MinIOClient, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		logrus.Infof("Bucket %s created successfully", cfg.Bucket)
	}

	timeout := cfg.UploadTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &MinIOClient{
		client:     client,
		bucketName: cfg.Bucket,
		timeout:    timeout,
	}, nil
}

// ObjectName: submissions/2026/03/01/SUB-....json
func ObjectName(s *ds.Submission) string {
	return fmt.Sprintf("submissions/%s/%s.json", s.SubmittedAt.UTC().Format("2006/01/02"), s.SubmissionID)
}

// archiveDocument — то же представление, что отдает список заявок
func archiveDocument(s *ds.Submission) ([]byte, error) {
	doc := map[string]any{
		"id":          s.SubmissionID,
		"companyName": s.CompanyName,
		"contactName": s.ContactName,
		"email":       s.Email,
		"phone":       s.Phone,
		"submittedAt": s.SubmittedAt.UTC(),
		"data":        json.RawMessage(s.Data),
	}
	if len(s.Pricing) > 0 {
		doc["pricing"] = json.RawMessage(s.Pricing)
	}
	return json.MarshalIndent(doc, "", "  ")
}

// ArchiveSubmission загружает заявку JSON-документом и возвращает имя объекта
func (m *MinIOClient) ArchiveSubmission(ctx context.Context, s *ds.Submission) (string, error) {
	data, err := archiveDocument(s)
	if err != nil {
		return "", fmt.Errorf("failed to encode submission: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	name := ObjectName(s)
	_, err = m.client.PutObject(ctx, m.bucketName, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload submission: %w", err)
	}

	logrus.Infof("Submission %s archived as %s", s.SubmissionID, name)
	return name, nil
}

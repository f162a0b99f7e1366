package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/lunafit/lunafit-backend/config"
	"github.com/lunafit/lunafit-backend/internal/types"
)

// SnapshotService archives generated plans to S3 as JSON so support can
// inspect what a user was served at any point in time.
type SnapshotService struct {
	s3Config *config.S3Config
}

// NewSnapshotService creates a new SnapshotService instance.
func NewSnapshotService(s3Config *config.S3Config) *SnapshotService {
	return &SnapshotService{s3Config: s3Config}
}

// ArchivePlan uploads the plan result for a user and returns the object
// URL.
func (s *SnapshotService) ArchivePlan(ctx context.Context, userID uuid.UUID, result *types.PlanResult) (string, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("failed to marshal plan snapshot: %w", err)
	}

	key := fmt.Sprintf("plan-snapshots/%s/%s.json", userID, time.Now().UTC().Format("2006-01-02T15-04-05"))

	_, err = s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload snapshot to S3: %w", err)
	}

	url := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key)
	log.Printf("[SnapshotService] archived plan for user %s: %s", userID, url)
	return url, nil
}

// Package archive exports the record of an election to object storage when
// it is archived.
package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/unielect/internal/server/models"
)

// Record is everything exported for one election.
type Record struct {
	Election *models.Election     `json:"election"`
	Tally    map[string]int       `json:"tally"`
	Audit    []*models.AuditEntry `json:"audit"`
}

type Archiver interface {
	Archive(ctx context.Context, rec *Record) (string, error)
}

// Nop drops every record.
type Nop struct{}

func (Nop) Archive(context.Context, *Record) (string, error) { return "", nil }

type S3Config struct {
	User     string
	Password string
	Bucket   string
	Region   string
	Endpoint string
}

type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) objectPutter {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// S3Archiver writes records as JSON objects to an S3-compatible bucket.
type S3Archiver struct {
	cfg    S3Config
	client objectPutter
	now    func() time.Time
}

func NewS3Archiver(ctx context.Context, c S3Config) (*S3Archiver, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(c.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(c.User, c.Password, "")))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if c.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Archiver{cfg: c, client: client, now: time.Now}, nil
}

// Key is elections/<id>/archive-<unix seconds>.json.
func (a *S3Archiver) key(electionID string) string {
	return fmt.Sprintf("elections/%s/archive-%d.json", electionID, a.now().Unix())
}

func (a *S3Archiver) Archive(ctx context.Context, rec *Record) (string, error) {
	body, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("encode archive: %w", err)
	}

	key := a.key(rec.Election.ID)
	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put %s: %w", key, err)
	}
	return key, nil
}

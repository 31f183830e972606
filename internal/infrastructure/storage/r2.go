// Package storage guarda documentos en un bucket S3 compatible (Cloudflare R2).
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/jhoicas/hospedaje-lider-api/internal/application/ports"
	"github.com/jhoicas/hospedaje-lider-api/pkg/config"
)

var _ ports.DocumentStore = (*R2Store)(nil)

// R2Store implementa ports.DocumentStore sobre la API S3.
type R2Store struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// NewR2Store construye el cliente con credenciales estáticas y endpoint propio.
func NewR2Store(ctx context.Context, cfg config.StorageConfig) (*R2Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion("auto"),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cargar config: %w", err)
	}
	endpoint := strings.TrimRight(cfg.Endpoint, "/")
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	baseURL := cfg.PublicBaseURL
	if baseURL == "" {
		baseURL = endpoint + "/" + cfg.Bucket
	}
	return &R2Store{client: client, bucket: cfg.Bucket, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Put sube el objeto y devuelve su URL pública.
func (r *R2Store) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	_, err := r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(r.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", fmt.Errorf("storage: put %s: %w", key, err)
	}
	return fmt.Sprintf("%s/%s", r.baseURL, key), nil
}

// Delete elimina el objeto key.
func (r *R2Store) Delete(ctx context.Context, key string) error {
	_, err := r.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("storage: delete %s: %w", key, err)
	}
	return nil
}

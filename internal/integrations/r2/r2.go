// Package r2 pushes the exported site to a Cloudflare R2 bucket
package r2

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/vlatan/block-site/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

type Service interface {
	// HeadObject gets and returns the head of a given object
	HeadObject(ctx context.Context, bucket, key string) (*s3.HeadObjectOutput, error)

	// PutObject puts object to bucket having the content
	PutObject(
		ctx context.Context,
		bucket string,
		key string,
		body io.Reader,
		contentType string,
		cacheControl string,
	) error

	// UploadFile uploads a file to bucket unless the bucket already has it.
	// It reports whether anything was sent.
	UploadFile(ctx context.Context, bucket, rootPath, key, filePath string) (bool, error)
}

type service struct {
	client *s3.Client
}

// New creates a new R2 client
func New(ctx context.Context, cfg *config.Config) Service {

	// Create SDK config for an R2 service
	sdkConfig, err := awsConfig.LoadDefaultConfig(ctx,
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.R2AccessKeyId, cfg.R2SecretAccessKey, ""),
		),
		awsConfig.WithRegion("auto"),
	)

	if err != nil {
		log.Fatalf("failed to load AWS/R2 SDK configuration, %v", err)
	}

	// An ordinary AWS client would be s3.NewFromConfig(sdkConfig)
	client := s3.NewFromConfig(sdkConfig, func(o *s3.Options) {
		baseEndpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.R2AccountId)
		o.BaseEndpoint = aws.String(baseEndpoint)
	})

	return &service{client}
}

// HeadObject gets and returns the head of a given object
func (s *service) HeadObject(ctx context.Context, bucket, key string) (*s3.HeadObjectOutput, error) {
	return s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
}

// PutObject puts object to bucket having the content
func (s *service) PutObject(
	ctx context.Context,
	bucket string,
	key string,
	body io.Reader,
	contentType string,
	cacheControl string,
) error {

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(bucket),
		Key:          aws.String(key),
		Body:         body,
		ContentType:  aws.String(contentType),
		CacheControl: aws.String(cacheControl),
	})

	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "EntityTooLarge" {
			return fmt.Errorf(
				"error while uploading object to %s; The object is too large: %w",
				bucket, err,
			)
		}

		return fmt.Errorf(
			"couldn't upload object %s:%s: %w",
			bucket, key, err,
		)
	}

	return nil
}

// UploadFile uploads a file to bucket
func (s *service) UploadFile(ctx context.Context, bucket, rootPath, key, filePath string) (bool, error) {

	content, err := readExported(rootPath, filePath)
	if err != nil {
		return false, fmt.Errorf("couldn't read the file %s: %w", filePath, err)
	}

	// Skip the files the bucket already holds
	head, err := s.HeadObject(ctx, bucket, key)
	switch {
	case err == nil && strings.Trim(aws.ToString(head.ETag), `"`) == etag(content):
		return false, nil
	case err != nil && !IsNotFound(err):
		return false, fmt.Errorf("couldn't check object %s:%s: %w", bucket, key, err)
	}

	err = s.PutObject(ctx, bucket, key, bytes.NewReader(content), ContentType(key, content), CacheControl(key))
	return err == nil, err
}

// IsNotFound reports whether the object is missing
func IsNotFound(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	code := apiErr.ErrorCode()
	return code == "NotFound" || code == "NoSuchKey"
}

// ContentType guesses the media type by extension, then by content
func ContentType(key string, content []byte) string {
	if ct := mime.TypeByExtension(path.Ext(key)); ct != "" {
		return ct
	}
	return http.DetectContentType(content)
}

// CacheControl keeps the assets for a year and makes the rest revalidate
func CacheControl(key string) string {
	if strings.HasPrefix(key, "static/") {
		return "public, max-age=31536000"
	}
	return "public, max-age=0, must-revalidate"
}

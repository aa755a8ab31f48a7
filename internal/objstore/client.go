// Package objstore provides a client for S3-compatible object storage
// (Cloudflare R2, MinIO, AWS S3). It wraps the AWS S3 SDK with the
// operations the backup pipeline needs: plain and conditional writes,
// streaming reads, and a conditional-write distributed lock so only one
// instance uploads archives at a time.
package objstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/google/uuid"
)

// ErrNotFound is returned when an object does not exist.
var ErrNotFound = errors.New("objstore: object not found")

// Config holds object storage client configuration.
type Config struct {
	Endpoint    string // endpoint URL (e.g. https://account-id.r2.cloudflarestorage.com)
	AccessKeyID string
	SecretKey   string
	Bucket      string
}

// Client provides object storage operations against a single bucket.
type Client struct {
	s3     *s3.Client
	bucket string
}

// New creates a new object storage client.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.Endpoint == "" || cfg.AccessKeyID == "" || cfg.SecretKey == "" || cfg.Bucket == "" {
		return nil, errors.New("objstore: all config fields are required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretKey,
			"",
		)),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("objstore: load aws config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		// Path-style addressing is required for R2 and MinIO.
		o.UsePathStyle = true
	})

	return &Client{
		s3:     s3Client,
		bucket: cfg.Bucket,
	}, nil
}

// Upload uploads an object. Returns the ETag of the uploaded object.
func (c *Client) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	result, err := c.s3.PutObject(ctx, input)
	if err != nil {
		return "", fmt.Errorf("objstore: upload %q: %w", key, err)
	}
	return cleanETag(result.ETag), nil
}

// Download downloads an object. Returns the object body and ETag; the
// caller must close the body. Returns ErrNotFound if the object does
// not exist.
func (c *Client) Download(ctx context.Context, key string) (io.ReadCloser, string, error) {
	result, err := c.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("objstore: download %q: %w", key, err)
	}
	return result.Body, cleanETag(result.ETag), nil
}

// Head retrieves an object's ETag without downloading the body.
// Returns ErrNotFound if the object does not exist.
func (c *Client) Head(ctx context.Context, key string) (string, error) {
	result, err := c.s3.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("objstore: head %q: %w", key, err)
	}
	return cleanETag(result.ETag), nil
}

// PutIfAbsent creates an object only if it does not exist, using
// If-None-Match. Returns (true, etag) if the object was created,
// (false, "") if it already exists.
func (c *Client) PutIfAbsent(ctx context.Context, key string, body io.Reader, contentType string) (bool, string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        body,
		IfNoneMatch: aws.String("*"),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	result, err := c.s3.PutObject(ctx, input)
	if err != nil {
		if isPreconditionFailed(err) {
			return false, "", nil
		}
		return false, "", fmt.Errorf("objstore: put if absent %q: %w", key, err)
	}
	return true, cleanETag(result.ETag), nil
}

// PutIfMatch updates an object only if its ETag matches, using
// If-Match. Returns (true, newEtag) if the object was updated,
// (false, "") if the ETag did not match.
func (c *Client) PutIfMatch(ctx context.Context, key string, body io.Reader, etag, contentType string) (bool, string, error) {
	input := &s3.PutObjectInput{
		Bucket:  aws.String(c.bucket),
		Key:     aws.String(key),
		Body:    body,
		IfMatch: aws.String("\"" + etag + "\""),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	result, err := c.s3.PutObject(ctx, input)
	if err != nil {
		if isPreconditionFailed(err) {
			return false, "", nil
		}
		return false, "", fmt.Errorf("objstore: put if match %q: %w", key, err)
	}
	return true, cleanETag(result.ETag), nil
}

// Delete deletes an object. Deleting a missing object is not an error.
func (c *Client) Delete(ctx context.Context, key string) error {
	_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("objstore: delete %q: %w", key, err)
	}
	return nil
}

func cleanETag(etag *string) string {
	if etag == nil {
		return ""
	}
	return strings.Trim(*etag, "\"")
}

func isPreconditionFailed(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == "PreconditionFailed" {
		return true
	}
	var respErr *smithyhttp.ResponseError
	if errors.As(err, &respErr) && respErr.HTTPStatusCode() == 412 {
		return true
	}
	return strings.Contains(err.Error(), "PreconditionFailed")
}

func isNotFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound", "404":
			return true
		}
	}
	var respErr *smithyhttp.ResponseError
	if errors.As(err, &respErr) && respErr.HTTPStatusCode() == 404 {
		return true
	}
	return false
}

// LockRecord is the JSON body of a held distributed lock.
type LockRecord struct {
	Owner     string    `json:"owner"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Lock provides distributed locking using conditional writes. A lock is
// an object whose body records its owner and expiry; acquisition races
// are settled by If-None-Match and If-Match semantics.
type Lock struct {
	client  *Client
	key     string
	ttl     time.Duration
	ownerID string
	etag    string
}

// NewLock creates a new distributed lock on key with the given TTL.
func NewLock(client *Client, key string, ttl time.Duration) *Lock {
	return &Lock{
		client:  client,
		key:     key,
		ttl:     ttl,
		ownerID: uuid.New().String(),
	}
}

// OwnerID returns the unique identifier of this lock instance.
func (l *Lock) OwnerID() string {
	return l.ownerID
}

// Acquire attempts to acquire the lock. Returns (true, nil) if
// acquired, (false, nil) if another live holder has it.
func (l *Lock) Acquire(ctx context.Context) (bool, error) {
	data, err := l.recordBody()
	if err != nil {
		return false, fmt.Errorf("acquire lock: %w", err)
	}

	created, etag, err := l.client.PutIfAbsent(ctx, l.key, bytes.NewReader(data), "application/json")
	if err != nil {
		return false, fmt.Errorf("acquire lock: %w", err)
	}
	if created {
		l.etag = etag
		return true, nil
	}

	expired, oldEtag, err := l.checkExpired(ctx)
	if err != nil {
		return false, fmt.Errorf("acquire lock: check expired: %w", err)
	}
	if !expired {
		return false, nil
	}

	// The holder's TTL lapsed, take over via If-Match so only one
	// contender wins.
	data, err = l.recordBody()
	if err != nil {
		return false, fmt.Errorf("acquire lock: %w", err)
	}
	stolen, newEtag, err := l.client.PutIfMatch(ctx, l.key, bytes.NewReader(data), oldEtag, "application/json")
	if err != nil {
		return false, fmt.Errorf("acquire lock: steal: %w", err)
	}
	if stolen {
		l.etag = newEtag
		return true, nil
	}
	return false, nil
}

// Renew extends the lock TTL if we still own it. Returns (true, nil)
// if renewed, (false, nil) if the lock was lost.
func (l *Lock) Renew(ctx context.Context) (bool, error) {
	if l.etag == "" {
		return false, nil
	}

	data, err := l.recordBody()
	if err != nil {
		return false, fmt.Errorf("renew lock: %w", err)
	}

	updated, newEtag, err := l.client.PutIfMatch(ctx, l.key, bytes.NewReader(data), l.etag, "application/json")
	if err != nil {
		return false, fmt.Errorf("renew lock: %w", err)
	}
	if !updated {
		return false, nil
	}
	l.etag = newEtag
	return true, nil
}

// Release releases the lock. Only deletes the object if we still own
// it, so a stolen lock is never released out from under its new holder.
func (l *Lock) Release(ctx context.Context) error {
	body, _, err := l.client.Download(ctx, l.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return fmt.Errorf("release lock: verify: %w", err)
	}

	data, err := io.ReadAll(body)
	body.Close()
	if err != nil {
		return fmt.Errorf("release lock: read: %w", err)
	}

	var rec LockRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		// Unreadable lock body, clear it.
		return l.client.Delete(ctx, l.key)
	}
	if rec.Owner != l.ownerID {
		return nil
	}
	return l.client.Delete(ctx, l.key)
}

func (l *Lock) recordBody() ([]byte, error) {
	return json.Marshal(LockRecord{
		Owner:     l.ownerID,
		ExpiresAt: time.Now().Add(l.ttl),
	})
}

// checkExpired reads the current lock body and reports whether it has
// lapsed, along with the ETag needed to take it over.
func (l *Lock) checkExpired(ctx context.Context) (bool, string, error) {
	body, etag, err := l.client.Download(ctx, l.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return true, "", nil
		}
		return false, "", err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return false, "", fmt.Errorf("read lock: %w", err)
	}

	var rec LockRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		// Unreadable lock body counts as expired.
		return true, etag, nil
	}
	return time.Now().After(rec.ExpiresAt), etag, nil
}

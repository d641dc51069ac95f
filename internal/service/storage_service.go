package service

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/siperdin/siperdin_api/internal/config"
)

// StorageService uploads letterhead images and receipt attachments to an
// S3-compatible bucket using AWS Signature V4.
type StorageService struct {
	bucket          string
	region          string
	endpoint        string
	accessKeyID     string
	secretAccessKey string
	publicBaseURL   string
}

// NewStorageService creates a new StorageService.
func NewStorageService(cfg *config.StorageConfig) (*StorageService, error) {
	if cfg == nil {
		return nil, fmt.Errorf("storage config is nil")
	}
	return &StorageService{
		bucket:          cfg.Bucket,
		region:          cfg.Region,
		endpoint:        cfg.Endpoint,
		accessKeyID:     cfg.AccessKeyID,
		secretAccessKey: cfg.SecretAccessKey,
		publicBaseURL:   cfg.PublicBaseURL,
	}, nil
}

// UploadLetterhead stores a kop surat or logo image and returns its URL.
func (s *StorageService) UploadLetterhead(ctx context.Context, filename string, data []byte, contentType string) (string, error) {
	key := fmt.Sprintf("letterhead/%s%s", uuid.NewString(), path.Ext(filename))
	return s.uploadFile(ctx, key, data, contentType)
}

// UploadAttachment stores a receipt attachment and returns its URL.
func (s *StorageService) UploadAttachment(ctx context.Context, receiptID, filename string, data []byte, contentType string) (string, error) {
	key := fmt.Sprintf("receipts/%s/%s%s", receiptID, uuid.NewString(), path.Ext(filename))
	return s.uploadFile(ctx, key, data, contentType)
}

// uploadFile PUTs an object using AWS Signature V4.
func (s *StorageService) uploadFile(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if s.accessKeyID == "" || s.secretAccessKey == "" {
		log.Warn().Str("key", key).Msg("Storage credentials not configured - skipping upload")
		return s.ObjectURL(key), nil
	}

	url := fmt.Sprintf("https://%s/%s", s.host(), key)
	req, err := http.NewRequestWithContext(ctx, "PUT", url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	now := time.Now().UTC()
	amzDate := now.Format("20060102T150405Z")
	dateStamp := now.Format("20060102")
	payloadHash := sha256Hex(data)

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Content-Length", fmt.Sprintf("%d", len(data)))
	req.Header.Set("Host", s.host())
	req.Header.Set("X-Amz-Date", amzDate)
	req.Header.Set("X-Amz-Content-Sha256", payloadHash)

	authorization := s.signRequest(req, payloadHash, amzDate, dateStamp)
	req.Header.Set("Authorization", authorization)

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to upload object")
		return "", fmt.Errorf("failed to upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		log.Error().
			Str("key", key).
			Int("status", resp.StatusCode).
			Str("response", string(body)).
			Msg("Object upload failed")
		return "", fmt.Errorf("upload failed: %s", string(body))
	}

	log.Info().Str("key", key).Msg("Object uploaded")
	return s.ObjectURL(key), nil
}

// host returns the virtual-hosted bucket endpoint, honoring a custom
// S3-compatible endpoint when configured.
func (s *StorageService) host() string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s.%s", s.bucket, s.endpoint)
	}
	return fmt.Sprintf("%s.s3.%s.amazonaws.com", s.bucket, s.region)
}

// ObjectURL returns the public URL for an object key.
func (s *StorageService) ObjectURL(key string) string {
	if s.publicBaseURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimRight(s.publicBaseURL, "/"), key)
	}
	return fmt.Sprintf("https://%s/%s", s.host(), key)
}

// signRequest creates the AWS Signature V4 authorization header.
func (s *StorageService) signRequest(req *http.Request, payloadHash, amzDate, dateStamp string) string {
	service := "s3"

	canonicalURI := req.URL.Path
	if canonicalURI == "" {
		canonicalURI = "/"
	}
	canonicalQueryString := ""

	signedHeaders := []string{"content-type", "host", "x-amz-content-sha256", "x-amz-date"}
	sort.Strings(signedHeaders)

	var canonicalHeaders strings.Builder
	for _, h := range signedHeaders {
		canonicalHeaders.WriteString(strings.ToLower(h))
		canonicalHeaders.WriteString(":")
		canonicalHeaders.WriteString(strings.TrimSpace(req.Header.Get(h)))
		canonicalHeaders.WriteString("\n")
	}
	signedHeadersStr := strings.Join(signedHeaders, ";")

	canonicalRequest := fmt.Sprintf("%s\n%s\n%s\n%s\n%s\n%s",
		req.Method,
		canonicalURI,
		canonicalQueryString,
		canonicalHeaders.String(),
		signedHeadersStr,
		payloadHash,
	)

	algorithm := "AWS4-HMAC-SHA256"
	credentialScope := fmt.Sprintf("%s/%s/%s/aws4_request", dateStamp, s.region, service)
	stringToSign := fmt.Sprintf("%s\n%s\n%s\n%s",
		algorithm,
		amzDate,
		credentialScope,
		sha256Hex([]byte(canonicalRequest)),
	)

	kDate := hmacSHA256([]byte("AWS4"+s.secretAccessKey), []byte(dateStamp))
	kRegion := hmacSHA256(kDate, []byte(s.region))
	kService := hmacSHA256(kRegion, []byte(service))
	kSigning := hmacSHA256(kService, []byte("aws4_request"))

	signature := hex.EncodeToString(hmacSHA256(kSigning, []byte(stringToSign)))

	return fmt.Sprintf("%s Credential=%s/%s, SignedHeaders=%s, Signature=%s",
		algorithm,
		s.accessKeyID,
		credentialScope,
		signedHeadersStr,
		signature,
	)
}

// sha256Hex computes a SHA256 hash and returns the hex string.
func sha256Hex(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// hmacSHA256 computes HMAC-SHA256.
func hmacSHA256(key, data []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(data)
	return h.Sum(nil)
}

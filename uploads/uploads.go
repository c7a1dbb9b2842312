package uploads

// go generate: mockery --name PhotoStore

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxUploadBytes caps report photos at 5MB
const MaxUploadBytes = 5 << 20

const uploadFolder = "lostfound"

// PhotoStore persists an uploaded report photo and returns a retrievable URL
type PhotoStore interface {
	Upload(ctx context.Context, file io.Reader, contentType string) (string, error)
}

// CloudinaryStore stores photos in Cloudinary. Credentials come from the
// CLOUDINARY_URL environment variable.
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStore creates a photo store backed by Cloudinary
func NewCloudinaryStore() (*CloudinaryStore, error) {
	cld, err := cloudinary.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &CloudinaryStore{cld: cld}, nil
}

// Upload pushes the image to Cloudinary and returns its secure URL. Only
// declared image content types are accepted; no content sniffing is done.
func (s *CloudinaryStore) Upload(ctx context.Context, file io.Reader, contentType string) (string, error) {
	if err := ValidateContentType(contentType); err != nil {
		return "", err
	}

	publicID := uuid.New().String()
	resp, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID: publicID,
		Folder:   uploadFolder,
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}

	zap.S().Debugw("uploaded report photo", "publicId", publicID, "url", resp.SecureURL)
	return resp.SecureURL, nil
}

// ValidateContentType rejects anything that does not declare itself an image
func ValidateContentType(contentType string) error {
	if !strings.HasPrefix(contentType, "image/") {
		return fmt.Errorf("only image files are allowed, got %q", contentType)
	}
	return nil
}

package imagehost

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// Uploader stores a file on the image host and returns its permanent URL.
type Uploader interface {
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
}

type Cloudinary struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinary(cloudName, apiKey, apiSecret, folder string) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary config: %w", err)
	}
	return &Cloudinary{cld: cld, folder: folder}, nil
}

// SetUploadPrefix points the client at another API host.
func (c *Cloudinary) SetUploadPrefix(prefix string) {
	c.cld.Config.API.UploadPrefix = prefix
}

func (c *Cloudinary) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	resp, err := c.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		PublicID: PublicID(filename),
		Folder:   c.folder,
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload: %s", resp.Error.Message)
	}
	if resp.SecureURL == "" {
		return "", errors.New("cloudinary upload: empty secure_url")
	}
	return resp.SecureURL, nil
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// PublicID derives a unique asset id from the uploaded file name.
func PublicID(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = strings.Trim(unsafeChars.ReplaceAllString(base, "-"), "-")
	id := uuid.NewString()
	if base == "" || base == "." {
		return id
	}
	return base + "_" + id
}

var ErrUnavailable = errors.New("image host unavailable")

// Unavailable is used when the image host cannot be configured at startup.
// Every upload fails with Err, or ErrUnavailable when Err is nil.
type Unavailable struct {
	Err error
}

func (u Unavailable) Upload(context.Context, string, io.Reader) (string, error) {
	if u.Err == nil {
		return "", ErrUnavailable
	}
	return "", u.Err
}

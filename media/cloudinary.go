package media

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// Cloudinary uploads images to Cloudinary. The client is built once from
// the CLOUDINARY_URL credential string.
type Cloudinary struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinary(credentialsURL string) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromURL(credentialsURL)
	if err != nil {
		return nil, fmt.Errorf("media: cloudinary configuration: %w", err)
	}
	return &Cloudinary{cld: cld}, nil
}

func (c *Cloudinary) Upload(ctx context.Context, r io.Reader, folder string) (string, error) {
	params := uploader.UploadParams{
		Folder:   folder,
		PublicID: uuid.NewString(),
	}
	result, err := c.cld.Upload.Upload(ctx, r, params)
	if err != nil {
		return "", fmt.Errorf("media: upload: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("media: upload returned no URL")
	}
	return result.SecureURL, nil
}

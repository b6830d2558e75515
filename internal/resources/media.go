package resources

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/carebridge/navigator-console/internal/gateway"
	"github.com/carebridge/navigator-console/pkg/logger"
	"github.com/carebridge/navigator-console/pkg/types"
)

// MediaResource implements binary upload to the hosted media store
type MediaResource struct {
	client *gateway.Client
	logger *logger.Logger
}

// NewMediaResource creates a new media resource service
func NewMediaResource(client *gateway.Client, log *logger.Logger) *MediaResource {
	return &MediaResource{
		client: client,
		logger: log,
	}
}

// Upload sends the file as multipart form data and returns the hosted
// asset descriptor
func (r *MediaResource) Upload(ctx context.Context, fileName string, content []byte) (*types.MediaAsset, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return nil, fmt.Errorf("failed to write upload payload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize upload form: %w", err)
	}

	resp, err := r.client.Do(ctx, &gateway.Request{
		Method:      http.MethodPost,
		Path:        "/media/upload",
		RawBody:     &buf,
		ContentType: writer.FormDataContentType(),
	})
	if err != nil {
		return nil, err
	}

	result, err := decodeOne[types.MediaAsset](resp.Body)
	if err != nil {
		return nil, err
	}

	r.logger.WithResource("media").WithField("file", fileName).Info("Uploaded media asset")
	return result.Data, nil
}

// Delete removes a hosted asset by its public id
func (r *MediaResource) Delete(ctx context.Context, publicID string) error {
	_, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodPost,
		Path:   "/media/delete",
		Body:   map[string]string{"publicId": publicID},
	})
	return err
}

package media

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// Uploader publishes rendered episode videos to YouTube. Videos are created
// private so they can be reviewed before release.
type Uploader struct {
	service    *youtube.Service
	tags       []string
	categoryID string
}

// NewUploader creates an uploader from OAuth client secrets and a previously
// obtained token file
func NewUploader(ctx context.Context, clientSecretsPath, tokenPath string, tags []string) (*Uploader, error) {
	secrets, err := os.ReadFile(clientSecretsPath)
	if err != nil {
		return nil, fmt.Errorf("read client secrets: %w", err)
	}

	oauthCfg, err := google.ConfigFromJSON(secrets, youtube.YoutubeUploadScope)
	if err != nil {
		return nil, fmt.Errorf("parse client secrets: %w", err)
	}

	tokenData, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("read oauth token: %w", err)
	}
	var token oauth2.Token
	if err := json.Unmarshal(tokenData, &token); err != nil {
		return nil, fmt.Errorf("parse oauth token: %w", err)
	}

	service, err := youtube.NewService(ctx, option.WithHTTPClient(oauthCfg.Client(ctx, &token)))
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	return &Uploader{
		service:    service,
		tags:       tags,
		categoryID: "22", // People & Blogs
	}, nil
}

// Upload pushes a video file with the given title and description, returns
// the resulting video ID
func (u *Uploader) Upload(ctx context.Context, videoPath, title, description string) (string, error) {
	file, err := os.Open(videoPath) //nolint:gosec // path comes from the operator
	if err != nil {
		return "", fmt.Errorf("open video file: %w", err)
	}
	defer file.Close()

	video := &youtube.Video{
		Snippet: &youtube.VideoSnippet{
			Title:       title,
			Description: description,
			Tags:        u.tags,
			CategoryId:  u.categoryID,
		},
		Status: &youtube.VideoStatus{PrivacyStatus: "private"},
	}

	resp, err := u.service.Videos.Insert([]string{"snippet", "status"}, video).
		Media(file).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("upload video: %w", err)
	}
	return resp.Id, nil
}

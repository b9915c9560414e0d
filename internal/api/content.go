package api

import (
	"context"

	"github.com/pamsartech/jytechinvestment-admin/internal/model"
)

// GetContent fetches the editable site content: the legal documents and the
// tutorial video metadata.
func (c *Client) GetContent(ctx context.Context) (model.SiteContent, error) {
	var out struct {
		Success bool `json:"success"`
		Content struct {
			TermsAndConditions string `json:"TermsAndConditions"`
			PrivacyPolicy      string `json:"PrivacyPolicy"`
			TutorialMangment   *struct {
				VideoTittle string `json:"VideoTittle"`
			} `json:"TutorialMangment"`
		} `json:"content"`
		VideoDetails *struct {
			StreamURL string `json:"streamUrl"`
		} `json:"videoDetails"`
	}
	if err := c.do(ctx, "GET", "/api/content/get", nil, &out); err != nil {
		return model.SiteContent{}, err
	}

	content := model.SiteContent{
		Terms:   out.Content.TermsAndConditions,
		Privacy: out.Content.PrivacyPolicy,
	}
	if out.Content.TutorialMangment != nil {
		content.VideoTitle = out.Content.TutorialMangment.VideoTittle
	}
	if out.VideoDetails != nil {
		content.VideoURL = out.VideoDetails.StreamURL
	}
	return content, nil
}

// SaveTerms replaces the terms-and-conditions document.
func (c *Client) SaveTerms(ctx context.Context, text string) error {
	body := map[string]string{"termsAndConditions": text}
	return c.do(ctx, "POST", "/api/content/terms-and-conditions", body, nil)
}

// SavePrivacy replaces the privacy-policy document.
func (c *Client) SavePrivacy(ctx context.Context, text string) error {
	body := map[string]string{"privacyPolicy": text}
	return c.do(ctx, "POST", "/api/content/privacy-policy", body, nil)
}

// UploadVideo replaces the tutorial video via multipart upload.
func (c *Client) UploadVideo(ctx context.Context, title, fileName string, video []byte, published bool) error {
	fields := map[string]string{
		"title":     title,
		"published": boolField(published),
	}
	return c.doMultipart(ctx, "/api/content/upload-video", fields, "video", fileName, video, nil)
}

func boolField(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

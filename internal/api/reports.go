package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pamsartech/jytechinvestment-admin/internal/model"
)

type rawProject struct {
	ID        string `json:"_id"`
	UserName  string `json:"userName"`
	Type      string `json:"type"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

func (p rawProject) toModel() model.Report {
	return model.Report{
		ID:           p.ID,
		CustomerName: model.OrDash(p.UserName),
		Type:         model.ReportTypeFromAPI(p.Type),
		Status:       model.ReportStatusFromAPI(p.Status),
		CreatedAt:    parseTime(p.CreatedAt),
	}
}

// ListReports fetches every generated report (the API calls them projects).
func (c *Client) ListReports(ctx context.Context) ([]model.Report, error) {
	var out struct {
		Projects []rawProject `json:"projects"`
	}
	if err := c.do(ctx, "GET", "/admin/projects/all", nil, &out); err != nil {
		return nil, err
	}
	reports := make([]model.Report, 0, len(out.Projects))
	for _, p := range out.Projects {
		reports = append(reports, p.toModel())
	}
	return reports, nil
}

// GetReport fetches one report.
func (c *Client) GetReport(ctx context.Context, id string) (model.Report, error) {
	var out struct {
		Project rawProject `json:"project"`
	}
	if err := c.do(ctx, "GET", "/admin/projects/"+url.PathEscape(id), nil, &out); err != nil {
		return model.Report{}, err
	}
	r := out.Project.toModel()
	if r.ID == "" {
		r.ID = id
	}
	return r, nil
}

// DownloadReport streams the generated PDF for a completed report. The
// content type is returned alongside the bytes; the server occasionally
// omits it.
func (c *Client) DownloadReport(ctx context.Context, id string) ([]byte, string, error) {
	data, contentType, err := c.doRaw(ctx, "GET", "/admin/projects/generate-report/"+url.PathEscape(id))
	if err != nil {
		return nil, "", err
	}
	if contentType == "" {
		contentType = "application/pdf"
	}
	return data, contentType, nil
}

// SoftDeleteReport marks a report deleted without destroying it server-side.
func (c *Client) SoftDeleteReport(ctx context.Context, id string) error {
	var out struct {
		Success *bool  `json:"success"`
		Message string `json:"message"`
	}
	if err := c.do(ctx, "POST", "/api/project/soft-delete/"+url.PathEscape(id), struct{}{}, &out); err != nil {
		return err
	}
	// Only an explicit success:false is a failure; some responses omit the
	// flag entirely.
	if out.Success != nil && !*out.Success {
		if out.Message != "" {
			return fmt.Errorf("%s", out.Message)
		}
		return fmt.Errorf("la suppression du rapport a échoué")
	}
	return nil
}

package dashboard

import (
	"encoding/json"
	"fmt"
)

// Revision is one entry of the moderation table, as served by the dashboard.
// All URLs are opaque and supplied by the server.
type Revision struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Locale      string `json:"locale"`
	Author      string `json:"author"`
	Created     string `json:"created"`
	IPAddress   string `json:"ip_address"`
	CompareURL  string `json:"compare_url"`
	RevertURL   string `json:"revert_url"`
	ViewURL     string `json:"view_url"`
	EditURL     string `json:"edit_url"`
	HistoryURL  string `json:"history_url"`
	ClassifyURL string `json:"classify_url"`
}

// RevisionPage is a full result set for one filter/pagination request.
type RevisionPage struct {
	Rows      []Revision `json:"rows"`
	Page      int        `json:"page"`
	PageCount int        `json:"page_count"`
}

func ParseRevisionPage(data []byte) (*RevisionPage, error) {
	var page RevisionPage
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("parse revision page: %w", err)
	}
	if page.Page < 1 {
		page.Page = 1
	}
	if page.PageCount < 1 {
		page.PageCount = 1
	}
	return &page, nil
}

// ClassificationSubmission is a server-confirmed record of a verdict having
// been filed. Zero or more are returned per submission request.
type ClassificationSubmission struct {
	Type   string `json:"type"`
	Sent   string `json:"sent"`
	Sender string `json:"sender"`
}

func ParseSubmissions(data []byte) ([]ClassificationSubmission, error) {
	var submissions []ClassificationSubmission
	if err := json.Unmarshal(data, &submissions); err != nil {
		return nil, fmt.Errorf("parse submissions: %w", err)
	}
	return submissions, nil
}

// ParseLookupLabels extracts the label of each autocomplete lookup record.
// Records may carry extra fields; only the label is used.
func ParseLookupLabels(data []byte) ([]string, error) {
	var records []struct {
		Label string `json:"label"`
	}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse lookup records: %w", err)
	}
	var labels []string
	for _, r := range records {
		if r.Label != "" {
			labels = append(labels, r.Label)
		}
	}
	return labels, nil
}

package models

import (
	"fmt"
	"time"
)

// Image is an encoded image payload attached to a pitch.
type Image struct {
	Base64   string `json:"base64"`
	MimeType string `json:"mimeType"`
}

// DataURL re-encodes the image into a form displayable in an <img> element.
func (i Image) DataURL() string {
	return fmt.Sprintf("data:%s;base64,%s", i.MimeType, i.Base64)
}

// CaseFile is one persisted interaction: the submitted pitch together with
// its analysis result.
//
// Name is always non-empty and Result always valid. Image is optional and may
// be dropped independently of the rest of the record when the backing store
// runs out of capacity.
type CaseFile struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	CreatedAt time.Time      `json:"createdAt"`
	PitchText string         `json:"pitchText"`
	Image     *Image         `json:"image,omitempty"`
	Result    AnalysisResult `json:"result"`
}

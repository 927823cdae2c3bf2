package casefile

import (
	"bytes"
	"encoding/json"
	"github.com/myrjola/thejury/internal/errors"
	"github.com/myrjola/thejury/internal/models"
	"log/slog"
	"strings"
	"time"
)

// snapshotVersion is the current version of the persisted history snapshot.
// Version 0 is the historical format: a bare JSON array of records that
// predate the name field.
const snapshotVersion = 1

type snapshot struct {
	Version int               `json:"version"`
	Cases   []models.CaseFile `json:"cases"`
}

// legacyRecord is the version-0 wire format.
type legacyRecord struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Timestamp     int64                 `json:"timestamp"`
	PitchText     string                `json:"pitchText"`
	ImageBase64   string                `json:"imageBase64"`
	ImageMimeType string                `json:"imageMimeType"`
	Response      models.AnalysisResult `json:"response"`
}

// decodeSnapshot parses a stored history blob, upgrading the version-0
// format when encountered. migrated reports whether the caller should
// persist the upgraded snapshot back.
func decodeSnapshot(data []byte) (snap snapshot, migrated bool, err error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		snap, err = upgradeLegacy(trimmed)
		return snap, true, err
	}

	if err = json.Unmarshal(data, &snap); err != nil {
		return snapshot{}, false, errors.Wrap(err, "decode history snapshot")
	}
	if snap.Version != snapshotVersion {
		return snapshot{}, false, errors.New("unsupported history snapshot version",
			slog.Int("version", snap.Version))
	}
	// Guard against records that were persisted with an empty name.
	for i, caseFile := range snap.Cases {
		if strings.TrimSpace(caseFile.Name) == "" {
			snap.Cases[i].Name = derivedName("", caseFile.PitchText, caseFile.ID)
			migrated = true
		}
	}
	return snap, migrated, nil
}

func upgradeLegacy(data []byte) (snapshot, error) {
	var records []legacyRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return snapshot{}, errors.Wrap(err, "decode legacy history")
	}

	cases := make([]models.CaseFile, 0, len(records))
	for _, record := range records {
		caseFile := models.CaseFile{ //nolint:exhaustruct
			ID:        record.ID,
			Name:      record.Name,
			CreatedAt: time.UnixMilli(record.Timestamp).UTC(),
			PitchText: record.PitchText,
			Result:    record.Response,
		}
		if record.ImageBase64 != "" && record.ImageMimeType != "" {
			caseFile.Image = &models.Image{
				Base64:   record.ImageBase64,
				MimeType: record.ImageMimeType,
			}
		}
		if strings.TrimSpace(caseFile.Name) == "" {
			caseFile.Name = derivedName("", caseFile.PitchText, caseFile.ID)
		}
		cases = append(cases, caseFile)
	}
	return snapshot{Version: snapshotVersion, Cases: cases}, nil
}

func encodeSnapshot(cases []models.CaseFile) ([]byte, error) {
	data, err := json.Marshal(snapshot{Version: snapshotVersion, Cases: cases})
	if err != nil {
		return nil, errors.Wrap(err, "encode history snapshot")
	}
	return data, nil
}

// nameExcerptLimit caps the pitch excerpt used for derived case names.
const nameExcerptLimit = 15

// derivedName picks a display name for a record: the case title when
// present, then a truncated pitch excerpt, then a placeholder built from
// the record id.
func derivedName(caseTitle, pitchText, id string) string {
	if name := strings.TrimSpace(caseTitle); name != "" {
		return name
	}
	if strings.TrimSpace(pitchText) != "" {
		return pitchExcerptName(pitchText)
	}
	idPrefix := id
	if len(idPrefix) > 4 {
		idPrefix = idPrefix[:4]
	}
	return "Evidence #" + idPrefix
}

func pitchExcerptName(pitchText string) string {
	runes := []rune(pitchText)
	if len(runes) <= nameExcerptLimit {
		return strings.TrimSpace(pitchText)
	}
	return strings.TrimSpace(string(runes[:nameExcerptLimit])) + "..."
}

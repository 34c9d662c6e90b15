// Package transfer reads and writes portable daydial data files in JSON or YAML.
package transfer

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/daydial/internal/constants"
	"github.com/julianstephens/daydial/internal/models"
	"github.com/julianstephens/daydial/internal/utils"
)

// Format is a bundle encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Schema version written into every bundle
const bundleVersion = 1

// Bundle is the full exportable state. Activities travel in their intake
// form so files written by older versions migrate on import.
type Bundle struct {
	Version        int                     `json:"version" yaml:"version"`
	ExportedAt     time.Time               `json:"exportedAt,omitzero" yaml:"exportedAt,omitempty"`
	Activities     []models.ActivityRecord `json:"activities" yaml:"activities"`
	CompletedSlots []models.CompletedSlot  `json:"completedSlots" yaml:"completedSlots"`
	Snapshots      []SnapshotRecord        `json:"snapshots,omitempty" yaml:"snapshots,omitempty"`
}

// SnapshotRecord is the intake form of a daily snapshot.
type SnapshotRecord struct {
	Date       string                  `json:"date" yaml:"date"`
	Activities []models.ActivityRecord `json:"activities" yaml:"activities"`
	CreatedAt  time.Time               `json:"createdAt,omitzero" yaml:"createdAt,omitempty"`
}

// ParseFormat accepts json, yaml or yml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected json or yaml)", s)
	}
}

// FormatFromPath guesses the format from a file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") {
		return FormatYAML
	}
	return FormatJSON
}

// NewBundle assembles a bundle from live state.
func NewBundle(activities []models.Activity, slots []models.CompletedSlot, snapshots []models.DailySnapshot, exportedAt time.Time) Bundle {
	b := Bundle{
		Version:        bundleVersion,
		ExportedAt:     exportedAt,
		Activities:     make([]models.ActivityRecord, len(activities)),
		CompletedSlots: append([]models.CompletedSlot{}, slots...),
	}
	for i, a := range activities {
		b.Activities[i] = models.RecordFromActivity(a)
	}
	for _, snap := range snapshots {
		rec := SnapshotRecord{
			Date:       snap.Date,
			Activities: make([]models.ActivityRecord, len(snap.Activities)),
			CreatedAt:  snap.CreatedAt,
		}
		for i, a := range snap.Activities {
			rec.Activities[i] = models.RecordFromActivity(a)
		}
		b.Snapshots = append(b.Snapshots, rec)
	}
	return b
}

// Export writes b to w.
func Export(w io.Writer, format Format, b Bundle) error {
	if b.Version == 0 {
		b.Version = bundleVersion
	}
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(b)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(b); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// Import reads a bundle from r. Completed slots are de-duplicated and
// slots outside the dial or with malformed dates are dropped.
func Import(r io.Reader, format Format) (Bundle, error) {
	var b Bundle
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&b); err != nil {
			return Bundle{}, fmt.Errorf("failed to decode json bundle: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&b); err != nil {
			return Bundle{}, fmt.Errorf("failed to decode yaml bundle: %w", err)
		}
	default:
		return Bundle{}, fmt.Errorf("unsupported format %q", format)
	}

	if b.Version > bundleVersion {
		return Bundle{}, fmt.Errorf("bundle version %d is newer than supported version %d", b.Version, bundleVersion)
	}

	seen := make(map[string]bool, len(b.CompletedSlots))
	slots := make([]models.CompletedSlot, 0, len(b.CompletedSlots))
	for _, s := range b.CompletedSlots {
		if s.Hour < constants.MinHour || s.Hour > constants.MaxHour || !utils.ValidDateKey(s.Date) || seen[s.Key()] {
			continue
		}
		seen[s.Key()] = true
		slots = append(slots, s)
	}
	b.CompletedSlots = slots
	return b, nil
}

// NormalizedActivities migrates the bundle's records into activities.
func (b Bundle) NormalizedActivities() []models.Activity {
	out := make([]models.Activity, len(b.Activities))
	for i, r := range b.Activities {
		out[i] = r.Normalize()
	}
	return out
}

// NormalizedSnapshots migrates the bundle's snapshots.
func (b Bundle) NormalizedSnapshots() []models.DailySnapshot {
	out := make([]models.DailySnapshot, len(b.Snapshots))
	for i, rec := range b.Snapshots {
		snap := models.DailySnapshot{
			Date:       rec.Date,
			Activities: make([]models.Activity, len(rec.Activities)),
			CreatedAt:  rec.CreatedAt,
		}
		for j, r := range rec.Activities {
			snap.Activities[j] = r.Normalize()
		}
		out[i] = snap
	}
	return out
}

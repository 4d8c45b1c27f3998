package domain

import (
	"errors"
	"strings"
	"testing"
)

func strPtr(s string) *string { return &s }

func sampleHousehold(id uint32) Household {
	return Household{
		ID:             id,
		Name:           "Okafor",
		Persons:        []Person{{Name: "Ada Okafor", DOB: "1984-02-11"}},
		NextReviewDue:  "2024-06-01",
		ReviewType:     ReviewPeriodic,
		Score:          0.72,
		Segment:        SegmentGreen,
		LastReviewDate: strPtr("2023-06-01"),
		ReviewStatus:   StatusScheduled,
		PriorityFlag:   "normal",
		AssignedMonth:  strPtr("June"),
		Created:        "2023-01-10T09:00:00Z",
		Updated:        "2023-06-01T09:00:00Z",
	}
}

func TestDefaultDocument(t *testing.T) {
	doc := DefaultDocument()

	if doc.Households == nil || len(doc.Households) != 0 {
		t.Fatalf("Households = %v, want empty non-nil slice", doc.Households)
	}
	if doc.Settings.Theme != ThemeLight {
		t.Errorf("Theme = %q, want %q", doc.Settings.Theme, ThemeLight)
	}
	if !doc.Settings.AutoBackup {
		t.Error("AutoBackup should default to true")
	}
	if doc.Settings.BackupCount != 10 {
		t.Errorf("BackupCount = %d, want 10", doc.Settings.BackupCount)
	}
	if doc.Settings.LastFilePath != nil {
		t.Errorf("LastFilePath = %v, want nil", *doc.Settings.LastFilePath)
	}
	if doc.Version != FormatVersion {
		t.Errorf("Version = %q, want %q", doc.Version, FormatVersion)
	}
	if err := doc.Validate(); err != nil {
		t.Errorf("default document should be valid: %v", err)
	}
}

func TestDocument_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *Document)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(d *Document) {},
		},
		{
			name: "duplicate id",
			mutate: func(d *Document) {
				d.Households = append(d.Households, sampleHousehold(1))
			},
			wantErr: "household id 1 is not unique",
		},
		{
			name: "bad review status",
			mutate: func(d *Document) {
				d.Households[0].ReviewStatus = "Pending"
			},
			wantErr: `review_status "Pending"`,
		},
		{
			name: "bad review type",
			mutate: func(d *Document) {
				d.Households[1].ReviewType = "Annual"
			},
			wantErr: `review_type "Annual"`,
		},
		{
			name: "bad theme",
			mutate: func(d *Document) {
				d.Settings.Theme = "solarized"
			},
			wantErr: `settings.theme "solarized"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := DefaultDocument()
			doc.Households = []Household{sampleHousehold(1), sampleHousehold(2)}
			tt.mutate(doc)

			err := doc.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("Validate() = %v, want ErrValidation", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, want it to mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestDocument_Queries(t *testing.T) {
	doc := DefaultDocument()
	h2 := sampleHousehold(2)
	h2.ReviewStatus = StatusOverdue
	h2.Persons = append(h2.Persons, Person{Name: "Chidi Okafor", DOB: "2010-09-30"})
	doc.Households = []Household{sampleHousehold(1), h2}

	if got, ok := doc.Household(2); !ok || got.ReviewStatus != StatusOverdue {
		t.Fatalf("Household(2) = %+v, %v", got, ok)
	}
	if _, ok := doc.Household(99); ok {
		t.Error("Household(99) should not be found")
	}
	if n := doc.MemberCount(); n != 3 {
		t.Errorf("MemberCount() = %d, want 3", n)
	}
	counts := doc.CountByStatus()
	if counts[StatusScheduled] != 1 || counts[StatusOverdue] != 1 {
		t.Errorf("CountByStatus() = %v", counts)
	}
}

func TestDocument_Clone(t *testing.T) {
	doc := DefaultDocument()
	doc.Settings.LastFilePath = strPtr("/data/house.json")
	doc.Households = []Household{sampleHousehold(1)}

	clone := doc.Clone()
	clone.Households[0].Persons[0].Name = "changed"
	*clone.Households[0].LastReviewDate = "changed"
	*clone.Settings.LastFilePath = "changed"

	if doc.Households[0].Persons[0].Name != "Ada Okafor" {
		t.Error("Clone shares the persons slice")
	}
	if *doc.Households[0].LastReviewDate != "2023-06-01" {
		t.Error("Clone shares last_review_date")
	}
	if *doc.Settings.LastFilePath != "/data/house.json" {
		t.Error("Clone shares last_file_path")
	}
}

// store/seed.go
package store

import (
	"time"

	"github.com/ViniZap4/nurse-notes/domain"
)

// SampleNotes returns the five sample nurse notes the service ships with.
func SampleNotes() []domain.Note {
	return []domain.Note{
		{
			ID:        "note-1",
			PatientID: domain.Ref("patient-1001"),
			CreatedAt: time.Date(2025, 9, 1, 8, 15, 0, 0, time.UTC),
			NoteDate:  "2025-09-01",
			AuthorID:  domain.Ref("nurse-a"),
			Text:      "Patient reported mild chest pain after walking. Vitals stable. Advised rest and monitoring.",
			Status:    domain.StatusNew,
			ActionItems: []string{
				"Monitor vitals every 30 minutes for 2 hours.",
				"If chest pain persists, escalate to physician and order ECG.",
			},
		},
		{
			ID:        "note-2",
			PatientID: domain.Ref("patient-1002"),
			CreatedAt: time.Date(2025, 9, 1, 9, 30, 0, 0, time.UTC),
			NoteDate:  "2025-09-01",
			AuthorID:  domain.Ref("nurse-b"),
			Text:      "Post-op patient showing slight fever (38.1C). Given paracetamol per orders. Will recheck in 2 hours.",
			Status:    domain.StatusNew,
			ActionItems: []string{
				"Administer paracetamol 500 mg as ordered.",
				"Recheck temperature in 2 hours and document response.",
			},
		},
		{
			ID:        "note-3",
			PatientID: domain.Ref("patient-1003"),
			CreatedAt: time.Date(2025, 9, 2, 7, 50, 0, 0, time.UTC),
			NoteDate:  "2025-09-02",
			AuthorID:  domain.Ref("nurse-c"),
			Text:      "Patient with diabetes checking blood glucose: 220 mg/dL. Insulin sliding scale given as per protocol.",
			Status:    domain.StatusNew,
			ActionItems: []string{
				"Record blood glucose every 4 hours.",
				"Follow insulin sliding scale; notify physician if > 300 mg/dL.",
			},
		},
		{
			ID:        "note-4",
			PatientID: domain.Ref("patient-1004"),
			CreatedAt: time.Date(2025, 9, 2, 11, 5, 0, 0, time.UTC),
			NoteDate:  "2025-09-02",
			AuthorID:  domain.Ref("nurse-a"),
			Text:      "Patient reports dizziness when standing. Orthostatic BP measured; slight drop observed. Advised slow position changes.",
			Status:    domain.StatusNew,
			ActionItems: []string{
				"Advise patient to stand slowly and call for assistance when needed.",
				"Document orthostatic BP measurements and report if symptomatic.",
			},
		},
		{
			ID:        "note-5",
			PatientID: domain.Ref("patient-1001"),
			CreatedAt: time.Date(2025, 9, 3, 10, 20, 0, 0, time.UTC),
			NoteDate:  "2025-09-03",
			AuthorID:  domain.Ref("nurse-b"),
			Text:      "Wound dressing changed; no signs of infection. Patient tolerating procedure well.",
			Status:    domain.StatusNew,
			ActionItems: []string{
				"Continue daily wound dressing changes.",
				"Observe for erythema, drainage, or fever and notify clinician if present.",
			},
		},
	}
}

// NewSample builds a Store from SampleNotes.
func NewSample() *Store {
	s, err := New(SampleNotes())
	if err != nil {
		panic("store: sample notes are invalid: " + err.Error())
	}
	return s
}

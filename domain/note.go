// domain/note.go
package domain

import "time"

// NoteDateLayout is the calendar layout used by Note.NoteDate.
const NoteDateLayout = "2006-01-02"

// StatusNew is the only status the sample records carry. Status stays an
// open string; other values are passed through untouched.
const StatusNew = "new"

type Note struct {
	ID          string    `json:"id" yaml:"id"`
	PatientID   *string   `json:"patient_id" yaml:"patient_id"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
	NoteDate    string    `json:"note_date" yaml:"note_date"`
	AuthorID    *string   `json:"author_id" yaml:"author_id"`
	Text        string    `json:"text" yaml:"text"`
	Status      string    `json:"status" yaml:"status"`
	ActionItems []string  `json:"action_items" yaml:"action_items"`
}

// Ref returns a pointer to s, for filling the optional fields of a Note.
func Ref(s string) *string {
	return &s
}

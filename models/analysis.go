package models

import "time"

// Input origins for an analysis row.
const (
	InputText = "text"
	InputTxt  = "txt"
	InputCSV  = "csv"
)

// Analysis is one classified feedback line. Rows are immutable after insert
// and go away only when the owning user is deleted.
type Analysis struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         uint      `json:"user_id" gorm:"index;not null"`
	InputType      string    `json:"input_type" gorm:"not null"`
	OriginalText   string    `json:"original_text" gorm:"not null"`
	CleanedText    string    `json:"cleaned_text"`
	SentimentLabel string    `json:"sentiment_label" gorm:"not null"`
	Score          float64   `json:"score"`
	CreatedAt      time.Time `json:"created_at"`
}

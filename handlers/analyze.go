package handlers

import (
	"encoding/csv"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gin-gonic/gin"

	"feedback-analysis/charts"
	"feedback-analysis/database"
	"feedback-analysis/models"
	"feedback-analysis/sentiment"
)

// AnalyzeText classifies one typed feedback sentence and stores it.
func AnalyzeText(c *gin.Context) {
	feedback := strings.TrimSpace(c.PostForm("feedback"))
	if feedback == "" {
		renderHome(c, HomeData{ErrorText: "Please enter a customer feedback sentence."})
		return
	}

	label, score := sentiment.Classify(feedback)

	row := models.Analysis{
		UserID:         currentUserID(c),
		InputType:      models.InputText,
		OriginalText:   feedback,
		CleanedText:    feedback,
		SentimentLabel: label,
		Score:          score,
	}
	if err := database.GetDB().Create(&row).Error; err != nil {
		renderHome(c, HomeData{ErrorText: "Could not save the analysis."})
		return
	}

	renderHome(c, HomeData{
		Feedback:    feedback,
		ResultLabel: label,
		ResultScore: score,
		HasResult:   true,
	})
}

// AnalyzeFile classifies every non-blank line of an uploaded .txt file.
func AnalyzeFile(c *gin.Context) {
	fileHeader, err := c.FormFile("feedback_file")
	if err != nil || fileHeader.Filename == "" {
		renderHome(c, HomeData{ErrorFile: "Please upload a .txt file that contains feedback."})
		return
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".txt") {
		renderHome(c, HomeData{ErrorFile: "Only .txt files are supported in this section."})
		return
	}

	content, err := readUpload(fileHeader)
	if err != nil {
		renderHome(c, HomeData{ErrorFile: "The uploaded file could not be read."})
		return
	}

	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) == 0 {
		renderHome(c, HomeData{ErrorFile: "The uploaded file is empty."})
		return
	}

	analyzeBatch(c, lines, models.InputTxt)
}

// AnalyzeCSV classifies every non-blank cell of an uploaded .csv file, in
// row-major, left-to-right order.
func AnalyzeCSV(c *gin.Context) {
	fileHeader, err := c.FormFile("csv_file")
	if err != nil || fileHeader.Filename == "" {
		renderHome(c, HomeData{ErrorFile: "Please upload a CSV file that contains feedback."})
		return
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".csv") {
		renderHome(c, HomeData{ErrorFile: "Only .csv files are supported here."})
		return
	}

	content, err := readUpload(fileHeader)
	if err != nil {
		renderHome(c, HomeData{ErrorFile: "The uploaded file could not be read."})
		return
	}

	reader := csv.NewReader(strings.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		renderHome(c, HomeData{ErrorFile: "The uploaded CSV file could not be parsed."})
		return
	}

	var cells []string
	for _, record := range records {
		for _, cell := range record {
			if trimmed := strings.TrimSpace(cell); trimmed != "" {
				cells = append(cells, trimmed)
			}
		}
	}
	if len(cells) == 0 {
		renderHome(c, HomeData{ErrorFile: "The uploaded CSV file is empty."})
		return
	}

	analyzeBatch(c, cells, models.InputCSV)
}

// analyzeBatch classifies the lines, persists one row per line, and renders
// the summary with its chart. Callers guarantee a non-empty batch.
func analyzeBatch(c *gin.Context, lines []string, inputType string) {
	details, summary, err := sentiment.Summarize(lines)
	if err != nil {
		renderHome(c, HomeData{ErrorFile: "The uploaded file is empty."})
		return
	}

	userID := currentUserID(c)
	rows := make([]models.Analysis, 0, len(details))
	for _, d := range details {
		rows = append(rows, models.Analysis{
			UserID:         userID,
			InputType:      inputType,
			OriginalText:   d.Text,
			CleanedText:    d.Text,
			SentimentLabel: d.Label,
			Score:          d.Score,
		})
	}
	if err := database.GetDB().Create(&rows).Error; err != nil {
		renderHome(c, HomeData{ErrorFile: "Could not save the analysis results."})
		return
	}

	chartB64, err := charts.SentimentBar(summary.Positive, summary.Negative, summary.Neutral)
	if err != nil {
		renderHome(c, HomeData{ErrorFile: "Could not render the summary chart."})
		return
	}

	renderHome(c, HomeData{
		FileSummary: &FileSummary{Summary: summary, Chart: chartB64},
		FileDetails: details,
	})
}

// readUpload reads a multipart upload as UTF-8, dropping invalid byte
// sequences.
func readUpload(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}

	return strings.ToValidUTF8(string(raw), ""), nil
}

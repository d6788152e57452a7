package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"feedback-analysis/sentiment"
)

// HomeData is everything the dashboard template can show: the analyze forms,
// an inline error per form, a single-text result, or a batch summary.
type HomeData struct {
	Username    string
	ErrorText   string
	ErrorFile   string
	Feedback    string
	ResultLabel string
	ResultScore float64
	HasResult   bool
	FileSummary *FileSummary
	FileDetails []sentiment.LineResult
}

// FileSummary is a batch summary plus its base64-encoded PNG chart.
type FileSummary struct {
	sentiment.Summary
	Chart string
}

func renderHome(c *gin.Context, data HomeData) {
	data.Username = currentUsername(c)
	c.HTML(http.StatusOK, "index.html", data)
}

func Home(c *gin.Context) {
	renderHome(c, HomeData{})
}

func About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", gin.H{})
}

func Guide(c *gin.Context) {
	c.HTML(http.StatusOK, "guide.html", gin.H{})
}

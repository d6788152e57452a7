package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedback-analysis/models"
)

func setupDB(t *testing.T) {
	t.Helper()
	InitDB("file::memory:?cache=shared")
	require.NoError(t, GetDB().Exec("DELETE FROM analyses").Error)
	require.NoError(t, GetDB().Exec("DELETE FROM users").Error)
}

func TestUniqueEmail(t *testing.T) {
	setupDB(t)
	db := GetDB()

	first := models.User{Username: "a", Email: "a@example.com", Password: "x"}
	require.NoError(t, db.Create(&first).Error)

	second := models.User{Username: "b", Email: "a@example.com", Password: "y"}
	err := db.Create(&second).Error
	require.Error(t, err)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCascadeDelete(t *testing.T) {
	setupDB(t)
	db := GetDB()

	user := models.User{Username: "a", Email: "cascade@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	rows := []models.Analysis{
		{UserID: user.ID, InputType: models.InputText, OriginalText: "good", CleanedText: "good", SentimentLabel: "Positive", Score: 1},
		{UserID: user.ID, InputType: models.InputTxt, OriginalText: "bad", CleanedText: "bad", SentimentLabel: "Negative", Score: -1},
	}
	require.NoError(t, db.Create(&rows).Error)

	require.NoError(t, db.Delete(&user).Error)

	var count int64
	db.Model(&models.Analysis{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(0), count, "deleting a user must cascade to its analyses")
}

func TestListNewestFirst(t *testing.T) {
	setupDB(t)
	db := GetDB()

	user := models.User{Username: "a", Email: "order@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	for _, text := range []string{"first", "second", "third"} {
		row := models.Analysis{
			UserID: user.ID, InputType: models.InputText,
			OriginalText: text, CleanedText: text,
			SentimentLabel: "Neutral", Score: 0,
		}
		require.NoError(t, db.Create(&row).Error)
	}

	var analyses []models.Analysis
	require.NoError(t, db.Where("user_id = ?", user.ID).Order("created_at DESC").Find(&analyses).Error)
	require.Len(t, analyses, 3)
	assert.Equal(t, "third", analyses[0].OriginalText)
	assert.Equal(t, "first", analyses[2].OriginalText)
}

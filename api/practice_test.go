package api

import (
	"net/http"
	"testing"

	"speakwell/practice-api/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPracticeWords(t *testing.T) {
	a := newTestAPI(t)

	rec, resp := doJSON(t, a, http.MethodGet, "/api/practice/words", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	words := resp["words"].([]any)
	require.Len(t, words, 4)

	first := words[0].(map[string]any)
	assert.Equal(t, "pronunciation", first["word"])
	assert.NotEmpty(t, first["phonetic"])
	assert.NotEmpty(t, first["tips"])
}

func TestPracticeAttemptRequiresAuth(t *testing.T) {
	a := newTestAPI(t)

	rec, _ := doJSON(t, a, http.MethodPost, "/api/practice/attempts", gin.H{"word": "through"}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPracticeAttemptScoring(t *testing.T) {
	a := newTestAPI(t)

	userID := registerAndVerify(t, a, registerOpts{Email: "alice@example.com", Password: "Passw0rd!"})
	access, _ := login(t, a, "alice@example.com", "Passw0rd!")

	rec, resp := doJSON(t, a, http.MethodPost, "/api/practice/attempts", gin.H{
		"word": "through",
	}, []*http.Cookie{access})
	require.Equal(t, http.StatusOK, rec.Code)

	accuracy := resp["accuracy"].(float64)
	assert.GreaterOrEqual(t, accuracy, float64(60))
	assert.LessOrEqual(t, accuracy, float64(100))
	assert.NotEmpty(t, resp["feedback"])
	assert.Equal(t, "through", resp["word"])

	// The attempt is persisted against the caller
	var count int64
	require.NoError(t, a.DB.Model(model.Attempt{}).Where("user_id = ?", userID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// Empty word is rejected
	rec, _ = doJSON(t, a, http.MethodPost, "/api/practice/attempts", gin.H{}, []*http.Cookie{access})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProgressAggregates(t *testing.T) {
	a := newTestAPI(t)

	userID := registerAndVerify(t, a, registerOpts{Email: "alice@example.com", Password: "Passw0rd!"})
	access, _ := login(t, a, "alice@example.com", "Passw0rd!")

	// Empty history first
	rec, resp := doJSON(t, a, http.MethodGet, "/api/progress", nil, []*http.Cookie{access})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 0, resp["totalAttempts"])
	assert.Empty(t, resp["recent"])

	attempts := []model.Attempt{
		{UserID: userID, Word: "through", Accuracy: 70, Feedback: "ok"},
		{UserID: userID, Word: "schedule", Accuracy: 90, Feedback: "great"},
		{UserID: userID, Word: "comfortable", Accuracy: 80, Feedback: "good"},
		{UserID: "someone-else", Word: "through", Accuracy: 10, Feedback: "n/a"},
	}
	require.NoError(t, a.DB.Create(&attempts).Error)

	rec, resp = doJSON(t, a, http.MethodGet, "/api/progress", nil, []*http.Cookie{access})
	require.Equal(t, http.StatusOK, rec.Code)

	assert.EqualValues(t, 3, resp["totalAttempts"])
	assert.EqualValues(t, 80, resp["averageAccuracy"])
	assert.EqualValues(t, 90, resp["bestAccuracy"])
	assert.Len(t, resp["recent"].([]any), 3)
}

func TestUserMe(t *testing.T) {
	a := newTestAPI(t)

	registerAndVerify(t, a, registerOpts{Email: "alice@example.com", Password: "Passw0rd!"})
	access, _ := login(t, a, "alice@example.com", "Passw0rd!")

	rec, resp := doJSON(t, a, http.MethodGet, "/api/users/me", nil, []*http.Cookie{access})
	require.Equal(t, http.StatusOK, rec.Code)

	user := resp["user"].(map[string]any)
	assert.Equal(t, "alice@example.com", user["email"])
	assert.Equal(t, "Spanish", user["learningLanguage"])
	assert.NotContains(t, user, "passwordHash")
}

package api

import (
	"net/http"
	"testing"

	"speakwell/practice-api/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCatalog(t *testing.T, a *API) {
	t.Helper()

	if err := db.SeedLessons(a.DB, false); err != nil {
		t.Fatalf("failed to seed lessons: %v", err)
	}
}

func TestLessonList(t *testing.T) {
	a := newTestAPI(t)
	seedCatalog(t, a)

	rec, resp := doJSON(t, a, http.MethodGet, "/api/lessons", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	lessons := resp["lessons"].([]any)
	assert.Len(t, lessons, 6)

	first := lessons[0].(map[string]any)
	assert.Equal(t, "English Vowel Sounds", first["title"])
}

func TestLessonListFilters(t *testing.T) {
	a := newTestAPI(t)
	seedCatalog(t, a)

	rec, resp := doJSON(t, a, http.MethodGet, "/api/lessons?language=English", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, resp["lessons"].([]any), 2)

	rec, resp = doJSON(t, a, http.MethodGet, "/api/lessons?level=Beginner", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, resp["lessons"].([]any), 3)

	rec, resp = doJSON(t, a, http.MethodGet, "/api/lessons?language=English&level=Beginner", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, resp["lessons"].([]any), 1)
}

func TestLessonFetch(t *testing.T) {
	a := newTestAPI(t)
	seedCatalog(t, a)

	rec, resp := doJSON(t, a, http.MethodGet, "/api/lessons/2", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Spanish Rolling R", resp["title"])

	rec, _ = doJSON(t, a, http.MethodGet, "/api/lessons/999", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = doJSON(t, a, http.MethodGet, "/api/lessons/abc", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfa-project/specgen/internal/models"
	"github.com/pfa-project/specgen/tests/helpers"
)

func TestSpecificationIntegration(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-specification-integration-tests")

	testDB := helpers.NewTestDatabase(t)
	defer testDB.Close()
	defer testDB.CleanupTables(t)

	router, jwtManager := setupRouter(t, testDB)

	email := fmt.Sprintf("specs-%d@example.com", time.Now().UnixNano())
	userID := testDB.CreateTestUser(t, email, "motdepasse1")
	token, err := jwtManager.GenerateToken(context.Background(), userID, email, 24*time.Hour)
	require.NoError(t, err)

	authed := func(method, path string, body []byte) *httptest.ResponseRecorder {
		var req *http.Request
		if body != nil {
			req = httptest.NewRequest(method, path, bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
		} else {
			req = httptest.NewRequest(method, path, nil)
		}
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("Create Then List Round Trip", func(t *testing.T) {
		spec := helpers.CompleteSpecification()
		body, _ := json.Marshal(spec)

		w := authed(http.MethodPost, "/api/specifications", body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created models.Specification
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.NotEmpty(t, created.ID)

		// The stored copy matches what was sent, except for the assigned ID.
		spec.ID = created.ID
		assert.Equal(t, spec, created)

		w = authed(http.MethodGet, "/api/specifications", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var listed []models.Specification
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
		require.Len(t, listed, 1)
		assert.Equal(t, created, listed[0])
	})

	t.Run("Get Update Delete", func(t *testing.T) {
		spec := helpers.MinimalSpecification()
		body, _ := json.Marshal(spec)

		w := authed(http.MethodPost, "/api/specifications", body)
		require.Equal(t, http.StatusCreated, w.Code)

		var created models.Specification
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

		w = authed(http.MethodGet, "/api/specifications/"+created.ID, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var fetched models.Specification
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
		assert.Equal(t, created, fetched)

		// Update the project name and one section.
		fetched.ProjectName = "Projet renommé"
		fetched.Sections[0].Content = "Projet renommé"
		body, _ = json.Marshal(fetched)

		w = authed(http.MethodPut, "/api/specifications/"+created.ID, body)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated models.Specification
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		assert.Equal(t, "Projet renommé", updated.ProjectName)
		assert.Equal(t, created.ID, updated.ID)

		w = authed(http.MethodDelete, "/api/specifications/"+created.ID, nil)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = authed(http.MethodGet, "/api/specifications/"+created.ID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Specifications Are User Scoped", func(t *testing.T) {
		spec := helpers.MinimalSpecification()
		body, _ := json.Marshal(spec)

		w := authed(http.MethodPost, "/api/specifications", body)
		require.Equal(t, http.StatusCreated, w.Code)

		var created models.Specification
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

		// Another user cannot see or fetch the first user's document.
		otherEmail := fmt.Sprintf("other-%d@example.com", time.Now().UnixNano())
		otherID := testDB.CreateTestUser(t, otherEmail, "motdepasse1")
		otherToken, err := jwtManager.GenerateToken(context.Background(), otherID, otherEmail, 24*time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/specifications/"+created.ID, nil)
		req.Header.Set("Authorization", "Bearer "+otherToken)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Update Missing Specification", func(t *testing.T) {
		spec := helpers.MinimalSpecification()
		body, _ := json.Marshal(spec)

		w := authed(http.MethodPut, "/api/specifications/00000000-0000-0000-0000-000000000000", body)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

package history

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saulo-duarte/quizhub/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlerFixture() (*Handler, *fakeRepo) {
	repo := newFakeRepo()
	return NewHandler(NewService(repo)), repo
}

func doRequest(h http.HandlerFunc, method, target, body string, claims *auth.Claims) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if claims != nil {
		req = req.WithContext(auth.ContextWithClaims(req.Context(), claims))
	}
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestAddHandler_CreatedThenAlreadyExists(t *testing.T) {
	h, _ := newHandlerFixture()
	claims := &auth.Claims{UserID: 5, Role: auth.RoleUser}

	body := `{"quizId":5,"categoryId":1,"isCorrect":true,"answeredAt":"2024-01-01T00:00:00.500Z"}`

	rec := doRequest(h.Add, http.MethodPost, "/history", body, claims)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]uint64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotZero(t, created["id"])

	// The identical submission is a success-shaped duplicate, not an error.
	rec = doRequest(h.Add, http.MethodPost, "/history", body, claims)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"already exists"}`, rec.Body.String())
}

func TestAddHandler_MissingFields(t *testing.T) {
	h, _ := newHandlerFixture()
	claims := &auth.Claims{UserID: 5, Role: auth.RoleUser}

	rec := doRequest(h.Add, http.MethodPost, "/history", `{"quizId":5}`, claims)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "required")
}

func TestAddHandler_Unauthenticated(t *testing.T) {
	h, _ := newHandlerFixture()

	rec := doRequest(h.Add, http.MethodPost, "/history", `{}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSyncHandler_CountsAndEmptyBatch(t *testing.T) {
	h, _ := newHandlerFixture()
	claims := &auth.Claims{UserID: 5, Role: auth.RoleUser}

	rec := doRequest(h.Sync, http.MethodPost, "/history/sync", `{"answers":[]}`, claims)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"synced":0}`, rec.Body.String())

	body := `{"answers":[
		{"quizId":5,"categoryId":1,"isCorrect":true,"answeredAt":"2024-01-01T00:00:00Z"},
		{"quizId":6,"categoryId":1,"isCorrect":false,"answeredAt":"2024-01-01T00:00:01Z"}
	]}`
	rec = doRequest(h.Sync, http.MethodPost, "/history/sync", body, claims)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"synced":2}`, rec.Body.String())

	rec = doRequest(h.Sync, http.MethodPost, "/history/sync", body, claims)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"synced":0}`, rec.Body.String())
}

func TestListHandler_OwnerScoped(t *testing.T) {
	h, _ := newHandlerFixture()
	owner := &auth.Claims{UserID: 5, Role: auth.RoleUser}
	other := &auth.Claims{UserID: 6, Role: auth.RoleUser}

	body := `{"quizId":5,"categoryId":1,"isCorrect":true,"answeredAt":"2024-01-01T00:00:00Z"}`
	rec := doRequest(h.Add, http.MethodPost, "/history", body, owner)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(h.List, http.MethodGet, "/history", "", owner)
	require.Equal(t, http.StatusOK, rec.Code)
	var mine []AnswerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &mine))
	assert.Len(t, mine, 1)

	rec = doRequest(h.List, http.MethodGet, "/history", "", other)
	require.Equal(t, http.StatusOK, rec.Code)
	var theirs []AnswerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &theirs))
	assert.Empty(t, theirs)
}

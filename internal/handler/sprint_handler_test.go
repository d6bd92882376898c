package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"github.com/MBurgo/super-tool/internal/model"
)

type fakeSprintStore struct {
	sprints   []model.Sprint
	total     int
	sprint    *model.Sprint
	rounds    []model.SprintRound
	reactions []model.PersonaReaction
	clusters  []model.ClusterSummary
	saved     *model.Sprint
	err       error
}

func (f *fakeSprintStore) SaveSprint(sprint *model.Sprint) error {
	if f.err != nil {
		return f.err
	}
	sprint.ID = 42
	f.saved = sprint
	return nil
}

func (f *fakeSprintStore) GetByID(id int64) (*model.Sprint, error) {
	return f.sprint, f.err
}

func (f *fakeSprintStore) GetSprints(limit, offset int) ([]model.Sprint, error) {
	return f.sprints, f.err
}

func (f *fakeSprintStore) GetSprintTotal() (int, error) {
	return f.total, f.err
}

func (f *fakeSprintStore) GetRounds(sprintID int64) ([]model.SprintRound, error) {
	return f.rounds, f.err
}

func (f *fakeSprintStore) GetReactions(roundID int64) ([]model.PersonaReaction, error) {
	return f.reactions, f.err
}

func (f *fakeSprintStore) GetClusterSummaries(roundID int64) ([]model.ClusterSummary, error) {
	return f.clusters, f.err
}

type fakeQueue struct {
	enqueued []int64
	err      error
}

func (f *fakeQueue) Enqueue(sprintID int64) error {
	if f.err != nil {
		return f.err
	}
	f.enqueued = append(f.enqueued, sprintID)
	return nil
}

func newSprintRouter(store SprintStore, queue Enqueuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSprintHandler(store, queue)
	r.POST("/sprints", h.CreateSprint)
	r.GET("/sprints", h.GetSprints)
	r.GET("/sprints/:id", h.GetSprint)
	return r
}

func TestCreateSprint_EnqueuesWithDefaults(t *testing.T) {
	store := &fakeSprintStore{}
	queue := &fakeQueue{}
	r := newSprintRouter(store, queue)

	body := `{"creative": "Three ASX shares to watch", "segment": "Young Accumulators"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/sprints", strings.NewReader(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, []int64{42}, queue.enqueued)
	assert.Equal(t, 7.0, store.saved.Threshold)
	assert.Equal(t, 3, store.saved.MaxRounds)

	var res SprintResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, int64(42), res.ID)
	assert.Equal(t, "pending", res.Status)
}

func TestCreateSprint_MissingCreative(t *testing.T) {
	r := newSprintRouter(&fakeSprintStore{}, &fakeQueue{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/sprints", strings.NewReader(`{"segment": "All Segments"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateSprint_ThresholdOutOfRange(t *testing.T) {
	r := newSprintRouter(&fakeSprintStore{}, &fakeQueue{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/sprints", strings.NewReader(`{"creative": "x", "threshold": 12}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateSprint_QueueError(t *testing.T) {
	r := newSprintRouter(&fakeSprintStore{}, &fakeQueue{err: errors.New("redis down")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/sprints", strings.NewReader(`{"creative": "x"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetSprints_ReturnsList(t *testing.T) {
	store := &fakeSprintStore{
		sprints: []model.Sprint{{ID: 1, Creative: "Variant A", Status: model.StatusCompleted, Passed: true}},
		total:   1,
	}
	r := newSprintRouter(store, &fakeQueue{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/sprints?limit=10&offset=0", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res SprintListResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, 1, len(res.Sprints))
	assert.Equal(t, "Variant A", res.Sprints[0].Creative)
	assert.Equal(t, true, res.Sprints[0].Passed)
}

func TestGetSprints_DBError(t *testing.T) {
	r := newSprintRouter(&fakeSprintStore{err: errors.New("DB down")}, &fakeQueue{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/sprints", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetSprint_FoundWithRounds(t *testing.T) {
	store := &fakeSprintStore{
		sprint: &model.Sprint{ID: 1, Creative: "Variant A", Status: model.StatusCompleted, MeanIntent: 7.5},
		rounds: []model.SprintRound{{ID: 10, SprintID: 1, Round: 1, Creative: "Variant A", MeanIntent: 7.5}},
		reactions: []model.PersonaReaction{
			{RoundID: 10, Persona: "Liam Chen", Feedback: "Strong hook.", Intent: 8},
		},
		clusters: []model.ClusterSummary{
			{RoundID: 10, Label: 0, Size: 1, MeanIntent: 8, Summary: "Liked the urgency."},
		},
	}
	r := newSprintRouter(store, &fakeQueue{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/sprints/1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res SprintDetailResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1, len(res.Rounds))
	assert.Equal(t, "Liam Chen", res.Rounds[0].Reactions[0].Persona)
	assert.Equal(t, "Liked the urgency.", res.Rounds[0].Clusters[0].Summary)
}

func TestGetSprint_NotFound(t *testing.T) {
	r := newSprintRouter(&fakeSprintStore{}, &fakeQueue{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/sprints/999", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSprint_InvalidID(t *testing.T) {
	r := newSprintRouter(&fakeSprintStore{}, &fakeQueue{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/sprints/aaa", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

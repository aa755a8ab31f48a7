package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusflow/campus-assistant-go/internal/auth"
	"github.com/campusflow/campus-assistant-go/internal/bot"
	"github.com/campusflow/campus-assistant-go/internal/config"
	"github.com/campusflow/campus-assistant-go/internal/emotion"
	"github.com/campusflow/campus-assistant-go/internal/knowledge"
	"github.com/campusflow/campus-assistant-go/internal/logger"
	"github.com/campusflow/campus-assistant-go/internal/metrics"
	"github.com/campusflow/campus-assistant-go/internal/modules/greeting"
	"github.com/campusflow/campus-assistant-go/internal/modules/info"
	"github.com/campusflow/campus-assistant-go/internal/modules/notes"
	"github.com/campusflow/campus-assistant-go/internal/modules/pyq"
	"github.com/campusflow/campus-assistant-go/internal/modules/wellbeing"
	"github.com/campusflow/campus-assistant-go/internal/reply"
	"github.com/campusflow/campus-assistant-go/internal/retrieval"
	"github.com/campusflow/campus-assistant-go/internal/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	router  *gin.Engine
	handler *Handler
	store   *storage.Store
	index   *knowledge.Index
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	store, err := storage.New(t.TempDir())
	require.NoError(t, err)

	log := logger.New("error")
	m := metrics.New(prometheus.NewRegistry())
	engine := retrieval.NewEngine(store, config.PipelineConfig{
		InfoMatchPolicy: config.InfoPolicyExact,
		MaxResults:      10,
	}, log)
	idx := knowledge.NewIndex(log)
	synth := reply.NewSynthesizer(nil, nil)
	detector := emotion.NewDetector()

	registry := bot.NewRegistry()
	registry.Register(wellbeing.NewHandler(detector, synth, 0.3, log, m))
	registry.Register(greeting.NewHandler(synth))
	registry.Register(notes.NewHandler(engine, log, m))
	registry.Register(pyq.NewHandler(engine, log, m))
	registry.Register(info.NewHandler(engine, idx, store, log, m))

	processor := bot.NewProcessor(bot.ProcessorConfig{
		Registry:        registry,
		Engine:          engine,
		Knowledge:       idx,
		Store:           store,
		Synthesizer:     synth,
		Logger:          log,
		Metrics:         m,
		ChatTimeout:     5 * time.Second,
		MaxHistoryTurns: 20,
	})

	authSvc := auth.New(store, "test_salt")
	require.NoError(t, authSvc.EnsureDefaults(t.Context()))

	handler := NewHandler(HandlerConfig{
		Processor: processor,
		Auth:      authSvc,
		Store:     store,
		Knowledge: idx,
		Logger:    log,
		Metrics:   m,
	})

	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), SecurityHeaders())
	handler.Routes(router, prometheus.NewRegistry())

	return &testServer{router: router, handler: handler, store: store, index: idx}
}

func (ts *testServer) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// chatSession logs into the chat widget and returns the session token.
func (ts *testServer) chatSession(t *testing.T) string {
	t.Helper()
	w := ts.do(t, http.MethodPost, "/api/chatbot/login", gin.H{"password": auth.DefaultPassword}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	token, _ := decodeBody(t, w)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// adminSession logs into the admin surface and returns the token.
func (ts *testServer) adminSession(t *testing.T) string {
	t.Helper()
	w := ts.do(t, http.MethodPost, "/api/admin/login", gin.H{"password": auth.DefaultPassword}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	token, _ := decodeBody(t, w)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestHealthz(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/healthz", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeBody(t, w)["status"])
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestChatRequiresSession(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/api/chat", gin.H{"message": "hello"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "session_expired", decodeBody(t, w)["error"])
}

func TestChatLoginRejectsWrongPassword(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/api/chatbot/login", gin.H{"password": "wrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestChatGreetingFlow(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	token := ts.chatSession(t)

	w := ts.do(t, http.MethodPost, "/api/chat", gin.H{"message": "hello"},
		map[string]string{HeaderSessionToken: token})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.NotEmpty(t, body["session_id"])

	rep, ok := body["reply"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, bot.IntentHelpGreeting, rep["intent"])
	assert.NotEmpty(t, rep["message"])
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	token := ts.chatSession(t)

	w := ts.do(t, http.MethodPost, "/api/chat", gin.H{"message": "   "},
		map[string]string{HeaderSessionToken: token})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFeedbackRecorded(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	token := ts.chatSession(t)

	w := ts.do(t, http.MethodPost, "/api/feedback", gin.H{"text": "very helpful bot"},
		map[string]string{HeaderSessionToken: token})
	require.Equal(t, http.StatusCreated, w.Code)

	entries, err := ts.store.Feedback(t.Context())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "very helpful bot", entries[0].Text)
}

func TestChatsLifecycle(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	token := ts.chatSession(t)
	headers := map[string]string{HeaderSessionToken: token}

	w := ts.do(t, http.MethodPost, "/api/chats", gin.H{
		"name": "Exam prep",
		"messages": []gin.H{
			{"role": "user", "content": "hello"},
			{"role": "assistant", "content": "Hi there!"},
		},
	}, headers)
	require.Equal(t, http.StatusOK, w.Code)
	id, _ := decodeBody(t, w)["id"].(string)
	require.NotEmpty(t, id)

	w = ts.do(t, http.MethodGet, "/api/chats", nil, headers)
	require.Equal(t, http.StatusOK, w.Code)
	chats, ok := decodeBody(t, w)["chats"].([]any)
	require.True(t, ok)
	assert.Len(t, chats, 1)

	w = ts.do(t, http.MethodPut, "/api/chats/"+id, gin.H{"name": "Midterm prep"}, headers)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodGet, "/api/chats/"+id, nil, headers)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Midterm prep", decodeBody(t, w)["name"])

	w = ts.do(t, http.MethodDelete, "/api/chats/"+id, nil, headers)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodGet, "/api/chats/"+id, nil, headers)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminRequiresToken(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/api/admin/subjects", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminLoginRejectsWrongPassword(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/api/admin/login", gin.H{"password": "nope"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminSubjectCRUD(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	headers := map[string]string{HeaderAdminToken: ts.adminSession(t)}

	w := ts.do(t, http.MethodPost, "/api/admin/subjects",
		gin.H{"name": "DBMS", "keywords": []string{"dbms", "database"}}, headers)
	require.Equal(t, http.StatusCreated, w.Code)

	w = ts.do(t, http.MethodPost, "/api/admin/subjects/DBMS/units",
		gin.H{"name": "Unit 1", "filename": "dbms-u1.pdf", "keywords": []string{"sql"}}, headers)
	require.Equal(t, http.StatusCreated, w.Code)

	w = ts.do(t, http.MethodGet, "/api/admin/subjects", nil, headers)
	require.Equal(t, http.StatusOK, w.Code)
	subjects, ok := decodeBody(t, w)["subjects"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, subjects, "DBMS")

	w = ts.do(t, http.MethodDelete, "/api/admin/subjects/DBMS/units/Unit%201", nil, headers)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodDelete, "/api/admin/subjects/DBMS", nil, headers)
	require.Equal(t, http.StatusOK, w.Code)

	subjects2, err := ts.store.Subjects(t.Context())
	require.NoError(t, err)
	assert.Empty(t, subjects2)
}

func TestAdminKnowledgeReindexes(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	headers := map[string]string{HeaderAdminToken: ts.adminSession(t)}

	w := ts.do(t, http.MethodPost, "/api/admin/knowledge",
		gin.H{"question": "What are the library timings?", "answer": "9am to 8pm on weekdays."}, headers)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, ts.index.Len())

	w = ts.do(t, http.MethodDelete, "/api/admin/knowledge/1", nil, headers)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, ts.index.Len())
}

func TestAdminStats(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	headers := map[string]string{HeaderAdminToken: ts.adminSession(t)}

	require.NoError(t, ts.store.AddSubject(t.Context(), "Physics", []string{"physics"}))
	_, err := ts.store.AddPastPaper(t.Context(), "Physics 2023", "Midterm", "p23.pdf", nil)
	require.NoError(t, err)

	w := ts.do(t, http.MethodGet, "/api/admin/stats", nil, headers)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["subjects"])
	assert.Equal(t, float64(1), body["papers"])
	assert.Equal(t, float64(0), body["knowledge"])
}

func TestAdminChangeChatPasswordExpiresSessions(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	chatToken := ts.chatSession(t)
	headers := map[string]string{HeaderAdminToken: ts.adminSession(t)}

	// Tokens are timestamps at whole-microsecond resolution, so the
	// password change must land strictly after the login token.
	time.Sleep(2 * time.Millisecond)

	w := ts.do(t, http.MethodPost, "/api/admin/chatbot-password",
		gin.H{"admin_password": auth.DefaultPassword, "new_password": "nextpass"}, headers)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodPost, "/api/chat", gin.H{"message": "hello"},
		map[string]string{HeaderSessionToken: chatToken})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = ts.do(t, http.MethodPost, "/api/chatbot/login", gin.H{"password": "nextpass"}, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminLogoutRevokesToken(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	token := ts.adminSession(t)
	headers := map[string]string{HeaderAdminToken: token}

	w := ts.do(t, http.MethodPost, "/api/admin/logout", nil, headers)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodGet, "/api/admin/subjects", nil, headers)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

package http

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"knowgent/internal/service"
	"knowgent/internal/service/mocks"
)

func init() {
	// Disable logging during tests
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

type routerMocks struct {
	notebooks *mocks.MockNotebookService
	notes     *mocks.MockNoteService
	tags      *mocks.MockTagService
	noteTags  *mocks.MockNoteTagService
	checker   *mocks.MockConsistencyChecker
}

func newTestRouter(t *testing.T) (http.Handler, routerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := routerMocks{
		notebooks: mocks.NewMockNotebookService(ctrl),
		notes:     mocks.NewMockNoteService(ctrl),
		tags:      mocks.NewMockTagService(ctrl),
		noteTags:  mocks.NewMockNoteTagService(ctrl),
		checker:   mocks.NewMockConsistencyChecker(ctrl),
	}
	router := NewRouter(&Deps{
		Notebooks:   m.notebooks,
		Notes:       m.notes,
		Tags:        m.tags,
		NoteTags:    m.noteTags,
		Consistency: m.checker,
		DB:          okPinger{},
		BasePath:    t.TempDir(),
	})
	return router, m
}

func TestNewRouter(t *testing.T) {
	router, _ := newTestRouter(t)
	if router == nil {
		t.Fatal("NewRouter() returned nil")
	}
}

func TestRouter_Routes(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		mockSetup  func(routerMocks)
		wantStatus int
	}{
		{
			name:       "health",
			method:     http.MethodGet,
			path:       "/api/health",
			mockSetup:  func(routerMocks) {},
			wantStatus: http.StatusOK,
		},
		{
			name:   "list notebooks",
			method: http.MethodGet,
			path:   "/api/notebooks",
			mockSetup: func(m routerMocks) {
				m.notebooks.EXPECT().List(gomock.Any()).Return(nil, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "create notebook needs a body",
			method:     http.MethodPost,
			path:       "/api/notebooks",
			mockSetup:  func(routerMocks) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "rename notebook",
			method: http.MethodPatch,
			path:   "/api/notebooks/Research",
			body:   `{"name":"Thesis"}`,
			mockSetup: func(m routerMocks) {
				m.notebooks.EXPECT().Update(gomock.Any(), "Research", gomock.Any()).Return(service.Notebook{Name: "Thesis"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "note content",
			method: http.MethodGet,
			path:   "/api/notebooks/Research/notes/Intro/content",
			mockSetup: func(m routerMocks) {
				m.notes.EXPECT().Content(gomock.Any(), "Intro", "Research").Return("hi", nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "untag note",
			method: http.MethodDelete,
			path:   "/api/notebooks/Research/notes/Intro/tags/draft",
			mockSetup: func(m routerMocks) {
				m.noteTags.EXPECT().RemoveTagFromNote(gomock.Any(), "Intro", "Research", "draft").Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "notes for tag",
			method: http.MethodGet,
			path:   "/api/tags/draft/notes",
			mockSetup: func(m routerMocks) {
				m.noteTags.EXPECT().NotesForTag(gomock.Any(), "draft").Return(nil, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "tree",
			method: http.MethodGet,
			path:   "/api/tree",
			mockSetup: func(m routerMocks) {
				m.notebooks.EXPECT().Tree(gomock.Any()).Return(nil, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "consistency",
			method: http.MethodGet,
			path:   "/api/consistency",
			mockSetup: func(m routerMocks) {
				m.checker.EXPECT().Check(gomock.Any()).Return(service.ConsistencyReport{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "method not allowed",
			method:     http.MethodPut,
			path:       "/api/tags",
			mockSetup:  func(routerMocks) {},
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			path:       "/api/nope",
			mockSetup:  func(routerMocks) {},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			tt.mockSetup(m)

			req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Router %s %s status = %v, want %v", tt.method, tt.path, w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("Router should apply CORS middleware")
	}
	if w.Header().Get("X-Request-Id") == "" {
		t.Error("Router should apply LoggerMiddleware")
	}
}

func TestRouter_RecoversPanics(t *testing.T) {
	router, m := newTestRouter(t)
	m.tags.EXPECT().List(gomock.Any()).DoAndReturn(func(context.Context) ([]string, error) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/tags", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("panic status = %v, want 500", w.Code)
	}
}

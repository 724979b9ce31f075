package tests

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/n-smith-public/cs4241e25-final-project/internal/adapter/http/middleware"
	"github.com/n-smith-public/cs4241e25-final-project/internal/core/domain"
	"github.com/n-smith-public/cs4241e25-final-project/pkg/translator"
)

const (
	aliceToken = "alice-token"
	aliceEmail = "alice@example.com"
)

var aliceSession = domain.Session{
	ID:          "sid-alice",
	Email:       aliceEmail,
	DisplayName: "Alice",
	IssuedAt:    time.Now().Add(-time.Minute),
	ExpiresAt:   time.Now().Add(59 * time.Minute),
}

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) IssueChallenge(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *authServiceMock) VerifyChallenge(ctx context.Context, code, email string) (domain.Session, string, error) {
	args := m.Called(ctx, code, email)
	return args.Get(0).(domain.Session), args.String(1), args.Error(2)
}

func (m *authServiceMock) Authenticate(ctx context.Context, token string) (domain.Session, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *authServiceMock) Terminate(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

// newSignedInAuth accepts aliceToken and rejects everything else.
func newSignedInAuth() *authServiceMock {
	auth := new(authServiceMock)
	auth.On("Authenticate", mock.Anything, aliceToken).Return(aliceSession, nil).Maybe()
	auth.On("Authenticate", mock.Anything, mock.Anything).Return(domain.Session{}, domain.ErrUnauthorized).Maybe()
	return auth
}

type userServiceMock struct {
	mock.Mock
}

func (m *userServiceMock) Register(ctx context.Context, displayName, email string) error {
	return m.Called(ctx, displayName, email).Error(0)
}

func (m *userServiceMock) UpdateDisplayName(ctx context.Context, session domain.Session, displayName string) (domain.Session, error) {
	args := m.Called(ctx, session, displayName)
	return args.Get(0).(domain.Session), args.Error(1)
}

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) CreateTask(ctx context.Context, owner string, fields domain.TaskFields) (domain.Task, error) {
	args := m.Called(ctx, owner, fields)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) ListTasks(ctx context.Context, owner string, order domain.TaskOrder) ([]domain.Task, error) {
	args := m.Called(ctx, owner, order)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) EditTask(ctx context.Context, owner, id string, fields domain.TaskFields) error {
	return m.Called(ctx, owner, id, fields).Error(0)
}

func (m *taskServiceMock) SetCompletion(ctx context.Context, owner, id string, intent domain.CompletionIntent) error {
	return m.Called(ctx, owner, id, intent).Error(0)
}

type binServiceMock struct {
	mock.Mock
}

func (m *binServiceMock) SoftDelete(ctx context.Context, owner string, ids []string) (int, error) {
	args := m.Called(ctx, owner, ids)
	return args.Int(0), args.Error(1)
}

func (m *binServiceMock) ListBin(ctx context.Context, owner string) ([]domain.BinEntry, error) {
	args := m.Called(ctx, owner)

	var entries []domain.BinEntry
	if value := args.Get(0); value != nil {
		entries = value.([]domain.BinEntry)
	}
	return entries, args.Error(1)
}

func (m *binServiceMock) Restore(ctx context.Context, owner string, ids []string) (int, error) {
	args := m.Called(ctx, owner, ids)
	return args.Int(0), args.Error(1)
}

func (m *binServiceMock) Purge(ctx context.Context, owner string, ids []string) (int64, error) {
	args := m.Called(ctx, owner, ids)
	return args.Get(0).(int64), args.Error(1)
}

type importServiceMock struct {
	mock.Mock
}

func (m *importServiceMock) PreviewCalendar(ctx context.Context, r io.Reader) ([]domain.CalendarEvent, error) {
	args := m.Called(ctx, r)

	var events []domain.CalendarEvent
	if value := args.Get(0); value != nil {
		events = value.([]domain.CalendarEvent)
	}
	return events, args.Error(1)
}

func (m *importServiceMock) ImportTasks(ctx context.Context, owner string, items []domain.TaskFields) domain.ImportReport {
	return m.Called(ctx, owner, items).Get(0).(domain.ImportReport)
}

func newRouter(auth *authServiceMock) *gin.Engine {
	router := gin.New()
	router.Use(middleware.LanguageMiddleware(), middleware.SessionMiddleware(auth))
	return router
}

func newRequest(method, target, body string, signedIn bool) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if signedIn {
		req.AddCookie(&http.Cookie{Name: middleware.CookieAuth, Value: aliceToken})
		req.AddCookie(&http.Cookie{Name: middleware.CookieEmail, Value: aliceEmail})
	}
	return req
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

package api

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite" // Pure-Go SQLite driver for GORM, test only
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"kassa/internal/domain"
	"kassa/internal/middleware"
	"kassa/internal/report"
	"kassa/internal/store"
	"kassa/web"
)

// fakeSessions is an in-memory session authority implementing both the
// handler-facing and middleware-facing interfaces.
type fakeSessions struct {
	tokens map[string]uint
	next   int
}

func (f *fakeSessions) Issue(_ context.Context, userID uint) (string, error) {
	f.next++
	token := fmt.Sprintf("token-%d", f.next)
	f.tokens[token] = userID
	return token, nil
}

func (f *fakeSessions) Resolve(_ context.Context, token string) (uint, error) {
	userID, ok := f.tokens[token]
	if !ok {
		return 0, domain.ErrNotAuthenticated
	}
	return userID, nil
}

func (f *fakeSessions) Revoke(_ context.Context, token string) error {
	delete(f.tokens, token)
	return nil
}

func (f *fakeSessions) TTL() time.Duration { return time.Hour }

// testApp wires the full route table against an in-memory database.
type testApp struct {
	router       *gin.Engine
	db           *gorm.DB
	users        *store.UserStore
	transactions *store.TransactionStore
	sessions     *fakeSessions
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // Keep the pool on the single memory DB
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Transaction{}))

	app := &testApp{
		db:           db,
		users:        store.NewUserStore(db),
		transactions: store.NewTransactionStore(db),
		sessions:     &fakeSessions{tokens: map[string]uint{}},
	}

	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.ParseFS(web.TemplatesFS, "templates/*.html")))
	r.GET("/register", RegisterPageHandler())
	r.POST("/register", RegisterHandler(app.users))
	r.GET("/login", LoginPageHandler())
	r.POST("/login", LoginHandler(app.users, app.sessions))
	authed := r.Group("/")
	authed.Use(middleware.RequireSession(app.sessions))
	authed.GET("", DashboardHandler(app.transactions))
	authed.GET("/logout", LogoutHandler(app.sessions))
	authed.POST("/add_transaction", AddTransactionHandler(app.transactions))
	authed.GET("/report", ReportHandler(app.transactions, report.NewRenderer()))
	app.router = r
	return app
}

// postForm submits a urlencoded form, optionally with a session cookie.
func (a *testApp) postForm(path string, form url.Values, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: token})
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) get(path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: token})
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// login registers a user and opens a session for it.
func (a *testApp) login(t *testing.T, username string) (uint, string) {
	t.Helper()
	userID, err := a.users.Register(context.Background(), username, "password-1")
	require.NoError(t, err)
	token, err := a.sessions.Issue(context.Background(), userID)
	require.NoError(t, err)
	return userID, token
}

func (a *testApp) countTransactions(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, a.db.Model(&domain.Transaction{}).Count(&n).Error)
	return n
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"babylog/pkg/utils"

	"github.com/gin-gonic/gin"
)

func newProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SessionMiddleware())
	r.GET("/dashboard", RequireSession(), func(c *gin.Context) {
		userID, _ := UserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	r.POST("/babies", RequireSession(), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return r
}

func TestRequireSessionRedirectsPageRequests(t *testing.T) {
	r := newProtectedRouter()

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusFound)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Errorf("redirect location = %q, want /", loc)
	}
}

func TestRequireSessionRejectsNonGetWithoutRedirect(t *testing.T) {
	r := newProtectedRouter()

	req := httptest.NewRequest(http.MethodPost, "/babies", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestSessionMiddlewareAcceptsValidCookie(t *testing.T) {
	utils.SetSessionSecret([]byte("middleware-test-secret"))
	token, err := utils.CreateSessionToken(7)
	if err != nil {
		t.Fatalf("CreateSessionToken() error = %v", err)
	}

	r := newProtectedRouter()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestSessionMiddlewareIgnoresTamperedCookie(t *testing.T) {
	utils.SetSessionSecret([]byte("middleware-test-secret"))

	r := newProtectedRouter()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: "tampered.token.value"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Errorf("status = %d, want redirect to login", w.Code)
	}
}

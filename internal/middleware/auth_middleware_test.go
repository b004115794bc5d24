package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/pkg/auth"
)

func testRouter(jwtService *auth.JWTService, roles ...models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handlers := []gin.HandlerFunc{Authenticate(jwtService)}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRole(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		p, _ := GetPrincipal(c)
		c.JSON(http.StatusOK, gin.H{"userId": p.ID, "role": p.Role})
	})

	r.GET("/protected", handlers...)
	return r
}

func request(r *gin.Engine, header string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate(t *testing.T) {
	svc := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", TokenExpiry: time.Hour})
	r := testRouter(svc)

	token, err := svc.GenerateToken(&models.User{ID: 9, Role: models.RoleTeacher, Name: "T", Email: "t@x.edu"})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if w := request(r, "Bearer "+token); w.Code != http.StatusOK {
		t.Errorf("valid token: status = %d, want 200", w.Code)
	}
	if w := request(r, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("missing header: status = %d, want 401", w.Code)
	}
	if w := request(r, token); w.Code != http.StatusUnauthorized {
		t.Errorf("missing Bearer prefix: status = %d, want 401", w.Code)
	}
	if w := request(r, "Bearer garbage"); w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: status = %d, want 401", w.Code)
	}
}

func TestAuthenticateExpired(t *testing.T) {
	expiredIssuer := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", TokenExpiry: -time.Minute})
	verifier := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", TokenExpiry: time.Hour})

	token, err := expiredIssuer.GenerateToken(&models.User{ID: 9, Role: models.RoleStudent, Email: "s@x.edu"})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if w := request(testRouter(verifier), "Bearer "+token); w.Code != http.StatusUnauthorized {
		t.Errorf("expired token: status = %d, want 401", w.Code)
	}
}

func TestRequireRole(t *testing.T) {
	svc := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", TokenExpiry: time.Hour})
	adminOnly := testRouter(svc, models.RoleAdmin)

	studentToken, err := svc.GenerateToken(&models.User{ID: 1, Role: models.RoleStudent, Email: "s@x.edu"})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	adminToken, err := svc.GenerateToken(&models.User{ID: 2, Role: models.RoleAdmin, Email: "a@x.edu"})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if w := request(adminOnly, "Bearer "+studentToken); w.Code != http.StatusForbidden {
		t.Errorf("student on admin route: status = %d, want 403", w.Code)
	}
	if w := request(adminOnly, "Bearer "+adminToken); w.Code != http.StatusOK {
		t.Errorf("admin on admin route: status = %d, want 200", w.Code)
	}

	multi := testRouter(svc, models.RoleTeacher, models.RoleAdmin)
	if w := request(multi, "Bearer "+adminToken); w.Code != http.StatusOK {
		t.Errorf("admin on teacher|admin route: status = %d, want 200", w.Code)
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/filedrive/pkg/configs"
	"github.com/yeisme/filedrive/pkg/internal/types"
)

func resolveScope(t *testing.T, conf configs.AuthConfig, target string, headers map[string]string) (types.Scope, bool) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	var (
		scope types.Scope
		ok    bool
	)

	e := gin.New()
	e.Use(ScopeMiddleware(conf))
	e.GET("/probe", func(c *gin.Context) {
		scope, ok = GetScope(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	e.ServeHTTP(httptest.NewRecorder(), req)

	return scope, ok
}

func TestScopeFromHeaders(t *testing.T) {
	cases := []struct {
		name    string
		headers map[string]string
		want    types.Scope
		wantOK  bool
	}{
		{
			name:    "personal scope defaults to user",
			headers: map[string]string{"X-Auth-Request-Email": "alice@example.com"},
			want:    types.Scope{ID: "alice@example.com", UserID: "alice@example.com", Role: types.RoleMember},
			wantOK:  true,
		},
		{
			name:    "org header switches scope",
			headers: map[string]string{"X-Auth-Request-Email": "alice@example.com", "X-Org-ID": "org1"},
			want:    types.Scope{ID: "org1", UserID: "alice@example.com", Role: types.RoleMember},
			wantOK:  true,
		},
		{
			name:    "forwarded email fallback",
			headers: map[string]string{"X-Forwarded-Email": "bob@example.com"},
			want:    types.Scope{ID: "bob@example.com", UserID: "bob@example.com", Role: types.RoleMember},
			wantOK:  true,
		},
		{
			name:    "admin role recognized case-insensitively",
			headers: map[string]string{"X-Auth-Request-Email": "boss@example.com", "X-Role": "Admin"},
			want:    types.Scope{ID: "boss@example.com", UserID: "boss@example.com", Role: types.RoleAdmin},
			wantOK:  true,
		},
		{
			name:    "unknown role downgrades to member",
			headers: map[string]string{"X-Auth-Request-Email": "x@example.com", "X-Role": "superuser"},
			want:    types.Scope{ID: "x@example.com", UserID: "x@example.com", Role: types.RoleMember},
			wantOK:  true,
		},
		{
			name:    "no identity",
			headers: nil,
			wantOK:  false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			scope, ok := resolveScope(t, configs.AuthConfig{}, "/probe", tc.headers)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}

			if ok && scope != tc.want {
				t.Errorf("scope = %+v, want %+v", scope, tc.want)
			}
		})
	}
}

func TestScopeDevQueryFallback(t *testing.T) {
	conf := configs.AuthConfig{DevAllowQuery: true}

	scope, ok := resolveScope(t, conf, "/probe?user=dev@example.com", nil)
	if !ok {
		t.Fatal("expected scope from query fallback")
	}

	if scope.UserID != "dev@example.com" || scope.ID != "dev@example.com" {
		t.Errorf("scope = %+v", scope)
	}

	// 默认配置下 query 兜底关闭
	if _, ok := resolveScope(t, configs.AuthConfig{}, "/probe?user=dev@example.com", nil); ok {
		t.Error("query fallback should be disabled by default")
	}
}

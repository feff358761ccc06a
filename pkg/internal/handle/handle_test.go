package handle_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yeisme/filedrive/pkg/configs"
	"github.com/yeisme/filedrive/pkg/internal/model"
	"github.com/yeisme/filedrive/pkg/internal/router"
	"github.com/yeisme/filedrive/pkg/internal/storage"
	dbc "github.com/yeisme/filedrive/pkg/internal/storage/db"
	"github.com/yeisme/filedrive/pkg/internal/types"
	"github.com/yeisme/filedrive/pkg/middleware"
)

var testDBSeq int

func sonicUnmarshal(b []byte, v any) error { return sonic.Unmarshal(b, v) }

// newTestEngine 组装一个带内存数据库的最小引擎：scope 解析 + 存储注入 + 业务路由.
func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	testDBSeq++
	dsn := fmt.Sprintf("file:handle_test_%d?mode=memory&cache=shared", testDBSeq)

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := gdb.AutoMigrate(&model.File{}, &model.Favorite{}, &model.UserProfile{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	mgr := storage.NewManager(&dbc.Client{DB: gdb}, nil, nil, nil)

	e := gin.New()
	e.Use(
		middleware.ScopeMiddleware(configs.AuthConfig{}),
		middleware.StorageMiddleware(mgr),
	)
	router.RegisterAPIRoutes(e.Group("/api/v1"))

	return e
}

func doJSON(t *testing.T, e *gin.Engine, method, path, body string, hdr map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	for k, v := range hdr {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	return w
}

func asMember(user, org string) map[string]string {
	return map[string]string{"X-Auth-Request-Email": user, "X-Org-ID": org}
}

func asAdmin(user, org string) map[string]string {
	h := asMember(user, org)
	h["X-Role"] = "admin"

	return h
}

func createFile(t *testing.T, e *gin.Engine, hdr map[string]string, name string) string {
	t.Helper()

	body := fmt.Sprintf(`{"name":%q,"type":"image","storage_ref":"refs/%s"}`, name, name)

	w := doJSON(t, e, http.MethodPost, "/api/v1/files", body, hdr)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp types.CreateFileResponse
	if err := sonicUnmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode create response: %v", err)
	}

	if resp.File.ID == "" {
		t.Fatal("create response has empty id")
	}

	return resp.File.ID
}

func TestCreateRequiresIdentity(t *testing.T) {
	e := newTestEngine(t)

	w := doJSON(t, e, http.MethodPost, "/api/v1/files", `{"name":"a.png","type":"image","storage_ref":"r"}`, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestCreateRejectsBadBody(t *testing.T) {
	e := newTestEngine(t)
	hdr := asMember("alice@example.com", "org1")

	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"type":"image","storage_ref":"r"}`},
		{"bad type", `{"name":"a.bin","type":"binary","storage_ref":"r"}`},
		{"not json", `{{{`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, e, http.MethodPost, "/api/v1/files", tc.body, hdr)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400, body = %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestListScopedBySearchQuery(t *testing.T) {
	e := newTestEngine(t)
	alice := asMember("alice@example.com", "org1")

	createFile(t, e, alice, "Cat.png")
	createFile(t, e, alice, "dog.png")

	w := doJSON(t, e, http.MethodGet, "/api/v1/files?q=cAt", "", alice)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp types.ListFilesResponse
	if err := sonicUnmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode list: %v", err)
	}

	if resp.Total != 1 || resp.Files[0].Name != "Cat.png" {
		t.Errorf("list = %+v, want only Cat.png", resp)
	}
}

func TestForeignScopeGets404(t *testing.T) {
	e := newTestEngine(t)
	alice := asMember("alice@example.com", "org1")
	eve := asMember("eve@example.com", "org2")

	id := createFile(t, e, alice, "secret.pdf")

	w := doJSON(t, e, http.MethodDelete, "/api/v1/files/"+id, "", eve)
	if w.Code != http.StatusNotFound {
		t.Errorf("foreign delete status = %d, want 404", w.Code)
	}

	w = doJSON(t, e, http.MethodPost, "/api/v1/files/"+id+"/favorite", "", eve)
	if w.Code != http.StatusNotFound {
		t.Errorf("foreign favorite status = %d, want 404", w.Code)
	}
}

func TestTrashLifecycleOverHTTP(t *testing.T) {
	e := newTestEngine(t)
	member := asMember("alice@example.com", "org1")
	admin := asAdmin("boss@example.com", "org1")

	id := createFile(t, e, member, "doomed.csv")

	// 软删除：任意成员可用
	if w := doJSON(t, e, http.MethodDelete, "/api/v1/files/"+id, "", member); w.Code != http.StatusOK {
		t.Fatalf("soft delete status = %d", w.Code)
	}

	// 恢复：成员被拒，管理员成功
	if w := doJSON(t, e, http.MethodPost, "/api/v1/trash/"+id+"/restore", "", member); w.Code != http.StatusForbidden {
		t.Errorf("member restore status = %d, want 403", w.Code)
	}

	if w := doJSON(t, e, http.MethodPost, "/api/v1/trash/"+id+"/restore", "", admin); w.Code != http.StatusOK {
		t.Errorf("admin restore status = %d, want 200", w.Code)
	}

	// 活跃文件不能永久删除
	if w := doJSON(t, e, http.MethodDelete, "/api/v1/trash/"+id, "", admin); w.Code != http.StatusBadRequest {
		t.Errorf("purge active status = %d, want 400", w.Code)
	}

	// 再次软删除后永久删除
	doJSON(t, e, http.MethodDelete, "/api/v1/files/"+id, "", member)

	if w := doJSON(t, e, http.MethodDelete, "/api/v1/trash/"+id, "", admin); w.Code != http.StatusOK {
		t.Errorf("purge status = %d, want 200", w.Code)
	}

	// 此后一切操作 404
	if w := doJSON(t, e, http.MethodPost, "/api/v1/files/"+id+"/favorite", "", member); w.Code != http.StatusNotFound {
		t.Errorf("favorite after purge status = %d, want 404", w.Code)
	}
}

func TestFavoriteToggleOverHTTP(t *testing.T) {
	e := newTestEngine(t)
	alice := asMember("alice@example.com", "org1")

	id := createFile(t, e, alice, "pinned.png")

	w := doJSON(t, e, http.MethodPost, "/api/v1/files/"+id+"/favorite", "", alice)
	if w.Code != http.StatusOK {
		t.Fatalf("toggle status = %d", w.Code)
	}

	var resp types.ToggleFavoriteResponse
	if err := sonicUnmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode toggle: %v", err)
	}

	if !resp.Favorited {
		t.Error("first toggle should favorite")
	}

	var list types.ListFavoritesResponse

	w = doJSON(t, e, http.MethodGet, "/api/v1/favorites", "", alice)
	if err := sonicUnmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode favorites: %v", err)
	}

	if list.Total != 1 || list.FileIDs[0] != id {
		t.Errorf("favorites = %+v, want [%s]", list, id)
	}
}

func TestHealthUnavailableComponents(t *testing.T) {
	e := newTestEngine(t)

	// 测试引擎只挂了 DB，s3/mq 应报 503
	if w := doJSON(t, e, http.MethodGet, "/api/v1/health/s3", "", nil); w.Code != http.StatusServiceUnavailable {
		t.Errorf("s3 health status = %d, want 503", w.Code)
	}

	if w := doJSON(t, e, http.MethodGet, "/api/v1/health/mq", "", nil); w.Code != http.StatusServiceUnavailable {
		t.Errorf("mq health status = %d, want 503", w.Code)
	}

	if w := doJSON(t, e, http.MethodGet, "/api/v1/health/db", "", nil); w.Code != http.StatusOK {
		t.Errorf("db health status = %d, want 200, body = %s", w.Code, w.Body.String())
	}
}

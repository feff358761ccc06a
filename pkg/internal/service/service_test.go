package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yeisme/filedrive/pkg/internal/model"
	"github.com/yeisme/filedrive/pkg/internal/service"
	"github.com/yeisme/filedrive/pkg/internal/storage"
	dbc "github.com/yeisme/filedrive/pkg/internal/storage/db"
	"github.com/yeisme/filedrive/pkg/internal/types"
)

var testDBSeq int

// newTestManager 构造一个仅含内存数据库的存储管理器.
func newTestManager(t *testing.T) *storage.Manager {
	t.Helper()

	testDBSeq++
	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", testDBSeq)

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := gdb.AutoMigrate(&model.File{}, &model.Favorite{}, &model.UserProfile{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return storage.NewManager(&dbc.Client{DB: gdb}, nil, nil, nil)
}

func memberScope(scopeID, userID string) types.Scope {
	return types.Scope{ID: scopeID, UserID: userID, Role: types.RoleMember}
}

func adminScope(scopeID, userID string) types.Scope {
	return types.Scope{ID: scopeID, UserID: userID, Role: types.RoleAdmin}
}

func mustCreate(t *testing.T, fs *service.FileService, scope types.Scope, name, typ string) types.FileInfo {
	t.Helper()

	info, err := fs.Create(context.Background(), scope, types.CreateFileRequest{
		Name:       name,
		Type:       typ,
		StorageRef: scope.ID + "/" + name,
	})
	if err != nil {
		t.Fatalf("create %q: %v", name, err)
	}

	return info
}

func TestCreateValidation(t *testing.T) {
	fs := service.NewFileServiceWithManager(newTestManager(t))
	scope := memberScope("org1", "alice")
	ctx := context.Background()

	cases := []struct {
		name string
		req  types.CreateFileRequest
	}{
		{"blank name", types.CreateFileRequest{Name: "   ", Type: "image", StorageRef: "org1/x"}},
		{"unknown type", types.CreateFileRequest{Name: "x.bin", Type: "binary", StorageRef: "org1/x"}},
		{"blank storage ref", types.CreateFileRequest{Name: "x.png", Type: "image", StorageRef: " "}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fs.Create(ctx, scope, tc.req)
			if !errors.Is(err, service.ErrInvalidArgument) {
				t.Errorf("got %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestCreateAndList(t *testing.T) {
	fs := service.NewFileServiceWithManager(newTestManager(t))
	scope := memberScope("org1", "alice")
	ctx := context.Background()

	created := mustCreate(t, fs, scope, "report.pdf", "pdf")
	if created.ID == "" {
		t.Fatal("created file has empty id")
	}

	resp, err := fs.List(ctx, scope, types.ListFilesRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if resp.Total != 1 || resp.Files[0].Name != "report.pdf" {
		t.Fatalf("unexpected listing: %+v", resp)
	}

	// 无对象存储客户端时 URL 降级为 null，列表本身不报错
	if resp.Files[0].URL != nil {
		t.Errorf("expected nil URL without blob store, got %v", *resp.Files[0].URL)
	}

	if resp.Files[0].Owner == nil || resp.Files[0].Owner.UserID != "alice" {
		t.Errorf("owner not annotated: %+v", resp.Files[0].Owner)
	}
}

func TestScopeIsolation(t *testing.T) {
	mgr := newTestManager(t)
	fs := service.NewFileServiceWithManager(mgr)
	favs := service.NewFavoriteServiceWithManager(mgr)
	trash := service.NewTrashServiceWithManager(mgr)
	ctx := context.Background()

	org1 := memberScope("org1", "alice")
	org2 := memberScope("org2", "mallory")

	created := mustCreate(t, fs, org1, "secret.csv", "csv")

	resp, err := fs.List(ctx, org2, types.ListFilesRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if resp.Total != 0 {
		t.Fatalf("foreign scope sees %d files", resp.Total)
	}

	// 跨 scope 的操作与不存在一样返回 NotFound，不泄露存在性
	if _, err := favs.Toggle(ctx, org2, created.ID); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("toggle from foreign scope: got %v, want ErrNotFound", err)
	}

	if err := trash.MarkForDeletion(ctx, org2, created.ID); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("delete from foreign scope: got %v, want ErrNotFound", err)
	}
}

func TestSearchCaseInsensitiveSubstring(t *testing.T) {
	fs := service.NewFileServiceWithManager(newTestManager(t))
	scope := memberScope("org1", "alice")
	ctx := context.Background()

	mustCreate(t, fs, scope, "Cat.png", "image")
	mustCreate(t, fs, scope, "dog.png", "image")
	mustCreate(t, fs, scope, "catalog.csv", "csv")

	resp, err := fs.List(ctx, scope, types.ListFilesRequest{Query: "cAt"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if resp.Total != 2 {
		t.Fatalf("query cAt matched %d files, want 2", resp.Total)
	}

	// 条件取交集：子串 + 类型
	resp, err = fs.List(ctx, scope, types.ListFilesRequest{Query: "cat", Type: "image"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if resp.Total != 1 || resp.Files[0].Name != "Cat.png" {
		t.Fatalf("conjunctive filter: %+v", resp)
	}
}

func TestSoftDeleteLeavesListEntersTrash(t *testing.T) {
	mgr := newTestManager(t)
	fs := service.NewFileServiceWithManager(mgr)
	trash := service.NewTrashServiceWithManager(mgr)
	ctx := context.Background()
	scope := memberScope("org1", "alice")

	created := mustCreate(t, fs, scope, "old.pdf", "pdf")
	mustCreate(t, fs, scope, "keep.pdf", "pdf")

	if err := trash.MarkForDeletion(ctx, scope, created.ID); err != nil {
		t.Fatalf("mark: %v", err)
	}

	resp, err := fs.List(ctx, scope, types.ListFilesRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if resp.Total != 1 || resp.Files[0].Name != "keep.pdf" {
		t.Fatalf("soft-deleted file still listed: %+v", resp)
	}

	trashed, err := trash.ListTrash(ctx, scope)
	if err != nil {
		t.Fatalf("trash list: %v", err)
	}

	if trashed.Total != 1 || trashed.Files[0].ID != created.ID {
		t.Fatalf("trash listing: %+v", trashed)
	}

	if trashed.Files[0].DeletedAt == nil {
		t.Error("trash entry missing deleted_at")
	}
}

func TestMarkForDeletionIdempotent(t *testing.T) {
	mgr := newTestManager(t)
	fs := service.NewFileServiceWithManager(mgr)
	trash := service.NewTrashServiceWithManager(mgr)
	ctx := context.Background()
	scope := memberScope("org1", "alice")

	created := mustCreate(t, fs, scope, "dup.pdf", "pdf")

	for range 3 {
		if err := trash.MarkForDeletion(ctx, scope, created.ID); err != nil {
			t.Fatalf("mark: %v", err)
		}
	}

	trashed, err := trash.ListTrash(ctx, scope)
	if err != nil {
		t.Fatalf("trash list: %v", err)
	}

	if trashed.Total != 1 {
		t.Fatalf("idempotent mark produced %d trash entries", trashed.Total)
	}
}

func TestRestoreRequiresAdmin(t *testing.T) {
	mgr := newTestManager(t)
	fs := service.NewFileServiceWithManager(mgr)
	trash := service.NewTrashServiceWithManager(mgr)
	ctx := context.Background()

	member := memberScope("org1", "alice")
	admin := adminScope("org1", "root")

	created := mustCreate(t, fs, member, "doc.pdf", "pdf")
	if err := trash.MarkForDeletion(ctx, member, created.ID); err != nil {
		t.Fatalf("mark: %v", err)
	}

	// 普通成员恢复被拒，角色检查先于存在性检查
	if err := trash.Restore(ctx, member, created.ID); !errors.Is(err, service.ErrPermissionDenied) {
		t.Errorf("member restore: got %v, want ErrPermissionDenied", err)
	}

	if err := trash.Restore(ctx, member, "01ZZZZZZZZZZZZZZZZZZZZZZZZ"); !errors.Is(err, service.ErrPermissionDenied) {
		t.Errorf("member restore of unknown id: got %v, want ErrPermissionDenied", err)
	}

	if err := trash.Restore(ctx, admin, created.ID); err != nil {
		t.Fatalf("admin restore: %v", err)
	}

	resp, err := fs.List(ctx, member, types.ListFilesRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if resp.Total != 1 {
		t.Fatalf("restored file not listed: %+v", resp)
	}

	// 恢复已活跃文件是空操作
	if err := trash.Restore(ctx, admin, created.ID); err != nil {
		t.Errorf("restore of active file: %v", err)
	}
}

func TestToggleInvolution(t *testing.T) {
	mgr := newTestManager(t)
	fs := service.NewFileServiceWithManager(mgr)
	favs := service.NewFavoriteServiceWithManager(mgr)
	ctx := context.Background()
	scope := memberScope("org1", "alice")

	created := mustCreate(t, fs, scope, "fav.png", "image")

	res, err := favs.Toggle(ctx, scope, created.ID)
	if err != nil || !res.Favorited {
		t.Fatalf("first toggle = %+v, %v; want favorited", res, err)
	}

	res, err = favs.Toggle(ctx, scope, created.ID)
	if err != nil || res.Favorited {
		t.Fatalf("second toggle = %+v, %v; want unfavorited", res, err)
	}

	list, err := favs.ListByCaller(ctx, scope)
	if err != nil {
		t.Fatalf("list favorites: %v", err)
	}

	if list.Total != 0 {
		t.Fatalf("double toggle left %d favorites", list.Total)
	}
}

func TestFavoriteIsPerCaller(t *testing.T) {
	mgr := newTestManager(t)
	fs := service.NewFileServiceWithManager(mgr)
	favs := service.NewFavoriteServiceWithManager(mgr)
	ctx := context.Background()

	alice := memberScope("org1", "alice")
	bob := memberScope("org1", "bob")

	created := mustCreate(t, fs, alice, "shared.png", "image")

	if _, err := favs.Toggle(ctx, alice, created.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	// 收藏跟随调用者，同 scope 其他成员不受影响
	resp, err := fs.List(ctx, bob, types.ListFilesRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if resp.Files[0].IsFavorited {
		t.Error("bob sees alice's favorite")
	}

	resp, err = fs.List(ctx, alice, types.ListFilesRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if !resp.Files[0].IsFavorited {
		t.Error("alice's favorite not annotated")
	}
}

func TestFavoritesOnlyFilter(t *testing.T) {
	mgr := newTestManager(t)
	fs := service.NewFileServiceWithManager(mgr)
	favs := service.NewFavoriteServiceWithManager(mgr)
	ctx := context.Background()
	scope := memberScope("org1", "alice")

	f1 := mustCreate(t, fs, scope, "starred.png", "image")
	mustCreate(t, fs, scope, "plain.png", "image")

	if _, err := favs.Toggle(ctx, scope, f1.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	resp, err := fs.List(ctx, scope, types.ListFilesRequest{FavoritesOnly: true})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if resp.Total != 1 || resp.Files[0].ID != f1.ID {
		t.Fatalf("favorites-only: %+v", resp)
	}
}

func TestFavoriteSurvivesDeleteRestoreCycle(t *testing.T) {
	mgr := newTestManager(t)
	fs := service.NewFileServiceWithManager(mgr)
	favs := service.NewFavoriteServiceWithManager(mgr)
	trash := service.NewTrashServiceWithManager(mgr)
	ctx := context.Background()

	member := memberScope("org1", "alice")
	admin := adminScope("org1", "root")

	created := mustCreate(t, fs, member, "cycle.pdf", "pdf")

	if _, err := favs.Toggle(ctx, member, created.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	if err := trash.MarkForDeletion(ctx, member, created.ID); err != nil {
		t.Fatalf("mark: %v", err)
	}

	// 软删除中仍可翻转收藏
	res, err := favs.Toggle(ctx, member, created.ID)
	if err != nil || res.Favorited {
		t.Fatalf("toggle while trashed = %+v, %v; want unfavorited", res, err)
	}

	res, err = favs.Toggle(ctx, member, created.ID)
	if err != nil || !res.Favorited {
		t.Fatalf("re-toggle while trashed = %+v, %v; want favorited", res, err)
	}

	if err := trash.Restore(ctx, admin, created.ID); err != nil {
		t.Fatalf("restore: %v", err)
	}

	resp, err := fs.List(ctx, member, types.ListFilesRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if !resp.Files[0].IsFavorited {
		t.Error("favorite lost across delete/restore cycle")
	}
}

func TestPurgeCascadesFavorites(t *testing.T) {
	mgr := newTestManager(t)
	fs := service.NewFileServiceWithManager(mgr)
	favs := service.NewFavoriteServiceWithManager(mgr)
	trash := service.NewTrashServiceWithManager(mgr)
	ctx := context.Background()

	member := memberScope("org1", "alice")
	admin := adminScope("org1", "root")

	created := mustCreate(t, fs, member, "purge.csv", "csv")

	if _, err := favs.Toggle(ctx, member, created.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	// 活跃文件不可直接清除
	if err := trash.Purge(ctx, admin, created.ID); !errors.Is(err, service.ErrInvalidArgument) {
		t.Errorf("purge of active file: got %v, want ErrInvalidArgument", err)
	}

	if err := trash.MarkForDeletion(ctx, member, created.ID); err != nil {
		t.Fatalf("mark: %v", err)
	}

	if err := trash.Purge(ctx, member, created.ID); !errors.Is(err, service.ErrPermissionDenied) {
		t.Errorf("member purge: got %v, want ErrPermissionDenied", err)
	}

	if err := trash.Purge(ctx, admin, created.ID); err != nil {
		t.Fatalf("purge: %v", err)
	}

	trashed, err := trash.ListTrash(ctx, admin)
	if err != nil {
		t.Fatalf("trash list: %v", err)
	}

	if trashed.Total != 0 {
		t.Fatalf("purged file still in trash: %+v", trashed)
	}

	list, err := favs.ListByCaller(ctx, member)
	if err != nil {
		t.Fatalf("list favorites: %v", err)
	}

	if list.Total != 0 {
		t.Fatalf("purge left %d dangling favorites", list.Total)
	}

	// 清除后收藏同一 id 一律 NotFound
	if _, err := favs.Toggle(ctx, member, created.ID); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("toggle after purge: got %v, want ErrNotFound", err)
	}
}

func TestSweepExpiredRespectsRetention(t *testing.T) {
	mgr := newTestManager(t)
	fs := service.NewFileServiceWithManager(mgr)
	trash := service.NewTrashServiceWithManager(mgr)
	ctx := context.Background()
	scope := memberScope("org1", "alice")

	expired := mustCreate(t, fs, scope, "expired.pdf", "pdf")
	recent := mustCreate(t, fs, scope, "recent.pdf", "pdf")

	for _, f := range []types.FileInfo{expired, recent} {
		if err := trash.MarkForDeletion(ctx, scope, f.ID); err != nil {
			t.Fatalf("mark: %v", err)
		}
	}

	// 将其中一个的删除时间拨回保留期之前
	gdb := mgr.GetDBClient().GetDB()
	old := time.Now().UTC().Add(-40 * 24 * time.Hour)

	if err := gdb.Unscoped().Model(&model.File{}).
		Where("id = ?", expired.ID).
		Update("deleted_at", old).Error; err != nil {
		t.Fatalf("backdate: %v", err)
	}

	purged, err := trash.SweepExpired(ctx, 30*24*time.Hour)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}

	if purged != 1 {
		t.Fatalf("sweep purged %d files, want 1", purged)
	}

	trashed, err := trash.ListTrash(ctx, scope)
	if err != nil {
		t.Fatalf("trash list: %v", err)
	}

	if trashed.Total != 1 || trashed.Files[0].ID != recent.ID {
		t.Fatalf("sweep removed wrong files: %+v", trashed)
	}
}

func TestOwnerProfileAnnotation(t *testing.T) {
	mgr := newTestManager(t)
	fs := service.NewFileServiceWithManager(mgr)
	ctx := context.Background()
	scope := memberScope("org1", "alice")

	if err := mgr.GetDBClient().GetDB().Create(&model.UserProfile{
		UserID: "alice",
		Name:   "Alice",
		Image:  "https://img.example/alice.png",
	}).Error; err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	mustCreate(t, fs, scope, "pic.png", "image")

	resp, err := fs.List(ctx, scope, types.ListFilesRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	owner := resp.Files[0].Owner
	if owner == nil || owner.Name != "Alice" || owner.Image == "" {
		t.Fatalf("owner profile not joined: %+v", owner)
	}
}

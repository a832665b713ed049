package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"dobby_cafe_v1/internal/controller"
	"dobby_cafe_v1/internal/middleware"
	"dobby_cafe_v1/internal/model"
	"dobby_cafe_v1/internal/repository"
	"dobby_cafe_v1/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ==================== 测试辅助 ====================

type routerFixture struct {
	db      *gorm.DB
	engine  *gin.Engine
	company *model.Company
	branch  *model.Branch
	admin   *model.User
	cashier *model.User
	kahve   *model.Category
	latte   *model.MasterProduct
}

// setupRouterFixture 整条链路：sqlite → repo → service → controller → router
func setupRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(
		&model.Company{}, &model.Branch{}, &model.User{},
		&model.Category{}, &model.MasterProduct{}, &model.BranchProduct{},
	); err != nil {
		t.Fatalf("自动建表失败: %v", err)
	}

	f := &routerFixture{db: db}
	f.company = &model.Company{Name: "Dobby Cafe", Email: "info@dobby.com"}
	mustInsert(t, db, f.company)
	f.branch = &model.Branch{CompanyID: f.company.ID, Name: "Kadıköy", IsActive: true}
	mustInsert(t, db, f.branch)

	hash, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	f.admin = &model.User{
		CompanyID: f.company.ID, Username: "admin", Email: "admin@dobby.com",
		PasswordHash: string(hash), Role: model.RoleCompanyAdmin, IsActive: true,
	}
	f.cashier = &model.User{
		CompanyID: f.company.ID, BranchID: &f.branch.ID,
		Username: "kasa", Email: "kasa@dobby.com",
		PasswordHash: string(hash), Role: model.RoleCashier, IsActive: true,
	}
	mustInsert(t, db, f.admin, f.cashier)

	f.kahve = &model.Category{CompanyID: f.company.ID, Name: "Kahve", SortOrder: 1, IsActive: true}
	mustInsert(t, db, f.kahve)
	f.latte = &model.MasterProduct{
		CompanyID: f.company.ID, CategoryID: &f.kahve.ID,
		Name: "Latte", BasePrice: decimalFromString(t, "40.00"), IsActive: true,
	}
	mustInsert(t, db, f.latte)

	userRepo := repository.NewUserRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	bpRepo := repository.NewBranchProductRepository(db)
	menuRepo := repository.NewMenuRepository(db)

	authSvc := service.NewAuthService(userRepo, bcrypt.MinCost)
	menuSvc := service.NewMenuService(menuRepo, categoryRepo, branchRepo)
	catalogSvc := service.NewCatalogService(categoryRepo, productRepo, branchRepo, bpRepo)

	f.engine = SetupRouter(zap.NewNop(), "http://localhost:5173", &Controllers{
		Health:  controller.NewHealthController("test"),
		Auth:    controller.NewAuthController(authSvc, true),
		Menu:    controller.NewMenuController(menuSvc, true),
		Catalog: controller.NewCatalogController(catalogSvc, true),
	})
	return f
}

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("非法金额 %s: %v", s, err)
	}
	return d
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func mustInsert(t *testing.T, db *gorm.DB, records ...interface{}) {
	t.Helper()
	for _, rec := range records {
		if err := db.Create(rec).Error; err != nil {
			t.Fatalf("写入测试数据失败: %v", err)
		}
	}
}

func (f *routerFixture) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("序列化请求失败: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	f.engine.ServeHTTP(w, req)
	return w
}

func (f *routerFixture) tokenFor(t *testing.T, user *model.User) string {
	t.Helper()
	token, err := middleware.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	return token
}

// ==================== 路由行为 ====================

func TestRouter_UnknownEndpoint(t *testing.T) {
	f := setupRouterFixture(t)

	w := f.request(t, http.MethodGet, "/api/nope", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if !strings.Contains(w.Body.String(), "Endpoint not found: GET /api/nope") {
		t.Errorf("404 文案不正确: %s", w.Body.String())
	}
}

func TestRouter_MenuRequiresAuth(t *testing.T) {
	f := setupRouterFixture(t)

	w := f.request(t, http.MethodGet, "/api/menu", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
	if !strings.Contains(strings.ToLower(w.Body.String()), "token") {
		t.Errorf("401 响应未提及 token: %s", w.Body.String())
	}
}

func TestRouter_CatalogRoleEnforcement(t *testing.T) {
	f := setupRouterFixture(t)
	cashierToken := f.tokenFor(t, f.cashier)

	// 收银员创建分类 → 403
	w := f.request(t, http.MethodPost, "/api/catalog/categories", cashierToken, gin.H{
		"name": "Tatlı",
	})
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d, body = %s", w.Code, http.StatusForbidden, w.Body.String())
	}
}

// 登录 → 写覆盖 → 查菜单 → 删覆盖，全链路走 HTTP
func TestRouter_OverrideFlow(t *testing.T) {
	f := setupRouterFixture(t)

	// 登录取 token
	w := f.request(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "admin@dobby.com", "password": "123456",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("登录失败: %d %s", w.Code, w.Body.String())
	}
	var login struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &login); err != nil || login.Token == "" {
		t.Fatalf("token 解析失败: %v, body = %s", err, w.Body.String())
	}

	// 写覆盖
	overridePath := "/api/catalog/branches/" + itoa(f.branch.ID) + "/products/" + itoa(f.latte.ID)
	w = f.request(t, http.MethodPut, overridePath, login.Token, gin.H{
		"price": "45.00",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("写覆盖失败: %d %s", w.Code, w.Body.String())
	}

	// 查门店菜单，覆盖价生效
	w = f.request(t, http.MethodGet, "/api/menu?branch_id="+itoa(f.branch.ID), login.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("查菜单失败: %d %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "45") {
		t.Errorf("覆盖价未出现在菜单: %s", w.Body.String())
	}

	// 删覆盖，回落基础价
	w = f.request(t, http.MethodDelete, overridePath, login.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("删覆盖失败: %d %s", w.Code, w.Body.String())
	}
	w = f.request(t, http.MethodGet, "/api/menu?branch_id="+itoa(f.branch.ID), login.Token, nil)
	if !strings.Contains(w.Body.String(), "40") {
		t.Errorf("基础价未回落: %s", w.Body.String())
	}
}

package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"buggie/internal/model"
	"buggie/internal/pkg/config"
)

// newTestRouter 组装带临时SQLite库的完整路由
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Project{}, &model.Bug{}))

	cfg := &config.Config{}
	cfg.Server.Mode = "test"

	return Setup(cfg, db)
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &data))
	return data
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUserLifecycle(t *testing.T) {
	r := newTestRouter(t)

	// 创建
	w := doRequest(r, http.MethodPost, "/users", `{"username":"alice","email":"alice@example.com","timezone":2}`)
	require.Equal(t, http.StatusOK, w.Code)
	created := decodeJSON(t, w)
	assert.Equal(t, "alice", created["username"])
	assert.Equal(t, "alice@example.com", created["email"])
	assert.EqualValues(t, 2, created["timezone"])
	assert.Equal(t, true, created["active"])

	// 列表
	w = doRequest(r, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, w.Code)
	var users []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 1)

	// 详情与创建时字段一致
	w = doRequest(r, http.MethodGet, "/users/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created, decodeJSON(t, w))

	// 更新
	w = doRequest(r, http.MethodPut, "/users/1", `{"username":"alice2","email":"alice2@example.com","timezone":3}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice2", decodeJSON(t, w)["username"])

	// 删除（软删除），返回纯文本OK
	w = doRequest(r, http.MethodDelete, "/users/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())

	w = doRequest(r, http.MethodGet, "/users/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decodeJSON(t, w)["active"])
}

func TestUserInvalidRequests(t *testing.T) {
	r := newTestRouter(t)

	// 请求体不是合法JSON
	w := doRequest(r, http.MethodPost, "/users", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 缺少timezone字段
	w = doRequest(r, http.MethodPost, "/users", `{"username":"bob","email":"bob@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// timezone为0是合法取值
	w = doRequest(r, http.MethodPost, "/users", `{"username":"bob","email":"bob@example.com","timezone":0}`)
	assert.Equal(t, http.StatusOK, w.Code)

	// 不存在的用户
	w = doRequest(r, http.MethodGet, "/users/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(r, http.MethodPut, "/users/999", `{"username":"x","email":"x@example.com","timezone":0}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// 更新缺少必填字段
	w = doRequest(r, http.MethodPut, "/users/1", `{"username":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserMethodNotAllowed(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodPut, "/users", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	w = doRequest(r, http.MethodDelete, "/users", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	// 单个资源不支持POST，与请求体内容无关
	w = doRequest(r, http.MethodPost, "/users/1", `{"username":"alice"}`)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	w = doRequest(r, http.MethodPost, "/users/1", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestProjectLifecycle(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodPost, "/projects", `{"name":"apollo","description":"moon landing"}`)
	require.Equal(t, http.StatusOK, w.Code)
	created := decodeJSON(t, w)
	assert.Equal(t, "apollo", created["name"])
	assert.Equal(t, "moon landing", created["description"])
	assert.Equal(t, true, created["active"])

	w = doRequest(r, http.MethodGet, "/projects", "")
	require.Equal(t, http.StatusOK, w.Code)
	var projects []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projects))
	require.Len(t, projects, 1)

	w = doRequest(r, http.MethodPut, "/projects/1", `{"name":"apollo11","description":"landed"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "apollo11", decodeJSON(t, w)["name"])

	w = doRequest(r, http.MethodDelete, "/projects/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())

	w = doRequest(r, http.MethodGet, "/projects/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decodeJSON(t, w)["active"])
}

func TestBugLifecycle(t *testing.T) {
	r := newTestRouter(t)

	// 项目不存在时创建失败
	w := doRequest(r, http.MethodPost, "/bugs", `{"title":"lost","project_name":"apollo"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(r, http.MethodPost, "/projects", `{"name":"apollo"}`)
	require.Equal(t, http.StatusOK, w.Code)
	w = doRequest(r, http.MethodPost, "/users", `{"username":"alice","email":"alice@example.com","timezone":0}`)
	require.Equal(t, http.StatusOK, w.Code)

	// 指派人不存在时创建失败
	w = doRequest(r, http.MethodPost, "/bugs", `{"title":"lost","project_name":"apollo","assignedto_name":"nobody"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// 正常创建，默认OPEN，未指派时assignedto为null
	w = doRequest(r, http.MethodPost, "/bugs", `{"title":"engine failure","summary":"stage 2","project_name":"apollo"}`)
	require.Equal(t, http.StatusOK, w.Code)
	created := decodeJSON(t, w)
	assert.Equal(t, "OPEN", created["state"])
	assert.Nil(t, created["assignedto"])
	assert.EqualValues(t, 1, created["project"])

	// 非法状态更新
	w = doRequest(r, http.MethodPut, "/bugs/1", `{"title":"engine failure","project_name":"apollo","state":"WONTFIX"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 正常更新
	w = doRequest(r, http.MethodPut, "/bugs/1", `{"title":"engine failure","project_name":"apollo","state":"RESOLVED","assignedto_name":"alice"}`)
	require.Equal(t, http.StatusOK, w.Code)
	modified := decodeJSON(t, w)
	assert.Equal(t, "RESOLVED", modified["state"])
	assert.EqualValues(t, 1, modified["assignedto"])

	// 缺陷不提供删除
	w = doRequest(r, http.MethodDelete, "/bugs/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

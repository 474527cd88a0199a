package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signTestToken(t testing.TB, h *Handler, role string, sub string) *http.Cookie {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, AuthClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			Subject:   sub,
		},
	})
	ss, err := token.SignedString([]byte(h.config.JWT.Secret))
	require.NoError(t, err)

	return &http.Cookie{Name: "__asset_tracker_token", Value: ss}
}

func TestCreateUser_RouteRegistered(t *testing.T) {
	h, mock, db := setupTestHandler(t)
	defer db.Close()

	h.RegisterRoutes()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("taken@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	body := `{"email": "taken@example.com", "role": "user"}`
	req := httptest.NewRequest(http.MethodPost, "/users/", strings.NewReader(body))
	req.AddCookie(signTestToken(t, h, "admin", "1"))
	rec := httptest.NewRecorder()

	h.Mux.ServeHTTP(rec, req)

	// 路由必须存在且管理员可以调用（而不是 405）
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "邮箱已被占用", resp.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_RequiresAdmin(t *testing.T) {
	h, mock, db := setupTestHandler(t)
	defer db.Close()

	h.RegisterRoutes()

	body := `{"email": "new@example.com", "role": "user"}`
	req := httptest.NewRequest(http.MethodPost, "/users/", strings.NewReader(body))
	req.AddCookie(signTestToken(t, h, "user", "2"))
	rec := httptest.NewRecorder()

	h.Mux.ServeHTTP(rec, req)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "权限不足", resp.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_InvalidRole(t *testing.T) {
	h, mock, db := setupTestHandler(t)
	defer db.Close()

	body := `{"email": "new@example.com", "role": "superuser"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.CreateUser(rec, req)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.NoError(t, mock.ExpectationsWereMet())
}

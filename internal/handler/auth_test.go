package handler

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLogin_Success(t *testing.T) {
	h, mock, db := setupTestHandler(t)
	defer db.Close()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password1234"), bcrypt.MinCost)
	require.NoError(t, err)

	mock.ExpectQuery("FROM users WHERE email").
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "password_hash", "role", "created_at", "version"}).
			AddRow(3, string(hashedPassword), "user", time.Now(), 1))

	body := `{"email": "alice@example.com", "password": "password1234"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "登录成功", resp.Message)

	// 登录成功后必须通过 http-only cookie 下发 JWT
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "__asset_tracker_token", cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_WrongPassword(t *testing.T) {
	h, mock, db := setupTestHandler(t)
	defer db.Close()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password1234"), bcrypt.MinCost)
	require.NoError(t, err)

	mock.ExpectQuery("FROM users WHERE email").
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "password_hash", "role", "created_at", "version"}).
			AddRow(3, string(hashedPassword), "user", time.Now(), 1))

	body := `{"email": "alice@example.com", "password": "wrong-password"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "邮箱不存在或密码错误", resp.Message)
	assert.Empty(t, rec.Result().Cookies())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_UnknownEmail(t *testing.T) {
	h, mock, db := setupTestHandler(t)
	defer db.Close()

	mock.ExpectQuery("FROM users WHERE email").
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	body := `{"email": "nobody@example.com", "password": "password1234"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	// 不暴露邮箱是否存在
	assert.Equal(t, "邮箱不存在或密码错误", resp.Message)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_InvalidEmailFormat(t *testing.T) {
	h, mock, db := setupTestHandler(t)
	defer db.Close()

	body := `{"email": "not-an-email", "password": "password1234"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.NoError(t, mock.ExpectationsWereMet())
}

//go:build e2e

package auth_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"volunteer-hub/internal/handler/dto/request"
	"volunteer-hub/internal/handler/dto/response"
	"volunteer-hub/internal/pkg/cookie"
	"volunteer-hub/tests/common/authtest"
	"volunteer-hub/tests/common/dbtest"
	"volunteer-hub/tests/common/httptest"
	"volunteer-hub/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	logoutURL  = "/api/auth/logout"
	meURL      = "/api/auth/me"
	balanceURL = "/api/users/me/balance"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	// テスト用ユーザーを作成
	dbtest.CreateTestUser(s.T(), s.DB, "volunteer@example.com", "volunteer")
	dbtest.CreateTestUser(s.T(), s.DB, "promoter@example.com", "promoter")
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", "volunteer")

	ctx := s.T().Context()
	_, err := s.DB.Exec(ctx, "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "正常なログイン",
			email:          "volunteer@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "存在しないユーザー",
			email:          "nonexistent@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "間違ったパスワード",
			email:          "volunteer@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "非アクティブユーザー",
			email:          "inactive@example.com",
			password:       "password123",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "空のメールアドレス",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "短すぎるパスワード",
			email:          "volunteer@example.com",
			password:       "short",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{Email: tt.email, Password: tt.password}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var resp response.LoginResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				require.NotEmpty(t, resp.AccessToken)
				require.NotNil(t, resp.User)
				require.Equal(t, tt.email, resp.User.Email)

				accessCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
				require.NotNil(t, accessCookie)
				require.NotEmpty(t, accessCookie.Value)
			}
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("ログイン済みユーザーは自分の情報を取得できる", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "volunteer@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Equal(t, "volunteer@example.com", body["email"])
	})

	s.Run("トークンなしでは401", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogoutAndBalance() {
	s.Run("ログアウトでクッキーが削除される", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "volunteer@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		cleared := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
		require.NotNil(t, cleared)
		require.Empty(t, cleared.Value)
	})

	s.Run("残高はポイント列を返す", func() {
		t := s.T()
		userID := dbtest.CreateTestUserWithPoints(t, s.DB, "rich@example.com", "volunteer", 300)
		token := authtest.LoginUser(t, s.Router, "rich@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, balanceURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp response.BalanceResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, userID, resp.UserID)
		require.Equal(t, int32(300), resp.Points)
	})
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/homestock/homestock/internal/models"
	"github.com/homestock/homestock/internal/services"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alice := &models.UserDB{ID: 42, Username: "alice"}

	tests := []struct {
		name         string
		form         url.Values
		mockSetup    func(m *MockLoginer)
		expectedCode int
		checkBody    func(t *testing.T, body []byte)
	}{
		{
			name: "success",
			form: url.Values{"username": {"alice"}, "password": {"secret"}},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice", "secret").
					Return(alice, "token123", nil)
			},
			expectedCode: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var resp TokenResponse
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "token123", resp.AccessToken)
				assert.Equal(t, "bearer", resp.TokenType)
				assert.Equal(t, "alice", resp.Username)
				assert.Equal(t, int64(42), resp.UserID)
			},
		},
		{
			name: "invalid credentials",
			form: url.Values{"username": {"alice"}, "password": {"wrong"}},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice", "wrong").
					Return(nil, "", services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
			checkBody: func(t *testing.T, body []byte) {
				var resp LoginErrorResponse
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "Incorrect username or password", resp.Error)
			},
		},
		{
			name: "unknown user",
			form: url.Values{"username": {"nobody"}, "password": {"secret"}},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "nobody", "secret").
					Return(nil, "", services.ErrUserDoesNotExist)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "missing fields",
			form:         url.Values{"username": {"alice"}},
			mockSetup:    func(m *MockLoginer) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "internal server error",
			form: url.Values{"username": {"alice"}, "password": {"secret"}},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice", "secret").
					Return(nil, "", errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			rr := httptest.NewRecorder()

			NewLoginHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.checkBody != nil {
				tt.checkBody(t, rr.Body.Bytes())
			}
		})
	}
}

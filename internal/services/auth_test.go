package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/homestock/homestock/internal/models"
	"github.com/homestock/homestock/internal/repositories"
	"github.com/homestock/homestock/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		username     string
		email        string
		password     string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		wantErr      error
	}{
		{
			name:     "successful registration",
			username: "alice",
			email:    "alice@example.com",
			password: "pass123",
		},
		{
			name:         "username or email taken",
			username:     "bob",
			email:        "bob@example.com",
			password:     "pass123",
			existingUser: &models.UserDB{ID: 7, Username: "bob"},
			wantErr:      services.ErrUserAlreadyExists,
		},
		{
			name:      "reader error",
			username:  "eve",
			email:     "eve@example.com",
			password:  "pass123",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "duplicate race on save",
			username:  "carol",
			email:     "carol@example.com",
			password:  "pass123",
			writerErr: repositories.ErrDuplicate,
			wantErr:   services.ErrUserAlreadyExists,
		},
		{
			name:      "writer error",
			username:  "dave",
			email:     "dave@example.com",
			password:  "pass123",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockJWT := services.NewMockTokener(ctrl)
			svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

			mockReader.EXPECT().
				GetByUsernameOrEmail(gomock.Any(), &tt.username, &tt.email).
				Return(tt.existingUser, tt.readerErr)

			if tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.username, tt.email, gomock.Any()).
					Return(tt.writerErr)
			}

			err := svc.Register(context.Background(), tt.username, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Register_StoresHashNotPlaintext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokener(ctrl)
	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	username := "alice"
	email := "alice@example.com"
	password := "secret123"

	mockReader.EXPECT().
		GetByUsernameOrEmail(gomock.Any(), &username, &email).
		Return(nil, nil)

	var stored string
	mockWriter.EXPECT().
		Save(gomock.Any(), username, email, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, passwordHash string) error {
			stored = passwordHash
			return nil
		})

	err := svc.Register(context.Background(), username, email, password)
	assert.NoError(t, err)
	assert.NotEqual(t, password, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)))
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	password := "secret123"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)

	alice := &models.UserDB{ID: 42, Username: "alice", PasswordHash: string(hash)}

	tests := []struct {
		name      string
		username  string
		password  string
		user      *models.UserDB
		readerErr error
		wantToken string
		wantErr   error
	}{
		{
			name:      "successful login",
			username:  "alice",
			password:  password,
			user:      alice,
			wantToken: "token123",
		},
		{
			name:     "wrong password",
			username: "alice",
			password: "not-the-password",
			user:     alice,
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:     "unknown user",
			username: "nobody",
			password: password,
			wantErr:  services.ErrUserDoesNotExist,
		},
		{
			name:      "reader error",
			username:  "alice",
			password:  password,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockJWT := services.NewMockTokener(ctrl)
			svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

			mockReader.EXPECT().
				GetByUsernameOrEmail(gomock.Any(), &tt.username, nil).
				Return(tt.user, tt.readerErr)

			if tt.wantToken != "" {
				mockJWT.EXPECT().
					Generate(gomock.Any(), tt.user.Username, tt.user.ID).
					Return(tt.wantToken, nil)
			}

			user, token, err := svc.Login(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.user, user)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

func TestAuthService_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alice := &models.UserDB{ID: 42, Username: "alice"}

	t.Run("valid token resolves to user", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockUserWriter(ctrl)
		mockJWT := services.NewMockTokener(ctrl)
		svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

		username := "alice"
		mockJWT.EXPECT().Parse(gomock.Any(), "token123").Return(username, int64(42), nil)
		mockReader.EXPECT().GetByUsernameOrEmail(gomock.Any(), &username, nil).Return(alice, nil)

		user, err := svc.Resolve(context.Background(), "token123")
		assert.NoError(t, err)
		assert.Equal(t, alice, user)
	})

	t.Run("parse failure", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockUserWriter(ctrl)
		mockJWT := services.NewMockTokener(ctrl)
		svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

		mockJWT.EXPECT().Parse(gomock.Any(), "bad").Return("", int64(0), errors.New("signature is invalid"))

		user, err := svc.Resolve(context.Background(), "bad")
		assert.ErrorIs(t, err, services.ErrInvalidToken)
		assert.Nil(t, user)
	})

	t.Run("user no longer exists", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockUserWriter(ctrl)
		mockJWT := services.NewMockTokener(ctrl)
		svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

		username := "ghost"
		mockJWT.EXPECT().Parse(gomock.Any(), "token123").Return(username, int64(9), nil)
		mockReader.EXPECT().GetByUsernameOrEmail(gomock.Any(), &username, nil).Return(nil, nil)

		user, err := svc.Resolve(context.Background(), "token123")
		assert.ErrorIs(t, err, services.ErrInvalidToken)
		assert.Nil(t, user)
	})
}

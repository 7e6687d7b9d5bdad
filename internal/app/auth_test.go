package app

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/ardaguler/theatre-reservation-system/api"
	"github.com/ardaguler/theatre-reservation-system/internal/domain"
	"github.com/ardaguler/theatre-reservation-system/internal/mocks"
	"github.com/ardaguler/theatre-reservation-system/internal/validator"
	"github.com/stretchr/testify/mock"
)

func TestRegisterUser(t *testing.T) {
	validBody := api.RegisterRequest{
		FirstName: "Arda",
		LastName:  "Guler",
		Email:     "arda@example.com",
		Password:  "Sup3rSecret!",
	}

	tests := []struct {
		name           string
		body           api.RegisterRequest
		setupMocks     func(*mocks.MockUserRepo)
		wantStatus     int
		wantErrMessage string
	}{
		{
			name: "registers user and issues activation token",
			body: validBody,
			setupMocks: func(userRepo *mocks.MockUserRepo) {
				userRepo.On("CreateWithToken", mock.Anything, mock.AnythingOfType("*domain.User"), mock.Anything).
					Run(func(args mock.Arguments) {
						user := args.Get(1).(*domain.User)
						user.ID = 11
						user.CreatedAt = time.Now()
						user.Version = 1
					}).
					Return(&domain.Token{Plaintext: "token", UserID: 11}, nil)
			},
			wantStatus: http.StatusAccepted,
		},
		{
			name: "validation error - weak password",
			body: api.RegisterRequest{
				FirstName: "Arda",
				LastName:  "Guler",
				Email:     "arda@example.com",
				Password:  "password",
			},
			setupMocks:     func(*mocks.MockUserRepo) {},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrPassword,
		},
		{
			name: "validation error - invalid email",
			body: api.RegisterRequest{
				FirstName: "Arda",
				LastName:  "Guler",
				Email:     "not-an-email",
				Password:  "Sup3rSecret!",
			},
			setupMocks:     func(*mocks.MockUserRepo) {},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrEmail,
		},
		{
			name: "duplicate email is not revealed",
			body: validBody,
			setupMocks: func(userRepo *mocks.MockUserRepo) {
				userRepo.On("CreateWithToken", mock.Anything, mock.AnythingOfType("*domain.User"), mock.Anything).
					Return(nil, domain.ErrUserAlreadyExists)
			},
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "invalid input data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := &mocks.MockUserRepo{}
			tt.setupMocks(userRepo)

			app := newTestApplication(func(a *Application) {
				a.userRepo = userRepo
			})

			w, r := executeRequest(t, http.MethodPost, "/users", tt.body)

			app.RegisterUser(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("RegisterUser() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantStatus == http.StatusAccepted {
				var response api.UserResponse
				if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}

				if response.Id != 11 {
					t.Errorf("UserResponse.Id = %v, want %v", response.Id, 11)
				}
				if response.Activated {
					t.Error("new user must not be activated")
				}
				if response.IsStaff {
					t.Error("new user must not be staff")
				}
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func TestCreateActivationToken(t *testing.T) {
	tests := []struct {
		name           string
		body           api.ActivationTokenRequest
		setupMocks     func(*mocks.MockUserRepo, *mocks.MockTokenRepo)
		wantStatus     int
		wantErrMessage string
		wantTokenSaved bool
	}{
		{
			name: "reissues a token for an unactivated account",
			body: api.ActivationTokenRequest{Email: "arda@example.com"},
			setupMocks: func(userRepo *mocks.MockUserRepo, tokenRepo *mocks.MockTokenRepo) {
				userRepo.On("GetByEmail", mock.Anything, "arda@example.com").
					Return(&domain.User{ID: 11, Email: "arda@example.com"}, nil)
				tokenRepo.On("DeleteAllForUser", mock.Anything, domain.UserActivationScope, 11).Return(nil)
				tokenRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Token")).Return(nil)
			},
			wantStatus:     http.StatusAccepted,
			wantTokenSaved: true,
		},
		{
			name: "unknown email gets the same response",
			body: api.ActivationTokenRequest{Email: "ghost@example.com"},
			setupMocks: func(userRepo *mocks.MockUserRepo, tokenRepo *mocks.MockTokenRepo) {
				userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").
					Return(nil, domain.ErrRecordNotFound)
			},
			wantStatus: http.StatusAccepted,
		},
		{
			name: "activated account gets the same response without a token",
			body: api.ActivationTokenRequest{Email: "arda@example.com"},
			setupMocks: func(userRepo *mocks.MockUserRepo, tokenRepo *mocks.MockTokenRepo) {
				userRepo.On("GetByEmail", mock.Anything, "arda@example.com").
					Return(&domain.User{ID: 11, Activated: true}, nil)
			},
			wantStatus: http.StatusAccepted,
		},
		{
			name:           "validation error - invalid email",
			body:           api.ActivationTokenRequest{Email: "not-an-email"},
			setupMocks:     func(*mocks.MockUserRepo, *mocks.MockTokenRepo) {},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := &mocks.MockUserRepo{}
			tokenRepo := &mocks.MockTokenRepo{}
			tt.setupMocks(userRepo, tokenRepo)

			app := newTestApplication(func(a *Application) {
				a.userRepo = userRepo
				a.tokenRepo = tokenRepo
			})

			w, r := executeRequest(t, http.MethodPost, "/tokens/activation", tt.body)

			app.CreateActivationToken(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("CreateActivationToken() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantTokenSaved {
				tokenRepo.AssertCalled(t, "Create", mock.Anything, mock.AnythingOfType("*domain.Token"))
			} else {
				tokenRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func TestActivateUser(t *testing.T) {
	validToken := "pImGQ8gmhg3-QuLMFp8SH1HbtLmLFWQOH6RaH0FnVZI"

	tests := []struct {
		name           string
		body           api.UserActivationRequest
		setupMocks     func(*mocks.MockUserRepo)
		wantStatus     int
		wantErrMessage string
	}{
		{
			name: "activates user",
			body: api.UserActivationRequest{Token: validToken},
			setupMocks: func(userRepo *mocks.MockUserRepo) {
				userRepo.On("GetByToken", mock.Anything, mock.Anything, domain.UserActivationScope).
					Return(&domain.User{ID: 11, Version: 1}, nil)
				userRepo.On("ActivateUser", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:           "validation error - short token",
			body:           api.UserActivationRequest{Token: "short"},
			setupMocks:     func(*mocks.MockUserRepo) {},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrTokenSize,
		},
		{
			name: "unknown or expired token",
			body: api.UserActivationRequest{Token: validToken},
			setupMocks: func(userRepo *mocks.MockUserRepo) {
				userRepo.On("GetByToken", mock.Anything, mock.Anything, domain.UserActivationScope).
					Return(nil, domain.ErrRecordNotFound)
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name: "already activated user",
			body: api.UserActivationRequest{Token: validToken},
			setupMocks: func(userRepo *mocks.MockUserRepo) {
				userRepo.On("GetByToken", mock.Anything, mock.Anything, domain.UserActivationScope).
					Return(&domain.User{ID: 11, Activated: true}, nil)
			},
			wantStatus:     http.StatusConflict,
			wantErrMessage: ErrEditConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := &mocks.MockUserRepo{}
			tt.setupMocks(userRepo)

			app := newTestApplication(func(a *Application) {
				a.userRepo = userRepo
			})

			w, r := executeRequest(t, http.MethodPut, "/users/activated", tt.body)

			app.ActivateUser(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("ActivateUser() status = %v, want %v", got, tt.wantStatus)
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func TestLogin(t *testing.T) {
	staffUser := domain.User{ID: 1, Email: "staff@example.com", Activated: true, IsStaff: true}
	if err := staffUser.Password.Set("Sup3rSecret!"); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name           string
		body           api.LoginRequest
		setupMocks     func(*mocks.MockUserRepo)
		wantStatus     int
		wantErrMessage string
		wantStaff      bool
	}{
		{
			name: "logs in and stores identity in the session",
			body: api.LoginRequest{Email: "staff@example.com", Password: "Sup3rSecret!"},
			setupMocks: func(userRepo *mocks.MockUserRepo) {
				userRepo.On("GetByEmail", mock.Anything, "staff@example.com").Return(&staffUser, nil)
			},
			wantStatus: http.StatusNoContent,
			wantStaff:  true,
		},
		{
			name: "wrong password",
			body: api.LoginRequest{Email: "staff@example.com", Password: "WrongPassword1!"},
			setupMocks: func(userRepo *mocks.MockUserRepo) {
				userRepo.On("GetByEmail", mock.Anything, "staff@example.com").Return(&staffUser, nil)
			},
			wantStatus:     http.StatusUnauthorized,
			wantErrMessage: ErrInvalidCredentials,
		},
		{
			name: "unknown email",
			body: api.LoginRequest{Email: "ghost@example.com", Password: "Sup3rSecret!"},
			setupMocks: func(userRepo *mocks.MockUserRepo) {
				userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").
					Return(nil, domain.ErrRecordNotFound)
			},
			wantStatus:     http.StatusUnauthorized,
			wantErrMessage: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := &mocks.MockUserRepo{}
			tt.setupMocks(userRepo)

			app := newTestApplication(func(a *Application) {
				a.userRepo = userRepo
			})

			w, r := executeRequest(t, http.MethodPost, "/sessions", tt.body)

			ctx, err := app.sessionManager.Load(r.Context(), "")
			if err != nil {
				t.Fatalf("Failed to load session: %v", err)
			}
			r = r.WithContext(ctx)

			app.Login(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("Login() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantStatus == http.StatusNoContent {
				if got := app.sessionManager.GetInt(ctx, SessionKeyUserId.String()); got != staffUser.ID {
					t.Errorf("session user ID = %v, want %v", got, staffUser.ID)
				}
				if got := app.sessionManager.GetBool(ctx, SessionKeyIsStaff.String()); got != tt.wantStaff {
					t.Errorf("session isStaff = %v, want %v", got, tt.wantStaff)
				}
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

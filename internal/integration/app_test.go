package integration_test

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/ardaguler/theatre-reservation-system/internal/app"
	"github.com/ardaguler/theatre-reservation-system/internal/domain"
	"github.com/ardaguler/theatre-reservation-system/internal/mailer"
	"github.com/ardaguler/theatre-reservation-system/internal/repository"
	appvalidator "github.com/ardaguler/theatre-reservation-system/internal/validator"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type TestApp struct {
	App    *app.Application
	DB     *pgxpool.Pool
	Mailer *mailer.MockMailer
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()
	mailer := mailer.NewMockMailer()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	sessionManager := app.NewSessionManager(redisClient)

	userRepo := repository.NewPostgresUserRepository(db)
	tokenRepo := repository.NewPostgresTokenRepository(db)
	hallRepo := repository.NewPostgresTheatreHallRepository(db)
	genreRepo := repository.NewPostgresGenreRepository(db)
	actorRepo := repository.NewPostgresActorRepository(db)
	playRepo := repository.NewPostgresPlayRepository(db)
	performanceRepo := repository.NewPostgresPerformanceRepository(db)
	reservationRepo := repository.NewPostgresReservationRepository(db)

	application := app.NewApp(
		cfg,
		logger,
		db,
		redisClient,
		validator,
		mailer,
		sessionManager,
		userRepo,
		tokenRepo,
		hallRepo,
		genreRepo,
		actorRepo,
		playRepo,
		performanceRepo,
		reservationRepo,
	)

	return &TestApp{
		App:    application,
		DB:     db,
		Mailer: mailer,
	}, nil
}

// authenticatedUserCookies creates a fresh member account directly in the
// database and logs it in through the sessions endpoint, returning the session
// cookies to attach to subsequent requests.
func (ta *TestApp) authenticatedUserCookies(t testing.TB) []*http.Cookie {
	t.Helper()

	user := ta.insertTestUser(t, false)

	return ta.login(t, user.Email)
}

// staffUserCookies is authenticatedUserCookies for a staff account.
func (ta *TestApp) staffUserCookies(t testing.TB) []*http.Cookie {
	t.Helper()

	user := ta.insertTestUser(t, true)

	return ta.login(t, user.Email)
}

// insertTestUser writes an activated user straight into the users table,
// bypassing the registration flow. Emails get a uuid suffix so the helpers can
// be called repeatedly within one suite without tripping the unique index.
func (ta *TestApp) insertTestUser(t testing.TB, isStaff bool) domain.User {
	t.Helper()

	user := domain.User{
		FirstName: TestUserFirstName,
		LastName:  TestUserLastName,
		Email:     fmt.Sprintf("user-%s@example.com", uuid.NewString()),
		Activated: true,
		IsStaff:   isStaff,
	}
	require.NoError(t, user.Password.Set(TestUserPassword))

	query := `
		INSERT INTO users (first_name, last_name, email, password_hash, activated, is_staff)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := ta.DB.QueryRow(
		context.Background(),
		query,
		user.FirstName,
		user.LastName,
		user.Email,
		user.Password.Hash,
		user.Activated,
		user.IsStaff,
	).Scan(&user.ID)
	require.NoError(t, err)

	return user
}

func (ta *TestApp) login(t testing.TB, email string) []*http.Cookie {
	t.Helper()

	body := fmt.Sprintf(`{"email": %q, "password": %q}`, email, TestUserPassword)

	req := httptest.NewRequest(http.MethodPost, "/sessions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	ta.App.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code, "login failed for test user")

	res := rec.Result()
	defer res.Body.Close()

	return res.Cookies()
}

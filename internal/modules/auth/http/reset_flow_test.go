package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xplorekamrul/rareviewit.com-sub001/internal/modules/auth/domain"
	"github.com/xplorekamrul/rareviewit.com-sub001/internal/platform/security"
)

// stubMailer запоминает отправленные коды вместо похода в SMTP.
type stubMailer struct {
	sentTo    []string
	sentCodes []string
	fail      bool
}

func (s *stubMailer) SendResetCode(_ context.Context, to, code string, _ time.Duration) error {
	if s.fail {
		return fmt.Errorf("smtp down")
	}
	s.sentTo = append(s.sentTo, to)
	s.sentCodes = append(s.sentCodes, code)
	return nil
}

func newTestModule(t *testing.T) (*Module, *stubMailer, *fiber.App) {
	t.Helper()
	m := NewModule("test-jwt-secret", "test-reset-secret", 15*time.Minute)
	mailer := &stubMailer{}
	m.mailer = mailer
	app := fiber.New()
	m.Register(app.Group("/api/v1"))
	return m, mailer, app
}

func createUser(t *testing.T, m *Module, email, password string) *domain.User {
	t.Helper()
	hash, err := security.HashPassword(password)
	require.NoError(t, err)
	u, err := m.userRepo.Create(domain.CreateUserParams{
		Email:        email,
		Username:     "testuser",
		FirstName:    "Test",
		LastName:     "User",
		Role:         domain.RoleUser,
		PasswordHash: hash,
	})
	require.NoError(t, err)
	return u
}

func postJSON(t *testing.T, app *fiber.App, path string, body any, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func resetCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == ResetTokenCookie {
			return c
		}
	}
	return nil
}

func TestForgotPasswordUniformResponse(t *testing.T) {
	m, mailer, app := newTestModule(t)
	createUser(t, m, "user@test.com", "oldpassword1")

	// существующий аккаунт: код создан и отправлен
	resp := postJSON(t, app, "/api/v1/forgot-password", fiber.Map{"email": "user@test.com"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, decodeBody(t, resp)["ok"])
	require.Len(t, mailer.sentCodes, 1)
	assert.Len(t, mailer.sentCodes[0], 6)

	rec, err := m.otpRepo.LatestEligible("user@test.com", time.Now().UTC())
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, 0, rec.Attempts)
	assert.Nil(t, rec.ConsumedAt)
	assert.WithinDuration(t, rec.CreatedAt.Add(15*time.Minute), rec.ExpiresAt, time.Second)

	// несуществующий: ответ неотличим, письма и записи нет
	resp = postJSON(t, app, "/api/v1/forgot-password", fiber.Map{"email": "ghost@test.com"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, decodeBody(t, resp)["ok"])
	assert.Len(t, mailer.sentCodes, 1)

	rec, err = m.otpRepo.LatestEligible("ghost@test.com", time.Now().UTC())
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestForgotPasswordNormalizesEmail(t *testing.T) {
	m, mailer, app := newTestModule(t)
	createUser(t, m, "user@test.com", "oldpassword1")

	resp := postJSON(t, app, "/api/v1/forgot-password", fiber.Map{"email": "  User@Test.Com "})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, mailer.sentTo, 1)
	assert.Equal(t, "user@test.com", mailer.sentTo[0])
}

func TestForgotPasswordMailFailureStillOK(t *testing.T) {
	m, mailer, app := newTestModule(t)
	createUser(t, m, "user@test.com", "oldpassword1")
	mailer.fail = true

	resp := postJSON(t, app, "/api/v1/forgot-password", fiber.Map{"email": "user@test.com"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, decodeBody(t, resp)["ok"])

	// запись в хранилище есть, код просто сгорит по TTL
	rec, err := m.otpRepo.LatestEligible("user@test.com", time.Now().UTC())
	require.NoError(t, err)
	assert.NotNil(t, rec)
}

func TestVerifyCodeHappyPathAndReplay(t *testing.T) {
	m, mailer, app := newTestModule(t)
	createUser(t, m, "user@test.com", "oldpassword1")

	postJSON(t, app, "/api/v1/forgot-password", fiber.Map{"email": "user@test.com"})
	require.Len(t, mailer.sentCodes, 1)
	code := mailer.sentCodes[0]

	// правильный код: ok, cookie выдан, запись погашена
	resp := postJSON(t, app, "/api/v1/forgot-password/verify", fiber.Map{"email": "user@test.com", "code": code})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, decodeBody(t, resp)["ok"])

	ck := resetCookie(t, resp)
	require.NotNil(t, ck)
	assert.NotEmpty(t, ck.Value)
	assert.True(t, ck.HttpOnly)

	rec, err := m.otpRepo.LatestEligible("user@test.com", time.Now().UTC())
	require.NoError(t, err)
	assert.Nil(t, rec, "consumed record must not be eligible again")

	// повтор того же кода: записи больше нет
	resp = postJSON(t, app, "/api/v1/forgot-password/verify", fiber.Map{"email": "user@test.com", "code": code})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "Invalid or expired code.", body["message"])
}

func TestVerifyCodeAttemptLimit(t *testing.T) {
	m, mailer, app := newTestModule(t)
	createUser(t, m, "user@test.com", "oldpassword1")

	postJSON(t, app, "/api/v1/forgot-password", fiber.Map{"email": "user@test.com"})
	code := mailer.sentCodes[0]
	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	for i := 1; i <= domain.MaxOTPAttempts; i++ {
		resp := postJSON(t, app, "/api/v1/forgot-password/verify", fiber.Map{"email": "user@test.com", "code": wrong})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Incorrect code.", decodeBody(t, resp)["message"], "attempt %d", i)
	}

	// шестая попытка: лимит исчерпан, даже правильный код не принимается,
	// и ответ неотличим от "записи нет"
	resp := postJSON(t, app, "/api/v1/forgot-password/verify", fiber.Map{"email": "user@test.com", "code": code})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid or expired code.", decodeBody(t, resp)["message"])
}

func TestVerifyCodeMostRecentWins(t *testing.T) {
	m, mailer, app := newTestModule(t)
	createUser(t, m, "user@test.com", "oldpassword1")

	postJSON(t, app, "/api/v1/forgot-password", fiber.Map{"email": "user@test.com"})
	postJSON(t, app, "/api/v1/forgot-password", fiber.Map{"email": "user@test.com"})
	require.Len(t, mailer.sentCodes, 2)
	first, second := mailer.sentCodes[0], mailer.sentCodes[1]
	if first == second {
		t.Skip("collision between generated codes")
	}

	// первый код сверяется с хешем второй записи и не подходит
	resp := postJSON(t, app, "/api/v1/forgot-password/verify", fiber.Map{"email": "user@test.com", "code": first})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Incorrect code.", decodeBody(t, resp)["message"])

	resp = postJSON(t, app, "/api/v1/forgot-password/verify", fiber.Map{"email": "user@test.com", "code": second})
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestResetPasswordWithoutCookie(t *testing.T) {
	_, _, app := newTestModule(t)

	resp := postJSON(t, app, "/api/v1/reset-password", fiber.Map{"password": "newpassword1", "confirm": "newpassword1"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "Reset session not found.", body["message"])
}

func TestResetPasswordTamperedToken(t *testing.T) {
	_, _, app := newTestModule(t)

	resp := postJSON(t, app, "/api/v1/reset-password",
		fiber.Map{"password": "newpassword1", "confirm": "newpassword1"},
		&http.Cookie{Name: ResetTokenCookie, Value: "bm9wZQ.bm9wZQ"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Reset session expired or invalid.", decodeBody(t, resp)["message"])
}

func TestResetPasswordFullFlow(t *testing.T) {
	m, mailer, app := newTestModule(t)
	u := createUser(t, m, "user@test.com", "oldpassword1")

	postJSON(t, app, "/api/v1/forgot-password", fiber.Map{"email": "user@test.com"})
	resp := postJSON(t, app, "/api/v1/forgot-password/verify",
		fiber.Map{"email": "user@test.com", "code": mailer.sentCodes[0]})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	ck := resetCookie(t, resp)
	require.NotNil(t, ck)

	resp = postJSON(t, app, "/api/v1/reset-password",
		fiber.Map{"password": "newpassword1", "confirm": "newpassword1"},
		&http.Cookie{Name: ResetTokenCookie, Value: ck.Value})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, decodeBody(t, resp)["ok"])

	// cookie затёрт в ответе
	cleared := resetCookie(t, resp)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)

	// пароль реально сменился
	fresh, err := m.userRepo.GetByID(u.ID)
	require.NoError(t, err)
	ok, err := security.CheckPassword(fresh.PasswordHash, "newpassword1")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, _ = security.CheckPassword(fresh.PasswordHash, "oldpassword1")
	assert.False(t, ok)
}

func TestResetPasswordMismatch(t *testing.T) {
	_, _, app := newTestModule(t)

	resp := postJSON(t, app, "/api/v1/reset-password", fiber.Map{"password": "newpassword1", "confirm": "different1"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Passwords do not match.", decodeBody(t, resp)["message"])
}

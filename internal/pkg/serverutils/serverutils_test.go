package serverutils

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestParseToken(t *testing.T) {
	userId := uuid.New()

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{name: "valid", token: signToken(t, testSecret, jwt.MapClaims{"user_id": userId.String()})},
		{name: "wrong secret", token: signToken(t, "other", jwt.MapClaims{"user_id": userId.String()}), wantErr: true},
		{name: "missing claim", token: signToken(t, testSecret, jwt.MapClaims{"sub": "x"}), wantErr: true},
		{name: "non uuid claim", token: signToken(t, testSecret, jwt.MapClaims{"user_id": "42"}), wantErr: true},
		{name: "garbage", token: "not-a-token", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseToken(testSecret, tt.token)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnauthorized)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userId, got)
		})
	}
}

func newTestApp(mw fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/", mw, func(ctx *fiber.Ctx) error {
		if id := CurrentUserId(ctx); id != nil {
			return ctx.SendString(id.String())
		}
		return ctx.SendString("anonymous")
	})
	return app
}

func TestJwtMiddlewares(t *testing.T) {
	userId := uuid.New()
	valid := "Bearer " + signToken(t, testSecret, jwt.MapClaims{"user_id": userId.String()})

	tests := []struct {
		name     string
		mw       fiber.Handler
		header   string
		wantCode int
		wantBody string
	}{
		{name: "required ok", mw: JwtMiddleware(testSecret), header: valid, wantCode: 200, wantBody: userId.String()},
		{name: "required missing", mw: JwtMiddleware(testSecret), wantCode: 401},
		{name: "required invalid", mw: JwtMiddleware(testSecret), header: "Bearer nope", wantCode: 401},
		{name: "optional anonymous", mw: OptionalJwtMiddleware(testSecret), wantCode: 200, wantBody: "anonymous"},
		{name: "optional ok", mw: OptionalJwtMiddleware(testSecret), header: valid, wantCode: 200, wantBody: userId.String()},
		{name: "optional invalid", mw: OptionalJwtMiddleware(testSecret), header: "Bearer nope", wantCode: 401},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := newTestApp(tt.mw).Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, resp.StatusCode)
			if tt.wantBody != "" {
				body, _ := io.ReadAll(resp.Body)
				assert.Equal(t, tt.wantBody, string(body))
			}
		})
	}
}

func TestValidateRequestAndErrorHandler(t *testing.T) {
	type request struct {
		Content string `json:"content" validate:"required"`
		Mood    *int   `json:"mood" validate:"omitempty,min=1,max=10"`
	}

	mood := 11
	err := ValidateRequest(request{Mood: &mood})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "is required", vErr.Fields["Content"])
	assert.Equal(t, "must be at most 10", vErr.Fields["Mood"])

	assert.NoError(t, ValidateRequest(request{Content: "ok"}))

	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/validation", func(ctx *fiber.Ctx) error { return err })
	app.Get("/notfound", func(ctx *fiber.Ctx) error { return fiber.NewError(fiber.StatusNotFound, "Note not found") })

	resp, _ := app.Test(httptest.NewRequest("GET", "/validation", nil))
	assert.Equal(t, 400, resp.StatusCode)

	resp, _ = app.Test(httptest.NewRequest("GET", "/notfound", nil))
	assert.Equal(t, 404, resp.StatusCode)
	var body Response[any]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, "Note not found", body.Message)
}

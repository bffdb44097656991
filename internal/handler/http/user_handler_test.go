package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	handler "github.com/mikiasgoitom/Storefront/internal/handler/http"
	dto "github.com/mikiasgoitom/Storefront/internal/handler/http/dto"
	mocks "github.com/mikiasgoitom/Storefront/internal/handler/http/mocks"
	"github.com/mikiasgoitom/Storefront/internal/infrastructure/validator"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validator.RegisterCustomValidators()
	os.Exit(m.Run())
}

func setupUserRouter(h handler.UserHandlerInterface) *gin.Engine {
	r := gin.New()
	r.POST("/register", h.CreateUser)
	r.POST("/login", h.Login)
	r.GET("/me", func(c *gin.Context) {
		if id := c.GetHeader("X-Test-User"); id != "" {
			c.Set("userID", id)
		}
		h.GetCurrentUser(c)
	})
	return r
}

func postJSON(r http.Handler, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateUser(t *testing.T) {
	h := handler.NewUserHandler(mocks.NewMockUserUsecase())
	r := setupUserRouter(h)

	w := postJSON(r, "/register", dto.CreateUserRequest{
		Name:     "Coco Liso",
		Email:    "coco@liso.com",
		Username: "cocoliso",
		Password: "criscris1",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "cocoliso")
	assert.NotContains(t, w.Body.String(), "criscris1")
}

func TestCreateUser_ValidationFail(t *testing.T) {
	h := handler.NewUserHandler(mocks.NewMockUserUsecase())
	r := setupUserRouter(h)

	w := postJSON(r, "/register", dto.CreateUserRequest{
		Email:    "coco@liso.com",
		Username: "cocoliso",
		Password: "criscris",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Field validation for 'Name' failed on the 'required' tag")
	assert.Contains(t, w.Body.String(), "Field validation for 'Password' failed on the 'containsdigit' tag")
}

func TestCreateUser_Conflict(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.ShouldConflict = true
	r := setupUserRouter(handler.NewUserHandler(mockUsecase))

	w := postJSON(r, "/register", dto.CreateUserRequest{
		Name:     "Coco Liso",
		Email:    "coco@liso.com",
		Username: "cocoliso",
		Password: "criscris1",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestCreateUser_InternalError(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.ShouldFailCreateUser = true
	r := setupUserRouter(handler.NewUserHandler(mockUsecase))

	w := postJSON(r, "/register", dto.CreateUserRequest{
		Name:     "Coco Liso",
		Email:    "coco@liso.com",
		Username: "cocoliso",
		Password: "criscris1",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "user creation failed")
}

func TestLogin(t *testing.T) {
	r := setupUserRouter(handler.NewUserHandler(mocks.NewMockUserUsecase()))

	w := postJSON(r, "/login", dto.LoginRequest{Email: "coco@liso.com", Password: "criscris1"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mock_access_token")
}

func TestLogin_Fail(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.ShouldFailLogin = true
	r := setupUserRouter(handler.NewUserHandler(mockUsecase))

	w := postJSON(r, "/login", dto.LoginRequest{Email: "coco@liso.com", Password: "wrong"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestGetCurrentUser(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupUserRouter(handler.NewUserHandler(mockUsecase))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me", nil)
	req.Header.Set("X-Test-User", mockUsecase.MockUser.ID)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cocoliso")
}

func TestGetCurrentUser_Unauthenticated(t *testing.T) {
	r := setupUserRouter(handler.NewUserHandler(mocks.NewMockUserUsecase()))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetCurrentUser_Deleted(t *testing.T) {
	r := setupUserRouter(handler.NewUserHandler(mocks.NewMockUserUsecase()))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me", nil)
	req.Header.Set("X-Test-User", "01234567-8901-2345-6789-012345678901")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "user not found")
}

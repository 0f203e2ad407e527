package users

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"shoplite/internal/api"
	"shoplite/internal/cache"
	"shoplite/internal/database"
	"shoplite/internal/handler"
	"shoplite/internal/model"
	"shoplite/internal/service"
	"shoplite/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword = service.HashPassword
	listUsers    = store.ListUsers
	getUserByID  = store.GetUserByID
	createUser   = store.CreateUser
	updateUser   = store.UpdateUser
	deleteUser   = store.DeleteUser
)

const (
	listCacheKey = "users:list"
	listCacheTTL = 30 * time.Second
)

func invalidateList(c echo.Context, cch cache.Cache) {
	if cch != nil {
		cch.Del(c.Request().Context(), listCacheKey)
	}
}

// normalizeEmail lowercases and syntax-checks an address, as the
// storage layer only enforces uniqueness.
func normalizeEmail(email string) (string, bool) {
	email = strings.ToLower(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return "", false
	}
	return email, true
}

// @Summary     List all users
// @Tags        users
// @Produce     json
// @Success     200 {array}  api.UserResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users [get]
func ListUsersHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if cch != nil {
			if cached, err := cch.Get(ctx, listCacheKey).Result(); err == nil {
				return c.JSONBlob(http.StatusOK, []byte(cached))
			}
		}

		users, err := listUsers(ctx, db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}

		resp := api.NewUserListResponse(users)
		if cch != nil {
			if body, err := json.Marshal(resp); err == nil {
				cch.Set(ctx, listCacheKey, body, listCacheTTL)
			}
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get a user by ID
// @Tags        users
// @Produce     json
// @Param       id   path      int  true  "使用者 ID"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/{id} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid user ID"})
		}
		user, err := getUserByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(handler.StatusFromError(err), api.ErrorResponse{Error: "user not found"})
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}

// @Summary     Create a new user
// @Description Email 會自動轉小寫；密碼為選填，僅儲存 bcrypt 哈希
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       user body api.CreateUserRequest true "使用者資料"
// @Success     201 {object} api.UserMutationResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users [post]
func CreateUserHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid JSON body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "name and email are required"})
		}

		email, ok := normalizeEmail(*req.Email)
		if !ok {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid email format"})
		}

		var hash string
		if req.Password != "" {
			var err error
			if hash, err = hashPassword(req.Password); err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to hash password"})
			}
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Name:         *req.Name,
			Email:        email,
			PasswordHash: hash,
		})
		if err != nil {
			if handler.StatusFromError(err) == http.StatusConflict {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Error: "email already exists"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}

		invalidateList(c, cch)
		return c.JSON(http.StatusCreated, api.UserMutationResponse{
			Message: "User created",
			User:    api.NewUserResponse(user),
		})
	}
}

// @Summary     Update a user by ID
// @Description 局部更新：僅變更請求中出現的欄位
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id   path int                   true "使用者 ID"
// @Param       user body api.UpdateUserRequest true "欲更新的欄位"
// @Success     200 {object} api.UserMutationResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/{id} [put]
func UpdateUserHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid user ID"})
		}

		var req api.UpdateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid JSON body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		}

		if req.Email != nil {
			email, ok := normalizeEmail(*req.Email)
			if !ok {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid email format"})
			}
			req.Email = &email
		}

		var hashPtr *string
		if req.Password != nil && *req.Password != "" {
			hash, err := hashPassword(*req.Password)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to hash password"})
			}
			hashPtr = &hash
		}

		user, err := updateUser(c.Request().Context(), db, id, req.Name, req.Email, hashPtr)
		if err != nil {
			switch handler.StatusFromError(err) {
			case http.StatusNotFound:
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
			case http.StatusConflict:
				return c.JSON(http.StatusConflict, api.ErrorResponse{Error: "email already exists"})
			default:
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
			}
		}

		invalidateList(c, cch)
		return c.JSON(http.StatusOK, api.UserMutationResponse{
			Message: "User updated",
			User:    api.NewUserResponse(user),
		})
	}
}

// @Summary     Delete a user by ID
// @Tags        users
// @Produce     json
// @Param       id   path      int  true  "使用者 ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/{id} [delete]
func DeleteUserHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid user ID"})
		}
		if err := deleteUser(c.Request().Context(), db, id); err != nil {
			if handler.StatusFromError(err) == http.StatusNotFound {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}
		invalidateList(c, cch)
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "User deleted"})
	}
}

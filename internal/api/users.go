package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"calc-service/internal/auth"
	"calc-service/internal/logger"
	"calc-service/internal/models"
	"calc-service/internal/schemas"
	"calc-service/internal/storage"

	"github.com/google/uuid"
)

type loginResponse struct {
	Message string    `json:"message"`
	UserID  uuid.UUID `json:"user_id"`
	Token   string    `json:"token"`
}

func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req schemas.UserCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("hashing password failed")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	user := models.User{Username: req.Username, Email: req.Email, PasswordHash: hash}
	if err := h.users.Create(r.Context(), &user); err != nil {
		switch {
		case errors.Is(err, storage.ErrUsernameTaken):
			writeError(w, http.StatusConflict, "Username already exists")
		case errors.Is(err, storage.ErrEmailTaken):
			writeError(w, http.StatusConflict, "Email already exists")
		default:
			log.Err(err).Msg("creating user failed")
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) loginUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req schemas.UserLogin
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.users.GetByUsername(r.Context(), req.Username)
	if err != nil || !auth.VerifyPassword(req.Password, user.PasswordHash) {
		writeError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		log.Err(err).Msg("issuing token failed")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Message: "Login successful",
		UserID:  user.ID,
		Token:   token,
	})
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	user, err := h.users.GetByID(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("fetching user failed")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	offset, limit := listParams(r)

	users, err := h.users.List(r.Context(), offset, limit)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("listing users failed")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if users == nil {
		users = []models.User{}
	}

	writeJSON(w, http.StatusOK, users)
}

// requireSelf checks that the authenticated subject matches id. Tokens only
// authorize changes to the account they were issued for.
func requireSelf(w http.ResponseWriter, r *http.Request, id uuid.UUID) bool {
	authID, ok := auth.UserIDFromContext(r.Context())
	if !ok || authID != id {
		writeError(w, http.StatusForbidden, "Cannot modify another user's account")
		return false
	}
	return true
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	if !requireSelf(w, r, id) {
		return
	}

	var req schemas.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.users.GetByID(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		log.Err(err).Msg("fetching user failed")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}

	if err := h.users.Update(r.Context(), &user); err != nil {
		switch {
		case errors.Is(err, storage.ErrUsernameTaken):
			writeError(w, http.StatusConflict, "Username already exists")
		case errors.Is(err, storage.ErrEmailTaken):
			writeError(w, http.StatusConflict, "Email already exists")
		default:
			log.Err(err).Msg("updating user failed")
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	if !requireSelf(w, r, id) {
		return
	}

	err = h.users.Delete(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("deleting user failed")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

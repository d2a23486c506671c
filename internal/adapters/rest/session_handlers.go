package rest

import (
	"encoding/json"
	"io"
	"net/http"

	"storefront-service/internal/contextkeys"
	"storefront-service/internal/core/domain"
	"storefront-service/internal/core/port"
	"storefront-service/internal/core/port/usecases_port"
)

type SessionHandler struct {
	session usecases_port.SessionUseCase
}

func NewSessionHandler(session usecases_port.SessionUseCase) *SessionHandler {
	return &SessionHandler{session: session}
}

func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, toSessionDTO(h.session.Current()))
}

func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	reqDTO, ok := h.decodeCredentials(w, r)
	if !ok {
		return
	}
	if reqDTO.Email == "" || reqDTO.Password == "" {
		WriteJSONError(w, http.StatusBadRequest, "Fields 'email' and 'password' are required")
		return
	}

	session, err := h.session.Login(r.Context(), reqDTO.Email, reqDTO.Password)
	h.respondSession(w, r, session, err)
}

func (h *SessionHandler) Register(w http.ResponseWriter, r *http.Request) {
	reqDTO, ok := h.decodeCredentials(w, r)
	if !ok {
		return
	}
	if reqDTO.Email == "" || reqDTO.Password == "" || reqDTO.Name == "" {
		WriteJSONError(w, http.StatusBadRequest, "Fields 'email', 'password' and 'name' are required")
		return
	}

	session, err := h.session.Register(r.Context(), reqDTO.Email, reqDTO.Password, reqDTO.Name)
	h.respondSession(w, r, session, err)
}

func (h *SessionHandler) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	session, err := h.session.LoginWithGoogle(r.Context())
	h.respondSession(w, r, session, err)
}

func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.session.Logout()
	RespondWithJSON(w, http.StatusOK, toSessionDTO(h.session.Current()))
}

func (h *SessionHandler) decodeCredentials(w http.ResponseWriter, r *http.Request) (CredentialsRequestDTO, bool) {
	var reqDTO CredentialsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		if err == io.EOF {
			WriteJSONError(w, http.StatusBadRequest, "Request body is empty")
			return reqDTO, false
		}
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return reqDTO, false
	}
	return reqDTO, true
}

func (h *SessionHandler) respondSession(w http.ResponseWriter, r *http.Request, session domain.Session, err error) {
	if err != nil {
		logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Session"})
		logger.Error("Authentication failed", err, nil)
		WriteJSONError(w, http.StatusUnauthorized, "authentication failed")
		return
	}
	RespondWithJSON(w, http.StatusOK, toSessionDTO(session))
}

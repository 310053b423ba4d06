package handlers

import (
	"errors"
	"net/http"

	"github.com/joaovmb/team-manager/middleware"
	"github.com/joaovmb/team-manager/services"
)

type ProfileHandler struct {
	profileService services.ProfileService
}

func NewProfileHandler(profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, err.Error())
		return
	}

	profile, err := h.profileService.Get(r.Context(), userID)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"profile": profile}, nil); err != nil {
		serverErrorResponse(w, err)
	}
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, err.Error())
		return
	}

	var input services.UpdateProfileInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, err)
		return
	}

	profile, err := h.profileService.Update(r.Context(), userID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"profile": profile}, nil); err != nil {
		serverErrorResponse(w, err)
	}
}

// UploadAvatar accepts a multipart form with an "avatar" file field. Size
// and MIME checks happen before the storage client is ever called.
func (h *ProfileHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, err.Error())
		return
	}

	// Parse slightly above the avatar ceiling so an oversized file fails
	// our own size check with a clear message instead of a parse error.
	if err := r.ParseMultipartForm(services.MaxAvatarSize + 1<<20); err != nil {
		badRequestResponse(w, errors.New("invalid multipart form"))
		return
	}
	file, header, err := r.FormFile("avatar")
	if err != nil {
		badRequestResponse(w, errors.New("avatar file is required"))
		return
	}
	defer file.Close()

	url, err := h.profileService.UploadAvatar(r.Context(), userID, services.AvatarUpload{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"avatar_url": url}, nil); err != nil {
		serverErrorResponse(w, err)
	}
}

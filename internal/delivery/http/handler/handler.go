package handler

import (
	"encoding/json"
	"net/http"

	"nextcare-api/internal/delivery/http/middleware"
	"nextcare-api/internal/domain/entity"
	"nextcare-api/pkg/response"
	"nextcare-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// decodeAndValidate writes the 400 response itself and reports whether the handler may continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v *validator.CustomValidator, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return false
	}

	if err := v.Validate(req); err != nil {
		response.ValidationError(w, v.FormatValidationErrors(err))
		return false
	}
	return true
}

func callerFromRequest(w http.ResponseWriter, r *http.Request) (entity.Identity, bool) {
	caller, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Not authorized, no token")
	}
	return caller, ok
}

// pathID parses the {id} route variable. A malformed id cannot match any
// record, so it is answered like a missing one.
func pathID(w http.ResponseWriter, r *http.Request, notFound string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.NotFound(w, notFound)
		return uuid.Nil, false
	}
	return id, true
}

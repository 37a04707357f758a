// Package person (handlers) contains all HTTP handlers for the Person
// resource.
//
// HANDLER PATTERN USED HERE — THE CLOSURE / FACTORY PATTERN:
// ────────────────────────────────────────────────────────────
// Go's router expects handler functions with the signature
//
//	func(http.ResponseWriter, *http.Request)
//
// That signature has no room for extra parameters like the controller.
// Each factory below accepts the controller once at registration time
// and returns a handler that closes over it:
//
//	router.HandleFunc("POST /api/persons", handler.Create(ctrl))
//
// The handlers translate HTTP into the controller's in-process contract:
// invalid-argument errors become 400, the not-found signal becomes 404,
// everything else stays 500.
package person

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aanand-mishra/persons-api/internal/person"
	"github.com/aanand-mishra/persons-api/internal/storage"
	"github.com/aanand-mishra/persons-api/internal/types"
	"github.com/aanand-mishra/persons-api/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// parseID extracts and converts the {id} path value. The id here only
// needs to be a well-formed integer — range validation (id > 0) belongs
// to the controller, which owns that rule.
func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, errors.New("invalid id: must be an integer")
	}
	return id, nil
}

// writeControllerError maps a controller error onto an HTTP response.
func writeControllerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, person.ErrInvalidID) || errors.Is(err, person.ErrInvalidPerson):
		response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
	case errors.Is(err, storage.ErrNotFound):
		response.WriteJSON(w, http.StatusNotFound, response.GeneralError(err))
	default:
		response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Create handles POST /api/persons
// Creates a person from the JSON request body. The id is caller-assigned
// and travels in the body; posting an existing id overwrites that record.
//
// Request body (JSON):
//
//	{ "id": 1, "name": "Alice", "email": "a@x.com", "phone": "555-0100" }
//
// Success response (201 Created):
//
//	{ "status": "Person created successfully" }
//
// Error responses:
//
//	400 Bad Request  — empty body, malformed JSON, or failed validation
//	500 Internal     — storage error
//
// ─────────────────────────────────────────────────────────────────────────────
func Create(ctrl *person.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a person")

		var p types.Person
		err := json.NewDecoder(r.Body).Decode(&p)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		// Struct-level validation: name is required, email (when given)
		// must be well-formed. The id is deliberately unconstrained here.
		if err := validator.New().Struct(p); err != nil {
			validateErrs := err.(validator.ValidationErrors)
			response.WriteJSON(w, http.StatusBadRequest,
				response.ValidationError(validateErrs))
			return
		}

		msg, err := ctrl.CreatePerson(p.ID, p.Name, p.Email, p.Phone)
		if err != nil {
			writeControllerError(w, err)
			return
		}

		slog.Info("person created", slog.Int64("id", p.ID))
		response.WriteJSON(w, http.StatusCreated, response.Response{
			Status: msg,
		})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetByID handles GET /api/persons/{id}
// Fetches a single person by id.
//
// Success response (200 OK):
//
//	{ "id": 1, "name": "Alice", "email": "a@x.com", "phone": "555-0100" }
//
// Error responses:
//
//	400 Bad Request  — id is not an integer or is <= 0
//	404 Not Found    — no person stored at that id
//
// ─────────────────────────────────────────────────────────────────────────────
func GetByID(ctrl *person.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}
		slog.Info("getting a person", slog.Int64("id", id))

		p, err := ctrl.GetPerson(id)
		if err != nil {
			writeControllerError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, p)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetList handles GET /api/persons
// Returns a JSON array of all persons, sorted by id.
// Returns an empty array [] (not null) when there are none.
// ─────────────────────────────────────────────────────────────────────────────
func GetList(ctrl *person.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting all persons")

		persons, err := ctrl.GetAllPersons()
		if err != nil {
			slog.Error("error getting persons", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, persons)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Update handles PUT /api/persons/{id}
// Replaces ALL fields of an existing person. The path id wins over any
// id in the body.
//
// Request body (JSON):
//
//	{ "name": "Alice Updated", "email": "new@x.com", "phone": "555-0199" }
//
// Success response (200 OK):
//
//	{ "status": "Person updated successfully" }
//
// Error responses:
//
//	400 Bad Request  — invalid id, empty body, or validation failure
//	404 Not Found    — no person stored at that id
//
// ─────────────────────────────────────────────────────────────────────────────
func Update(ctrl *person.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}
		slog.Info("updating a person", slog.Int64("id", id))

		var p types.Person
		err = json.NewDecoder(r.Body).Decode(&p)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}
		p.ID = id

		if err := validator.New().Struct(p); err != nil {
			validateErrs := err.(validator.ValidationErrors)
			response.WriteJSON(w, http.StatusBadRequest,
				response.ValidationError(validateErrs))
			return
		}

		msg, err := ctrl.UpdatePerson(p)
		if err != nil {
			writeControllerError(w, err)
			return
		}

		// "Person not found" is an ordinary controller outcome, but over
		// HTTP it still deserves a 404 rather than a 200.
		if msg == person.MsgNotFound {
			response.WriteJSON(w, http.StatusNotFound, response.Response{Status: msg})
			return
		}

		slog.Info("person updated", slog.Int64("id", id))
		response.WriteJSON(w, http.StatusOK, response.Response{Status: msg})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Delete handles DELETE /api/persons/{id}
// Removes a person record.
//
// Success response (200 OK):
//
//	{ "status": "Person deleted successfully" }
//
// Error responses:
//
//	400 Bad Request  — invalid id
//	404 Not Found    — no person stored at that id
//
// ─────────────────────────────────────────────────────────────────────────────
func Delete(ctrl *person.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}
		slog.Info("deleting a person", slog.Int64("id", id))

		msg, err := ctrl.DeletePerson(id)
		if err != nil {
			writeControllerError(w, err)
			return
		}

		if msg == person.MsgNotFound {
			response.WriteJSON(w, http.StatusNotFound, response.Response{Status: msg})
			return
		}

		slog.Info("person deleted", slog.Int64("id", id))
		response.WriteJSON(w, http.StatusOK, response.Response{Status: msg})
	}
}

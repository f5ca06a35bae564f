package handlers

// persons.go implements the /api/persons endpoints

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/callibrity/person-workshop/internal/domain"
	"github.com/callibrity/person-workshop/internal/problem"
	"github.com/callibrity/person-workshop/internal/service"
)

// PersonRequest is the body of create and update requests.
type PersonRequest struct {
	FirstName string `json:"firstName" example:"John"`
	LastName  string `json:"lastName" example:"Doe"`
}

// PersonPage is used for swaggo documentation as swaggo doesn't support generic types.
type PersonPage struct {
	Items         []service.PersonDto `json:"items"`
	Page          int                 `json:"page" example:"0"`
	Size          int                 `json:"size" example:"20"`
	TotalElements int64               `json:"totalElements" example:"42"`
	TotalPages    int                 `json:"totalPages" example:"3"`
}

// PersonHandler serves the person resource.
type PersonHandler struct {
	service service.PersonService
}

// NewPersonHandler creates a handler backed by svc.
func NewPersonHandler(svc service.PersonService) *PersonHandler {
	return &PersonHandler{service: svc}
}

// HandleCreatePerson godoc
//
//	@Summary		Create a person
//	@Description	Creates a person with a server generated id.
//	@Tags			Persons
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PersonRequest			true	"Person names"
//	@Success		200		{object}	service.PersonDto		"The created person"
//	@Failure		400		{object}	problem.ProblemDetail	"Malformed body or empty names"
//	@Failure		401		{object}	problem.ProblemDetail	"Missing or invalid bearer token"
//	@Failure		413		{object}	problem.ProblemDetail	"Request body too large"
//	@Failure		500		{object}	problem.ProblemDetail	"Internal error"
//	@Security		BearerAuth
//	@Router			/api/persons [post]
func (h *PersonHandler) HandleCreatePerson(w http.ResponseWriter, r *http.Request) {
	req, err := decodePersonRequest(r)
	if err != nil {
		problem.RespondWithErrorResponse(w, r, err)
		return
	}

	dto, err := h.service.CreatePerson(r.Context(), req.FirstName, req.LastName)
	if err != nil {
		problem.RespondWithErrorResponse(w, r, err)
		return
	}

	problem.RespondWithJSONPayload(w, http.StatusOK, dto)
}

// HandleRetrievePerson godoc
//
//	@Summary	Retrieve a person
//	@Tags		Persons
//	@Produce	json
//	@Param		id	path		string					true	"Person id"
//	@Success	200	{object}	service.PersonDto		"The person"
//	@Failure	401	{object}	problem.ProblemDetail	"Missing or invalid bearer token"
//	@Failure	404	{object}	problem.ProblemDetail	"No person with this id"
//	@Failure	500	{object}	problem.ProblemDetail	"Internal error"
//	@Security	BearerAuth
//	@Router		/api/persons/{id} [get]
func (h *PersonHandler) HandleRetrievePerson(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	dto, err := h.service.RetrievePersonByID(r.Context(), id)
	if err != nil {
		problem.RespondWithErrorResponse(w, r, err)
		return
	}

	problem.RespondWithJSONPayload(w, http.StatusOK, dto)
}

// HandleUpdatePerson godoc
//
//	@Summary		Update a person
//	@Description	Replaces both names of an existing person. The id never changes.
//	@Tags			Persons
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Person id"
//	@Param			request	body		PersonRequest			true	"New names"
//	@Success		200		{object}	service.PersonDto		"The updated person"
//	@Failure		400		{object}	problem.ProblemDetail	"Malformed body or empty names"
//	@Failure		401		{object}	problem.ProblemDetail	"Missing or invalid bearer token"
//	@Failure		404		{object}	problem.ProblemDetail	"No person with this id"
//	@Failure		500		{object}	problem.ProblemDetail	"Internal error"
//	@Security		BearerAuth
//	@Router			/api/persons/{id} [put]
func (h *PersonHandler) HandleUpdatePerson(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	req, err := decodePersonRequest(r)
	if err != nil {
		problem.RespondWithErrorResponse(w, r, err)
		return
	}

	dto, err := h.service.UpdatePerson(r.Context(), id, req.FirstName, req.LastName)
	if err != nil {
		problem.RespondWithErrorResponse(w, r, err)
		return
	}

	problem.RespondWithJSONPayload(w, http.StatusOK, dto)
}

// HandleDeletePerson godoc
//
//	@Summary		Delete a person
//	@Description	Deleting an id that does not exist succeeds.
//	@Tags			Persons
//	@Param			id	path	string	true	"Person id"
//	@Success		200	"Deleted"
//	@Failure		401	{object}	problem.ProblemDetail	"Missing or invalid bearer token"
//	@Failure		500	{object}	problem.ProblemDetail	"Internal error"
//	@Security		BearerAuth
//	@Router			/api/persons/{id} [delete]
func (h *PersonHandler) HandleDeletePerson(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeletePersonByID(r.Context(), id); err != nil {
		problem.RespondWithErrorResponse(w, r, err)
		return
	}

	problem.RespondWithStatusCodeOnly(w, http.StatusOK)
}

// HandleListPersons godoc
//
//	@Summary	List persons
//	@Tags		Persons
//	@Produce	json
//	@Param		page	query		int						false	"Zero based page number"	default(0)
//	@Param		size	query		int						false	"Page size (1-100)"			default(20)
//	@Param		sortBy	query		string					false	"Sort key"					Enums(firstName, lastName)	default(lastName)
//	@Param		sortDir	query		string					false	"Sort direction"			Enums(asc, desc)			default(asc)
//	@Success	200		{object}	PersonPage				"One page of persons"
//	@Failure	400		{object}	problem.ProblemDetail	"Unknown sort key or invalid paging"
//	@Failure	401		{object}	problem.ProblemDetail	"Missing or invalid bearer token"
//	@Failure	500		{object}	problem.ProblemDetail	"Internal error"
//	@Security	BearerAuth
//	@Router		/api/persons [get]
func (h *PersonHandler) HandleListPersons(w http.ResponseWriter, r *http.Request) {
	spec, err := pageSpecFromQuery(r)
	if err != nil {
		problem.RespondWithErrorResponse(w, r, err)
		return
	}

	page, err := h.service.ListPersons(r.Context(), spec)
	if err != nil {
		problem.RespondWithErrorResponse(w, r, err)
		return
	}

	problem.RespondWithJSONPayload(w, http.StatusOK, page)
}

// decodePersonRequest decodes exactly one JSON object with no unknown fields and checks
// the names before the service is called.
func decodePersonRequest(r *http.Request) (PersonRequest, error) {
	defer r.Body.Close()

	var req PersonRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return PersonRequest{}, problem.NewMalformedRequestError("Request body is required")
		}
		return PersonRequest{}, problem.WrapMalformedRequestError(err, "Request body is not a valid person JSON object")
	}
	if decoder.More() {
		return PersonRequest{}, problem.NewMalformedRequestError("Request body must contain a single JSON object")
	}

	if err := domain.ValidateNames(req.FirstName, req.LastName); err != nil {
		return PersonRequest{}, err
	}
	return req, nil
}

// pageSpecFromQuery reads page, size, sortBy and sortDir. Absent parameters keep their
// zero value so the service applies its defaults.
func pageSpecFromQuery(r *http.Request) (service.PageSpec, error) {
	query := r.URL.Query()
	spec := service.PageSpec{
		SortBy:  query.Get("sortBy"),
		SortDir: query.Get("sortDir"),
	}

	var violations []string
	if v := query.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			violations = append(violations, "page must be an integer")
		}
		spec.Page = n
	}
	if v := query.Get("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			violations = append(violations, "size must be an integer")
		} else if n == 0 {
			violations = append(violations, fmt.Sprintf("size must be between 1 and %d", service.MaxPageSize))
		}
		spec.Size = n
	}
	if len(violations) > 0 {
		return service.PageSpec{}, domain.NewValidationError(violations...)
	}
	return spec, nil
}

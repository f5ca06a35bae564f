package handlers

import (
	"log/slog"
	"net/http"

	"github.com/swaggo/swag"

	"github.com/callibrity/person-workshop/internal/logger"
	"github.com/callibrity/person-workshop/internal/problem"
)

// HandleOpenAPIDoc godoc
//
//	@Summary	OpenAPI document
//	@Tags		Common
//	@Produce	json
//	@Success	200	{object}	object	"OpenAPI 2.0 document"
//	@Router		/docs/openapi.json [get]
//
// The document is generated by swag from the handler annotations and registered by
// the docs package, which the server imports.
func HandleOpenAPIDoc(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		logger.ContextRequestLogger(r.Context()).Error("OpenAPI document not registered",
			slog.String("error", err.Error()),
		)
		problem.RespondWithErrorResponse(w, r, problem.WrapInternalError(err, "openapi document unavailable"))
		return
	}

	w.Header().Set("Content-Type", problem.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}

package handlers

import "net/http"

// HandleHello godoc
//
//	@Summary	Greeting
//	@Tags		Common
//	@Produce	plain
//	@Success	200	{string}	string	"Hello, Go!"
//	@Router		/api/hello [get]
func HandleHello(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Hello, Go!"))
}

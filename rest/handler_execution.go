package rest

import (
	"net/http"

	"github.com/gorilla/mux"
)

// HandleExecuteTask plays the task back before answering. Closing the
// request cancels the playback.
func (s *Server) HandleExecuteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := mux.Vars(r)["id"]
	if !ok {
		respondWithError(w, http.StatusBadRequest, "task id missing")
		return
	}
	respondOK(w, s.engine.Execute(r.Context(), id))
}

func (s *Server) HandleExecuteAction(w http.ResponseWriter, r *http.Request) {
	id, ok := mux.Vars(r)["id"]
	if !ok {
		respondWithError(w, http.StatusBadRequest, "action id missing")
		return
	}
	respondOK(w, s.engine.ExecuteAction(r.Context(), id))
}

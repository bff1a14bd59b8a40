package rest

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mohitkumar/playback/logger"
	"github.com/mohitkumar/playback/persistence"
	"go.uber.org/zap"
)

func (s *Server) HandleGetTask(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	task, err := s.taskDao.GetTask(id)
	if err != nil {
		respondStorageError(w, "task", id, err)
		return
	}
	respondOK(w, task)
}

func (s *Server) HandleGetAction(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	action, err := s.actionDao.GetAction(id)
	if err != nil {
		respondStorageError(w, "action", id, err)
		return
	}
	respondOK(w, action)
}

func respondStorageError(w http.ResponseWriter, entity string, id string, err error) {
	if errors.Is(err, persistence.ErrNotFound) {
		respondWithError(w, http.StatusNotFound, entity+" not found")
		return
	}
	logger.Error("error reading "+entity, zap.String("id", id), zap.Error(err))
	respondWithError(w, http.StatusInternalServerError, "error reading "+entity)
}

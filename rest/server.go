package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/mohitkumar/playback/engine"
	"github.com/mohitkumar/playback/logger"
	"github.com/mohitkumar/playback/persistence"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type Server struct {
	http.Server
	Port      int
	engine    *engine.Engine
	taskDao   persistence.TaskDao
	actionDao persistence.ActionDao
}

func NewServer(httpPort int, allowedOrigins []string, engine *engine.Engine, taskDao persistence.TaskDao, actionDao persistence.ActionDao) (*Server, error) {
	s := &Server{
		Server: http.Server{
			Addr:        fmt.Sprintf(":%d", httpPort),
			IdleTimeout: 2 * time.Second,
		},
		engine:    engine,
		taskDao:   taskDao,
		actionDao: actionDao,
		Port:      httpPort,
	}

	router := mux.NewRouter()
	router.HandleFunc("/execute-task/{id}", s.HandleExecuteTask).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/execute-action/{id}", s.HandleExecuteAction).Methods(http.MethodGet, http.MethodPost)

	router.HandleFunc("/task/{id}", s.HandleGetTask).Methods(http.MethodGet)
	router.HandleFunc("/action/{id}", s.HandleGetAction).Methods(http.MethodGet)

	router.Use(loggingMiddleware)
	s.Handler = cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"*"},
	}).Handler(router)
	return s, nil
}

func (s *Server) Start() error {
	logger.Info("starting http server on", zap.Int("port", s.Port))
	if err := s.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Stop() error {
	logger.Info("stopping http server")
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := s.Shutdown(ctx)
	if err != nil {
		logger.Error("error shutting down http server", zap.Error(err))
	}
	return nil
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Info(r.RequestURI, zap.String("method", r.Method))
		next.ServeHTTP(w, r)
	})
}

func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondOK(w http.ResponseWriter, payload any) {
	respondWithJSON(w, http.StatusOK, payload)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
)

type StatusResponse struct {
	Settings    GameSettings `json:"settings"`
	Config      Config       `json:"config"`
	Board       string       `json:"board"`
	NextPlayer  string       `json:"next_player"`
	Status      string       `json:"status"`
	LastMove    int          `json:"last_move"`
	WinningLine []int        `json:"winning_line"`
	Moves       []MoveRecord `json:"moves"`
	MatchWins   ScoreEntry   `json:"match_wins"`
	MatchTarget int          `json:"match_target"`
	MatchWinner string       `json:"match_winner,omitempty"`
	Notices     []string     `json:"notices,omitempty"`
}

type scoreboardResponse struct {
	Scoreboard      Scoreboard `json:"scoreboard"`
	MatchScoreboard Scoreboard `json:"match_scoreboard"`
}

type cacheStatusResponse struct {
	Count    int     `json:"count"`
	Capacity int     `json:"capacity"`
	Usage    float64 `json:"usage"`
}

type hintResponse struct {
	Index int `json:"index"`
	Row   int `json:"row"`
	Col   int `json:"col"`
}

func main() {
	controller := NewGameController(DefaultGameSettings())
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx.Done())

	var snapshotOnce sync.Once
	snapshotOnShutdown := func(reason string) {
		snapshotOnce.Do(func() {
			log.Printf("[backend] saving session snapshot on %s", reason)
			controller.SaveSessionSnapshot()
		})
	}
	defer func() {
		if recovered := recover(); recovered != nil {
			log.Printf("[backend] panic recovered in main: %v", recovered)
			snapshotOnShutdown("panic")
		}
	}()
	defer snapshotOnShutdown("exit")

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Get("/api/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Post("/api/start", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Settings *GameSettings `json:"settings"`
		}
		if r.ContentLength > 0 {
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
				return
			}
		}
		if payload.Settings != nil {
			controller.Reset(*payload.Settings)
		}
		controller.StartRound()
		status := controllerStatus(controller)
		writeJSON(w, http.StatusOK, status)
		hub.broadcastReset <- resetPayload{
			Board:      status.Board,
			NextPlayer: status.NextPlayer,
			Status:     status.Status,
		}
	})

	r.Post("/api/move", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Index *int `json:"index"`
			Row   *int `json:"row"`
			Col   *int `json:"col"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		idx := -1
		switch {
		case payload.Index != nil:
			idx = *payload.Index
		case payload.Row != nil && payload.Col != nil:
			idx = *payload.Row*3 + *payload.Col
		}
		applied, errMsg := controller.ApplyHumanMove(idx)
		if !applied {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": errMsg})
			return
		}
		status := controllerStatus(controller)
		writeJSON(w, http.StatusOK, status)
		hub.broadcastStatus <- status
		if status.Status != StatusRunning.String() {
			if history := controller.SessionHistory(); len(history) > 0 {
				hub.broadcastHistory <- historyPayload{History: history[len(history)-1:]}
			}
		}
	})

	r.Get("/api/hint", func(w http.ResponseWriter, r *http.Request) {
		idx, ok := controller.Hint()
		if !ok {
			writeJSON(w, http.StatusConflict, map[string]string{"error": "no hint available"})
			return
		}
		writeJSON(w, http.StatusOK, hintResponse{Index: idx, Row: idx / 3, Col: idx % 3})
	})

	r.Post("/api/settings", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Settings *GameSettings `json:"settings"`
			Config   *Config       `json:"config"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		if payload.Config != nil {
			configStore.Update(*payload.Config)
		}
		if payload.Settings != nil {
			controller.UpdateSettings(*payload.Settings)
		}
		hub.broadcastSettings <- settingsPayload{
			Settings: controller.Settings(),
			Config:   GetConfig(),
		}
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Get("/api/scoreboard", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, scoreboardResponse{
			Scoreboard:      controller.Scoreboard(),
			MatchScoreboard: controller.MatchScoreboard(),
		})
	})
	r.Delete("/api/scoreboard", func(w http.ResponseWriter, r *http.Request) {
		controller.ResetScoreboard()
		writeJSON(w, http.StatusOK, map[string]any{"reset": true})
	})

	r.Get("/api/history", func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		history := controller.SessionHistory()
		if limit > 0 && len(history) > limit {
			history = history[len(history)-limit:]
		}
		writeJSON(w, http.StatusOK, historyPayload{History: history})
	})

	r.Get("/api/badges", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, controller.Badges())
	})

	r.Get("/api/stats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, controller.Stats())
	})

	r.Get("/api/achievements", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string][]string{"achievements": controller.Achievements()})
	})

	r.Get("/api/cache/minimax", func(w http.ResponseWriter, r *http.Request) {
		count := controller.CacheLen()
		capacity := controller.CacheCapacity()
		usage := 0.0
		if capacity > 0 {
			usage = float64(count) / float64(capacity)
		}
		writeJSON(w, http.StatusOK, cacheStatusResponse{Count: count, Capacity: capacity, Usage: usage})
	})
	r.Delete("/api/cache/minimax", func(w http.ResponseWriter, r *http.Request) {
		controller.ClearCache()
		writeJSON(w, http.StatusOK, map[string]any{"cleared": true})
	})

	r.Get("/ws/", func(w http.ResponseWriter, r *http.Request) {
		serveWS(hub, controller, w, r)
	})

	server := &http.Server{
		Addr:    ":8080",
		Handler: r,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	log.Println("backend listening on :8080")
	var runErr error
	select {
	case <-sigCtx.Done():
		log.Printf("[backend] shutdown signal received: %v", sigCtx.Err())
	case err, ok := <-serverErrCh:
		if ok {
			runErr = err
			log.Printf("[backend] server error: %v", err)
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("[backend] graceful shutdown failed: %v", err)
		if closeErr := server.Close(); closeErr != nil && !errors.Is(closeErr, http.ErrServerClosed) {
			log.Printf("[backend] forced close failed: %v", closeErr)
		}
	}

	cancel()
	snapshotOnShutdown("shutdown")
	if runErr != nil {
		log.Printf("[backend] exiting after server error: %v", runErr)
	}
}

func serveWS(hub *Hub, controller *GameController, w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	client := &Client{send: make(chan []byte, 16)}
	hub.Register(client)

	client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(controllerStatus(controller))})

	go func() {
		defer conn.Close()
		if err := writeWSWithHeartbeat(conn, client.send); err != nil {
			return
		}
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			hub.Unregister(client)
			return
		}
		var msg wsMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			continue
		}
		switch msg.Type {
		case "request_status":
			client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(controllerStatus(controller))})
		}
	}
}

func controllerStatus(controller *GameController) StatusResponse {
	state := controller.State()
	settings := controller.Settings()
	return StatusResponse{
		Settings:    settings,
		Config:      GetConfig(),
		Board:       state.Board.Key(),
		NextPlayer:  state.ToMove.String(),
		Status:      state.Status.String(),
		LastMove:    state.LastMove,
		WinningLine: state.WinningLine,
		Moves:       controller.Moves().All(),
		MatchWins:   controller.MatchWins(),
		MatchTarget: settings.MatchTarget(),
		MatchWinner: controller.MatchWinner(),
		Notices:     controller.Notices(),
	}
}

func mustMarshal(v any) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

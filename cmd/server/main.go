package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/schedsim/schedsim/scheduler"
	"github.com/spf13/viper"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins for development
		return true
	},
}

// Client message types
type ClientMessage struct {
	Type      string             `json:"type"`
	Algorithm string             `json:"algorithm,omitempty"`
	Request   *scheduler.Request `json:"request,omitempty"`
}

// Server message types
type ServerMessage struct {
	Type    string             `json:"type"`
	Segment *scheduler.Segment `json:"segment,omitempty"`
	Result  *scheduler.Result  `json:"result,omitempty"`
	Error   string             `json:"error,omitempty"`
}

type serverConfig struct {
	Port           int
	PlaybackTickMs int
}

func loadConfig() serverConfig {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./")
	viper.SetDefault("port", 8080)
	viper.SetDefault("playback.tick_ms", 250)
	if err := viper.ReadInConfig(); err != nil {
		log.Printf("No config file found, using defaults (%v)", err)
	}
	return serverConfig{
		Port:           viper.GetInt("port"),
		PlaybackTickMs: viper.GetInt("playback.tick_ms"),
	}
}

// safeConn wraps a WebSocket connection with a mutex to prevent concurrent writes
type safeConn struct {
	*websocket.Conn
	writeMu sync.Mutex
}

func (sc *safeConn) WriteJSON(v interface{}) error {
	sc.writeMu.Lock()
	defer sc.writeMu.Unlock()
	return sc.Conn.WriteJSON(v)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// handleSchedule builds the handler for one algorithm's entry point. Every
// request runs its own simulator, so concurrent requests share no state.
func handleSchedule(algo scheduler.Algorithm) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req scheduler.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			observeSchedule(algo, "rejected", 0, 0)
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request format"})
			return
		}

		start := time.Now()
		result, err := scheduler.Schedule(algo, req)
		if err != nil {
			observeSchedule(algo, "rejected", time.Since(start).Seconds(), 0)
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		observeSchedule(algo, "ok", time.Since(start).Seconds(), len(req.Processes))
		writeJSON(w, http.StatusOK, result)
	}
}

// playbackLoop streams one segment per tick so the client can animate its
// Gantt chart, then sends the full result.
func playbackLoop(conn *safeConn, result *scheduler.Result, tick time.Duration, stopCh chan struct{}) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for _, seg := range result.Segments {
		select {
		case <-stopCh:
			log.Println("Playback stopped")
			return
		case <-ticker.C:
			seg := seg
			if err := conn.WriteJSON(ServerMessage{Type: "segment", Segment: &seg}); err != nil {
				log.Printf("Error sending segment: %v", err)
				return
			}
		}
	}

	if err := conn.WriteJSON(ServerMessage{Type: "result", Result: result}); err != nil {
		log.Printf("Error sending result: %v", err)
	}
}

func handleWebSocket(tick time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("Error upgrading connection: %v", err)
			return
		}
		defer conn.Close()

		// Wrap connection with mutex for safe concurrent writes
		safeConn := &safeConn{Conn: conn}

		log.Println("Client connected")

		var stopCh chan struct{}
		stopPlayback := func() {
			if stopCh != nil {
				close(stopCh)
				stopCh = nil
			}
		}
		defer stopPlayback()

		for {
			var msg ClientMessage
			err := conn.ReadJSON(&msg)
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("Error reading message: %v", err)
				}
				break
			}

			log.Printf("Received command: %s", msg.Type)

			switch msg.Type {
			case "run":
				stopPlayback()
				if msg.Request == nil {
					safeConn.WriteJSON(ServerMessage{Type: "error", Error: "missing request"})
					continue
				}
				algo, err := scheduler.ParseAlgorithm(msg.Algorithm)
				if err != nil {
					safeConn.WriteJSON(ServerMessage{Type: "error", Error: err.Error()})
					continue
				}
				result, err := scheduler.Schedule(algo, *msg.Request)
				if err != nil {
					safeConn.WriteJSON(ServerMessage{Type: "error", Error: err.Error()})
					continue
				}
				log.Printf("Streaming %s playback: %d segments", algo, len(result.Segments))
				stopCh = make(chan struct{})
				go playbackLoop(safeConn, result, tick, stopCh)

			case "stop":
				stopPlayback()
			}
		}

		log.Println("Client disconnected")
	}
}

func quitHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("🛑 Shutdown requested via /quitquitquit")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "Server shutting down...")

	go func() {
		time.Sleep(100 * time.Millisecond)
		log.Println("👋 Server stopped")
		os.Exit(0)
	}()
}

func main() {
	config := loadConfig()
	initPrometheusMetrics()

	http.HandleFunc("/schedule/fcfs", handleSchedule(scheduler.AlgorithmFCFS))
	http.HandleFunc("/schedule/sjf", handleSchedule(scheduler.AlgorithmSJF))
	http.HandleFunc("/schedule/priority", handleSchedule(scheduler.AlgorithmPriority))
	http.HandleFunc("/schedule/rr", handleSchedule(scheduler.AlgorithmRoundRobin))
	http.HandleFunc("/ws", handleWebSocket(time.Duration(config.PlaybackTickMs)*time.Millisecond))
	http.Handle("/metrics", promhttp.Handler())
	http.HandleFunc("/quitquitquit", quitHandler)

	addr := fmt.Sprintf(":%d", config.Port)
	log.Printf("🚀 Server starting on http://localhost%s", addr)
	log.Printf("📡 Scheduling endpoints: POST http://localhost%s/schedule/{fcfs,sjf,priority,rr}", addr)
	log.Printf("🛑 Shutdown endpoint: http://localhost%s/quitquitquit", addr)
	log.Fatal(http.ListenAndServe(addr, nil))
}

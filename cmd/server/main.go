package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/Awani-555/DrowsyDriver/internal/config"
	"github.com/Awani-555/DrowsyDriver/internal/database"
	"github.com/Awani-555/DrowsyDriver/internal/detector"
	"github.com/Awani-555/DrowsyDriver/internal/handlers"
	"github.com/Awani-555/DrowsyDriver/internal/models"
	"github.com/Awani-555/DrowsyDriver/internal/services"
	"github.com/Awani-555/DrowsyDriver/pkg/pb"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"google.golang.org/grpc"
)

var (
	grpcServer *grpc.Server
	httpServer *http.Server

	pipeline    *services.Pipeline
	detectorCfg detector.Config

	wsClients = &WebSocketClients{
		clients: make(map[string]*WebSocketClient),
	}
)

type WebSocketClient struct {
	conn     *websocket.Conn
	clientID string
	// Each connection owns its own detection state machine.
	det  *detector.Detector
	send chan interface{}

	mu     sync.Mutex
	closed bool
}

// enqueue hands a message to the write pump. Messages are dropped when
// the client is gone or its buffer is full; enqueueing never blocks
// and never races with shutdown closing the channel.
func (c *WebSocketClient) enqueue(msg interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.send <- msg:
	default:
	}
}

// shutdown closes the send channel exactly once.
func (c *WebSocketClient) shutdown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

type WebSocketClients struct {
	mu      sync.RWMutex
	clients map[string]*WebSocketClient
	count   int32
}

type WebSocketMessage struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	ClientID  string      `json:"client_id,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

func main() {
	cfg := config.LoadConfig()

	httpPort := flag.String("http-port", cfg.HTTPPort, "HTTP port")
	grpcPort := flag.String("grpc-port", cfg.GRPCPort, "gRPC port")
	landmarkURL := flag.String("landmark-url", cfg.LandmarkServiceURL, "Landmark service URL")
	flag.Parse()

	log.Println("Starting DrowsyDriver backend...")
	log.Printf("gRPC port: %s", *grpcPort)
	log.Printf("HTTP port: %s", *httpPort)
	log.Printf("Landmark service: %s", *landmarkURL)
	log.Printf("Environment: %s", cfg.Environment)
	log.Printf("EAR threshold: %.3f, consecutive frames: %d", cfg.EARThreshold, cfg.ConsecutiveFrames)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	// Postgres
	if err := database.InitDB(cfg.DSN()); err != nil {
		log.Printf("Database unavailable (%s): %v", cfg.DSNForLog(), err)
		log.Println("Continuing without persistence")
	} else {
		defer database.CloseDB()
	}

	// Python landmark sidecar
	landmarkClient, err := services.NewLandmarkClient(*landmarkURL)
	if err != nil {
		log.Printf("Landmark service unavailable: %v", err)
		log.Println("Continuing without landmark service (for testing)")
	}
	if landmarkClient != nil {
		defer landmarkClient.Close()
	}

	var landmarkSource services.LandmarkSource
	if landmarkClient != nil {
		landmarkSource = landmarkClient
	}
	pipeline = services.NewPipeline(landmarkSource, services.GetMetrics())

	detectorCfg = detector.Config{
		EARThreshold:      cfg.EARThreshold,
		ConsecutiveFrames: cfg.ConsecutiveFrames,
		WindowSize:        cfg.WindowSize,
	}
	det, err := detector.New(detectorCfg)
	if err != nil {
		log.Fatalf("invalid detection config: %v", err)
	}

	handlers.SetCORSOrigin(cfg.CORSOrigins)

	// gRPC server
	grpcServer = grpc.NewServer(
		grpc.MaxRecvMsgSize(cfg.MaxMessageSizeMB*1024*1024),
		grpc.MaxSendMsgSize(cfg.MaxMessageSizeMB*1024*1024),
	)
	grpcHandler := handlers.NewGRPCHandler(det, pipeline, landmarkClient, cfg)
	pb.RegisterDrowsinessDetectionServer(grpcServer, grpcHandler)

	var healthy func() bool
	if landmarkClient != nil {
		healthy = landmarkClient.HealthCheck
	}
	detectionHandler := handlers.NewDetectionHandler(det, pipeline, healthy)

	log.Println("Starting gRPC server...")
	go startGRPCServer(*grpcPort)

	log.Println("Starting HTTP server...")
	go startHTTPServer(*httpPort, detectionHandler)

	<-done
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stopped := make(chan struct{})
	go func() {
		log.Println("Stopping gRPC server...")
		grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		log.Println("Stopped")
	case <-shutdownCtx.Done():
		log.Println("Forced shutdown")
		grpcServer.Stop()
	}

	if httpServer != nil {
		httpShutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		log.Println("Stopping HTTP server...")
		if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
			log.Printf("Error shutting down HTTP server: %v", err)
		} else {
			log.Println("HTTP server gracefully stopped")
		}
	}
	log.Println("Closing WebSocket connections...")
	closeAllWebSocketConnections()
	log.Println("All WebSocket connections closed...")

	log.Println("Goodbye!")
}

func startGRPCServer(grpcPort string) {
	port := strings.TrimPrefix(grpcPort, ":")

	lis, err := net.Listen("tcp", ":"+port)
	if err != nil {
		log.Fatalf("failed to listen on gRPC port %v", err)
	}

	log.Printf("gRPC server listening on port %s", port)

	if err := grpcServer.Serve(lis); err != nil {
		log.Fatalf("failed to serve gRPC server %v", err)
	}
}

func startHTTPServer(httpPort string, detection *handlers.DetectionHandler) {
	port := strings.TrimPrefix(httpPort, ":")

	mux := http.NewServeMux()

	mux.HandleFunc("/ws", handleWebSocket)

	mux.HandleFunc("/api/process-frame", detection.ProcessFrame)
	mux.HandleFunc("/api/config", detection.Config)
	mux.HandleFunc("/api/stats", detection.Stats)
	mux.HandleFunc("/api/reset", detection.Reset)
	mux.HandleFunc("/api/health", detection.Health)
	mux.HandleFunc("/api/metrics", detection.Metrics)

	mux.HandleFunc("/api/register", handlers.Register)
	mux.HandleFunc("/api/login", handlers.Login)
	mux.HandleFunc("/api/logout", handlers.Logout)
	mux.HandleFunc("/api/me", handlers.GetCurrentUser)
	mux.HandleFunc("/api/sessions/create", handlers.CreateSession)
	mux.HandleFunc("/api/sessions", handlers.GetSessions)
	mux.HandleFunc("/api/sessions/end", handlers.EndSession)
	mux.HandleFunc("/api/sessions/delete", handlers.DeleteSession)
	mux.HandleFunc("/api/events/save", handlers.SaveEvent)
	mux.HandleFunc("/api/events", handlers.GetEvents)

	httpServer = &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("HTTP server listening on port %s", port)
	log.Printf("WebSocket:  ws://localhost:%s/ws", port)
	log.Printf("REST API:   http://localhost:%s/api/*", port)

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to serve HTTP: %v", err)
	}
}

func handleWebSocket(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	clientID := r.URL.Query().Get("clientId")
	if clientID == "" {
		clientID = "client-" + uuid.NewString()
	}

	det, err := detector.New(detectorCfg)
	if err != nil {
		log.Printf("detector init failed for %s: %v", clientID, err)
		conn.Close()
		return
	}

	log.Printf("WebSocket client connected: %s", clientID)

	client := &WebSocketClient{
		conn:     conn,
		clientID: clientID,
		det:      det,
		send:     make(chan interface{}, 256),
	}

	wsClients.mu.Lock()
	wsClients.clients[clientID] = client
	wsClients.mu.Unlock()
	atomic.AddInt32(&wsClients.count, 1)

	metrics := services.GetMetrics()
	metrics.IncrementWebSocketConnections()
	metrics.SetActiveClients(int(atomic.LoadInt32(&wsClients.count)))

	defer func() {
		wsClients.mu.Lock()
		delete(wsClients.clients, clientID)
		wsClients.mu.Unlock()
		atomic.AddInt32(&wsClients.count, -1)

		metrics.DecrementWebSocketConnections()
		metrics.SetActiveClients(int(atomic.LoadInt32(&wsClients.count)))

		conn.Close()
		log.Printf("WebSocket client disconnected: %s", clientID)
	}()

	go writePump(client)

	welcomeMsg := WebSocketMessage{
		Type:      "WELCOME",
		ClientID:  clientID,
		Timestamp: time.Now().Unix(),
		Payload: map[string]interface{}{
			"message": "Connected to DrowsyDriver Detection Server",
			"version": "1.0",
		},
	}
	client.enqueue(welcomeMsg)

	readPump(client)
}

// readPump consumes client messages until the connection drops.
func readPump(client *WebSocketClient) {
	defer func() {
		client.conn.Close()
	}()

	metrics := services.GetMetrics()

	client.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	client.conn.SetPongHandler(func(string) error {
		client.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		var msg WebSocketMessage
		err := client.conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error for %s: %v", client.clientID, err)
				metrics.IncrementWebSocketErrors()
			}
			break
		}

		metrics.IncrementWebSocketMessages()

		switch msg.Type {
		case "PING":
			client.enqueue(WebSocketMessage{
				Type:      "PONG",
				ClientID:  client.clientID,
				Timestamp: time.Now().Unix(),
			})

		case "FRAME":
			handleFrameMessage(client, msg)

		case "RESET":
			client.det.Reset()
			client.enqueue(WebSocketMessage{
				Type:      "RESET_DONE",
				ClientID:  client.clientID,
				Timestamp: time.Now().Unix(),
			})

		default:
			log.Printf("Unknown message type: %s", msg.Type)
		}
	}
}

// handleFrameMessage runs one base64-encoded frame through the
// detection pipeline against this connection's own detector.
func handleFrameMessage(client *WebSocketClient, msg WebSocketMessage) {
	raw, err := json.Marshal(msg.Payload)
	if err != nil {
		sendWSError(client, "invalid payload")
		return
	}

	var frame models.VideoFrame
	if err := json.Unmarshal(raw, &frame); err != nil || frame.Frame == "" {
		sendWSError(client, "invalid frame payload")
		return
	}

	frameData, err := base64.StdEncoding.DecodeString(frame.Frame)
	if err != nil {
		sendWSError(client, "invalid base64 frame")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, err := pipeline.ProcessFrame(ctx, client.det, frameData, frame.SequenceNumber)
	if err != nil {
		log.Printf("Frame processing failed for %s: %v", client.clientID, err)
		sendWSError(client, "frame processing failed")
		return
	}

	client.enqueue(WebSocketMessage{
		Type:      "DETECTION",
		ClientID:  client.clientID,
		Timestamp: time.Now().Unix(),
		Payload:   resp,
	})
}

func sendWSError(client *WebSocketClient, message string) {
	services.GetMetrics().IncrementWebSocketErrors()
	client.enqueue(WebSocketMessage{
		Type:      "ERROR",
		ClientID:  client.clientID,
		Timestamp: time.Now().Unix(),
		Payload: map[string]interface{}{
			"error": message,
		},
	})
}

// writePump drains the send channel into the WebSocket connection.
func writePump(client *WebSocketClient) {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		client.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-client.send:
			client.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))

			if !ok {
				client.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := client.conn.WriteJSON(msg); err != nil {
				return
			}

		case <-ticker.C:
			client.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func closeAllWebSocketConnections() {
	wsClients.mu.Lock()
	defer wsClients.mu.Unlock()

	for clientID, client := range wsClients.clients {
		client.shutdown()
		client.conn.Close()
		log.Printf("Closed connection for client: %s", clientID)
	}
	wsClients.clients = make(map[string]*WebSocketClient)
}

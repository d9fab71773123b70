package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"sync"
	"time"

	"github.com/Awani-555/DrowsyDriver/internal/database"
	"github.com/Awani-555/DrowsyDriver/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"golang.org/x/crypto/bcrypt"
)

const uniqueViolation = "23505"

var (
	sessionsMu   sync.RWMutex
	userSessions = make(map[string]int)

	allowedOrigin = "*"
)

// SetCORSOrigin configures the origin echoed in CORS headers.
func SetCORSOrigin(origin string) {
	allowedOrigin = origin
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func validateEmail(email string) bool {
	return emailRegex.MatchString(email) && len(email) <= 255
}

func validatePassword(password string) bool {
	if len(password) < 8 || len(password) > 72 {
		return false
	}
	hasLetter := false
	hasNumber := false
	for _, char := range password {
		if (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') {
			hasLetter = true
		}
		if char >= '0' && char <= '9' {
			hasNumber = true
		}
	}
	return hasLetter && hasNumber
}

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

func validateUsername(username string) bool {
	if len(username) < 3 || len(username) > 30 {
		return false
	}
	return usernameRegex.MatchString(username)
}

func getUserIDFromCookie(r *http.Request) (int, bool) {
	cookie, err := r.Cookie("session_id")
	if err != nil {
		return 0, false
	}
	sessionsMu.RLock()
	userID, exists := userSessions[cookie.Value]
	sessionsMu.RUnlock()
	return userID, exists
}

func enableCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
	w.Header().Set("Access-Control-Allow-Credentials", "true")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Cookie")
	w.Header().Set("Content-Type", "application/json")
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == constraint
}

func Register(w http.ResponseWriter, r *http.Request) {
	enableCORS(w)
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" || req.Username == "" {
		http.Error(w, "All fields are required", http.StatusBadRequest)
		return
	}

	if !validateEmail(req.Email) {
		http.Error(w, "Invalid email format", http.StatusBadRequest)
		return
	}

	if !validatePassword(req.Password) {
		http.Error(w, "Password must be 8-72 characters with at least one letter and one number", http.StatusBadRequest)
		return
	}

	if !validateUsername(req.Username) {
		http.Error(w, "Username must be 3-30 characters, alphanumeric and underscore only", http.StatusBadRequest)
		return
	}

	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		log.Printf("Password hashing error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var userID int
	err = database.DB.QueryRowContext(ctx,
		"INSERT INTO users (email, username, password_hash) VALUES ($1, $2, $3) RETURNING id",
		req.Email, req.Username, passwordHash,
	).Scan(&userID)
	if err != nil {
		log.Printf("Registration failed: %v", err)
		if isUniqueViolation(err, "users_username_key") {
			http.Error(w, "Username already taken", http.StatusConflict)
		} else if isUniqueViolation(err, "users_email_key") {
			http.Error(w, "Email already registered", http.StatusConflict)
		} else {
			http.Error(w, "User already exists", http.StatusConflict)
		}
		return
	}

	user := models.User{
		ID:        userID,
		Email:     req.Email,
		Username:  req.Username,
		CreatedAt: time.Now(),
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(user)
	log.Printf("User registered: %s", req.Email)
}

func Login(w http.ResponseWriter, r *http.Request) {
	enableCORS(w)
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	if !validateEmail(req.Email) {
		http.Error(w, "Invalid email format", http.StatusBadRequest)
		return
	}

	var user models.User
	var storedHash string
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	err := database.DB.QueryRowContext(ctx,
		"SELECT id, email, username, password_hash, created_at FROM users WHERE email = $1",
		req.Email,
	).Scan(&user.ID, &user.Email, &user.Username, &storedHash, &user.CreatedAt)

	if err == sql.ErrNoRows {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	} else if err != nil {
		log.Printf("Login error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(req.Password))
	if err != nil {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	sessionsMu.Lock()
	for sessionKey, userID := range userSessions {
		if userID == user.ID {
			delete(userSessions, sessionKey)
		}
	}
	if oldCookie, err := r.Cookie("session_id"); err == nil {
		delete(userSessions, oldCookie.Value)
	}
	sessionID := uuid.NewString()
	userSessions[sessionID] = user.ID
	sessionsMu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     "session_id",
		Value:    sessionID,
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	json.NewEncoder(w).Encode(user)
	log.Printf("User logged in: %s", req.Email)
}

func Logout(w http.ResponseWriter, r *http.Request) {
	enableCORS(w)
	if cookie, err := r.Cookie("session_id"); err == nil {
		sessionsMu.Lock()
		delete(userSessions, cookie.Value)
		sessionsMu.Unlock()
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "session_id",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Logged out"))
}

func GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	enableCORS(w)
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, exists := getUserIDFromCookie(r)
	if !exists {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var user models.User
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	err := database.DB.QueryRowContext(ctx,
		"SELECT id, email, username, created_at FROM users WHERE id = $1",
		userID,
	).Scan(&user.ID, &user.Email, &user.Username, &user.CreatedAt)

	if err == sql.ErrNoRows {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Printf("GetCurrentUser error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(user)
}

func CreateSession(w http.ResponseWriter, r *http.Request) {
	enableCORS(w)
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, exists := getUserIDFromCookie(r)
	if !exists {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var sessionID int
	err := database.DB.QueryRowContext(ctx,
		"INSERT INTO sessions (user_id, notes) VALUES ($1, $2) RETURNING id",
		userID, req.Notes,
	).Scan(&sessionID)
	if err != nil {
		log.Printf("CreateSession error: %v", err)
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	session := models.Session{
		ID:        sessionID,
		UserID:    userID,
		StartTime: time.Now(),
		Status:    "active",
		Notes:     req.Notes,
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(session)
	log.Printf("Session created: ID=%d for user %d", sessionID, userID)
}

func GetSessions(w http.ResponseWriter, r *http.Request) {
	enableCORS(w)
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, exists := getUserIDFromCookie(r)
	if !exists {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	rows, err := database.DB.QueryContext(r.Context(),
		"SELECT id, user_id, start_time, end_time, status, notes FROM sessions WHERE user_id = $1 ORDER BY start_time DESC",
		userID,
	)
	if err != nil {
		http.Error(w, "Failed to fetch sessions", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		var s models.Session
		var endTime sql.NullTime
		if err := rows.Scan(&s.ID, &s.UserID, &s.StartTime, &endTime, &s.Status, &s.Notes); err != nil {
			continue
		}
		if endTime.Valid {
			s.EndTime = &endTime.Time
		}
		sessions = append(sessions, s)
	}

	json.NewEncoder(w).Encode(sessions)
}

func EndSession(w http.ResponseWriter, r *http.Request) {
	enableCORS(w)
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, exists := getUserIDFromCookie(r)
	if !exists {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	sessionID, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, "Invalid session ID", http.StatusBadRequest)
		return
	}

	result, err := database.DB.ExecContext(r.Context(),
		"UPDATE sessions SET end_time = $1, status = 'completed' WHERE id = $2 AND user_id = $3",
		time.Now(), sessionID, userID,
	)
	if err != nil {
		log.Printf("Failed to end session: %v", err)
		http.Error(w, "Failed to end session", http.StatusInternalServerError)
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		http.Error(w, "Session not found or does not belong to user", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Session ended"))
	log.Printf("Session ended: %d", sessionID)
}

func DeleteSession(w http.ResponseWriter, r *http.Request) {
	enableCORS(w)
	if r.Method != http.MethodDelete && r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, exists := getUserIDFromCookie(r)
	if !exists {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	sessionID, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, "Invalid session ID", http.StatusBadRequest)
		return
	}

	if !sessionBelongsToUser(w, r, sessionID, userID) {
		return
	}

	// Events first, then the session itself.
	if _, err := database.DB.ExecContext(r.Context(), "DELETE FROM events WHERE session_id = $1", sessionID); err != nil {
		log.Printf("Failed to delete events: %v", err)
	}

	result, err := database.DB.ExecContext(r.Context(),
		"DELETE FROM sessions WHERE id = $1 AND user_id = $2", sessionID, userID)
	if err != nil {
		log.Printf("Failed to delete session: %v", err)
		http.Error(w, "Failed to delete session", http.StatusInternalServerError)
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Session deleted"))
	log.Printf("Session deleted: %d", sessionID)
}

// sessionBelongsToUser writes the error response itself when the check
// fails.
func sessionBelongsToUser(w http.ResponseWriter, r *http.Request, sessionID, userID int) bool {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var sessionUserID int
	err := database.DB.QueryRowContext(ctx,
		"SELECT user_id FROM sessions WHERE id = $1",
		sessionID,
	).Scan(&sessionUserID)
	if err == sql.ErrNoRows {
		http.Error(w, "Session not found", http.StatusNotFound)
		return false
	} else if err != nil {
		log.Printf("Failed to verify session: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return false
	}
	if sessionUserID != userID {
		http.Error(w, "Unauthorized: session does not belong to user", http.StatusForbidden)
		return false
	}
	return true
}

func SaveEvent(w http.ResponseWriter, r *http.Request) {
	enableCORS(w)
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, exists := getUserIDFromCookie(r)
	if !exists {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if !sessionBelongsToUser(w, r, req.SessionID, userID) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var eventID int
	err := database.DB.QueryRowContext(ctx,
		"INSERT INTO events (session_id, ear_score, is_drowsy, closed_frames) VALUES ($1, $2, $3, $4) RETURNING id",
		req.SessionID, req.EARScore, req.IsDrowsy, req.ClosedFrames,
	).Scan(&eventID)
	if err != nil {
		log.Printf("Failed to save event: %v", err)
		http.Error(w, "Failed to save event", http.StatusInternalServerError)
		return
	}

	event := models.Event{
		ID:           eventID,
		SessionID:    req.SessionID,
		EARScore:     req.EARScore,
		IsDrowsy:     req.IsDrowsy,
		ClosedFrames: req.ClosedFrames,
		Timestamp:    time.Now(),
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(event)
}

func GetEvents(w http.ResponseWriter, r *http.Request) {
	enableCORS(w)
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, exists := getUserIDFromCookie(r)
	if !exists {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	sessionID, err := strconv.Atoi(r.URL.Query().Get("session_id"))
	if err != nil {
		http.Error(w, "Invalid session ID", http.StatusBadRequest)
		return
	}

	if !sessionBelongsToUser(w, r, sessionID, userID) {
		return
	}

	rows, err := database.DB.QueryContext(r.Context(),
		"SELECT id, session_id, ear_score, is_drowsy, closed_frames, created_at FROM events WHERE session_id = $1 ORDER BY created_at DESC",
		sessionID,
	)
	if err != nil {
		http.Error(w, "Failed to fetch events", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.SessionID, &e.EARScore, &e.IsDrowsy, &e.ClosedFrames, &e.Timestamp); err != nil {
			continue
		}
		events = append(events, e)
	}

	json.NewEncoder(w).Encode(events)
}

// RecordAlertEvent persists a drowsiness alert fired while processing
// a frame bound to a session. Best effort: a storage failure must not
// fail the frame.
func RecordAlertEvent(ctx context.Context, sessionID int, earScore float64, closedFrames int) {
	if database.DB == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := database.DB.ExecContext(ctx,
		"INSERT INTO events (session_id, ear_score, is_drowsy, closed_frames) VALUES ($1, $2, TRUE, $3)",
		sessionID, earScore, closedFrames,
	)
	if err != nil {
		log.Printf("Failed to record alert event for session %d: %v", sessionID, err)
	}
}

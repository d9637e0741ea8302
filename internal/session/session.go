// Package session holds the authenticated identity for a running client.
// Login always mints a fresh student record (there is no password and no
// email uniqueness check), logout clears the session pointer only, and
// every protected action resolves the pointer before touching records.
package session

import (
	"errors"
	"fmt"
	"time"

	"hostelhelper/backend/internal/config"
	"hostelhelper/backend/internal/models"
	"hostelhelper/backend/internal/storage"

	jwt "github.com/golang-jwt/jwt/v5"
)

// ErrNoSession means the token was valid but the session pointer is gone
// (logged out or expired); callers must send the client back to auth.
var ErrNoSession = errors.New("no active session")

// ProfilePatch carries the editable profile fields. Empty strings mean
// "leave unchanged".
type ProfilePatch struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	RoomNumber  string `json:"roomNumber"`
	HostelBlock string `json:"hostelBlock"`
}

// Provider mediates logins, logouts and profile edits.
type Provider struct {
	Storage storage.Storage
	secret  []byte
}

// NewProvider creates a session provider signing tokens with secret.
func NewProvider(s storage.Storage, secret string) *Provider {
	return &Provider{Storage: s, secret: []byte(secret)}
}

// Login creates a brand-new identity for the supplied email/name, makes it
// the current session and returns it with a signed token. Missing fields
// are rejected before any state mutation.
func (p *Provider) Login(email, name string) (*models.Student, string, error) {
	if email == "" || name == "" {
		return nil, "", fmt.Errorf("email and name are required")
	}

	student := &models.Student{
		Name:       name,
		Email:      email,
		Complaints: []string{},
	}
	if err := p.Storage.SaveStudent(student); err != nil {
		return nil, "", err
	}
	if err := p.Storage.SetCurrentStudent(student); err != nil {
		return nil, "", err
	}

	token, err := p.generateToken(student)
	if err != nil {
		return nil, "", err
	}
	return student, token, nil
}

// Logout clears the session pointer. The student record is retained.
func (p *Provider) Logout(studentID string) error {
	return p.Storage.ClearCurrentStudent(studentID)
}

// Current resolves the session pointer for a student id.
func (p *Provider) Current(studentID string) (*models.Student, error) {
	student, err := p.Storage.GetCurrentStudent(studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrNoSession
	}
	return student, nil
}

// UpdateProfile merges the non-empty patch fields into the current identity
// and persists both the record and the session pointer.
func (p *Provider) UpdateProfile(studentID string, patch ProfilePatch) (*models.Student, error) {
	student, err := p.Current(studentID)
	if err != nil {
		return nil, err
	}

	if patch.Name != "" {
		student.Name = patch.Name
	}
	if patch.Email != "" {
		student.Email = patch.Email
	}
	if patch.RoomNumber != "" {
		student.RoomNumber = patch.RoomNumber
	}
	if patch.HostelBlock != "" {
		student.HostelBlock = patch.HostelBlock
	}

	if err := p.Storage.SaveStudent(student); err != nil {
		return nil, err
	}
	if err := p.Storage.SetCurrentStudent(student); err != nil {
		return nil, err
	}
	return student, nil
}

// generateToken signs a JWT carrying the student id and admin flag.
func (p *Provider) generateToken(student *models.Student) (string, error) {
	claims := jwt.MapClaims{
		"student_id": student.ID,
		"is_admin":   student.IsAdmin,
		"exp":        time.Now().Add(config.TokenLifetime).Unix(),
		"iss":        config.TokenIssuer,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

// ParseToken validates a bearer token and returns the student id and admin
// flag embedded in it.
func (p *Provider) ParseToken(tokenString string) (string, bool, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil {
		return "", false, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", false, errors.New("invalid token claims")
	}
	studentID, _ := claims["student_id"].(string)
	if studentID == "" {
		return "", false, errors.New("token carries no student id")
	}
	isAdmin, _ := claims["is_admin"].(bool)
	return studentID, isAdmin, nil
}

package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/xurshid686/student-track/internal/common"
	"github.com/xurshid686/student-track/internal/server/models"
)

func teacherUser() *models.User {
	return &models.User{
		ID:       "u-100",
		Username: "teacher",
		Email:    "teacher@school.edu",
		Role:     models.RoleTeacher,
		Name:     "John Doe",
	}
}

func studentUser() *models.User {
	return &models.User{
		ID:        "u-200",
		Username:  "student",
		Email:     "student@school.edu",
		Role:      models.RoleStudent,
		Name:      "Emma Johnson",
		StudentID: "S001",
	}
}

func TestIssueAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	m := NewTokenManager([]byte("super-secret"), 7*24*time.Hour)

	tok, err := m.Issue(teacherUser())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.UserID != "u-100" || claims.Username != "teacher" || claims.Role != models.RoleTeacher || claims.Name != "John Doe" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
	if claims.StudentID != "" {
		t.Fatalf("teacher token must not carry a studentId, got %q", claims.StudentID)
	}
}

func TestIssue_StudentCarriesStudentID(t *testing.T) {
	t.Parallel()

	m := NewTokenManager([]byte("super-secret"), time.Hour)

	tok, err := m.Issue(studentUser())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.StudentID != "S001" {
		t.Fatalf("studentId mismatch: got %q want %q", claims.StudentID, "S001")
	}
}

func TestVerify_TamperedToken(t *testing.T) {
	t.Parallel()

	m := NewTokenManager([]byte("super-secret"), time.Hour)

	tok, err := m.Issue(teacherUser())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// Flip one byte in the payload segment; the signature no longer matches.
	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", tok)
	}
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	claims, err := m.Verify(tampered)
	if err == nil {
		t.Fatalf("expected error for tampered token, got claims %+v", claims)
	}
	if claims != nil {
		t.Fatalf("expected nil claims for tampered token, got %+v", claims)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenManager([]byte("right-secret"), time.Hour)
	verifier := NewTokenManager([]byte("wrong-secret"), time.Hour)

	tok, err := issuer.Issue(teacherUser())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = verifier.Verify(tok)
	if !errors.Is(err, common.ErrTokenSignature) {
		t.Fatalf("expected common.ErrTokenSignature, got %v", err)
	}
}

func TestVerify_MalformedString(t *testing.T) {
	t.Parallel()

	m := NewTokenManager([]byte("k"), time.Hour)

	_, err := m.Verify("not.a.jwt")
	if !errors.Is(err, common.ErrTokenMalformed) {
		t.Fatalf("expected common.ErrTokenMalformed, got %v", err)
	}
}

func TestVerify_ExpiryBoundary(t *testing.T) {
	t.Parallel()

	issued := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	m := NewTokenManager([]byte("super-secret"), 7*24*time.Hour)
	m.now = func() time.Time { return issued }

	tok, err := m.Issue(teacherUser())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// Still valid one hour before the deadline.
	m.now = func() time.Time { return issued.Add(6*24*time.Hour + 23*time.Hour) }
	if _, err := m.Verify(tok); err != nil {
		t.Fatalf("token must be valid at issuance+6d23h, got %v", err)
	}

	// Invalid one second past the deadline.
	m.now = func() time.Time { return issued.Add(7*24*time.Hour + time.Second) }
	_, err = m.Verify(tok)
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("expected common.ErrTokenExpired at issuance+7d1s, got %v", err)
	}
}

func TestVerify_NeverPanicsOnGarbage(t *testing.T) {
	t.Parallel()

	m := NewTokenManager([]byte("k"), time.Hour)

	for _, s := range []string{"", ".", "..", "a.b", "ey.ey.ey.ey", strings.Repeat("x", 4096)} {
		claims, err := m.Verify(s)
		if err == nil || claims != nil {
			t.Fatalf("expected failure for %q, got claims=%v err=%v", s, claims, err)
		}
	}
}

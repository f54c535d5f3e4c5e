package pasetotoken

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestManager(t *testing.T, mode Mode) *Manager {
	t.Helper()

	var keys Keys
	switch mode {
	case ModeLocal:
		keys = NewLocalKeys()
	case ModePublic:
		keys = NewPublicKeys()
	}

	mgr, err := New(Config{
		Mode:       mode,
		Issuer:     "glowdesk-test",
		Audience:   "glowdesk-api",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 30 * 24 * time.Hour,
	}, keys)
	if err != nil {
		t.Fatalf("New manager failed: %v", err)
	}
	return mgr
}

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	for _, mode := range []Mode{ModeLocal, ModePublic} {
		mgr := newTestManager(t, mode)

		salonID := uuid.New()
		sessionID := uuid.New()

		token, err := mgr.IssueAccess(salonID, &sessionID)
		if err != nil {
			t.Fatalf("%s: IssueAccess failed: %v", mode, err)
		}

		claims, err := mgr.Verify(token)
		if err != nil {
			t.Fatalf("%s: Verify failed: %v", mode, err)
		}
		if claims.Type != TokenTypeAccess {
			t.Errorf("%s: Type = %s, want access", mode, claims.Type)
		}
		if claims.SalonID != salonID {
			t.Errorf("%s: SalonID = %s, want %s", mode, claims.SalonID, salonID)
		}
		if claims.SessionID == nil || *claims.SessionID != sessionID {
			t.Errorf("%s: SessionID = %v, want %s", mode, claims.SessionID, sessionID)
		}
		if claims.IsExpired() {
			t.Errorf("%s: fresh token reported expired", mode)
		}
	}
}

func TestRefreshTokenCarriesType(t *testing.T) {
	mgr := newTestManager(t, ModeLocal)
	salonID := uuid.New()

	token, err := mgr.IssueRefresh(salonID, nil)
	if err != nil {
		t.Fatalf("IssueRefresh failed: %v", err)
	}

	claims, err := mgr.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if claims.Type != TokenTypeRefresh {
		t.Errorf("Type = %s, want refresh", claims.Type)
	}
	if claims.SessionID != nil {
		t.Errorf("SessionID = %v, want nil", claims.SessionID)
	}
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	issuer := newTestManager(t, ModeLocal)
	verifier := newTestManager(t, ModeLocal)

	token, err := issuer.IssueAccess(uuid.New(), nil)
	if err != nil {
		t.Fatalf("IssueAccess failed: %v", err)
	}

	if _, err := verifier.Verify(token); err == nil {
		t.Error("token encrypted with a different key must not verify")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	mgr := newTestManager(t, ModeLocal)
	for _, tok := range []string{"", "v4.local.garbage", "not-a-token"} {
		if _, err := mgr.Verify(tok); err == nil {
			t.Errorf("Verify(%q) must fail", tok)
		}
	}
}

package player_test

import (
	"testing"

	"github.com/apogee-dev/firewallz/internal/college"
	"github.com/apogee-dev/firewallz/internal/models"
	"github.com/apogee-dev/firewallz/internal/player"
	"github.com/apogee-dev/firewallz/internal/testdb"
	"github.com/apogee-dev/firewallz/pkg/apperrors"
	"github.com/google/uuid"
)

func basePlayer(c *college.College) *player.Player {
	return &player.Player{
		AccountID:   uuid.New(),
		Name:        "Rohan Mehta",
		Email:       "rohan@test.edu",
		PhoneNumber: "9876543210",
		Gender:      models.GenderMale,
		CollegeID:   c.ID,
		Status:      models.PlayerStatusUnconfirmed,
	}
}

func TestValidate(t *testing.T) {
	db := testdb.Open(t)
	c := &college.College{Name: "BITS Pilani"}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed college: %v", err)
	}

	cases := []struct {
		name    string
		mutate  func(*player.Player)
		wantErr bool
	}{
		{"valid", func(p *player.Player) {}, false},
		{"mixed gender rejected for players", func(p *player.Player) { p.Gender = models.GenderMixed }, true},
		{"unknown gender", func(p *player.Player) { p.Gender = "Other" }, true},
		{"unknown status", func(p *player.Player) { p.Status = "pending" }, true},
		{"negative discount", func(p *player.Player) { p.PcrDiscount = -1 }, true},
		{"discount above cap", func(p *player.Player) { p.PcrDiscount = 501 }, true},
		{"discount at cap", func(p *player.Player) { p.PcrDiscount = 500 }, false},
		{"firewallz verification before confirmation", func(p *player.Player) { p.VerifiedByFirewallz = true }, true},
		{"controls verification before firewallz", func(p *player.Player) {
			p.Status = models.PlayerStatusConfirmed
			p.VerifiedByControls = true
		}, true},
		{"full verification ladder", func(p *player.Player) {
			p.Status = models.PlayerStatusConfirmed
			p.VerifiedByFirewallz = true
			p.VerifiedByControls = true
		}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := basePlayer(c)
			tc.mutate(p)
			err := player.Validate(db, p, 5)
			if tc.wantErr && !apperrors.IsValidation(err) {
				t.Errorf("got %v, want validation error", err)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestCountEventsEmpty(t *testing.T) {
	db := testdb.Open(t)
	count, err := player.CountEvents(db, uuid.New())
	if err != nil {
		t.Fatalf("CountEvents: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}

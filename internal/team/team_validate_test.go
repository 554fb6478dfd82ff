package team_test

import (
	"testing"

	"github.com/apogee-dev/firewallz/internal/college"
	"github.com/apogee-dev/firewallz/internal/models"
	"github.com/apogee-dev/firewallz/internal/player"
	"github.com/apogee-dev/firewallz/internal/sport"
	"github.com/apogee-dev/firewallz/internal/team"
	"github.com/apogee-dev/firewallz/internal/testdb"
	"github.com/apogee-dev/firewallz/pkg/apperrors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fixture struct {
	db      *gorm.DB
	college *college.College
	sport   *sport.Sport
	team    *team.Team
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testdb.Open(t)

	c := &college.College{Name: "BITS Pilani"}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed college: %v", err)
	}
	sp := &sport.Sport{Name: "Cricket", Gender: models.GenderMale, IsActive: true, MinPlayers: 11, MaxPlayers: 15}
	if err := db.Create(sp).Error; err != nil {
		t.Fatalf("seed sport: %v", err)
	}
	tm := &team.Team{TeamCode: "BITS-CRICKET-MALE", CollegeID: c.ID, SportID: sp.ID}
	if err := db.Create(tm).Error; err != nil {
		t.Fatalf("seed team: %v", err)
	}
	return &fixture{db: db, college: c, sport: sp, team: tm}
}

func (f *fixture) seedPlayer(t *testing.T, name, gender string, collegeID uuid.UUID) *player.Player {
	t.Helper()
	p := &player.Player{
		AccountID: uuid.New(),
		Name:      name,
		Email:     name + "@test.edu",
		Gender:    gender,
		CollegeID: collegeID,
		Status:    models.PlayerStatusUnconfirmed,
	}
	if err := f.db.Create(p).Error; err != nil {
		t.Fatalf("seed player %s: %v", name, err)
	}
	return p
}

func TestValidateCaptainIntegrity(t *testing.T) {
	f := newFixture(t)
	p := f.seedPlayer(t, "captain", models.GenderMale, f.college.ID)

	// Captains must hold a membership row in the team.
	f.team.CaptainID = &p.ID
	if err := team.Validate(f.db, f.team); !apperrors.IsValidation(err) {
		t.Fatalf("captain without membership: got %v, want validation", err)
	}

	tp := &team.TeamPlayer{PlayerID: p.ID, TeamID: f.team.ID, Status: models.TeamPlayerUnapproved}
	if err := f.db.Create(tp).Error; err != nil {
		t.Fatalf("seed team player: %v", err)
	}
	if err := team.Validate(f.db, f.team); err != nil {
		t.Fatalf("captain with membership: %v", err)
	}

	// The college representative can never captain a team.
	if err := f.db.Model(f.college).Update("representative_id", p.ID).Error; err != nil {
		t.Fatalf("set representative: %v", err)
	}
	if err := team.Validate(f.db, f.team); !apperrors.IsValidation(err) {
		t.Fatalf("representative as captain: got %v, want validation", err)
	}
}

func TestValidateTeamPlayer(t *testing.T) {
	f := newFixture(t)

	otherCollege := &college.College{Name: "IIT Delhi"}
	if err := f.db.Create(otherCollege).Error; err != nil {
		t.Fatalf("seed college: %v", err)
	}

	t.Run("college mismatch", func(t *testing.T) {
		p := f.seedPlayer(t, "outsider", models.GenderMale, otherCollege.ID)
		tp := &team.TeamPlayer{PlayerID: p.ID, TeamID: f.team.ID, Status: models.TeamPlayerUnapproved}
		if err := team.ValidateTeamPlayer(f.db, tp, nil, 5); !apperrors.IsValidation(err) {
			t.Errorf("got %v, want validation", err)
		}
	})

	t.Run("coach rejected", func(t *testing.T) {
		p := f.seedPlayer(t, "coach", models.GenderMale, f.college.ID)
		if err := f.db.Model(p).Update("is_coach", true).Error; err != nil {
			t.Fatalf("mark coach: %v", err)
		}
		tp := &team.TeamPlayer{PlayerID: p.ID, TeamID: f.team.ID, Status: models.TeamPlayerUnapproved}
		if err := team.ValidateTeamPlayer(f.db, tp, nil, 5); !apperrors.IsValidation(err) {
			t.Errorf("got %v, want validation", err)
		}
	})

	t.Run("event gender mismatch", func(t *testing.T) {
		p := f.seedPlayer(t, "mismatched", models.GenderFemale, f.college.ID)
		ev := sport.Event{SportID: f.sport.ID, Sport: *f.sport}
		tp := &team.TeamPlayer{PlayerID: p.ID, TeamID: f.team.ID, Status: models.TeamPlayerUnapproved}
		if err := team.ValidateTeamPlayer(f.db, tp, []sport.Event{ev}, 5); !apperrors.IsValidation(err) {
			t.Errorf("got %v, want validation", err)
		}
	})

	t.Run("approved must be playing", func(t *testing.T) {
		p := f.seedPlayer(t, "benched", models.GenderMale, f.college.ID)
		tp := &team.TeamPlayer{PlayerID: p.ID, TeamID: f.team.ID, Status: models.TeamPlayerApproved, IsPlaying: false}
		if err := team.ValidateTeamPlayer(f.db, tp, nil, 5); !apperrors.IsValidation(err) {
			t.Errorf("got %v, want validation", err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		p := f.seedPlayer(t, "odd.status", models.GenderMale, f.college.ID)
		tp := &team.TeamPlayer{PlayerID: p.ID, TeamID: f.team.ID, Status: "waitlisted"}
		if err := team.ValidateTeamPlayer(f.db, tp, nil, 5); !apperrors.IsValidation(err) {
			t.Errorf("got %v, want validation", err)
		}
	})

	t.Run("candidate events count against the cap", func(t *testing.T) {
		p := f.seedPlayer(t, "busy", models.GenderMale, f.college.ID)
		tp := &team.TeamPlayer{PlayerID: p.ID, TeamID: f.team.ID, Status: models.TeamPlayerUnapproved, IsPlaying: true}
		events := make([]sport.Event, 3)
		for i := range events {
			events[i] = sport.Event{SportID: f.sport.ID, Sport: *f.sport}
		}
		if err := team.ValidateTeamPlayer(f.db, tp, events, 2); !apperrors.IsValidation(err) {
			t.Errorf("got %v, want validation", err)
		}
		if err := team.ValidateTeamPlayer(f.db, tp, events[:2], 2); err != nil {
			t.Errorf("within the cap: %v", err)
		}
	})
}

func TestGetOrCreateTeamConverges(t *testing.T) {
	f := newFixture(t)
	repo := team.NewTeamRepository(f.db)

	first, err := repo.GetOrCreateTeam(f.college, f.sport)
	if err != nil {
		t.Fatalf("GetOrCreateTeam: %v", err)
	}
	second, err := repo.GetOrCreateTeam(f.college, f.sport)
	if err != nil {
		t.Fatalf("GetOrCreateTeam again: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("resolved different teams: %s vs %s", first.ID, second.ID)
	}
}

func TestTeamCodeUsesLetterCode(t *testing.T) {
	f := newFixture(t)
	repo := team.NewTeamRepository(f.db)

	code := "PLNI"
	other := &college.College{Name: "Some Other College", LetterCode: &code}
	if err := f.db.Create(other).Error; err != nil {
		t.Fatalf("seed college: %v", err)
	}

	tm, err := repo.GetOrCreateTeam(other, f.sport)
	if err != nil {
		t.Fatalf("GetOrCreateTeam: %v", err)
	}
	if want := "PLNI-CRICKET-MALE"; tm.TeamCode != want {
		t.Errorf("team code = %q, want %q", tm.TeamCode, want)
	}
}

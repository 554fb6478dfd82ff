package registration

import (
	"strings"
	"testing"

	"github.com/apogee-dev/firewallz/config"
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

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Fees.BaseAmount = 1300
	cfg.Fees.HalfAmount = 1000
	cfg.Fees.PerEventAmount = 200
	cfg.Registration.MaxEventsPerPlayer = 5
	cfg.Registration.AutoApprove = true
	return cfg
}

func newTestService(t *testing.T) (*Service, *gorm.DB, *config.Config) {
	t.Helper()
	db := testdb.Open(t)
	cfg := testConfig()
	return NewService(db, cfg), db, cfg
}

func seedCollege(t *testing.T, db *gorm.DB, name string) *college.College {
	t.Helper()
	c := &college.College{Name: name, City: "Pilani"}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed college %s: %v", name, err)
	}
	return c
}

func seedPlayer(t *testing.T, db *gorm.DB, c *college.College, name, gender string) *player.Player {
	t.Helper()
	p := &player.Player{
		AccountID:   uuid.New(),
		Name:        name,
		Email:       strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@test.edu",
		PhoneNumber: "9876543210",
		Gender:      gender,
		CollegeID:   c.ID,
		Status:      models.PlayerStatusUnconfirmed,
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed player %s: %v", name, err)
	}
	p.College = *c
	return p
}

func seedSport(t *testing.T, db *gorm.DB, name, gender string, min, max int) *sport.Sport {
	t.Helper()
	sp := &sport.Sport{Name: name, Gender: gender, IsActive: true, MinPlayers: min, MaxPlayers: max}
	if err := db.Create(sp).Error; err != nil {
		t.Fatalf("seed sport %s: %v", name, err)
	}
	return sp
}

func payBase(t *testing.T, svc *Service, p *player.Player) {
	t.Helper()
	if _, err := svc.RecordBasePayment(p.ID, p.ID, false); err != nil {
		t.Fatalf("base payment for %s: %v", p.Name, err)
	}
}

func TestCreatePlayer(t *testing.T) {
	svc, db, _ := newTestService(t)
	c := seedCollege(t, db, "BITS Pilani")

	req := player.CreatePlayerRequest{
		Name:        "Rohan Mehta",
		Email:       "rohan@test.edu",
		PhoneNumber: "9876543210",
		Gender:      models.GenderMale,
		CollegeID:   c.ID,
	}

	accountID := uuid.New()
	p, err := svc.CreatePlayer(accountID, req)
	if err != nil {
		t.Fatalf("CreatePlayer: %v", err)
	}
	if p.Status != models.PlayerStatusUnconfirmed {
		t.Errorf("new player status = %q, want %q", p.Status, models.PlayerStatusUnconfirmed)
	}
	if p.College.Name != c.Name {
		t.Errorf("college not resolved on created player")
	}

	if _, err := svc.CreatePlayer(accountID, req); !apperrors.IsConflict(err) {
		t.Errorf("second profile for same account: got %v, want conflict", err)
	}

	req.CollegeID = uuid.New()
	req.Email = "other@test.edu"
	if _, err := svc.CreatePlayer(uuid.New(), req); !apperrors.IsNotFound(err) {
		t.Errorf("unknown college: got %v, want not found", err)
	}
}

func TestCreatePlayerCoachNeedsSports(t *testing.T) {
	svc, db, _ := newTestService(t)
	c := seedCollege(t, db, "BITS Pilani")

	req := player.CreatePlayerRequest{
		Name:        "Coach Kumar",
		Email:       "coach@test.edu",
		PhoneNumber: "9876543211",
		Gender:      models.GenderMale,
		CollegeID:   c.ID,
		IsCoach:     true,
	}
	if _, err := svc.CreatePlayer(uuid.New(), req); !apperrors.IsValidation(err) {
		t.Fatalf("coach without sports: got %v, want validation", err)
	}

	req.SportsIfCoach = "Cricket, Football"
	if _, err := svc.CreatePlayer(uuid.New(), req); err != nil {
		t.Fatalf("coach with sports: %v", err)
	}
}

func TestRecordBasePayment(t *testing.T) {
	svc, db, cfg := newTestService(t)
	c := seedCollege(t, db, "BITS Pilani")
	p := seedPlayer(t, db, c, "Rohan Mehta", models.GenderMale)

	bp, err := svc.RecordBasePayment(p.ID, p.ID, false)
	if err != nil {
		t.Fatalf("RecordBasePayment: %v", err)
	}
	if bp.Amount != cfg.Fees.BaseAmount {
		t.Errorf("amount = %d, want %d", bp.Amount, cfg.Fees.BaseAmount)
	}
	if bp.TransactionStatus != models.TxnSuccess {
		t.Errorf("transaction status = %q, want %q", bp.TransactionStatus, models.TxnSuccess)
	}
	if len(bp.Transaction.ReferenceNo) != 17 {
		t.Errorf("reference number %q is not 17 digits", bp.Transaction.ReferenceNo)
	}

	if _, err := svc.RecordBasePayment(p.ID, p.ID, false); !apperrors.IsConflict(err) {
		t.Errorf("second base payment: got %v, want conflict", err)
	}
}

func TestRecordBasePaymentHalfAndDiscount(t *testing.T) {
	svc, db, cfg := newTestService(t)
	c := seedCollege(t, db, "BITS Pilani")

	half := seedPlayer(t, db, c, "Half Payer", models.GenderMale)
	bp, err := svc.RecordBasePayment(half.ID, half.ID, true)
	if err != nil {
		t.Fatalf("half payment: %v", err)
	}
	if bp.Amount != cfg.Fees.HalfAmount {
		t.Errorf("half amount = %d, want %d", bp.Amount, cfg.Fees.HalfAmount)
	}
	if !bp.HalfPayment {
		t.Errorf("half payment flag not set")
	}

	disc := seedPlayer(t, db, c, "Discounted Payer", models.GenderFemale)
	if err := db.Model(disc).Update("pcr_discount", 300).Error; err != nil {
		t.Fatalf("set discount: %v", err)
	}
	bp, err = svc.RecordBasePayment(disc.ID, disc.ID, false)
	if err != nil {
		t.Fatalf("discounted payment: %v", err)
	}
	if want := cfg.Fees.BaseAmount - 300; bp.Amount != want {
		t.Errorf("discounted amount = %d, want %d", bp.Amount, want)
	}
	if bp.Transaction.AppliedPcrDiscount != 300 {
		t.Errorf("applied discount = %d, want 300", bp.Transaction.AppliedPcrDiscount)
	}
}

func TestMarkBasePaid(t *testing.T) {
	svc, db, cfg := newTestService(t)
	c := seedCollege(t, db, "BITS Pilani")
	p := seedPlayer(t, db, c, "Desk Payer", models.GenderMale)

	bp, err := svc.MarkBasePaid(p.ID, false)
	if err != nil {
		t.Fatalf("MarkBasePaid: %v", err)
	}
	if bp.Amount != cfg.Fees.BaseAmount {
		t.Errorf("amount = %d, want %d", bp.Amount, cfg.Fees.BaseAmount)
	}
	if bp.Transaction.Type != models.TxnTypeSWD {
		t.Errorf("transaction type = %q, want %q", bp.Transaction.Type, models.TxnTypeSWD)
	}

	// Admin-recorded and self-service payments share the one-per-player rule.
	if _, err := svc.RecordBasePayment(p.ID, p.ID, false); !apperrors.IsConflict(err) {
		t.Errorf("self payment after mark-paid: got %v, want conflict", err)
	}
}

func TestRegisterRequiresBasePayment(t *testing.T) {
	svc, db, _ := newTestService(t)
	c := seedCollege(t, db, "BITS Pilani")
	p := seedPlayer(t, db, c, "Rohan Mehta", models.GenderMale)
	sp := seedSport(t, db, "Cricket", models.GenderMale, 1, 15)

	if _, err := svc.RegisterForEvent(p.ID, sp.ID, nil); !apperrors.IsState(err) {
		t.Fatalf("registration before base payment: got %v, want state error", err)
	}
}

func TestRegisterForEvent(t *testing.T) {
	svc, db, _ := newTestService(t)
	c := seedCollege(t, db, "BITS Pilani")
	p := seedPlayer(t, db, c, "Rohan Mehta", models.GenderMale)
	sp := seedSport(t, db, "Cricket", models.GenderMale, 1, 15)
	payBase(t, svc, p)

	tp, err := svc.RegisterForEvent(p.ID, sp.ID, nil)
	if err != nil {
		t.Fatalf("RegisterForEvent: %v", err)
	}
	if tp.Status != models.TeamPlayerApproved {
		t.Errorf("status = %q, want auto-approved", tp.Status)
	}
	if !tp.IsPlaying {
		t.Errorf("new registration should be playing")
	}
	if len(tp.Events) != 1 {
		t.Fatalf("events attached = %d, want 1", len(tp.Events))
	}
	if tp.Team.SportID != sp.ID || tp.Team.CollegeID != c.ID {
		t.Errorf("team resolved to wrong (sport, college)")
	}

	// Same sport again resolves the same rows and rejects the duplicate.
	if _, err := svc.RegisterForEvent(p.ID, sp.ID, nil); !apperrors.IsValidation(err) {
		t.Errorf("duplicate sport registration: got %v, want validation", err)
	}

	var teams int64
	db.Model(&team.Team{}).Where("sport_id = ?", sp.ID).Count(&teams)
	if teams != 1 {
		t.Errorf("teams for sport = %d, want 1", teams)
	}
}

func TestRegisterForEventExplicitEvent(t *testing.T) {
	svc, db, _ := newTestService(t)
	c := seedCollege(t, db, "BITS Pilani")
	p := seedPlayer(t, db, c, "Asha Rao", models.GenderFemale)
	athletics := seedSport(t, db, "Athletics", models.GenderFemale, 1, 30)
	other := seedSport(t, db, "Chess", models.GenderMixed, 1, 4)
	payBase(t, svc, p)

	ev200 := &sport.Event{Name: "200M", SportID: athletics.ID}
	if err := db.Create(ev200).Error; err != nil {
		t.Fatalf("seed event: %v", err)
	}
	strayEv := &sport.Event{Name: "Blitz", SportID: other.ID}
	if err := db.Create(strayEv).Error; err != nil {
		t.Fatalf("seed event: %v", err)
	}

	if _, err := svc.RegisterForEvent(p.ID, athletics.ID, &strayEv.ID); !apperrors.IsValidation(err) {
		t.Fatalf("event of a different sport: got %v, want validation", err)
	}

	tp, err := svc.RegisterForEvent(p.ID, athletics.ID, &ev200.ID)
	if err != nil {
		t.Fatalf("RegisterForEvent: %v", err)
	}
	if len(tp.Events) != 1 || tp.Events[0].Name != "200M" {
		t.Errorf("wrong event attached: %+v", tp.Events)
	}
}

func TestRegisterGenderCategory(t *testing.T) {
	svc, db, _ := newTestService(t)
	c := seedCollege(t, db, "BITS Pilani")
	p := seedPlayer(t, db, c, "Rohan Mehta", models.GenderMale)
	payBase(t, svc, p)

	womens := seedSport(t, db, "Basketball", models.GenderFemale, 5, 12)
	if _, err := svc.RegisterForEvent(p.ID, womens.ID, nil); !apperrors.IsValidation(err) {
		t.Fatalf("cross-gender registration: got %v, want validation", err)
	}

	mixed := seedSport(t, db, "Chess", models.GenderMixed, 1, 4)
	if _, err := svc.RegisterForEvent(p.ID, mixed.ID, nil); err != nil {
		t.Fatalf("mixed sport registration: %v", err)
	}
}

func TestRegisterInactiveSport(t *testing.T) {
	svc, db, _ := newTestService(t)
	c := seedCollege(t, db, "BITS Pilani")
	p := seedPlayer(t, db, c, "Rohan Mehta", models.GenderMale)
	sp := seedSport(t, db, "Squash", models.GenderMale, 1, 2)
	payBase(t, svc, p)

	if err := db.Model(sp).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate sport: %v", err)
	}
	if _, err := svc.RegisterForEvent(p.ID, sp.ID, nil); !apperrors.IsValidation(err) {
		t.Fatalf("inactive sport: got %v, want validation", err)
	}
}

func TestRegisterCollegeCapacity(t *testing.T) {
	svc, db, _ := newTestService(t)
	c1 := seedCollege(t, db, "BITS Pilani")
	c2 := seedCollege(t, db, "IIT Delhi")
	sp := seedSport(t, db, "Chess", models.GenderMixed, 1, 1)

	first := seedPlayer(t, db, c1, "First Player", models.GenderMale)
	second := seedPlayer(t, db, c1, "Second Player", models.GenderFemale)
	rival := seedPlayer(t, db, c2, "Rival Player", models.GenderMale)
	payBase(t, svc, first)
	payBase(t, svc, second)
	payBase(t, svc, rival)

	if _, err := svc.RegisterForEvent(first.ID, sp.ID, nil); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	if _, err := svc.RegisterForEvent(second.ID, sp.ID, nil); !apperrors.IsValidation(err) {
		t.Fatalf("over-capacity same college: got %v, want validation", err)
	}
	// Capacity is per college: another college still has seats.
	if _, err := svc.RegisterForEvent(rival.ID, sp.ID, nil); err != nil {
		t.Fatalf("other college registration: %v", err)
	}
}

func TestRegisterAggregateEventCap(t *testing.T) {
	svc, db, cfg := newTestService(t)
	cfg.Registration.MaxEventsPerPlayer = 2

	c := seedCollege(t, db, "BITS Pilani")
	p := seedPlayer(t, db, c, "Busy Player", models.GenderMale)
	payBase(t, svc, p)

	sports := []*sport.Sport{
		seedSport(t, db, "Chess", models.GenderMixed, 1, 4),
		seedSport(t, db, "Squash", models.GenderMale, 1, 2),
		seedSport(t, db, "Table Tennis", models.GenderMale, 1, 4),
	}
	if _, err := svc.RegisterForEvent(p.ID, sports[0].ID, nil); err != nil {
		t.Fatalf("first sport: %v", err)
	}
	if _, err := svc.RegisterForEvent(p.ID, sports[1].ID, nil); err != nil {
		t.Fatalf("second sport: %v", err)
	}
	if _, err := svc.RegisterForEvent(p.ID, sports[2].ID, nil); !apperrors.IsValidation(err) {
		t.Fatalf("over the aggregate cap: got %v, want validation", err)
	}
}

func TestRegisterCoachRejected(t *testing.T) {
	svc, db, _ := newTestService(t)
	c := seedCollege(t, db, "BITS Pilani")
	coach := seedPlayer(t, db, c, "Coach Kumar", models.GenderMale)
	if err := db.Model(coach).Updates(map[string]interface{}{"is_coach": true, "sports_if_coach": "Cricket"}).Error; err != nil {
		t.Fatalf("mark coach: %v", err)
	}
	sp := seedSport(t, db, "Cricket", models.GenderMale, 11, 15)
	payBase(t, svc, coach)

	if _, err := svc.RegisterForEvent(coach.ID, sp.ID, nil); !apperrors.IsValidation(err) {
		t.Fatalf("coach registration: got %v, want validation", err)
	}
}

func TestRecordSportPayment(t *testing.T) {
	svc, db, cfg := newTestService(t)
	c := seedCollege(t, db, "BITS Pilani")
	p := seedPlayer(t, db, c, "Rohan Mehta", models.GenderMale)
	stranger := seedPlayer(t, db, c, "Some Stranger", models.GenderMale)
	sp := seedSport(t, db, "Cricket", models.GenderMale, 1, 15)
	payBase(t, svc, p)

	tp, err := svc.RegisterForEvent(p.ID, sp.ID, nil)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	// Only the owning player may settle the row.
	if _, err := svc.RecordSportPayment(tp.ID, stranger.ID); !apperrors.IsNotFound(err) {
		t.Fatalf("payment by non-owner: got %v, want not found", err)
	}

	pay, err := svc.RecordSportPayment(tp.ID, p.ID)
	if err != nil {
		t.Fatalf("RecordSportPayment: %v", err)
	}
	if want := 1 * cfg.Fees.PerEventAmount; pay.Amount != want {
		t.Errorf("amount = %d, want %d", pay.Amount, want)
	}

	if _, err := svc.RecordSportPayment(tp.ID, p.ID); !apperrors.IsConflict(err) {
		t.Errorf("second sport payment: got %v, want conflict", err)
	}
}

func TestPromoteToCaptain(t *testing.T) {
	svc, db, _ := newTestService(t)
	c := seedCollege(t, db, "BITS Pilani")
	p := seedPlayer(t, db, c, "Rohan Mehta", models.GenderMale)
	outsider := seedPlayer(t, db, c, "Not Registered", models.GenderMale)
	sp := seedSport(t, db, "Cricket", models.GenderMale, 1, 15)
	payBase(t, svc, p)

	tp, err := svc.RegisterForEvent(p.ID, sp.ID, nil)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	// Membership is a hard precondition, never implicitly created.
	if _, err := svc.PromoteToCaptain(tp.TeamID, outsider.ID); !apperrors.IsState(err) {
		t.Fatalf("promoting an unregistered player: got %v, want state error", err)
	}

	promoted, err := svc.PromoteToCaptain(tp.TeamID, p.ID)
	if err != nil {
		t.Fatalf("PromoteToCaptain: %v", err)
	}
	if promoted.CaptainID == nil || *promoted.CaptainID != p.ID {
		t.Errorf("captain not set")
	}
}

func TestPromoteToCaptainSingleTeam(t *testing.T) {
	svc, db, _ := newTestService(t)
	c := seedCollege(t, db, "BITS Pilani")
	p := seedPlayer(t, db, c, "Double Captain", models.GenderMale)
	cricket := seedSport(t, db, "Cricket", models.GenderMale, 1, 15)
	squash := seedSport(t, db, "Squash", models.GenderMale, 1, 2)
	payBase(t, svc, p)

	tp1, err := svc.RegisterForEvent(p.ID, cricket.ID, nil)
	if err != nil {
		t.Fatalf("register cricket: %v", err)
	}
	tp2, err := svc.RegisterForEvent(p.ID, squash.ID, nil)
	if err != nil {
		t.Fatalf("register squash: %v", err)
	}

	if _, err := svc.PromoteToCaptain(tp1.TeamID, p.ID); err != nil {
		t.Fatalf("first captaincy: %v", err)
	}
	// A player captains at most one team system-wide; the second promotion
	// must fail as a typed validation error, not a raw constraint error.
	if _, err := svc.PromoteToCaptain(tp2.TeamID, p.ID); !apperrors.IsValidation(err) {
		t.Fatalf("second captaincy: got %v, want validation", err)
	}
}

func TestPromoteToCaptainLockedCollege(t *testing.T) {
	svc, db, _ := newTestService(t)
	c := seedCollege(t, db, "BITS Pilani")
	p := seedPlayer(t, db, c, "Rohan Mehta", models.GenderMale)
	sp := seedSport(t, db, "Cricket", models.GenderMale, 1, 15)
	payBase(t, svc, p)

	tp, err := svc.RegisterForEvent(p.ID, sp.ID, nil)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := db.Model(c).Update("is_captains_locked", true).Error; err != nil {
		t.Fatalf("lock captains: %v", err)
	}

	if _, err := svc.PromoteToCaptain(tp.TeamID, p.ID); !apperrors.IsState(err) {
		t.Fatalf("promotion under captain lock: got %v, want state error", err)
	}
}

func TestPromoteToCaptainRevalidatesEvents(t *testing.T) {
	svc, db, _ := newTestService(t)
	c := seedCollege(t, db, "BITS Pilani")
	p := seedPlayer(t, db, c, "Drifted Player", models.GenderMale)
	sp := seedSport(t, db, "Cricket", models.GenderMale, 1, 15)
	payBase(t, svc, p)

	tp, err := svc.RegisterForEvent(p.ID, sp.ID, nil)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	// Drift the row out from under the validation: the stored event's sport
	// no longer matches the player, and the membership is benched so the
	// promotion has to re-save it.
	if err := db.Model(p).Update("gender", models.GenderFemale).Error; err != nil {
		t.Fatalf("update gender: %v", err)
	}
	if err := db.Model(tp).Update("is_playing", false).Error; err != nil {
		t.Fatalf("bench membership: %v", err)
	}

	// The re-save must validate against the row's actual events.
	if _, err := svc.PromoteToCaptain(tp.TeamID, p.ID); !apperrors.IsValidation(err) {
		t.Fatalf("promotion over drifted events: got %v, want validation", err)
	}
}

func TestPromoteRepresentativeRejected(t *testing.T) {
	svc, db, _ := newTestService(t)
	c := seedCollege(t, db, "BITS Pilani")
	p := seedPlayer(t, db, c, "Rep Player", models.GenderMale)
	sp := seedSport(t, db, "Cricket", models.GenderMale, 1, 15)
	payBase(t, svc, p)

	tp, err := svc.RegisterForEvent(p.ID, sp.ID, nil)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := db.Model(c).Update("representative_id", p.ID).Error; err != nil {
		t.Fatalf("set representative: %v", err)
	}

	if _, err := svc.PromoteToCaptain(tp.TeamID, p.ID); !apperrors.IsValidation(err) {
		t.Fatalf("representative as captain: got %v, want validation", err)
	}
}

func TestConfirmAndApprovePlayer(t *testing.T) {
	svc, db, _ := newTestService(t)
	c := seedCollege(t, db, "BITS Pilani")
	p := seedPlayer(t, db, c, "Rohan Mehta", models.GenderMale)

	// Approval before confirmation violates the verification ladder.
	if _, err := svc.ApprovePlayer(p.ID); !apperrors.IsValidation(err) {
		t.Fatalf("approve unconfirmed: got %v, want validation", err)
	}

	confirmed, err := svc.ConfirmPlayer(p.ID)
	if err != nil {
		t.Fatalf("ConfirmPlayer: %v", err)
	}
	if confirmed.Status != models.PlayerStatusConfirmed {
		t.Errorf("status = %q, want confirmed", confirmed.Status)
	}
	if _, err := svc.ConfirmPlayer(p.ID); !apperrors.IsConflict(err) {
		t.Errorf("second confirmation: got %v, want conflict", err)
	}

	approved, err := svc.ApprovePlayer(p.ID)
	if err != nil {
		t.Fatalf("ApprovePlayer: %v", err)
	}
	if !approved.VerifiedByFirewallz {
		t.Errorf("verification flag not set")
	}
	if _, err := svc.ApprovePlayer(p.ID); !apperrors.IsConflict(err) {
		t.Errorf("second approval: got %v, want conflict", err)
	}
}

func TestApproveTeamPlayer(t *testing.T) {
	svc, db, cfg := newTestService(t)
	cfg.Registration.AutoApprove = false

	c := seedCollege(t, db, "BITS Pilani")
	p := seedPlayer(t, db, c, "Rohan Mehta", models.GenderMale)
	sp := seedSport(t, db, "Cricket", models.GenderMale, 1, 15)
	payBase(t, svc, p)

	tp, err := svc.RegisterForEvent(p.ID, sp.ID, nil)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if tp.Status != models.TeamPlayerUnapproved {
		t.Fatalf("status = %q, want unapproved when auto-approval is off", tp.Status)
	}

	approved, err := svc.ApproveTeamPlayer(tp.ID)
	if err != nil {
		t.Fatalf("ApproveTeamPlayer: %v", err)
	}
	if approved.Status != models.TeamPlayerApproved {
		t.Errorf("status = %q, want approved", approved.Status)
	}
	if _, err := svc.ApproveTeamPlayer(tp.ID); !apperrors.IsConflict(err) {
		t.Errorf("second approval: got %v, want conflict", err)
	}
}

func TestApproveTeam(t *testing.T) {
	svc, db, _ := newTestService(t)
	c := seedCollege(t, db, "BITS Pilani")
	p1 := seedPlayer(t, db, c, "First Member", models.GenderMale)
	p2 := seedPlayer(t, db, c, "Second Member", models.GenderMale)
	sp := seedSport(t, db, "Cricket", models.GenderMale, 1, 15)
	payBase(t, svc, p1)
	payBase(t, svc, p2)

	tp, err := svc.RegisterForEvent(p1.ID, sp.ID, nil)
	if err != nil {
		t.Fatalf("register p1: %v", err)
	}
	if _, err := svc.RegisterForEvent(p2.ID, sp.ID, nil); err != nil {
		t.Fatalf("register p2: %v", err)
	}

	if _, err := svc.ApproveTeam(tp.TeamID); !apperrors.IsValidation(err) {
		t.Fatalf("team with unapproved members: got %v, want validation", err)
	}

	for _, p := range []*player.Player{p1, p2} {
		if _, err := svc.ConfirmPlayer(p.ID); err != nil {
			t.Fatalf("confirm %s: %v", p.Name, err)
		}
		if _, err := svc.ApprovePlayer(p.ID); err != nil {
			t.Fatalf("approve %s: %v", p.Name, err)
		}
	}

	approved, err := svc.ApproveTeam(tp.TeamID)
	if err != nil {
		t.Fatalf("ApproveTeam: %v", err)
	}
	if !approved.IsVerifiedByFirewallz {
		t.Errorf("team verification flag not set")
	}
}

func TestLockTeam(t *testing.T) {
	svc, db, _ := newTestService(t)
	c := seedCollege(t, db, "BITS Pilani")
	sp := seedSport(t, db, "Volleyball", models.GenderMale, 2, 8)
	p1 := seedPlayer(t, db, c, "First Member", models.GenderMale)
	p2 := seedPlayer(t, db, c, "Second Member", models.GenderMale)
	p3 := seedPlayer(t, db, c, "Late Member", models.GenderMale)
	payBase(t, svc, p1)
	payBase(t, svc, p2)
	payBase(t, svc, p3)

	tp, err := svc.RegisterForEvent(p1.ID, sp.ID, nil)
	if err != nil {
		t.Fatalf("register p1: %v", err)
	}

	// One playing member, sport minimum is two.
	if _, err := svc.LockTeam(tp.TeamID); !apperrors.IsValidation(err) {
		t.Fatalf("lock below minimum: got %v, want validation", err)
	}

	if _, err := svc.RegisterForEvent(p2.ID, sp.ID, nil); err != nil {
		t.Fatalf("register p2: %v", err)
	}
	locked, err := svc.LockTeam(tp.TeamID)
	if err != nil {
		t.Fatalf("LockTeam: %v", err)
	}
	if !locked.IsLocked {
		t.Errorf("lock flag not set")
	}
	if _, err := svc.LockTeam(tp.TeamID); !apperrors.IsConflict(err) {
		t.Errorf("second lock: got %v, want conflict", err)
	}

	// Locked teams reject further registrations.
	if _, err := svc.RegisterForEvent(p3.ID, sp.ID, nil); !apperrors.IsState(err) {
		t.Errorf("registration into locked team: got %v, want state error", err)
	}
}

func TestGetDashboard(t *testing.T) {
	svc, db, cfg := newTestService(t)
	c := seedCollege(t, db, "BITS Pilani")
	p := seedPlayer(t, db, c, "Rohan Mehta", models.GenderMale)
	sp := seedSport(t, db, "Cricket", models.GenderMale, 1, 15)

	d, err := svc.GetDashboard(p.ID)
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}
	if d.BasePaymentDone {
		t.Errorf("base payment reported done before paying")
	}
	if len(d.Registrations) != 0 {
		t.Errorf("registrations = %d, want 0", len(d.Registrations))
	}

	payBase(t, svc, p)
	tp, err := svc.RegisterForEvent(p.ID, sp.ID, nil)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	d, err = svc.GetDashboard(p.ID)
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}
	if !d.BasePaymentDone {
		t.Errorf("base payment not reported done")
	}
	if len(d.Registrations) != 1 {
		t.Fatalf("registrations = %d, want 1", len(d.Registrations))
	}
	row := d.Registrations[0]
	if row.IsPaid {
		t.Errorf("sport fee reported paid before paying")
	}
	if want := 1 * cfg.Fees.PerEventAmount; row.AmountDue != want {
		t.Errorf("amount due = %d, want %d", row.AmountDue, want)
	}

	if _, err := svc.RecordSportPayment(tp.ID, p.ID); err != nil {
		t.Fatalf("sport payment: %v", err)
	}
	d, err = svc.GetDashboard(p.ID)
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}
	if !d.Registrations[0].IsPaid || d.Registrations[0].AmountDue != 0 {
		t.Errorf("sport fee not reported settled: %+v", d.Registrations[0])
	}
}

func TestGetStats(t *testing.T) {
	svc, db, cfg := newTestService(t)
	c := seedCollege(t, db, "BITS Pilani")
	p := seedPlayer(t, db, c, "Rohan Mehta", models.GenderMale)
	sp := seedSport(t, db, "Cricket", models.GenderMale, 1, 15)
	payBase(t, svc, p)
	tp, err := svc.RegisterForEvent(p.ID, sp.ID, nil)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.RecordSportPayment(tp.ID, p.ID); err != nil {
		t.Fatalf("sport payment: %v", err)
	}

	st, err := svc.GetStats()
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if st.Players.Total != 1 {
		t.Errorf("players total = %d, want 1", st.Players.Total)
	}
	if st.Teams.Total != 1 {
		t.Errorf("teams total = %d, want 1", st.Teams.Total)
	}
	if st.Payments.BaseRevenue != int64(cfg.Fees.BaseAmount) {
		t.Errorf("base revenue = %d, want %d", st.Payments.BaseRevenue, cfg.Fees.BaseAmount)
	}
	if st.Payments.SportRevenue != int64(cfg.Fees.PerEventAmount) {
		t.Errorf("sport revenue = %d, want %d", st.Payments.SportRevenue, cfg.Fees.PerEventAmount)
	}
	if st.Registrations.EventLinks != 1 {
		t.Errorf("event links = %d, want 1", st.Registrations.EventLinks)
	}
}

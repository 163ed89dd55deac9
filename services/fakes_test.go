package services

import (
	"context"
	"time"

	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/models"
	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/repositories"
)

// In-memory fakes for the repository and workspace interfaces. Only the
// behavior the service tests exercise is implemented; anything else returns
// the repository's not-found sentinel.

type fakeWorkspaceService struct {
	workspaces map[int]*models.Workspace // id -> workspace
}

func newFakeWorkspaceService(workspaces ...*models.Workspace) *fakeWorkspaceService {
	byID := make(map[int]*models.Workspace, len(workspaces))
	for _, ws := range workspaces {
		byID[ws.ID] = ws
	}
	return &fakeWorkspaceService{workspaces: byID}
}

func (f *fakeWorkspaceService) Create(ctx context.Context, currentUserID int, name string) (*models.Workspace, error) {
	panic("not used in tests")
}

func (f *fakeWorkspaceService) GetByID(ctx context.Context, currentUserID, workspaceID int) (*models.Workspace, error) {
	return f.Authorize(ctx, currentUserID, workspaceID)
}

func (f *fakeWorkspaceService) ListMine(ctx context.Context, currentUserID int) ([]*models.Workspace, error) {
	panic("not used in tests")
}

func (f *fakeWorkspaceService) Rename(ctx context.Context, currentUserID, workspaceID int, name string) (*models.Workspace, error) {
	panic("not used in tests")
}

func (f *fakeWorkspaceService) Delete(ctx context.Context, currentUserID, workspaceID int) error {
	panic("not used in tests")
}

func (f *fakeWorkspaceService) Authorize(ctx context.Context, currentUserID, workspaceID int) (*models.Workspace, error) {
	ws, ok := f.workspaces[workspaceID]
	if !ok {
		return nil, ErrWorkspaceNotFound
	}
	if ws.OwnerID != currentUserID {
		return nil, ErrForbiddenOperation
	}
	return ws, nil
}

type fakeTournamentRepo struct {
	tournaments map[int]*models.Tournament
	statusLog   []models.TournamentStatus
}

func newFakeTournamentRepo(tournaments ...*models.Tournament) *fakeTournamentRepo {
	byID := make(map[int]*models.Tournament, len(tournaments))
	for _, t := range tournaments {
		byID[t.ID] = t
	}
	return &fakeTournamentRepo{tournaments: byID}
}

func (f *fakeTournamentRepo) Create(ctx context.Context, tournament *models.Tournament) error {
	tournament.ID = len(f.tournaments) + 1
	f.tournaments[tournament.ID] = tournament
	return nil
}

func (f *fakeTournamentRepo) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	t, ok := f.tournaments[id]
	if !ok {
		return nil, repositories.ErrTournamentNotFound
	}
	copied := *t
	return &copied, nil
}

func (f *fakeTournamentRepo) ListByWorkspace(ctx context.Context, workspaceID int, statusFilter *models.TournamentStatus) ([]*models.Tournament, error) {
	var out []*models.Tournament
	for _, t := range f.tournaments {
		if t.WorkspaceID != workspaceID {
			continue
		}
		if statusFilter != nil && t.Status != *statusFilter {
			continue
		}
		copied := *t
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeTournamentRepo) Update(ctx context.Context, exec repositories.SQLExecutor, tournament *models.Tournament) error {
	if _, ok := f.tournaments[tournament.ID]; !ok {
		return repositories.ErrTournamentNotFound
	}
	copied := *tournament
	f.tournaments[tournament.ID] = &copied
	return nil
}

func (f *fakeTournamentRepo) UpdateStatus(ctx context.Context, exec repositories.SQLExecutor, id int, status models.TournamentStatus) error {
	t, ok := f.tournaments[id]
	if !ok {
		return repositories.ErrTournamentNotFound
	}
	t.Status = status
	f.statusLog = append(f.statusLog, status)
	return nil
}

func (f *fakeTournamentRepo) UpdateLogoKey(ctx context.Context, id int, logoKey *string) error {
	t, ok := f.tournaments[id]
	if !ok {
		return repositories.ErrTournamentNotFound
	}
	t.LogoKey = logoKey
	return nil
}

func (f *fakeTournamentRepo) Delete(ctx context.Context, id int) error {
	if _, ok := f.tournaments[id]; !ok {
		return repositories.ErrTournamentNotFound
	}
	delete(f.tournaments, id)
	return nil
}

type fakeRosterRepo struct {
	entries map[int][]models.TournamentPlayer // tournamentID -> roster
}

func newFakeRosterRepo() *fakeRosterRepo {
	return &fakeRosterRepo{entries: make(map[int][]models.TournamentPlayer)}
}

func (f *fakeRosterRepo) Add(ctx context.Context, entry *models.TournamentPlayer) error {
	for _, existing := range f.entries[entry.TournamentID] {
		if existing.PlayerID == entry.PlayerID {
			return repositories.ErrRosterEntryConflict
		}
	}
	f.entries[entry.TournamentID] = append(f.entries[entry.TournamentID], *entry)
	return nil
}

func (f *fakeRosterRepo) Remove(ctx context.Context, tournamentID, playerID int) error {
	roster := f.entries[tournamentID]
	for i, entry := range roster {
		if entry.PlayerID == playerID {
			f.entries[tournamentID] = append(roster[:i:i], roster[i+1:]...)
			return nil
		}
	}
	return repositories.ErrRosterEntryNotFound
}

func (f *fakeRosterRepo) ListByTournament(ctx context.Context, tournamentID int) ([]models.TournamentPlayer, error) {
	roster := f.entries[tournamentID]
	out := make([]models.TournamentPlayer, len(roster))
	copy(out, roster)
	return out, nil
}

func (f *fakeRosterRepo) MarkDropped(ctx context.Context, tournamentID, playerID int, droppedAtRound *int) error {
	roster := f.entries[tournamentID]
	for i := range roster {
		if roster[i].PlayerID == playerID {
			roster[i].Dropped = true
			roster[i].DroppedAtRound = droppedAtRound
			return nil
		}
	}
	return repositories.ErrRosterEntryNotFound
}

type fakeMatchRepo struct {
	matches map[int]*models.Match
	nextID  int
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{matches: make(map[int]*models.Match), nextID: 1}
}

func (f *fakeMatchRepo) Create(ctx context.Context, exec repositories.SQLExecutor, match *models.Match) error {
	match.ID = f.nextID
	match.CreatedAt = time.Now()
	f.nextID++
	copied := *match
	f.matches[match.ID] = &copied
	return nil
}

func (f *fakeMatchRepo) GetByID(ctx context.Context, id int) (*models.Match, error) {
	m, ok := f.matches[id]
	if !ok {
		return nil, repositories.ErrMatchNotFound
	}
	copied := *m
	return &copied, nil
}

func (f *fakeMatchRepo) ListByTournament(ctx context.Context, tournamentID int, roundFilter *int, statusFilter *models.MatchStatus) ([]models.Match, error) {
	var out []models.Match
	for id := 1; id < f.nextID; id++ {
		m, ok := f.matches[id]
		if !ok || m.TournamentID != tournamentID {
			continue
		}
		if roundFilter != nil && m.Round != *roundFilter {
			continue
		}
		if statusFilter != nil && m.Status != *statusFilter {
			continue
		}
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeMatchRepo) UpdateResult(ctx context.Context, id int, winnerID *int, status models.MatchStatus) error {
	m, ok := f.matches[id]
	if !ok {
		return repositories.ErrMatchNotFound
	}
	m.WinnerID = winnerID
	m.Status = status
	return nil
}

func (f *fakeMatchRepo) Delete(ctx context.Context, id int) error {
	if _, ok := f.matches[id]; !ok {
		return repositories.ErrMatchNotFound
	}
	delete(f.matches, id)
	return nil
}

type fakeSnapshotRepo struct {
	snapshots map[int][]models.StandingSnapshot // tournamentID -> rows
}

func newFakeSnapshotRepo() *fakeSnapshotRepo {
	return &fakeSnapshotRepo{snapshots: make(map[int][]models.StandingSnapshot)}
}

func (f *fakeSnapshotRepo) BatchCreate(ctx context.Context, exec repositories.SQLExecutor, tournamentID int, standings []models.Standing) error {
	rows := make([]models.StandingSnapshot, 0, len(standings))
	for i, s := range standings {
		rows = append(rows, models.StandingSnapshot{
			ID:           i + 1,
			TournamentID: tournamentID,
			Standing:     s,
			CreatedAt:    time.Now(),
		})
	}
	f.snapshots[tournamentID] = rows
	return nil
}

func (f *fakeSnapshotRepo) ListByTournament(ctx context.Context, tournamentID int) ([]models.StandingSnapshot, error) {
	rows := f.snapshots[tournamentID]
	out := make([]models.StandingSnapshot, len(rows))
	copy(out, rows)
	return out, nil
}

func (f *fakeSnapshotRepo) DeleteByTournament(ctx context.Context, exec repositories.SQLExecutor, tournamentID int) error {
	delete(f.snapshots, tournamentID)
	return nil
}

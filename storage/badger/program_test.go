package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/confsearch/core"
	"github.com/poiesic/confsearch/storage"
)

func testConference() *core.Conference {
	return &core.Conference{
		ConferenceName:  "IGARSS 2025",
		ConferenceDates: "August 3-8, 2025",
		Location:        "Brisbane, Australia",
		Days: []core.Day{
			{
				Date:      "2025-08-04",
				DayOfWeek: "Monday",
				Sessions: []core.Session{
					{
						SessionIDInternal: "MO.1",
						Title:             "Opening Keynote",
						SessionType:       "Keynote",
						Schedule:          core.Schedule{Date: "Monday, August 4", StartTime: "09:00", EndTime: "10:00"},
						Track:             "Plenary",
					},
					{
						SessionIDInternal: "MO.2",
						Title:             "SAR Applications",
						SessionType:       "Oral",
						Schedule:          core.Schedule{Date: "Monday, August 4", StartTime: "10:30", EndTime: "12:00"},
						Track:             "Microwave Remote Sensing",
						Papers: []core.Paper{
							{
								PaperIDInternal: "MO.2.1",
								Title:           "Ship Detection in SAR Imagery",
								Authors: []core.Author{
									{
										FullName:     "Jane Chen",
										Affiliations: []core.Affiliation{{Institution: "MIT", Country: "USA"}},
									},
								},
							},
						},
					},
				},
			},
			{
				Date:      "2025-08-06",
				DayOfWeek: "Wednesday",
				Sessions: []core.Session{
					{
						SessionIDInternal: "WE.P1",
						Title:             "Poster Session A",
						SessionType:       "Poster",
						Schedule:          core.Schedule{Date: "Wednesday, August 6", StartTime: "09:00", EndTime: "10:30"},
						Track:             "Data Analysis",
						Papers: []core.Paper{
							{PaperIDInternal: "WE.P1.1", Title: "Flood Mapping with Sentinel-1"},
							{PaperIDInternal: "WE.P1.2", Title: "Crop Classification"},
						},
					},
				},
			},
		},
	}
}

func TestProgramRepositoryBasics(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	loaded, err := repo.Loaded(ctx)
	if err != nil {
		t.Fatalf("Loaded: %v", err)
	}
	if loaded {
		t.Fatal("Expected empty repository to report not loaded")
	}

	if _, err := repo.Overview(ctx); !errors.Is(err, storage.ErrNotLoaded) {
		t.Fatalf("Overview on empty repository = %v, want ErrNotLoaded", err)
	}

	if err := repo.PutProgram(ctx, testConference()); err != nil {
		t.Fatalf("PutProgram: %v", err)
	}

	loaded, err = repo.Loaded(ctx)
	if err != nil {
		t.Fatalf("Loaded: %v", err)
	}
	if !loaded {
		t.Fatal("Expected repository to report loaded")
	}

	overview, err := repo.Overview(ctx)
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if overview.Name != "IGARSS 2025" {
		t.Errorf("Overview.Name = %q", overview.Name)
	}
	if overview.TotalDays != 2 || overview.TotalSessions != 3 || overview.TotalPapers != 3 {
		t.Errorf("Overview counts = %d/%d/%d, want 2/3/3",
			overview.TotalDays, overview.TotalSessions, overview.TotalPapers)
	}
}

func TestProgramRepositoryScanOrder(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()
	if err := repo.PutProgram(ctx, testConference()); err != nil {
		t.Fatalf("PutProgram: %v", err)
	}

	var ids []string
	err = repo.ScanSessions(ctx, func(session *core.Session) error {
		ids = append(ids, session.SessionIDInternal)
		return nil
	})
	if err != nil {
		t.Fatalf("ScanSessions: %v", err)
	}

	want := []string{"MO.1", "MO.2", "WE.P1"}
	if len(ids) != len(want) {
		t.Fatalf("scanned %d sessions, want %d", len(ids), len(want))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("scan order[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestProgramRepositoryScanNotLoaded(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() {
		repo.Close()
		backend.Close()
	}()

	err = repo.ScanSessions(context.Background(), func(session *core.Session) error {
		t.Fatal("callback should not run")
		return nil
	})
	if !errors.Is(err, storage.ErrNotLoaded) {
		t.Fatalf("ScanSessions = %v, want ErrNotLoaded", err)
	}
}

func TestProgramRepositoryGetSession(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()
	if err := repo.PutProgram(ctx, testConference()); err != nil {
		t.Fatalf("PutProgram: %v", err)
	}

	session, err := repo.GetSession(ctx, core.IDFromContent("WE.P1"))
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if session.Title != "Poster Session A" {
		t.Errorf("session.Title = %q", session.Title)
	}
	if len(session.Papers) != 2 {
		t.Errorf("len(session.Papers) = %d, want 2", len(session.Papers))
	}

	if _, err := repo.GetSession(ctx, core.IDFromContent("NO.SUCH")); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("GetSession missing = %v, want ErrNotFound", err)
	}
}

func TestProgramRepositoryGetProgramRoundTrip(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()
	original := testConference()
	if err := repo.PutProgram(ctx, original); err != nil {
		t.Fatalf("PutProgram: %v", err)
	}

	program, err := repo.GetProgram(ctx)
	if err != nil {
		t.Fatalf("GetProgram: %v", err)
	}

	if program.ConferenceName != original.ConferenceName {
		t.Errorf("ConferenceName = %q", program.ConferenceName)
	}
	if len(program.Days) != len(original.Days) {
		t.Fatalf("len(Days) = %d, want %d", len(program.Days), len(original.Days))
	}
	for i := range original.Days {
		if len(program.Days[i].Sessions) != len(original.Days[i].Sessions) {
			t.Errorf("day %d has %d sessions, want %d",
				i, len(program.Days[i].Sessions), len(original.Days[i].Sessions))
		}
	}
	if program.Days[1].Sessions[0].Papers[1].Title != "Crop Classification" {
		t.Errorf("deep field mismatch: %+v", program.Days[1].Sessions[0].Papers[1])
	}
}

func TestProgramRepositoryReplace(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()
	if err := repo.PutProgram(ctx, testConference()); err != nil {
		t.Fatalf("PutProgram: %v", err)
	}

	replacement := &core.Conference{
		ConferenceName: "IGARSS 2026",
		Days: []core.Day{
			{
				Date:      "2026-07-20",
				DayOfWeek: "Monday",
				Sessions:  []core.Session{{SessionIDInternal: "X.1", Title: "Only Session"}},
			},
		},
	}
	if err := repo.PutProgram(ctx, replacement); err != nil {
		t.Fatalf("PutProgram replacement: %v", err)
	}

	overview, err := repo.Overview(ctx)
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if overview.Name != "IGARSS 2026" || overview.TotalSessions != 1 {
		t.Errorf("overview after replace = %+v", overview)
	}

	// Old sessions must be gone, including their ID lookups
	if _, err := repo.GetSession(ctx, core.IDFromContent("MO.1")); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("GetSession stale = %v, want ErrNotFound", err)
	}
}

func TestProgramRepositoryRejectsInvalid(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() {
		repo.Close()
		backend.Close()
	}()

	invalid := testConference()
	invalid.Days[1].Sessions[0].SessionIDInternal = "MO.1" // duplicate across days

	err = repo.PutProgram(context.Background(), invalid)
	if !errors.Is(err, core.ErrDuplicateSessionID) {
		t.Fatalf("PutProgram = %v, want ErrDuplicateSessionID", err)
	}
}

package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/GHAITHBT/Projet-Master-2025/internal/app/models"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/apperrors"
)

// fakeMasterStore is an in-memory masterStore
type fakeMasterStore struct {
	mu      sync.Mutex
	nextID  int64
	masters map[int64]*models.Master
	tags    map[int64][]string

	failCreate error
}

func newFakeMasterStore() *fakeMasterStore {
	return &fakeMasterStore{
		masters: make(map[int64]*models.Master),
		tags:    make(map[int64][]string),
	}
}

func (f *fakeMasterStore) List(_ context.Context, speciality string) ([]*models.Master, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Master
	for _, m := range f.masters {
		if speciality != "" && !containsSpeciality(f.tags[m.ID], speciality) {
			continue
		}
		copied := *m
		copied.Specialities = f.tags[m.ID]
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeMasterStore) ListByUniversity(_ context.Context, universityID int64) ([]*models.Master, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Master
	for _, m := range f.masters {
		if m.UniversityID == universityID {
			copied := *m
			copied.Specialities = f.tags[m.ID]
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeMasterStore) CreateWithSpecialities(_ context.Context, master *models.Master, specialities []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate != nil {
		return f.failCreate
	}
	f.nextID++
	master.ID = f.nextID
	f.masters[master.ID] = master
	f.tags[master.ID] = specialities
	return nil
}

func (f *fakeMasterStore) Delete(_ context.Context, id, universityID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.masters[id]
	if !ok || m.UniversityID != universityID {
		return apperrors.ErrMasterNotFound
	}
	delete(f.masters, id)
	delete(f.tags, id)
	return nil
}

type fakeUniversityLister struct {
	universities []*models.University
}

func (f *fakeUniversityLister) ListUniversities(_ context.Context) ([]*models.University, error) {
	return f.universities, nil
}

type fakeReviewLister struct {
	byMaster map[int64][]*models.Application
}

func (f *fakeReviewLister) ListByMaster(_ context.Context, masterID int64) ([]*models.Application, error) {
	return f.byMaster[masterID], nil
}

func validProgram(universityID int64) *models.Master {
	return &models.Master{
		UniversityID:         universityID,
		Name:                 "MSc Data Engineering",
		MaxStudents:          30,
		ApplicationStartDate: date(2024, time.January, 1),
		ApplicationEndDate:   date(2024, time.January, 31),
	}
}

func TestCreateMaster(t *testing.T) {
	store := newFakeMasterStore()
	svc := NewMasterService(store, &fakeUniversityLister{}, &fakeReviewLister{})

	master := validProgram(100)
	err := svc.CreateMaster(context.Background(), master, []string{"Computer Science", "Data Science"})
	if err != nil {
		t.Fatalf("CreateMaster() error = %v", err)
	}
	if master.ID == 0 {
		t.Error("created program should have an id")
	}
	if got := store.tags[master.ID]; len(got) != 2 {
		t.Errorf("stored specialities = %v, want 2 entries", got)
	}
}

func TestCreateMasterValidation(t *testing.T) {
	invalidWindow := validProgram(100)
	invalidWindow.ApplicationEndDate = invalidWindow.ApplicationStartDate

	reversedWindow := validProgram(100)
	reversedWindow.ApplicationStartDate = date(2024, time.February, 1)
	reversedWindow.ApplicationEndDate = date(2024, time.January, 1)

	tests := []struct {
		name         string
		master       *models.Master
		specialities []string
		wantErr      error
	}{
		{"end equals start", invalidWindow, []string{"Computer Science"}, apperrors.ErrInvalidDateRange},
		{"end before start", reversedWindow, []string{"Computer Science"}, apperrors.ErrInvalidDateRange},
		{"no specialities", validProgram(100), nil, apperrors.ErrNoSpecialities},
		{"unknown speciality", validProgram(100), []string{"Astrology"}, apperrors.ErrInvalidSpeciality},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeMasterStore()
			svc := NewMasterService(store, &fakeUniversityLister{}, &fakeReviewLister{})

			err := svc.CreateMaster(context.Background(), tt.master, tt.specialities)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CreateMaster() error = %v, want %v", err, tt.wantErr)
			}
			if len(store.masters) != 0 {
				t.Errorf("stored programs = %d, want 0", len(store.masters))
			}
		})
	}
}

func TestCreateMasterStoreFailure(t *testing.T) {
	store := newFakeMasterStore()
	store.failCreate = errors.New("insert failed")
	svc := NewMasterService(store, &fakeUniversityLister{}, &fakeReviewLister{})

	master := validProgram(100)
	if err := svc.CreateMaster(context.Background(), master, []string{"Computer Science"}); err == nil {
		t.Fatal("CreateMaster() should surface the store error")
	}
	if len(store.masters) != 0 {
		t.Errorf("stored programs = %d, want 0 after failed create", len(store.masters))
	}
}

func TestListMastersNormalizesEmptySpecialities(t *testing.T) {
	store := newFakeMasterStore()
	store.nextID = 1
	store.masters[1] = &models.Master{ID: 1, UniversityID: 100, Name: "MSc Logistics"}

	svc := NewMasterService(store, &fakeUniversityLister{}, &fakeReviewLister{})

	masters, err := svc.ListMasters(context.Background(), "")
	if err != nil {
		t.Fatalf("ListMasters() error = %v", err)
	}
	if len(masters) != 1 {
		t.Fatalf("listed programs = %d, want 1", len(masters))
	}
	if masters[0].Specialities == nil {
		t.Error("a program without tags should carry an empty slice, not nil")
	}
	if masters[0].ApplicationCount != 0 {
		t.Errorf("application count = %d, want 0", masters[0].ApplicationCount)
	}
}

func TestListMastersSpecialityFilter(t *testing.T) {
	store := newFakeMasterStore()
	svc := NewMasterService(store, &fakeUniversityLister{}, &fakeReviewLister{})

	cs := validProgram(100)
	if err := svc.CreateMaster(context.Background(), cs, []string{"Computer Science"}); err != nil {
		t.Fatal(err)
	}
	biz := validProgram(100)
	biz.Name = "MBA"
	if err := svc.CreateMaster(context.Background(), biz, []string{"Business Administration"}); err != nil {
		t.Fatal(err)
	}

	masters, err := svc.ListMasters(context.Background(), "Computer Science")
	if err != nil {
		t.Fatalf("ListMasters() error = %v", err)
	}
	if len(masters) != 1 || masters[0].ID != cs.ID {
		t.Errorf("filtered listing = %v, want only the Computer Science program", masters)
	}
}

func TestListUniversitiesWithMasters(t *testing.T) {
	store := newFakeMasterStore()
	svc := NewMasterService(store,
		&fakeUniversityLister{universities: []*models.University{
			{ID: 100, Name: "University of Tunis", Email: "contact@ut.tn"},
			{ID: 200, Name: "University of Sfax", Email: "contact@us.tn"},
		}},
		&fakeReviewLister{byMaster: map[int64][]*models.Application{
			1: {{ID: 5, StudentID: 1, MasterID: 1, Status: models.StatusPending, StudentEmail: "student@mail.com"}},
		}},
	)

	master := validProgram(100)
	if err := svc.CreateMaster(context.Background(), master, []string{"Computer Science"}); err != nil {
		t.Fatal(err)
	}

	universities, err := svc.ListUniversitiesWithMasters(context.Background())
	if err != nil {
		t.Fatalf("ListUniversitiesWithMasters() error = %v", err)
	}
	if len(universities) != 2 {
		t.Fatalf("listed universities = %d, want 2", len(universities))
	}
	if len(universities[0].Masters) != 1 {
		t.Fatalf("first university programs = %d, want 1", len(universities[0].Masters))
	}
	apps := universities[0].Masters[0].Applications
	if len(apps) != 1 || apps[0].StudentEmail != "student@mail.com" {
		t.Errorf("nested applications = %v, want the applicant with its email", apps)
	}
	if len(universities[1].Masters) != 0 {
		t.Errorf("second university programs = %d, want 0", len(universities[1].Masters))
	}
}

func TestDeleteMaster(t *testing.T) {
	store := newFakeMasterStore()
	svc := NewMasterService(store, &fakeUniversityLister{}, &fakeReviewLister{})

	master := validProgram(100)
	if err := svc.CreateMaster(context.Background(), master, []string{"Computer Science"}); err != nil {
		t.Fatal(err)
	}

	if err := svc.DeleteMaster(context.Background(), master.ID, 200); !errors.Is(err, apperrors.ErrMasterNotFound) {
		t.Errorf("DeleteMaster() by the wrong university: error = %v, want ErrMasterNotFound", err)
	}
	if err := svc.DeleteMaster(context.Background(), master.ID, 100); err != nil {
		t.Errorf("DeleteMaster() error = %v", err)
	}
	if len(store.masters) != 0 {
		t.Errorf("stored programs = %d, want 0", len(store.masters))
	}
}

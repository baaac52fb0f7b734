package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/GHAITHBT/Projet-Master-2025/internal/app/models"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/apperrors"
)

// fakeApplicationStore is an in-memory applicationStore
type fakeApplicationStore struct {
	mu      sync.Mutex
	nextID  int64
	byID    map[int64]*models.Application
	byPair  map[[2]int64]int64
	contact map[int64][2]string // id -> (email, master name)
}

func newFakeApplicationStore() *fakeApplicationStore {
	return &fakeApplicationStore{
		byID:    make(map[int64]*models.Application),
		byPair:  make(map[[2]int64]int64),
		contact: make(map[int64][2]string),
	}
}

func (f *fakeApplicationStore) Exists(_ context.Context, studentID, masterID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.byPair[[2]int64{studentID, masterID}]
	return ok, nil
}

func (f *fakeApplicationStore) Create(_ context.Context, app *models.Application) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	pair := [2]int64{app.StudentID, app.MasterID}
	if _, ok := f.byPair[pair]; ok {
		return apperrors.ErrAlreadyApplied
	}
	f.nextID++
	app.ID = f.nextID
	app.Status = models.StatusPending
	app.CreatedAt = time.Now()
	f.byID[app.ID] = app
	f.byPair[pair] = app.ID
	return nil
}

func (f *fakeApplicationStore) UpdateStatus(_ context.Context, id, universityID int64, status models.ApplicationStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	app, ok := f.byID[id]
	if !ok {
		return apperrors.ErrApplicationNotFound
	}
	app.Status = status
	return nil
}

func (f *fakeApplicationStore) GetDecisionContact(_ context.Context, id int64) (string, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.contact[id]
	if !ok {
		return "", "", apperrors.ErrApplicationNotFound
	}
	return c[0], c[1], nil
}

func (f *fakeApplicationStore) ListByStudent(_ context.Context, studentID int64) ([]*models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var apps []*models.Application
	for _, app := range f.byID {
		if app.StudentID == studentID {
			apps = append(apps, app)
		}
	}
	return apps, nil
}

func (f *fakeApplicationStore) ListAll(_ context.Context) ([]*models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var apps []*models.Application
	for _, app := range f.byID {
		apps = append(apps, app)
	}
	return apps, nil
}

// fakeProgramFinder serves programs and their speciality tags
type fakeProgramFinder struct {
	masters      map[int64]*models.Master
	specialities map[int64][]string
	lookups      int
}

func (f *fakeProgramFinder) GetByID(_ context.Context, id int64) (*models.Master, error) {
	f.lookups++
	m, ok := f.masters[id]
	if !ok {
		return nil, apperrors.ErrMasterNotFound
	}
	return m, nil
}

func (f *fakeProgramFinder) GetSpecialities(_ context.Context, masterID int64) ([]string, error) {
	return f.specialities[masterID], nil
}

// fakeApplicantFinder serves student profiles by id
type fakeApplicantFinder struct {
	students map[int64]*models.Student
}

func (f *fakeApplicantFinder) GetByID(_ context.Context, id int64) (*models.Student, error) {
	s, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return s, nil
}

// recordingNotifier records dispatched messages synchronously
type recordingNotifier struct {
	mu       sync.Mutex
	messages []recordedMessage
}

type recordedMessage struct {
	to      string
	subject string
	body    string
}

func (n *recordingNotifier) Dispatch(toEmail, subject, body string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, recordedMessage{to: toEmail, subject: subject, body: body})
}

func (n *recordingNotifier) sent() []recordedMessage {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]recordedMessage(nil), n.messages...)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// newAdmissionFixture wires an AdmissionService around one program
// (id 10, window Jan 2024, Computer Science + Software Engineering)
// and one Computer Science student (id 1).
func newAdmissionFixture() (*AdmissionService, *fakeApplicationStore, *fakeProgramFinder, *recordingNotifier) {
	apps := newFakeApplicationStore()
	masters := &fakeProgramFinder{
		masters: map[int64]*models.Master{
			10: {
				ID:                   10,
				UniversityID:         100,
				Name:                 "MSc Data Engineering",
				MaxStudents:          30,
				ApplicationStartDate: date(2024, time.January, 1),
				ApplicationEndDate:   date(2024, time.January, 31),
			},
		},
		specialities: map[int64][]string{
			10: {"Computer Science", "Software Engineering"},
		},
	}
	students := &fakeApplicantFinder{
		students: map[int64]*models.Student{
			1: {ID: 1, UserID: 11, Speciality: "Computer Science"},
		},
	}
	notifier := &recordingNotifier{}

	svc := NewAdmissionService(apps, masters, students, notifier)
	svc.now = func() time.Time { return date(2024, time.January, 15) }
	return svc, apps, masters, notifier
}

func TestApplySuccess(t *testing.T) {
	svc, apps, _, _ := newAdmissionFixture()

	app, err := svc.Apply(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if app.Status != models.StatusPending {
		t.Errorf("new application status = %q, want %q", app.Status, models.StatusPending)
	}
	if len(apps.byID) != 1 {
		t.Errorf("stored applications = %d, want 1", len(apps.byID))
	}
}

func TestApplyDuplicate(t *testing.T) {
	svc, apps, masters, _ := newAdmissionFixture()

	if _, err := svc.Apply(context.Background(), 1, 10); err != nil {
		t.Fatalf("first Apply() error = %v", err)
	}

	lookupsBefore := masters.lookups
	_, err := svc.Apply(context.Background(), 1, 10)
	if !errors.Is(err, apperrors.ErrAlreadyApplied) {
		t.Fatalf("second Apply() error = %v, want ErrAlreadyApplied", err)
	}
	if masters.lookups != lookupsBefore {
		t.Error("duplicate check should fire before the program lookup")
	}
	if len(apps.byID) != 1 {
		t.Errorf("stored applications = %d, want 1", len(apps.byID))
	}
}

func TestApplyProgramNotFound(t *testing.T) {
	svc, _, _, _ := newAdmissionFixture()

	_, err := svc.Apply(context.Background(), 1, 999)
	if !errors.Is(err, apperrors.ErrMasterNotFound) {
		t.Fatalf("Apply() error = %v, want ErrMasterNotFound", err)
	}
}

func TestApplyWindow(t *testing.T) {
	tests := []struct {
		name    string
		now     time.Time
		wantErr bool
	}{
		{"before window", date(2023, time.December, 31), true},
		{"start boundary", date(2024, time.January, 1), false},
		{"start boundary late in the day", time.Date(2024, time.January, 1, 23, 59, 0, 0, time.UTC), false},
		{"inside window", date(2024, time.January, 15), false},
		{"end boundary", date(2024, time.January, 31), false},
		{"end boundary late in the day", time.Date(2024, time.January, 31, 23, 0, 0, 0, time.UTC), false},
		{"after window", date(2024, time.February, 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, _ := newAdmissionFixture()
			svc.now = func() time.Time { return tt.now }

			_, err := svc.Apply(context.Background(), 1, 10)
			if tt.wantErr {
				if !errors.Is(err, apperrors.ErrApplicationClosed) {
					t.Errorf("Apply() error = %v, want ErrApplicationClosed", err)
				}
			} else if err != nil {
				t.Errorf("Apply() error = %v, want nil", err)
			}
		})
	}
}

func TestApplyIneligibleSpeciality(t *testing.T) {
	svc, apps, _, _ := newAdmissionFixture()
	students := svc.students.(*fakeApplicantFinder)
	students.students[2] = &models.Student{ID: 2, UserID: 12, Speciality: "Business Administration"}

	_, err := svc.Apply(context.Background(), 2, 10)
	if !errors.Is(err, apperrors.ErrIneligibleSpeciality) {
		t.Fatalf("Apply() error = %v, want ErrIneligibleSpeciality", err)
	}
	if !strings.Contains(err.Error(), "Business Administration") || !strings.Contains(err.Error(), "MSc Data Engineering") {
		t.Errorf("error message should name the speciality and the program, got %q", err.Error())
	}
	if len(apps.byID) != 0 {
		t.Errorf("stored applications = %d, want 0", len(apps.byID))
	}
}

func TestUpdateStatusInvalid(t *testing.T) {
	svc, apps, _, notifier := newAdmissionFixture()

	app, err := svc.Apply(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	for _, status := range []models.ApplicationStatus{models.StatusPending, "waitlisted", ""} {
		if err := svc.UpdateStatus(context.Background(), app.ID, 100, status); !errors.Is(err, apperrors.ErrInvalidStatus) {
			t.Errorf("UpdateStatus(%q) error = %v, want ErrInvalidStatus", status, err)
		}
	}

	if apps.byID[app.ID].Status != models.StatusPending {
		t.Errorf("stored status = %q, want untouched %q", apps.byID[app.ID].Status, models.StatusPending)
	}
	if len(notifier.sent()) != 0 {
		t.Errorf("notifications sent = %d, want 0", len(notifier.sent()))
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	svc, _, _, notifier := newAdmissionFixture()

	err := svc.UpdateStatus(context.Background(), 999, 100, models.StatusAccepted)
	if !errors.Is(err, apperrors.ErrApplicationNotFound) {
		t.Fatalf("UpdateStatus() error = %v, want ErrApplicationNotFound", err)
	}
	if len(notifier.sent()) != 0 {
		t.Errorf("notifications sent = %d, want 0", len(notifier.sent()))
	}
}

func TestUpdateStatusNotifiesApplicant(t *testing.T) {
	svc, apps, _, notifier := newAdmissionFixture()

	app, err := svc.Apply(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	apps.contact[app.ID] = [2]string{"student@mail.com", "MSc Data Engineering"}

	if err := svc.UpdateStatus(context.Background(), app.ID, 100, models.StatusAccepted); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}

	sent := notifier.sent()
	if len(sent) != 1 {
		t.Fatalf("notifications sent = %d, want 1", len(sent))
	}
	if sent[0].to != "student@mail.com" {
		t.Errorf("notification recipient = %q, want student@mail.com", sent[0].to)
	}
	if !strings.Contains(sent[0].body, "MSc Data Engineering") || !strings.Contains(sent[0].body, "accepted") {
		t.Errorf("notification body should name the program and the decision, got %q", sent[0].body)
	}

	// A later decision may overwrite an earlier one.
	if err := svc.UpdateStatus(context.Background(), app.ID, 100, models.StatusRejected); err != nil {
		t.Fatalf("UpdateStatus() re-transition error = %v", err)
	}
	if apps.byID[app.ID].Status != models.StatusRejected {
		t.Errorf("stored status = %q, want %q", apps.byID[app.ID].Status, models.StatusRejected)
	}
	if len(notifier.sent()) != 2 {
		t.Errorf("notifications sent = %d, want 2", len(notifier.sent()))
	}
}

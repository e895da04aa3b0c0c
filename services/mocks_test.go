package services

import (
	"context"
	"sort"

	"dreach.in/models"
	"dreach.in/repositories"

	"github.com/google/uuid"
)

type mockSlotRepo struct {
	slots          map[uuid.UUID]*models.Slot
	createManyCall int
	lastBatch      []models.Slot
	createErr      error
	bookErr        error
}

func newMockSlotRepo() *mockSlotRepo {
	return &mockSlotRepo{slots: make(map[uuid.UUID]*models.Slot)}
}

func (m *mockSlotRepo) CreateMany(_ context.Context, slots []models.Slot) error {
	m.createManyCall++
	if m.createErr != nil {
		return m.createErr
	}
	for i := range slots {
		slots[i].ID = uuid.New()
		s := slots[i]
		m.slots[s.ID] = &s
	}
	m.lastBatch = slots
	return nil
}

func (m *mockSlotRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Slot, error) {
	s, ok := m.slots[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *mockSlotRepo) FindBySchedule(_ context.Context, scheduleID uuid.UUID, onlyAvailable bool) ([]models.Slot, error) {
	var out []models.Slot
	for _, s := range m.slots {
		if s.ScheduleID != scheduleID || (onlyAvailable && s.IsBooked) {
			continue
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (m *mockSlotRepo) Book(_ context.Context, id uuid.UUID, appointmentID uuid.UUID) (*models.Slot, error) {
	if m.bookErr != nil {
		return nil, m.bookErr
	}
	s, ok := m.slots[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	if s.IsBooked {
		return nil, repositories.ErrConflict
	}
	s.IsBooked = true
	s.AppointmentID = &appointmentID
	cp := *s
	return &cp, nil
}

type mockScheduleRepo struct {
	schedules map[uuid.UUID]*models.Schedule
	createErr error
}

func newMockScheduleRepo() *mockScheduleRepo {
	return &mockScheduleRepo{schedules: make(map[uuid.UUID]*models.Schedule)}
}

func (m *mockScheduleRepo) Create(_ context.Context, s *models.Schedule) error {
	if m.createErr != nil {
		return m.createErr
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	cp := *s
	m.schedules[s.ID] = &cp
	return nil
}

func (m *mockScheduleRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Schedule, error) {
	s, ok := m.schedules[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

// mockTransactor runs fn directly and records whether the transaction reported an error.
type mockTransactor struct {
	calls      int
	rolledBack bool
}

func (m *mockTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	err := fn(ctx)
	m.rolledBack = err != nil
	return err
}

type mockClinicRepo struct {
	users         []models.User
	doctors       []models.Doctor
	patients      []models.Patient
	prescriptions []models.Prescription
	failOn        string
	err           error
	calls         []string
}

func (m *mockClinicRepo) step(name string) error {
	m.calls = append(m.calls, name)
	if m.failOn == name {
		return m.err
	}
	return nil
}

func (m *mockClinicRepo) FindUsers(context.Context) ([]models.User, error) {
	return m.users, m.step("users")
}

func (m *mockClinicRepo) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	for i := range m.users {
		if m.users[i].Email == email {
			return &m.users[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockClinicRepo) FindDoctorsWithUser(context.Context) ([]models.Doctor, error) {
	return m.doctors, m.step("doctors")
}

func (m *mockClinicRepo) FindPatientsWithUser(context.Context) ([]models.Patient, error) {
	return m.patients, m.step("patients")
}

func (m *mockClinicRepo) FindPrescriptionsWithRelations(context.Context) ([]models.Prescription, error) {
	return m.prescriptions, m.step("prescriptions")
}

package services

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"dreach.in/models"
	"dreach.in/pkg/timeslots"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	windowStart = time.Date(2025, 3, 28, 9, 0, 0, 0, time.UTC)
	windowEnd   = time.Date(2025, 3, 28, 11, 0, 0, 0, time.UTC)
)

func newTestSlotService() (*SlotService, *mockSlotRepo, *mockScheduleRepo) {
	slotRepo := newMockSlotRepo()
	scheduleRepo := newMockScheduleRepo()
	return &SlotService{repo: slotRepo, scheduleRepo: scheduleRepo}, slotRepo, scheduleRepo
}

func TestGenerateSlotsQuarterHours(t *testing.T) {
	svc, repo, _ := newTestSlotService()
	scheduleID := uuid.New()

	slots, err := svc.GenerateSlots(context.Background(), scheduleID, windowStart, windowEnd, 15)
	if err != nil {
		t.Fatalf("GenerateSlots: %v", err)
	}
	if len(slots) != 8 {
		t.Fatalf("expected 8 slots, got %d", len(slots))
	}
	if repo.createManyCall != 1 {
		t.Errorf("expected exactly one bulk insert, got %d", repo.createManyCall)
	}
	if !slots[0].StartTime.Equal(windowStart) {
		t.Errorf("first slot starts at %s", slots[0].StartTime)
	}
	if !slots[7].EndTime.Equal(windowEnd) {
		t.Errorf("last slot ends at %s", slots[7].EndTime)
	}
	for i, s := range slots {
		if s.ScheduleID != scheduleID {
			t.Errorf("slot %d: wrong schedule id %s", i, s.ScheduleID)
		}
		if s.Duration() != 15*time.Minute {
			t.Errorf("slot %d: expected 15m, got %s", i, s.Duration())
		}
		if s.IsBooked || s.AppointmentID != nil {
			t.Errorf("slot %d: new slots must be unbooked", i)
		}
		if s.ID == uuid.Nil {
			t.Errorf("slot %d: expected stored id to be returned", i)
		}
	}
}

func TestGenerateSlotsDropsRemainder(t *testing.T) {
	svc, repo, _ := newTestSlotService()

	slots, err := svc.GenerateSlots(context.Background(), uuid.New(), windowStart, windowEnd, 45)
	if err != nil {
		t.Fatalf("GenerateSlots: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if want := windowStart.Add(90 * time.Minute); !slots[1].EndTime.Equal(want) {
		t.Errorf("expected last end %s, got %s", want, slots[1].EndTime)
	}
	if len(repo.lastBatch) != 2 {
		t.Errorf("expected 2 slots persisted, got %d", len(repo.lastBatch))
	}
}

func TestGenerateSlotsInvalidDuration(t *testing.T) {
	svc, repo, _ := newTestSlotService()

	for _, d := range []int{0, -15} {
		_, err := svc.GenerateSlots(context.Background(), uuid.New(), windowStart, windowEnd, d)
		if !errors.Is(err, ErrSlotInvalidInput) {
			t.Errorf("duration %d: expected ErrSlotInvalidInput, got %v", d, err)
		}
		if !errors.Is(err, timeslots.ErrInvalidDuration) {
			t.Errorf("duration %d: expected wrapped ErrInvalidDuration, got %v", d, err)
		}
	}
	if repo.createManyCall != 0 {
		t.Errorf("store must not be called on invalid input, got %d calls", repo.createManyCall)
	}
}

func TestGenerateSlotsRequiresScheduleID(t *testing.T) {
	svc, _, _ := newTestSlotService()

	_, err := svc.GenerateSlots(context.Background(), uuid.Nil, windowStart, windowEnd, 15)
	if !errors.Is(err, ErrSlotInvalidInput) {
		t.Fatalf("expected ErrSlotInvalidInput, got %v", err)
	}
}

func TestGenerateSlotsEmptyWindowSkipsStore(t *testing.T) {
	svc, repo, _ := newTestSlotService()

	slots, err := svc.GenerateSlots(context.Background(), uuid.New(), windowStart, windowStart.Add(10*time.Minute), 15)
	if err != nil {
		t.Fatalf("GenerateSlots: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("expected no slots, got %d", len(slots))
	}
	if repo.createManyCall != 0 {
		t.Errorf("expected no store call, got %d", repo.createManyCall)
	}

	slots, err = svc.GenerateSlots(context.Background(), uuid.New(), windowEnd, windowStart, 15)
	if err != nil || len(slots) != 0 {
		t.Errorf("inverted window: expected empty result, got %d slots, err %v", len(slots), err)
	}
}

func TestGenerateSlotsPropagatesStoreError(t *testing.T) {
	svc, repo, _ := newTestSlotService()
	storeErr := errors.New("connection reset")
	repo.createErr = storeErr

	slots, err := svc.GenerateSlots(context.Background(), uuid.New(), windowStart, windowEnd, 15)
	if err != storeErr {
		t.Fatalf("expected store error unchanged, got %v", err)
	}
	if slots != nil {
		t.Errorf("expected nil slots on failure, got %d", len(slots))
	}
}

func TestGenerateSlotsIsNotIdempotent(t *testing.T) {
	svc, repo, _ := newTestSlotService()
	scheduleID := uuid.New()

	for i := 0; i < 2; i++ {
		if _, err := svc.GenerateSlots(context.Background(), scheduleID, windowStart, windowEnd, 30); err != nil {
			t.Fatalf("GenerateSlots #%d: %v", i+1, err)
		}
	}
	if len(repo.slots) != 8 {
		t.Errorf("expected two independent sets (8 slots), got %d", len(repo.slots))
	}
}

func TestGenerateSlotsForSchedule(t *testing.T) {
	svc, _, schedules := newTestSlotService()
	schedule := &models.Schedule{StartTime: windowStart, EndTime: windowEnd, SlotDuration: 40, ServiceProviderID: "sp-1"}
	if err := schedules.Create(context.Background(), schedule); err != nil {
		t.Fatalf("seed schedule: %v", err)
	}

	slots, err := svc.GenerateSlotsForSchedule(context.Background(), schedule.ID)
	if err != nil {
		t.Fatalf("GenerateSlotsForSchedule: %v", err)
	}
	if len(slots) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(slots))
	}

	if _, err := svc.GenerateSlotsForSchedule(context.Background(), uuid.New()); !errors.Is(err, ErrScheduleNotFound) {
		t.Errorf("expected ErrScheduleNotFound, got %v", err)
	}
}

func TestListSlots(t *testing.T) {
	svc, _, schedules := newTestSlotService()
	ctx := context.Background()
	schedule := &models.Schedule{StartTime: windowStart, EndTime: windowEnd, SlotDuration: 30, ServiceProviderID: "sp-1"}
	_ = schedules.Create(ctx, schedule)

	slots, err := svc.GenerateSlotsForSchedule(ctx, schedule.ID)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := svc.BookSlot(ctx, slots[1].ID, uuid.New()); err != nil {
		t.Fatalf("book: %v", err)
	}

	all, err := svc.ListSlots(ctx, schedule.ID, false)
	if err != nil {
		t.Fatalf("ListSlots: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("expected 4 slots, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if !all[i-1].StartTime.Before(all[i].StartTime) {
			t.Errorf("slots not ordered at %d", i)
		}
	}

	available, err := svc.ListSlots(ctx, schedule.ID, true)
	if err != nil {
		t.Fatalf("ListSlots available: %v", err)
	}
	if len(available) != 3 {
		t.Errorf("expected 3 available slots, got %d", len(available))
	}

	if _, err := svc.ListSlots(ctx, uuid.New(), false); !errors.Is(err, ErrScheduleNotFound) {
		t.Errorf("expected ErrScheduleNotFound, got %v", err)
	}
}

func TestBookSlot(t *testing.T) {
	svc, _, _ := newTestSlotService()
	ctx := context.Background()

	slots, err := svc.GenerateSlots(ctx, uuid.New(), windowStart, windowEnd, 60)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	appointmentID := uuid.New()

	booked, err := svc.BookSlot(ctx, slots[0].ID, appointmentID)
	if err != nil {
		t.Fatalf("BookSlot: %v", err)
	}
	if !booked.IsBooked || booked.AppointmentID == nil || *booked.AppointmentID != appointmentID {
		t.Errorf("unexpected booked slot %+v", booked)
	}

	t.Run("AlreadyBooked", func(t *testing.T) {
		if _, err := svc.BookSlot(ctx, slots[0].ID, uuid.New()); !errors.Is(err, ErrSlotAlreadyBooked) {
			t.Errorf("expected ErrSlotAlreadyBooked, got %v", err)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		if _, err := svc.BookSlot(ctx, uuid.New(), uuid.New()); !errors.Is(err, ErrSlotNotFound) {
			t.Errorf("expected ErrSlotNotFound, got %v", err)
		}
	})

	t.Run("InvalidInput", func(t *testing.T) {
		if _, err := svc.BookSlot(ctx, uuid.Nil, appointmentID); !errors.Is(err, ErrSlotInvalidInput) {
			t.Errorf("expected ErrSlotInvalidInput, got %v", err)
		}
		if _, err := svc.BookSlot(ctx, slots[1].ID, uuid.Nil); !errors.Is(err, ErrSlotInvalidInput) {
			t.Errorf("expected ErrSlotInvalidInput, got %v", err)
		}
	})
}

func TestBookSlotErrorMapping(t *testing.T) {
	svc, repo, _ := newTestSlotService()

	repo.bookErr = gorm.ErrDuplicatedKey
	if _, err := svc.BookSlot(context.Background(), uuid.New(), uuid.New()); !errors.Is(err, ErrAppointmentAlreadyAssigned) {
		t.Errorf("expected ErrAppointmentAlreadyAssigned, got %v", err)
	}

	storeErr := errors.New("deadlock detected")
	repo.bookErr = storeErr
	if _, err := svc.BookSlot(context.Background(), uuid.New(), uuid.New()); err != storeErr {
		t.Errorf("expected store error unchanged, got %v", err)
	}
}

func TestGenerateSlotsDurationLongerThanWindow(t *testing.T) {
	svc, repo, _ := newTestSlotService()

	// 307445735 minutes does not fit in a time.Duration and used to wrap to ~26s slots.
	for _, d := range []int{121, 307445735, math.MaxInt32, math.MaxInt} {
		slots, err := svc.GenerateSlots(context.Background(), uuid.New(), windowStart, windowEnd, d)
		if err != nil {
			t.Errorf("duration %d: unexpected error %v", d, err)
		}
		if len(slots) != 0 {
			t.Errorf("duration %d: expected no slots, got %d lasting %s", d, len(slots), slots[0].Duration())
		}
	}
	if repo.createManyCall != 0 {
		t.Errorf("expected no store call, got %d", repo.createManyCall)
	}
}

func TestGenerateSlotsRejectsOversizedBatch(t *testing.T) {
	svc, repo, _ := newTestSlotService()

	end := windowStart.Add(time.Duration(MaxSlotsPerGeneration+1) * time.Minute)
	_, err := svc.GenerateSlots(context.Background(), uuid.New(), windowStart, end, 1)
	if !errors.Is(err, ErrSlotInvalidInput) {
		t.Fatalf("expected ErrSlotInvalidInput, got %v", err)
	}

	// A window spanning centuries is refused before any interval is built.
	_, err = svc.GenerateSlots(context.Background(), uuid.New(), windowStart, windowStart.AddDate(250, 0, 0), 1)
	if !errors.Is(err, ErrSlotInvalidInput) {
		t.Fatalf("long window: expected ErrSlotInvalidInput, got %v", err)
	}
	if repo.createManyCall != 0 {
		t.Errorf("expected no store call, got %d", repo.createManyCall)
	}

	end = windowStart.Add(time.Duration(MaxSlotsPerGeneration) * time.Minute)
	slots, err := svc.GenerateSlots(context.Background(), uuid.New(), windowStart, end, 1)
	if err != nil || len(slots) != MaxSlotsPerGeneration {
		t.Errorf("at the limit: got %d slots, err %v", len(slots), err)
	}
}

func TestGenerateSlotsUnknownSchedule(t *testing.T) {
	svc, repo, _ := newTestSlotService()
	repo.createErr = gorm.ErrForeignKeyViolated

	_, err := svc.GenerateSlots(context.Background(), uuid.New(), windowStart, windowEnd, 15)
	if !errors.Is(err, ErrScheduleNotFound) {
		t.Fatalf("expected ErrScheduleNotFound, got %v", err)
	}
}

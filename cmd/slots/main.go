// Command slots generates slots for a schedule window or books a slot.
//
//	slots generate -schedule <id> [-start RFC3339 -end RFC3339 -duration minutes]
//	slots book -slot <id> -appointment <id>
//
// Without -start/-end/-duration, generate uses the stored schedule's own window.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"dreach.in/configs"
	"dreach.in/configs/configsdatabase"
	"dreach.in/configs/configslog"
	"dreach.in/repositories"
	"dreach.in/services"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var errUsage = errors.New("usage: slots generate|book [flags]")

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg := configs.Load()
	configslog.InitLogger(cfg.IsProduction(), cfg.LogLevel)
	defer configslog.SyncLogger()

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, errUsage)
		return 2
	}

	db, err := configsdatabase.Open(cfg)
	if err != nil {
		configslog.Log.Error("Could not open database", zap.Error(err))
		return 1
	}
	defer configsdatabase.Close(db)

	ctx := context.Background()
	switch args[0] {
	case "generate":
		err = generate(ctx, db, args[1:])
	case "book":
		err = book(ctx, db, args[1:])
	default:
		err = errUsage
	}
	if err != nil {
		configslog.Log.Error("Command failed", zap.String("command", args[0]), zap.Error(err))
		return 1
	}
	return 0
}

func newSlotService(db *gorm.DB) services.ISlotService {
	return services.NewSlotService(repositories.NewSlotRepository(db), repositories.NewScheduleRepository(db))
}

func generate(ctx context.Context, db *gorm.DB, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	scheduleFlag := fs.String("schedule", "", "schedule id")
	startFlag := fs.String("start", "", "window start (RFC3339)")
	endFlag := fs.String("end", "", "window end (RFC3339)")
	durationFlag := fs.Int("duration", 0, "slot duration in minutes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	scheduleID, err := uuid.Parse(*scheduleFlag)
	if err != nil {
		return fmt.Errorf("invalid -schedule: %w", err)
	}

	svc := newSlotService(db)
	if *startFlag == "" && *endFlag == "" && *durationFlag == 0 {
		slots, err := svc.GenerateSlotsForSchedule(ctx, scheduleID)
		if err != nil {
			return err
		}
		fmt.Printf("Generated %d slots for schedule %s\n", len(slots), scheduleID)
		return nil
	}

	start, err := time.Parse(time.RFC3339, *startFlag)
	if err != nil {
		return fmt.Errorf("invalid -start: %w", err)
	}
	end, err := time.Parse(time.RFC3339, *endFlag)
	if err != nil {
		return fmt.Errorf("invalid -end: %w", err)
	}

	slots, err := svc.GenerateSlots(ctx, scheduleID, start, end, *durationFlag)
	if err != nil {
		return err
	}
	for _, s := range slots {
		fmt.Printf("%s  %s - %s\n", s.ID, s.StartTime.Format(time.RFC3339), s.EndTime.Format(time.RFC3339))
	}
	fmt.Printf("Generated %d slots for schedule %s\n", len(slots), scheduleID)
	return nil
}

func book(ctx context.Context, db *gorm.DB, args []string) error {
	fs := flag.NewFlagSet("book", flag.ContinueOnError)
	slotFlag := fs.String("slot", "", "slot id")
	appointmentFlag := fs.String("appointment", "", "appointment id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	slotID, err := uuid.Parse(*slotFlag)
	if err != nil {
		return fmt.Errorf("invalid -slot: %w", err)
	}
	appointmentID, err := uuid.Parse(*appointmentFlag)
	if err != nil {
		return fmt.Errorf("invalid -appointment: %w", err)
	}

	slot, err := newSlotService(db).BookSlot(ctx, slotID, appointmentID)
	if err != nil {
		return err
	}
	fmt.Printf("Slot %s (%s - %s) booked for appointment %s\n", slot.ID,
		slot.StartTime.Format(time.RFC3339), slot.EndTime.Format(time.RFC3339), appointmentID)
	return nil
}

// Command report prints every user, doctor, patient and prescription with their
// related records, to verify a seeded database.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"dreach.in/configs"
	"dreach.in/configs/configsdatabase"
	"dreach.in/configs/configslog"
	"dreach.in/repositories"
	"dreach.in/services"

	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := configs.Load()
	configslog.InitLogger(cfg.IsProduction(), cfg.LogLevel)
	defer configslog.SyncLogger()

	db, err := configsdatabase.Open(cfg)
	if err != nil {
		configslog.Log.Error("Report aborted", zap.Error(err))
		return 1
	}
	defer configsdatabase.Close(db)

	report, err := services.NewReportService(repositories.NewClinicRepository(db)).BuildClinicReport(context.Background())
	if err != nil {
		configslog.Log.Error("Report failed", zap.Error(err))
		return 1
	}

	sections := []struct {
		title string
		data  any
	}{
		{"Users", report.Users},
		{"Doctors", report.Doctors},
		{"Patients", report.Patients},
		{"Prescriptions", report.Prescriptions},
	}
	for _, section := range sections {
		out, err := json.MarshalIndent(section.data, "", "  ")
		if err != nil {
			configslog.Log.Error("Could not encode report section", zap.String("section", section.title), zap.Error(err))
			return 1
		}
		fmt.Printf("%s: %s\n", section.title, out)
	}
	return 0
}

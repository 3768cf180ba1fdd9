// Package export reads and writes the flat tabular interchange format: one
// CSV row per habit, with schedule and check-ins semicolon-joined so a file
// written by Write round-trips through Read.
package export

import (
	"encoding/csv"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/julianstephens/ritual/internal/errors"
	"github.com/julianstephens/ritual/internal/models"
	"github.com/julianstephens/ritual/internal/validation"
)

var header = []string{"id", "name", "created", "archived", "goal", "schedule", "note", "checkins"}

// Write emits the snapshot's habits as CSV, archived ones included
func Write(w io.Writer, snap *models.Snapshot) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for i := range snap.Habits {
		h := &snap.Habits[i]
		goal := ""
		if h.WeeklyGoal != nil {
			goal = strconv.Itoa(*h.WeeklyGoal)
		}
		note := ""
		if h.Note != nil {
			note = *h.Note
		}
		record := []string{
			strconv.Itoa(h.ID),
			h.Name,
			h.Created,
			strconv.FormatBool(h.Archived),
			goal,
			strings.Join(h.Schedule, ";"),
			note,
			strings.Join(h.Checkins, ";"),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Read parses CSV rows back into habits, validating every field. The header
// row is required.
func Read(r io.Reader) ([]models.Habit, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Validationf("failed to parse import data: %v", err)
	}
	if len(records) == 0 {
		return nil, errors.Validationf("import data is empty")
	}
	if !slices.Equal(records[0], header) {
		return nil, errors.Validationf("unexpected import header %v", records[0])
	}

	var habits []models.Habit
	for line, record := range records[1:] {
		h, err := parseRecord(record)
		if err != nil {
			return nil, errors.Validationf("line %d: %v", line+2, err)
		}
		habits = append(habits, h)
	}
	return habits, nil
}

func parseRecord(record []string) (models.Habit, error) {
	var h models.Habit
	if len(record) != len(header) {
		return h, errors.Validationf("expected %d fields, got %d", len(header), len(record))
	}

	id, err := strconv.Atoi(record[0])
	if err != nil || id <= 0 {
		return h, errors.Validationf("invalid habit id %q", record[0])
	}
	h.ID = id

	if h.Name, err = validation.Name(record[1]); err != nil {
		return h, err
	}
	if h.Created, err = validation.Day(record[2]); err != nil {
		return h, err
	}
	if h.Archived, err = strconv.ParseBool(record[3]); err != nil {
		return h, errors.Validationf("invalid archived flag %q", record[3])
	}

	if record[4] != "" {
		goal, err := strconv.Atoi(record[4])
		if err != nil {
			return h, errors.Validationf("invalid goal %q", record[4])
		}
		if err := validation.Goal(goal); err != nil {
			return h, err
		}
		h.WeeklyGoal = &goal
	}

	if record[5] != "" {
		tags, err := validation.Weekdays(strings.ReplaceAll(record[5], ";", ","))
		if err != nil {
			return h, err
		}
		h.Schedule = tags
	}

	if record[6] != "" {
		note := record[6]
		h.Note = &note
	}

	if record[7] != "" {
		for _, day := range strings.Split(record[7], ";") {
			day, err := validation.Day(day)
			if err != nil {
				return h, err
			}
			h.AddCheckin(day)
		}
	}
	return h, nil
}

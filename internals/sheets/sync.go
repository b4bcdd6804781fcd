// internals/sheets/sync.go
package sheets

import (
	"context"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"perseverantia_backend/internals/constants"
	"perseverantia_backend/internals/features/registration/model"
	"perseverantia_backend/internals/features/registration/service"
)

// Syncer pushes registrations to the spreadsheet in the background. The sheet
// is a convenience mirror: failures are logged and recorded, never surfaced to
// the submitting school.
type Syncer struct {
	cli         *Client
	db          *gorm.DB
	projections *service.ProjectionService
	timeout     time.Duration
}

func NewSyncer(cli *Client, db *gorm.DB) *Syncer {
	return &Syncer{
		cli:         cli,
		db:          db,
		projections: service.NewProjectionService(db),
		timeout:     30 * time.Second,
	}
}

// Enabled reports whether a spreadsheet is configured at all.
func (s *Syncer) Enabled() bool { return s != nil && s.cli != nil }

func (s *Syncer) NotifyStage(schoolName string) {
	s.notify(constants.CategoryStage, schoolName)
}

func (s *Syncer) NotifySports(schoolName string) {
	s.notify(constants.CategorySports, schoolName)
}

func (s *Syncer) NotifyClassroom(schoolName string) {
	s.notify(constants.CategoryClassroom, schoolName)
}

func (s *Syncer) notify(category, schoolName string) {
	if !s.Enabled() {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		err := s.syncSchool(ctx, category, schoolName)
		cancel()

		s.recordAttempt(category, schoolName, err)
		if err != nil {
			log.Printf("⚠️ Sheet sync failed for %s (%s): %v", schoolName, category, err)
			return
		}
		log.Printf("✅ Sheet sync done for %s (%s)", schoolName, category)
	}()
}

// syncSchool replaces every row the school previously had on the category
// sheet with the current state of its registrations.
func (s *Syncer) syncSchool(ctx context.Context, category, schoolName string) error {
	check, err := s.projections.CheckRegistration(ctx, category, schoolName)
	if err != nil {
		return err
	}
	if check.School == nil {
		return nil
	}

	now := time.Now()
	var (
		sheet   string
		newRows [][]interface{}
	)
	switch category {
	case constants.CategorySports:
		sheet = SheetSports
		newRows = SportsRows(check.School, check.Registrations, now)
	case constants.CategoryClassroom:
		sheet = SheetClassroom
		newRows = ClassroomRows(check.School, check.Registrations, now)
	default:
		sheet = SheetStage
		newRows = StageRows(check.School, check.Registrations, now)
	}

	return s.replaceSchoolRows(ctx, sheet, schoolName, newRows)
}

func (s *Syncer) replaceSchoolRows(ctx context.Context, sheet, schoolName string, newRows [][]interface{}) error {
	existing, err := s.cli.readAll(ctx, sheet)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		existing = existing[1:] // skip header
	}
	kept := FilterSchoolRows(existing, schoolName)

	if err := s.cli.clearBelowHeader(ctx, sheet); err != nil {
		return err
	}
	if err := s.cli.writeRows(ctx, sheet, "A2", kept); err != nil {
		return err
	}
	return s.cli.appendRows(ctx, sheet, newRows)
}

// recordAttempt writes the audit row on its own context: when the sync itself
// died on the attempt deadline, the failure record must still land.
func (s *Syncer) recordAttempt(category, schoolName string, syncErr error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	entry := SheetSyncLogModel{
		SheetSyncLogCategory:   category,
		SheetSyncLogSchoolName: schoolName,
		SheetSyncLogStatus:     SyncStatusOK,
	}
	if syncErr != nil {
		msg := syncErr.Error()
		entry.SheetSyncLogStatus = SyncStatusFailed
		entry.SheetSyncLogError = &msg
	}
	if payload, err := sonic.Marshal(map[string]string{
		"category":   category,
		"schoolName": schoolName,
	}); err == nil {
		entry.SheetSyncLogPayload = payload
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		log.Printf("⚠️ Could not record sheet sync attempt: %v", err)
	}
}

// EnsureSheets creates any missing category sheet and writes its header row.
func (s *Syncer) EnsureSheets(ctx context.Context) error {
	if !s.Enabled() {
		return nil
	}
	titles, err := s.cli.sheetTitles(ctx)
	if err != nil {
		return err
	}

	wanted := []struct {
		name    string
		headers []interface{}
	}{
		{SheetStage, StageHeaders},
		{SheetSports, SportsHeaders},
		{SheetClassroom, ClassroomHeaders},
	}
	for _, w := range wanted {
		if titles[w.name] {
			continue
		}
		if err := s.cli.addSheet(ctx, w.name); err != nil {
			return err
		}
		if err := s.cli.writeRows(ctx, w.name, "A1", [][]interface{}{w.headers}); err != nil {
			return err
		}
		log.Printf("✅ Created sheet: %s", w.name)
	}
	return nil
}

// ResyncAll rebuilds all three sheets from the database. Used by the periodic
// scheduler to heal missed pushes.
func (s *Syncer) ResyncAll(ctx context.Context) error {
	if !s.Enabled() {
		return nil
	}

	var schools []model.SchoolModel
	if err := s.db.WithContext(ctx).Order("school_name ASC").Find(&schools).Error; err != nil {
		return err
	}

	now := time.Now()
	categories := []struct {
		name  string
		sheet string
		build func(*model.SchoolModel, []service.RegisteredEventView, time.Time) [][]interface{}
	}{
		{constants.CategoryStage, SheetStage, StageRows},
		{constants.CategorySports, SheetSports, SportsRows},
		{constants.CategoryClassroom, SheetClassroom, ClassroomRows},
	}

	for _, cat := range categories {
		var rows [][]interface{}
		for i := range schools {
			check, err := s.projections.CheckRegistration(ctx, cat.name, schools[i].SchoolName)
			if err != nil {
				return err
			}
			if check.School == nil || !check.HasRegistration {
				continue
			}
			rows = append(rows, cat.build(check.School, check.Registrations, now)...)
		}
		if err := s.cli.clearBelowHeader(ctx, cat.sheet); err != nil {
			return err
		}
		if err := s.cli.writeRows(ctx, cat.sheet, "A2", rows); err != nil {
			return err
		}
	}
	log.Printf("✅ Sheet resync complete (%d school(s))", len(schools))
	return nil
}

// file: internals/features/boarding/attendance/service/ledger_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	m "pesantrenku_backend/internals/features/boarding/attendance/model"
	occSvc "pesantrenku_backend/internals/features/boarding/occurrences/service"
)

/* =======================================================
   Attendance Ledger (boarding)
   Upsert per identitas (template, asrama, peserta, tanggal).
   Applicability selalu di-derive ulang sebelum menulis;
   tidak ada jalur override.
   ======================================================= */

// ErrNotApplicable: occurrence tidak berlaku untuk (asrama, tanggal) itu.
var ErrNotApplicable = errors.New("kegiatan tidak berlaku untuk asrama/tanggal tersebut")

type Ledger struct {
	DB *gorm.DB
}

type MarkInput struct {
	TemplateID      uuid.UUID
	DormitoryID     uuid.UUID
	ParticipantKind m.ParticipantKind
	ParticipantID   uuid.UUID
	Date            time.Time
	Status          m.AttendanceStatus
	Notes           *string
	RecordedBy      uuid.UUID
}

// markUpdateColumns: kolom yang boleh ditimpa saat record identitas sudah
// ada. Kolom identitas (template, asrama, peserta, tanggal) tidak pernah
// ikut — upsert tidak boleh memindahkan record ke identitas lain.
func markUpdateColumns(in MarkInput, snapshot datatypes.JSON) map[string]any {
	return map[string]any{
		"boarding_attendance_status":              in.Status,
		"boarding_attendance_notes":               in.Notes,
		"boarding_attendance_recorded_by_user_id": in.RecordedBy,
		"boarding_attendance_occurrence_snapshot": snapshot,
	}
}

// applyMark menyamakan struct in-memory dengan kolom yang barusan ditulis.
func applyMark(record *m.BoardingAttendanceModel, in MarkInput, snapshot datatypes.JSON) {
	record.BoardingAttendanceStatus = in.Status
	record.BoardingAttendanceNotes = in.Notes
	record.BoardingAttendanceRecordedByUserID = in.RecordedBy
	record.BoardingAttendanceOccurrenceSnapshot = snapshot
}

func newAttendanceRecord(in MarkInput, snapshot datatypes.JSON) m.BoardingAttendanceModel {
	return m.BoardingAttendanceModel{
		BoardingAttendanceTemplateID:         in.TemplateID,
		BoardingAttendanceDormitoryID:        in.DormitoryID,
		BoardingAttendanceParticipantKind:    in.ParticipantKind,
		BoardingAttendanceParticipantID:      in.ParticipantID,
		BoardingAttendanceDate:               in.Date,
		BoardingAttendanceStatus:             in.Status,
		BoardingAttendanceNotes:              in.Notes,
		BoardingAttendanceRecordedByUserID:   in.RecordedBy,
		BoardingAttendanceOccurrenceSnapshot: snapshot,
	}
}

// Mark meng-upsert satu catatan absensi. Mengembalikan record final dan
// apakah call ini insert (true) atau update (false) — murni untuk feedback
// pemanggil, tidak ada semantik lain yang menempel.
func (l *Ledger) Mark(ctx context.Context, in MarkInput) (*m.BoardingAttendanceModel, bool, error) {
	// 1) Re-derive applicability lewat resolver
	resolver := occSvc.Resolver{DB: l.DB}
	occ, err := resolver.IsApplicable(ctx, in.TemplateID, in.DormitoryID, in.Date)
	if err != nil {
		return nil, false, err
	}
	if occ == nil {
		return nil, false, ErrNotApplicable
	}

	snapshot, err := sonic.Marshal(occ)
	if err != nil {
		return nil, false, err
	}

	// 2) Upsert dalam satu transaksi; unique index komposit menjadi
	//    penjaga race di level storage — pihak yang kalah menerima
	//    unique violation, bukan duplikat diam-diam.
	var record m.BoardingAttendanceModel
	inserted := false
	err = l.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		er := tx.
			Where("boarding_attendance_template_id = ?", in.TemplateID).
			Where("boarding_attendance_dormitory_id = ?", in.DormitoryID).
			Where("boarding_attendance_participant_kind = ?", in.ParticipantKind).
			Where("boarding_attendance_participant_id = ?", in.ParticipantID).
			Where("boarding_attendance_date = ?", in.Date.Format("2006-01-02")).
			First(&record).Error

		switch {
		case er == nil:
			// sudah ada → perbarui; status apa pun boleh menimpa status apa pun
			if er2 := tx.Model(&record).Updates(markUpdateColumns(in, snapshot)).Error; er2 != nil {
				return er2
			}
			applyMark(&record, in, snapshot)
			return nil

		case errors.Is(er, gorm.ErrRecordNotFound):
			record = newAttendanceRecord(in, snapshot)
			if er2 := tx.Create(&record).Error; er2 != nil {
				return er2
			}
			inserted = true
			return nil

		default:
			return er
		}
	})
	if err != nil {
		return nil, false, err
	}
	return &record, inserted, nil
}

/* =======================================================
   Recap — agregasi murni untuk pelaporan.
   ======================================================= */

type RecapFilter struct {
	DormitoryID   *uuid.UUID
	TemplateID    *uuid.UUID
	ParticipantID *uuid.UUID
	DateFrom      time.Time
	DateTo        time.Time
}

// Recap menghitung jumlah record per status dalam rentang tanggal.
// Read-only; tidak ada aturan transisi status.
func (l *Ledger) Recap(ctx context.Context, f RecapFilter) (map[m.AttendanceStatus]int64, error) {
	q := l.DB.WithContext(ctx).
		Model(&m.BoardingAttendanceModel{}).
		Where("boarding_attendance_date BETWEEN ? AND ?",
			f.DateFrom.Format("2006-01-02"), f.DateTo.Format("2006-01-02"))

	if f.DormitoryID != nil {
		q = q.Where("boarding_attendance_dormitory_id = ?", *f.DormitoryID)
	}
	if f.TemplateID != nil {
		q = q.Where("boarding_attendance_template_id = ?", *f.TemplateID)
	}
	if f.ParticipantID != nil {
		q = q.Where("boarding_attendance_participant_id = ?", *f.ParticipantID)
	}

	type row struct {
		Status m.AttendanceStatus
		Total  int64
	}
	var rows []row
	if err := q.
		Select("boarding_attendance_status AS status, COUNT(*) AS total").
		Group("boarding_attendance_status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	// status tanpa record tetap muncul dengan nilai 0
	counts := map[m.AttendanceStatus]int64{
		m.AttendancePresent: 0,
		m.AttendanceSick:    0,
		m.AttendanceExcused: 0,
		m.AttendanceAbsent:  0,
	}
	for _, r := range rows {
		counts[r.Status] = r.Total
	}
	return counts, nil
}

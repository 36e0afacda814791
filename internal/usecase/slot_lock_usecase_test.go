package usecase

import (
	"context"
	"database/sql"
	"io"
	"testing"
	"time"

	"hospital-booking-service/internal/delivery/dto"
	"hospital-booking-service/internal/domain/entity"
	"hospital-booking-service/internal/domain/repository"
	"hospital-booking-service/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// The usecases only touch the database through the repository
// interfaces, so these tests run them against in-memory repositories.
// The *gorm.DB handle is satisfied by a connection pool stub that
// implements gorm's transaction interfaces without a real connection.

type stubConnPool struct{}

func (stubConnPool) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	return nil, nil
}

func (stubConnPool) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (stubConnPool) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (stubConnPool) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func (p *stubConnPool) BeginTx(ctx context.Context, opts *sql.TxOptions) (gorm.ConnPool, error) {
	return &stubTx{}, nil
}

type stubTx struct {
	stubConnPool
}

func (*stubTx) Commit() error   { return nil }
func (*stubTx) Rollback() error { return nil }

func stubDB() *gorm.DB {
	pool := &stubConnPool{}
	db := &gorm.DB{Config: &gorm.Config{ConnPool: pool}}
	db.Statement = &gorm.Statement{DB: db, ConnPool: pool, Context: context.Background()}
	return db
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testCache(log *logrus.Logger) *service.AvailabilityCache {
	// Cache failures are non-fatal, so an unreachable address is enough.
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 10 * time.Millisecond,
		MaxRetries:  -1,
	})
	return service.NewAvailabilityCache(client, log, time.Minute)
}

// fakeSlotLockRepo mimics the lock table, including the unique index
// over doctor/date/time that covers expired rows too.
type fakeSlotLockRepo struct {
	locks          []entity.TimeSlotLock
	missingDoctors map[uuid.UUID]bool
}

var _ repository.SlotLockRepository = (*fakeSlotLockRepo)(nil)

func (f *fakeSlotLockRepo) Create(db *gorm.DB, lock *entity.TimeSlotLock) error {
	if f.missingDoctors[lock.DoctorID] {
		return &pgconn.PgError{Code: "23503", ConstraintName: "time_slot_locks_doctor_id_fkey"}
	}
	for _, existing := range f.locks {
		if existing.DoctorID == lock.DoctorID && existing.SlotDate.Equal(lock.SlotDate) && existing.SlotTime == lock.SlotTime {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_time_slot_locks_slot"}
		}
	}
	lock.ID = uuid.New()
	f.locks = append(f.locks, *lock)
	return nil
}

func (f *fakeSlotLockRepo) FindActiveBySlot(db *gorm.DB, doctorID uuid.UUID, date time.Time, slotTime string, now time.Time) ([]entity.TimeSlotLock, error) {
	var out []entity.TimeSlotLock
	for _, lock := range f.locks {
		if lock.DoctorID == doctorID && lock.SlotDate.Equal(date) && lock.SlotTime == slotTime && lock.ExpiresAt.After(now) {
			out = append(out, lock)
		}
	}
	return out, nil
}

func (f *fakeSlotLockRepo) FindActiveByDoctorDate(db *gorm.DB, doctorID uuid.UUID, date time.Time, now time.Time) ([]entity.TimeSlotLock, error) {
	var out []entity.TimeSlotLock
	for _, lock := range f.locks {
		if lock.DoctorID == doctorID && lock.SlotDate.Equal(date) && lock.ExpiresAt.After(now) {
			out = append(out, lock)
		}
	}
	return out, nil
}

func (f *fakeSlotLockRepo) DeleteByHolder(db *gorm.DB, doctorID uuid.UUID, date time.Time, slotTime string, holder string) (int64, error) {
	return f.deleteWhere(func(lock entity.TimeSlotLock) bool {
		return lock.DoctorID == doctorID && lock.SlotDate.Equal(date) && lock.SlotTime == slotTime && lock.LockedBy == holder
	}), nil
}

func (f *fakeSlotLockRepo) DeleteBySlot(db *gorm.DB, doctorID uuid.UUID, date time.Time, slotTime string) (int64, error) {
	return f.deleteWhere(func(lock entity.TimeSlotLock) bool {
		return lock.DoctorID == doctorID && lock.SlotDate.Equal(date) && lock.SlotTime == slotTime
	}), nil
}

func (f *fakeSlotLockRepo) DeleteExpiredBySlot(db *gorm.DB, doctorID uuid.UUID, date time.Time, slotTime string, now time.Time) (int64, error) {
	return f.deleteWhere(func(lock entity.TimeSlotLock) bool {
		return lock.DoctorID == doctorID && lock.SlotDate.Equal(date) && lock.SlotTime == slotTime && !lock.ExpiresAt.After(now)
	}), nil
}

func (f *fakeSlotLockRepo) DeleteExpiredBefore(db *gorm.DB, cutoff time.Time) (int64, error) {
	return f.deleteWhere(func(lock entity.TimeSlotLock) bool {
		return lock.ExpiresAt.Before(cutoff)
	}), nil
}

func (f *fakeSlotLockRepo) deleteWhere(match func(entity.TimeSlotLock) bool) int64 {
	var kept []entity.TimeSlotLock
	var deleted int64
	for _, lock := range f.locks {
		if match(lock) {
			deleted++
			continue
		}
		kept = append(kept, lock)
	}
	f.locks = kept
	return deleted
}

// fakeAppointmentRepo mimics the appointments table, including the
// partial unique index over active appointments per slot.
type fakeAppointmentRepo struct {
	appointments   []entity.Appointment
	missingDoctors map[uuid.UUID]bool
}

var _ repository.AppointmentRepository = (*fakeAppointmentRepo)(nil)

func (f *fakeAppointmentRepo) Create(db *gorm.DB, appointment *entity.Appointment) error {
	if f.missingDoctors[appointment.DoctorID] {
		return &pgconn.PgError{Code: "23503", ConstraintName: "appointments_doctor_id_fkey"}
	}
	for _, existing := range f.appointments {
		if existing.DoctorID == appointment.DoctorID && existing.AppointmentDate.Equal(appointment.AppointmentDate) &&
			existing.AppointmentTime == appointment.AppointmentTime && existing.IsActive() {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_appointments_active_slot"}
		}
	}
	appointment.ID = uuid.New()
	f.appointments = append(f.appointments, *appointment)
	return nil
}

func (f *fakeAppointmentRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			found := f.appointments[i]
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) FindActiveBySlot(db *gorm.DB, doctorID uuid.UUID, date time.Time, slotTime string) (*entity.Appointment, error) {
	for i := range f.appointments {
		a := f.appointments[i]
		if a.DoctorID == doctorID && a.AppointmentDate.Equal(date) && a.AppointmentTime == slotTime && a.IsActive() {
			return &a, nil
		}
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) FindActiveByDoctorDate(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range f.appointments {
		if a.DoctorID == doctorID && a.AppointmentDate.Equal(date) && a.IsActive() {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) Cancel(db *gorm.DB, id uuid.UUID) (int64, error) {
	for i := range f.appointments {
		if f.appointments[i].ID == id && !f.appointments[i].IsCancelled() {
			f.appointments[i].Cancel()
			return 1, nil
		}
	}
	return 0, nil
}

type fakeAuditService struct{}

var _ service.AuditService = (*fakeAuditService)(nil)

func (*fakeAuditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	return nil
}

func (*fakeAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	return nil
}

func (*fakeAuditService) LogDelete(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) error {
	return nil
}

type slotLockFixture struct {
	usecase         SlotLockUsecase
	appointmentUC   AppointmentUsecase
	lockRepo        *fakeSlotLockRepo
	appointmentRepo *fakeAppointmentRepo
	doctorID        uuid.UUID
}

func newSlotLockFixture() *slotLockFixture {
	db := stubDB()
	log := testLogger()
	cache := testCache(log)
	lockRepo := &fakeSlotLockRepo{missingDoctors: map[uuid.UUID]bool{}}
	appointmentRepo := &fakeAppointmentRepo{missingDoctors: map[uuid.UUID]bool{}}

	return &slotLockFixture{
		usecase:         NewSlotLockUsecase(db, log, lockRepo, appointmentRepo, cache, 5*time.Minute),
		appointmentUC:   NewAppointmentUsecase(db, log, appointmentRepo, lockRepo, cache, &fakeAuditService{}),
		lockRepo:        lockRepo,
		appointmentRepo: appointmentRepo,
		doctorID:        uuid.New(),
	}
}

const (
	testDate = "2030-05-20"
	testTime = "09:00"
)

func checkReq() *dto.CheckSlotRequest {
	return &dto.CheckSlotRequest{}
}

func reserveReq(sessionID string) *dto.CheckSlotRequest {
	return &dto.CheckSlotRequest{Action: dto.SlotActionReserve, SessionID: sessionID}
}

func releaseReq(sessionID string) *dto.CheckSlotRequest {
	return &dto.CheckSlotRequest{Action: dto.SlotActionRelease, SessionID: sessionID}
}

func TestCheckSlot_BookedTakesPrecedenceOverReserved(t *testing.T) {
	f := newSlotLockFixture()
	ctx := context.Background()
	dateVal, _ := time.Parse("2006-01-02", testDate)

	f.appointmentRepo.appointments = append(f.appointmentRepo.appointments, entity.Appointment{
		ID:              uuid.New(),
		DoctorID:        f.doctorID,
		AppointmentDate: dateVal,
		AppointmentTime: "09:00:00",
		PatientName:     "Ahmad Rahimi",
		PatientPhone:    "0791234567",
		Status:          entity.AppointmentStatusConfirmed,
	})
	f.lockRepo.locks = append(f.lockRepo.locks, entity.TimeSlotLock{
		ID:        uuid.New(),
		DoctorID:  f.doctorID,
		SlotDate:  dateVal,
		SlotTime:  "09:00:00",
		LockedBy:  "session-other",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	})

	resp, err := f.usecase.CheckSlot(ctx, f.doctorID, testDate, testTime, checkReq())
	if err != nil {
		t.Fatalf("CheckSlot error = %v", err)
	}
	if resp.Available {
		t.Error("expected slot unavailable")
	}
	if resp.Success {
		t.Error("conflict response must report success = false")
	}
	if resp.Code != CodeAlreadyBooked {
		t.Errorf("code = %q, want %q (booking outranks a concurrent lock)", resp.Code, CodeAlreadyBooked)
	}
	if resp.Appointment == nil || resp.Appointment.PatientName != "Ahmad Rahimi" {
		t.Errorf("expected conflicting appointment details, got %+v", resp.Appointment)
	}
}

func TestCheckSlot_ReleaseOnlyRemovesOwnLock(t *testing.T) {
	f := newSlotLockFixture()
	ctx := context.Background()
	dateVal, _ := time.Parse("2006-01-02", testDate)

	f.lockRepo.locks = append(f.lockRepo.locks, entity.TimeSlotLock{
		ID:        uuid.New(),
		DoctorID:  f.doctorID,
		SlotDate:  dateVal,
		SlotTime:  "09:00:00",
		LockedBy:  "session-a",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	})

	// A different holder's release is a harmless no-op.
	resp, err := f.usecase.CheckSlot(ctx, f.doctorID, testDate, testTime, releaseReq("session-b"))
	if err != nil {
		t.Fatalf("release by other holder error = %v", err)
	}
	if !resp.Released {
		t.Error("release must report released = true even when nothing matched")
	}
	if len(f.lockRepo.locks) != 1 {
		t.Fatalf("foreign release removed the lock, %d rows left", len(f.lockRepo.locks))
	}

	resp, err = f.usecase.CheckSlot(ctx, f.doctorID, testDate, testTime, checkReq())
	if err != nil {
		t.Fatalf("CheckSlot error = %v", err)
	}
	if resp.Available || resp.Code != CodeAlreadyReserved {
		t.Errorf("lock must still block the slot, got available=%v code=%q", resp.Available, resp.Code)
	}

	// The owner's release removes it; repeating is idempotent.
	for i := 0; i < 2; i++ {
		resp, err = f.usecase.CheckSlot(ctx, f.doctorID, testDate, testTime, releaseReq("session-a"))
		if err != nil {
			t.Fatalf("release attempt %d error = %v", i+1, err)
		}
		if !resp.Released {
			t.Errorf("release attempt %d: released = false", i+1)
		}
	}
	if len(f.lockRepo.locks) != 0 {
		t.Fatalf("expected no locks after owner release, got %d", len(f.lockRepo.locks))
	}

	resp, err = f.usecase.CheckSlot(ctx, f.doctorID, testDate, testTime, checkReq())
	if err != nil {
		t.Fatalf("CheckSlot error = %v", err)
	}
	if !resp.Available {
		t.Errorf("slot must be free after release, got code=%q", resp.Code)
	}
}

func TestCheckSlot_ReserveBookReserveSequence(t *testing.T) {
	f := newSlotLockFixture()
	ctx := context.Background()

	// First visitor reserves the slot.
	resp, err := f.usecase.CheckSlot(ctx, f.doctorID, testDate, testTime, reserveReq("session-a"))
	if err != nil {
		t.Fatalf("reserve error = %v", err)
	}
	if !resp.Success || !resp.Available {
		t.Fatalf("reserve = %+v, want success and available", resp)
	}
	if resp.LockID == "" || resp.ExpiresAt == nil {
		t.Errorf("reserve must return the lock id and expiry, got %+v", resp)
	}

	// A second visitor hits the lock.
	resp, err = f.usecase.CheckSlot(ctx, f.doctorID, testDate, testTime, reserveReq("session-b"))
	if err != nil {
		t.Fatalf("second reserve error = %v", err)
	}
	if resp.Success || resp.Available {
		t.Errorf("second reserve = %+v, want conflict", resp)
	}
	if resp.Code != CodeAlreadyReserved {
		t.Errorf("code = %q, want %q", resp.Code, CodeAlreadyReserved)
	}

	// The first visitor completes the booking; the appointment
	// supersedes the lock.
	bookResp, err := f.appointmentUC.Book(ctx, f.doctorID, &dto.BookAppointmentRequest{
		Date:         testDate,
		Time:         testTime,
		PatientName:  "Ahmad Rahimi",
		PatientPhone: "0791234567",
	})
	if err != nil {
		t.Fatalf("Book error = %v", err)
	}
	if !bookResp.Success {
		t.Fatal("Book reported failure")
	}
	if len(f.lockRepo.locks) != 0 {
		t.Errorf("booking must clear lock rows, %d left", len(f.lockRepo.locks))
	}

	// From now on the slot reports the booking, not the lock.
	resp, err = f.usecase.CheckSlot(ctx, f.doctorID, testDate, testTime, reserveReq("session-b"))
	if err != nil {
		t.Fatalf("reserve after booking error = %v", err)
	}
	if resp.Success || resp.Available {
		t.Errorf("reserve after booking = %+v, want conflict", resp)
	}
	if resp.Code != CodeAlreadyBooked {
		t.Errorf("code = %q, want %q", resp.Code, CodeAlreadyBooked)
	}
	if resp.Appointment == nil || resp.Appointment.PatientName != "Ahmad Rahimi" {
		t.Errorf("expected conflicting appointment details, got %+v", resp.Appointment)
	}
}

func TestCheckSlot_ReserveReplacesExpiredLock(t *testing.T) {
	f := newSlotLockFixture()
	ctx := context.Background()
	dateVal, _ := time.Parse("2006-01-02", testDate)

	// An expired row still occupies the unique index until cleared.
	f.lockRepo.locks = append(f.lockRepo.locks, entity.TimeSlotLock{
		ID:        uuid.New(),
		DoctorID:  f.doctorID,
		SlotDate:  dateVal,
		SlotTime:  "09:00:00",
		LockedBy:  "session-old",
		ExpiresAt: time.Now().Add(-time.Minute),
	})

	resp, err := f.usecase.CheckSlot(ctx, f.doctorID, testDate, testTime, reserveReq("session-a"))
	if err != nil {
		t.Fatalf("reserve error = %v", err)
	}
	if !resp.Available {
		t.Fatalf("reserve over expired lock = %+v, want available", resp)
	}
	if len(f.lockRepo.locks) != 1 || f.lockRepo.locks[0].LockedBy != "session-a" {
		t.Errorf("expected the expired row replaced, got %+v", f.lockRepo.locks)
	}
}

func TestCheckSlot_ReserveUnknownDoctor(t *testing.T) {
	f := newSlotLockFixture()
	ctx := context.Background()
	unknown := uuid.New()
	f.lockRepo.missingDoctors[unknown] = true

	_, err := f.usecase.CheckSlot(ctx, unknown, testDate, testTime, reserveReq("session-a"))
	if err != ErrDoctorNotFound {
		t.Fatalf("reserve for unknown doctor error = %v, want ErrDoctorNotFound", err)
	}
}

func TestCheckSlot_HolderRequiredForReserve(t *testing.T) {
	f := newSlotLockFixture()

	_, err := f.usecase.CheckSlot(context.Background(), f.doctorID, testDate, testTime, &dto.CheckSlotRequest{Action: dto.SlotActionReserve})
	if err != ErrHolderRequired {
		t.Fatalf("reserve without holder error = %v, want ErrHolderRequired", err)
	}
}

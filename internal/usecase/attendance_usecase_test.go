package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"geo-attendance-backend/internal/model"
	"geo-attendance-backend/internal/repository"
	"geo-attendance-backend/internal/repository/memory"
	"geo-attendance-backend/internal/storage"
)

type fakePhotoStore struct {
	mu      sync.Mutex
	saved   map[string][]byte
	removed []string
	saveErr error
	seq     int
}

func newFakePhotoStore() *fakePhotoStore {
	return &fakePhotoStore{saved: make(map[string][]byte)}
}

func (f *fakePhotoStore) Save(_ context.Context, data []byte, prefix string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return "", f.saveErr
	}
	f.seq++
	ref := fmt.Sprintf("attendance/%s_%d.jpg", prefix, f.seq)
	f.saved[ref] = data
	return ref, nil
}

func (f *fakePhotoStore) Remove(_ context.Context, ref string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.saved, ref)
	f.removed = append(f.removed, ref)
	return nil
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

type fixture struct {
	uc        *AttendanceUsecase
	store     *memory.AttendanceStore
	locations *memory.OfficeLocations
	photos    *fakePhotoStore
	clock     *testClock
}

var jakarta = time.FixedZone("WIB", 7*3600)

func newFixture() *fixture {
	f := &fixture{
		store:     memory.NewAttendanceStore(),
		locations: memory.NewOfficeLocations(office("HQ", officeLat, officeLon, 100, true)),
		photos:    newFakePhotoStore(),
		clock:     &testClock{now: time.Date(2026, 10, 16, 7, 45, 0, 0, jakarta)},
	}
	f.uc = NewAttendanceUsecase(f.store, NewLocationValidator(f.locations), f.photos, f.clock)
	return f
}

var (
	onSite  = CheckInput{Latitude: officeLat, Longitude: officeLon}
	offSite = CheckInput{Latitude: -6.3, Longitude: 106.9}
)

func TestCheckInCreatesPresentRecord(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	rec, err := f.uc.CheckIn(ctx, 7, onSite)
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	if rec.Status != model.AttendanceStatusPresent {
		t.Errorf("status = %q, want present", rec.Status)
	}
	if rec.CheckInTime == nil || !rec.CheckInTime.Equal(f.clock.Now()) {
		t.Errorf("check-in time = %v, want %v", rec.CheckInTime, f.clock.Now())
	}
	if rec.CheckOutTime != nil {
		t.Error("check-out must stay unset after check-in")
	}
	if got := time.Time(rec.Date).Format("2006-01-02"); got != "2026-10-16" {
		t.Errorf("date = %s, want 2026-10-16", got)
	}

	today, err := f.uc.Today(ctx, 7)
	if err != nil || today == nil || today.ID != rec.ID {
		t.Fatalf("Today = %+v, %v", today, err)
	}
}

func TestCheckInTwiceIsRejected(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	first, err := f.uc.CheckIn(ctx, 7, onSite)
	if err != nil {
		t.Fatal(err)
	}
	f.clock.Set(f.clock.Now().Add(2 * time.Hour))

	_, err = f.uc.CheckIn(ctx, 7, onSite)
	if !errors.Is(err, ErrAlreadyCheckedIn) {
		t.Fatalf("second CheckIn err = %v, want ErrAlreadyCheckedIn", err)
	}
	var stateErr *StateError
	if !errors.As(err, &stateErr) || stateErr.Attendance == nil {
		t.Fatal("rejection should carry the current record")
	}
	if !stateErr.Attendance.CheckInTime.Equal(*first.CheckInTime) {
		t.Fatalf("check-in time changed: %v -> %v", first.CheckInTime, stateErr.Attendance.CheckInTime)
	}
	if f.store.Len() != 1 {
		t.Fatalf("store has %d records, want 1", f.store.Len())
	}
}

func TestCheckInOnExistingLeaveRecord(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.store.Put(model.Attendance{UserID: 7, Date: memory.Day(2026, 10, 16), Status: model.AttendanceStatusLeavePermitted})

	rec, err := f.uc.CheckIn(ctx, 7, onSite)
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	if rec.Status != model.AttendanceStatusPresent {
		t.Fatalf("status = %q, want present", rec.Status)
	}
	if f.store.Len() != 1 {
		t.Fatalf("existing record should be updated in place, store has %d", f.store.Len())
	}
}

func TestCheckOutStateMachine(t *testing.T) {
	ctx := context.Background()

	t.Run("before check-in", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.CheckOut(ctx, 7, onSite)
		if !errors.Is(err, ErrNotCheckedIn) {
			t.Fatalf("err = %v, want ErrNotCheckedIn", err)
		}
	})

	t.Run("record without check-in", func(t *testing.T) {
		f := newFixture()
		f.store.Put(model.Attendance{UserID: 7, Date: memory.Day(2026, 10, 16), Status: model.AttendanceStatusAbsent})
		_, err := f.uc.CheckOut(ctx, 7, onSite)
		if !errors.Is(err, ErrNotCheckedIn) {
			t.Fatalf("err = %v, want ErrNotCheckedIn", err)
		}
	})

	t.Run("check-out then again", func(t *testing.T) {
		f := newFixture()
		if _, err := f.uc.CheckIn(ctx, 7, onSite); err != nil {
			t.Fatal(err)
		}
		f.clock.Set(time.Date(2026, 10, 16, 17, 5, 0, 0, jakarta))

		rec, err := f.uc.CheckOut(ctx, 7, onSite)
		if err != nil {
			t.Fatalf("CheckOut: %v", err)
		}
		if rec.CheckOutTime == nil || !rec.CheckOutTime.Equal(f.clock.Now()) {
			t.Fatalf("check-out time = %v", rec.CheckOutTime)
		}

		_, err = f.uc.CheckOut(ctx, 7, onSite)
		if !errors.Is(err, ErrAlreadyCheckedOut) {
			t.Fatalf("second CheckOut err = %v, want ErrAlreadyCheckedOut", err)
		}
		stored, _ := f.uc.Today(ctx, 7)
		if !stored.CheckOutTime.Equal(*rec.CheckOutTime) {
			t.Fatal("second check-out modified the record")
		}
	})
}

func TestDayIsolation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	d1, err := f.uc.CheckIn(ctx, 7, onSite)
	if err != nil {
		t.Fatal(err)
	}
	f.clock.Set(time.Date(2026, 10, 17, 7, 50, 0, 0, jakarta))
	d2, err := f.uc.CheckIn(ctx, 7, onSite)
	if err != nil {
		t.Fatalf("check-in on the next day: %v", err)
	}
	if d1.ID == d2.ID {
		t.Fatal("both days share one record")
	}

	// check-out hari kedua tidak menyentuh hari pertama
	if _, err := f.uc.CheckOut(ctx, 7, onSite); err != nil {
		t.Fatal(err)
	}
	list, total, err := f.uc.History(ctx, 7, 1, 30)
	if err != nil {
		t.Fatal(err)
	}
	if total != 2 || len(list) != 2 {
		t.Fatalf("history total=%d len=%d, want 2", total, len(list))
	}
	if list[0].ID != d2.ID || list[1].ID != d1.ID {
		t.Fatal("history must be ordered newest date first")
	}
	if list[1].CheckOutTime != nil {
		t.Fatal("day one was checked out by day two's check-out")
	}
}

func TestTodayUsesLocalCalendarDate(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	// 23:30 WIB tanggal 16 = 16:30 UTC tanggal 16; 00:30 WIB tanggal 17 = 17:30 UTC tanggal 16
	f.clock.Set(time.Date(2026, 10, 16, 23, 30, 0, 0, jakarta))
	if _, err := f.uc.CheckIn(ctx, 7, onSite); err != nil {
		t.Fatal(err)
	}
	f.clock.Set(time.Date(2026, 10, 17, 0, 30, 0, 0, jakarta))
	today, err := f.uc.Today(ctx, 7)
	if err != nil {
		t.Fatal(err)
	}
	if today != nil {
		t.Fatalf("Today after midnight returned yesterday's record %+v", today)
	}
	if _, err := f.uc.CheckOut(ctx, 7, onSite); !errors.Is(err, ErrNotCheckedIn) {
		t.Fatalf("check-out after midnight err = %v, want ErrNotCheckedIn", err)
	}
}

func TestTodayWithoutRecordIsNotAnError(t *testing.T) {
	f := newFixture()
	rec, err := f.uc.Today(context.Background(), 99)
	if err != nil || rec != nil {
		t.Fatalf("Today = %v, %v; want nil, nil", rec, err)
	}
}

func TestConcurrentCheckInCreatesOneRecord(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	const workers = 16
	var (
		wg        sync.WaitGroup
		start     = make(chan struct{})
		errs      = make([]error, workers)
		successes int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = f.uc.CheckIn(ctx, 7, onSite)
		}(i)
	}
	close(start)
	wg.Wait()

	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrAlreadyCheckedIn):
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if successes != 1 {
		t.Fatalf("%d successful check-ins, want exactly 1", successes)
	}
	if f.store.Len() != 1 {
		t.Fatalf("store has %d records, want 1", f.store.Len())
	}
}

// leaveDayInserted menyisipkan hari cuti tepat sebelum Create, seperti
// approval cuti yang commit lebih dulu dari check-in.
type leaveDayInserted struct {
	*memory.AttendanceStore
}

func (s leaveDayInserted) Create(ctx context.Context, a *model.Attendance) error {
	s.Put(model.Attendance{UserID: a.UserID, Date: a.Date, Status: model.AttendanceStatusLeaveAnnual})
	return s.AttendanceStore.Create(ctx, a)
}

func TestCheckInAfterLosingCreateToLeaveDay(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.uc = NewAttendanceUsecase(leaveDayInserted{f.store}, NewLocationValidator(f.locations), f.photos, f.clock)

	in := onSite
	in.Photo = []byte("fake-jpeg")
	rec, err := f.uc.CheckIn(ctx, 7, in)
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	if rec.Status != model.AttendanceStatusPresent || rec.CheckInTime == nil {
		t.Fatalf("record = %+v", rec)
	}
	if f.store.Len() != 1 {
		t.Fatalf("store has %d records, want 1", f.store.Len())
	}
	stored, err := f.store.FindByUserAndDate(ctx, 7, time.Time(rec.Date))
	if err != nil || !stored.HasCheckedIn() || stored.ID != rec.ID {
		t.Fatalf("stored = %+v, %v", stored, err)
	}
	if len(f.photos.removed) != 0 {
		t.Fatalf("photo of a successful check-in was removed: %v", f.photos.removed)
	}
}

// rereadFails: Create selalu konflik dan setiap baca setelah yang pertama gagal.
type rereadFails struct {
	*memory.AttendanceStore
	mu    sync.Mutex
	reads int
}

func (s *rereadFails) FindByUserAndDate(context.Context, uint, time.Time) (*model.Attendance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads++
	if s.reads == 1 {
		return nil, repository.ErrNotFound
	}
	return nil, errors.New("connection reset")
}

func (s *rereadFails) Create(context.Context, *model.Attendance) error {
	return repository.ErrConflict
}

func TestConflictWithFailedRereadStillRejects(t *testing.T) {
	f := newFixture()
	store := &rereadFails{AttendanceStore: f.store}
	uc := NewAttendanceUsecase(store, NewLocationValidator(f.locations), f.photos, f.clock)

	_, err := uc.CheckIn(context.Background(), 7, onSite)
	if !errors.Is(err, ErrAlreadyCheckedIn) || errors.Is(err, ErrStorage) {
		t.Fatalf("err = %v, want ErrAlreadyCheckedIn", err)
	}
	var stateErr *StateError
	if !errors.As(err, &stateErr) || stateErr.Attendance != nil {
		t.Fatalf("state error = %+v, want no record attached", stateErr)
	}
	if store.reads < 2 {
		t.Fatalf("reads = %d, conflict should trigger a re-read", store.reads)
	}
}

func TestLocationCheckedBeforeMutation(t *testing.T) {
	ctx := context.Background()

	t.Run("check-in", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.CheckIn(ctx, 7, CheckInput{Latitude: offSite.Latitude, Longitude: offSite.Longitude, Photo: []byte("jpeg")})
		if !errors.Is(err, ErrLocationRejected) {
			t.Fatalf("err = %v, want ErrLocationRejected", err)
		}
		if f.store.Len() != 0 {
			t.Fatal("rejected check-in created a record")
		}
		if len(f.photos.saved) != 0 {
			t.Fatal("photo stored for rejected check-in")
		}
	})

	t.Run("check-out", func(t *testing.T) {
		f := newFixture()
		if _, err := f.uc.CheckIn(ctx, 7, onSite); err != nil {
			t.Fatal(err)
		}
		_, err := f.uc.CheckOut(ctx, 7, offSite)
		if !errors.Is(err, ErrLocationRejected) {
			t.Fatalf("err = %v, want ErrLocationRejected", err)
		}
		rec, _ := f.uc.Today(ctx, 7)
		if rec.CheckOutTime != nil || rec.CheckOutLatitude != nil || rec.CheckOutPhoto != nil {
			t.Fatal("rejected check-out touched check-out fields")
		}
	})

	t.Run("no active office", func(t *testing.T) {
		f := newFixture()
		hq, _ := f.locations.GetByID(ctx, 1)
		hq.IsActive = false
		_ = f.locations.Update(ctx, hq)
		if _, err := f.uc.CheckIn(ctx, 7, onSite); !errors.Is(err, ErrLocationRejected) {
			t.Fatalf("err = %v, want ErrLocationRejected", err)
		}
	})
}

func TestInvalidCoordinatesRejectedBeforeRead(t *testing.T) {
	f := newFixture()
	for _, in := range []CheckInput{
		{Latitude: 91, Longitude: 0},
		{Latitude: 0, Longitude: -181},
	} {
		if _, err := f.uc.CheckIn(context.Background(), 7, in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("CheckIn(%+v) err = %v, want ErrInvalidInput", in, err)
		}
	}
	if f.locations.Reads != 0 {
		t.Fatal("office locations read for malformed input")
	}
}

func TestPhotoHandling(t *testing.T) {
	ctx := context.Background()

	t.Run("stored reference only", func(t *testing.T) {
		f := newFixture()
		in := onSite
		in.Photo = []byte("fake-jpeg")
		rec, err := f.uc.CheckIn(ctx, 7, in)
		if err != nil {
			t.Fatal(err)
		}
		if rec.CheckInPhoto == nil || *rec.CheckInPhoto != "attendance/checkin_1.jpg" {
			t.Fatalf("photo ref = %v", rec.CheckInPhoto)
		}
		out := onSite
		out.Photo = []byte("fake-jpeg-2")
		rec, err = f.uc.CheckOut(ctx, 7, out)
		if err != nil {
			t.Fatal(err)
		}
		if rec.CheckOutPhoto == nil || *rec.CheckOutPhoto != "attendance/checkout_2.jpg" {
			t.Fatalf("checkout photo ref = %v", rec.CheckOutPhoto)
		}
	})

	t.Run("storage failure fails the check-in", func(t *testing.T) {
		f := newFixture()
		f.photos.saveErr = errors.New("disk full")
		in := onSite
		in.Photo = []byte("fake-jpeg")
		_, err := f.uc.CheckIn(ctx, 7, in)
		if !errors.Is(err, ErrStorage) {
			t.Fatalf("err = %v, want ErrStorage", err)
		}
		if f.store.Len() != 0 {
			t.Fatal("record created although photo failed")
		}
	})

	t.Run("undecodable image", func(t *testing.T) {
		f := newFixture()
		f.photos.saveErr = fmt.Errorf("%w: bad header", storage.ErrInvalidImage)
		in := onSite
		in.Photo = []byte("not an image")
		if _, err := f.uc.CheckIn(ctx, 7, in); !errors.Is(err, ErrInvalidPhoto) {
			t.Fatalf("err = %v, want ErrInvalidPhoto", err)
		}
	})

	t.Run("photo removed when record write fails", func(t *testing.T) {
		f := newFixture()
		f.store.FailWrites = errors.New("connection reset")
		in := onSite
		in.Photo = []byte("fake-jpeg")
		_, err := f.uc.CheckIn(ctx, 7, in)
		if !errors.Is(err, ErrStorage) {
			t.Fatalf("err = %v, want ErrStorage", err)
		}
		if len(f.photos.saved) != 0 || len(f.photos.removed) != 1 {
			t.Fatalf("orphan photo left behind: saved=%v removed=%v", f.photos.saved, f.photos.removed)
		}
	})
}

func TestHistoryPagination(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	for d := 1; d <= 5; d++ {
		f.store.Put(model.Attendance{UserID: 7, Date: memory.Day(2026, 10, d), Status: model.AttendanceStatusPresent})
	}
	f.store.Put(model.Attendance{UserID: 8, Date: memory.Day(2026, 10, 3), Status: model.AttendanceStatusPresent})

	page2, total, err := f.uc.History(ctx, 7, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if total != 5 || len(page2) != 2 {
		t.Fatalf("total=%d len=%d", total, len(page2))
	}
	if got := time.Time(page2[0].Date).Day(); got != 3 {
		t.Fatalf("page 2 starts at day %d, want 3", got)
	}
}

package drivers

import (
	"context"
	"errors"
	"testing"
	"time"

	memclock "github.com/FBenja/fleet-api/internal/adapters/memory/clock"
	memdriverrepo "github.com/FBenja/fleet-api/internal/adapters/memory/driverrepo"
	memtriprepo "github.com/FBenja/fleet-api/internal/adapters/memory/triprepo"
	"github.com/FBenja/fleet-api/internal/app/apperr"
	"github.com/FBenja/fleet-api/internal/domain"
)

func newTestService(t *testing.T) (*Service, *memtriprepo.Repo) {
	t.Helper()
	trips := memtriprepo.NewRepo()
	clk := memclock.NewManualClock(time.Unix(1700000000, 0).UTC())
	return NewService(memdriverrepo.NewRepo(), trips, clk), trips
}

func validInput() Input {
	return Input{
		FirstName:     "Maria",
		LastName:      "Gonzalez",
		NationalID:    "30123456",
		LicenseNumber: "LIC-9981",
		LicenseExpiry: "2027-06-30",
	}
}

func TestService_CreateThenGet(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if got.FullName() != "Maria Gonzalez" {
		t.Fatalf("full name=%q", got.FullName())
	}
	if got.LicenseExpiry.Format("2006-01-02") != "2027-06-30" {
		t.Fatalf("license expiry=%v", got.LicenseExpiry)
	}
}

func TestService_Create_ValidationTable(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*Input)
		field  string
	}{
		{"empty first name", func(in *Input) { in.FirstName = " " }, "first_name"},
		{"empty last name", func(in *Input) { in.LastName = "" }, "last_name"},
		{"national id too short", func(in *Input) { in.NationalID = "123456" }, "national_id"},
		{"national id too long", func(in *Input) { in.NationalID = "123456789012345678901" }, "national_id"},
		{"empty license number", func(in *Input) { in.LicenseNumber = "  " }, "license_number"},
		{"bad expiry date", func(in *Input) { in.LicenseExpiry = "30/06/2027" }, "license_expiry"},
		{"impossible expiry date", func(in *Input) { in.LicenseExpiry = "2027-02-30" }, "license_expiry"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := svc.Create(ctx, in)
			ae := (*apperr.Error)(nil)
			if !errors.As(err, &ae) || ae.Status != 400 || ae.Code != "VALIDATION_ERROR" {
				t.Fatalf("err=%v, want VALIDATION_ERROR 400", err)
			}
			if len(ae.Fields) != 1 || ae.Fields[0].Field != tc.field {
				t.Fatalf("fields=%+v, want single %q failure", ae.Fields, tc.field)
			}
		})
	}
}

func TestService_Create_DuplicateNationalID(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, validInput()); err != nil {
		t.Fatalf("first Create err=%v", err)
	}
	in := validInput()
	in.FirstName = "Other"
	_, err := svc.Create(ctx, in)
	ae := (*apperr.Error)(nil)
	if !errors.As(err, &ae) || ae.Status != 400 || ae.Code != "DUPLICATE_KEY" {
		t.Fatalf("err=%v, want DUPLICATE_KEY 400", err)
	}
}

func TestService_Get_NotFound(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	_, err := svc.Get(context.Background(), domain.DriverID("missing"))
	ae := (*apperr.Error)(nil)
	if !errors.As(err, &ae) || ae.Status != 404 || ae.Code != "NOT_FOUND" {
		t.Fatalf("err=%v, want NOT_FOUND 404", err)
	}
}

func TestService_Delete_ReferencedByTrip(t *testing.T) {
	t.Parallel()

	svc, trips := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	err = trips.Create(ctx, domain.Trip{
		ID:            "trip-1",
		VehicleID:     "vehicle-1",
		DriverID:      created.ID,
		DepartureTime: time.Unix(1700000000, 0).UTC(),
		ArrivalTime:   time.Unix(1700003600, 0).UTC(),
		Origin:        "A",
		Destination:   "B",
		DistanceKM:    10,
	})
	if err != nil {
		t.Fatalf("trip Create err=%v", err)
	}

	err = svc.Delete(ctx, created.ID)
	ae := (*apperr.Error)(nil)
	if !errors.As(err, &ae) || ae.Status != 400 || ae.Code != "REFERENTIAL_CONFLICT" {
		t.Fatalf("err=%v, want REFERENTIAL_CONFLICT 400", err)
	}
	if _, err := svc.Get(ctx, created.ID); err != nil {
		t.Fatalf("Get after rejected delete err=%v", err)
	}
}

func TestService_Update_RoundTrip(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	in := validInput()
	in.LicenseNumber = "LIC-0042"
	updated, err := svc.Update(ctx, created.ID, in)
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if updated.LicenseNumber != "LIC-0042" {
		t.Fatalf("license number=%q", updated.LicenseNumber)
	}
}

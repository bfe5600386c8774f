package trips

import (
	"context"
	"errors"
	"testing"
	"time"

	memclock "github.com/FBenja/fleet-api/internal/adapters/memory/clock"
	memdriverrepo "github.com/FBenja/fleet-api/internal/adapters/memory/driverrepo"
	memtriprepo "github.com/FBenja/fleet-api/internal/adapters/memory/triprepo"
	memvehiclerepo "github.com/FBenja/fleet-api/internal/adapters/memory/vehiclerepo"
	"github.com/FBenja/fleet-api/internal/app/apperr"
	"github.com/FBenja/fleet-api/internal/domain"
)

type fixture struct {
	svc      *Service
	vehicles *memvehiclerepo.Repo
	drivers  *memdriverrepo.Repo
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	vehicles := memvehiclerepo.NewRepo()
	drivers := memdriverrepo.NewRepo()
	clk := memclock.NewManualClock(time.Unix(1700000000, 0).UTC())
	svc := NewService(memtriprepo.NewRepo(), vehicles, drivers, clk)
	return fixture{svc: svc, vehicles: vehicles, drivers: drivers}
}

func (f fixture) seedVehicle(t *testing.T, id domain.VehicleID) {
	t.Helper()
	err := f.vehicles.Create(context.Background(), domain.Vehicle{
		ID: id, Brand: "Scania", Model: "R450", Plate: "AB123CD", Year: 2020, LoadCapacity: 18000,
	})
	if err != nil {
		t.Fatalf("seed vehicle: %v", err)
	}
}

func (f fixture) seedDriver(t *testing.T, id domain.DriverID) {
	t.Helper()
	err := f.drivers.Create(context.Background(), domain.Driver{
		ID: id, FirstName: "Maria", LastName: "Gonzalez", NationalID: "30123456", LicenseNumber: "LIC-9981",
		LicenseExpiry: time.Date(2027, 6, 30, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("seed driver: %v", err)
	}
}

func validCreate(vehicleID domain.VehicleID, driverID domain.DriverID, departure time.Time) CreateInput {
	return CreateInput{
		VehicleID:     vehicleID,
		DriverID:      driverID,
		DepartureTime: departure,
		ArrivalTime:   departure.Add(4 * time.Hour),
		Origin:        "Buenos Aires",
		Destination:   "Rosario",
		DistanceKM:    300,
	}
}

func TestService_Create_MissingVehicle(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.seedDriver(t, "driver-1")

	_, err := f.svc.Create(context.Background(), validCreate("ghost-vehicle", "driver-1", time.Unix(1700000000, 0).UTC()))
	ae := (*apperr.Error)(nil)
	if !errors.As(err, &ae) || ae.Status != 400 || ae.Code != "REFERENTIAL_CONFLICT" {
		t.Fatalf("err=%v, want REFERENTIAL_CONFLICT 400", err)
	}
}

func TestService_Create_MissingDriver(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.seedVehicle(t, "vehicle-1")

	_, err := f.svc.Create(context.Background(), validCreate("vehicle-1", "ghost-driver", time.Unix(1700000000, 0).UTC()))
	ae := (*apperr.Error)(nil)
	if !errors.As(err, &ae) || ae.Code != "REFERENTIAL_CONFLICT" {
		t.Fatalf("err=%v, want REFERENTIAL_CONFLICT", err)
	}
}

func TestService_Create_Validation(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.seedVehicle(t, "vehicle-1")
	f.seedDriver(t, "driver-1")
	ctx := context.Background()
	departure := time.Unix(1700000000, 0).UTC()

	cases := []struct {
		name   string
		mutate func(*CreateInput)
		field  string
	}{
		{"negative distance", func(in *CreateInput) { in.DistanceKM = -5 }, "distance_km"},
		{"missing departure", func(in *CreateInput) { in.DepartureTime = time.Time{} }, "departure_time"},
		{"missing arrival", func(in *CreateInput) { in.ArrivalTime = time.Time{} }, "arrival_time"},
		{"arrival before departure", func(in *CreateInput) { in.ArrivalTime = in.DepartureTime.Add(-time.Hour) }, "arrival_time"},
		{"empty origin", func(in *CreateInput) { in.Origin = " " }, "origin"},
		{"empty destination", func(in *CreateInput) { in.Destination = "" }, "destination"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validCreate("vehicle-1", "driver-1", departure)
			tc.mutate(&in)
			_, err := f.svc.Create(ctx, in)
			ae := (*apperr.Error)(nil)
			if !errors.As(err, &ae) || ae.Code != "VALIDATION_ERROR" {
				t.Fatalf("err=%v, want VALIDATION_ERROR", err)
			}
			if len(ae.Fields) != 1 || ae.Fields[0].Field != tc.field {
				t.Fatalf("fields=%+v, want single %q failure", ae.Fields, tc.field)
			}
		})
	}
}

func TestService_CreateThenHistory_BothKinds(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.seedVehicle(t, "vehicle-1")
	f.seedDriver(t, "driver-1")
	ctx := context.Background()

	created, err := f.svc.Create(ctx, validCreate("vehicle-1", "driver-1", time.Unix(1700000000, 0).UTC()))
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}

	for _, kind := range []EntityKind{KindDriver, KindVehicle} {
		id := "driver-1"
		if kind == KindVehicle {
			id = "vehicle-1"
		}
		entries, err := f.svc.History(ctx, kind, id)
		if err != nil {
			t.Fatalf("History(%s) err=%v", kind, err)
		}
		if len(entries) != 1 || entries[0].TripID != created.ID {
			t.Fatalf("History(%s)=%+v, want the created trip", kind, entries)
		}
		if entries[0].DriverName != "Maria Gonzalez" {
			t.Fatalf("driver name=%q", entries[0].DriverName)
		}
		if entries[0].VehicleInfo != "Scania - AB123CD" {
			t.Fatalf("vehicle info=%q", entries[0].VehicleInfo)
		}
	}
}

func TestService_History_OrderedByDepartureDescending(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.seedVehicle(t, "vehicle-1")
	f.seedDriver(t, "driver-1")
	ctx := context.Background()

	january := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	march := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	// Insert the older trip first so ordering cannot come from insertion order.
	if _, err := f.svc.Create(ctx, validCreate("vehicle-1", "driver-1", january)); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if _, err := f.svc.Create(ctx, validCreate("vehicle-1", "driver-1", march)); err != nil {
		t.Fatalf("Create err=%v", err)
	}

	entries, err := f.svc.History(ctx, KindVehicle, "vehicle-1")
	if err != nil {
		t.Fatalf("History err=%v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len=%d, want 2", len(entries))
	}
	if !entries[0].DepartureTime.Equal(march) || !entries[1].DepartureTime.Equal(january) {
		t.Fatalf("order: got %v then %v, want March first", entries[0].DepartureTime, entries[1].DepartureTime)
	}
}

func TestService_History_EmptyForTriplessEntity(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.seedDriver(t, "driver-1")

	entries, err := f.svc.History(context.Background(), KindDriver, "driver-1")
	if err != nil {
		t.Fatalf("History err=%v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("entries=%+v, want empty", entries)
	}
}

func TestService_TotalDistance_ZeroWithoutTrips(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	total, err := f.svc.TotalDistance(context.Background(), KindDriver, "driver-without-trips")
	if err != nil {
		t.Fatalf("TotalDistance err=%v", err)
	}
	if total != 0 {
		t.Fatalf("total=%v, want 0", total)
	}
}

func TestService_TotalDistance_Sums(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.seedVehicle(t, "vehicle-1")
	f.seedDriver(t, "driver-1")
	ctx := context.Background()

	in := validCreate("vehicle-1", "driver-1", time.Unix(1700000000, 0).UTC())
	in.DistanceKM = 120.5
	if _, err := f.svc.Create(ctx, in); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	in = validCreate("vehicle-1", "driver-1", time.Unix(1700100000, 0).UTC())
	in.DistanceKM = 79.5
	if _, err := f.svc.Create(ctx, in); err != nil {
		t.Fatalf("Create err=%v", err)
	}

	total, err := f.svc.TotalDistance(ctx, KindVehicle, "vehicle-1")
	if err != nil {
		t.Fatalf("TotalDistance err=%v", err)
	}
	if total != 200 {
		t.Fatalf("total=%v, want 200", total)
	}
}

func TestService_InvalidEntityKind(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	if _, ok := ParseEntityKind("plane"); ok {
		t.Fatalf("ParseEntityKind accepted %q", "plane")
	}

	_, err := f.svc.TotalDistance(ctx, EntityKind("plane"), "x")
	ae := (*apperr.Error)(nil)
	if !errors.As(err, &ae) || ae.Code != "VALIDATION_ERROR" {
		t.Fatalf("err=%v, want VALIDATION_ERROR", err)
	}
	_, err = f.svc.History(ctx, EntityKind("plane"), "x")
	if !errors.As(err, &ae) || ae.Code != "VALIDATION_ERROR" {
		t.Fatalf("err=%v, want VALIDATION_ERROR", err)
	}
}

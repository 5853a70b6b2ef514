package dto

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	genreModel "disco_backend/internals/features/repertoire/genres/model"
	hallModel "disco_backend/internals/features/repertoire/halls/model"
	hostModel "disco_backend/internals/features/repertoire/hosts/model"
	m "disco_backend/internals/features/repertoire/schedule/model"
	trackModel "disco_backend/internals/features/repertoire/tracks/model"
	weekdayModel "disco_backend/internals/features/repertoire/weekdays/model"
	"disco_backend/internals/helpers/dbtime"
)

func validCreate() CreateRepertoireRequest {
	return CreateRepertoireRequest{
		MusicTrackID: 1,
		HallID:       2,
		HostID:       3,
		DayID:        4,
		StartTime:    "20:00",
		EndTime:      "22:00",
		Date:         "2024-06-03",
	}
}

func TestCreateToModel(t *testing.T) {
	mm, err := validCreate().ToModel()
	if err != nil {
		t.Fatal(err)
	}
	if mm.MusicTrackID != 1 || mm.HallID != 2 || mm.HostID != 3 || mm.DayID != 4 {
		t.Fatalf("references not carried: %+v", mm)
	}
	if mm.StartTime.Format("15:04:05") != "20:00:00" {
		t.Errorf("start_time = %s", mm.StartTime.Format("15:04:05"))
	}
	if mm.EndTime.Format("15:04:05") != "22:00:00" {
		t.Errorf("end_time = %s", mm.EndTime.Format("15:04:05"))
	}
	if mm.Date.Format("2006-01-02") != "2024-06-03" {
		t.Errorf("date = %s", mm.Date.Format("2006-01-02"))
	}
}

func TestCreateToModelRejectsMalformed(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateRepertoireRequest)
	}{
		{name: "bad start_time", mutate: func(r *CreateRepertoireRequest) { r.StartTime = "20h00" }},
		{name: "bad end_time", mutate: func(r *CreateRepertoireRequest) { r.EndTime = "later" }},
		{name: "bad date", mutate: func(r *CreateRepertoireRequest) { r.Date = "03.06.2024" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreate()
			tc.mutate(&req)
			_, err := req.ToModel()
			if err == nil {
				t.Fatal("expected error")
			}
			fe, ok := err.(*fiber.Error)
			if !ok || fe.Code != fiber.StatusBadRequest {
				t.Fatalf("expected 400 fiber error, got %v", err)
			}
		})
	}
}

// end_time before start_time is accepted on purpose: the source system never
// validated it and the gap is carried over, not silently fixed.
func TestCreateToModelAllowsInvertedTimes(t *testing.T) {
	req := validCreate()
	req.StartTime = "22:00"
	req.EndTime = "20:00"
	if _, err := req.ToModel(); err != nil {
		t.Fatalf("inverted times should pass: %v", err)
	}
}

func TestUpdateApplyKeepsID(t *testing.T) {
	mm := m.Repertoire{ID: 99}
	req := UpdateRepertoireRequest(validCreate())
	if err := req.Apply(&mm); err != nil {
		t.Fatal(err)
	}
	if mm.ID != 99 {
		t.Fatalf("Apply lost the id: %d", mm.ID)
	}
	if mm.MusicTrackID != 1 || mm.Date.Format("2006-01-02") != "2024-06-03" {
		t.Fatalf("Apply did not set fields: %+v", mm)
	}
}

func TestFromRepertoireModelFlattensJoins(t *testing.T) {
	bpm := 128
	cap := 300
	exp := 5
	dur := dbtime.SpanOf(10*time.Minute + 37*time.Second)
	start, _ := dbtime.Parse("20:00")
	end, _ := dbtime.Parse("22:00")

	mm := m.Repertoire{
		ID:        7,
		StartTime: start,
		EndTime:   end,
		Date:      time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		MusicTrack: &trackModel.MusicTrack{
			Title:    "Strobe",
			Artist:   "Deadmau5",
			BPM:      &bpm,
			Duration: &dur,
			Genre:    &genreModel.Genre{Name: "Techno"},
		},
		Hall: &hallModel.Hall{Name: "Main", Capacity: &cap},
		Host: &hostModel.Host{Name: "DJ A", Experience: &exp},
		Day:  &weekdayModel.WeekDay{Name: "Monday", Ord: 1},
	}

	row := FromRepertoireModel(mm)
	if row.TrackTitle != "Strobe" || row.Artist != "Deadmau5" {
		t.Errorf("track fields: %+v", row)
	}
	if row.Genre == nil || *row.Genre != "Techno" {
		t.Errorf("genre: %v", row.Genre)
	}
	if row.HallName != "Main" || row.Weekday != "Monday" || row.HostName != "DJ A" {
		t.Errorf("join fields: %+v", row)
	}
	if row.Date != "2024-06-03" || row.StartTime != "20:00:00" || row.EndTime != "22:00:00" {
		t.Errorf("time fields: %+v", row)
	}
	if row.Duration == nil || *row.Duration != "00:10:37" {
		t.Errorf("duration: %v", row.Duration)
	}
}

// A track without a loaded genre renders a null genre, not an empty string.
func TestFromRepertoireModelNullGenre(t *testing.T) {
	start, _ := dbtime.Parse("20:00")
	end, _ := dbtime.Parse("22:00")
	mm := m.Repertoire{
		StartTime:  start,
		EndTime:    end,
		Date:       time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		MusicTrack: &trackModel.MusicTrack{Title: "Untitled", Artist: "Unknown"},
	}

	row := FromRepertoireModel(mm)
	if row.Genre != nil {
		t.Fatalf("genre should be nil, got %v", *row.Genre)
	}
}

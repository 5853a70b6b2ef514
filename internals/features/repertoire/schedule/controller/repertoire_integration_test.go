package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	genreModel "disco_backend/internals/features/repertoire/genres/model"
	hallModel "disco_backend/internals/features/repertoire/halls/model"
	hostModel "disco_backend/internals/features/repertoire/hosts/model"
	scheduleDTO "disco_backend/internals/features/repertoire/schedule/dto"
	scheduleModel "disco_backend/internals/features/repertoire/schedule/model"
	trackModel "disco_backend/internals/features/repertoire/tracks/model"
	weekdayModel "disco_backend/internals/features/repertoire/weekdays/model"
	"disco_backend/internals/helpers/dbtime"
	"disco_backend/internals/testutil"
)

func newTestApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	ctl := NewRepertoireController(db)
	app.Post("/api/a/schedule", ctl.Create)
	app.Get("/api/schedule/upcoming", ctl.Upcoming)
	app.Get("/api/schedule/today", ctl.Today)
	app.Get("/api/schedule", ctl.List)
	app.Get("/api/schedule/:id", ctl.GetByID)
	app.Put("/api/a/schedule/:id", ctl.Update)
	app.Delete("/api/a/schedule/:id", ctl.Delete)
	return app
}

type envelope struct {
	Code    int             `json:"code"`
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, envelope) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("%s %s: decode: %v", method, path, err)
	}
	return resp.StatusCode, env
}

type refs struct {
	genre  genreModel.Genre
	track  trackModel.MusicTrack
	hall   hallModel.Hall
	host   hostModel.Host
	monday weekdayModel.WeekDay
}

func seedRefs(t *testing.T, db *gorm.DB) refs {
	t.Helper()
	bpm := 128
	cap := 300
	exp := 5

	r := refs{
		genre:  genreModel.Genre{Name: "Techno"},
		hall:   hallModel.Hall{Name: "Main", Capacity: &cap},
		host:   hostModel.Host{Name: "DJ A", Experience: &exp},
		monday: weekdayModel.WeekDay{Name: "Monday", Ord: 1},
	}
	for _, m := range []any{&r.genre, &r.hall, &r.host, &r.monday} {
		if err := db.Create(m).Error; err != nil {
			t.Fatal(err)
		}
	}
	dur := dbtime.SpanOf(10 * time.Minute)
	r.track = trackModel.MusicTrack{Title: "Strobe", Artist: "Deadmau5", GenreID: r.genre.ID, BPM: &bpm, Duration: &dur}
	if err := db.Create(&r.track).Error; err != nil {
		t.Fatal(err)
	}
	return r
}

// localMidnight matches the server's notion of "today" (local date, UTC clock).
func localMidnight() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func mustTimeOfDay(t *testing.T, s string) dbtime.Tod {
	t.Helper()
	tod, err := dbtime.Parse(s)
	if err != nil {
		t.Fatal(err)
	}
	return tod
}

func insertEntry(t *testing.T, db *gorm.DB, r refs, date time.Time, start, end string) scheduleModel.Repertoire {
	t.Helper()
	e := scheduleModel.Repertoire{
		MusicTrackID: r.track.ID,
		HallID:       r.hall.ID,
		HostID:       r.host.ID,
		DayID:        r.monday.ID,
		StartTime:    mustTimeOfDay(t, start),
		EndTime:      mustTimeOfDay(t, end),
		Date:         date,
	}
	if err := db.Create(&e).Error; err != nil {
		t.Fatal(err)
	}
	return e
}

func TestCreateAndFetchEntry(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := newTestApp(db)
	r := seedRefs(t, db)

	status, env := doJSON(t, app, http.MethodPost, "/api/a/schedule", fiber.Map{
		"music_track_id": r.track.ID,
		"hall_id":        r.hall.ID,
		"host_id":        r.host.ID,
		"day_id":         r.monday.ID,
		"start_time":     "20:00",
		"end_time":       "22:00",
		"date":           "2024-06-03",
	})
	if status != http.StatusCreated {
		t.Fatalf("status = %d, body = %+v", status, env)
	}

	var row scheduleDTO.ScheduleRow
	if err := json.Unmarshal(env.Data, &row); err != nil {
		t.Fatal(err)
	}
	if row.TrackTitle != "Strobe" || row.Artist != "Deadmau5" ||
		row.HallName != "Main" || row.HostName != "DJ A" || row.Weekday != "Monday" {
		t.Errorf("row = %+v", row)
	}
	if row.Genre == nil || *row.Genre != "Techno" {
		t.Errorf("genre = %v", row.Genre)
	}
	if row.StartTime != "20:00:00" || row.EndTime != "22:00:00" || row.Date != "2024-06-03" {
		t.Errorf("times: %+v", row)
	}

	status, env = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/schedule/%d", row.ID), nil)
	if status != http.StatusOK {
		t.Fatalf("get status = %d", status)
	}
	var fetched scheduleDTO.ScheduleRow
	if err := json.Unmarshal(env.Data, &fetched); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(fetched, row) {
		t.Errorf("fetched %+v != created %+v", fetched, row)
	}
}

func TestCreateRejectsUnknownTrack(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := newTestApp(db)
	r := seedRefs(t, db)

	status, _ := doJSON(t, app, http.MethodPost, "/api/a/schedule", fiber.Map{
		"music_track_id": 9999,
		"hall_id":        r.hall.ID,
		"host_id":        r.host.ID,
		"day_id":         r.monday.ID,
		"start_time":     "20:00",
		"end_time":       "22:00",
		"date":           "2024-06-03",
	})
	if status != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422 for missing track", status)
	}
}

func TestCreateRejectsBadTime(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := newTestApp(db)
	r := seedRefs(t, db)

	status, _ := doJSON(t, app, http.MethodPost, "/api/a/schedule", fiber.Map{
		"music_track_id": r.track.ID,
		"hall_id":        r.hall.ID,
		"host_id":        r.host.ID,
		"day_id":         r.monday.ID,
		"start_time":     "25:99",
		"end_time":       "22:00",
		"date":           "2024-06-03",
	})
	if status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for bad start_time", status)
	}
}

func TestListOrdersByDateThenStartTime(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := newTestApp(db)
	r := seedRefs(t, db)

	d1 := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)
	insertEntry(t, db, r, d2, "21:00", "22:00")
	insertEntry(t, db, r, d1, "22:00", "23:00")
	insertEntry(t, db, r, d1, "09:00", "10:00")

	status, env := doJSON(t, app, http.MethodGet, "/api/schedule", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	var rows []scheduleDTO.ScheduleRow
	if err := json.Unmarshal(env.Data, &rows); err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %+v", rows)
	}
	got := [][2]string{}
	for _, row := range rows {
		got = append(got, [2]string{row.Date, row.StartTime})
	}
	want := [][2]string{
		{"2024-06-03", "09:00:00"},
		{"2024-06-03", "22:00:00"},
		{"2024-06-04", "21:00:00"},
	}
	if got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestListFiltersCompose(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := newTestApp(db)
	r := seedRefs(t, db)

	house := genreModel.Genre{Name: "House"}
	if err := db.Create(&house).Error; err != nil {
		t.Fatal(err)
	}
	other := trackModel.MusicTrack{Title: "Le Freak", Artist: "Chic", GenreID: house.ID}
	if err := db.Create(&other).Error; err != nil {
		t.Fatal(err)
	}
	lounge := hallModel.Hall{Name: "Lounge"}
	if err := db.Create(&lounge).Error; err != nil {
		t.Fatal(err)
	}

	d1 := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)
	// Techno in Main on d1, Techno in Lounge on d2, House in Main on d1
	insertEntry(t, db, r, d1, "20:00", "21:00")
	r2 := r
	r2.hall = lounge
	insertEntry(t, db, r2, d2, "20:00", "21:00")
	r3 := r
	r3.track = other
	insertEntry(t, db, r3, d1, "21:00", "22:00")

	list := func(qs string) []scheduleDTO.ScheduleRow {
		t.Helper()
		status, env := doJSON(t, app, http.MethodGet, "/api/schedule"+qs, nil)
		if status != http.StatusOK {
			t.Fatalf("GET %s: status = %d", qs, status)
		}
		var rows []scheduleDTO.ScheduleRow
		if err := json.Unmarshal(env.Data, &rows); err != nil {
			t.Fatal(err)
		}
		return rows
	}

	if rows := list(""); len(rows) != 3 {
		t.Errorf("unfiltered: %d rows", len(rows))
	}
	if rows := list(fmt.Sprintf("?genre=%d", r.genre.ID)); len(rows) != 2 {
		t.Errorf("genre filter: %d rows", len(rows))
	}
	if rows := list(fmt.Sprintf("?hall=%d", r.hall.ID)); len(rows) != 2 {
		t.Errorf("hall filter: %d rows", len(rows))
	}
	if rows := list("?date=2024-06-03"); len(rows) != 2 {
		t.Errorf("date filter: %d rows", len(rows))
	}

	// all three together pin down the single Techno/Main/d1 entry
	rows := list(fmt.Sprintf("?genre=%d&hall=%d&date=2024-06-03", r.genre.ID, r.hall.ID))
	if len(rows) != 1 || rows[0].TrackTitle != "Strobe" || rows[0].HallName != "Main" {
		t.Errorf("combined filter: %+v", rows)
	}

	// bad filter value is a 400, not an empty list
	status, _ := doJSON(t, app, http.MethodGet, "/api/schedule?genre=abc", nil)
	if status != http.StatusBadRequest {
		t.Errorf("garbage genre: status = %d, want 400", status)
	}
}

func TestUpcomingWindow(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := newTestApp(db)
	r := seedRefs(t, db)

	today := localMidnight()
	insertEntry(t, db, r, today.AddDate(0, 0, -1), "20:00", "21:00")
	eToday := insertEntry(t, db, r, today, "20:00", "21:00")
	eSoon := insertEntry(t, db, r, today.AddDate(0, 0, 3), "20:00", "21:00")
	insertEntry(t, db, r, today.AddDate(0, 0, 10), "20:00", "21:00")

	fetch := func(qs string) []scheduleDTO.ScheduleRow {
		t.Helper()
		status, env := doJSON(t, app, http.MethodGet, "/api/schedule/upcoming"+qs, nil)
		if status != http.StatusOK {
			t.Fatalf("GET upcoming%s: status = %d", qs, status)
		}
		var rows []scheduleDTO.ScheduleRow
		if err := json.Unmarshal(env.Data, &rows); err != nil {
			t.Fatal(err)
		}
		return rows
	}

	// days=0 is today only; yesterday never shows
	rows := fetch("?days=0")
	if len(rows) != 1 || rows[0].ID != eToday.ID {
		t.Errorf("days=0: %+v", rows)
	}

	// default window is a week: today plus the entry three days out
	rows = fetch("")
	if len(rows) != 2 || rows[0].ID != eToday.ID || rows[1].ID != eSoon.ID {
		t.Errorf("default window: %+v", rows)
	}

	status, _ := doJSON(t, app, http.MethodGet, "/api/schedule/upcoming?days=-1", nil)
	if status != http.StatusBadRequest {
		t.Errorf("days=-1: status = %d, want 400", status)
	}
}

func TestTodayDashboard(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := newTestApp(db)
	r := seedRefs(t, db)

	today := localMidnight()
	insertEntry(t, db, r, today, "20:00", "21:00")
	for i := 1; i <= 6; i++ {
		insertEntry(t, db, r, today.AddDate(0, 0, i), "20:00", "21:00")
	}

	status, env := doJSON(t, app, http.MethodGet, "/api/schedule/today", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	var data struct {
		Today          []scheduleDTO.ScheduleRow `json:"today"`
		UpcomingEvents []scheduleDTO.ScheduleRow `json:"upcoming_events"`
		TotalTracks    int64                     `json:"total_tracks"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatal(err)
	}
	if len(data.Today) != 1 {
		t.Errorf("today: %+v", data.Today)
	}
	// six future entries, capped at five
	if len(data.UpcomingEvents) != 5 {
		t.Errorf("upcoming: %d entries, want 5", len(data.UpcomingEvents))
	}
	if data.TotalTracks != 1 {
		t.Errorf("total tracks = %d", data.TotalTracks)
	}
}

func TestUpdateEntry(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := newTestApp(db)
	r := seedRefs(t, db)

	lounge := hallModel.Hall{Name: "Lounge"}
	if err := db.Create(&lounge).Error; err != nil {
		t.Fatal(err)
	}
	e := insertEntry(t, db, r, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), "20:00", "21:00")

	status, env := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/a/schedule/%d", e.ID), fiber.Map{
		"music_track_id": r.track.ID,
		"hall_id":        lounge.ID,
		"host_id":        r.host.ID,
		"day_id":         r.monday.ID,
		"start_time":     "22:00",
		"end_time":       "23:30",
		"date":           "2024-06-03",
	})
	if status != http.StatusOK {
		t.Fatalf("status = %d, body = %+v", status, env)
	}
	var row scheduleDTO.ScheduleRow
	if err := json.Unmarshal(env.Data, &row); err != nil {
		t.Fatal(err)
	}
	if row.ID != e.ID || row.HallName != "Lounge" || row.StartTime != "22:00:00" || row.EndTime != "23:30:00" {
		t.Errorf("row = %+v", row)
	}
}

func TestDeleteEntry(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := newTestApp(db)
	r := seedRefs(t, db)
	e := insertEntry(t, db, r, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), "20:00", "21:00")

	status, _ := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/a/schedule/%d", e.ID), nil)
	if status != http.StatusOK {
		t.Fatalf("delete status = %d", status)
	}

	status, _ = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/schedule/%d", e.ID), nil)
	if status != http.StatusNotFound {
		t.Errorf("get after delete: status = %d", status)
	}

	// deleting again is a 404, not a silent success
	status, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/a/schedule/%d", e.ID), nil)
	if status != http.StatusNotFound {
		t.Errorf("second delete: status = %d", status)
	}
}

func TestGenreDeleteCascadesToTracksAndSchedule(t *testing.T) {
	db := testutil.OpenTestDB(t)
	r := seedRefs(t, db)
	insertEntry(t, db, r, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), "20:00", "21:00")

	if err := db.Delete(&genreModel.Genre{}, r.genre.ID).Error; err != nil {
		t.Fatal(err)
	}

	var tracks, entries int64
	if err := db.Model(&trackModel.MusicTrack{}).Count(&tracks).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Model(&scheduleModel.Repertoire{}).Count(&entries).Error; err != nil {
		t.Fatal(err)
	}
	if tracks != 0 || entries != 0 {
		t.Errorf("after genre delete: %d tracks, %d schedule entries; want 0, 0", tracks, entries)
	}
}

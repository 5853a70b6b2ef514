package main

import (
	"log"
	"time"

	"gorm.io/gorm"

	"disco_backend/internals/configs"
	database "disco_backend/internals/databases"
	genreModel "disco_backend/internals/features/repertoire/genres/model"
	hallModel "disco_backend/internals/features/repertoire/halls/model"
	hostModel "disco_backend/internals/features/repertoire/hosts/model"
	scheduleModel "disco_backend/internals/features/repertoire/schedule/model"
	trackModel "disco_backend/internals/features/repertoire/tracks/model"
	weekdayModel "disco_backend/internals/features/repertoire/weekdays/model"
	"disco_backend/internals/helpers/dbtime"
)

func intPtr(n int) *int { return &n }

func spanPtr(d time.Duration) *dbtime.Span {
	s := dbtime.SpanOf(d)
	return &s
}

// Seed a small demo dataset. Idempotent: reruns find instead of duplicating.
func main() {
	cfg := configs.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("❌ DB connect failed: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("❌ DB migrate failed: %v", err)
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		weekdays := map[string]weekdayModel.WeekDay{}
		for i, name := range []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"} {
			wd := weekdayModel.WeekDay{Name: name, Ord: i + 1}
			if err := tx.Where(weekdayModel.WeekDay{Name: name}).
				Attrs(weekdayModel.WeekDay{Ord: i + 1}).
				FirstOrCreate(&wd).Error; err != nil {
				return err
			}
			weekdays[name] = wd
		}

		genres := map[string]genreModel.Genre{}
		for _, name := range []string{"Techno", "House", "Disco", "Trance"} {
			g := genreModel.Genre{Name: name}
			if err := tx.Where(genreModel.Genre{Name: name}).FirstOrCreate(&g).Error; err != nil {
				return err
			}
			genres[name] = g
		}

		tracks := []trackModel.MusicTrack{
			{Title: "Strobe", Artist: "Deadmau5", GenreID: genres["Techno"].ID, BPM: intPtr(128), Duration: spanPtr(10*time.Minute + 37*time.Second)},
			{Title: "One More Time", Artist: "Daft Punk", GenreID: genres["House"].ID, BPM: intPtr(123), Duration: spanPtr(5*time.Minute + 20*time.Second)},
			{Title: "Le Freak", Artist: "Chic", GenreID: genres["Disco"].ID, BPM: intPtr(120), Duration: spanPtr(5*time.Minute + 30*time.Second)},
			{Title: "Adagio for Strings", Artist: "Tiesto", GenreID: genres["Trance"].ID, BPM: intPtr(140), Duration: spanPtr(7*time.Minute + 23*time.Second)},
		}
		for i := range tracks {
			if err := tx.Where(trackModel.MusicTrack{Title: tracks[i].Title, Artist: tracks[i].Artist}).
				Attrs(tracks[i]).
				FirstOrCreate(&tracks[i]).Error; err != nil {
				return err
			}
		}

		halls := []hallModel.Hall{
			{Name: "Main", Capacity: intPtr(300)},
			{Name: "Lounge", Capacity: intPtr(80)},
		}
		for i := range halls {
			if err := tx.Where(hallModel.Hall{Name: halls[i].Name}).
				Attrs(halls[i]).
				FirstOrCreate(&halls[i]).Error; err != nil {
				return err
			}
		}

		hosts := []hostModel.Host{
			{Name: "DJ A", Experience: intPtr(5)},
			{Name: "DJ B", Experience: intPtr(2)},
		}
		for i := range hosts {
			if err := tx.Where(hostModel.Host{Name: hosts[i].Name}).
				Attrs(hosts[i]).
				FirstOrCreate(&hosts[i]).Error; err != nil {
				return err
			}
		}

		start, _ := dbtime.Parse("20:00")
		end, _ := dbtime.Parse("22:00")
		nextMonday := nextWeekday(time.Monday)
		entry := scheduleModel.Repertoire{
			MusicTrackID: tracks[0].ID,
			HallID:       halls[0].ID,
			HostID:       hosts[0].ID,
			DayID:        weekdays["Monday"].ID,
			StartTime:    start,
			EndTime:      end,
			Date:         nextMonday,
		}
		if err := tx.Where(scheduleModel.Repertoire{
			MusicTrackID: entry.MusicTrackID,
			HallID:       entry.HallID,
			Date:         entry.Date,
		}).Attrs(entry).FirstOrCreate(&entry).Error; err != nil {
			return err
		}

		return nil
	}); err != nil {
		log.Fatalf("❌ Seed failed: %v", err)
	}

	log.Println("✅ Seed complete.")
}

func nextWeekday(day time.Weekday) time.Time {
	d := time.Now()
	for d.Weekday() != day {
		d = d.AddDate(0, 0, 1)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

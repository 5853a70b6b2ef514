package queries

import (
	"context"

	"gorm.io/gorm"

	reportDTO "disco_backend/internals/features/reports/dto"
)

// Queries is the read-only reporting layer: hand-written SQL over the
// repertoire schema, one connection per call, no state.
type Queries struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Queries {
	return &Queries{DB: db}
}

// TracksByGenre counts tracks per genre, busiest first. Shared by the
// statistics bundle and the standalone endpoint so the two can never drift.
func (q *Queries) TracksByGenre(ctx context.Context) ([]reportDTO.GenreCount, error) {
	rows := []reportDTO.GenreCount{}
	err := q.DB.WithContext(ctx).Raw(`
		SELECT g.name AS genre, COUNT(*) AS count
		FROM music_tracks mt
		JOIN genres g ON mt.genre_id = g.id
		GROUP BY g.name
		ORDER BY count DESC
	`).Scan(&rows).Error
	return rows, err
}

// SessionsByWeekday counts repertoire entries per weekday, in weekday
// position order (Monday first), never alphabetical.
func (q *Queries) SessionsByWeekday(ctx context.Context) ([]reportDTO.WeekdaySessions, error) {
	rows := []reportDTO.WeekdaySessions{}
	err := q.DB.WithContext(ctx).Raw(`
		SELECT w.name AS weekday, COUNT(*) AS sessions
		FROM repertoire r
		JOIN week_days w ON r.day_id = w.id
		GROUP BY w.id, w.name, w.ord
		ORDER BY w.ord
	`).Scan(&rows).Error
	return rows, err
}

// HostPerformance: sessions hosted, distinct tracks, and bpm averaged over
// every session row (a track played twice counts twice).
func (q *Queries) HostPerformance(ctx context.Context) ([]reportDTO.HostPerformance, error) {
	rows := []reportDTO.HostPerformance{}
	err := q.DB.WithContext(ctx).Raw(`
		SELECT
			ho.name AS host_name,
			ho.experience,
			COUNT(DISTINCT r.id) AS sessions_hosted,
			COUNT(DISTINCT r.music_track_id) AS unique_tracks,
			AVG(mt.bpm) AS avg_bpm
		FROM repertoire r
		JOIN hosts ho ON r.host_id = ho.id
		JOIN music_tracks mt ON r.music_track_id = mt.id
		GROUP BY ho.id, ho.name, ho.experience
		ORDER BY sessions_hosted DESC
	`).Scan(&rows).Error
	return rows, err
}

// HallUtilization: session count and distinct weekday usage per hall.
func (q *Queries) HallUtilization(ctx context.Context) ([]reportDTO.HallUtilization, error) {
	rows := []reportDTO.HallUtilization{}
	err := q.DB.WithContext(ctx).Raw(`
		SELECT
			h.name AS hall,
			h.capacity,
			COUNT(DISTINCT r.id) AS total_sessions,
			COUNT(DISTINCT r.day_id) AS days_used
		FROM repertoire r
		JOIN halls h ON r.hall_id = h.id
		GROUP BY h.id, h.name, h.capacity
		ORDER BY total_sessions DESC
	`).Scan(&rows).Error
	return rows, err
}

// TopArtists: top 10 by track count with avg bpm and total minutes. The
// artist-name tie-break is a deliberate addition for deterministic output.
func (q *Queries) TopArtists(ctx context.Context) ([]reportDTO.TopArtist, error) {
	rows := []reportDTO.TopArtist{}
	err := q.DB.WithContext(ctx).Raw(`
		SELECT
			mt.artist,
			COUNT(*) AS track_count,
			AVG(mt.bpm) AS avg_bpm,
			SUM(EXTRACT(EPOCH FROM mt.duration)) / 60 AS total_minutes
		FROM music_tracks mt
		GROUP BY mt.artist
		ORDER BY track_count DESC, mt.artist ASC
		LIMIT 10
	`).Scan(&rows).Error
	return rows, err
}

// Statistics runs the five reports independently and bundles them.
func (q *Queries) Statistics(ctx context.Context) (*reportDTO.StatisticsBundle, error) {
	byGenre, err := q.TracksByGenre(ctx)
	if err != nil {
		return nil, err
	}
	byWeekday, err := q.SessionsByWeekday(ctx)
	if err != nil {
		return nil, err
	}
	hosts, err := q.HostPerformance(ctx)
	if err != nil {
		return nil, err
	}
	halls, err := q.HallUtilization(ctx)
	if err != nil {
		return nil, err
	}
	artists, err := q.TopArtists(ctx)
	if err != nil {
		return nil, err
	}

	return &reportDTO.StatisticsBundle{
		TracksByGenre:     byGenre,
		SessionsByWeekday: byWeekday,
		HostPerformance:   hosts,
		HallUtilization:   halls,
		TopArtists:        artists,
	}, nil
}

// DailyBPMAnalysis groups scheduled sessions by start hour (0-23). Hours
// with no sessions are simply absent.
func (q *Queries) DailyBPMAnalysis(ctx context.Context) ([]reportDTO.HourlyAnalysis, error) {
	rows := []reportDTO.HourlyAnalysis{}
	err := q.DB.WithContext(ctx).Raw(`
		SELECT
			EXTRACT(HOUR FROM r.start_time)::int AS hour,
			COUNT(*) AS tracks_count,
			AVG(mt.bpm) AS avg_bpm
		FROM repertoire r
		JOIN music_tracks mt ON r.music_track_id = mt.id
		GROUP BY EXTRACT(HOUR FROM r.start_time)
		ORDER BY hour
	`).Scan(&rows).Error
	return rows, err
}

// SearchTracks matches term as a case-insensitive substring of title, artist
// or genre name, with a play count from the schedule. An empty term matches
// every track; callers decide whether to short-circuit instead.
func (q *Queries) SearchTracks(ctx context.Context, term string) ([]reportDTO.TrackSearchRow, error) {
	pattern := "%" + term + "%"
	rows := []reportDTO.TrackSearchRow{}
	err := q.DB.WithContext(ctx).Raw(`
		SELECT
			mt.id, mt.title, mt.artist,
			mt.duration::text AS duration,
			mt.bpm,
			g.name AS genre,
			COUNT(r.id) AS play_count
		FROM music_tracks mt
		LEFT JOIN genres g ON mt.genre_id = g.id
		LEFT JOIN repertoire r ON mt.id = r.music_track_id
		WHERE mt.title ILIKE ? OR mt.artist ILIKE ? OR g.name ILIKE ?
		GROUP BY mt.id, mt.title, mt.artist, mt.duration, mt.bpm, g.name
		ORDER BY mt.title
	`, pattern, pattern, pattern).Scan(&rows).Error
	return rows, err
}

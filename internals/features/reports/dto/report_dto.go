package dto

// Row types for the reporting queries. Field names line up with the column
// aliases in the SQL so gorm's Scan maps them directly.

type GenreCount struct {
	Genre string `json:"genre"`
	Count int64  `json:"count"`
}

type WeekdaySessions struct {
	Weekday  string `json:"weekday"`
	Sessions int64  `json:"sessions"`
}

// HostPerformance: avg bpm is weighted per session row, so a track played
// twice counts twice.
type HostPerformance struct {
	HostName       string   `json:"host_name"`
	Experience     *int     `json:"experience,omitempty"`
	SessionsHosted int64    `json:"sessions_hosted"`
	UniqueTracks   int64    `json:"unique_tracks"`
	AvgBPM         *float64 `json:"avg_bpm,omitempty"`
}

type HallUtilization struct {
	Hall          string `json:"hall"`
	Capacity      *int   `json:"capacity,omitempty"`
	TotalSessions int64  `json:"total_sessions"`
	DaysUsed      int64  `json:"days_used"`
}

type TopArtist struct {
	Artist       string   `json:"artist"`
	TrackCount   int64    `json:"track_count"`
	AvgBPM       *float64 `json:"avg_bpm,omitempty"`
	TotalMinutes *float64 `json:"total_minutes,omitempty"`
}

// StatisticsBundle is the fixed set of five reports the dashboard renders.
type StatisticsBundle struct {
	TracksByGenre     []GenreCount      `json:"tracks_by_genre"`
	SessionsByWeekday []WeekdaySessions `json:"sessions_by_weekday"`
	HostPerformance   []HostPerformance `json:"host_performance"`
	HallUtilization   []HallUtilization `json:"hall_utilization"`
	TopArtists        []TopArtist       `json:"top_artists"`
}

// HourlyAnalysis: one row per hour that has at least one session; silent
// hours are absent, not zero-filled.
type HourlyAnalysis struct {
	Hour        int      `json:"hour"`
	TracksCount int64    `json:"tracks_count"`
	AvgBPM      *float64 `json:"avg_bpm,omitempty"`
}

type TrackSearchRow struct {
	ID        uint    `json:"id"`
	Title     string  `json:"title"`
	Artist    string  `json:"artist"`
	Duration  *string `json:"duration,omitempty"`
	BPM       *int    `json:"bpm,omitempty"`
	Genre     *string `json:"genre,omitempty"`
	PlayCount int64   `json:"play_count"`
}

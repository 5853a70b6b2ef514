package model

import (
	"time"

	hallModel "disco_backend/internals/features/repertoire/halls/model"
	hostModel "disco_backend/internals/features/repertoire/hosts/model"
	trackModel "disco_backend/internals/features/repertoire/tracks/model"
	weekdayModel "disco_backend/internals/features/repertoire/weekdays/model"
	"disco_backend/internals/helpers/dbtime"
)

// Repertoire is one scheduled occurrence of a track: hall, host, weekday,
// date and a start/end time. Deleting any referenced entity cascades here.
//
// No overlap check and no start<end check at write time — both are known
// gaps carried over from the source system (see DESIGN.md).
type Repertoire struct {
	ID uint `gorm:"column:id;primaryKey" json:"id"`

	MusicTrackID uint `gorm:"column:music_track_id;not null;index" json:"music_track_id"`
	HallID       uint `gorm:"column:hall_id;not null;index" json:"hall_id"`
	HostID       uint `gorm:"column:host_id;not null;index" json:"host_id"`
	DayID        uint `gorm:"column:day_id;not null;index" json:"day_id"`

	MusicTrack *trackModel.MusicTrack `gorm:"foreignKey:MusicTrackID;constraint:OnDelete:CASCADE" json:"music_track,omitempty"`
	Hall       *hallModel.Hall        `gorm:"foreignKey:HallID;constraint:OnDelete:CASCADE" json:"hall,omitempty"`
	Host       *hostModel.Host        `gorm:"foreignKey:HostID;constraint:OnDelete:CASCADE" json:"host,omitempty"`
	Day        *weekdayModel.WeekDay  `gorm:"foreignKey:DayID;constraint:OnDelete:CASCADE" json:"day,omitempty"`

	StartTime dbtime.Tod `gorm:"column:start_time;type:time;not null" json:"start_time"`
	EndTime   dbtime.Tod `gorm:"column:end_time;type:time;not null" json:"end_time"`
	Date      time.Time  `gorm:"column:date;type:date;not null;index" json:"date"`
}

func (Repertoire) TableName() string {
	return "repertoire"
}

package model

import (
	genreModel "disco_backend/internals/features/repertoire/genres/model"
	"disco_backend/internals/helpers/dbtime"
)

// MusicTrack belongs to exactly one Genre; deleting the Genre cascades here.
type MusicTrack struct {
	ID      uint   `gorm:"column:id;primaryKey" json:"id"`
	Title   string `gorm:"column:title;type:varchar(100);not null;index" json:"title"`
	Artist  string `gorm:"column:artist;type:varchar(100);not null;index" json:"artist"`
	GenreID uint   `gorm:"column:genre_id;not null;index" json:"genre_id"`

	Genre *genreModel.Genre `gorm:"foreignKey:GenreID;constraint:OnDelete:CASCADE" json:"genre,omitempty"`

	Duration *dbtime.Span `gorm:"column:duration;type:interval" json:"duration,omitempty"`
	BPM      *int         `gorm:"column:bpm" json:"bpm,omitempty"`
}

func (MusicTrack) TableName() string {
	return "music_tracks"
}

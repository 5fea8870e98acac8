package model

import "time"

const DefaultClassification = "None"

// FileRecord is keyed by "<store_id>.<extension>" and carries no value of its own.
type FileRecord struct {
	Key      string       `json:"key"`
	Metadata FileMetadata `json:"metadata"`
}

type FileMetadata struct {
	TimeStamp int64  `json:"TimeStamp"`
	ListType  string `json:"ListType"`
	Label     string `json:"Label"`
	Liked     bool   `json:"liked"`
	FileName  string `json:"fileName"`
	FileSize  int64  `json:"fileSize"`
}

func NewFileRecord(key, fileName string, fileSize int64, now time.Time) *FileRecord {
	return &FileRecord{
		Key: key,
		Metadata: FileMetadata{
			TimeStamp: now.UnixMilli(),
			ListType:  DefaultClassification,
			Label:     DefaultClassification,
			Liked:     false,
			FileName:  fileName,
			FileSize:  fileSize,
		},
	}
}

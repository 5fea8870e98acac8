package usecase

import "tgimg/internal/domain/model"

type Decision uint8

const (
	DecisionSkip Decision = iota
	DecisionCompressLow
	DecisionCompressMedium
)

func (d Decision) String() string {
	switch d {
	case DecisionCompressLow:
		return "compress-low"
	case DecisionCompressMedium:
		return "compress-medium"
	default:
		return "skip"
	}
}

// Level returns the preset level for a compress decision.
func (d Decision) Level() (model.Level, bool) {
	switch d {
	case DecisionCompressLow:
		return model.LevelLow, true
	case DecisionCompressMedium:
		return model.LevelMedium, true
	default:
		return "", false
	}
}

// Thresholds are in bytes. Level must not be below Compression.
type Thresholds struct {
	Compression int64
	Level       int64
}

// Decide picks the compression treatment for a blob. Larger blobs get the
// more aggressive low quality preset.
func Decide(size int64, kind model.MediaKind, t Thresholds) Decision {
	if !kind.Compressible() || size < t.Compression {
		return DecisionSkip
	}

	if size >= t.Level {
		return DecisionCompressLow
	}

	return DecisionCompressMedium
}

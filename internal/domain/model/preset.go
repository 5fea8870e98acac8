package model

import "strconv"

type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
)

// Preset is a transcoding parameter bundle. Zero fields are not sent.
type Preset struct {
	Quality      string `yaml:"quality"`
	FetchFormat  string `yaml:"fetch_format"`
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	Crop         string `yaml:"crop"`
	Format       string `yaml:"format"`
	Flags        string `yaml:"flags"`
	BitRate      string `yaml:"bit_rate"`
	AudioCodec   string `yaml:"audio_codec"`
	AudioBitrate string `yaml:"audio_bitrate"`
	Codec        string `yaml:"codec"`
	SampleRate   string `yaml:"sample_rate"`
	FPS          string `yaml:"fps"`
}

type Param struct {
	Key   string
	Value string
}

// Params flattens the preset into individual form parameters.
func (p Preset) Params() []Param {
	params := make([]Param, 0, 13)
	add := func(key, value string) {
		if value != "" {
			params = append(params, Param{Key: key, Value: value})
		}
	}
	addInt := func(key string, value int) {
		if value > 0 {
			params = append(params, Param{Key: key, Value: strconv.Itoa(value)})
		}
	}

	add("quality", p.Quality)
	add("fetch_format", p.FetchFormat)
	addInt("width", p.Width)
	addInt("height", p.Height)
	add("crop", p.Crop)
	add("format", p.Format)
	add("flags", p.Flags)
	add("bit_rate", p.BitRate)
	add("audio_codec", p.AudioCodec)
	add("audio_bitrate", p.AudioBitrate)
	add("codec", p.Codec)
	add("sample_rate", p.SampleRate)
	add("fps", p.FPS)

	return params
}

// PresetTable holds one preset per compressible kind and level.
type PresetTable map[MediaKind]map[Level]Preset

func (t PresetTable) Lookup(kind MediaKind, level Level) (Preset, bool) {
	levels, ok := t[kind]
	if !ok {
		return Preset{}, false
	}
	p, ok := levels[level]

	return p, ok
}

func DefaultPresets() PresetTable {
	return PresetTable{
		KindImage: {
			LevelLow: {
				Quality: "auto:eco", FetchFormat: "auto",
				Width: 1920, Height: 1080, Crop: "limit", Format: "webp",
			},
			LevelMedium: {
				Quality: "auto:good", FetchFormat: "auto",
				Width: 1920, Height: 1080, Crop: "limit", Format: "webp",
			},
		},
		KindVideo: {
			LevelLow: {
				Quality: "70", FetchFormat: "mp4",
				Width: 1280, Height: 720, Crop: "limit",
				BitRate: "600k", AudioCodec: "aac", AudioBitrate: "64k", Codec: "h264",
			},
			LevelMedium: {
				Quality: "auto:good", FetchFormat: "mp4",
				Width: 1920, Height: 1080, Crop: "limit",
				BitRate: "2m", AudioCodec: "aac", AudioBitrate: "128k",
			},
		},
		KindAudio: {
			LevelLow:    {BitRate: "64k", SampleRate: "44100", Format: "mp3"},
			LevelMedium: {BitRate: "128k", SampleRate: "44100"},
		},
	}
}

package cloudinary

type Config struct {
	BaseURL      string `yaml:"base_url"`
	Eager        string `yaml:"eager"`
	Timeout      int64  `yaml:"timeout_in_ms"`
	CloudName    string
	UploadPreset string
}

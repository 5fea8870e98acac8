package kvstore

type Config struct {
	URI          string
	KeyPrefix    string `yaml:"key_prefix"`
	SettingsKey  string `yaml:"settings_key"`
	QueryTimeout int64  `yaml:"query_timeout_in_ms"`
}

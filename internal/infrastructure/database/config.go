package database

type Config struct {
	URI               string
	DBName            string `yaml:"db_name"`
	SettingsKey       string `yaml:"settings_key"`
	ConnectionTimeout int64  `yaml:"connection_timeout_in_ms"`
	QueryTimeout      int64  `yaml:"query_timeout_in_ms"`
}

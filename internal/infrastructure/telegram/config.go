package telegram

type Config struct {
	BaseURL  string `yaml:"base_url"`
	BotToken string
	ChatID   string
}

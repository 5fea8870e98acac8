package wallhaven

type Config struct {
	BaseURL    string `yaml:"base_url"`
	Categories string `yaml:"categories"`
	Purity     string `yaml:"purity"`
	Sorting    string `yaml:"sorting"`
	AtLeast    string `yaml:"atleast"`
	Ratios     string `yaml:"ratios"`
	APIKey     string
}

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://wallhaven.cc/api/v1"
	}
	if c.Categories == "" {
		c.Categories = "111"
	}
	if c.Purity == "" {
		c.Purity = "111"
	}
	if c.Sorting == "" {
		c.Sorting = "random"
	}
	if c.AtLeast == "" {
		c.AtLeast = "1920x1080"
	}
	if c.Ratios == "" {
		c.Ratios = "16x9,16x10,4x3"
	}
}

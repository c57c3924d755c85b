package config

type Config struct {
	Log struct {
		Context bool   `mapstructure:"context"`
		Level   string `mapstructure:"level"`
		File    string `mapstructure:"file"` // 为空时只输出到stderr
	} `mapstructure:"log"`

	Site struct {
		MainDocURL       string `mapstructure:"main_doc_url"`
		PepDocURL        string `mapstructure:"pep_doc_url"`
		SpecialPep       string `mapstructure:"special_pep"`
		SpecialPepStatus string `mapstructure:"special_pep_status"`
	} `mapstructure:"site"`

	Downloader struct {
		Timeout   uint32 `mapstructure:"timeout"` // seconds
		UserAgent string `mapstructure:"user_agent"`
	} `mapstructure:"downloader"`

	Cache struct {
		Driver      string `mapstructure:"driver"` // sqlite / postgres / none
		URL         string `mapstructure:"url"`
		ExpireAfter uint32 `mapstructure:"expire_after"` // seconds, 0表示永不过期
	} `mapstructure:"cache"`

	Storage struct {
		ResultsDir     string `mapstructure:"results_dir"`
		DownloadsDir   string `mapstructure:"downloads_dir"`
		DatetimeFormat string `mapstructure:"datetime_format"`
	} `mapstructure:"storage"`

	WhatsNew struct {
		// 为false时每一项都重新抓取whats-new首页（保持既有行为）
		FollowLinks bool `mapstructure:"follow_links"`
	} `mapstructure:"whats_new"`

	Progress struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"progress"`
}

// Defaults 中的key同时决定了哪些环境变量会被识别
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"log.context": false,
		"log.level":   "info",
		"log.file":    "",

		"site.main_doc_url":       "https://docs.python.org/3/",
		"site.pep_doc_url":        "https://peps.python.org/",
		"site.special_pep":        "801",
		"site.special_pep_status": "Informational, Active",

		"downloader.timeout":    30,
		"downloader.user_agent": "pyparser/0.1",

		"cache.driver":       "sqlite",
		"cache.url":          ".cache/http_cache.sqlite",
		"cache.expire_after": 0,

		"storage.results_dir":     "results",
		"storage.downloads_dir":   "downloads",
		"storage.datetime_format": "2006-01-02_15-04-05",

		"whats_new.follow_links": false,

		"progress.enabled": true,
	}
}

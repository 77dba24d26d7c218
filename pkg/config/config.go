package config

type DB struct {
	Url string `envconfig:"URL"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"4"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[bankdesk]"`
}

// Console controls the interactive menu. Color is one of auto, always or never.
type Console struct {
	Seed  bool   `envconfig:"SEED" default:"true"`
	Color string `envconfig:"COLOR" default:"auto"`
}

type App struct {
	Env     string   `envconfig:"APP_ENV" default:"development"`
	Log     *Log     `envconfig:"LOG"`
	DB      *DB      `envconfig:"DATABASE"`
	Console *Console `envconfig:"CONSOLE"`
}

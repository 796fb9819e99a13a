package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

const (
	SourceGoogle = "google"
	SourceIcs    = "ics"

	FormatText = "text"
	FormatCsv  = "csv"

	envPrefix        = "CALTALLY_"
	legacyCalendarId = "CALENDAR_ID"
)

type Application struct {
	Source     string `koanf:"source"`
	CalendarId string `koanf:"calendarid"`
	Google     Google `koanf:"google"`
	Ics        Ics    `koanf:"ics"`
	Report     Report `koanf:"report"`
}

type Google struct {
	CredentialsFile string `koanf:"credentialsfile"`
	TokenFile       string `koanf:"tokenfile"`
}

type Ics struct {
	// Location is a file path or an http(s) URL.
	Location string `koanf:"location"`
}

type Report struct {
	Format string `koanf:"format"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	if err := loadDotEnv(".env"); err != nil {
		return Application{}, err
	}

	err := k.Load(structs.Provider(Application{
		Source:     SourceGoogle,
		CalendarId: "primary",
		Google: Google{
			CredentialsFile: "credentials.json",
			TokenFile:       "token.json",
		},
		Report: Report{
			Format: FormatText,
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debugf("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Debugf("Loaded configuration from file: %s", path)
	}

	// CALENDAR_ID is kept for existing .env files; CALTALLY_CALENDARID wins.
	err = k.Load(env.Provider(".", env.Opt{
		Prefix: legacyCalendarId,
		TransformFunc: func(k, v string) (string, any) {
			if k != legacyCalendarId {
				return "", nil
			}
			return "calendarid", v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, envPrefix)), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}

// loadDotEnv exports the variables of a .env file that are not already set
// in the environment. A missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil {
		log.Debugf("Loaded environment from %s", path)
		return nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	log.Errorf("error loading %s: %v", path, err)
	return err
}

func (a Application) Validate() error {
	var errs []error

	switch a.Source {
	case SourceGoogle:
		if a.CalendarId == "" {
			errs = append(errs, errors.New("calendar id cannot be empty for the google source"))
		}
		if a.Google.CredentialsFile == "" {
			errs = append(errs, errors.New("google credentials file cannot be empty"))
		}
		if a.Google.TokenFile == "" {
			errs = append(errs, errors.New("google token file cannot be empty"))
		}
	case SourceIcs:
		if a.Ics.Location == "" {
			errs = append(errs, errors.New("ics location is required for the ics source"))
		}
	default:
		errs = append(errs, fmt.Errorf("invalid source '%s': must be one of [%s %s]", a.Source, SourceGoogle, SourceIcs))
	}

	if a.Report.Format != FormatText && a.Report.Format != FormatCsv {
		errs = append(errs, fmt.Errorf("invalid report format '%s': must be one of [%s %s]", a.Report.Format, FormatText, FormatCsv))
	}

	return errors.Join(errs...)
}

package config

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultBooksFile    = "books.json"
	defaultStudentsFile = "students.json"
	defaultLogFile      = "library.log"
	defaultLogValue     = true
	defaultSeedValue    = true
)

// Command line flags bound over the environment.
const (
	FlagBooks    = "books"
	FlagStudents = "students"
	FlagLoans    = "loans"
	FlagLogFile  = "log-file"
	FlagNoSeed   = "no-seed"
)

type (
	Config struct {
		Storage struct {
			BooksFile    string `env:"LIBRARY_BOOKS_FILE"`
			StudentsFile string `env:"LIBRARY_STUDENTS_FILE"`
			LoansFile    string `env:"LIBRARY_LOANS_FILE"`
		}

		Shell struct {
			SeedDefaults bool `env:"LIBRARY_SEED_DEFAULTS"`
		}

		Log struct {
			File          string `env:"LIBRARY_LOG_FILE"`
			LogController bool   `env:"LOG_CONTROLLER_ENABLED"`
			LogTransactor bool   `env:"LOG_TRANSACTOR_ENABLED"`
			LogUseCase    bool   `env:"LOG_USECASE_ENABLED"`
			LogRepo       bool   `env:"LOG_REPO_ENABLED"`
		}

		Observability struct {
			MetricsPort string `env:"METRICS_PORT"`
			JaegerURL   string `env:"JAEGER_URL"`
		}
	}
)

// RegisterFlags declares the command line flags NewConfig understands.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String(FlagBooks, "", "catalog document (overrides LIBRARY_BOOKS_FILE)")
	flags.String(FlagStudents, "", "roster document (overrides LIBRARY_STUDENTS_FILE)")
	flags.String(FlagLoans, "", "loan ledger document, kept in memory when empty (overrides LIBRARY_LOANS_FILE)")
	flags.String(FlagLogFile, "", "log file (overrides LIBRARY_LOG_FILE)")
	flags.Bool(FlagNoSeed, false, "never fill an empty catalog or roster with default records")
}

// NewConfig reads the environment. Flags set on the command line take
// precedence; flags may be nil.
func NewConfig(flags *pflag.FlagSet) (*Config, error) {
	cfg := &Config{}

	var err error
	v := viper.New()

	if cfg.Storage.BooksFile, err = parseEnvString(v, "books_file", "LIBRARY_BOOKS_FILE", defaultBooksFile); err != nil {
		return nil, err
	}

	if cfg.Storage.StudentsFile, err = parseEnvString(v, "students_file", "LIBRARY_STUDENTS_FILE", defaultStudentsFile); err != nil {
		return nil, err
	}

	if cfg.Storage.LoansFile, err = parseEnvString(v, "loans_file", "LIBRARY_LOANS_FILE"); err != nil {
		return nil, err
	}

	if cfg.Shell.SeedDefaults, err = parseEnvBool(v, "seed_defaults", "LIBRARY_SEED_DEFAULTS", defaultSeedValue); err != nil {
		return nil, err
	}

	if cfg.Log.File, err = parseEnvString(v, "log_file", "LIBRARY_LOG_FILE", defaultLogFile); err != nil {
		return nil, err
	}

	if cfg.Log.LogController, err = parseEnvBool(v, "log_controller", "LOG_CONTROLLER_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.Log.LogTransactor, err = parseEnvBool(v, "log_transactor", "LOG_TRANSACTOR_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.Log.LogUseCase, err = parseEnvBool(v, "log_usecase", "LOG_USECASE_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.Log.LogRepo, err = parseEnvBool(v, "log_repo", "LOG_REPO_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.Observability.MetricsPort, err = parseEnvString(v, "metrics_port", "METRICS_PORT"); err != nil {
		return nil, err
	}

	if cfg.Observability.JaegerURL, err = parseEnvString(v, "jaeger_url", "JAEGER_URL"); err != nil {
		return nil, err
	}

	if flags != nil {
		if err = applyFlags(v, flags, cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func applyFlags(v *viper.Viper, flags *pflag.FlagSet, cfg *Config) error {
	overrides := []struct {
		flag   string
		target *string
	}{
		{FlagBooks, &cfg.Storage.BooksFile},
		{FlagStudents, &cfg.Storage.StudentsFile},
		{FlagLoans, &cfg.Storage.LoansFile},
		{FlagLogFile, &cfg.Log.File},
	}

	for _, o := range overrides {
		if f := flags.Lookup(o.flag); f == nil || !f.Changed {
			continue
		}
		if err := v.BindPFlag(o.flag, flags.Lookup(o.flag)); err != nil {
			return err
		}
		*o.target = v.GetString(o.flag)
	}

	if f := flags.Lookup(FlagNoSeed); f != nil && f.Changed {
		if err := v.BindPFlag(FlagNoSeed, f); err != nil {
			return err
		}
		cfg.Shell.SeedDefaults = !v.GetBool(FlagNoSeed)
	}

	return nil
}

func parseEnvBool(v *viper.Viper, key, envVar string, defaultValue ...bool) (bool, error) {
	err := v.BindEnv(key, envVar)
	if err != nil {
		if len(defaultValue) > 0 {
			return defaultValue[0], err
		}
		return false, err
	}
	if len(defaultValue) > 0 {
		v.SetDefault(key, defaultValue[0])
	}
	return v.GetBool(key), nil
}

func parseEnvString(v *viper.Viper, key, envVar string, defaultValue ...string) (string, error) {
	err := v.BindEnv(key, envVar)
	if err != nil {
		if len(defaultValue) > 0 {
			return defaultValue[0], err
		}
		return "", err
	}
	if len(defaultValue) > 0 {
		v.SetDefault(key, defaultValue[0])
	}
	return v.GetString(key), nil
}
